package pagarme

// Envelope is the uniform result wrapper returned by every resource
// operation. A fresh envelope is created per call; it is never shared
// between operations.
//
// Exactly one of four outcomes is represented:
//   - local validation failure: Success false, Errors populated, no HTTP
//     call was issued (HTTPCode 0);
//   - transport failure after retry exhaustion: Success false, HTTPCode 0,
//     Message carries the transport error;
//   - application error: Success false, HTTPCode set, Message and Errors
//     lifted from the response body when present;
//   - success: Success true, HTTPCode set, Data holds the mapped payload.
type Envelope struct {
	Success  bool         `json:"success"`
	HTTPCode int          `json:"http_code"`
	Message  string       `json:"message,omitempty"`
	Errors   *FieldErrors `json:"errors,omitempty"`
	Data     Value        `json:"data"`
}

// Failed reports whether the operation did not succeed, regardless of which
// stage failed.
func (e *Envelope) Failed() bool {
	return !e.Success
}

// ValidationFailed reports whether the envelope represents a local
// validation failure, i.e. the gateway was never called.
func (e *Envelope) ValidationFailed() bool {
	return !e.Success && e.HTTPCode == 0 && e.Errors.Len() > 0
}
