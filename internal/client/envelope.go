package client

import (
	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/constants"
	"github.com/Quantum-Tecnology/Pagarme-SDK/internal/http"
	"github.com/Quantum-Tecnology/Pagarme-SDK/pkg/pagarme"
)

// validationFailure builds the envelope for a request rejected locally. No
// network call was issued, so the HTTP code stays zero.
func validationFailure(errs *pagarme.FieldErrors) *pagarme.Envelope {
	return &pagarme.Envelope{
		Success: false,
		Errors:  errs,
		Data:    pagarme.EmptyArray(),
	}
}

// transportFailure builds the envelope for a request that never produced a
// response after retry exhaustion.
func transportFailure(err error) *pagarme.Envelope {
	return &pagarme.Envelope{
		Success: false,
		Message: err.Error(),
		Data:    pagarme.EmptyArray(),
	}
}

// envelopeFromResponse classifies a received gateway response. The body
// contract is {success, message, data, errors} but the gateway is not
// uniform about it, so every field is optional: an unreadable or partial
// body degrades to empty containers instead of failing.
func envelopeFromResponse(resp *http.Response) *pagarme.Envelope {
	env := &pagarme.Envelope{
		HTTPCode: resp.StatusCode,
		Data:     pagarme.EmptyArray(),
	}

	body, err := pagarme.DecodeValue(resp.Body)
	if err != nil {
		body = pagarme.Value{}
	}

	if message := body.Get("message"); message.Kind() == pagarme.KindString {
		env.Message = message.String()
	}

	received2xx := resp.StatusCode >= constants.HTTPStatusSuccessFloor &&
		resp.StatusCode < constants.HTTPStatusSuccessCeiling

	env.Success = received2xx
	if received2xx && body.Has("success") {
		// The gateway can report an application failure inside a 2xx body.
		env.Success = body.Get("success").Bool()
	}

	if env.Success {
		if body.Has("data") {
			env.Data = body.Get("data")
		} else if !body.IsNull() {
			env.Data = body
		}

		return env
	}

	errorsValue := body.Get("errors")
	if errorsValue.Kind() != pagarme.KindObject {
		errorsValue = body.Get("data")
	}

	if fieldErrs := pagarme.FieldErrorsFromValue(errorsValue); !fieldErrs.Empty() {
		env.Errors = fieldErrs
	}

	return env
}
