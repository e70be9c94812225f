package pagarme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldErrors is an ordered field → message set accumulated during one
// validation pass. Setting a field that already has a message overwrites it
// in place, so the last failing rule wins for a given field while the
// original insertion order is kept.
type FieldErrors struct {
	fields   []string
	messages map[string]string
}

// NewFieldErrors returns an empty set.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{messages: make(map[string]string)}
}

// Set records a message for a field, overwriting any previous message.
func (e *FieldErrors) Set(field, message string) {
	if e.messages == nil {
		e.messages = make(map[string]string)
	}

	if _, ok := e.messages[field]; !ok {
		e.fields = append(e.fields, field)
	}

	e.messages[field] = message
}

// Setf records a formatted message for a field.
func (e *FieldErrors) Setf(field, format string, args ...interface{}) {
	e.Set(field, fmt.Sprintf(format, args...))
}

// Get returns the message for a field.
func (e *FieldErrors) Get(field string) (string, bool) {
	if e == nil || e.messages == nil {
		return "", false
	}

	message, ok := e.messages[field]

	return message, ok
}

// Fields returns the field names in insertion order.
func (e *FieldErrors) Fields() []string {
	if e == nil {
		return nil
	}

	fields := make([]string, len(e.fields))
	copy(fields, e.fields)

	return fields
}

// Len returns the number of failing fields.
func (e *FieldErrors) Len() int {
	if e == nil {
		return 0
	}

	return len(e.fields)
}

// Empty reports whether no rule has failed.
func (e *FieldErrors) Empty() bool {
	return e.Len() == 0
}

// MarshalJSON encodes the set as a JSON object in insertion order.
func (e *FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, field := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(field)
		if err != nil {
			return nil, fmt.Errorf("encoding field name: %w", err)
		}

		value, err := json.Marshal(e.messages[field])
		if err != nil {
			return nil, fmt.Errorf("encoding field message: %w", err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// FieldErrorsFromValue lifts a gateway error object into a FieldErrors set.
// The gateway is not consistent about the shape: values may be plain strings
// or arrays of strings, and anything else is ignored. A non-object value
// yields an empty set.
func FieldErrorsFromValue(v Value) *FieldErrors {
	errs := NewFieldErrors()

	if v.Kind() != KindObject {
		return errs
	}

	for _, field := range v.Keys() {
		entry := v.Get(field)

		switch entry.Kind() {
		case KindString:
			errs.Set(field, entry.String())
		case KindArray:
			for i := 0; i < entry.Len(); i++ {
				if element := entry.Index(i); element.Kind() == KindString {
					errs.Set(field, element.String())
				}
			}
		default:
		}
	}

	return errs
}
