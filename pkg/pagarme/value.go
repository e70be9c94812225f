package pagarme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// KindNull through KindArray classify a Value node.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

// Static errors for err113 compliance.
var (
	ErrUnexpectedToken = errors.New("unexpected JSON token")
	ErrTrailingData    = errors.New("trailing data after JSON value")
)

// Value is an immutable JSON value with ordered object keys. Decoding
// converts every nested object and array at any depth into a traversable
// container, so a decoded Value is already fully mapped; re-encoding and
// decoding it again yields the identical structure.
//
// Accessors are forgiving: asking an object for a missing key, or a scalar
// for an element, returns the zero Value (KindNull). That keeps traversal of
// gateway responses with missing optional fields panic-free.
type Value struct {
	kind    ValueKind
	boolean bool
	number  json.Number
	str     string
	keys    []string
	fields  map[string]Value
	elems   []Value
}

// DecodeValue parses a JSON document into a Value, preserving object key
// order at every depth.
func DecodeValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeNext(dec)
	if err != nil {
		return Value{}, err
	}

	if dec.More() {
		return Value{}, ErrTrailingData
	}

	return v, nil
}

func decodeNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("reading JSON token: %w", err)
	}

	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Value{}, nil
	case bool:
		return Value{kind: KindBool, boolean: t}, nil
	case json.Number:
		return Value{kind: KindNumber, number: t}, nil
	case string:
		return Value{kind: KindString, str: t}, nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("%w: %v", ErrUnexpectedToken, t)
		}
	default:
		return Value{}, fmt.Errorf("%w: %v", ErrUnexpectedToken, tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	v := Value{kind: KindObject, fields: make(map[string]Value)}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, fmt.Errorf("reading object key: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: object key %v", ErrUnexpectedToken, tok)
		}

		field, err := decodeNext(dec)
		if err != nil {
			return Value{}, err
		}

		if _, seen := v.fields[key]; !seen {
			v.keys = append(v.keys, key)
		}

		v.fields[key] = field
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("reading object end: %w", err)
	}

	return v, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	v := Value{kind: KindArray, elems: []Value{}}

	for dec.More() {
		element, err := decodeNext(dec)
		if err != nil {
			return Value{}, err
		}

		v.elems = append(v.elems, element)
	}

	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("reading array end: %w", err)
	}

	return v, nil
}

// EmptyArray returns an empty ordered collection, the placeholder used for
// envelope data when an operation produced no payload.
func EmptyArray() Value {
	return Value{kind: KindArray, elems: []Value{}}
}

// EmptyObject returns an empty object value.
func EmptyObject() Value {
	return Value{kind: KindObject, fields: map[string]Value{}}
}

// StringValue wraps a string as a Value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// Kind returns the node classification.
func (v Value) Kind() ValueKind { return v.kind }

// IsNull reports whether the value is JSON null (or the zero Value).
func (v Value) IsNull() bool { return v.kind == KindNull }

// Len returns the element count of arrays, the key count of objects, and
// zero for everything else.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.keys)
	case KindArray:
		return len(v.elems)
	default:
		return 0
	}
}

// Keys returns the object keys in document order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)

	return keys
}

// Has reports whether an object has the given key.
func (v Value) Has(key string) bool {
	if v.kind != KindObject {
		return false
	}

	_, ok := v.fields[key]

	return ok
}

// Get returns the field for key, or the zero Value when absent or when the
// receiver is not an object.
func (v Value) Get(key string) Value {
	if v.kind != KindObject {
		return Value{}
	}

	return v.fields[key]
}

// Index returns the i-th array element, or the zero Value when out of range
// or when the receiver is not an array.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.elems) {
		return Value{}
	}

	return v.elems[i]
}

// String returns the string content, or "" for non-strings.
func (v Value) String() string {
	if v.kind != KindString {
		return ""
	}

	return v.str
}

// Bool returns the boolean content, or false for non-booleans.
func (v Value) Bool() bool {
	return v.kind == KindBool && v.boolean
}

// Int returns the numeric content as an int64, or 0 when the value is not a
// whole number.
func (v Value) Int() int64 {
	if v.kind != KindNumber {
		return 0
	}

	n, err := v.number.Int64()
	if err != nil {
		return 0
	}

	return n
}

// Float returns the numeric content as a float64, or 0 for non-numbers.
func (v Value) Float() float64 {
	if v.kind != KindNumber {
		return 0
	}

	f, err := v.number.Float64()
	if err != nil {
		return 0
	}

	return f
}

// MarshalJSON encodes the value, emitting object keys in document order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return json.Marshal(v.boolean)
	case KindNumber:
		return []byte(v.number.String()), nil
	case KindString:
		return json.Marshal(v.str)
	case KindArray:
		return v.marshalArray()
	case KindObject:
		return v.marshalObject()
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnexpectedToken, v.kind)
	}
}

func (v Value) marshalArray() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('[')

	for i, element := range v.elems {
		if i > 0 {
			buf.WriteByte(',')
		}

		encoded, err := element.MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(encoded)
	}

	buf.WriteByte(']')

	return buf.Bytes(), nil
}

func (v Value) marshalObject() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range v.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encoding object key: %w", err)
		}

		encodedField, err := v.fields[key].MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(encodedField)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Equal reports structural equality, including object key order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolean == other.boolean
	case KindNumber:
		return v.number == other.number
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.elems) != len(other.elems) {
			return false
		}

		for i := range v.elems {
			if !v.elems[i].Equal(other.elems[i]) {
				return false
			}
		}

		return true
	case KindObject:
		if len(v.keys) != len(other.keys) {
			return false
		}

		for i, key := range v.keys {
			if other.keys[i] != key {
				return false
			}

			if !v.fields[key].Equal(other.fields[key]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
