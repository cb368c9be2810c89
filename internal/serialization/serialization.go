// Package serialization converts trigger payloads into the canonical byte form
// stored by the mocks and decodes those bytes back for JSON accessors.
package serialization

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"unicode/utf8"
)

var (
	// ErrListBodyNotAllowed is returned when a slice body is given to a trigger
	// kind whose SDK never accepts array bodies.
	ErrListBodyNotAllowed = errors.New("list body not supported for this trigger")

	// ErrUnsupportedBody is returned for body types outside the serialization policy.
	ErrUnsupportedBody = errors.New("unsupported body type")

	// ErrInvalidUTF8 is returned by DecodeJSON when the bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("body is not valid UTF-8")

	// ErrInvalidJSON is returned by DecodeJSON when the bytes are not valid JSON.
	ErrInvalidJSON = errors.New("body is not valid JSON")
)

// ToBytes converts a body value into bytes.
//
// The rules are applied in order:
//   - nil: empty byte slice
//   - []byte: returned unchanged
//   - string: UTF-8 bytes
//   - map with string keys: compact JSON
//   - slice or array: compact JSON when allowList is true, ErrListBodyNotAllowed otherwise
//
// Any other type yields ErrUnsupportedBody.
func ToBytes(body any, allowList bool) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		return []byte{}, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case json.RawMessage:
		return []byte(v), nil
	}

	rv := reflect.ValueOf(body)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupportedBody, rv.Type().Key())
		}
		return marshal(body)
	case reflect.Slice, reflect.Array:
		if !allowList {
			return nil, fmt.Errorf("%w: got %T", ErrListBodyNotAllowed, body)
		}
		return marshal(body)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedBody, body)
	}
}

// IsStructured reports whether body would be serialized as JSON.
func IsStructured(body any) bool {
	if body == nil {
		return false
	}
	switch body.(type) {
	case []byte, string, json.RawMessage:
		return false
	}
	k := reflect.ValueOf(body).Kind()
	return k == reflect.Map || k == reflect.Slice || k == reflect.Array
}

// IsMap reports whether body is a map with string keys and at least one entry.
func IsMap(body any) bool {
	if body == nil {
		return false
	}
	rv := reflect.ValueOf(body)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String && rv.Len() > 0
}

func marshal(body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode body as JSON: %w", err)
	}
	return data, nil
}

// DecodeJSON decodes data as UTF-8 JSON. The trigger name is used in error
// messages so a failing test points at the mock that produced the bytes.
func DecodeJSON(trigger string, data []byte) (any, error) {
	if off := invalidUTF8Offset(data); off >= 0 {
		return nil, fmt.Errorf("%w: unable to decode %s body: invalid byte 0x%02x at position %d",
			ErrInvalidUTF8, trigger, data[off], off)
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in %s body: %w", ErrInvalidJSON, trigger, err)
	}
	return out, nil
}

// invalidUTF8Offset returns the index of the first byte that starts an invalid
// UTF-8 sequence, or -1 when data is valid.
func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
