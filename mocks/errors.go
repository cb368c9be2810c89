package mocks

import (
	"errors"

	"github.com/sudzxd/azure-functions-test/internal/serialization"
)

// Construction errors.
var (
	// ErrListBodyNotAllowed is returned when a trigger that never accepts
	// array bodies is given a slice.
	ErrListBodyNotAllowed = serialization.ErrListBodyNotAllowed

	// ErrUnsupportedBody is returned for body types outside the serialization rules.
	ErrUnsupportedBody = serialization.ErrUnsupportedBody

	// ErrInvalidResourceName is returned when a storage account or queue name
	// breaks Azure naming rules.
	ErrInvalidResourceName = errors.New("invalid resource name")
)

// Access errors returned by GetJSON.
var (
	ErrInvalidUTF8 = serialization.ErrInvalidUTF8
	ErrInvalidJSON = serialization.ErrInvalidJSON
)

// Must returns v or panics when err is non-nil. It is meant for test setup:
//
//	msg := mocks.Must(queue.New(map[string]any{"order_id": 1}))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
