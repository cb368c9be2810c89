package serialization

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBytes(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		expected []byte
	}{
		{name: "nil body", body: nil, expected: []byte{}},
		{name: "raw bytes", body: []byte{0x00, 0xff, 0x10}, expected: []byte{0x00, 0xff, 0x10}},
		{name: "empty string", body: "", expected: []byte{}},
		{name: "ascii string", body: "hello", expected: []byte("hello")},
		{name: "unicode string", body: "héllo 世界 🚀", expected: []byte("héllo 世界 🚀")},
		{name: "map body", body: map[string]any{"order_id": 123}, expected: []byte(`{"order_id":123}`)},
		{name: "typed map body", body: map[string]string{"a": "b"}, expected: []byte(`{"a":"b"}`)},
		{name: "empty map body", body: map[string]any{}, expected: []byte(`{}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withList, err := ToBytes(tt.body, true)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, withList)

			withoutList, err := ToBytes(tt.body, false)
			require.NoError(t, err)
			assert.Equal(t, withList, withoutList)
		})
	}
}

func TestToBytes_PassesBytesThrough(t *testing.T) {
	in := []byte("payload")

	out, err := ToBytes(in, false)

	require.NoError(t, err)
	assert.Same(t, &in[0], &out[0])
}

func TestToBytes_Lists(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		out, err := ToBytes([]any{1, "two", map[string]any{"three": 3}}, true)

		require.NoError(t, err)
		assert.JSONEq(t, `[1,"two",{"three":3}]`, string(out))
	})

	t.Run("not allowed", func(t *testing.T) {
		_, err := ToBytes([]string{"a", "b"}, false)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrListBodyNotAllowed))
	})
}

func TestToBytes_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "integer", body: 42},
		{name: "float", body: 3.14},
		{name: "struct", body: struct{ A int }{A: 1}},
		{name: "int keyed map", body: map[int]string{1: "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToBytes(tt.body, true)

			assert.ErrorIs(t, err, ErrUnsupportedBody)
		})
	}
}

func TestToBytes_UnencodableMap(t *testing.T) {
	_, err := ToBytes(map[string]any{"ch": make(chan int)}, false)

	require.Error(t, err)
	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestDecodeJSON(t *testing.T) {
	t.Run("round trips a map", func(t *testing.T) {
		body := map[string]any{"order_id": float64(123), "items": []any{"a", "b"}}
		data, err := ToBytes(body, false)
		require.NoError(t, err)

		got, err := DecodeJSON("queue", data)

		require.NoError(t, err)
		assert.Equal(t, body, got)
	})

	t.Run("invalid utf-8 names the trigger", func(t *testing.T) {
		_, err := DecodeJSON("queue", []byte{'{', 0xff, '}'})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidUTF8)
		assert.NotErrorIs(t, err, ErrInvalidJSON)
		assert.Contains(t, err.Error(), "queue")
		assert.Contains(t, err.Error(), "0xff")
		assert.Contains(t, err.Error(), "position 1")
	})

	t.Run("invalid json is a distinct error", func(t *testing.T) {
		_, err := DecodeJSON("HTTP request", []byte("not json"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidJSON)
		assert.NotErrorIs(t, err, ErrInvalidUTF8)
		assert.Contains(t, err.Error(), "HTTP request")

		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("empty body is invalid json", func(t *testing.T) {
		_, err := DecodeJSON("queue", []byte{})

		assert.ErrorIs(t, err, ErrInvalidJSON)
	})
}

func TestIsStructured(t *testing.T) {
	assert.True(t, IsStructured(map[string]any{}))
	assert.True(t, IsStructured([]int{1}))
	assert.False(t, IsStructured(nil))
	assert.False(t, IsStructured("text"))
	assert.False(t, IsStructured([]byte("raw")))
}

func TestIsMap(t *testing.T) {
	assert.True(t, IsMap(map[string]any{"a": 1}))
	assert.False(t, IsMap(map[string]any{}))
	assert.False(t, IsMap([]any{1}))
	assert.False(t, IsMap(nil))
}
