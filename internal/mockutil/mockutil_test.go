package mockutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sudzxd/azure-functions-test/internal/serialization"
	"github.com/sudzxd/azure-functions-test/observability"
	obsmocks "github.com/sudzxd/azure-functions-test/observability/mocks"
)

func TestCreated(t *testing.T) {
	provider, metrics := obsmocks.NewQuietProvider()
	metrics.On("RecordMockCreated", "queue").Return()
	restore := observability.Use(provider)
	defer restore()

	Created("queue", observability.Fields{"id": "x"})

	metrics.AssertCalled(t, "RecordMockCreated", "queue")
	provider.AssertCalled(t, "Logger", "mocks")
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name   string
		body   []byte
		reason string
		target error
	}{
		{name: "invalid utf-8", body: []byte{0xff, 0xfe}, reason: "utf8", target: serialization.ErrInvalidUTF8},
		{name: "invalid json", body: []byte("{oops"), reason: "json", target: serialization.ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, metrics := obsmocks.NewQuietProvider()
			metrics.On("RecordDecodeError", "queue", mock.Anything).Return()
			restore := observability.Use(provider)
			defer restore()

			v, err := DecodeJSON("queue", "queue message", tt.body)

			assert.Nil(t, v)
			assert.ErrorIs(t, err, tt.target)
			assert.Contains(t, err.Error(), "queue message")
			metrics.AssertCalled(t, "RecordDecodeError", "queue", tt.reason)
		})
	}

	t.Run("valid body", func(t *testing.T) {
		provider, metrics := obsmocks.NewQuietProvider()
		restore := observability.Use(provider)
		defer restore()

		v, err := DecodeJSON("queue", "queue message", []byte(`{"a":1}`))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": float64(1)}, v)
		metrics.AssertNotCalled(t, "RecordDecodeError", mock.Anything, mock.Anything)
	})
}

func TestCopyMap(t *testing.T) {
	src := map[string]string{"a": "1"}

	dst := CopyMap(src)
	dst["b"] = "2"

	assert.Len(t, src, 1)
	assert.NotNil(t, CopyMap[string](nil))
}

func TestPointers(t *testing.T) {
	now := Now()

	assert.Equal(t, now, *TimePtr(now))
	assert.Equal(t, "x", *StringPtr("x"))
	assert.Equal(t, "UTC", now.Location().String())
}
