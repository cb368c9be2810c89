// Package blob builds Blob Storage input streams for tests.
package blob

import (
	"fmt"
	"io"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/mocks"
	"github.com/sudzxd/azure-functions-test/observability"
)

const trigger = "blob"

var _ bindings.InputStream = (*Stream)(nil)

// Stream is an in-memory blob input. It keeps a read cursor and is not safe
// for concurrent use.
type Stream struct {
	name    string
	uri     string
	content []byte
	pos     int
}

// Option overrides a stream default.
type Option func(*Stream)

// WithName sets the blob name.
func WithName(name string) Option {
	return func(s *Stream) {
		s.name = name
	}
}

// WithURI sets the blob's primary location.
func WithURI(uri string) Option {
	return func(s *Stream) {
		s.uri = uri
	}
}

// New creates a blob stream. content may be a string, a []byte or nil.
func New(content any, opts ...Option) (*Stream, error) {
	var data []byte
	switch c := content.(type) {
	case nil:
		data = []byte{}
	case string:
		data = []byte(c)
	case []byte:
		data = c
	default:
		return nil, fmt.Errorf("blob content of type %T: %w", content, mocks.ErrUnsupportedBody)
	}

	s := &Stream{
		name:    mocks.DefaultBlobName,
		uri:     mocks.DefaultBlobURI,
		content: data,
	}
	for _, opt := range opts {
		opt(s)
	}

	mockutil.Created(trigger, observability.Fields{
		"name":   s.name,
		"length": len(s.content),
	})
	return s, nil
}

// Name returns the blob name.
func (s *Stream) Name() string { return s.name }

// URI returns the blob's primary location.
func (s *Stream) URI() string { return s.uri }

// Length returns the content size in bytes.
func (s *Stream) Length() int { return len(s.content) }

// Remaining returns the number of unread bytes.
func (s *Stream) Remaining() int { return len(s.content) - s.pos }

// ReadN returns up to n bytes from the cursor and advances it by the number
// returned. A negative n reads to the end. At the end it returns an empty
// slice.
func (s *Stream) ReadN(n int) []byte {
	end := len(s.content)
	if n >= 0 && n < end-s.pos {
		end = s.pos + n
	}
	chunk := s.content[s.pos:end:end]
	s.pos = end
	return chunk
}

// ReadAll returns everything from the cursor to the end.
func (s *Stream) ReadAll() []byte {
	return s.ReadN(-1)
}

// Read implements io.Reader over the same cursor.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.pos >= len(s.content) {
		return 0, io.EOF
	}
	n := copy(p, s.content[s.pos:])
	s.pos += n
	return n, nil
}

// Reset moves the cursor back to the start.
func (s *Stream) Reset() {
	s.pos = 0
}

// String implements fmt.Stringer.
func (s *Stream) String() string {
	return fmt.Sprintf("blob.Stream{name=%q length=%d}", s.name, len(s.content))
}
