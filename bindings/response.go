package bindings

import (
	"fmt"
	"net/http"

	"github.com/sudzxd/azure-functions-test/internal/serialization"
)

// HTTPResponse is what an HTTP-triggered handler returns.
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	MimeType   string
	Charset    string
	body       []byte
}

// ResponseOption configures an HTTPResponse.
type ResponseOption func(*HTTPResponse)

// WithStatus sets the status code.
func WithStatus(code int) ResponseOption {
	return func(r *HTTPResponse) {
		r.StatusCode = code
	}
}

// WithMimeType sets the mimetype.
func WithMimeType(mimeType string) ResponseOption {
	return func(r *HTTPResponse) {
		r.MimeType = mimeType
	}
}

// WithHeader adds a response header.
func WithHeader(key, value string) ResponseOption {
	return func(r *HTTPResponse) {
		r.Headers[key] = value
	}
}

// NewHTTPResponse builds a response. Maps and slices are encoded as JSON and
// the mimetype defaults to application/json for them, text/plain otherwise.
func NewHTTPResponse(body any, opts ...ResponseOption) (*HTTPResponse, error) {
	data, err := serialization.ToBytes(body, true)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP response: %w", err)
	}

	r := &HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    make(map[string]string),
		MimeType:   ContentTypeText,
		Charset:    "utf-8",
		body:       data,
	}
	if serialization.IsStructured(body) {
		r.MimeType = ContentTypeJSON
	}

	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewJSONResponse is a shorthand for a JSON body with the given status.
func NewJSONResponse(status int, body any) (*HTTPResponse, error) {
	return NewHTTPResponse(body, WithStatus(status), WithMimeType(ContentTypeJSON))
}

// GetBody returns the response body bytes.
func (r *HTTPResponse) GetBody() []byte {
	return r.body
}

// GetJSON decodes the response body.
func (r *HTTPResponse) GetJSON() (any, error) {
	return serialization.DecodeJSON("HTTP response", r.body)
}
