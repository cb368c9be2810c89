// Package http builds HTTP trigger requests for tests.
package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/internal/serialization"
	"github.com/sudzxd/azure-functions-test/mocks"
	"github.com/sudzxd/azure-functions-test/observability"
)

const trigger = "http"

var _ bindings.HTTPRequest = (*Request)(nil)

// Request is an HTTP trigger request.
type Request struct {
	method      string
	url         string
	headers     map[string]string
	params      map[string]string
	routeParams map[string]string
	body        []byte

	form map[string]string
}

// Option overrides a request default.
type Option func(*Request)

// WithMethod sets the HTTP method.
func WithMethod(method string) Option {
	return func(r *Request) {
		r.method = method
	}
}

// WithURL sets the full request URL.
func WithURL(rawURL string) Option {
	return func(r *Request) {
		r.url = rawURL
	}
}

// WithHeaders merges headers into the request headers.
func WithHeaders(headers map[string]string) Option {
	return func(r *Request) {
		for k, v := range headers {
			r.headers[k] = v
		}
	}
}

// WithHeader sets a single header.
func WithHeader(key, value string) Option {
	return func(r *Request) {
		r.headers[key] = value
	}
}

// WithParams merges query parameters.
func WithParams(params map[string]string) Option {
	return func(r *Request) {
		for k, v := range params {
			r.params[k] = v
		}
	}
}

// WithRouteParams merges route parameters.
func WithRouteParams(params map[string]string) Option {
	return func(r *Request) {
		for k, v := range params {
			r.routeParams[k] = v
		}
	}
}

// New creates an HTTP request. A non-empty map body is stored as JSON and,
// unless a "Content-Type" header was given, sets Content-Type to
// application/json. Slice bodies are rejected.
func New(body any, opts ...Option) (*Request, error) {
	data, err := serialization.ToBytes(body, false)
	if err != nil {
		return nil, fmt.Errorf("HTTP request body: %w", err)
	}

	r := &Request{
		method:      mocks.DefaultHTTPMethod,
		url:         mocks.DefaultHTTPURL,
		headers:     make(map[string]string),
		params:      make(map[string]string),
		routeParams: make(map[string]string),
		body:        data,
	}
	for _, opt := range opts {
		opt(r)
	}

	if serialization.IsMap(body) {
		if _, ok := r.headers[bindings.HeaderContentType]; !ok {
			r.headers[bindings.HeaderContentType] = bindings.ContentTypeJSON
		}
	}

	mockutil.Created(trigger, observability.Fields{
		"method": r.method,
		"url":    r.url,
	})
	return r, nil
}

// Method returns the HTTP method.
func (r *Request) Method() string { return r.method }

// URL returns the full request URL.
func (r *Request) URL() string { return r.url }

// Headers returns the request headers.
func (r *Request) Headers() map[string]string { return r.headers }

// Params returns the query parameters.
func (r *Request) Params() map[string]string { return r.params }

// RouteParams returns the route parameters.
func (r *Request) RouteParams() map[string]string { return r.routeParams }

// GetBody returns the request body.
func (r *Request) GetBody() []byte { return r.body }

// GetJSON decodes the body as JSON.
func (r *Request) GetJSON() (any, error) {
	return mockutil.DecodeJSON(trigger, "HTTP request", r.body)
}

// Form returns the URL-encoded form fields of the body. The body is parsed
// on the first call, and only when Content-Type names
// application/x-www-form-urlencoded. Pairs are split on '&' only. Blank
// values and keys without '=' are kept as empty strings, malformed escapes are
// kept as written and the last value of a repeated key wins. Every call
// returns the same map.
func (r *Request) Form() map[string]string {
	if r.form != nil {
		return r.form
	}

	r.form = make(map[string]string)
	if !strings.Contains(r.headers[bindings.HeaderContentType], bindings.ContentTypeFormURLEncoded) {
		return r.form
	}

	for pair := range strings.SplitSeq(string(r.body), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		r.form[unescapeFormValue(key)] = unescapeFormValue(value)
	}
	return r.form
}

// unescapeFormValue decodes '+' and valid %XX escapes in s. Escapes that
// are not two hex digits are left as they are.
func unescapeFormValue(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s):
			if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
				b.WriteByte(byte(v))
				i += 2
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (r *Request) String() string {
	return fmt.Sprintf("http.Request{method=%q url=%q}", r.method, r.url)
}
