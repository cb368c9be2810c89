package awslambda

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/mocks"
	mockshttp "github.com/sudzxd/azure-functions-test/mocks/http"
)

const defaultStage = "test"

// APIGatewayProxyRequest converts an HTTP request into an API Gateway proxy
// request. Query parameters from the URL are merged with Params, which win on
// conflict. Bodies that are not valid UTF-8 are base64 encoded.
func APIGatewayProxyRequest(req bindings.HTTPRequest) (events.APIGatewayProxyRequest, error) {
	u, err := url.Parse(req.URL())
	if err != nil {
		return events.APIGatewayProxyRequest{}, fmt.Errorf("failed to parse request URL: %w", err)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	query := make(map[string]string)
	for k, v := range u.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}
	for k, v := range req.Params() {
		query[k] = v
	}

	body, encoded := encodeBody(req.GetBody())

	return events.APIGatewayProxyRequest{
		Path:                  path,
		HTTPMethod:            req.Method(),
		Headers:               mockutil.CopyMap(req.Headers()),
		QueryStringParameters: query,
		PathParameters:        mockutil.CopyMap(req.RouteParams()),
		Body:                  body,
		IsBase64Encoded:       encoded,
		RequestContext: events.APIGatewayProxyRequestContext{
			AccountID:  DefaultAccountID,
			RequestID:  uuid.NewString(),
			Stage:      defaultStage,
			HTTPMethod: req.Method(),
			Path:       path,
		},
	}, nil
}

// APIGatewayProxyResponse converts a handler response. Content-Type is derived
// from the mimetype and charset unless a header sets it.
func APIGatewayProxyResponse(resp *bindings.HTTPResponse) events.APIGatewayProxyResponse {
	headers := mockutil.CopyMap(resp.Headers)
	if _, ok := headers[bindings.HeaderContentType]; !ok && resp.MimeType != "" {
		contentType := resp.MimeType
		if resp.Charset != "" {
			contentType += "; charset=" + resp.Charset
		}
		headers[bindings.HeaderContentType] = contentType
	}

	body, encoded := encodeBody(resp.GetBody())
	return events.APIGatewayProxyResponse{
		StatusCode:      resp.StatusCode,
		Headers:         headers,
		Body:            body,
		IsBase64Encoded: encoded,
	}
}

// HTTPRequest converts an API Gateway proxy request back into an HTTP request
// mock. The URL is rebuilt on http://localhost.
func HTTPRequest(req events.APIGatewayProxyRequest) (*mockshttp.Request, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
		body = decoded
	}

	u, err := url.Parse(mocks.DefaultHTTPURL)
	if err != nil {
		return nil, err
	}
	u.Path = req.Path
	query := url.Values{}
	for k, v := range req.QueryStringParameters {
		query.Set(k, v)
	}
	u.RawQuery = query.Encode()

	return mockshttp.New(body,
		mockshttp.WithMethod(req.HTTPMethod),
		mockshttp.WithURL(u.String()),
		mockshttp.WithHeaders(req.Headers),
		mockshttp.WithParams(req.QueryStringParameters),
		mockshttp.WithRouteParams(req.PathParameters),
	)
}

func encodeBody(body []byte) (string, bool) {
	if utf8.Valid(body) {
		return string(body), false
	}
	return base64.StdEncoding.EncodeToString(body), true
}
