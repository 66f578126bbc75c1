package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/textproto"

	"github.com/blugnu/http/v2/header"
)

// mockResponse captures the details of the response to be returned when
// responding to an expected request
type mockResponse struct {
	// the body to be returned in the response
	body []byte

	// headers to be returned in the response
	headers http.Header

	// the status code of the response (optional; if not set, 200 (OK) will be used)
	statusCode *int

	// an error to return
	Err error

	// a misconfiguration of the response (see fail)
	invalid error
}

// fail records a misconfiguration of the response.  The first one recorded
// is reported; the mock then responds with 500 Internal Server Error and a
// body describing it, regardless of any status code or body configured.
func (resp *mockResponse) fail(err error) *mockResponse {
	if resp.invalid == nil {
		resp.invalid = fmt.Errorf("MockResponse: %w", err)
	}
	return resp
}

// WithBody sets a body to be returned with the response.
func (resp *mockResponse) WithBody(b []byte) *mockResponse {
	resp.body = b
	return resp
}

// WithJSON sets a body to be returned with the response by marshalling
// a specified value as JSON.  A Content-Type header of application/json
// is also set.
func (resp *mockResponse) WithJSON(v any) *mockResponse {
	b, err := json.Marshal(v)
	if err != nil {
		return resp.fail(fmt.Errorf("WithJSON: %w", err))
	}
	resp.body = b
	return resp.WithHeader("Content-Type", header.MediaTypeJSON)
}

// WithHeader adds value(s) to a canonical header to be returned with the
// response. The key (k) is normalised using textproto.CanonicalMIMEHeaderKey.
//
// The value may be any source accepted by header.Resolve.  If the value
// cannot be resolved the mock will respond with 500 Internal Server Error
// and a body describing the error, whatever else is configured, and the
// error is reported by ExpectationsWereMet.
//
// To configured a non-canonical header, use WithNonCanonicalHeader().
func (resp *mockResponse) WithHeader(k string, v any) *mockResponse {
	return resp.WithNonCanonicalHeader(textproto.CanonicalMIMEHeaderKey(k), v)
}

// WithNonCanonicalHeader adds value(s) to a non-canonical header to be
// returned with the response. The key (k) is set exactly as specified.
//
// To configured a normalised, canonical header, use WithHeader().
func (resp *mockResponse) WithNonCanonicalHeader(k string, v any) *mockResponse {
	if resp.headers == nil {
		resp.headers = http.Header{}
	}
	if err := header.AddRaw(resp.headers, k, v); err != nil {
		return resp.fail(fmt.Errorf("WithHeader: %w", err))
	}
	return resp
}

// WithStatusCode sets the status code to be returned with the response.
func (resp *mockResponse) WithStatusCode(sc int) *mockResponse {
	resp.statusCode = &sc
	return resp
}
