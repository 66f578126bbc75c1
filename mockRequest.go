package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"slices"
	"strings"

	"github.com/blugnu/http/v2/header"
)

// MockRequest holds details of a request expected by a MockClient
type MockRequest struct {
	// index of the request in the associated client
	index int

	// reference to the client expected to make the request
	client *mockClient

	// expected method (optional; any method is acceptable if nil)
	method *string

	// expected body (optional; if nil, any body is acceptable)
	body *[]byte

	// expected url (the url must match exactly including any query parameters)
	url string

	// expected headers; a nil container identifies a header which must be
	// present with any value(s), otherwise the header must be present with
	// exactly the values in the container, in order
	headers map[string]*header.Values

	// errors arising from header expectations with values that could not
	// be resolved; these are reported as unmet expectations
	invalid []error

	// records the actual request made
	actual *http.Request

	// indicates whether the request is expected or not
	isExpected bool

	// configuration of the response to be mocked in response to the request
	Response *mockResponse
}

// checkExpectations performs expectation analysis for a request and returns
// a report identifying any unmet expectations.  If all expectations were met
// the report is empty.
func (rq *MockRequest) checkExpectations() []string {
	result := []string{}
	for _, err := range rq.invalid {
		result = append(result, err.Error())
	}
	if rq.Response != nil && rq.Response.invalid != nil {
		result = append(result, rq.Response.invalid.Error())
	}

	switch {
	case !rq.isExpected:
		if rq.actual == nil {
			return result
		}
		result = append(result, fmt.Sprintf("  got: %s %s", rq.actual.Method, rq.actual.URL.String()))

	case rq.actual == nil:
		result = append(result, "  got: <no request>")

	default:
		result = append(result, rq.checkMethodExpectation()...)
		result = append(result, rq.checkURLExpectation()...)
		result = append(result, rq.checkHeadersExpectation()...)
		result = append(result, rq.checkBodyExpectation()...)
	}
	return result
}

// checkMethodExpectation reports any difference between the expected and
// actual request method
func (rq *MockRequest) checkMethodExpectation() []string {
	if rq.method != nil && *rq.method != rq.actual.Method {
		return []string{
			fmt.Sprintf("expected method: %s", *rq.method),
			fmt.Sprintf("   got         : %s", rq.actual.Method),
		}
	}
	return nil
}

// checkURLExpectation reports any difference between the expected and
// actual request URL
func (rq *MockRequest) checkURLExpectation() []string {
	u := rq.url
	if u == "" {
		u = "<not specified>"
	}
	if rq.url != rq.actual.URL.String() {
		return []string{
			fmt.Sprintf("expected url: %s", u),
			fmt.Sprintf("   got      : %s", rq.actual.URL.String()),
		}
	}
	return nil
}

// checkHeadersExpectation reports any expected header that is missing from
// the actual request or which is present with different values
func (rq *MockRequest) checkHeadersExpectation() (rpt []string) {
	present := func() []string {
		got := []string{"           got: ["}
		for k, av := range rq.actual.Header {
			got = append(got, fmt.Sprintf("             %s: %s", k, strings.Join(av, ", ")))
		}
		return append(got, "           ]")
	}

	for k, want := range rq.headers {
		got, ok := rq.actual.Header[k]
		switch {
		case !ok && want == nil:
			rpt = append(rpt, fmt.Sprintf("header not set: %s", k))
			rpt = append(rpt, present()...)

		case !ok:
			rpt = append(rpt, fmt.Sprintf("header not set: %s: %s", k, strings.Join(want.Strings(), ", ")))
			rpt = append(rpt, present()...)

		case want != nil && !slices.Equal(want.Strings(), got):
			rpt = append(rpt,
				fmt.Sprintf("expected header: %s: %s", k, strings.Join(want.Strings(), ", ")),
				fmt.Sprintf("   got         : %s: %s", k, strings.Join(got, ", ")),
			)
		}
	}
	return rpt
}

// checkBodyExpectation reports any difference between the expected and
// actual request body
func (rq *MockRequest) checkBodyExpectation() []string {
	if rq.body == nil {
		return nil
	}

	expected := *rq.body
	actual := []byte{}
	if rq.actual.Body != nil {
		actual, _ = io.ReadAll(rq.actual.Body)
		defer rq.actual.Body.Close()
	}
	if bytes.Equal(expected, actual) {
		return nil
	}

	switch {
	case len(expected) == 0:
		return []string{
			"expected: <no body>",
			fmt.Sprintf("   got  : %d bytes", len(actual)),
		}
	case len(actual) == 0:
		return []string{
			fmt.Sprintf("expected: %d bytes", len(expected)),
			"   got  : <no body>",
		}
	default:
		rpt := []string{
			"request body differs from expected",
			"   got   :_________",
		}
		for _, b := range bytes.Split(actual, []byte("\n")) {
			rpt = append(rpt, fmt.Sprintf("         |%s", b))
		}
		rpt = append(rpt, "   wanted:_________")
		for _, b := range bytes.Split(expected, []byte("\n")) {
			rpt = append(rpt, fmt.Sprintf("         |%s", b))
		}
		return rpt
	}
}

// String implements the stringer interface for a MockRequest, returning a
// string consisting of the request method (or <ANY> if not specified) and
// url (or <any://hostname/and/path> if not specified)
func (rq MockRequest) String() string {
	m := "<ANY>"
	u := "<any://hostname/and/path>"
	if rq.method != nil {
		m = *rq.method
	}
	if rq.url != "" {
		u = rq.url
	}
	return fmt.Sprintf("%s %s", m, u)
}

// WillNotBeCalled indicates that the request is not expected to be made.  If a
// corresponding request is made by the client, this will be reflected as a failed
// expectation.
func (mock *MockRequest) WillNotBeCalled() {
	mock.isExpected = false
}

// WillRespond establishes a default response for the request, returning a mock
// response to be used to provide details of the response such as status code,
// headers or a body etc.
func (mock *MockRequest) WillRespond() *mockResponse {
	mock.Response = &mockResponse{
		headers: http.Header{},
	}
	return mock.Response
}

// WillReturnError establishes an error to be returned by the client when
// attempting to perform this request.  Any other response configuration is
// discarded if a request is configured to return an error.
func (mock *MockRequest) WillReturnError(err error) {
	mock.Response = &mockResponse{Err: err}
}

// WithBody identifies the expected body to be sent with the request.
func (mock *MockRequest) WithBody(b []byte) *MockRequest {
	mock.body = &b
	return mock
}

// WithHeader identifies a header expected to be included with the request. The key (k)
// is normalised using textproto.CanonicalMIMEHeaderKey.
//
// If no values are specified then the header only needs to be present.  Otherwise
// each value may be any source accepted by header.Resolve (e.g. a string, a
// header.Value, a strongly-typed field or a *header.Values container) and the
// header must be present with exactly the resolved values, in the order given.
//
// A value that cannot be resolved is reported as an unmet expectation.
//
// To configured a non-canonical header, use WithNonCanonicalHeader().
func (mock *MockRequest) WithHeader(k string, v ...any) *MockRequest {
	return mock.WithNonCanonicalHeader(textproto.CanonicalMIMEHeaderKey(k), v...)
}

// WithNonCanonicalHeader identifies a non-canonical header expected to be
// included with the request. The key (k) is expected to match the case as
// specified.  Values are specified and compared as for WithHeader().
//
// To configured a canonical header, ensuring that the header key is normalised
// using textproto.CanonicalMIMEHeaderKey, use WithHeader().
func (mock *MockRequest) WithNonCanonicalHeader(k string, v ...any) *MockRequest {
	if len(v) == 0 {
		mock.headers[k] = nil
		return mock
	}

	vs := &header.Values{}
	for _, v := range v {
		if err := vs.AppendFrom(v); err != nil {
			mock.invalid = append(mock.invalid, fmt.Errorf("%w: header %s: %w", ErrInvalidExpectation, k, err))
			return mock
		}
	}
	mock.headers[k] = vs
	return mock
}
