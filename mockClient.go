package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/blugnu/http/v2/header"
)

const (
	firstExpectedRequest = 0
	noExpectedRequests   = -1
)

var (
	writeBody = func(rw http.ResponseWriter, d []byte) (int, error) { return rw.Write(d) }
)

// MockClient describes the methods used to configure expected requests
// on a mock client and to verify them once the code under test has run.
type MockClient interface {
	Expect(method string, path string) *MockRequest
	ExpectDelete(path string) *MockRequest
	ExpectGet(path string) *MockRequest
	ExpectPatch(path string) *MockRequest
	ExpectPost(path string) *MockRequest
	ExpectPut(path string) *MockRequest
	ExpectationsWereMet() error
	Reset()
}

// mockClient is the ClientInterface used by a client returned from
// NewMockClient.  Requests are matched, in order, against the configured
// expectations; requests beyond the expectations are recorded as unexpected.
type mockClient struct {
	name         string
	hostname     string
	expectations []*MockRequest
	unexpected   []*http.Request
	next         int
}

// NewMockClient returns an HttpClient to be injected into code under test
// together with the MockClient used to configure the requests that client
// is expected to make (and the responses to them).
//
// # params
//
//	name          // identifies the mock client in test failure reports and errors
//	wrap          // optional function(s) wrapping the mock with some other client
//	              // implementation; nil functions are ignored
//
// Client options (such as default headers) may be supplied after the
// wrappers using NewMockClientWithOptions.
//
// An anonymous interface is used for the wrapper functions so that callers
// are not coupled to a named interface type exported by this package.
func NewMockClient(name string, wrap ...func(c interface {
	Do(*http.Request) (*http.Response, error)
}) interface {
	Do(*http.Request) (*http.Response, error)
}) (HttpClient, MockClient) {
	return NewMockClientWithOptions(name, nil, wrap...)
}

// NewMockClientWithOptions is NewMockClient with additional ClientOptions
// applied to the returned client.  The URL and Using options are always
// applied last, so any URL or Using option in opts has no effect.
//
// This allows code that configures default headers on a client to be
// tested with the mock, e.g.:
//
//	c, mock := http.NewMockClientWithOptions("api",
//	    []http.ClientOption{http.Header("Accept", header.MediaTypeJSON)},
//	)
//	mock.ExpectGet("/path").WithHeader("Accept", "application/json")
func NewMockClientWithOptions(name string, opts []ClientOption, wrap ...func(c interface {
	Do(*http.Request) (*http.Response, error)
}) interface {
	Do(*http.Request) (*http.Response, error)
}) (HttpClient, MockClient) {
	mc := &mockClient{
		name:     name,
		hostname: "mock://hostname",
		next:     noExpectedRequests,
	}

	var do ClientInterface = mc
	for _, wrap := range wrap {
		if wrap != nil {
			do = wrap(do)
		}
	}

	opts = append(opts[:len(opts):len(opts)], URL(mc.hostname), Using(do))
	c, err := NewClient(mc.name, opts...)
	if err != nil {
		panic(fmt.Errorf("%s: %w", mc.name, err))
	}

	return c.(client), mc
}

// defaultResponse builds the response configured for an expected request.
// A request with no configured response receives an empty 200 OK.
func (mock *mockClient) defaultResponse(expected *MockRequest) (*http.Response, error) {
	rec := httptest.NewRecorder()
	resp := expected.Response

	if resp == nil {
		rec.WriteHeader(http.StatusOK)
		result := rec.Result()
		result.Body = http.NoBody
		return result, nil
	}

	if resp.invalid != nil {
		rec.WriteHeader(http.StatusInternalServerError)
		if _, err := writeBody(rec, []byte(resp.invalid.Error())); err != nil {
			return nil, err
		}
		return rec.Result(), nil
	}

	for k, v := range resp.headers {
		rec.Header()[k] = append([]string(nil), v...)
	}
	if resp.statusCode != nil {
		rec.WriteHeader(*resp.statusCode)
	}
	if len(resp.body) > 0 {
		// a response whose body could not be written is unusable
		if _, err := writeBody(rec, resp.body); err != nil {
			return nil, err
		}
	}

	result := rec.Result()
	if len(resp.body) == 0 {
		result.Body = http.NoBody
	}
	return result, resp.Err
}

// Do implements ClientInterface.  The request is recorded against the next
// expectation and answered with the response configured for it.  A request
// with no corresponding expectation, or one matched to an expectation that
// it WillNotBeCalled, is recorded as unexpected.
func (mock *mockClient) Do(rq *http.Request) (*http.Response, error) {
	if mock.next != noExpectedRequests && mock.next < len(mock.expectations) {
		expected := mock.expectations[mock.next]
		expected.actual = rq
		mock.next++

		if expected.isExpected {
			return mock.defaultResponse(expected)
		}
	}

	mock.unexpected = append(mock.unexpected, rq)
	return nil, ErrUnexpectedRequest
}

// ExpectationsWereMet returns a MockExpectationsError describing every
// unmet expectation and every unexpected request, or nil if there were none.
func (mock mockClient) ExpectationsWereMet() error {
	errs := []error{}

	for _, rq := range mock.expectations {
		rpt := rq.checkExpectations()
		if len(rpt) == 0 {
			continue
		}
		m := "<ANY METHOD>"
		if rq.method != nil {
			m = *rq.method
		}
		errs = append(errs, fmt.Errorf("request #%d: expecting: %s %s", rq.index+1, m, rq.url))
		for _, s := range rpt {
			errs = append(errs, fmt.Errorf("   %s", s))
		}
	}

	for ix, rq := range mock.unexpected {
		errs = append(errs, fmt.Errorf("request #%d: unexpected: %s %s",
			len(mock.expectations)+ix+1,
			rq.Method,
			rq.URL.String(),
		))
	}

	if len(errs) > 0 {
		return MockExpectationsError{mock.name, errs}
	}
	return nil
}

// Expect adds an expected request using a given method and path (joined to
// the mock client url).  The returned MockRequest may be used to add
// header or body expectations and to configure the response.
//
// With no further configuration the expectation is met by any request with
// the expected method and url, regardless of headers or body.
//
// Expect panics if the mock client has already received a request.
func (mock *mockClient) Expect(method string, path string) *MockRequest {
	if mock.next > 0 {
		msg := "requests have already been made"
		panic(fmt.Errorf("%s: %w: %s", mock.name, ErrCannotChangeExpectations, msg))
	}

	fqu, err := url.JoinPath(mock.hostname, path)
	if err != nil {
		msg := fmt.Sprintf("client url (%s) and/or request path (%s) are invalid",
			mock.hostname,
			path,
		)
		panic(fmt.Errorf("%w: %s: %w", ErrInvalidURL, msg, err))
	}

	rq := &MockRequest{
		index:      len(mock.expectations),
		method:     &method,
		url:        fqu,
		client:     mock,
		headers:    map[string]*header.Values{},
		isExpected: true,
	}
	mock.expectations = append(mock.expectations, rq)

	if len(mock.expectations) == 1 {
		mock.next = firstExpectedRequest
	}
	return rq
}

// ExpectDelete adds an expected DELETE request for a path.
func (mock *mockClient) ExpectDelete(path string) *MockRequest {
	return mock.Expect(http.MethodDelete, path)
}

// ExpectGet adds an expected GET request for a path.
func (mock *mockClient) ExpectGet(path string) *MockRequest {
	return mock.Expect(http.MethodGet, path)
}

// ExpectPatch adds an expected PATCH request for a path.
func (mock *mockClient) ExpectPatch(path string) *MockRequest {
	return mock.Expect(http.MethodPatch, path)
}

// ExpectPost adds an expected POST request for a path.
func (mock *mockClient) ExpectPost(path string) *MockRequest {
	return mock.Expect(http.MethodPost, path)
}

// ExpectPut adds an expected PUT request for a path.
func (mock *mockClient) ExpectPut(path string) *MockRequest {
	return mock.Expect(http.MethodPut, path)
}

// Reset discards all expectations and recorded requests.
func (mock *mockClient) Reset() {
	mock.expectations = []*MockRequest{}
	mock.unexpected = []*http.Request{}
	mock.next = noExpectedRequests
}
