package request

import "net/http"

// ContentType sets the canonical Content-Type header on a request.  The
// content type may be a header.MediaType or any other source accepted by
// Header().
func ContentType(v any) func(*http.Request) error {
	return Header("Content-Type", v)
}
