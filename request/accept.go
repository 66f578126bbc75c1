package request

import (
	"net/http"

	"github.com/blugnu/http/v2/header"
)

// Accept adds to the canonical Accept header on a request.  The content type
// may be a header.MediaType or any other source accepted by Header(),
// including multiple values.
func Accept(contentType any) func(rq *http.Request) error {
	return AddHeader("Accept", contentType)
}

// AcceptJSON adds a value of "application/json" to the canonical Accept header
func AcceptJSON() func(rq *http.Request) error {
	return Accept(header.MediaTypeJSON)
}
