package request

import (
	"net/http"

	"github.com/blugnu/errorcontext"
	"github.com/blugnu/http/v2/header"
)

// Header sets the value(s) of a canonical header, replacing any existing
// values.
//
// The value may be any source accepted by header.Resolve: a string (or other
// raw text), a header.Value, a strongly-typed field such as
// header.MediaTypeJSON, or multiple values in a *header.Values or
// []header.Value.  Raw text is validated; an invalid value results in an
// error wrapping header.ErrInvalidValue and the request is not modified.
//
// Canonical header keys are normalised; normalising a non-canonical
// header may result in unintended changes to the case of the key.
//
// To set a non-canonical header use NonCanonicalHeader() instead.
//
// Example:
//
//	// sets the canonical "Content-Type" header
//	Header("content-type", "application/json")
func Header(k string, v any) func(*http.Request) error {
	return func(rq *http.Request) error {
		if err := header.Set(rq.Header, k, v); err != nil {
			return errorcontext.Errorf(rq.Context(), "request.Header: %w", err)
		}
		return nil
	}
}

// AddHeader adds value(s) to a canonical header, retaining any existing
// values.  The value may be any source accepted by Header().
//
// Example:
//
//	// adds "gzip" and "br" to any existing "Accept-Encoding" values
//	AddHeader("accept-encoding", []header.Value{gzip, br})
func AddHeader(k string, v any) func(*http.Request) error {
	return func(rq *http.Request) error {
		if err := header.Add(rq.Header, k, v); err != nil {
			return errorcontext.Errorf(rq.Context(), "request.AddHeader: %w", err)
		}
		return nil
	}
}

// NonCanonicalHeader sets the value(s) of a header without canonicalising
// the key.  The value may be any source accepted by Header().
//
// When setting a NonCanonicalHeader() the key is applied exactly as-specified;
// this may be important for non-canonical keys but is undesirable for
// canonical headers.
//
// If setting a canonical header, use Header() instead.
//
// Example:
//
//	// sets a non-canonical "sessionid" header
//	NonCanonicalHeader("sessionid", id)
func NonCanonicalHeader(k string, v any) func(*http.Request) error {
	return func(rq *http.Request) error {
		if err := header.SetRaw(rq.Header, k, v); err != nil {
			return errorcontext.Errorf(rq.Context(), "request.NonCanonicalHeader: %w", err)
		}
		return nil
	}
}
