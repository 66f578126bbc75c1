package request

import (
	"context"
	"net/http"

	"github.com/blugnu/errorcontext"
	"github.com/blugnu/http/v2/header"
)

// BearerToken sets a canonical Authorization header with a BearerToken value,
// using the result of a provided function.
//
// The token value is not supplied directly; instead, the provided function will
// be called to obtain a token, or an error if a token is not available.  A
// token that is not a valid header value results in an error wrapping
// header.ErrInvalidCredentials.
func BearerToken(fn func(context.Context) (string, error)) func(*http.Request) error {
	return func(rq *http.Request) error {
		ctx := rq.Context()

		t, err := fn(ctx)
		if err != nil {
			return errorcontext.Errorf(ctx, "BearerToken: %w", err)
		}

		auth, err := header.Bearer(t)
		if err != nil {
			return errorcontext.Errorf(ctx, "BearerToken: %w", err)
		}

		// a field cannot fail to resolve
		_ = header.Add(rq.Header, "Authorization", auth)

		return nil
	}
}
