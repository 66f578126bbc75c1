package request

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/blugnu/http/v2/header"
)

// canonical casing avoids go-staticcheck flagging the constant with SA1008
const AcceptStatusHeader = "X-Blugnu-Http-Accept-Status"

// AcceptStatus adds to the status codes that will be accepted in a response
// to the request.  http.StatusOK is always accepted.
func AcceptStatus(codes ...int) func(*http.Request) error {
	return func(rq *http.Request) error {
		handle := func(err error) error {
			return fmt.Errorf("request.AcceptStatus: %w", err)
		}

		// where the header has more than one value the last is significant,
		// as when the client parses it
		acc := []int{http.StatusOK}
		vs, err := header.Get(rq.Header, AcceptStatusHeader)
		if err != nil {
			return handle(err)
		}
		if n := vs.Len(); n > 0 {
			if err := json.Unmarshal([]byte(vs.At(n-1).String()), &acc); err != nil {
				return handle(fmt.Errorf("%w: %w", ErrInvalidJSON, err))
			}
		}

		return NonCanonicalHeader(AcceptStatusHeader, statusCodes(append(acc, codes...)))(rq)
	}
}
