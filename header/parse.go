package header

import (
	"fmt"
	"iter"

	"braces.dev/errtrace"
)

// parseText is the only path by which raw text becomes a Value.  A parser
// diagnostic is wrapped with ErrInvalidValue.
func parseText(s string) (iter.Seq[Value], error) {
	v, err := ParseValue(s)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("%w: %w", ErrInvalidValue, err))
	}
	return single(v), nil
}
