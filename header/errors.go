package header

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidName        = errors.New("invalid header name")
	ErrInvalidValue       = errors.New("header value could not be parsed")
	ErrUnsupportedSource  = errors.New("unsupported header value source")
	ErrInvalidMediaType   = errors.New("invalid media type")
	ErrInvalidCredentials = errors.New("invalid authorization credentials")
)

// InvalidValueError is the diagnostic reported by ParseValue for text that
// is not a valid header field value.  It identifies the first byte in the
// text that is not permitted.
type InvalidValueError struct {
	Text   string
	Offset int
	Char   byte
}

// Error implements the error interface for InvalidValueError.
func (err *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid byte 0x%02x at offset %d in %s",
		err.Char,
		err.Offset,
		strconv.Quote(err.Text),
	)
}
