package request

import (
	"encoding/json"
	"strconv"

	"github.com/blugnu/http/v2/header"
)

// retries is the field carried by the MaxRetriesHeader.
type retries uint

func (n retries) FieldValue() header.Value {
	return header.MustParseValue(strconv.FormatUint(uint64(n), 10))
}

// statusCodes is the field carried by the AcceptStatusHeader: a JSON array
// of status codes.
type statusCodes []int

func (sc statusCodes) FieldValue() header.Value {
	// marshalling a slice of int cannot fail and JSON numbers are
	// valid header text
	b, _ := json.Marshal([]int(sc))
	return header.MustParseValue(string(b))
}

// flag is the field carried by boolean control headers.
type flag bool

func (f flag) FieldValue() header.Value {
	return header.MustParseValue(strconv.FormatBool(bool(f)))
}
