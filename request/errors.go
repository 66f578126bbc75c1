package request

import "errors"

var (
	ErrInvalidJSON     = errors.New("invalid json")
	ErrMarshallingJSON = errors.New("error marshalling json")
)
