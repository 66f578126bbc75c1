package header

import (
	"fmt"
	"mime"

	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"
)

// MediaType is a strongly-typed media type field, suitable for use as a
// Content-Type or Accept header value.
//
// A MediaType is valid by construction; use NewMediaType or one of the
// predefined media types.
type MediaType struct {
	v Value
}

var (
	MediaTypeJSON        = MediaType{Value{"application/json"}}
	MediaTypeOctetStream = MediaType{Value{"application/octet-stream"}}
	MediaTypeText        = MediaType{Value{"text/plain"}}
)

// NewMediaType returns a MediaType for a type/subtype and optional
// parameters, formatted as per RFC 2045 and RFC 2616.  Parameter values are
// quoted where required.
//
// ErrInvalidMediaType is returned if the type or any parameter name is not a
// valid token, or if a parameter value cannot be represented.
func NewMediaType(t string, params map[string]string) (MediaType, error) {
	s := mime.FormatMediaType(t, params)
	if s == "" {
		return MediaType{}, errtrace.Wrap(fmt.Errorf("%w: %q", ErrInvalidMediaType, t))
	}
	v, err := ParseValue(s)
	if err != nil {
		return MediaType{}, errtrace.Wrap(fmt.Errorf("%w: %w", ErrInvalidMediaType, err))
	}
	return MediaType{v}, nil
}

// FieldValue implements Field.
func (mt MediaType) FieldValue() Value { return mt.v }

// String returns the formatted media type.
func (mt MediaType) String() string { return mt.v.s }

// Authorization is a strongly-typed Authorization field consisting of an
// authentication scheme and credentials.
type Authorization struct {
	v Value
}

// NewAuthorization returns an Authorization field for a scheme and
// credentials.  ErrInvalidCredentials is returned if the scheme is not a
// valid token or the credentials are not a valid header value (in which case
// the error also wraps ErrInvalidValue).
func NewAuthorization(scheme, credentials string) (Authorization, error) {
	if !httpguts.ValidHeaderFieldName(scheme) {
		return Authorization{}, errtrace.Wrap(fmt.Errorf("%w: scheme %q", ErrInvalidCredentials, scheme))
	}
	v, err := ParseValue(scheme + " " + credentials)
	if err != nil {
		return Authorization{}, errtrace.Wrap(fmt.Errorf("%w: %w: %w", ErrInvalidCredentials, ErrInvalidValue, err))
	}
	return Authorization{v}, nil
}

// Bearer returns an Authorization field using the Bearer scheme.
func Bearer(token string) (Authorization, error) {
	return errtrace.Wrap2(NewAuthorization("Bearer", token))
}

// FieldValue implements Field.
func (a Authorization) FieldValue() Value { return a.v }
