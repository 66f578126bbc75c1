package header

import (
	"fmt"
	"iter"
	"net/http"
	"net/textproto"

	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"
)

// Add appends the values resolved from src (see Resolve) to the values of a
// header.  The key is canonicalised using textproto.CanonicalMIMEHeaderKey.
//
// The source is resolved before the header is modified; if an error is
// returned the header is unchanged.
func Add(h http.Header, name string, src any) error {
	return errtrace.Wrap(AddRaw(h, textproto.CanonicalMIMEHeaderKey(name), src))
}

// AddRaw is like Add but does not canonicalise the key.
func AddRaw(h http.Header, key string, src any) error {
	seq, err := resolveFor(key, src)
	if err != nil {
		return err
	}
	for v := range seq {
		h[key] = append(h[key], v.s)
	}
	return nil
}

// Set replaces the values of a header with the values resolved from src
// (see Resolve).  The key is canonicalised using textproto.CanonicalMIMEHeaderKey.
// If the source yields no values the header is removed.
//
// The source is resolved before the header is modified; if an error is
// returned the header is unchanged.
func Set(h http.Header, name string, src any) error {
	return errtrace.Wrap(SetRaw(h, textproto.CanonicalMIMEHeaderKey(name), src))
}

// SetRaw is like Set but does not canonicalise the key.
func SetRaw(h http.Header, key string, src any) error {
	seq, err := resolveFor(key, src)
	if err != nil {
		return err
	}

	var vs []string
	for v := range seq {
		vs = append(vs, v.s)
	}
	if len(vs) == 0 {
		delete(h, key)
		return nil
	}
	h[key] = vs
	return nil
}

// Get returns the values of a header in a container.  The key is
// canonicalised using textproto.CanonicalMIMEHeaderKey.
//
// Each value in the header is parsed; ErrInvalidValue is returned if any
// value is not valid.  An empty container is returned if the header is not
// present.
func Get(h http.Header, name string) (*Values, error) {
	key := textproto.CanonicalMIMEHeaderKey(name)

	vs := &Values{}
	for _, s := range h[key] {
		if err := vs.AppendFrom(s); err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("%s: %w", key, err))
		}
	}
	return vs, nil
}

// ValidateName returns an error wrapping ErrInvalidName if a header name is
// not a valid token.
func ValidateName(name string) error {
	if !httpguts.ValidHeaderFieldName(name) {
		return errtrace.Wrap(fmt.Errorf("%w: %q", ErrInvalidName, name))
	}
	return nil
}

// resolveFor validates a header key and resolves a source for it.
func resolveFor(key string, src any) (iter.Seq[Value], error) {
	if err := ValidateName(key); err != nil {
		return nil, err
	}
	seq, err := Resolve(src)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("%s: %w", key, err))
	}
	return seq, nil
}
