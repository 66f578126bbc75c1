package header

import (
	"iter"
	"log/slog"

	"braces.dev/errtrace"
	"golang.org/x/net/http/httpguts"
)

// Value is a single, validated header field value.
//
// A Value can only be obtained from ParseValue (or MustParseValue), from a
// Field or from a container already holding one, so any Value is known to
// be valid.  Values are immutable; copying a Value is a clone.
//
// The zero Value is the empty header value.
type Value struct {
	s string
}

// ParseValue returns the Value for some text, or an *InvalidValueError if the
// text contains bytes not permitted in a header field value (control
// characters other than horizontal tab).
//
// The text is not trimmed; leading and trailing whitespace is retained and
// empty text is a valid (empty) value.
func ParseValue(s string) (Value, error) {
	if httpguts.ValidHeaderFieldValue(s) {
		return Value{s: s}, nil
	}

	for i := 0; i < len(s); i++ {
		if !httpguts.ValidHeaderFieldValue(s[i : i+1]) {
			return Value{}, errtrace.Wrap(&InvalidValueError{Text: s, Offset: i, Char: s[i]})
		}
	}

	// unreachable: validity is decided byte by byte
	return Value{}, errtrace.Wrap(&InvalidValueError{Text: s, Offset: -1})
}

// MustParseValue is like ParseValue but panics if the text is not valid.
// It is intended for initialising values from constants.
func MustParseValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the text of the value.
func (v Value) String() string { return v.s }

// Clone returns a copy of the value.
func (v Value) Clone() Value { return v }

// Equal reports whether two values hold identical text.
func (v Value) Equal(other Value) bool { return v.s == other.s }

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value { return slog.StringValue(v.s) }

// HeaderValues implements Source, yielding the value itself.
func (v Value) HeaderValues() (iter.Seq[Value], error) {
	return single(v), nil
}

// single returns a sequence yielding only v.
func single(v Value) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		yield(v)
	}
}
