package header

import (
	"bytes"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"braces.dev/errtrace"
)

// Source is implemented by any type that can stand in for one or more
// header values.
//
// HeaderValues must not modify the receiver.  Only sources holding raw text
// may return an error, and only one satisfying errors.Is(err, ErrInvalidValue).
type Source interface {
	HeaderValues() (iter.Seq[Value], error)
}

// Field is implemented by strongly-typed header fields: types that always
// resolve to exactly one header value.
type Field interface {
	FieldValue() Value
}

// FieldSource adapts a Field to a Source.
func FieldSource(f Field) Source { return fieldSource{f} }

type fieldSource struct{ f Field }

func (fs fieldSource) HeaderValues() (iter.Seq[Value], error) {
	return single(fs.f.FieldValue()), nil
}

// Slice is a slice of values.  Its sequence yields the elements in index
// order and may be ranged over repeatedly.
type Slice []Value

// HeaderValues implements Source.
func (s Slice) HeaderValues() (iter.Seq[Value], error) {
	return slices.Values(s), nil
}

// Seq adapts a sequence of values to a Source.  The values are trusted to be
// valid.  Whether the sequence may be ranged over more than once is decided
// by the underlying iterator.
type Seq iter.Seq[Value]

// HeaderValues implements Source.  A nil Seq yields no values.
func (s Seq) HeaderValues() (iter.Seq[Value], error) {
	if s == nil {
		return slices.Values([]Value(nil)), nil
	}
	return iter.Seq[Value](s), nil
}

// Text is raw header text.  It is parsed when converted.
type Text string

// HeaderValues implements Source by parsing the text.
func (t Text) HeaderValues() (iter.Seq[Value], error) {
	return parseText(string(t))
}

// Bytes is raw header text held in a byte slice.  The bytes are copied once,
// into the resulting Value.
type Bytes []byte

// HeaderValues implements Source by parsing the text.
func (b Bytes) HeaderValues() (iter.Seq[Value], error) {
	return Text(b).HeaderValues()
}

// Resolve converts any supported source to a sequence of header values.
//
// The following are supported, in order of precedence:
//
//	Source                           // HeaderValues() is called
//	Field                            // the field value
//	string, *string, []byte          // parsed as raw text
//	*strings.Builder, *bytes.Buffer  // the buffered text, parsed as raw text
//	[]Value                          // the elements, in order
//
// An error satisfying errors.Is(err, ErrInvalidValue) is returned if raw
// text is not a valid header value; the *InvalidValueError diagnostic may be
// obtained using errors.As.  Any other type, or a nil pointer of any type
// other than *Values, results in an ErrUnsupportedSource error.  A nil
// *Values is an empty container.
func Resolve(src any) (iter.Seq[Value], error) {
	if vs, ok := src.(*Values); ok {
		return vs.HeaderValues()
	}
	if rv := reflect.ValueOf(src); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, errtrace.Wrap(fmt.Errorf("%w: nil %T", ErrUnsupportedSource, src))
	}

	switch src := src.(type) {
	case Source:
		return errtrace.Wrap2(src.HeaderValues())
	case Field:
		return FieldSource(src).HeaderValues()
	case string:
		return Text(src).HeaderValues()
	case *string:
		return Text(*src).HeaderValues()
	case []byte:
		return Bytes(src).HeaderValues()
	case *strings.Builder:
		return Text(src.String()).HeaderValues()
	case *bytes.Buffer:
		return Bytes(src.Bytes()).HeaderValues()
	case []Value:
		return Slice(src).HeaderValues()
	}
	return nil, errtrace.Wrap(fmt.Errorf("%w: %T", ErrUnsupportedSource, src))
}
