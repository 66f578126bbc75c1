package header

import (
	"iter"
	"slices"
)

// Values is an ordered collection of header values sharing a single header
// name.  Values are kept in the order in which they were appended.
//
// Values is not safe for concurrent modification.
type Values struct {
	entries []Value
}

// NewValues returns a container holding the specified values.
func NewValues(vs ...Value) *Values {
	return &Values{entries: slices.Clone(vs)}
}

// Append adds values to the end of the container.
func (vs *Values) Append(v ...Value) {
	vs.entries = append(vs.entries, v...)
}

// AppendFrom resolves a source (see Resolve) and appends every value it
// yields.  If the source cannot be resolved the container is not modified.
func (vs *Values) AppendFrom(src any) error {
	seq, err := Resolve(src)
	if err != nil {
		return err
	}
	for v := range seq {
		vs.entries = append(vs.entries, v)
	}
	return nil
}

// At returns the value at index i; it panics if i is out of range.
func (vs *Values) At(i int) Value { return vs.entries[i] }

// Len returns the number of values in the container.
func (vs *Values) Len() int {
	if vs == nil {
		return 0
	}
	return len(vs.entries)
}

// All returns a sequence of the values in the container, in order.
func (vs *Values) All() iter.Seq[Value] {
	if vs == nil {
		return slices.Values([]Value(nil))
	}
	// a snapshot: entries is append-only so the elements visible through
	// this slice header are never modified
	return slices.Values(vs.entries[:len(vs.entries):len(vs.entries)])
}

// Strings returns the text of each value in the container, in order.
func (vs *Values) Strings() []string {
	result := make([]string, 0, vs.Len())
	for v := range vs.All() {
		result = append(result, v.String())
	}
	return result
}

// Clone returns an independent copy of the container.
func (vs *Values) Clone() *Values {
	if vs == nil {
		return nil
	}
	return &Values{entries: slices.Clone(vs.entries)}
}

// Reset removes all values from the container.  Sequences previously
// obtained from the container are unaffected.
func (vs *Values) Reset() {
	vs.entries = nil
}

// HeaderValues implements Source.  The returned sequence may be ranged over
// repeatedly and yields the values held when HeaderValues was called.
func (vs *Values) HeaderValues() (iter.Seq[Value], error) {
	return vs.All(), nil
}
