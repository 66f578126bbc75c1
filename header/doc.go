// Package header converts the many forms in which a caller may supply an
// HTTP header value into one canonical form: a sequence of validated
// header values.
//
// # Sources
//
// Any type implementing [Source] may be used wherever a header value is
// accepted.  The package provides sources for:
//
//   - a single [Value]
//   - a [Values] container (by pointer) or a [Slice] of values
//   - strongly-typed fields, via the [Field] interface
//   - raw text: [Text], [Bytes]
//
// [Resolve] additionally accepts the builtin forms of raw text (string,
// *string, []byte, *strings.Builder and *bytes.Buffer) and []Value, so that
// a consumer may accept any of these as an `any` argument:
//
//	err := header.Set(rq.Header, "Content-Type", "application/json")
//	err := header.Set(rq.Header, "Content-Type", header.MediaTypeJSON)
//	err := header.Add(rq.Header, "Accept-Encoding", encodings) // *header.Values
//
// Raw text is the only source that can fail: it is parsed using [ParseValue]
// and, if invalid, results in an error wrapping [ErrInvalidValue] and an
// [*InvalidValueError] identifying the offending byte.
//
// # Sequences
//
// Sequences obtained from values, fields, text, containers and slices may be
// ranged over any number of times.  A sequence obtained from a container
// yields the values held at the time it was obtained.
package header
