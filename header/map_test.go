package header

import (
	"net/http"
	"testing"

	"github.com/blugnu/test"
)

func TestAddAndSet(t *testing.T) {
	// ARRANGE
	testcases := []struct {
		scenario string
		exec     func(t *testing.T)
	}{
		{scenario: "Add/canonical key",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{}

				// ACT
				err := Add(h, "accept-encoding", "gzip")

				// ASSERT
				test.Error(t, err).IsNil()
				test.Strings(t, h["Accept-Encoding"]).Equals([]string{"gzip"})
			},
		},
		{scenario: "Add/appends",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{"Accept-Encoding": {"gzip"}}

				// ACT
				err := Add(h, "Accept-Encoding", NewValues(values("br", "zstd")...))

				// ASSERT
				test.Error(t, err).IsNil()
				test.Strings(t, h["Accept-Encoding"]).Equals([]string{"gzip", "br", "zstd"})
			},
		},
		{scenario: "Add/invalid value leaves header unchanged",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{"Accept-Encoding": {"gzip"}}

				// ACT
				err := Add(h, "Accept-Encoding", "br\x00")

				// ASSERT
				test.Error(t, err).Is(ErrInvalidValue)
				test.Strings(t, h["Accept-Encoding"]).Equals([]string{"gzip"})
			},
		},
		{scenario: "Add/invalid name",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{}

				// ACT
				err := Add(h, "bad name", "value")

				// ASSERT
				test.Error(t, err).Is(ErrInvalidName)
				test.That(t, len(h)).Equals(0)
			},
		},
		{scenario: "AddRaw/non-canonical key",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{}
				k := "sessionid"

				// ACT
				err := AddRaw(h, k, "abc")

				// ASSERT
				test.Error(t, err).IsNil()
				test.Strings(t, h[k]).Equals([]string{"abc"})
			},
		},
		{scenario: "Set/replaces",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{"Content-Type": {"text/plain"}}

				// ACT
				err := Set(h, "content-type", MediaTypeJSON)

				// ASSERT
				test.Error(t, err).IsNil()
				test.Strings(t, h["Content-Type"]).Equals([]string{"application/json"})
			},
		},
		{scenario: "Set/empty source removes header",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{"Vary": {"Accept"}}

				// ACT
				err := Set(h, "Vary", Slice{})

				// ASSERT
				test.Error(t, err).IsNil()
				_, present := h["Vary"]
				test.IsTrue(t, !present, "header removed")
			},
		},
		{scenario: "Set/invalid value leaves header unchanged",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{"Content-Type": {"text/plain"}}

				// ACT
				err := Set(h, "Content-Type", []byte("text/\rhtml"))

				// ASSERT
				test.Error(t, err).Is(ErrInvalidValue)
				test.Strings(t, h["Content-Type"]).Equals([]string{"text/plain"})
			},
		},
		{scenario: "SetRaw/non-canonical key",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{}
				k := "x-trace"

				// ACT
				err := SetRaw(h, k, Text("1"))

				// ASSERT
				test.Error(t, err).IsNil()
				test.Strings(t, h[k]).Equals([]string{"1"})
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.scenario, func(t *testing.T) {
			tc.exec(t)
		})
	}
}

func TestGet(t *testing.T) {
	// ARRANGE
	testcases := []struct {
		scenario string
		exec     func(t *testing.T)
	}{
		{scenario: "present",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{"Accept": {"a", "b"}}

				// ACT
				vs, err := Get(h, "accept")

				// ASSERT
				test.Error(t, err).IsNil()
				test.Strings(t, vs.Strings()).Equals([]string{"a", "b"})
			},
		},
		{scenario: "not present",
			exec: func(t *testing.T) {
				// ACT
				vs, err := Get(http.Header{}, "Accept")

				// ASSERT
				test.Error(t, err).IsNil()
				test.That(t, vs.Len()).Equals(0)
			},
		},
		{scenario: "invalid value",
			exec: func(t *testing.T) {
				// ARRANGE
				h := http.Header{"Accept": {"a", "b\n"}}

				// ACT
				vs, err := Get(h, "Accept")

				// ASSERT
				test.Error(t, err).Is(ErrInvalidValue)
				test.IsTrue(t, vs == nil, "no values")
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.scenario, func(t *testing.T) {
			tc.exec(t)
		})
	}
}

func TestValidateName(t *testing.T) {
	test.Error(t, ValidateName("X-Request-Id")).IsNil()
	test.Error(t, ValidateName("")).Is(ErrInvalidName)
	test.Error(t, ValidateName("X Request")).Is(ErrInvalidName)
	test.Error(t, ValidateName("X-Request:")).Is(ErrInvalidName)
}
