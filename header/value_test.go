package header

import (
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/blugnu/test"
)

func TestParseValue(t *testing.T) {
	// ARRANGE
	testcases := []struct {
		scenario string
		exec     func(t *testing.T)
	}{
		{scenario: "valid",
			exec: func(t *testing.T) {
				// ACT
				v, err := ParseValue("text/plain")

				// ASSERT
				test.Error(t, err).IsNil()
				test.That(t, v.String()).Equals("text/plain")
			},
		},
		{scenario: "empty",
			exec: func(t *testing.T) {
				// ACT
				v, err := ParseValue("")

				// ASSERT
				test.Error(t, err).IsNil()
				test.That(t, v).Equals(Value{})
			},
		},
		{scenario: "whitespace is retained",
			exec: func(t *testing.T) {
				// ACT
				v, err := ParseValue(" a\tb ")

				// ASSERT
				test.Error(t, err).IsNil()
				test.That(t, v.String()).Equals(" a\tb ")
			},
		},
		{scenario: "obs-text",
			exec: func(t *testing.T) {
				// ACT
				_, err := ParseValue("caf\xc3\xa9")

				// ASSERT
				test.Error(t, err).IsNil()
			},
		},
		{scenario: "control character",
			exec: func(t *testing.T) {
				// ACT
				_, err := ParseValue("text\n/plain")

				// ASSERT
				var diag *InvalidValueError
				test.IsTrue(t, errors.As(err, &diag), "is an *InvalidValueError")
				test.That(t, diag.Offset).Equals(4)
				test.That(t, diag.Char).Equals('\n')
				test.That(t, diag.Text).Equals("text\n/plain")
				test.That(t, diag.Error()).Equals(`invalid byte 0x0a at offset 4 in "text\n/plain"`)
			},
		},
		{scenario: "DEL",
			exec: func(t *testing.T) {
				// ACT
				_, err := ParseValue("abc\x7f")

				// ASSERT
				var diag *InvalidValueError
				test.IsTrue(t, errors.As(err, &diag), "is an *InvalidValueError")
				test.That(t, diag.Offset).Equals(3)
				test.That(t, diag.Char).Equals(0x7f)
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.scenario, func(t *testing.T) {
			tc.exec(t)
		})
	}
}

func TestMustParseValue(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		test.That(t, MustParseValue("gzip").String()).Equals("gzip")
	})

	t.Run("invalid", func(t *testing.T) {
		defer func() {
			r := recover()
			err, ok := r.(error)
			test.IsTrue(t, ok, "panics with an error")

			var diag *InvalidValueError
			test.IsTrue(t, errors.As(err, &diag), "is an *InvalidValueError")
		}()
		MustParseValue("\x00")
	})
}

func TestValue(t *testing.T) {
	// ARRANGE
	v := MustParseValue("a")

	// ASSERT
	test.IsTrue(t, v.Equal(v.Clone()), "clone is equal")
	test.IsTrue(t, !v.Equal(MustParseValue("b")), "different text is not equal")
	test.That(t, v.LogValue().Kind()).Equals(slog.KindString)
	test.That(t, v.LogValue().String()).Equals("a")

	seq, err := v.HeaderValues()
	test.Error(t, err).IsNil()
	test.Slice(t, slices.Collect(seq)).Equals([]Value{v})
}
