package config

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/blugnu/http/v2/header"
	"github.com/blugnu/test"
)

func TestParse(t *testing.T) {
	// ARRANGE
	testcases := []struct {
		scenario string
		exec     func(t *testing.T)
	}{
		{scenario: "strings and arrays",
			exec: func(t *testing.T) {
				// ARRANGE
				data := []byte(`name = "api"

[headers]
Content-Type = "application/json"
Accept-Encoding = ["gzip", "br"]
X-Empty = ""
`)

				// ACT
				p, err := Parse("api.toml", data)

				// ASSERT
				test.Error(t, err).IsNil()
				test.That(t, p.Name).Equals("api")
				test.Slice(t, p.Invalid).IsEmpty()
				test.That(t, len(p.Entries)).Equals(3)
				test.That(t, p.Entries[0].Name).Equals("Content-Type")
				test.Slice(t, p.Entries[0].Values.Strings()).Equals([]string{"application/json"})
				test.That(t, p.Entries[1].Name).Equals("Accept-Encoding")
				test.Slice(t, p.Entries[1].Values.Strings()).Equals([]string{"gzip", "br"})
				test.Slice(t, p.Entries[2].Values.Strings()).Equals([]string{""})
			},
		},
		{scenario: "invalid entries",
			exec: func(t *testing.T) {
				// ARRANGE
				data := []byte(`[headers]
Accept = "text/plain"
X-Bad-Value = "a\nb"
X-Bad-Element = ["ok", "\u007f"]
X-Number = 42
X-Mixed = ["ok", 1]
"Bad Name" = "value"
`)

				// ACT
				p, err := Parse("bad.toml", data)

				// ASSERT
				test.Error(t, err).IsNil()
				test.That(t, len(p.Entries)).Equals(1)
				test.That(t, p.Entries[0].Name).Equals("Accept")
				test.That(t, len(p.Invalid)).Equals(5)
				test.Error(t, p.Invalid[0]).Is(header.ErrInvalidValue)
				test.Error(t, p.Invalid[1]).Is(header.ErrInvalidValue)
				test.Error(t, p.Invalid[2]).Is(ErrUnsupportedValue)
				test.Error(t, p.Invalid[3]).Is(ErrUnsupportedValue)
				test.Error(t, p.Invalid[4]).Is(header.ErrInvalidName)
			},
		},
		{scenario: "not toml",
			exec: func(t *testing.T) {
				// ACT
				p, err := Parse("broken.toml", []byte("[headers"))

				// ASSERT
				test.Error(t, err).Is(ErrLoadingProfile)
				test.That(t, p).IsNil()
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.scenario, func(t *testing.T) {
			tc.exec(t)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		// ACT
		p, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

		// ASSERT
		test.Error(t, err).Is(ErrLoadingProfile)
		test.Error(t, err).Is(os.ErrNotExist)
		test.That(t, p).IsNil()
	})

	t.Run("file", func(t *testing.T) {
		// ARRANGE
		path := filepath.Join(t.TempDir(), "profile.toml")
		err := os.WriteFile(path, []byte("[headers]\nAccept = \"*/*\"\n"), 0o600)
		test.Error(t, err).IsNil()

		// ACT
		p, err := Load(path)

		// ASSERT
		test.Error(t, err).IsNil()
		test.That(t, p.Path).Equals(path)
		test.That(t, len(p.Entries)).Equals(1)
	})
}

func TestProfile_Apply(t *testing.T) {
	// ARRANGE
	p := &Profile{
		Path: "p.toml",
		Entries: []Entry{
			{Name: "accept", Values: header.NewValues(header.MustParseValue("text/plain"))},
			{Name: "X-Remove", Values: &header.Values{}},
			{Name: "Vary", Values: header.NewValues(header.MustParseValue("a"), header.MustParseValue("b"))},
		},
	}
	h := http.Header{
		"Accept":   []string{"*/*"},
		"X-Remove": []string{"gone"},
		"X-Keep":   []string{"kept"},
	}

	// ACT
	err := p.Apply(h)

	// ASSERT
	test.Error(t, err).IsNil()
	test.That(t, h).Equals(http.Header{
		"Accept": []string{"text/plain"},
		"Vary":   []string{"a", "b"},
		"X-Keep": []string{"kept"},
	})
}
