// Package config loads header profiles: TOML files naming a set of headers
// to be applied to a request.
//
//	name = "api"
//
//	[headers]
//	Content-Type    = "application/json"
//	Accept-Encoding = ["gzip", "br"]
//
// A string is a single header value; an array of strings is a list of
// values for the same header.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/blugnu/http/v2/header"
)

var (
	ErrLoadingProfile   = errors.New("error loading profile")
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Entry is a header configured in a profile.
type Entry struct {
	Name   string
	Values *header.Values
}

// Profile is a named set of headers.
type Profile struct {
	Name    string
	Path    string
	Entries []Entry

	// Invalid holds an error for each configured header that was rejected;
	// rejected headers have no Entry
	Invalid []error
}

type fileProfile struct {
	Name    string         `toml:"name"`
	Headers map[string]any `toml:"headers"`
}

// Load reads the profile at path.  Headers are returned in the order in
// which they appear in the file.
//
// An error is returned only if the file cannot be read or is not valid
// TOML; a header that cannot be converted is recorded in Profile.Invalid.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %w", ErrLoadingProfile, path, err)
	}
	return Parse(path, data)
}

// Parse decodes a profile from data; path identifies the source in the
// result and in errors.
func Parse(path string, data []byte) (*Profile, error) {
	var raw fileProfile
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %w", ErrLoadingProfile, path, err)
	}

	p := &Profile{Name: raw.Name, Path: path}
	for _, key := range meta.Keys() {
		if len(key) != 2 || key[0] != "headers" {
			continue
		}
		name := key[1]
		vs, err := values(raw.Headers[name])
		if err == nil {
			err = header.ValidateName(name)
		}
		if err != nil {
			p.Invalid = append(p.Invalid, fmt.Errorf("%s: %s: %w", path, name, err))
			continue
		}
		p.Entries = append(p.Entries, Entry{Name: name, Values: vs})
	}
	return p, nil
}

// values converts a decoded TOML value to a container of header values.
func values(v any) (*header.Values, error) {
	vs := &header.Values{}
	switch v := v.(type) {
	case string:
		if err := vs.AppendFrom(header.Text(v)); err != nil {
			return nil, err
		}
	case []any:
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %d: %T", ErrUnsupportedValue, i, e)
			}
			if err := vs.AppendFrom(header.Text(s)); err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return vs, nil
}

// Apply sets every header in the profile on h, replacing any existing
// values.  An empty array removes the header.
func (p *Profile) Apply(h http.Header) error {
	for _, e := range p.Entries {
		if err := header.Set(h, e.Name, e.Values); err != nil {
			return fmt.Errorf("%s: %w", p.Path, err)
		}
	}
	return nil
}
