// Package logging builds the slog loggers used by the command line tools.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/blugnu/http/v2/header"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(err *header.InvalidValueError) slog.Value {
		return slog.GroupValue(
			slog.String("text", err.Text),
			slog.Int("offset", err.Offset),
			slog.String("char", fmt.Sprintf("0x%02x", err.Char)),
		)
	}),
)

// New returns a logger writing to w.  The dev flag selects a developer
// friendly handler; otherwise a compact console handler is used.
func New(w io.Writer, dev bool, level slog.Leveler) *slog.Logger {
	if dev {
		return slog.New(newHandler(
			devslog.NewHandler(w, &devslog.Options{
				HandlerOptions: &slog.HandlerOptions{
					AddSource: true,
					Level:     level,
				},
				SortKeys:   true,
				TimeFormat: time.RFC3339Nano,
			}),
		))
	}
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			Level:      level,
			TimeFormat: time.TimeOnly,
		}),
	))
}

// ParseLevel returns the slog level named by s (case-insensitive).
// An empty string is the info level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	err := l.UnmarshalText([]byte(strings.ToUpper(s)))
	return l, err
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a logger that discards everything.
var Noop = slog.New(noopHandler{})
