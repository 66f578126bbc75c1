package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/blugnu/http/v2/header"
)

// value converts each argument as raw header text, writing the canonical
// value of each accepted argument to w.
func value(w io.Writer, log *slog.Logger, args []string) error {
	rejected := 0
	for i, arg := range args {
		seq, err := header.Resolve(arg)
		if err != nil {
			rejected++
			logRejection(log, err, slog.Int("arg", i+1))
			continue
		}
		for v := range seq {
			fmt.Fprintln(w, v)
			log.Debug("value accepted", "arg", i+1, "value", v)
		}
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", errRejected, rejected, len(args))
	}
	return nil
}

// logRejection logs an error together with the parser diagnostic, if any.
func logRejection(log *slog.Logger, err error, attrs ...any) {
	var ive *header.InvalidValueError
	if errors.As(err, &ive) {
		attrs = append(attrs, "diagnostic", ive)
	}
	log.Error("value rejected", append(attrs, "error", err)...)
}
