package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/blugnu/http/v2/internal/config"
)

// check loads each profile and writes the header block resulting from
// applying it to w.  Every rejected header is logged.
func check(w io.Writer, log *slog.Logger, files []string) error {
	rejected := 0
	for _, path := range files {
		p, err := config.Load(path)
		if err != nil {
			rejected++
			log.Error("profile not loaded", "path", path, "error", err)
			continue
		}

		for _, err := range p.Invalid {
			rejected++
			logRejection(log, err, slog.String("path", path))
		}

		h := http.Header{}
		if err := p.Apply(h); err != nil {
			rejected++
			logRejection(log, err, slog.String("path", path))
			continue
		}

		name := p.Name
		if name == "" {
			name = path
		}
		fmt.Fprintf(w, "# %s\n", name)
		if err := h.Write(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
		log.Info("profile checked", "path", path, "headers", len(p.Entries), "rejected", len(p.Invalid))
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d", errRejected, rejected)
	}
	return nil
}
