// Command hdrlint validates HTTP header values.
//
//	hdrlint value TEXT...    validate each argument as a header value
//	hdrlint check FILE...    validate the headers in TOML header profiles
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/blugnu/http/v2/internal/logging"
)

// errRejected is returned by a command that rejected at least one value; the
// rejections themselves have already been logged.
var errRejected = errors.New("values rejected")

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		dev   bool
		level string

		// replaced once the flags are parsed
		log = logging.Noop
	)

	rootCmd := &cobra.Command{
		Use:           "hdrlint",
		Short:         "Validate HTTP header values",
		Long:          `Validate HTTP header values given on the command line or in TOML header profiles`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			l, err := logging.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("--level: %w", err)
			}
			log = logging.New(stderr, dev, l)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&dev, "dev", false, "Use the developer log format")
	rootCmd.PersistentFlags().StringVar(&level, "level", "info", "Log level (debug, info, warn, error)")

	logger := func() *slog.Logger { return log }

	rootCmd.AddCommand(&cobra.Command{
		Use:   "value TEXT...",
		Short: "Validate one or more header values",
		Long:  `Validate each argument as a header field value, printing the canonical value of each one that is accepted`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return value(stdout, logger(), args)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check FILE...",
		Short: "Validate the headers in one or more header profiles",
		Long:  `Load each TOML header profile and print the header block that results from applying its accepted headers`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, files []string) error {
			return check(stdout, logger(), files)
		},
	})

	return rootCmd
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "hdrlint:", err)
		}
		os.Exit(1)
	}
}
