package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "fldemo",
		Short:        "Replay forward list scenarios",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	logger := func(c *cobra.Command) *slog.Logger {
		return newLogger(c.ErrOrStderr(), debug)
	}
	cmd.AddCommand(runCmd(logger), showCmd(logger))
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
