package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func showCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show DIR ID",
		Short: "Print a persisted snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPersister(format, args[0])
			if err != nil {
				return err
			}
			snap, err := p.Load(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			logger(cmd).Debug("snapshot.loaded", "id", snap.ListID, "size", snap.Values.Size())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", snap.ListID, snap.Version)
			fmt.Fprintln(out, snap.Values.Slice())
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "yaml", "snapshot format: yaml or json")
	return c
}
