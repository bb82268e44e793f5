package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/comalice/forwardlist/internal/production"
	"github.com/comalice/forwardlist/internal/scenario"
)

func runCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var dot bool
	var saveDir string
	var format string

	c := &cobra.Command{
		Use:   "run SCENARIO",
		Short: "Apply a YAML or JSON scenario and print the resulting list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cmd)

			cfg, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			l, err := scenario.NewRunner(log).Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, l.Slice())
			if dot {
				v := &production.DefaultVisualizer[int]{}
				fmt.Fprint(out, v.ExportDOT(l))
			}

			if saveDir == "" {
				return nil
			}
			p, err := newPersister(format, saveDir)
			if err != nil {
				return err
			}
			snap := production.Snapshot[int]{
				ListID:    cfg.ID,
				Version:   scenario.ComputeVersion(&cfg),
				Values:    l,
				Timestamp: time.Now().UTC(),
			}
			if err := p.Save(cmd.Context(), snap); err != nil {
				return err
			}
			log.Info("snapshot.saved", "id", snap.ListID, "version", snap.Version, "dir", saveDir, "format", format)
			return nil
		},
	}

	c.Flags().BoolVar(&dot, "dot", false, "also print the node chain as Graphviz DOT")
	c.Flags().StringVar(&saveDir, "save", "", "directory to persist the resulting snapshot in")
	c.Flags().StringVar(&format, "format", "yaml", "snapshot format: yaml or json")
	return c
}

func newPersister(format, dir string) (production.Persister[int], error) {
	switch format {
	case "yaml", "yml":
		return production.NewYAMLPersister[int](dir)
	case "json":
		return production.NewJSONPersister[int](dir)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
