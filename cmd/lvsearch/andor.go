package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/aostar"
	"github.com/katalvlaran/lvsearch/loader"
)

func newAndOrCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "andor FILE",
		Short: "Solve the AND-OR section of a problem file with AO*",
		Example: `  lvsearch andor testdata/plans.yaml
  lvsearch andor testdata/plans.yaml --max-depth 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			if p.AndOr == nil {
				return fmt.Errorf("%s: no andor section", args[0])
			}
			opts := append(append([]aostar.Option(nil), p.AndOr.Options...),
				aostar.WithContext(cmd.Context()),
				aostar.WithLogger(a.logger.With(slog.String("component", "aostar"))),
			)
			if cmd.Flags().Changed("max-depth") {
				opts = append(opts, aostar.WithMaxDepth(maxDepth))
			}
			sol, err := aostar.Solve(p.AndOr.Graph, p.AndOr.Root, opts...)
			a.collector.ObserveSolve(sol, err)
			if err != nil {
				return err
			}

			return a.printer.Solution(p.Name, sol)
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "expand at most this many OR levels, estimating below (0 = exact)")

	return cmd
}
