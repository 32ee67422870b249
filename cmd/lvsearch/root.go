package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Heuristic graph search from YAML problem files",
		Long: `lvsearch runs informed, uninformed and local search strategies over
state graphs described in YAML, and solves AND-OR problems with AO*.

Strategies:
  astar, greedy, weighted_astar, uniform_cost, bfs, dfs, iddfs,
  bidirectional, beam, hill_climbing, simulated_annealing, tabu, genetic,
  online`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.flags.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	f.StringVar(&a.flags.logFormat, "log-format", "text", "log format: text or json")
	f.StringVar(&a.flags.format, "format", "text", "report format: text or json")
	f.StringVar(&a.flags.color, "color", "auto", "colour text reports: auto, always or never")
	f.StringVar(&a.flags.metricsOut, "metrics-out", "", "write Prometheus metrics to this file on exit")
	f.StringVar(&a.flags.trace, "trace", "none", "span exporter: none or stdout (spans go to stderr)")

	root.AddCommand(
		newRunCmd(a),
		newAndOrCmd(a),
		newBatchCmd(a),
		newRandomCmd(a),
		newWatchCmd(a),
	)

	return root
}
