package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/loader"
)

func newWatchCmd(a *app) *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-run a problem file every time it changes",
		Long: `Run FILE like "lvsearch run", then again after every save until interrupted.
A file that fails to load or search is logged and the watch goes on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return loader.Watch(cmd.Context(), args[0], loader.DefaultDebounce, func(p *loader.Problem, err error) {
				if err == nil {
					err = a.runProblem(cmd.Context(), p, rf)
				}
				if err != nil {
					a.logger.Error("watch run failed", slog.String("file", args[0]), slog.String("error", err.Error()))
				}
			})
		},
	}
	cmd.Flags().StringVar(&rf.strategy, "strategy", "", "run only this strategy")

	return cmd
}
