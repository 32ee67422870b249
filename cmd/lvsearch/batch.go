package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/batch"
	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/search"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		concurrency int
		failFast    bool
	)
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Run every configured search of several problem files concurrently",
		Example: `  lvsearch batch testdata/*.yaml --concurrency 4
  lvsearch batch a.yaml b.yaml --fail-fast --metrics-out batch.prom`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var jobs []batch.Job[string]
			for _, path := range args {
				p, err := loader.Load(path)
				if err != nil {
					return err
				}
				jobs = append(jobs, batch.Jobs(p)...)
			}
			logger := a.logger.With(slog.String("component", "search"))
			for i := range jobs {
				jobs[i].Options = append(append([]search.Option(nil), jobs[i].Options...), search.WithLogger(logger))
			}

			opts := []batch.Option{
				batch.WithContext(cmd.Context()),
				batch.WithObserver(a.collector),
				batch.WithLogger(a.logger.With(slog.String("component", "batch"))),
			}
			if concurrency > 0 {
				opts = append(opts, batch.WithConcurrency(concurrency))
			}
			if failFast {
				opts = append(opts, batch.WithFailFast())
			}
			outs, err := batch.Run(jobs, opts...)
			if outs == nil {
				return err
			}
			if perr := a.printer.Outcomes(outs); perr != nil {
				return perr
			}

			return err
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "searches in flight (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop after the first failing search")

	return cmd
}
