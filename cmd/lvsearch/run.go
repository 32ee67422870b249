package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/search"
)

type runFlags struct {
	strategy string
	strict   bool
}

func newRunCmd(a *app) *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Search a problem file once per configured run",
		Long: `Load FILE and run every search it configures, printing one report per run.

--strategy replaces the configured runs with a single search using that
strategy and the file's search options.`,
		Example: `  lvsearch run testdata/classroom.yaml
  lvsearch run testdata/classroom.yaml --strategy beam --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			return a.runProblem(cmd.Context(), p, rf)
		},
	}
	cmd.Flags().StringVar(&rf.strategy, "strategy", "", "run only this strategy")
	cmd.Flags().BoolVar(&rf.strict, "strict", false, "fail when a search does not reach a goal")

	return cmd
}

// errNotFound is returned under --strict.
var errNotFound = errors.New("no solution found")

func (a *app) runProblem(ctx context.Context, p *loader.Problem, rf runFlags) error {
	if p.Search == nil {
		return fmt.Errorf("%s: no search problem (only andor)", p.Name)
	}
	runs := p.Runs
	if rf.strategy != "" {
		s, err := search.ParseStrategy(rf.strategy)
		if err != nil {
			return err
		}
		runs = []loader.Run{{Label: s.String(), Strategy: s, Options: p.Base.Options}}
	}

	missed := 0
	for _, r := range runs {
		opts := append(append([]search.Option(nil), r.Options...),
			search.WithContext(ctx),
			search.WithLogger(a.logger.With(slog.String("component", "search"))),
			search.WithObserver(a.collector),
		)
		res, err := search.Search[string](p.Search, p.Heuristic, r.Strategy, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Label, err)
		}
		name := r.Label
		if p.Name != "" {
			name = p.Name + "/" + r.Label
		}
		if err := a.printer.Result(name, res); err != nil {
			return err
		}
		if !res.Found() {
			missed++
		}
	}
	if rf.strict && missed > 0 {
		return fmt.Errorf("%w in %d of %d runs", errNotFound, missed, len(runs))
	}

	return nil
}
