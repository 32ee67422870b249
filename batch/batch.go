// Package batch runs many independent searches concurrently.
//
// Run executes jobs on a bounded errgroup. Every job owns its search call,
// so jobs may share read-only problems. Outcomes come back in job order
// whatever order the searches finish in.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/search"
)

// Run executes jobs with at most Concurrency searches in flight.
//
// Without FailFast every job runs and search errors are reported per
// Outcome; Run itself fails only on option misuse. With FailFast the first
// search error cancels the context of the remaining jobs (their results
// come back Exhausted/cancelled, or not started with Status Ready) and is
// returned wrapped in ErrJobFailed.
func Run[S comparable](jobs []Job[S], opts ...Option) ([]Outcome[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := make([]Outcome[S], len(jobs))
	for i := range jobs {
		id := jobs[i].ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		out[i] = Outcome[S]{JobID: id, Name: jobs[i].Name}
	}

	g, gctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Concurrency)
	o.Logger.Debug("batch started",
		slog.Int("jobs", len(jobs)),
		slog.Int("concurrency", o.Concurrency),
	)

	for i := range jobs {
		i := i
		job := jobs[i]
		g.Go(func() error {
			res, err := runJob(gctx, job, o)
			out[i].Result, out[i].Err = res, err
			if err != nil {
				o.Logger.Debug("batch job failed",
					slog.String("job", out[i].JobID.String()),
					slog.String("name", job.Name),
					slog.String("error", err.Error()),
				)
				if o.FailFast {
					return fmt.Errorf("%w: %s (%s): %w", ErrJobFailed, job.Name, out[i].JobID, err)
				}
			}
			return nil
		})
	}
	err := g.Wait()
	o.Logger.Debug("batch finished", slog.Int("jobs", len(jobs)), slog.Bool("failed", err != nil))

	return out, err
}

func runJob[S comparable](ctx context.Context, job Job[S], o Options) (search.Result[S], error) {
	if err := ctx.Err(); err != nil {
		return search.Result[S]{Strategy: job.Strategy}, nil
	}
	opts := make([]search.Option, 0, len(job.Options)+2)
	opts = append(opts, job.Options...)
	opts = append(opts, search.WithContext(ctx))
	if o.Observer != nil {
		opts = append(opts, search.WithObserver(o.Observer))
	}

	return search.Search(job.Problem, job.Heuristic, job.Strategy, opts...)
}
