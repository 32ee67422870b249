package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/problem"
)

const tracerName = "github.com/katalvlaran/lvsearch/search"

// Search runs strategy on p guided by h and returns the outcome.
//
// A nil h is treated as heuristic.Zero. Errors are reserved for misuse:
// ErrNilProblem, ErrUnknownStrategy, ErrOptionViolation, and
// problem.ErrInvalidProblem (bidirectional search on a problem that is not
// problem.Reversible, or a failing successor function). Every other outcome,
// including an unreachable goal, a broken heuristic, the expansion cap and
// cancellation, is an Exhausted Result with a Reason.
//
// Each call owns its frontier, visited set and RNG, so concurrent calls may
// share one read-only problem.
func Search[S comparable](p problem.Problem[S], h heuristic.Func[S], strategy Strategy, opts ...Option) (Result[S], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(o.Ctx, "search."+strategy.String(),
		trace.WithAttributes(
			attribute.String("strategy", strategy.String()),
			attribute.Int("max_expansions", o.MaxExpansions),
		),
	)
	defer span.End()

	res, err := run(ctx, p, h, strategy, o)
	res.Strategy = strategy
	res.Elapsed = time.Since(start)

	span.SetAttributes(
		attribute.String("status", res.Status.String()),
		attribute.String("reason", string(res.Reason)),
		attribute.Int("nodes_expanded", res.NodesExpanded),
		attribute.Float64("cost", res.Cost),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.Logger.Debug("search rejected",
			slog.String("strategy", strategy.String()),
			slog.String("error", err.Error()),
		)
	} else {
		o.Logger.Debug("search finished",
			slog.String("strategy", strategy.String()),
			slog.String("status", res.Status.String()),
			slog.String("reason", string(res.Reason)),
			slog.Int("nodes_expanded", res.NodesExpanded),
			slog.Float64("cost", res.Cost),
			slog.Duration("elapsed", res.Elapsed),
		)
	}
	if o.Observer != nil {
		o.Observer.ObserveSearch(Summary{
			Strategy:      strategy,
			Status:        res.Status,
			Reason:        res.Reason,
			NodesExpanded: res.NodesExpanded,
			Cost:          res.Cost,
			Elapsed:       res.Elapsed,
			Err:           err,
		})
	}

	return res, err
}

// run validates the call and dispatches to the strategy implementation.
func run[S comparable](ctx context.Context, p problem.Problem[S], h heuristic.Func[S], strategy Strategy, o Options) (Result[S], error) {
	if o.err != nil {
		return Result[S]{}, o.err
	}
	if p == nil {
		return Result[S]{}, ErrNilProblem
	}
	if !strategy.Valid() {
		return Result[S]{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	if h == nil {
		h = heuristic.Zero[S]()
	}
	if o.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Deadline)
		defer cancel()
	}

	r := &runner[S]{
		p:      p,
		h:      h,
		opts:   o,
		ctx:    ctx,
		status: Ready,
		rng:    rand.New(rand.NewSource(o.Seed)),
	}
	o.Logger.Debug("search started",
		slog.String("strategy", strategy.String()),
		slog.Int("max_expansions", o.MaxExpansions),
	)
	r.status = Running

	switch strategy {
	case AStar, Greedy, WeightedAStar, UniformCost:
		return r.bestFirst(strategy)
	case BreadthFirst:
		return r.breadthFirst()
	case DepthFirst:
		return r.depthFirst()
	case IterativeDeepening:
		return r.iterativeDeepening()
	case Bidirectional:
		rp, ok := p.(problem.Reversible[S])
		if !ok {
			return Result[S]{}, fmt.Errorf("%w: bidirectional search needs a reversible problem", problem.ErrInvalidProblem)
		}
		return r.bidirectional(rp)
	case Beam:
		return r.beam()
	case HillClimbing:
		return r.hillClimbing()
	case SimulatedAnnealing:
		return r.annealing()
	case Tabu:
		return r.tabu()
	case Genetic:
		return r.genetic()
	default: // Online
		return r.online()
	}
}

// runner holds the mutable state of a single Search call.
type runner[S comparable] struct {
	p        problem.Problem[S]
	h        heuristic.Func[S]
	opts     Options
	ctx      context.Context
	status   Status
	expanded int
	rng      *rand.Rand
}

// interrupted checks the context once per loop iteration.
func (r *runner[S]) interrupted() (Reason, bool) {
	select {
	case <-r.ctx.Done():
		if errors.Is(r.ctx.Err(), context.DeadlineExceeded) {
			return ReasonDeadlineExceeded, true
		}
		return ReasonCancelled, true
	default:
		return ReasonNone, false
	}
}

// admit counts one expansion of path, or reports that the cap is reached.
func (r *runner[S]) admit(path *problem.Path[S]) bool {
	if r.expanded >= r.opts.MaxExpansions {
		return false
	}
	r.expanded++
	r.opts.OnExpand(ExpandEvent{
		State:    path.State(),
		Cost:     path.Cost(),
		Depth:    path.Depth(),
		Expanded: r.expanded,
	})

	return true
}

// estimate evaluates h, rejecting negative and NaN values. +Inf is allowed
// and marks a dead end.
func (r *runner[S]) estimate(s S) (float64, bool) {
	v := r.h(s)
	if math.IsNaN(v) || v < 0 {
		return v, false
	}

	return v, true
}

// successors wraps successor failures with problem.ErrInvalidProblem.
func (r *runner[S]) successors(s S) ([]problem.Edge[S], error) {
	edges, err := r.p.Successors(s)
	if err != nil {
		return nil, fmt.Errorf("%w: successors of %v: %w", problem.ErrInvalidProblem, s, err)
	}
	for _, e := range edges {
		if e.Cost < 0 || math.IsNaN(e.Cost) || math.IsInf(e.Cost, 0) {
			return nil, fmt.Errorf("%w: edge %v→%v cost=%v", problem.ErrInvalidProblem, s, e.To, e.Cost)
		}
	}

	return edges, nil
}

func (r *runner[S]) succeed(path *problem.Path[S]) (Result[S], error) {
	r.status = Succeeded

	return Result[S]{
		Status:        Succeeded,
		Path:          path.Actions(),
		States:        path.States(),
		Cost:          path.Cost(),
		NodesExpanded: r.expanded,
	}, nil
}

func (r *runner[S]) exhaust(reason Reason) (Result[S], error) {
	r.status = Exhausted

	return Result[S]{
		Status:        Exhausted,
		NodesExpanded: r.expanded,
		Reason:        reason,
	}, nil
}

// fail aborts the call with err; the partial expansion count is kept.
func (r *runner[S]) fail(err error) (Result[S], error) {
	return Result[S]{Status: r.status, NodesExpanded: r.expanded}, err
}
