package search

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvsearch/problem"
)

// online alternates lookahead and execution. Each step goal-tests the
// current state; with no plan left it looks Horizon moves ahead and keeps
// the cheapest goal-reaching sequence, or failing that the sequence to the
// horizon state with the lowest g + h. The next planned move is then
// executed. When the problem is a problem.Executor and the move lands in
// another state than planned, the rest of the plan is dropped and the next
// step replans from where the agent actually is.
//
// The returned path is the executed trajectory, so it may revisit states.
// Steps and lookahead expansions both count against MaxExpansions.
func (r *runner[S]) online() (Result[S], error) {
	exec, _ := r.p.(problem.Executor[S])
	path := problem.Root(r.p.Initial())
	var plan []problem.Edge[S]

	for {
		if reason, stop := r.interrupted(); stop {
			return r.exhaust(reason)
		}
		if !r.admit(path) {
			return r.exhaust(ReasonCapExceeded)
		}
		if r.p.IsGoal(path.State()) {
			return r.succeed(path)
		}
		if len(plan) == 0 {
			la := lookahead[S]{r: r, leafF: math.Inf(1)}
			reason, err := la.walk(problem.Root(path.State()))
			if err != nil {
				return r.fail(err)
			}
			if reason != ReasonNone {
				return r.exhaust(reason)
			}
			switch {
			case la.goal != nil:
				plan = la.goal.Edges()
			case la.leaf != nil:
				plan = la.leaf.Edges()
			default:
				return r.exhaust(ReasonFrontierEmpty)
			}
		}

		next := plan[0]
		plan = plan[1:]
		got := next
		if exec != nil {
			var err error
			if got, err = exec.Execute(path.State(), next); err != nil {
				return r.fail(fmt.Errorf("%w: execute %q from %v: %w", problem.ErrInvalidProblem, next.Action, path.State(), err))
			}
			if got.Cost < 0 || math.IsNaN(got.Cost) || math.IsInf(got.Cost, 0) {
				return r.fail(fmt.Errorf("%w: executed %v→%v cost=%v", problem.ErrInvalidProblem, path.State(), got.To, got.Cost))
			}
			if got.To != next.To {
				r.opts.Logger.Debug("online replan",
					slog.String("action", next.Action),
					slog.Any("expected", next.To),
					slog.Any("actual", got.To),
				)
				plan = nil
			}
		}
		path = path.Extend(got)
	}
}

// lookahead is one depth-limited planning pass rooted at the agent's state.
type lookahead[S comparable] struct {
	r     *runner[S]
	goal  *problem.Path[S] // cheapest goal-reaching path
	leaf  *problem.Path[S] // horizon path with the lowest g + h
	leafF float64
}

// walk explores depth-first with a path-local cycle check. Paths at least
// as expensive as the best goal path are pruned. The root was counted by
// the caller's step.
func (la *lookahead[S]) walk(p *problem.Path[S]) (Reason, error) {
	r := la.r
	if reason, stop := r.interrupted(); stop {
		return reason, nil
	}
	if p.Depth() > 0 {
		if la.goal != nil && p.Cost() >= la.goal.Cost() {
			return ReasonNone, nil
		}
		if r.p.IsGoal(p.State()) {
			la.goal = p
			return ReasonNone, nil
		}
		if p.Depth() == r.opts.Horizon {
			hv, ok := r.estimate(p.State())
			if !ok {
				return ReasonInvalidHeuristic, nil
			}
			if f := p.Cost() + hv; f < la.leafF {
				la.leaf, la.leafF = p, f
			}
			return ReasonNone, nil
		}
		if !r.admit(p) {
			return ReasonCapExceeded, nil
		}
	}

	edges, err := r.successors(p.State())
	if err != nil {
		return ReasonNone, err
	}
	for _, e := range edges {
		if p.Contains(e.To) {
			continue
		}
		if reason, err := la.walk(p.Extend(e)); reason != ReasonNone || err != nil {
			return reason, err
		}
	}

	return ReasonNone, nil
}
