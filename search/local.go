package search

import (
	"math"

	"github.com/katalvlaran/lvsearch/problem"
)

// Local strategies keep a single current state and no frontier. Each loop
// iteration is one step: goal test, successor generation and a move. The
// walk taken is the returned path, so it may revisit states. A state
// without successors ends the walk with frontier_empty.

// hillClimbing moves to the neighbour with the lowest h (first in successor
// order on ties) while that strictly improves on the current h.
func (r *runner[S]) hillClimbing() (Result[S], error) {
	path := problem.Root(r.p.Initial())
	cur, ok := r.estimate(path.State())
	if !ok {
		return r.exhaust(ReasonInvalidHeuristic)
	}

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
		edges, err := r.successors(path.State())
		if err != nil {
			return r.fail(err)
		}
		if len(edges) == 0 {
			return r.exhaust(ReasonFrontierEmpty)
		}
		bestIdx, bestH := -1, math.Inf(1)
		for i, e := range edges {
			hv, ok := r.estimate(e.To)
			if !ok {
				return r.exhaust(ReasonInvalidHeuristic)
			}
			if bestIdx < 0 || hv < bestH {
				bestIdx, bestH = i, hv
			}
		}
		if !(bestH < cur) {
			return r.exhaust(ReasonLocalOptimum)
		}
		path, cur = path.Extend(edges[bestIdx]), bestH
	}
}

// annealing picks a uniformly random neighbour each step. An improving or
// equal move (Δ = h(next) − h(cur) ≤ 0) is always taken; a worse one is
// taken with probability exp(−Δ/T). T starts at InitialTemperature and is
// multiplied by CoolingRate after every step.
func (r *runner[S]) annealing() (Result[S], error) {
	path := problem.Root(r.p.Initial())
	cur, ok := r.estimate(path.State())
	if !ok {
		return r.exhaust(ReasonInvalidHeuristic)
	}
	t := r.opts.InitialTemperature

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
		edges, err := r.successors(path.State())
		if err != nil {
			return r.fail(err)
		}
		if len(edges) == 0 {
			return r.exhaust(ReasonFrontierEmpty)
		}
		e := edges[r.rng.Intn(len(edges))]
		hv, ok := r.estimate(e.To)
		if !ok {
			return r.exhaust(ReasonInvalidHeuristic)
		}
		if delta := hv - cur; delta <= 0 || r.rng.Float64() < math.Exp(-delta/t) {
			path, cur = path.Extend(e), hv
		}
		t *= r.opts.CoolingRate
	}
}

// tabu moves to the neighbour with the lowest h that is not among the last
// TabuSize states left, even when that move is worse. The walk stops with
// frontier_empty when every neighbour is tabu.
func (r *runner[S]) tabu() (Result[S], error) {
	path := problem.Root(r.p.Initial())
	if _, ok := r.estimate(path.State()); !ok {
		return r.exhaust(ReasonInvalidHeuristic)
	}
	recent := make([]S, 0, r.opts.TabuSize+1)
	isTabu := func(s S) bool {
		for _, t := range recent {
			if t == s {
				return true
			}
		}
		return false
	}

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
		edges, err := r.successors(path.State())
		if err != nil {
			return r.fail(err)
		}
		bestIdx, bestH := -1, math.Inf(1)
		for i, e := range edges {
			if isTabu(e.To) {
				continue
			}
			hv, ok := r.estimate(e.To)
			if !ok {
				return r.exhaust(ReasonInvalidHeuristic)
			}
			if bestIdx < 0 || hv < bestH {
				bestIdx, bestH = i, hv
			}
		}
		if bestIdx < 0 {
			return r.exhaust(ReasonFrontierEmpty)
		}
		if r.opts.TabuSize > 0 {
			recent = append(recent, path.State())
			if len(recent) > r.opts.TabuSize {
				recent = recent[1:]
			}
		}
		path = path.Extend(edges[bestIdx])
	}
}
