package search

import (
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/problem"
)

// bestFirst is the shared loop of AStar, Greedy, WeightedAStar and
// UniformCost; they differ only in the priority of a pushed path.
//
// Visited rule: best[s] is the cheapest cost queued for s and closed[s] the
// cost s was expanded at. A popped entry is discarded when s was closed at an
// equal or better cost, or when a cheaper entry for s is queued. Children are
// pushed only on a strictly better cost, which re-opens closed states when an
// inconsistent heuristic finds a cheaper route.
func (r *runner[S]) bestFirst(strategy Strategy) (Result[S], error) {
	priority := func(g, h float64) float64 {
		switch strategy {
		case Greedy:
			return h
		case WeightedAStar:
			return g + r.opts.Weight*h
		case UniformCost:
			return g
		default:
			return g + h
		}
	}

	start := r.p.Initial()
	h0, ok := r.estimate(start)
	if !ok {
		return r.exhaust(ReasonInvalidHeuristic)
	}
	if strategy == UniformCost {
		h0 = 0
	}

	q := frontier.New[S](r.opts.TieBreak)
	q.Push(priority(0, h0), problem.Root(start))
	best := map[S]float64{start: 0}
	closed := make(map[S]float64)

	for {
		if reason, stop := r.interrupted(); stop {
			return r.exhaust(reason)
		}
		entry, ok := q.Pop()
		if !ok {
			return r.exhaust(ReasonFrontierEmpty)
		}
		path := entry.Path
		s, g := path.State(), path.Cost()
		if c, seen := closed[s]; seen && c <= g {
			continue
		}
		if g > best[s] {
			continue
		}
		if !r.admit(path) {
			return r.exhaust(ReasonCapExceeded)
		}
		closed[s] = g

		if r.p.IsGoal(s) {
			return r.succeed(path)
		}

		edges, err := r.successors(s)
		if err != nil {
			return r.fail(err)
		}
		for _, e := range edges {
			ng := g + e.Cost
			if old, known := best[e.To]; known && ng >= old {
				continue
			}
			var hv float64
			if strategy != UniformCost {
				if hv, ok = r.estimate(e.To); !ok {
					return r.exhaust(ReasonInvalidHeuristic)
				}
			}
			best[e.To] = ng
			q.Push(priority(ng, hv), path.Extend(e))
		}
	}
}
