package search

import (
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/problem"
)

// beam runs local beam search. Each round goal-tests and expands every path
// of the beam, scores the children by h of their last state, and keeps the
// BeamWidth best as the next beam. Children never revisit a state already
// on their own path. Discarded paths are gone for good, which makes beam
// search incomplete: it may exhaust while a solution exists.
func (r *runner[S]) beam() (Result[S], error) {
	start := r.p.Initial()
	if _, ok := r.estimate(start); !ok {
		return r.exhaust(ReasonInvalidHeuristic)
	}
	beam := []frontier.Entry[S]{{Path: problem.Root(start)}}
	next := frontier.New[S](r.opts.TieBreak)

	for {
		if reason, stop := r.interrupted(); stop {
			return r.exhaust(reason)
		}
		for _, entry := range beam {
			path := entry.Path
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
			for _, e := range edges {
				if path.Contains(e.To) {
					continue
				}
				hv, ok := r.estimate(e.To)
				if !ok {
					return r.exhaust(ReasonInvalidHeuristic)
				}
				next.Push(hv, path.Extend(e))
			}
		}
		if next.Len() == 0 {
			return r.exhaust(ReasonFrontierEmpty)
		}
		next.Truncate(r.opts.BeamWidth)
		beam = next.Drain()
	}
}
