package search

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/problem"
)

// bidirectional grows breadth-first layers alternately from the initial
// state and from every goal, and stops when a generated state is already
// known to the other side. The joined path has few edges but is not
// guaranteed cost-optimal on weighted problems.
func (r *runner[S]) bidirectional(p problem.Reversible[S]) (Result[S], error) {
	start := p.Initial()
	root := problem.Root(start)
	fwd := map[S]*problem.Path[S]{start: root}
	bwd := make(map[S]*problem.Path[S])
	fq := []*problem.Path[S]{root}
	var bq []*problem.Path[S]
	for _, g := range p.Goals() {
		if _, dup := bwd[g]; dup {
			continue
		}
		b := problem.Root(g)
		bwd[g] = b
		bq = append(bq, b)
	}

	if b, ok := bwd[start]; ok {
		if !r.admit(root) {
			return r.exhaust(ReasonCapExceeded)
		}
		return r.succeed(join(root, b))
	}

	forward := func(s S) ([]problem.Edge[S], error) { return r.successors(s) }
	backward := func(s S) ([]problem.Edge[S], error) {
		edges, err := p.Predecessors(s)
		if err != nil {
			return nil, fmt.Errorf("%w: predecessors of %v: %w", problem.ErrInvalidProblem, s, err)
		}
		return edges, nil
	}

	for len(fq) > 0 && len(bq) > 0 {
		var (
			meet   *problem.Path[S]
			reason Reason
			err    error
		)
		fq, meet, reason, err = r.layer(fq, fwd, bwd, forward, false)
		if err == nil && meet == nil && reason == ReasonNone {
			bq, meet, reason, err = r.layer(bq, bwd, fwd, backward, true)
		}
		switch {
		case err != nil:
			return r.fail(err)
		case meet != nil:
			return r.succeed(meet)
		case reason != ReasonNone:
			return r.exhaust(reason)
		}
	}

	return r.exhaust(ReasonFrontierEmpty)
}

// layer expands every path of one breadth-first layer on one side. own maps
// the states reached by this side, other those reached by the opposite side.
// It returns the next layer, or the joined initial→goal path on meeting.
func (r *runner[S]) layer(
	cur []*problem.Path[S],
	own, other map[S]*problem.Path[S],
	next func(S) ([]problem.Edge[S], error),
	backward bool,
) ([]*problem.Path[S], *problem.Path[S], Reason, error) {
	var out []*problem.Path[S]
	for _, path := range cur {
		if reason, stop := r.interrupted(); stop {
			return nil, nil, reason, nil
		}
		if !r.admit(path) {
			return nil, nil, ReasonCapExceeded, nil
		}
		edges, err := next(path.State())
		if err != nil {
			return nil, nil, ReasonNone, err
		}
		for _, e := range edges {
			if _, dup := own[e.To]; dup {
				continue
			}
			child := path.Extend(e)
			own[e.To] = child
			if o, ok := other[e.To]; ok {
				if backward {
					return nil, join(o, child), ReasonNone, nil
				}
				return nil, join(child, o), ReasonNone, nil
			}
			out = append(out, child)
		}
	}

	return out, nil, ReasonNone, nil
}

// join appends the backward path b (rooted at a goal, ending at the meeting
// state) to the forward path f (ending at the same state).
func join[S comparable](f, b *problem.Path[S]) *problem.Path[S] {
	out := f
	for n := b; n.Parent() != nil; n = n.Parent() {
		out = out.Extend(problem.Edge[S]{Action: n.Action(), To: n.Parent().State(), Cost: n.Step()})
	}

	return out
}
