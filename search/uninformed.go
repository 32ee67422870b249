package search

import (
	"github.com/katalvlaran/lvsearch/problem"
)

// breadthFirst expands paths in FIFO order. A state is queued at most once,
// so the returned path has the fewest edges; costs are only summed.
func (r *runner[S]) breadthFirst() (Result[S], error) {
	start := r.p.Initial()
	queue := []*problem.Path[S]{problem.Root(start)}
	seen := map[S]struct{}{start: {}}

	for len(queue) > 0 {
		if reason, stop := r.interrupted(); stop {
			return r.exhaust(reason)
		}
		path := queue[0]
		queue[0] = nil
		queue = queue[1:]

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
			if _, dup := seen[e.To]; dup {
				continue
			}
			seen[e.To] = struct{}{}
			queue = append(queue, path.Extend(e))
		}
	}

	return r.exhaust(ReasonFrontierEmpty)
}

// depthFirst runs one depth-first pass bounded by DepthLimit (0 = none).
func (r *runner[S]) depthFirst() (Result[S], error) {
	limit := -1
	if r.opts.DepthLimit > 0 {
		limit = r.opts.DepthLimit
	}
	found, _, reason, err := r.depthLimited(limit)
	switch {
	case err != nil:
		return r.fail(err)
	case found != nil:
		return r.succeed(found)
	case reason != ReasonNone:
		return r.exhaust(reason)
	default:
		return r.exhaust(ReasonFrontierEmpty)
	}
}

// iterativeDeepening repeats depth-limited passes with limits 0, 1, 2, …
// until a goal is found, no path was cut by the limit, or DepthLimit (when
// set) has been tried. Expansions accumulate across passes.
func (r *runner[S]) iterativeDeepening() (Result[S], error) {
	for limit := 0; ; limit++ {
		found, cutoff, reason, err := r.depthLimited(limit)
		switch {
		case err != nil:
			return r.fail(err)
		case found != nil:
			return r.succeed(found)
		case reason != ReasonNone:
			return r.exhaust(reason)
		case !cutoff:
			return r.exhaust(ReasonFrontierEmpty)
		case r.opts.DepthLimit > 0 && limit >= r.opts.DepthLimit:
			return r.exhaust(ReasonFrontierEmpty)
		}
	}
}

// depthLimited is one explicit-stack depth-first pass. Paths never revisit a
// state already on themselves (path-local cycle check), and paths at depth
// limit are goal-tested but not expanded (limit < 0: unlimited).
//
// It returns the goal path, whether any path was cut by the limit, and a
// non-empty reason when the pass was stopped by the cap or the context.
func (r *runner[S]) depthLimited(limit int) (*problem.Path[S], bool, Reason, error) {
	stack := []*problem.Path[S]{problem.Root(r.p.Initial())}
	cutoff := false

	for len(stack) > 0 {
		if reason, stop := r.interrupted(); stop {
			return nil, cutoff, reason, nil
		}
		path := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]

		if !r.admit(path) {
			return nil, cutoff, ReasonCapExceeded, nil
		}
		if r.p.IsGoal(path.State()) {
			return path, cutoff, ReasonNone, nil
		}
		if limit >= 0 && path.Depth() >= limit {
			cutoff = true
			continue
		}
		edges, err := r.successors(path.State())
		if err != nil {
			return nil, cutoff, ReasonNone, err
		}
		// push in reverse so the first successor is explored first
		for i := len(edges) - 1; i >= 0; i-- {
			if path.Contains(edges[i].To) {
				continue
			}
			stack = append(stack, path.Extend(edges[i]))
		}
	}

	return nil, cutoff, ReasonNone, nil
}
