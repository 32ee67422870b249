package search

import (
	"sort"

	"github.com/katalvlaran/lvsearch/problem"
)

// eliteCount individuals survive each generation unchanged; parents are
// drawn from the parentPool best.
const (
	eliteCount = 2
	parentPool = 4
)

// genetic evolves Population random walks from the initial state for at most
// Generations rounds. Individuals that reach a goal rank first (cheaper,
// then shorter, first); the rest rank by h of their last state. The search
// succeeds with the best individual as soon as one reaches a goal, and
// reports generations_exhausted when the generations run out. The
// expansion cap still applies to the walk steps.
//
// Crossover splices two parents at a state they share and mutation
// truncates an individual and re-walks it, so every child is a valid path
// without repeated states.
func (r *runner[S]) genetic() (Result[S], error) {
	root := problem.Root(r.p.Initial())
	pop := make([]*problem.Path[S], 0, r.opts.Population)
	for len(pop) < r.opts.Population {
		ind, reason, err := r.walk(root)
		if err != nil {
			return r.fail(err)
		}
		if reason != ReasonNone {
			return r.exhaust(reason)
		}
		pop = append(pop, ind)
	}

	for gen := 0; ; gen++ {
		if reason, stop := r.interrupted(); stop {
			return r.exhaust(reason)
		}
		if ok := r.rank(pop); !ok {
			return r.exhaust(ReasonInvalidHeuristic)
		}
		if r.p.IsGoal(pop[0].State()) {
			return r.succeed(pop[0])
		}
		if gen == r.opts.Generations {
			return r.exhaust(ReasonGenerationsExhausted)
		}

		next := make([]*problem.Path[S], 0, r.opts.Population)
		next = append(next, pop[:min(eliteCount, len(pop))]...)
		parents := pop[:min(parentPool, len(pop))]
		for len(next) < r.opts.Population {
			i := r.rng.Intn(len(parents))
			j := r.rng.Intn(len(parents) - 1)
			if j >= i {
				j++
			}
			child := r.crossover(parents[i], parents[j])
			if r.rng.Float64() < r.opts.MutationRate {
				var (
					reason Reason
					err    error
				)
				child, reason, err = r.mutate(child)
				if err != nil {
					return r.fail(err)
				}
				if reason != ReasonNone {
					return r.exhaust(reason)
				}
			}
			next = append(next, child)
		}
		pop = next
	}
}

// walk extends from with random successors not already on the path until a
// goal, a dead end, or MaxPathLength states. Every step is one expansion.
func (r *runner[S]) walk(from *problem.Path[S]) (*problem.Path[S], Reason, error) {
	path := from
	for !r.p.IsGoal(path.State()) && path.Depth()+1 < r.opts.MaxPathLength {
		if reason, stop := r.interrupted(); stop {
			return nil, reason, nil
		}
		if !r.admit(path) {
			return nil, ReasonCapExceeded, nil
		}
		edges, err := r.successors(path.State())
		if err != nil {
			return nil, ReasonNone, err
		}
		open := edges[:0:0]
		for _, e := range edges {
			if !path.Contains(e.To) {
				open = append(open, e)
			}
		}
		if len(open) == 0 {
			break
		}
		path = path.Extend(open[r.rng.Intn(len(open))])
	}

	return path, ReasonNone, nil
}

// crossover keeps p1 up to a state shared with p2 (other than the initial
// state) and continues along p2 from there. Without a usable shared state,
// or when the splice would repeat a state or exceed MaxPathLength, the
// child is p1 itself.
func (r *runner[S]) crossover(p1, p2 *problem.Path[S]) *problem.Path[S] {
	s1, s2 := p1.States(), p2.States()
	at := make(map[S]int, len(s2))
	for j := 1; j < len(s2); j++ {
		at[s2[j]] = j
	}
	type cut struct{ i, j int }
	var cuts []cut
	for i := 1; i < len(s1); i++ {
		if j, ok := at[s1[i]]; ok {
			cuts = append(cuts, cut{i, j})
		}
	}
	if len(cuts) == 0 {
		return p1
	}

	c := cuts[r.rng.Intn(len(cuts))]
	child := p1.Prefix(c.i)
	for _, e := range p2.Edges()[c.j:] {
		if child.Contains(e.To) {
			return p1
		}
		child = child.Extend(e)
	}
	if child.Depth()+1 > r.opts.MaxPathLength {
		return p1
	}

	return child
}

// mutate cuts p at a random depth below its end and re-walks from there.
func (r *runner[S]) mutate(p *problem.Path[S]) (*problem.Path[S], Reason, error) {
	k := 0
	if p.Depth() > 0 {
		k = r.rng.Intn(p.Depth())
	}

	return r.walk(p.Prefix(k))
}

// rank sorts pop best first. It reports false if h is invalid for any
// non-goal individual.
func (r *runner[S]) rank(pop []*problem.Path[S]) bool {
	type score struct {
		goal bool
		h    float64
	}
	scores := make(map[*problem.Path[S]]score, len(pop))
	for _, p := range pop {
		if _, done := scores[p]; done {
			continue
		}
		if r.p.IsGoal(p.State()) {
			scores[p] = score{goal: true}
			continue
		}
		hv, ok := r.estimate(p.State())
		if !ok {
			return false
		}
		scores[p] = score{h: hv}
	}

	sort.SliceStable(pop, func(a, b int) bool {
		sa, sb := scores[pop[a]], scores[pop[b]]
		if sa.goal != sb.goal {
			return sa.goal
		}
		if sa.goal {
			if pop[a].Cost() != pop[b].Cost() {
				return pop[a].Cost() < pop[b].Cost()
			}
			return pop[a].Depth() < pop[b].Depth()
		}
		return sa.h < sb.h
	})

	return true
}
