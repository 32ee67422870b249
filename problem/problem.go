package problem

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvsearch/core"
)

// FuncProblem is a Problem backed by plain functions.
type FuncProblem[S comparable] struct {
	initial S
	goal    GoalFunc[S]
	succ    SuccessorFunc[S]
}

// New builds a function-backed problem.
// Returns ErrInvalidProblem if goal or successors is nil.
func New[S comparable](initial S, goal GoalFunc[S], successors SuccessorFunc[S]) (*FuncProblem[S], error) {
	if goal == nil {
		return nil, fmt.Errorf("%w: goal predicate is nil", ErrInvalidProblem)
	}
	if successors == nil {
		return nil, fmt.Errorf("%w: successor function is nil", ErrInvalidProblem)
	}

	return &FuncProblem[S]{initial: initial, goal: goal, succ: successors}, nil
}

// Initial returns the start state.
func (p *FuncProblem[S]) Initial() S { return p.initial }

// IsGoal applies the goal predicate.
func (p *FuncProblem[S]) IsGoal(s S) bool { return p.goal(s) }

// Successors calls the successor function.
func (p *FuncProblem[S]) Successors(s S) ([]Edge[S], error) { return p.succ(s) }

// TableProblem is a Problem backed by an adjacency table. It is Reversible.
type TableProblem[S comparable] struct {
	initial S
	goals   []S
	isGoal  GoalFunc[S]
	out     map[S][]Edge[S]
	in      map[S][]Edge[S]
}

// FromTable builds a problem from an adjacency table. The table is copied,
// so later changes to it do not affect the problem. Edge order within each
// entry is the expansion order.
//
// Returns ErrInvalidProblem if no goal is given or an edge cost is negative.
func FromTable[S comparable](initial S, table map[S][]Edge[S], goals ...S) (*TableProblem[S], error) {
	if len(goals) == 0 {
		return nil, fmt.Errorf("%w: empty goal set", ErrInvalidProblem)
	}
	p := &TableProblem[S]{
		initial: initial,
		goals:   append([]S(nil), goals...),
		isGoal:  GoalSet(goals...),
		out:     make(map[S][]Edge[S], len(table)),
		in:      make(map[S][]Edge[S], len(table)),
	}
	keys := make([]S, 0, len(table))
	for from, edges := range table {
		for _, e := range edges {
			if e.Cost < 0 || math.IsNaN(e.Cost) || math.IsInf(e.Cost, 0) {
				return nil, fmt.Errorf("%w: edge %v→%v cost=%v", ErrInvalidProblem, from, e.To, e.Cost)
			}
		}
		p.out[from] = append([]Edge[S](nil), edges...)
		keys = append(keys, from)
	}
	// Map order is random; predecessors are indexed in printed-key order so
	// backward expansion is reproducible.
	sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })
	for _, from := range keys {
		for _, e := range p.out[from] {
			p.in[e.To] = append(p.in[e.To], Edge[S]{Action: e.Action, To: from, Cost: e.Cost})
		}
	}

	return p, nil
}

// Initial returns the start state.
func (p *TableProblem[S]) Initial() S { return p.initial }

// IsGoal reports whether s is one of the goal states.
func (p *TableProblem[S]) IsGoal(s S) bool { return p.isGoal(s) }

// Successors returns a copy of the table entry for s.
func (p *TableProblem[S]) Successors(s S) ([]Edge[S], error) {
	return append([]Edge[S](nil), p.out[s]...), nil
}

// Predecessors returns the incoming edges of s.
func (p *TableProblem[S]) Predecessors(s S) ([]Edge[S], error) {
	return append([]Edge[S](nil), p.in[s]...), nil
}

// Goals returns the goal states.
func (p *TableProblem[S]) Goals() []S { return append([]S(nil), p.goals...) }

// GraphProblem is a Problem over a core.Graph. It is Reversible.
//
// Edges added without an action label surface with the destination ID as
// their action, so paths over unlabelled graphs read as state sequences.
type GraphProblem struct {
	g       *core.Graph
	initial string
	goals   []string
	isGoal  GoalFunc[string]
}

// FromGraph builds a problem over g. The graph is read, never mutated, so
// many searches may share it.
//
// Returns ErrInvalidProblem for a nil graph, an empty goal set, or an
// initial/goal state missing from g.
func FromGraph(g *core.Graph, initial string, goals ...string) (*GraphProblem, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: graph is nil", ErrInvalidProblem)
	}
	if !g.HasState(initial) {
		return nil, fmt.Errorf("%w: initial state %q not in graph", ErrInvalidProblem, initial)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("%w: empty goal set", ErrInvalidProblem)
	}
	for _, goal := range goals {
		if !g.HasState(goal) {
			return nil, fmt.Errorf("%w: goal state %q not in graph", ErrInvalidProblem, goal)
		}
	}

	return &GraphProblem{
		g:       g,
		initial: initial,
		goals:   append([]string(nil), goals...),
		isGoal:  GoalSet(goals...),
	}, nil
}

// Graph returns the backing graph.
func (p *GraphProblem) Graph() *core.Graph { return p.g }

// Initial returns the start state.
func (p *GraphProblem) Initial() string { return p.initial }

// IsGoal reports whether s is one of the goal states.
func (p *GraphProblem) IsGoal(s string) bool { return p.isGoal(s) }

// Successors maps the outgoing graph edges of s.
func (p *GraphProblem) Successors(s string) ([]Edge[string], error) {
	edges := p.g.Successors(s)
	res := make([]Edge[string], 0, len(edges))
	for _, e := range edges {
		res = append(res, Edge[string]{Action: label(e.Action, e.To), To: e.To, Cost: e.Cost})
	}

	return res, nil
}

// Predecessors maps the incoming graph edges of s.
func (p *GraphProblem) Predecessors(s string) ([]Edge[string], error) {
	edges := p.g.Predecessors(s)
	res := make([]Edge[string], 0, len(edges))
	for _, e := range edges {
		res = append(res, Edge[string]{Action: label(e.Action, e.To), To: e.From, Cost: e.Cost})
	}

	return res, nil
}

// Goals returns the goal states.
func (p *GraphProblem) Goals() []string { return append([]string(nil), p.goals...) }

func label(action, to string) string {
	if action == core.DefaultAction {
		return to
	}

	return action
}
