package aostar

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/lvsearch/aostar"

// colour of a node during the depth-first evaluation.
type colour uint8

const (
	white colour = iota
	grey
	black
)

// Solve returns the cheapest solution graph rooted at root.
//
// Errors: ErrNilGraph, ErrRootNotFound, ErrCycleDetected (wrapping the
// cycle as "A → B → A"), ErrInvalidHeuristic, ErrOptionViolation, or the
// context error when cancelled.
func Solve(g *Graph, root string, opts ...Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := otel.Tracer(tracerName).Start(o.Ctx, "aostar.Solve",
		trace.WithAttributes(
			attribute.String("root", root),
			attribute.Int("max_depth", o.MaxDepth),
		),
	)
	defer span.End()

	sol, err := solve(ctx, g, root, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.Logger.Debug("solve failed", slog.String("root", root), slog.String("error", err.Error()))
		return nil, err
	}
	span.SetAttributes(
		attribute.Float64("cost", sol.Cost),
		attribute.Int("expanded", sol.Expanded),
	)
	o.Logger.Debug("solve finished",
		slog.String("root", root),
		slog.Float64("cost", sol.Cost),
		slog.Int("expanded", sol.Expanded),
	)

	return sol, nil
}

func solve(ctx context.Context, g *Graph, root string, o Options) (*Solution, error) {
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, ok := g.Node(root); !ok {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}

	// The lookahead cut-off stops eval before it reaches a back edge, so
	// cycles are rejected up front for the whole reachable graph.
	if err := acyclic(g, root); err != nil {
		return nil, err
	}

	s := &solver{
		g:      g,
		ctx:    ctx,
		opts:   o,
		colour: make(map[string]colour, g.Len()),
		cost:   make(map[string]float64, g.Len()),
		choice: make(map[string][]string, g.Len()),
	}
	c, _, err := s.eval(root, 0)
	if err != nil {
		return nil, err
	}

	return &Solution{
		Root:     root,
		Cost:     c,
		Choice:   s.solutionGraph(root),
		Expanded: s.expanded,
	}, nil
}

// solver holds the state of one Solve call.
type solver struct {
	g        *Graph
	ctx      context.Context
	opts     Options
	colour   map[string]colour
	cost     map[string]float64  // memoized exact costs
	choice   map[string][]string // best children of every expanded node
	stack    []string            // grey nodes, root first
	expanded int
}

// eval returns the cost of id and whether it is exact, i.e. no node below
// it was cut off by MaxDepth. Only exact costs are memoized.
func (s *solver) eval(id string, depth int) (float64, bool, error) {
	n, ok := s.g.Node(id)
	if !ok {
		return 0, true, nil
	}
	switch s.colour[id] {
	case black:
		return s.cost[id], true, nil
	case grey:
		return 0, false, s.cycle(id)
	}
	if s.opts.MaxDepth > 0 && depth >= s.opts.MaxDepth {
		if _, or := n.(OrNode); or {
			hv := s.opts.Heuristic(id)
			if math.IsNaN(hv) || hv < 0 {
				return 0, false, fmt.Errorf("%w: h(%q)=%v", ErrInvalidHeuristic, id, hv)
			}
			delete(s.choice, id)
			return hv, false, nil
		}
	}
	if err := s.ctx.Err(); err != nil {
		return 0, false, fmt.Errorf("aostar: %w", err)
	}

	s.colour[id] = grey
	s.stack = append(s.stack, id)
	s.expanded++

	var (
		total float64
		exact = true
		pick  []string
		err   error
	)
	switch v := n.(type) {
	case Leaf:
		total = v.Cost
	case OrNode:
		total, exact, pick, err = s.or(v.Branches, depth)
	case AndNode:
		total, exact, pick, err = s.and(v.Children, depth)
	}
	if err != nil {
		return 0, false, err
	}

	s.stack = s.stack[:len(s.stack)-1]
	if len(pick) > 0 {
		s.choice[id] = pick
	} else {
		delete(s.choice, id)
	}
	if exact {
		s.colour[id] = black
		s.cost[id] = total
	} else {
		s.colour[id] = white
	}

	return total, exact, nil
}

// or picks the cheapest branch; the first one wins ties. An empty Or is a
// terminal of cost 0.
func (s *solver) or(branches []Arc, depth int) (float64, bool, []string, error) {
	if len(branches) == 0 {
		return 0, true, nil, nil
	}
	best, exact, at := math.Inf(1), true, -1
	for i, a := range branches {
		c, ok, err := s.eval(a.To, depth+1)
		if err != nil {
			return 0, false, nil, err
		}
		exact = exact && ok
		if v := a.Cost + c; at < 0 || v < best {
			best, at = v, i
		}
	}

	return best, exact, []string{branches[at].To}, nil
}

// and sums every child. Children share the depth of the AndNode, so depth
// counts decisions only.
func (s *solver) and(children []Arc, depth int) (float64, bool, []string, error) {
	var (
		total float64
		exact = true
		pick  = make([]string, 0, len(children))
	)
	for _, a := range children {
		c, ok, err := s.eval(a.To, depth)
		if err != nil {
			return 0, false, nil, err
		}
		exact = exact && ok
		total += a.Cost + c
		pick = append(pick, a.To)
	}

	return total, exact, pick, nil
}

// acyclic walks every node reachable from root with White/Gray/Black
// colouring and reports the first back edge as ErrCycleDetected.
func acyclic(g *Graph, root string) error {
	seen := make(map[string]colour, g.Len())
	var (
		stack []string
		visit func(id string) error
	)
	visit = func(id string) error {
		n, ok := g.Node(id)
		if !ok {
			return nil
		}
		switch seen[id] {
		case black:
			return nil
		case grey:
			return cycleError(stack, id)
		}
		seen[id] = grey
		stack = append(stack, id)
		for _, a := range n.arcs() {
			if err := visit(a.To); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		seen[id] = black

		return nil
	}

	return visit(root)
}

// cycle formats the grey stack from the first occurrence of id.
func (s *solver) cycle(id string) error {
	return cycleError(s.stack, id)
}

func cycleError(stack []string, id string) error {
	from := 0
	for i, v := range stack {
		if v == id {
			from = i
			break
		}
	}
	loop := append(append([]string(nil), stack[from:]...), id)

	return fmt.Errorf("%w: %s", ErrCycleDetected, strings.Join(loop, " → "))
}

// solutionGraph keeps the choices reachable from root.
func (s *solver) solutionGraph(root string) map[string][]string {
	out := make(map[string][]string)
	var walk func(id string)
	walk = func(id string) {
		if _, done := out[id]; done {
			return
		}
		pick, ok := s.choice[id]
		if !ok {
			return
		}
		out[id] = append([]string(nil), pick...)
		for _, c := range pick {
			walk(c)
		}
	}
	walk(root)

	return out
}
