package aostar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for AND-OR solving.
var (
	// ErrNilGraph is returned when Solve receives a nil graph.
	ErrNilGraph = errors.New("aostar: graph is nil")

	// ErrRootNotFound is returned when the root is not a node of the graph.
	ErrRootNotFound = errors.New("aostar: root not found")

	// ErrCycleDetected is returned when a node depends on itself.
	ErrCycleDetected = errors.New("aostar: cycle detected")

	// ErrNegativeCost is returned for a negative, NaN or infinite arc or leaf cost.
	ErrNegativeCost = errors.New("aostar: negative or non-finite cost")

	// ErrDuplicateNode is returned when two nodes share an ID.
	ErrDuplicateNode = errors.New("aostar: duplicate node")

	// ErrEmptyNodeID is returned for a node without an ID.
	ErrEmptyNodeID = errors.New("aostar: node ID is empty")

	// ErrInvalidHeuristic is returned when the estimate of a cut-off node is
	// negative or NaN.
	ErrInvalidHeuristic = errors.New("aostar: invalid heuristic value")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("aostar: invalid option supplied")
)

// Arc links a node to a child at a cost.
type Arc struct {
	To   string  `yaml:"to" json:"to"`
	Cost float64 `yaml:"cost" json:"cost"`
}

// Node is one of Leaf, OrNode or AndNode.
type Node interface {
	ID() string
	arcs() []Arc
}

// Leaf is a terminal node with a fixed cost.
type Leaf struct {
	Name string
	Cost float64
}

// OrNode is solved through exactly one of its branches.
type OrNode struct {
	Name     string
	Branches []Arc
}

// AndNode is solved only through all of its children.
type AndNode struct {
	Name     string
	Children []Arc
}

// ID returns the node name.
func (n Leaf) ID() string    { return n.Name }
func (n OrNode) ID() string  { return n.Name }
func (n AndNode) ID() string { return n.Name }

func (Leaf) arcs() []Arc      { return nil }
func (n OrNode) arcs() []Arc  { return n.Branches }
func (n AndNode) arcs() []Arc { return n.Children }

// Solution is the cheapest solution graph found from Root.
type Solution struct {
	Root string
	Cost float64

	// Choice maps every expanded node of the solution graph to the children
	// it depends on: one child for an OrNode, all children for an AndNode.
	// Terminals and cut-off nodes have no entry.
	Choice map[string][]string

	// Expanded counts node expansions (memoized nodes count once).
	Expanded int
}

// Plan lists the solution graph in pre-order from Root. A node reached
// twice is listed once.
func (s *Solution) Plan() []string {
	if s == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	var walk func(id string)
	walk = func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
		for _, c := range s.Choice[id] {
			walk(c)
		}
	}
	walk(s.Root)

	return out
}

// Option configures Solve.
type Option func(*Options)

// Options holds the tunables of Solve.
type Options struct {
	Ctx context.Context

	// Heuristic estimates the cost of nodes beyond MaxDepth.
	Heuristic func(id string) float64

	// MaxDepth stops expanding OrNodes at this depth (root = 0); their cost
	// is the heuristic instead. Depth grows by one per Or branch taken;
	// AndNode children stay at the depth of their parent. 0 means unlimited.
	MaxDepth int

	Logger *slog.Logger

	err error
}

// DefaultOptions returns background context, zero heuristic, no depth limit
// and slog.Default() tagged component=aostar.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: func(string) float64 { return 0 },
		Logger:    slog.Default().With(slog.String("component", "aostar")),
	}
}

// WithContext sets a context checked before every expansion.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic sets the estimate used for cut-off nodes. Nil is ignored.
func WithHeuristic(h func(id string) float64) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxDepth limits expansion depth; d must be ≥ 0 (0 = unlimited).
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			if o.err == nil {
				o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			}
			return
		}
		o.MaxDepth = d
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
