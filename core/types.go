// Package core defines the central Graph, State, and Edge types,
// and provides thread-safe primitives for building and querying state graphs.
//
// This file declares State, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStateID indicates that the provided state ID is empty.
	ErrEmptyStateID = errors.New("core: state ID is empty")

	// ErrStateNotFound indicates an operation referenced a non-existent state.
	ErrStateNotFound = errors.New("core: state not found")

	// ErrNegativeCost indicates a negative edge cost.
	ErrNegativeCost = errors.New("core: edge cost must be non-negative")

	// ErrBadCost indicates a NaN or infinite edge cost.
	ErrBadCost = errors.New("core: edge cost must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultAction is the label given to edges added without WithAction.
// Successor edges then carry the destination ID as their action.
const DefaultAction = ""

// State represents a node of the graph.
//
// Metadata stores arbitrary key-value data (grid coordinates, cell values)
// and is shared on Clone.
type State struct {
	// ID is the unique identifier for this State.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge is one labelled, costed transition.
//
// Values returned by Successors and Predecessors are oriented copies: for a
// mirrored edge of an undirected graph From/To are swapped and Action holds
// the reverse label.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source state ID.
	From string

	// To is the destination state ID.
	To string

	// Action names the transition ("right", "mover_abajo", …).
	Action string

	// Cost is the non-negative price of taking the transition.
	Cost float64

	// reverseAction labels the mirrored traversal in undirected graphs.
	reverseAction string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes every added edge traversable in both directions.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// WithMultiEdges permits parallel edges between the same states.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a state to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithAction sets the action label of the edge.
func WithAction(label string) EdgeOption {
	return func(e *Edge) { e.Action = label }
}

// WithReverseAction sets the label used when an undirected edge is
// traversed from To back to From. Ignored on directed graphs.
func WithReverseAction(label string) EdgeOption {
	return func(e *Edge) { e.reverseAction = label }
}

// Graph is the core in-memory state graph.
//
// muState protects states; muEdgeAdj protects edges, out and in.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muState   sync.RWMutex // guards states
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	undirected bool // mirror edges
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64            // atomic edge ID generator
	states     map[string]*State // state ID → State
	edges      map[string]*Edge  // edge ID → Edge

	// out[from] and in[to] keep insertion order for deterministic expansion.
	// For undirected graphs both endpoints list the edge in out and in.
	out map[string][]*Edge
	in  map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is directed, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		states: make(map[string]*State),
		edges:  make(map[string]*Edge),
		out:    make(map[string][]*Edge),
		in:     make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Undirected reports whether edges are mirrored.
func (g *Graph) Undirected() bool { return g.undirected }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
