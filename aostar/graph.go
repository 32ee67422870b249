package aostar

import (
	"fmt"
	"math"
	"sort"
)

// Graph is an AND-OR graph keyed by node ID. It is not safe for concurrent
// mutation; Solve only reads it.
type Graph struct {
	nodes map[string]Node
	order []string
}

// NewGraph builds a graph from nodes, validated as by Add.
func NewGraph(nodes ...Node) (*Graph, error) {
	g := &Graph{nodes: make(map[string]Node, len(nodes))}
	for _, n := range nodes {
		if err := g.Add(n); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Add inserts n. It returns ErrEmptyNodeID, ErrDuplicateNode or
// ErrNegativeCost.
func (g *Graph) Add(n Node) error {
	if n == nil || n.ID() == "" {
		return ErrEmptyNodeID
	}
	id := n.ID()
	if _, dup := g.nodes[id]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	if l, ok := n.(Leaf); ok && !validCost(l.Cost) {
		return fmt.Errorf("%w: leaf %q cost=%v", ErrNegativeCost, id, l.Cost)
	}
	for _, a := range n.arcs() {
		if a.To == "" {
			return fmt.Errorf("%w: arc from %q", ErrEmptyNodeID, id)
		}
		if !validCost(a.Cost) {
			return fmt.Errorf("%w: arc %q→%q cost=%v", ErrNegativeCost, id, a.To, a.Cost)
		}
	}
	g.nodes[id] = n
	g.order = append(g.order, id)

	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// IDs returns node IDs in insertion order.
func (g *Graph) IDs() []string {
	return append([]string(nil), g.order...)
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// FromAlternatives converts the option-list shape, where each entry lists
// alternative options and each option is a set of arcs that must all be
// solved. Entries are processed in sorted key order.
//
// An entry without options becomes a Leaf of cost 0. Every other entry
// becomes an OrNode: a single-arc option is a direct branch, and a
// multi-arc option is a synthesized AndNode "<id>/and<k>" (k = option
// index) reached at cost 0.
func FromAlternatives(alts map[string][][]Arc) (*Graph, error) {
	keys := make([]string, 0, len(alts))
	for k := range alts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	g := &Graph{nodes: make(map[string]Node, len(alts))}
	for _, id := range keys {
		options := alts[id]
		if len(options) == 0 {
			if err := g.Add(Leaf{Name: id}); err != nil {
				return nil, err
			}
			continue
		}
		or := OrNode{Name: id}
		for k, opt := range options {
			if len(opt) == 1 {
				or.Branches = append(or.Branches, opt[0])
				continue
			}
			and := AndNode{Name: fmt.Sprintf("%s/and%d", id, k), Children: append([]Arc(nil), opt...)}
			if err := g.Add(and); err != nil {
				return nil, err
			}
			or.Branches = append(or.Branches, Arc{To: and.Name})
		}
		if err := g.Add(or); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func validCost(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1)
}
