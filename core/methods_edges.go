// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount,
//       oriented Successors/Predecessors, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric Edge.ID.
//   - Successors()/Predecessors() keep insertion order.
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix gives stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from → to with the given cost and returns its ID.
// Missing endpoints are created.
//
// Returns ErrEmptyStateID, ErrNegativeCost, ErrBadCost, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to string, cost float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyStateID
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return "", fmt.Errorf("%w: %s→%s cost=%v", ErrBadCost, from, to, cost)
	}
	if cost < 0 {
		return "", fmt.Errorf("%w: %s→%s cost=%g", ErrNegativeCost, from, to, cost)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddState(from); err != nil {
		return "", err
	}
	if err := g.AddState(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{
		ID:     nextEdgeID(g),
		From:   from,
		To:     to,
		Action: DefaultAction,
		Cost:   cost,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)
	if g.undirected && from != to {
		g.out[to] = append(g.out[to], e)
		g.in[from] = append(g.in[from], e)
	}

	return e.ID, nil
}

// HasEdge reports whether an edge from → to exists (either orientation on
// undirected graphs).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.out[from] {
		if orient(e, from).To == to {
			return true
		}
	}

	return false
}

// Successors returns the outgoing edges of id, oriented so that From == id.
// A missing or terminal state yields an empty slice.
// The returned slice is a fresh copy; callers may keep it.
func (g *Graph) Successors(id string) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	list := g.out[id]
	if len(list) == 0 {
		return nil
	}
	res := make([]Edge, 0, len(list))
	for _, e := range list {
		res = append(res, orient(e, id))
	}

	return res
}

// Predecessors returns the incoming edges of id, oriented so that To == id.
// The Action of each edge is the label used when walking it forward.
func (g *Graph) Predecessors(id string) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	list := g.in[id]
	if len(list) == 0 {
		return nil
	}
	res := make([]Edge, 0, len(list))
	for _, e := range list {
		if e.To == id {
			res = append(res, *e)
			continue
		}
		// mirrored edge walked To → From
		res = append(res, orient(e, e.To))
	}

	return res
}

// Edges returns all stored edges sorted by creation order.
// Mirrored traversals of undirected edges are not listed separately.
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	res := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		res = append(res, *e)
	}
	g.muEdgeAdj.RUnlock()
	sort.Slice(res, func(i, j int) bool { return edgeSeq(res[i].ID) < edgeSeq(res[j].ID) })

	return res
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// orient returns a copy of e as seen when leaving state from.
func orient(e *Edge, from string) Edge {
	if e.From == from {
		c := *e
		c.reverseAction = ""
		return c
	}
	action := e.Action
	if e.reverseAction != "" {
		action = e.reverseAction
	}

	return Edge{ID: e.ID, From: e.To, To: e.From, Action: action, Cost: e.Cost}
}

// nextEdgeID returns "e<N>" using a monotonic atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric part of an edge ID for ordering.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}
