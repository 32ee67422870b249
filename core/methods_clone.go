// File: methods_clone.go
// Role: Cloning and reversing graph instances.
// Determinism:
//   - Clone replays edges in creation order, so Successors() order and
//     edge IDs are identical on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, states, edges and
// adjacency. Metadata maps are shared.
// Complexity: O(S + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph(g.options()...)
	g.copyStates(clone)

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, list := range g.out {
		clone.out[id] = cloneList(clone, list)
	}
	for id, list := range g.in {
		clone.in[id] = cloneList(clone, list)
	}

	return clone
}

// Reverse returns a new graph with every directed edge flipped, keeping
// action labels and costs. An undirected graph reverses to a plain clone.
// Distances to a goal in g equal distances from that goal in g.Reverse().
// Complexity: O(S + E).
func (g *Graph) Reverse() *Graph {
	if g.undirected {
		return g.Clone()
	}
	rev := NewGraph(g.options()...)
	g.copyStates(rev)
	for _, e := range g.Edges() {
		// Flags are copied from g, so AddEdge cannot reject a flipped edge.
		_, _ = rev.AddEdge(e.To, e.From, e.Cost, WithAction(e.Action))
	}

	return rev
}

func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.undirected {
		opts = append(opts, WithUndirected())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

func (g *Graph) copyStates(dst *Graph) {
	g.muState.RLock()
	defer g.muState.RUnlock()
	for id, s := range g.states {
		dst.states[id] = &State{ID: s.ID, Metadata: s.Metadata}
	}
}

// cloneList maps edges of one adjacency list to the clone's edge catalog,
// creating catalog entries on first sight.
func cloneList(clone *Graph, list []*Edge) []*Edge {
	res := make([]*Edge, len(list))
	for i, e := range list {
		c, ok := clone.edges[e.ID]
		if !ok {
			cp := *e
			c = &cp
			clone.edges[e.ID] = c
		}
		res[i] = c
	}

	return res
}
