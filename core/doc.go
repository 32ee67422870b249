// Package core provides the thread-safe, in-memory state graph that backs
// graph-shaped search problems.
//
// A Graph G = (S, E) maps state IDs to labelled, costed outgoing edges:
//
//   - Directed by default; WithUndirected mirrors every edge so it can be
//     traversed both ways (optionally under a different action label).
//   - Edges carry an Action label and a non-negative float64 Cost.
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges) are opt-in.
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …).
//   - Separate sync.RWMutex for states (muState) and edges+adjacency
//     (muEdgeAdj), so many concurrent searches can read one graph while it is
//     not being mutated.
//
// Determinism:
//
//   - States() and Edges() return sorted results.
//   - Successors() and Predecessors() return edges in insertion order, which
//     is what makes search tie-breaking reproducible across runs.
//
// Core Methods:
//
//	AddState(id string) error                                           // O(1)
//	HasState(id string) bool                                            // O(1)
//	AddEdge(from, to string, cost float64, opts ...EdgeOption) (string, error) // O(1)†
//	HasEdge(from, to string) bool                                       // O(deg)
//	Successors(id string) []Edge                                        // O(deg)
//	Predecessors(id string) []Edge                                      // O(deg)
//	Reverse() *Graph                                                    // O(S+E)
//	Clone() *Graph                                                      // O(S+E)
//
// † amortized; the parallel-edge check scans the source adjacency.
//
// Errors:
//
//	ErrEmptyStateID        – state ID is "".
//	ErrStateNotFound       – metadata lookup on a missing state.
//	ErrNegativeCost        – cost < 0.
//	ErrBadCost             – cost is NaN or ±Inf.
//	ErrLoopNotAllowed      – self-loop without WithLoops().
//	ErrMultiEdgeNotAllowed – parallel edge without WithMultiEdges().
package core
