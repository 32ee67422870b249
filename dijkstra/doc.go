// Package dijkstra computes exact single-source shortest distances over a
// core.Graph with non-negative float64 edge costs.
//
// Inside lvsearch it is the ground-truth oracle: heuristic.Admissible runs it
// on the reversed graph to obtain true costs-to-go, and the search tests
// compare A* and uniform-cost results against it.
//
// Overview:
//
//   - Dijkstra(g, Source(id), ...) returns dist (+Inf for unreachable states)
//     and, with WithReturnPath, the predecessor map.
//   - PathTo rebuilds a state sequence from the predecessor map.
//   - ShortestPath is the one-call convenience for a single target.
//
// Performance and complexity:
//
//   - Time:  O((S + E) log S)
//   - Space: O(S + E), the heap may hold one stale entry per relaxation
//     under the lazy decrease-key strategy.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound for bad input.
//   - ErrOptionViolation for a negative MaxDistance or non-positive
//     InfEdgeThreshold.
//   - ErrNoPath from PathTo and ShortestPath.
package dijkstra
