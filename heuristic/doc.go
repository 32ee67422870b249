// Package heuristic provides estimate functions h(s) ≥ 0 for informed search
// and diagnostics that check them against a core.Graph.
//
// A heuristic is admissible when it never overestimates the true cost to
// the nearest goal, and consistent when h(u) ≤ c(u,v) + h(v) holds for
// every edge. The search driver never enforces either property; A* is only
// cost-optimal when the caller supplies an admissible estimate. Use
// Admissible and Consistent in tests or at load time to catch bad tables.
//
// Builders:
//
//	Zero()                   – the uninformed estimate (A* degenerates to UCS).
//	Table(m)                 – map lookup, missing states estimate 0.
//	Scale(h, w)              – w·h, the weighted-A* inflation.
//	Max(hs...)               – pointwise maximum; admissible if every input is.
//	Manhattan(coords, goal)  – |dx|+|dy| on grid coordinates.
package heuristic
