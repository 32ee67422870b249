// Package problem defines what a search problem is: an initial state, a goal
// predicate and a successor function returning labelled, costed edges.
//
// States are any comparable Go value (S comparable). The search package only
// ever talks to a Problem through this interface, so problems may be backed by
// a function (New), an in-memory table (FromTable), or a core.Graph
// (FromGraph).
//
// Path is the persistent partial-solution representation shared by every
// strategy. Extending a Path allocates one node that points at its parent,
// so sibling paths share their common prefix and no entry ever aliases
// mutable data. Path.Contains is the path-local cycle check used by beam and
// depth-first strategies.
//
// Errors:
//
//	ErrInvalidProblem – nil goal or successor function, empty goal set,
//	                    initial or goal state absent from the backing graph.
package problem
