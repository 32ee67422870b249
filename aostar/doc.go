// Package aostar solves AND-OR graphs with AO*-style cost propagation.
//
// An AND-OR graph has three kinds of node:
//
//   - Leaf:    a terminal with a fixed cost.
//   - OrNode:  solved by any one of its branches; cost is the cheapest
//     arc cost + child cost.
//   - AndNode: solved only when all children are; cost is the sum of
//     arc cost + child cost over the children.
//
// A child that is not in the graph, and an Or or And node without arcs, is a
// terminal of cost 0.
//
// Solve evaluates the graph bottom-up from a root, memoizing every node, and
// returns the cheapest solution graph as a Solution: its cost and, for every
// node of the solution graph, the children it depends on. Cyclic
// dependencies are reported as ErrCycleDetected with the cycle listed.
//
// With WithMaxDepth(d) Or nodes d decisions below the root are not
// expanded; their cost is the heuristic estimate instead (WithHeuristic).
// MaxDepth 1 is the classic one-step lookahead that scores each option by
// arc cost plus h of its children.
//
// Complexity: O(V + E) node evaluations without a depth limit.
//
// Example:
//
//	g, _ := aostar.FromAlternatives(map[string][][]aostar.Arc{
//		"A": {{{To: "B", Cost: 1}}, {{To: "C", Cost: 1}, {To: "D", Cost: 1}}},
//		"B": {{{To: "E", Cost: 1}}},
//	})
//	sol, _ := aostar.Solve(g, "A")
//	fmt.Println(sol.Cost, sol.Plan()) // 2 [A B E]
package aostar
