// Package search is the generic heuristic search driver of lvsearch.
//
// Search(p, h, strategy, opts...) runs one strategy over a problem.Problem
// and returns a Result:
//
//	Ready → Running → {Succeeded, Exhausted}
//
// Best-first strategies (AStar, Greedy, WeightedAStar, UniformCost) share
// one loop: pop the lowest entry; discard it if its state was already
// expanded at an equal or better cost; goal-test; expand and push children
// that strictly improve the best known cost. Ties on priority are broken by
// accumulated cost (see WithTieBreak) and then insertion order, so repeated
// calls return identical paths.
//
// Uninformed strategies (BreadthFirst, DepthFirst, IterativeDeepening,
// Bidirectional) ignore h. Beam, HillClimbing, SimulatedAnnealing, Tabu and
// Genetic are best-effort: incomplete and non-optimal by construction.
// Online plans Horizon moves ahead, acts, and replans on surprises; it
// reaches a goal inside its horizon cheaply but is not optimal beyond it.
//
// Failure semantics:
//
//   - Exhaustion is a Result, never an error. Reason tells why:
//     frontier_empty, cap_exceeded, deadline_exceeded, cancelled,
//     invalid_heuristic (h returned a negative value or NaN),
//     local_optimum (HillClimbing) and generations_exhausted (Genetic).
//   - Errors are reserved for misuse: ErrNilProblem, ErrUnknownStrategy,
//     ErrOptionViolation, and problem.ErrInvalidProblem for failing
//     successor functions or a non-reversible problem under Bidirectional.
//
// Cancellation is cooperative: the context (WithContext) and the deadline
// (WithDeadline) are checked once per pop/expand cycle.
//
// Every call opens an OpenTelemetry span "search.<strategy>", logs at Debug
// level through log/slog, and reports a Summary to the Observer if one is
// set (see package metrics).
//
// Complexity (best-first, consistent h): O(E log E) time and O(S + E) space
// for S reachable states and E edges; every state is expanded at most once.
package search
