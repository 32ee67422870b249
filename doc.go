// Package lvsearch is a toolkit of heuristic state-space search: one
// problem interface, one result shape, and a family of strategies that
// can be swapped with a single argument.
//
// 🚀 What is lvsearch?
//
//	A generic search engine over any comparable state type that brings together:
//		• Best-first: A*, greedy, weighted A*, uniform cost
//		• Uninformed: BFS, DFS, iterative deepening, bidirectional
//		• Bounded: beam search
//		• Local: hill climbing, simulated annealing, tabu, genetic
//		• Online: receding-horizon lookahead that replans on surprises
//		• AND-OR graphs: AO* with depth-limited lookahead
//
// ✨ Why choose lvsearch?
//
//   - One call – search.Search(problem, heuristic, strategy, options...)
//   - Honest results – status, reason, cost, path and expansion count every time
//   - Deterministic – tie-break policies and seeds make every run repeatable
//   - Observable – slog logging, OpenTelemetry spans, Prometheus metrics
//
// Packages:
//
//	core/      — thread-safe weighted state graph with labelled actions
//	problem/   — the Problem contract, FromGraph adapter and validation
//	heuristic/ — Zero, Table, Scale, Min and exact distances to goals
//	frontier/  — stable priority queue with tie-break policies
//	search/    — every strategy behind Search and the Observer hook
//	aostar/    — AND-OR graphs and the AO* solver
//	dijkstra/  — exact shortest paths, the oracle for optimal strategies
//	gridgraph/ — grid worlds with 4/8 connectivity and Manhattan heuristics
//	builder/   — deterministic graph generators (grids, random sparse, ...)
//	loader/    — YAML problem files, validation and hot reload
//	batch/     — bounded concurrent search jobs
//	metrics/   — Prometheus collector for searches and AO* solves
//	report/    — text, coloured table and JSON reports
//	cmd/lvsearch — the command line front end
//
// Quick ASCII example:
//
//	    A──1──B──5──E
//	    │     │     │1
//	    4     2     F
//	    │     D     │
//	    C─────3─────┘
//
//	with h = {A:7 B:6 C:4 D:4 E:2 F:0}, A* from A to F returns A C F at cost 7.
//
//	go get github.com/katalvlaran/lvsearch
package lvsearch
