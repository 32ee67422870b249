// Package builder provides deterministic “functional-options”-style graph
// constructors used to create fixtures for search tests, benchmarks and the
// `lvsearch random` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): creates a core.Graph and applies
//     constructors in order.
//   - Topologies (Constructor factories):
//     – Path(n), Cycle(n), Grid(rows, cols), Complete(n), RandomSparse(n, p).
//   - State naming (IDFn):
//     – DecimalIDs:        "0","1",… (default).
//     – LetterIDs:         "A".."Z","AA",… (WithLetterIDs).
//     – PrefixedIDs(p):    "v0","v1",… (WithPrefixedIDs).
//   - Edge-cost distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant cost DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – IntegerWeightFn:   uniform integers in [min,max].
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order produce
//     identical graphs, edge IDs included.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
package builder
