package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/heuristic"
)

func TestBuilders(t *testing.T) {
	assert.Equal(t, 0.0, heuristic.Zero[string]()("anything"))

	m := map[string]float64{"A": 5, "B": 3}
	h := heuristic.Table(m)
	m["A"] = 100
	assert.Equal(t, 5.0, h("A"), "table is copied")
	assert.Equal(t, 0.0, h("missing"))

	assert.Equal(t, 7.5, heuristic.Scale(h, 1.5)("A"))

	mx := heuristic.Max(h, heuristic.Table(map[string]float64{"B": 4}))
	assert.Equal(t, 5.0, mx("A"))
	assert.Equal(t, 4.0, mx("B"))
	assert.Equal(t, 0.0, heuristic.Max[string]()("A"))

	nan := heuristic.Max(heuristic.Table(map[string]float64{"A": math.NaN()}), h)
	assert.True(t, math.IsNaN(nan("A")), "NaN propagates so the driver can reject it")

	mn := heuristic.Min(h, heuristic.Table(map[string]float64{"A": 2, "B": 4}))
	assert.Equal(t, 2.0, mn("A"))
	assert.Equal(t, 3.0, mn("B"))
	assert.Equal(t, 0.0, heuristic.Min[string]()("A"))

	coords := map[string]heuristic.Point{"A": {0, 0}, "E": {1, 1}, "I": {2, 2}}
	man := heuristic.Manhattan(coords, heuristic.Point{Row: 2, Col: 2})
	assert.Equal(t, 4.0, man("A"))
	assert.Equal(t, 2.0, man("E"))
	assert.Equal(t, 0.0, man("I"))
	assert.Equal(t, 0.0, man("unknown"))

	cheb := heuristic.Chebyshev(coords, heuristic.Point{Row: 2, Col: 2})
	assert.Equal(t, 2.0, cheb("A"))
	assert.Equal(t, 1.0, cheb("E"))
	assert.Equal(t, 0.0, cheb("unknown"))
}

// classroom builds the A..F graph used throughout the search tests.
func classroom() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("B", "D", 2)
	_, _ = g.AddEdge("B", "E", 5)
	_, _ = g.AddEdge("C", "F", 3)
	_, _ = g.AddEdge("E", "F", 1)

	return g
}

func TestAdmissible(t *testing.T) {
	g := classroom()
	h := heuristic.Table(map[string]float64{"A": 5, "B": 6, "C": 2, "D": 1, "E": 1, "F": 0})

	v, err := heuristic.Admissible(g, h, "F")
	require.NoError(t, err)
	// true costs to F: A=7, B=6, C=3, E=1, D=+Inf
	require.Empty(t, v)

	over := heuristic.Table(map[string]float64{"A": 8, "C": 2})
	v, err = heuristic.Admissible(g, over, "F")
	require.NoError(t, err)
	require.Equal(t, []heuristic.Violation{{From: "A", Estimate: 8, Bound: 7}}, v)

	_, err = heuristic.Admissible(g, h)
	require.ErrorIs(t, err, heuristic.ErrNoGoals)
	_, err = heuristic.Admissible(nil, h, "F")
	require.ErrorIs(t, err, heuristic.ErrNilGraph)
	_, err = heuristic.Admissible(g, h, "Z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestConsistent(t *testing.T) {
	g := classroom()
	// B→D breaks it: 6 > 2+1. B→E is tight: 6 = 5+1.
	h := heuristic.Table(map[string]float64{"A": 5, "B": 6, "C": 2, "D": 1, "E": 1, "F": 0})

	v, err := heuristic.Consistent(g, h)
	require.NoError(t, err)
	require.Equal(t, []heuristic.Violation{{From: "B", To: "D", Estimate: 6, Bound: 3}}, v)

	perfect, err := heuristic.DistancesToGoals(g, "F")
	require.NoError(t, err)
	v, err = heuristic.Consistent(g, heuristic.Table(perfect))
	require.NoError(t, err)
	require.Empty(t, v, "the perfect heuristic is consistent")
}

func TestDistancesToGoals_MultiGoal(t *testing.T) {
	g := classroom()
	d, err := heuristic.DistancesToGoals(g, "D", "F")
	require.NoError(t, err)
	assert.Equal(t, 3.0, d["A"])
	assert.Equal(t, 2.0, d["B"])
	assert.Equal(t, 1.0, d["E"])
	assert.Equal(t, 0.0, d["D"])
}
