package metrics_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/aostar"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

func chain(t *testing.T) problem.Problem[string] {
	t.Helper()
	p, err := problem.FromTable("A", map[string][]problem.Edge[string]{
		"A": {{Action: "A→B", To: "B", Cost: 1}},
		"B": {{Action: "B→C", To: "C", Cost: 1}},
	}, "C")
	require.NoError(t, err)
	return p
}

func TestCollector_ObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	h := heuristic.Zero[string]()
	p := chain(t)

	for i := 0; i < 2; i++ {
		_, err := search.Search(p, h, search.AStar, search.WithObserver(c))
		require.NoError(t, err)
	}
	_, err := search.Search(p, h, search.BreadthFirst, search.WithObserver(c), search.WithMaxExpansions(1))
	require.NoError(t, err)
	_, err = search.Search(p, h, search.Beam, search.WithObserver(c), search.WithBeamWidth(0))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.SearchesTotal.WithLabelValues("astar", "succeeded", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SearchesTotal.WithLabelValues("bfs", "exhausted", "cap_exceeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SearchesTotal.WithLabelValues("beam", "ready", "error")))
	assert.Equal(t, 3, testutil.CollectAndCount(c.SearchesTotal))

	// Failed calls are counted but not observed in the histograms.
	assert.Equal(t, 2, testutil.CollectAndCount(c.NodesExpanded))
	assert.Equal(t, 2, testutil.CollectAndCount(c.SearchDurationSeconds))

	expected := `
# HELP lvsearch_nodes_expanded States expanded per search call
# TYPE lvsearch_nodes_expanded histogram
`
	n, err := testutil.GatherAndCount(reg, "lvsearch_nodes_expanded")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected+nodesExpandedSeries), "lvsearch_nodes_expanded"))
}

// nodesExpandedSeries is the exposition of two astar calls with 3
// expansions and one bfs call with 1.
const nodesExpandedSeries = `lvsearch_nodes_expanded_bucket{strategy="astar",le="1"} 0
lvsearch_nodes_expanded_bucket{strategy="astar",le="4"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="16"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="64"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="256"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="1024"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="4096"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="16384"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="65536"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="262144"} 2
lvsearch_nodes_expanded_bucket{strategy="astar",le="+Inf"} 2
lvsearch_nodes_expanded_sum{strategy="astar"} 6
lvsearch_nodes_expanded_count{strategy="astar"} 2
lvsearch_nodes_expanded_bucket{strategy="bfs",le="1"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="4"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="16"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="64"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="256"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="1024"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="4096"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="16384"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="65536"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="262144"} 1
lvsearch_nodes_expanded_bucket{strategy="bfs",le="+Inf"} 1
lvsearch_nodes_expanded_sum{strategy="bfs"} 1
lvsearch_nodes_expanded_count{strategy="bfs"} 1
`

func TestCollector_UnknownStrategy(t *testing.T) {
	c := metrics.NewCollector(nil)
	_, err := search.Search(chain(t), heuristic.Zero[string](), search.Strategy(42), search.WithObserver(c))
	require.ErrorIs(t, err, search.ErrUnknownStrategy)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SearchesTotal.WithLabelValues("unknown", "ready", "error")))
}

func TestCollector_ObserveSolve(t *testing.T) {
	c := metrics.NewCollector(prometheus.NewRegistry())

	g, err := aostar.FromAlternatives(map[string][][]aostar.Arc{
		"A": {{{To: "B", Cost: 1}}},
		"B": {{{To: "A", Cost: 1}}},
	})
	require.NoError(t, err)
	c.ObserveSolve(aostar.Solve(g, "A"))

	g, err = aostar.FromAlternatives(map[string][][]aostar.Arc{"A": {{{To: "B", Cost: 1}}}})
	require.NoError(t, err)
	c.ObserveSolve(aostar.Solve(g, "A"))
	c.ObserveSolve(nil, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.AndOrSolvesTotal.WithLabelValues("cycle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.AndOrSolvesTotal.WithLabelValues("solved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.AndOrSolvesTotal.WithLabelValues("error")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.AndOrNodesExpanded))
}

func TestNewCollector_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg)
	assert.Panics(t, func() { metrics.NewCollector(reg) })
}
