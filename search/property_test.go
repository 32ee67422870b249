package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/dijkstra"
	"github.com/katalvlaran/lvsearch/frontier"
	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// TestAStar_MatchesDijkstra cross-checks optimal strategies against Dijkstra
// on seeded random graphs with admissible heuristics.
func TestAStar_MatchesDijkstra(t *testing.T) {
	const source, target = "0", "11"
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 9)},
			builder.RandomSparse(12, 0.25))
		require.NoError(t, err)

		want, _, err := dijkstra.ShortestPath(g, source, target)
		reachable := err == nil
		if !reachable {
			require.True(t, errors.Is(err, dijkstra.ErrNoPath))
		}

		dist, err := heuristic.DistancesToGoals(g, target)
		require.NoError(t, err)
		exact := heuristic.Table(dist)

		p, err := problem.FromGraph(g, source, target)
		require.NoError(t, err)

		for name, h := range map[string]heuristic.Func[string]{
			"zero":  heuristic.Zero[string](),
			"half":  heuristic.Scale(exact, 0.5),
			"exact": exact,
		} {
			for _, s := range []search.Strategy{search.AStar, search.UniformCost} {
				res, err := search.Search[string](p, h, s)
				require.NoError(t, err)
				if !reachable {
					require.Equal(t, search.Exhausted, res.Status, "seed %d %s %s", seed, name, s)
					continue
				}
				require.True(t, res.Found(), "seed %d %s %s", seed, name, s)
				require.Equal(t, want, res.Cost, "seed %d %s %s", seed, name, s)
				require.Equal(t, source, res.States[0])
				require.Equal(t, target, res.States[len(res.States)-1])
			}

			if reachable {
				res, err := search.Search[string](p, h, search.WeightedAStar, search.WithWeight(2))
				require.NoError(t, err)
				require.LessOrEqual(t, res.Cost, 2*want, "seed %d %s", seed, name)
			}
		}

		// BFS ignores costs but must reach every reachable goal.
		res, err := search.Search[string](p, nil, search.BreadthFirst)
		require.NoError(t, err)
		if reachable {
			require.True(t, res.Found(), "seed %d bfs", seed)
			require.GreaterOrEqual(t, res.Cost, want, "seed %d bfs", seed)
			require.Equal(t, target, res.States[len(res.States)-1])
		} else {
			require.Equal(t, search.ReasonFrontierEmpty, res.Reason, "seed %d bfs", seed)
		}

		vs, err := heuristic.Consistent(g, exact)
		require.NoError(t, err)
		require.Empty(t, vs, "seed %d", seed)
	}
}

// TestAStar_ExactHeuristicExpandsPathOnly checks that a perfect h walks
// straight to the goal on a grid.
func TestAStar_ExactHeuristicExpandsPathOnly(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(4, 4))
	require.NoError(t, err)
	goal := builder.GridID(3, 3)
	dist, err := heuristic.DistancesToGoals(g, goal)
	require.NoError(t, err)
	p, err := problem.FromGraph(g, builder.GridID(0, 0), goal)
	require.NoError(t, err)

	res, err := search.Search[string](p, heuristic.Table(dist), search.AStar, search.WithTieBreak(frontier.HigherCostFirst))
	require.NoError(t, err)
	require.Equal(t, 6.0, res.Cost)
	require.Equal(t, 7, res.NodesExpanded)
	require.Len(t, res.Path, 6)
	for _, a := range res.Path {
		require.Contains(t, []string{"right", "down"}, a)
	}
}
