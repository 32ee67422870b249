package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// TestNewGridGraph_Errors verifies that NewGridGraph rejects malformed inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	letters := gridgraph.DefaultGridOptions()
	letters.IDs = gridgraph.LetterIDs
	big := make([][]int, 6)
	for i := range big {
		big[i] = make([]int, 5)
	}
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"TooManyLetters", big, letters, gridgraph.ErrTooManyCells},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestCellIDs round-trips both naming schemes.
func TestCellIDs(t *testing.T) {
	w := gridgraph.RobotWorld()
	assert.Equal(t, "A", w.ID(0, 0))
	assert.Equal(t, "F", w.ID(1, 2))
	r, c, err := w.Cell("H")
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 1}, [2]int{r, c})
	_, _, err = w.Cell("J")
	assert.ErrorIs(t, err, gridgraph.ErrUnknownCell)

	gg, err := gridgraph.NewGridGraph([][]int{{1, 1}, {1, 1}}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, "1,0", gg.ID(1, 0))
	r, c, err = gg.Cell("0,1")
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 1}, [2]int{r, c})
	for _, bad := range []string{"x", "2,0", "0,-1", "a,b"} {
		_, _, err = gg.Cell(bad)
		assert.ErrorIs(t, err, gridgraph.ErrUnknownCell, bad)
	}
}

// TestRobotWorld_Graph checks states, edge count and move labels.
func TestRobotWorld_Graph(t *testing.T) {
	g := gridgraph.RobotWorld().ToCoreGraph()
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}, g.States())
	assert.Equal(t, 24, g.EdgeCount())

	var moves []string
	for _, e := range g.Successors("E") {
		moves = append(moves, e.Action+":"+e.To)
	}
	assert.Equal(t, []string{"up:B", "down:H", "left:D", "right:F"}, moves)

	row, ok := g.Metadata("F", "row")
	require.True(t, ok)
	assert.Equal(t, 1, row)
}

// TestRobotWorld_AStar is the classic A→I run with Manhattan distance.
func TestRobotWorld_AStar(t *testing.T) {
	w := gridgraph.RobotWorld()
	h, err := w.Heuristic("I")
	require.NoError(t, err)
	assert.Equal(t, 4.0, h("A"))

	p, err := problem.FromGraph(w.ToCoreGraph(), "A", "I")
	require.NoError(t, err)
	res, err := search.Search[string](p, h, search.AStar)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 4.0, res.Cost)
	assert.LessOrEqual(t, res.NodesExpanded, 9)
	for _, a := range res.Path {
		assert.Contains(t, []string{"down", "right"}, a)
	}
}

// TestWalls routes around a wall and counts walls to break through it.
func TestWalls(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 1, 1},
		{0, 0, 1},
		{1, 1, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	g := gg.ToCoreGraph()
	assert.Equal(t, 7, g.StateCount())
	assert.False(t, g.HasState("1,0"))

	h, err := gg.Heuristic("2,0")
	require.NoError(t, err)
	p, err := problem.FromGraph(g, "0,0", "2,0")
	require.NoError(t, err)
	res, err := search.Search[string](p, h, search.AStar)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Cost)
	assert.Equal(t, []string{"right", "right", "down", "down", "left", "left"}, res.Path)

	// the detour crosses no wall at all
	route, walls, err := gg.WallsToBreak("0,0", "2,0")
	require.NoError(t, err)
	assert.Equal(t, 0, walls)
	assert.Equal(t, []string{"0,0", "0,1", "0,2", "1,2", "2,2", "2,1", "2,0"}, route)

	regions := gg.Regions()
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 7)
}

// TestRegions_Connected separates two cells with a wall column.
func TestRegions_Connected(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 1},
		{1, 0, 1},
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"0,0", "1,0"}, {"0,2", "1,2"}}, gg.Regions())

	ok, err := gg.Connected("0,0", "1,0")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = gg.Connected("0,0", "1,2")
	require.NoError(t, err)
	assert.False(t, ok)
	_, err = gg.Connected("0,0", "0,1")
	assert.ErrorIs(t, err, gridgraph.ErrWall)

	_, walls, err := gg.WallsToBreak("0,0", "0,2")
	require.NoError(t, err)
	assert.Equal(t, 1, walls)

	p, err := problem.FromGraph(gg.ToCoreGraph(), "0,0", "0,2")
	require.NoError(t, err)
	res, err := search.Search[string](p, nil, search.BreadthFirst)
	require.NoError(t, err)
	assert.Equal(t, search.ReasonFrontierEmpty, res.Reason)
}

// TestWeightedAndDiagonal covers cell costs and 8-connectivity.
func TestWeightedAndDiagonal(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Weighted = true
	gg, err := gridgraph.NewGridGraph([][]int{{2, 2}, {2, 2}}, opts)
	require.NoError(t, err)
	h, err := gg.Heuristic("1,1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, h("0,0"))
	for _, e := range gg.ToCoreGraph().Edges() {
		assert.Equal(t, 2.0, e.Cost)
	}

	opts = gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err = gridgraph.NewGridGraph([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, opts)
	require.NoError(t, err)
	h, err = gg.Heuristic("2,2")
	require.NoError(t, err)
	assert.Equal(t, 2.0, h("0,0"))

	p, err := problem.FromGraph(gg.ToCoreGraph(), "0,0", "2,2")
	require.NoError(t, err)
	res, err := search.Search[string](p, h, search.AStar)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Cost)
	assert.Equal(t, []string{"down-right", "down-right"}, res.Path)

	_, err = gg.Heuristic("9,9")
	assert.ErrorIs(t, err, gridgraph.ErrUnknownCell)
}
