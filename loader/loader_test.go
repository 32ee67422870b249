package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/aostar"
	"github.com/katalvlaran/lvsearch/loader"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

func TestLoad_Classroom(t *testing.T) {
	p, err := loader.Load(filepath.Join("testdata", "classroom.yaml"))
	require.NoError(t, err)
	require.Equal(t, "classroom", p.Name)
	require.Nil(t, p.AndOr)
	require.Equal(t, 6, p.Graph.StateCount())
	require.Equal(t, 7.0, p.Heuristic("A"))
	require.Len(t, p.Runs, 4)

	labels := make([]string, 0, len(p.Runs))
	for _, r := range p.Runs {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"astar", "astar-high", "bfs", "beam"}, labels)

	want := [][]string{
		{"A", "C", "F"},
		{"A", "B", "E", "F"},
		{"A", "C", "F"},
		{"A", "C", "F"},
	}
	for i, r := range p.Runs {
		res, err := search.Search[string](p.Search, p.Heuristic, r.Strategy, r.Options...)
		require.NoError(t, err, r.Label)
		require.True(t, res.Found(), r.Label)
		assert.Equal(t, want[i], res.States, r.Label)
		assert.Equal(t, 7.0, res.Cost, r.Label)
	}
}

func TestLoad_GridManhattan(t *testing.T) {
	p, err := loader.Load(filepath.Join("testdata", "robot.yaml"))
	require.NoError(t, err)
	require.Equal(t, 9, p.Graph.StateCount())
	require.Equal(t, 4.0, p.Heuristic("A"))
	require.Len(t, p.Runs, 1)
	require.Equal(t, search.AStar, p.Runs[0].Strategy)

	res, err := search.Search[string](p.Search, p.Heuristic, p.Runs[0].Strategy, p.Runs[0].Options...)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, 4.0, res.Cost)
	assert.LessOrEqual(t, res.NodesExpanded, 9)
}

func TestLoad_AndOrOnly(t *testing.T) {
	p, err := loader.Load(filepath.Join("testdata", "plans.yaml"))
	require.NoError(t, err)
	require.Nil(t, p.Search)
	require.Empty(t, p.Runs)
	require.NotNil(t, p.AndOr)

	sol, err := aostar.Solve(p.AndOr.Graph, p.AndOr.Root, p.AndOr.Options...)
	require.NoError(t, err)
	assert.Equal(t, 2.0, sol.Cost)
	assert.Equal(t, []string{"A", "B", "E"}, sol.Plan())
}

func TestParse_AndOrLookahead(t *testing.T) {
	p, err := loader.Parse([]byte(`
andor:
  root: A
  max_depth: 1
  heuristic: {B: 2, C: 2, D: 2}
  nodes:
    A:
      - [{to: B, cost: 1}]
      - [{to: C, cost: 1}, {to: D, cost: 1}]
    B: [[{to: E, cost: 1}]]
    C: [[{to: F, cost: 1}]]
    D: [[{to: F, cost: 1}]]
`))
	require.NoError(t, err)
	sol, err := aostar.Solve(p.AndOr.Graph, p.AndOr.Root, p.AndOr.Options...)
	require.NoError(t, err)
	assert.Equal(t, 3.0, sol.Cost)
	assert.Equal(t, []string{"A", "B"}, sol.Plan())
}

func TestParse_HeuristicKinds(t *testing.T) {
	const graph = `
initial: A
goals: [C]
undirected: true
edges:
  - {from: A, to: B, cost: 2, action: east, reverse_action: west}
  - {from: B, to: C, cost: 3, action: east, reverse_action: west}
`
	p, err := loader.Parse([]byte(graph + "heuristic: {kind: exact}\n"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.Heuristic("A"))
	assert.Equal(t, 3.0, p.Heuristic("B"))

	back := p.Graph.Successors("B")
	require.Len(t, back, 2)
	assert.Equal(t, "west", back[0].Action)

	p, err = loader.Parse([]byte(graph + "heuristic: {kind: exact, scale: 2}\n"))
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.Heuristic("A"))

	p, err = loader.Parse([]byte(graph))
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Heuristic("A"))

	_, err = loader.Parse([]byte(graph + "heuristic: {kind: manhattan}\n"))
	require.ErrorIs(t, err, loader.ErrHeuristicKind)
}

func TestParse_MultiGoalGrid(t *testing.T) {
	p, err := loader.Parse([]byte(`
initial: "0,0"
goals: ["0,3", "3,0"]
grid:
  conn: 8
  rows:
    - [1, 1, 1, 1]
    - [1, 0, 0, 1]
    - [1, 0, 0, 1]
    - [1, 1, 1, 1]
heuristic: {kind: manhattan}
`))
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Heuristic("0,0"))
	assert.Equal(t, 1.0, p.Heuristic("1,3"))
	assert.False(t, p.Graph.HasState("1,1"), "walls are not states")
}

// TestParse_GridRegions rejects a grid whose wall column seals the goal
// away from the initial cell, unless another goal is reachable.
func TestParse_GridRegions(t *testing.T) {
	const grid = `
grid:
  rows:
    - [1, 0, 1]
    - [1, 0, 1]
`
	_, err := loader.Parse([]byte("initial: \"0,0\"\ngoals: [\"1,2\"]\n" + grid))
	require.ErrorIs(t, err, loader.ErrInvalidFile)
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
	require.ErrorIs(t, err, loader.ErrUnreachableGoal)
	assert.Contains(t, err.Error(), `"1,2" is 1 wall(s) away from "0,0"`)

	p, err := loader.Parse([]byte("initial: \"0,0\"\ngoals: [\"1,2\", \"1,0\"]\n" + grid))
	require.NoError(t, err)
	res, err := search.Search[string](p.Search, p.Heuristic, search.AStar)
	require.NoError(t, err)
	assert.Equal(t, []string{"0,0", "1,0"}, res.States)
}

// TestParse_ManhattanTable raises the grid distance where the table is
// larger.
func TestParse_ManhattanTable(t *testing.T) {
	p, err := loader.Parse([]byte(`
initial: "0,0"
goals: ["0,2"]
grid: {rows: [[1, 1, 1], [1, 1, 1]]}
heuristic:
  kind: manhattan
  table: {"1,0": 7}
`))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Heuristic("0,0"))
	assert.Equal(t, 7.0, p.Heuristic("1,0"))
	assert.Equal(t, 2.0, p.Heuristic("1,1"))
}

func TestParse_RunOverrides(t *testing.T) {
	p, err := loader.Parse([]byte(`
initial: A
goals: [B]
edges: [{from: A, to: B, cost: 1}]
search:
  strategy: tabu
  tabu_size: 0
  seed: 42
  max_expansions: 10
runs:
  - {}
  - {strategy: genetic, population: 4, generations: 1, mutation_rate: 0}
  - {strategy: simulated_annealing, cooling_rate: 0.5, initial_temperature: 10}
  - {strategy: weighted_astar, weight: 2, deadline: 1s}
  - {strategy: iddfs, depth_limit: 3}
  - {strategy: online, horizon: 2}
`))
	require.NoError(t, err)
	require.Len(t, p.Runs, 6)
	for _, r := range p.Runs {
		res, err := search.Search[string](p.Search, p.Heuristic, r.Strategy, r.Options...)
		require.NoError(t, err, r.Label)
		assert.Equal(t, []string{"A", "B"}, res.States, r.Label)
	}
	assert.Equal(t, search.Tabu, p.Runs[0].Strategy)
	assert.Equal(t, search.Genetic, p.Runs[1].Strategy)
	assert.Equal(t, "weighted_astar", p.Runs[3].Label)
	assert.Equal(t, search.Online, p.Runs[5].Strategy)

	assert.Equal(t, search.Tabu, p.Base.Strategy)
	assert.Equal(t, "tabu", p.Base.Label)
	assert.Len(t, p.Base.Options, 3, "tabu_size, seed and max_expansions only")
}

// TestParse_BaseIgnoresRuns keeps the search section apart from the first
// runs entry.
func TestParse_BaseIgnoresRuns(t *testing.T) {
	p, err := loader.Parse([]byte(`
initial: A
goals: [G]
edges:
  - {from: A, to: B, cost: 1}
  - {from: A, to: C, cost: 1}
  - {from: B, to: D, cost: 1}
  - {from: C, to: G, cost: 1}
heuristic: {table: {A: 3, B: 1, C: 2, D: 0, G: 0}}
search: {beam_width: 2}
runs: [{strategy: beam, beam_width: 1}]
`))
	require.NoError(t, err)

	res, err := search.Search[string](p.Search, p.Heuristic, search.Beam, p.Runs[0].Options...)
	require.NoError(t, err)
	assert.Equal(t, search.ReasonFrontierEmpty, res.Reason)

	res, err = search.Search[string](p.Search, p.Heuristic, search.Beam, p.Base.Options...)
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []string{"A", "C", "G"}, res.States)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":           ``,
		"unknown key":     "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\ncolour: red\n",
		"no initial":      "goals: [B]\nedges: [{from: A, to: B}]\n",
		"no goals":        "initial: A\nedges: [{from: A, to: B}]\n",
		"negative cost":   "initial: A\ngoals: [B]\nedges: [{from: A, to: B, cost: -1}]\n",
		"missing to":      "initial: A\ngoals: [B]\nedges: [{from: A}]\n",
		"edges and grid":  "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\ngrid: {rows: [[1]]}\n",
		"bad conn":        "initial: A\ngoals: [B]\ngrid: {conn: 6, rows: [[1]]}\n",
		"bad strategy":    "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\nsearch: {strategy: dijkstra}\n",
		"bad tie break":   "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\nsearch: {tie_break: random}\n",
		"weight below 1":  "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\nsearch: {weight: 0.5}\n",
		"cooling rate":    "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\nruns: [{cooling_rate: 1.5}]\n",
		"negative h":      "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\nheuristic: {table: {A: -1}}\n",
		"bad kind":        "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\nheuristic: {kind: euclid}\n",
		"andor no root":   "andor: {nodes: {A: []}}\n",
		"andor empty opt": "andor: {root: A, nodes: {A: [[]]}}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, loader.ErrInvalidFile)
		})
	}

	_, err := loader.Decode(strings.NewReader(cases["bad strategy"]))
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "strategy", verrs[0].Tag())
}

func TestBuild_Invalid(t *testing.T) {
	cases := map[string]string{
		"no graph":       "initial: A\ngoals: [B]\n",
		"unknown goal":   "initial: A\ngoals: [Z]\nedges: [{from: A, to: B}]\n",
		"ragged grid":    "initial: \"0,0\"\ngoals: [\"0,1\"]\ngrid: {rows: [[1, 1], [1]]}\n",
		"grid goal wall": "initial: \"0,0\"\ngoals: [\"0,1\"]\ngrid: {rows: [[1, 0]]}\n",
		"andor root":     "andor: {root: Z, nodes: {A: []}}\n",
		"andor cost":     "andor: {root: A, nodes: {A: [[{to: B, cost: -2}]]}}\n",
		"runs strategy":  "initial: A\ngoals: [B]\nedges: [{from: A, to: B}]\nruns: [{strategy: nope}]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.Parse([]byte(doc))
			require.ErrorIs(t, err, loader.ErrInvalidFile)
		})
	}

	_, err := loader.Parse([]byte(cases["no graph"]))
	require.ErrorIs(t, err, loader.ErrNoGraph)
}

func TestLoad_Missing(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
