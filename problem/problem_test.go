package problem_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/problem"
)

type E = problem.Edge[string]

func TestNew_Validation(t *testing.T) {
	_, err := problem.New[string]("A", nil, func(string) ([]E, error) { return nil, nil })
	require.ErrorIs(t, err, problem.ErrInvalidProblem)

	_, err = problem.New("A", problem.GoalSet("B"), nil)
	require.ErrorIs(t, err, problem.ErrInvalidProblem)

	boom := errors.New("boom")
	p, err := problem.New("A", problem.GoalSet("B"), func(s string) ([]E, error) {
		if s == "X" {
			return nil, boom
		}
		return []E{{Action: "go", To: "B", Cost: 1}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "A", p.Initial())
	assert.True(t, p.IsGoal("B"))
	assert.False(t, p.IsGoal("A"))
	_, err = p.Successors("X")
	assert.ErrorIs(t, err, boom)
}

func TestFromTable(t *testing.T) {
	table := map[string][]E{
		"A": {{Action: "B", To: "B", Cost: 1}, {Action: "C", To: "C", Cost: 4}},
		"B": {{Action: "D", To: "D", Cost: 2}},
		"C": {{Action: "D", To: "D", Cost: 1}},
	}
	p, err := problem.FromTable("A", table, "D")
	require.NoError(t, err)

	// mutating the caller's table must not leak into the problem
	table["A"][0].Cost = 99
	succ, err := p.Successors("A")
	require.NoError(t, err)
	require.Equal(t, 1.0, succ[0].Cost)

	none, err := p.Successors("missing")
	require.NoError(t, err)
	require.Empty(t, none)

	pred, err := p.Predecessors("D")
	require.NoError(t, err)
	require.Equal(t, []E{{Action: "D", To: "B", Cost: 2}, {Action: "D", To: "C", Cost: 1}}, pred)
	require.Equal(t, []string{"D"}, p.Goals())

	_, err = problem.FromTable("A", table)
	require.ErrorIs(t, err, problem.ErrInvalidProblem)

	_, err = problem.FromTable("A", map[string][]E{"A": {{To: "B", Cost: -1}}}, "B")
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
	_, err = problem.FromTable("A", map[string][]E{"A": {{To: "B", Cost: math.NaN()}}}, "B")
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
}

func TestFromGraph(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2, core.WithAction("jump"))

	_, err := problem.FromGraph(nil, "A", "C")
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
	_, err = problem.FromGraph(g, "Z", "C")
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
	_, err = problem.FromGraph(g, "A")
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
	_, err = problem.FromGraph(g, "A", "nowhere")
	require.ErrorIs(t, err, problem.ErrInvalidProblem)

	p, err := problem.FromGraph(g, "A", "C")
	require.NoError(t, err)
	require.Same(t, g, p.Graph())

	succ, _ := p.Successors("A")
	require.Equal(t, []E{{Action: "B", To: "B", Cost: 1}}, succ, "unlabelled edges use the destination")

	pred, _ := p.Predecessors("C")
	require.Equal(t, []E{{Action: "jump", To: "B", Cost: 2}}, pred)

	var _ problem.Reversible[string] = p
}

func TestPath(t *testing.T) {
	root := problem.Root("A")
	require.Equal(t, 0, root.Depth())
	require.Equal(t, 0.0, root.Cost())
	require.Nil(t, root.Parent())
	require.Empty(t, root.Actions())
	require.Equal(t, []string{"A"}, root.States())

	ab := root.Extend(E{Action: "ab", To: "B", Cost: 1})
	abc := ab.Extend(E{Action: "bc", To: "C", Cost: 2.5})
	abd := ab.Extend(E{Action: "bd", To: "D", Cost: 4})

	require.Equal(t, []string{"A", "B", "C"}, abc.States())
	require.Equal(t, []string{"ab", "bd"}, abd.Actions())
	require.Equal(t, 3.5, abc.Cost())
	require.Equal(t, 5.0, abd.Cost())
	require.Same(t, abc.Parent(), abd.Parent(), "siblings share their prefix")
	require.Equal(t, 1, ab.Depth(), "extending does not mutate the parent")

	require.True(t, abc.Contains("A"))
	require.False(t, abc.Contains("D"))
	require.Equal(t, 1, abc.IndexOf("B"))
	require.Equal(t, -1, abc.IndexOf("Z"))
	require.Same(t, ab, abc.Prefix(1))
	require.Same(t, root, abc.Prefix(-3))
	require.Same(t, abc, abc.Prefix(10))

	replay := problem.Root("A")
	for _, e := range abc.Edges() {
		replay = replay.Extend(e)
	}
	require.Equal(t, abc.States(), replay.States())
	require.Equal(t, abc.Cost(), replay.Cost())
}

func TestGoalSet(t *testing.T) {
	goal := problem.GoalSet(1, 3)
	assert.True(t, goal(1))
	assert.False(t, goal(2))
	assert.True(t, goal(3))
	assert.False(t, problem.GoalSet[int]()(0))
}
