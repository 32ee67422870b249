package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// slippery wraps a table problem whose first moves fail in place.
type slippery struct {
	*problem.TableProblem[string]
	slips int
	err   error
}

func (s *slippery) Execute(from string, e problem.Edge[string]) (problem.Edge[string], error) {
	if s.err != nil {
		return problem.Edge[string]{}, s.err
	}
	if s.slips > 0 {
		s.slips--
		return problem.Edge[string]{Action: "slip", To: from, Cost: 1}, nil
	}
	return e, nil
}

func line(t *testing.T) *problem.TableProblem[string] {
	t.Helper()
	p, err := problem.FromTable("A", map[string][]edge{
		"A": {{Action: "b", To: "B", Cost: 1}},
		"B": {{Action: "c", To: "C", Cost: 1}},
		"C": {{Action: "g", To: "G", Cost: 1}},
	}, "G")
	require.NoError(t, err)
	return p
}

// TestOnline_RecedingHorizon walks toward the horizon state with the lowest
// g + h until the goal comes into view.
func TestOnline_RecedingHorizon(t *testing.T) {
	p, h := gridWorld(t)

	res, err := search.Search[string](p, h, search.Online, search.WithHorizon(2))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, []string{"A", "D", "G", "H", "I"}, res.States)
	require.Equal(t, []string{"down", "down", "right", "right"}, res.Path)
	require.Equal(t, 4.0, res.Cost)
	// five steps and two lookaheads of two expansions each
	require.Equal(t, 9, res.NodesExpanded)

	res, err = search.Search[string](p, h, search.Online, search.WithHorizon(4))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "D", "G", "H", "I"}, res.States)
	require.Equal(t, 4.0, res.Cost)
}

// TestOnline_PicksCheapestGoalInHorizon keeps looking after the first goal
// path and replaces it with a cheaper one.
func TestOnline_PicksCheapestGoalInHorizon(t *testing.T) {
	p, err := problem.FromTable("A", map[string][]edge{
		"A": {{Action: "direct", To: "G", Cost: 5}, {Action: "b", To: "B", Cost: 1}},
		"B": {{Action: "g", To: "G", Cost: 1}},
	}, "G")
	require.NoError(t, err)

	res, err := search.Search[string](p, nil, search.Online, search.WithHorizon(2))
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, []string{"b", "g"}, res.Path)
	require.Equal(t, 2.0, res.Cost)
}

// TestOnline_ReplansAfterSlip records the failed move and replans from the
// state the agent actually reached.
func TestOnline_ReplansAfterSlip(t *testing.T) {
	p := &slippery{TableProblem: line(t), slips: 2}
	res, err := search.Search[string](p, nil, search.Online)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, []string{"slip", "slip", "b", "c", "g"}, res.Path)
	require.Equal(t, []string{"A", "A", "A", "B", "C", "G"}, res.States)
	require.Equal(t, 5.0, res.Cost)

	// without an executor the model is trusted
	res, err = search.Search[string](line(t), nil, search.Online)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c", "g"}, res.Path)
}

func TestOnline_Errors(t *testing.T) {
	boom := errors.New("motor stalled")
	_, err := search.Search[string](&slippery{TableProblem: line(t), err: boom}, nil, search.Online)
	require.ErrorIs(t, err, problem.ErrInvalidProblem)
	require.ErrorIs(t, err, boom)

	_, err = search.Search[string](line(t), nil, search.Online, search.WithHorizon(0))
	require.ErrorIs(t, err, search.ErrOptionViolation)

	res, err := search.Search[string](line(t), func(string) float64 { return -1 }, search.Online, search.WithHorizon(1))
	require.NoError(t, err)
	require.Equal(t, search.ReasonInvalidHeuristic, res.Reason)
}
