package problem

import (
	"errors"
)

// ErrInvalidProblem is returned when a problem cannot be searched as given.
// Search drivers also wrap successor-function failures with it.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// Edge is one transition out of a state.
type Edge[S comparable] struct {
	// Action labels the move ("right", "B", …).
	Action string

	// To is the destination state.
	To S

	// Cost is the non-negative step cost.
	Cost float64
}

// Problem is the contract every search strategy consumes.
//
// Successors must be deterministic and finite for a given state. A state
// without outgoing edges (including one the problem has never heard of)
// yields an empty slice and a nil error. Implementations must not hand out
// slices they later mutate.
type Problem[S comparable] interface {
	Initial() S
	IsGoal(s S) bool
	Successors(s S) ([]Edge[S], error)
}

// Reversible problems can also be walked backwards from an explicit goal set,
// which bidirectional search requires.
//
// Predecessors(s) returns one Edge per incoming transition u → s with To set
// to u and Action set to the label used when walking u → s forward.
type Reversible[S comparable] interface {
	Problem[S]
	Predecessors(s S) ([]Edge[S], error)
	Goals() []S
}

// Executor problems act in an environment that may not follow the model.
// Execute performs the planned move e from s and returns the move that
// actually happened; online search replans whenever its To differs from
// the planned one. Problems that are not Executors behave exactly as
// modelled.
type Executor[S comparable] interface {
	Problem[S]
	Execute(s S, e Edge[S]) (Edge[S], error)
}

// GoalFunc reports whether a state satisfies the goal.
type GoalFunc[S comparable] func(s S) bool

// SuccessorFunc enumerates the outgoing edges of a state.
type SuccessorFunc[S comparable] func(s S) ([]Edge[S], error)

// GoalSet returns a GoalFunc that accepts exactly the given states.
func GoalSet[S comparable](states ...S) GoalFunc[S] {
	set := make(map[S]struct{}, len(states))
	for _, s := range states {
		set[s] = struct{}{}
	}

	return func(s S) bool {
		_, ok := set[s]
		return ok
	}
}
