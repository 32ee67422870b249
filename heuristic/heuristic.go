package heuristic

import (
	"errors"
	"math"
)

// ErrNilGraph is returned by the diagnostics when g is nil.
var ErrNilGraph = errors.New("heuristic: graph is nil")

// ErrNoGoals is returned by Admissible when no goal is given.
var ErrNoGoals = errors.New("heuristic: no goal states")

// Func estimates the remaining cost from a state to the nearest goal.
type Func[S comparable] func(s S) float64

// Point is an integer grid coordinate.
type Point struct {
	Row, Col int
}

// Zero returns h(s) = 0 for every state.
func Zero[S comparable]() Func[S] {
	return func(S) float64 { return 0 }
}

// Table returns a lookup heuristic. The map is copied; states missing from
// it estimate 0.
func Table[S comparable](m map[S]float64) Func[S] {
	cp := make(map[S]float64, len(m))
	for k, v := range m {
		cp[k] = v
	}

	return func(s S) float64 { return cp[s] }
}

// Scale multiplies every estimate by w.
func Scale[S comparable](h Func[S], w float64) Func[S] {
	return func(s S) float64 { return w * h(s) }
}

// Min returns the pointwise minimum of hs, or Zero when hs is empty. The
// minimum of admissible estimates towards several goals is admissible for
// the goal set.
func Min[S comparable](hs ...Func[S]) Func[S] {
	if len(hs) == 0 {
		return Zero[S]()
	}

	return func(s S) float64 {
		best := math.Inf(1)
		for _, h := range hs {
			if v := h(s); v < best || math.IsNaN(v) {
				best = v
			}
		}

		return best
	}
}

// Max returns the pointwise maximum of hs, or Zero when hs is empty.
func Max[S comparable](hs ...Func[S]) Func[S] {
	if len(hs) == 0 {
		return Zero[S]()
	}

	return func(s S) float64 {
		best := math.Inf(-1)
		for _, h := range hs {
			if v := h(s); v > best || math.IsNaN(v) {
				best = v
			}
		}

		return best
	}
}

// Manhattan returns |Δrow| + |Δcol| between coords[s] and goal. States
// missing from coords estimate 0. The estimate is admissible on 4-connected
// grids whose moves cost at least 1.
func Manhattan[S comparable](coords map[S]Point, goal Point) Func[S] {
	cp := make(map[S]Point, len(coords))
	for k, v := range coords {
		cp[k] = v
	}

	return func(s S) float64 {
		p, ok := cp[s]
		if !ok {
			return 0
		}

		return math.Abs(float64(p.Row-goal.Row)) + math.Abs(float64(p.Col-goal.Col))
	}
}

// Chebyshev returns max(|Δrow|, |Δcol|) between coords[s] and goal, the
// admissible counterpart of Manhattan on 8-connected grids.
func Chebyshev[S comparable](coords map[S]Point, goal Point) Func[S] {
	cp := make(map[S]Point, len(coords))
	for k, v := range coords {
		cp[k] = v
	}

	return func(s S) float64 {
		p, ok := cp[s]
		if !ok {
			return 0
		}

		return math.Max(math.Abs(float64(p.Row-goal.Row)), math.Abs(float64(p.Col-goal.Col)))
	}
}
