package heuristic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/dijkstra"
)

// tolerance absorbs float rounding when comparing accumulated costs.
const tolerance = 1e-9

// Violation describes one place where h breaks a property.
//
// For Consistent, From→To is the offending edge and Bound = c(From,To)+h(To).
// For Admissible, To is empty and Bound is the true cost-to-go of From.
type Violation struct {
	From     string
	To       string
	Estimate float64
	Bound    float64
}

// Consistent lists every edge u→v of g with h(u) > c(u,v) + h(v), in edge
// creation order. A NaN or negative estimate is reported on each edge
// leaving the state.
func Consistent(g *core.Graph, h Func[string]) ([]Violation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var out []Violation
	for _, id := range g.States() {
		hu := h(id)
		for _, e := range g.Successors(id) {
			bound := e.Cost + h(e.To)
			if math.IsNaN(hu) || hu < 0 || hu > bound+tolerance {
				out = append(out, Violation{From: id, To: e.To, Estimate: hu, Bound: bound})
			}
		}
	}

	return out, nil
}

// Admissible lists every state whose estimate exceeds its true cost to the
// nearest goal. True costs come from Dijkstra on g.Reverse(), one run per
// goal. States that cannot reach any goal are never violations.
func Admissible(g *core.Graph, h Func[string], goals ...string) ([]Violation, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	costToGo, err := DistancesToGoals(g, goals...)
	if err != nil {
		return nil, err
	}

	var out []Violation
	for _, id := range g.States() {
		est := h(id)
		if math.IsNaN(est) || est < 0 || est > costToGo[id]+tolerance {
			out = append(out, Violation{From: id, Estimate: est, Bound: costToGo[id]})
		}
	}

	return out, nil
}

// DistancesToGoals returns, for every state, the cheapest cost to reach any
// of goals (+Inf when none is reachable). It is the perfect heuristic.
func DistancesToGoals(g *core.Graph, goals ...string) (map[string]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	rev := g.Reverse()
	best := make(map[string]float64, rev.StateCount())
	for _, id := range rev.States() {
		best[id] = math.Inf(1)
	}
	for _, goal := range goals {
		dist, _, err := dijkstra.Dijkstra(rev, dijkstra.Source(goal))
		if err != nil {
			return nil, fmt.Errorf("heuristic: goal %q: %w", goal, err)
		}
		for id, d := range dist {
			if d < best[id] {
				best[id] = d
			}
		}
	}

	return best, nil
}
