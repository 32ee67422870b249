// Package search provides the strategy enum, result and error types for the
// search driver.
package search

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil problem is passed to Search.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrUnknownStrategy is returned for an out-of-range Strategy or an
	// unrecognised strategy name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Strategy selects the expansion policy.
type Strategy int

const (
	// AStar orders the frontier by g + h. Cost-optimal with admissible h.
	AStar Strategy = iota

	// Greedy orders the frontier by h alone.
	Greedy

	// WeightedAStar orders the frontier by g + w·h (w ≥ 1). Cost within a
	// factor w of optimal with admissible h.
	WeightedAStar

	// UniformCost orders the frontier by g. Cost-optimal, ignores h.
	UniformCost

	// BreadthFirst expands in FIFO order. Fewest edges, ignores costs and h.
	BreadthFirst

	// DepthFirst expands the newest path first with a path-local cycle
	// check and an optional depth limit.
	DepthFirst

	// IterativeDeepening repeats depth-limited DepthFirst with growing limits.
	IterativeDeepening

	// Bidirectional grows breadth-first layers from the initial state and
	// from every goal until they meet. Needs problem.Reversible.
	Bidirectional

	// Beam keeps only the BeamWidth best paths by h after each round.
	// Incomplete and non-optimal.
	Beam

	// HillClimbing moves to the best neighbour while it improves h.
	HillClimbing

	// SimulatedAnnealing moves to a random neighbour, accepting worse moves
	// with probability exp(-Δ/T).
	SimulatedAnnealing

	// Tabu moves to the best neighbour not visited in the last TabuSize steps.
	Tabu

	// Genetic evolves a population of random walks.
	Genetic

	// Online interleaves planning and acting: it looks Horizon moves ahead,
	// executes the plan one move at a time and replans when an execution
	// lands somewhere the model did not predict (see problem.Executor).
	Online

	numStrategies
)

var strategyNames = [...]string{
	AStar:              "astar",
	Greedy:             "greedy",
	WeightedAStar:      "weighted_astar",
	UniformCost:        "uniform_cost",
	BreadthFirst:       "bfs",
	DepthFirst:         "dfs",
	IterativeDeepening: "iddfs",
	Bidirectional:      "bidirectional",
	Beam:               "beam",
	HillClimbing:       "hill_climbing",
	SimulatedAnnealing: "simulated_annealing",
	Tabu:               "tabu",
	Genetic:            "genetic",
	Online:             "online",
}

// String returns the configuration name of s.
func (s Strategy) String() string {
	if s < 0 || s >= numStrategies {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Valid reports whether s names a known strategy.
func (s Strategy) Valid() bool { return s >= 0 && s < numStrategies }

// Informed reports whether the strategy reads the heuristic.
func (s Strategy) Informed() bool {
	switch s {
	case UniformCost, BreadthFirst, DepthFirst, IterativeDeepening, Bidirectional:
		return false
	default:
		return s.Valid()
	}
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	out := make([]Strategy, 0, numStrategies)
	for s := Strategy(0); s < numStrategies; s++ {
		out = append(out, s)
	}

	return out
}

// ParseStrategy maps a configuration name ("astar", "beam", …) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Status is the lifecycle state of one search call.
//
//	Ready → Running → {Succeeded, Exhausted}
type Status int

const (
	// Ready is the state before the loop starts; a Result carrying it came
	// from a call that failed validation.
	Ready Status = iota

	// Running in a Result means the loop was aborted by an error.
	Running
	Succeeded
	Exhausted
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Reason explains an Exhausted result.
type Reason string

// Exhaustion reasons.
const (
	ReasonNone             Reason = ""
	ReasonFrontierEmpty    Reason = "frontier_empty"
	ReasonCapExceeded      Reason = "cap_exceeded"
	ReasonDeadlineExceeded Reason = "deadline_exceeded"
	ReasonCancelled        Reason = "cancelled"
	ReasonInvalidHeuristic Reason = "invalid_heuristic"
	ReasonLocalOptimum     Reason = "local_optimum"

	// ReasonGenerationsExhausted ends Genetic after its last generation.
	ReasonGenerationsExhausted Reason = "generations_exhausted"
)

// Result is the outcome of one search call. Exhaustion is a Result, never
// an error.
type Result[S comparable] struct {
	Status Status `json:"status"`

	// Path lists the actions from the initial state to the goal.
	Path []string `json:"path"`

	// States lists the visited states, initial first (len(Path)+1).
	States []S `json:"states"`

	// Cost is the accumulated edge cost of Path.
	Cost float64 `json:"cost"`

	// NodesExpanded counts states taken off the frontier and goal-tested,
	// the goal included (local search: steps).
	NodesExpanded int `json:"nodes_expanded"`

	// Reason is set on Exhausted results only.
	Reason Reason `json:"reason,omitempty"`

	Strategy Strategy      `json:"strategy"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Found reports whether the search reached a goal.
func (r Result[S]) Found() bool { return r.Status == Succeeded }

// Summary is the strategy-agnostic digest passed to an Observer.
type Summary struct {
	Strategy      Strategy
	Status        Status
	Reason        Reason
	NodesExpanded int
	Cost          float64
	Elapsed       time.Duration
	Err           error
}

// Observer receives one Summary per Search call, including failed calls.
// Implementations must be safe for concurrent use when searches run in
// parallel.
type Observer interface {
	ObserveSearch(Summary)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Summary)

// ObserveSearch calls f(s).
func (f ObserverFunc) ObserveSearch(s Summary) { f(s) }

// ExpandEvent is passed to the OnExpand hook each time a state is expanded.
type ExpandEvent struct {
	// State is the expanded state (of the problem's state type).
	State interface{}

	// Cost is the accumulated cost of the path being expanded.
	Cost float64

	// Depth is the number of edges on that path.
	Depth int

	// Expanded is the running expansion count, including this one.
	Expanded int
}
