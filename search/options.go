package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/lvsearch/frontier"
)

// Option configures a Search call via functional arguments.
// If an Option is invalid (e.g. zero beam width), it is recorded internally
// and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds every tunable of the search driver. Each strategy reads only
// the fields it documents.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxExpansions caps expansions (local search: steps). Reaching it yields
	// Exhausted/cap_exceeded.
	MaxExpansions int

	// Deadline, if > 0, bounds wall time. Reaching it yields
	// Exhausted/deadline_exceeded.
	Deadline time.Duration

	// TieBreak orders equal-priority frontier entries (best-first family).
	TieBreak frontier.TieBreak

	// BeamWidth is the number of paths kept per round (Beam).
	BeamWidth int

	// Weight inflates h (WeightedAStar). Must be ≥ 1.
	Weight float64

	// DepthLimit bounds path depth for DepthFirst and the deepest iteration
	// of IterativeDeepening. 0 means unlimited.
	DepthLimit int

	// TabuSize is the length of the recency list (Tabu).
	TabuSize int

	// InitialTemperature and CoolingRate drive SimulatedAnnealing:
	// T₀ = InitialTemperature, Tₖ₊₁ = CoolingRate·Tₖ.
	InitialTemperature float64
	CoolingRate        float64

	// Seed feeds the RNG of the stochastic strategies.
	Seed int64

	// Population, Generations, MutationRate and MaxPathLength drive Genetic.
	// MaxPathLength bounds the number of states in an individual.
	Population    int
	Generations   int
	MutationRate  float64
	MaxPathLength int

	// Horizon is the lookahead depth of Online.
	Horizon int

	// Logger receives Debug records at start and finish.
	Logger *slog.Logger

	// Observer receives a Summary after every call.
	Observer Observer

	// OnExpand is called each time a state is expanded.
	OnExpand func(ExpandEvent)

	// internal error recorded during option parsing
	err error
}

// Default option values.
const (
	DefaultMaxExpansions      = 100000
	DefaultBeamWidth          = 2
	DefaultWeight             = 1.5
	DefaultTabuSize           = 3
	DefaultInitialTemperature = 1000
	DefaultCoolingRate        = 0.95
	DefaultSeed               = 1
	DefaultPopulation         = 6
	DefaultGenerations        = 20
	DefaultMutationRate       = 0.2
	DefaultMaxPathLength      = 6
	DefaultHorizon            = 3
)

// DefaultOptions returns Options with the defaults:
//   - context.Background(), no deadline
//   - MaxExpansions 100000, LowerCostFirst tie-break
//   - BeamWidth 2, Weight 1.5, no depth limit
//   - TabuSize 3, InitialTemperature 1000, CoolingRate 0.95, Seed 1
//   - Population 6, Generations 20, MutationRate 0.2, MaxPathLength 6
//   - Horizon 3
//   - slog.Default() tagged component=search, no observer, no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		MaxExpansions:      DefaultMaxExpansions,
		TieBreak:           frontier.LowerCostFirst,
		BeamWidth:          DefaultBeamWidth,
		Weight:             DefaultWeight,
		TabuSize:           DefaultTabuSize,
		InitialTemperature: DefaultInitialTemperature,
		CoolingRate:        DefaultCoolingRate,
		Seed:               DefaultSeed,
		Population:         DefaultPopulation,
		Generations:        DefaultGenerations,
		MutationRate:       DefaultMutationRate,
		MaxPathLength:      DefaultMaxPathLength,
		Horizon:            DefaultHorizon,
		Logger:             slog.Default().With(slog.String("component", "search")),
		OnExpand:           func(ExpandEvent) {},
	}
}

func (o *Options) violate(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]interface{}{ErrOptionViolation}, args...)...)
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions sets the expansion cap. n must be positive.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.violate("MaxExpansions must be positive (%d)", n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithDeadline bounds the wall time of the call.
//
//	d > 0:  deadline after d
//	d == 0: explicit no deadline
//	d < 0:  invalid option → ErrOptionViolation
func WithDeadline(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.violate("Deadline cannot be negative (%s)", d)
			return
		}
		o.Deadline = d
	}
}

// WithTieBreak selects the frontier tie-break rule.
func WithTieBreak(t frontier.TieBreak) Option {
	return func(o *Options) {
		if t != frontier.LowerCostFirst && t != frontier.HigherCostFirst {
			o.violate("unknown tie-break %d", int(t))
			return
		}
		o.TieBreak = t
	}
}

// WithBeamWidth sets the beam width k ≥ 1.
func WithBeamWidth(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.violate("BeamWidth must be ≥ 1 (%d)", k)
			return
		}
		o.BeamWidth = k
	}
}

// WithWeight sets the weighted-A* inflation w ≥ 1.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if !(w >= 1) || math.IsInf(w, 1) {
			o.violate("Weight must be finite and ≥ 1 (%v)", w)
			return
		}
		o.Weight = w
	}
}

// WithDepthLimit bounds path depth for DepthFirst and IterativeDeepening.
// 0 means unlimited; negative values are rejected.
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.violate("DepthLimit cannot be negative (%d)", d)
			return
		}
		o.DepthLimit = d
	}
}

// WithTabuSize sets the recency list length (0 disables the list).
func WithTabuSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.violate("TabuSize cannot be negative (%d)", n)
			return
		}
		o.TabuSize = n
	}
}

// WithInitialTemperature sets T₀ > 0 for SimulatedAnnealing.
func WithInitialTemperature(t float64) Option {
	return func(o *Options) {
		if !(t > 0) || math.IsInf(t, 1) {
			o.violate("InitialTemperature must be finite and positive (%v)", t)
			return
		}
		o.InitialTemperature = t
	}
}

// WithCoolingRate sets the geometric cooling factor, 0 < r < 1.
func WithCoolingRate(r float64) Option {
	return func(o *Options) {
		if !(r > 0 && r < 1) {
			o.violate("CoolingRate must be in (0,1) (%v)", r)
			return
		}
		o.CoolingRate = r
	}
}

// WithSeed seeds the RNG of the stochastic strategies.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPopulation sets the Genetic population size (≥ 2).
func WithPopulation(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.violate("Population must be ≥ 2 (%d)", n)
			return
		}
		o.Population = n
	}
}

// WithGenerations sets the number of Genetic generations (≥ 1).
func WithGenerations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("Generations must be ≥ 1 (%d)", n)
			return
		}
		o.Generations = n
	}
}

// WithMutationRate sets the Genetic mutation probability in [0,1].
func WithMutationRate(p float64) Option {
	return func(o *Options) {
		if !(p >= 0 && p <= 1) {
			o.violate("MutationRate must be in [0,1] (%v)", p)
			return
		}
		o.MutationRate = p
	}
}

// WithMaxPathLength bounds the number of states in a Genetic individual (≥ 2).
func WithMaxPathLength(n int) Option {
	return func(o *Options) {
		if n < 2 {
			o.violate("MaxPathLength must be ≥ 2 (%d)", n)
			return
		}
		o.MaxPathLength = n
	}
}

// WithHorizon sets the Online lookahead depth (≥ 1).
func WithHorizon(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("Horizon must be ≥ 1 (%d)", n)
			return
		}
		o.Horizon = n
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver registers an Observer. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(ExpandEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
