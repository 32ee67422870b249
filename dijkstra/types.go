// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on state graphs.
//
// Options:
//
//	– Source:           ID of the starting state (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; states beyond this are skipped.
//	– InfEdgeThreshold: edges with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource      if the provided source ID is empty.
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrVertexNotFound   if the source state does not exist in the graph.
//	– ErrOptionViolation  if MaxDistance < 0 or InfEdgeThreshold <= 0.
//	– ErrNoPath           if PathTo cannot reach the target.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source state ID is empty.
	ErrEmptySource = errors.New("dijkstra: source state ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source state does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source state not found in graph")

	// ErrOptionViolation indicates an invalid Option value (negative MaxDistance,
	// non-positive InfEdgeThreshold).
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates the requested target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting state ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (states beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with cost ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           string  // The ID of the source state
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Cost threshold above which edges are non-traversable

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting state ID.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// States whose shortest distance would exceed this value are not explored.
// Negative or NaN values are recorded and reported as ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which edges are
// considered non-traversable (treated as infinite cost).
// Zero, negative or NaN values are reported as ErrOptionViolation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%v)", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source state ID.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +Inf (explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
