package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/problem"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for batch execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("batch: invalid option supplied")

	// ErrJobFailed wraps the first search error under FailFast.
	ErrJobFailed = errors.New("batch: job failed")
)

// Job is one search to run. A zero ID is replaced by a fresh UUID.
type Job[S comparable] struct {
	ID        uuid.UUID
	Name      string
	Problem   problem.Problem[S]
	Heuristic heuristic.Func[S]
	Strategy  search.Strategy
	Options   []search.Option
}

// Outcome pairs a job with its result. Err holds the error returned by
// search.Search, if any.
type Outcome[S comparable] struct {
	JobID  uuid.UUID
	Name   string
	Result search.Result[S]
	Err    error
}

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the batch settings.
type Options struct {
	// Ctx is the parent of every job context.
	Ctx context.Context

	// Concurrency bounds the number of searches in flight.
	Concurrency int

	// FailFast cancels the remaining jobs after the first search error and
	// makes Run return it. Exhausted results are not errors.
	FailFast bool

	// Observer is added to every job's options.
	Observer search.Observer

	Logger *slog.Logger

	err error
}

// DefaultOptions returns background context, GOMAXPROCS workers, no
// FailFast, no observer and slog.Default() tagged component=batch.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Concurrency: runtime.GOMAXPROCS(0),
		Logger:      slog.Default().With(slog.String("component", "batch")),
	}
}

// WithContext sets the parent context; nil is a violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.violate("nil context")
			return
		}
		o.Ctx = ctx
	}
}

// WithConcurrency sets the worker bound (≥ 1).
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("Concurrency must be ≥ 1 (%d)", n)
			return
		}
		o.Concurrency = n
	}
}

// WithFailFast stops the batch on the first search error.
func WithFailFast() Option {
	return func(o *Options) { o.FailFast = true }
}

// WithObserver passes obs to every search. A nil observer is ignored.
func WithObserver(obs search.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
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

func (o *Options) violate(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]interface{}{ErrOptionViolation}, args...)...)
	}
}
