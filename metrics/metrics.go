// Package metrics exports search and AND-OR solve outcomes as Prometheus
// metrics. A Collector is a search.Observer: pass it with
// search.WithObserver and every call is counted.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvsearch/aostar"
	"github.com/katalvlaran/lvsearch/search"
)

const namespace = "lvsearch"

// Label values used when a call fails before producing a result.
const (
	unknownStrategy = "unknown"
	reasonError     = "error"
	reasonNone      = "none"
)

// Collector holds the lvsearch metric vectors. Safe for concurrent use.
type Collector struct {
	// SearchesTotal counts calls by strategy, status and reason.
	// Failed calls carry reason "error", succeeded ones "none".
	SearchesTotal *prometheus.CounterVec

	// NodesExpanded observes NodesExpanded per call by strategy.
	NodesExpanded *prometheus.HistogramVec

	// SearchDurationSeconds observes Elapsed per call by strategy.
	SearchDurationSeconds *prometheus.HistogramVec

	// AndOrSolvesTotal counts aostar solves by outcome: solved, cycle or error.
	AndOrSolvesTotal *prometheus.CounterVec

	// AndOrNodesExpanded observes Solution.Expanded of successful solves.
	AndOrNodesExpanded prometheus.Histogram
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// leaves them unregistered, which suits tests that read values directly.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	expandBuckets := prometheus.ExponentialBuckets(1, 4, 10)

	return &Collector{
		SearchesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Search calls by strategy, final status and exhaustion reason",
			},
			[]string{"strategy", "status", "reason"},
		),
		NodesExpanded: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "nodes_expanded",
				Help:      "States expanded per search call",
				Buckets:   expandBuckets,
			},
			[]string{"strategy"},
		),
		SearchDurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall time per search call in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"strategy"},
		),
		AndOrSolvesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "andor",
				Name:      "solves_total",
				Help:      "AND-OR solve calls by outcome",
			},
			[]string{"outcome"},
		),
		AndOrNodesExpanded: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "andor",
				Name:      "nodes_expanded",
				Help:      "Nodes expanded per successful AND-OR solve",
				Buckets:   expandBuckets,
			},
		),
	}
}

// ObserveSearch implements search.Observer.
func (c *Collector) ObserveSearch(s search.Summary) {
	strategy := unknownStrategy
	if s.Strategy.Valid() {
		strategy = s.Strategy.String()
	}
	reason := string(s.Reason)
	switch {
	case s.Err != nil:
		reason = reasonError
	case reason == "":
		reason = reasonNone
	}

	c.SearchesTotal.WithLabelValues(strategy, s.Status.String(), reason).Inc()
	if s.Err != nil {
		return
	}
	c.NodesExpanded.WithLabelValues(strategy).Observe(float64(s.NodesExpanded))
	c.SearchDurationSeconds.WithLabelValues(strategy).Observe(s.Elapsed.Seconds())
}

// ObserveSolve records the outcome of one aostar.Solve call.
func (c *Collector) ObserveSolve(sol *aostar.Solution, err error) {
	switch {
	case errors.Is(err, aostar.ErrCycleDetected):
		c.AndOrSolvesTotal.WithLabelValues("cycle").Inc()
	case err != nil:
		c.AndOrSolvesTotal.WithLabelValues(reasonError).Inc()
	default:
		c.AndOrSolvesTotal.WithLabelValues("solved").Inc()
		c.AndOrNodesExpanded.Observe(float64(sol.Expanded))
	}
}
