// Package metrics exports solver activity as Prometheus collectors.
package metrics

import (
	"context"

	"github.com/aretw0/waterjug/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors fed by the solver lifecycle hooks.
type Metrics struct {
	Solves    *prometheus.CounterVec
	Duration  prometheus.Histogram
	Steps     prometheus.Histogram
	Explored  prometheus.Histogram
	CacheHits prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "waterjug_solves_total",
				Help: "Total number of solve requests by outcome",
			},
			[]string{"outcome"},
		),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waterjug_solve_duration_seconds",
			Help:    "Duration of solve requests",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		Steps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waterjug_solution_steps",
			Help:    "Number of steps in returned solutions",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Explored: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "waterjug_explored_states",
			Help:    "Number of states expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waterjug_cache_hits_total",
			Help: "Total number of solutions served from the cache",
		}),
	}
	reg.MustRegister(m.Solves, m.Duration, m.Steps, m.Explored, m.CacheHits)
	return m
}

// Hooks returns lifecycle hooks that record every finished solve.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveFinish: func(ctx context.Context, e *domain.SolveEvent) {
			m.Solves.WithLabelValues(e.Outcome()).Inc()
			m.Duration.Observe(e.Duration.Seconds())
			if e.Err != nil {
				return
			}
			m.Steps.Observe(float64(e.Steps))
			if e.CacheHit {
				m.CacheHits.Inc()
				return
			}
			m.Explored.Observe(float64(e.Explored))
		},
	}
}
