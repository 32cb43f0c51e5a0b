package observability

import (
	"net/http"

	"github.com/aretw0/bioreasoner/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine collectors.
type Metrics struct {
	RuleFirings    *prometheus.CounterVec
	Runs           *prometheus.CounterVec
	Iterations     prometheus.Histogram
	Contradictions *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg gets a private registry, which keeps tests independent.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		RuleFirings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bioreasoner_rule_firings_total",
				Help: "Total number of rule firings that added facts",
			},
			[]string{"rule"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bioreasoner_runs_total",
				Help: "Total number of engine runs by outcome",
			},
			[]string{"status"},
		),
		Iterations: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bioreasoner_run_iterations",
				Help:    "Passes per engine run",
				Buckets: []float64{1, 2, 3, 4, 5, 8, 13, 21, 100, 1000},
			},
		),
		Contradictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bioreasoner_contradictions_total",
				Help: "Contradiction pairs found in final fact sets",
			},
			[]string{"fact_a", "fact_b"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.RuleFirings, m.Runs, m.Iterations, m.Contradictions)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRuleFired: func(e *domain.RuleFiredEvent) {
			m.RuleFirings.WithLabelValues(e.Step.Rule).Inc()
		},
		OnRunComplete: func(e *domain.RunCompleteEvent) {
			m.Runs.WithLabelValues(string(e.Status)).Inc()
			m.Iterations.Observe(float64(e.Iterations))
			for _, p := range e.Contradictions {
				m.Contradictions.WithLabelValues(string(p.A), string(p.B)).Inc()
			}
		},
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
