package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RegistryUpdates    *prometheus.CounterVec
	ProofVerifications *prometheus.CounterVec
	RebuildDuration    prometheus.Histogram
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer lets tests use an isolated registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RegistryUpdates: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vsbt_query_registry_updates_total",
			Help: "Registry entries applied, by scope and direction",
		}, []string{"scope", "op"}),
		ProofVerifications: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vsbt_query_proof_verifications_total",
			Help: "Proof verifications against stored queries, by outcome",
		}, []string{"outcome"}),
		RebuildDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vsbt_query_rebuild_duration_seconds",
			Help:    "Duration of dynamic query payload rebuilds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

func (m *Metrics) IncrementRegistryUpdate(scope string, adding bool) {
	op := "remove"
	if adding {
		op = "add"
	}
	m.RegistryUpdates.WithLabelValues(scope, op).Inc()
}

func (m *Metrics) IncrementVerification(ok bool) {
	outcome := "rejected"
	if ok {
		outcome = "verified"
	}
	m.ProofVerifications.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRebuild(start time.Time) {
	m.RebuildDuration.Observe(time.Since(start).Seconds())
}
