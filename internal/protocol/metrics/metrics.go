package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Issuers         prometheus.Gauge
	TokensDeployed  prometheus.Counter
	TokensMinted    *prometheus.CounterVec
	RejectedProofs  *prometheus.CounterVec
	MintBatchLength prometheus.Histogram
	MintDuration    prometheus.Histogram
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer lets tests use an isolated registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Issuers: f.NewGauge(prometheus.GaugeOpts{
			Name: "vsbt_protocol_issuers",
			Help: "Organizations currently recognized as protocol issuers",
		}),
		TokensDeployed: f.NewCounter(prometheus.CounterOpts{
			Name: "vsbt_protocol_tokens_deployed_total",
			Help: "Verified SBTs deployed",
		}),
		TokensMinted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vsbt_protocol_tokens_minted_total",
			Help: "Verified SBTs minted, by query name",
		}, []string{"query"}),
		RejectedProofs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vsbt_protocol_rejected_requests_total",
			Help: "Proof-gated requests rejected, by operation and reason",
		}, []string{"operation", "reason"}),
		MintBatchLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vsbt_protocol_mint_batch_length",
			Help:    "Items per mint request",
			Buckets: []float64{1, 2, 5, 10, 20, 50},
		}),
		MintDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vsbt_protocol_mint_duration_seconds",
			Help:    "Duration of mint batches including proof verification",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) SetIssuers(n int) {
	m.Issuers.Set(float64(n))
}

func (m *Metrics) IncrementDeployed() {
	m.TokensDeployed.Inc()
}

func (m *Metrics) IncrementMinted(query string) {
	m.TokensMinted.WithLabelValues(query).Inc()
}

func (m *Metrics) IncrementRejected(operation, reason string) {
	if reason == "" {
		reason = "other"
	}
	m.RejectedProofs.WithLabelValues(operation, reason).Inc()
}

func (m *Metrics) ObserveMint(start time.Time, items int) {
	m.MintBatchLength.Observe(float64(items))
	m.MintDuration.Observe(time.Since(start).Seconds())
}
