package request

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds per-route HTTP instruments. Routes are chi patterns.
type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
	Responses       *prometheus.CounterVec
}

func NewMetricsWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EndpointLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "verisbt_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		Responses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "verisbt_http_responses_total",
			Help: "HTTP responses by route and status class",
		}, []string{"method", "endpoint", "class"}),
	}
}

func (m *Metrics) observe(method, endpoint string, status int, seconds float64) {
	m.EndpointLatency.WithLabelValues(method, endpoint).Observe(seconds)
	m.Responses.WithLabelValues(method, endpoint, statusClass(status)).Inc()
}

func statusClass(status int) string {
	if status < 100 || status > 599 {
		return "unknown"
	}
	return strconv.Itoa(status/100) + "xx"
}
