// Package metrics holds process-wide Prometheus metrics and the /metrics
// handler. Domain metrics live with their services.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	BuildInfo       *prometheus.GaugeVec
	EventsPublished *prometheus.CounterVec
	EventsFailed    *prometheus.CounterVec
	EventsDropped   *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BuildInfo: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vsbt_build_info",
			Help: "Always 1; labels carry the running version and environment",
		}, []string{"version", "environment"}),
		EventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vsbt_events_published_total",
			Help: "Domain events delivered to the sink, by type",
		}, []string{"type"}),
		EventsFailed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vsbt_events_failed_total",
			Help: "Domain events the sink rejected, by type",
		}, []string{"type"}),
		EventsDropped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vsbt_events_dropped_total",
			Help: "Domain events dropped because the publish buffer was full",
		}, []string{"type"}),
	}
}

func (m *Metrics) SetBuildInfo(version, environment string) {
	m.BuildInfo.WithLabelValues(version, environment).Set(1)
}

func (m *Metrics) EventPublished(eventType string) {
	m.EventsPublished.WithLabelValues(eventType).Inc()
}

func (m *Metrics) EventFailed(eventType string) {
	m.EventsFailed.WithLabelValues(eventType).Inc()
}

func (m *Metrics) EventDropped(eventType string) {
	m.EventsDropped.WithLabelValues(eventType).Inc()
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
