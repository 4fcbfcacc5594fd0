package service

import (
	"log/slog"

	"verisbt/internal/fieldhash"
	"verisbt/internal/platform/tracer"
	protocolmetrics "verisbt/internal/protocol/metrics"
)

type serviceConfig struct {
	logger    *slog.Logger
	publisher EventPublisher
	metrics   *protocolmetrics.Metrics
	tx        StoreTx
	hasher    fieldhash.Hasher
	tracer    tracer.Tracer
}

type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithEventPublisher(publisher EventPublisher) Option {
	return func(c *serviceConfig) {
		c.publisher = publisher
	}
}

func WithMetrics(m *protocolmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithTx replaces the in-memory transaction with a database-backed one.
// Pass the same StoreTx as the queries manager so both join one unit of work.
func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}

// WithHasher overrides the Poseidon hasher used for token keys.
func WithHasher(h fieldhash.Hasher) Option {
	return func(c *serviceConfig) {
		c.hasher = h
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}
