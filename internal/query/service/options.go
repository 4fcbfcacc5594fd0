package service

import (
	"log/slog"

	"verisbt/internal/fieldhash"
	"verisbt/internal/query/builder"
	querymetrics "verisbt/internal/query/metrics"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger    *slog.Logger
	publisher EventPublisher
	metrics   *querymetrics.Metrics
	tx        StoreTx
	catalog   map[string]builder.Builder
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

func WithMetrics(m *querymetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithTx replaces the in-memory transaction with a database-backed one.
func WithTx(tx StoreTx) Option {
	return func(c *serviceConfig) {
		c.tx = tx
	}
}

// WithBuilders sets the builders that entries may reference by name.
func WithBuilders(builders ...builder.Builder) Option {
	return func(c *serviceConfig) {
		c.catalog = make(map[string]builder.Builder, len(builders))
		for _, b := range builders {
			c.catalog[b.Name()] = b
		}
	}
}

func defaultCatalog() map[string]builder.Builder {
	hasher := fieldhash.NewPoseidon()
	return map[string]builder.Builder{
		builder.AtomicQueryBuilderName:   builder.NewAtomicQueryBuilder(hasher),
		builder.AtomicQueryV3BuilderName: builder.NewAtomicQueryV3Builder(hasher),
	}
}
