package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"verisbt/internal/access"
	"verisbt/internal/events"
	"verisbt/internal/platform/config"
	"verisbt/internal/platform/database"
	"verisbt/internal/platform/health"
	"verisbt/internal/platform/kafka/producer"
	"verisbt/internal/platform/metrics"
	protocolservice "verisbt/internal/protocol/service"
	protocolstore "verisbt/internal/protocol/store"
	queryservice "verisbt/internal/query/service"
	querystore "verisbt/internal/query/store"
	"verisbt/internal/token"
	"verisbt/migrations"
	txcontext "verisbt/pkg/platform/tx"
)

// stores groups the backends of every component. tx is nil in memory mode,
// where each service serializes its own operations.
type stores struct {
	pool     *database.Pool
	tx       *txcontext.Postgres
	owners   access.Store
	queries  queryservice.QueryStore
	builders queryservice.BuilderStore
	protocol protocolservice.Store
	tokens   token.Store
}

func openStores(ctx context.Context, cfg config.Server, log *slog.Logger) (*stores, error) {
	if !cfg.UsePostgres() {
		log.Info("using in-memory stores")
		q := querystore.NewInMemory()
		return &stores{
			owners:   access.NewInMemoryStore(),
			queries:  q,
			builders: q,
			protocol: protocolstore.NewInMemory(),
			tokens:   token.NewInMemoryStore(),
		}, nil
	}

	pool, err := database.Open(ctx, database.DefaultConfig(cfg.DatabaseURL))
	if err != nil {
		return nil, err
	}
	applied, err := pool.Migrate(ctx, migrations.FS)
	if err != nil {
		pool.Close() //nolint:errcheck // best-effort cleanup on init failure
		return nil, err
	}
	log.Info("database ready", "migrations_applied", applied)

	db := pool.DB()
	q := querystore.NewPostgres(db)
	return &stores{
		pool:     pool,
		tx:       txcontext.NewPostgres(db),
		owners:   access.NewPostgresStore(db),
		queries:  q,
		builders: q,
		protocol: protocolstore.NewPostgres(db),
		tokens:   token.NewPostgresStore(db),
	}, nil
}

func (s *stores) Close() {
	if s.pool != nil {
		_ = s.pool.Close()
	}
}

type eventStack struct {
	publisher *events.Publisher
	producer  *producer.Producer
	check     health.Checker
}

// openPublisher delivers events to Kafka when brokers are configured and to
// the log otherwise. Kafka delivery is asynchronous so a slow broker never
// holds a committed request.
func openPublisher(cfg config.Server, m *metrics.Metrics, log *slog.Logger) (*eventStack, error) {
	if !cfg.UseKafka() {
		return &eventStack{
			publisher: events.NewPublisher(events.NewLogSink(log), events.WithPublisherMetrics(m)),
		}, nil
	}
	p, err := producer.New(producer.DefaultConfig(strings.Join(cfg.KafkaBrokers, ",")), log)
	if err != nil {
		return nil, err
	}
	return &eventStack{
		publisher: events.NewPublisher(events.NewKafkaSink(p, cfg.KafkaEventsTopic),
			events.WithAsyncBuffer(1024),
			events.WithPublisherLogger(log),
			events.WithPublisherMetrics(m),
		),
		producer: p,
		check:    p,
	}, nil
}

// Close drains queued events before closing the producer.
func (p *eventStack) Close() {
	p.publisher.Close()
	if p.producer != nil {
		_ = p.producer.Close()
	}
}

// factoryAddress is the identity of the token factory: the address a
// contract created by the manager at nonce zero would get.
func factoryAddress(manager common.Address) common.Address {
	return crypto.CreateAddress(manager, 0)
}

func loadBootstrap(cfg config.Server) (*config.Bootstrap, error) {
	if cfg.BootstrapFile != "" {
		return config.LoadBootstrap(cfg.BootstrapFile)
	}
	if !cfg.IsDev() {
		return nil, errMissingBootstrap
	}
	return devBootstrap(), nil
}
