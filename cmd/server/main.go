package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"verisbt/internal/access"
	"verisbt/internal/fieldhash"
	jwttoken "verisbt/internal/jwt_token"
	"verisbt/internal/platform/config"
	"verisbt/internal/platform/health"
	"verisbt/internal/platform/logger"
	"verisbt/internal/platform/metrics"
	"verisbt/internal/platform/tracer"
	protocolhandler "verisbt/internal/protocol/handler"
	protocolmetrics "verisbt/internal/protocol/metrics"
	protocolservice "verisbt/internal/protocol/service"
	"verisbt/internal/query/builder"
	queryhandler "verisbt/internal/query/handler"
	querymetrics "verisbt/internal/query/metrics"
	queryservice "verisbt/internal/query/service"
	"verisbt/internal/seeder"
	"verisbt/internal/token"
	httptransport "verisbt/internal/transport/http"
	"verisbt/pkg/platform/middleware/request"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in internal services packages.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "verisbt:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	log.Info("initializing verisbt",
		"addr", cfg.Addr,
		"metrics_addr", cfg.MetricsAddr,
		"environment", cfg.Environment,
		"postgres", cfg.UsePostgres(),
		"kafka", cfg.UseKafka(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()
	platformMetrics := metrics.NewWithRegisterer(reg)
	platformMetrics.SetBuildInfo(health.Version, cfg.Environment)
	probes := health.New(cfg.Environment)

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()
	if st.pool != nil {
		probes.RegisterCheck(health.NewCheck("postgres", st.pool.Health))
		reg.MustRegister(st.pool.Collector("verisbt"))
	}

	pub, err := openPublisher(cfg, platformMetrics, log)
	if err != nil {
		return err
	}
	defer pub.Close()
	if pub.check != nil {
		probes.RegisterCheck(pub.check)
	}

	boot, err := loadBootstrap(cfg)
	if err != nil {
		return err
	}
	validators, err := seeder.BuildValidators(boot, cfg.IsDev())
	if err != nil {
		return err
	}

	// One hasher backs both token keys and query rebuilds.
	hasher := fieldhash.NewPoseidon()
	queryOpts := []queryservice.Option{
		queryservice.WithBuilders(builder.NewAtomicQueryBuilder(hasher), builder.NewAtomicQueryV3Builder(hasher)),
		queryservice.WithLogger(log),
		queryservice.WithEventPublisher(pub.publisher),
		queryservice.WithMetrics(querymetrics.NewWithRegisterer(reg)),
	}
	protocolOpts := []protocolservice.Option{
		protocolservice.WithHasher(hasher),
		protocolservice.WithLogger(log),
		protocolservice.WithEventPublisher(pub.publisher),
		protocolservice.WithMetrics(protocolmetrics.NewWithRegisterer(reg)),
		protocolservice.WithTracer(tracer.NewOTel()),
	}
	if st.tx != nil {
		queryOpts = append(queryOpts, queryservice.WithTx(st.tx))
		protocolOpts = append(protocolOpts, protocolservice.WithTx(st.tx))
	}

	queries, err := queryservice.New(st.queries, st.builders, validators,
		access.NewOwnable(queryservice.Component, st.owners), queryOpts...)
	if err != nil {
		return err
	}
	factory := token.NewFactory(factoryAddress(cfg.Manager), st.tokens, access.NewOwnable(token.FactoryComponent, st.owners))
	ledger := token.NewLedger(st.tokens)
	protocol, err := protocolservice.New(st.protocol, queries, factory, ledger,
		access.NewOwnable(protocolservice.Component, st.owners), cfg.Manager, protocolOpts...)
	if err != nil {
		return err
	}

	err = seeder.New(queries, factory, protocol, log).SeedAll(ctx, boot, seeder.Params{
		Owner:   cfg.Owner,
		Manager: cfg.Manager,
	})
	if err != nil {
		return err
	}

	jwt := jwttoken.NewJWTService(cfg.JWTSigningKey, jwttoken.DefaultIssuer, jwttoken.DefaultAudience, cfg.TokenTTL)
	jwt.SetEnv(cfg.Environment)

	routerCfg := httptransport.RouterConfig{
		Logger:  log,
		Auth:    jwttoken.NewJWTServiceAdapter(jwt),
		Latency: request.NewMetricsWithRegisterer(reg),
		Health:  probes,
	}
	if cfg.MetricsAddr == "" {
		routerCfg.Metrics = metrics.Handler(reg)
	}
	router := httptransport.NewRouter(routerCfg,
		queryhandler.New(queries, log),
		protocolhandler.New(protocol, ledger, log),
	)

	servers := []*http.Server{newServer(cfg.Addr, router)}
	if cfg.MetricsAddr != "" {
		servers = append(servers, newServer(cfg.MetricsAddr, httptransport.NewMetricsRouter(metrics.Handler(reg))))
	}
	return serve(ctx, log, cfg.ShutdownTimeout, servers...)
}

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// serve runs every server until ctx is done or one fails, then shuts them
// all down gracefully.
func serve(ctx context.Context, log *slog.Logger, timeout time.Duration, servers ...*http.Server) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		g.Go(func() error {
			log.Info("starting http server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve %s: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
