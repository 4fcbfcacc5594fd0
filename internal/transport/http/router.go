package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"verisbt/pkg/platform/middleware/auth"
	"verisbt/pkg/platform/middleware/request"
)

// Defaults applied when RouterConfig leaves a limit unset.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodyBytes   = 1 << 20
)

// Routes is a handler that mounts routes. Admin routes are mounted behind
// caller authentication; the service checks the caller is the owner.
type Routes interface {
	Register(r chi.Router)
	RegisterAdmin(r chi.Router)
}

// HolderRoutes act on behalf of the authenticated caller.
type HolderRoutes interface {
	RegisterHolder(r chi.Router)
}

// Probes mounts the health endpoints outside authentication and timeouts.
type Probes interface {
	Register(r chi.Router)
}

type RouterConfig struct {
	Logger         *slog.Logger
	Auth           auth.JWTValidator
	Latency        *request.Metrics
	Health         Probes
	Metrics        http.Handler
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// NewRouter wires the public API with the shared middleware stack.
func NewRouter(cfg RouterConfig, modules ...Routes) http.Handler {
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()
	r.Use(request.Recovery(cfg.Logger))
	r.Use(request.RequestID)
	r.Use(request.Clock)
	r.Use(request.Logger(cfg.Logger))
	r.Use(request.Latency(cfg.Latency))

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Group(func(api chi.Router) {
		api.Use(request.Timeout(cfg.RequestTimeout))
		api.Use(request.BodyLimit(cfg.MaxBodyBytes))
		api.Use(request.ContentTypeJSON)

		for _, m := range modules {
			m.Register(api)
		}

		api.Group(func(authed chi.Router) {
			authed.Use(auth.RequireCaller(cfg.Auth, cfg.Logger))
			for _, m := range modules {
				m.RegisterAdmin(authed)
				if h, ok := m.(HolderRoutes); ok {
					h.RegisterHolder(authed)
				}
			}
		})
	})
	return r
}

// NewMetricsRouter serves only /metrics, for a separate listener.
func NewMetricsRouter(metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", metrics)
	return r
}
