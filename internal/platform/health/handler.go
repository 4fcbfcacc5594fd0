// Package health serves liveness, readiness and status probes.
package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"verisbt/pkg/platform/httputil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Checker is a dependency the readiness probe pings, such as the database
// pool or the Kafka producer.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckFunc adapts a function to Checker under a fixed name.
type CheckFunc struct {
	name string
	fn   func(ctx context.Context) error
}

func NewCheck(name string, fn func(ctx context.Context) error) CheckFunc {
	return CheckFunc{name: name, fn: fn}
}

func (c CheckFunc) Name() string                    { return c.name }
func (c CheckFunc) Check(ctx context.Context) error { return c.fn(ctx) }

type Handler struct {
	startTime    time.Time
	environment  string
	checkTimeout time.Duration

	mu     sync.RWMutex
	checks []Checker
}

func New(environment string) *Handler {
	return &Handler{
		startTime:    time.Now(),
		environment:  environment,
		checkTimeout: 2 * time.Second,
	}
}

// RegisterCheck adds a dependency to the readiness probe.
func (h *Handler) RegisterCheck(c Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks = append(h.checks, c)
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

type LivenessResponse struct {
	Status string `json:"status"`
}

// HandleLiveness answers 200 whenever the process is serving.
func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LivenessResponse{Status: "alive"})
}

type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleReadiness runs every check concurrently under a shared timeout and
// answers 503 if any fails.
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	checks := append([]Checker(nil), h.checks...)
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(r.Context(), h.checkTimeout)
	defer cancel()

	results := make([]error, len(checks))
	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			results[i] = c.Check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	response := ReadinessResponse{Status: "ready", Checks: make(map[string]string, len(checks))}
	healthy := true
	for i, c := range checks {
		if err := results[i]; err != nil {
			response.Checks[c.Name()] = "down: " + err.Error()
			healthy = false
			continue
		}
		response.Checks[c.Name()] = "up"
	}

	if !healthy {
		response.Status = "not_ready"
		httputil.WriteJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, response)
}

type StatusResponse struct {
	Status        string   `json:"status"`
	Version       string   `json:"version"`
	Environment   string   `json:"environment"`
	UptimeSeconds int64    `json:"uptime_seconds"`
	Timestamp     string   `json:"timestamp"`
	Dependencies  []string `json:"dependencies,omitempty"`
}

func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	deps := make([]string, 0, len(h.checks))
	for _, c := range h.checks {
		deps = append(deps, c.Name())
	}
	h.mu.RUnlock()
	sort.Strings(deps)

	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		Status:        "healthy",
		Version:       Version,
		Environment:   h.environment,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Dependencies:  deps,
	})
}
