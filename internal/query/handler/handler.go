// Package handler exposes the queries manager over HTTP.
package handler

import (
	"context"
	"log/slog"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"verisbt/internal/query/models"
	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
	"verisbt/pkg/platform/httputil"
	"verisbt/pkg/requestcontext"
)

type Service interface {
	UpdateQueryBuilders(ctx context.Context, caller common.Address, entries []models.BuilderEntry) error
	UpdateDefaultQueries(ctx context.Context, caller common.Address, entries []models.QueryEntry) error
	UpdateOrganizationQueries(ctx context.Context, proof validator.ZKProof, entries []models.QueryEntry) (id.OrganizationID, error)
	GetDynamicQueryData(ctx context.Context, circuitID string, newValues []*big.Int, payload []byte) ([]byte, error)
	GetDefaultQuery(ctx context.Context, name string) (*models.Query, error)
	GetQuery(ctx context.Context, org id.OrganizationID, name string) (*models.Query, error)
	ListDefaultQueryNames(ctx context.Context) ([]string, error)
	GetQueryBuilder(ctx context.Context, circuitID string) (string, error)
	ListQueryBuilders(ctx context.Context) ([]models.BuilderBinding, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterAdmin mounts owner-only routes; r must authenticate the caller.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Put("/admin/query-builders", h.HandleUpdateQueryBuilders)
	r.Put("/admin/default-queries", h.HandleUpdateDefaultQueries)
}

func (h *Handler) Register(r chi.Router) {
	r.Put("/organizations/queries", h.HandleUpdateOrganizationQueries)
	r.Post("/queries/dynamic", h.HandleDynamicQuery)
	r.Get("/queries/default", h.HandleListDefaultQueries)
	r.Get("/queries/default/{name}", h.HandleGetDefaultQuery)
	r.Get("/organizations/{orgID}/queries/{name}", h.HandleGetQuery)
	r.Get("/query-builders", h.HandleListQueryBuilders)
	r.Get("/query-builders/{circuitID}", h.HandleGetQueryBuilder)
}

// HandleUpdateQueryBuilders implements PUT /admin/query-builders.
func (h *Handler) HandleUpdateQueryBuilders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, err := httputil.RequireCaller(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateQueryBuildersRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.service.UpdateQueryBuilders(ctx, caller, req.ToEntries()); err != nil {
		h.logger.ErrorContext(ctx, "failed to update query builders",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateDefaultQueries implements PUT /admin/default-queries.
func (h *Handler) HandleUpdateDefaultQueries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, err := httputil.RequireCaller(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateDefaultQueriesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.service.UpdateDefaultQueries(ctx, caller, req.ToEntries()); err != nil {
		h.logger.ErrorContext(ctx, "failed to update default queries",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateOrganizationQueries implements PUT /organizations/queries.
// The proof authenticates the organization; no bearer token is needed.
func (h *Handler) HandleUpdateOrganizationQueries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.UpdateOrganizationQueriesRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	proof, err := req.Proof.ToZKProof()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	org, err := h.service.UpdateOrganizationQueries(ctx, proof, req.ToEntries())
	if err != nil {
		h.logger.WarnContext(ctx, "failed to update organization queries",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.OrganizationQueriesResponse{OrganizationID: org.String()})
}

// HandleDynamicQuery implements POST /queries/dynamic.
func (h *Handler) HandleDynamicQuery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.DynamicQueryRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	out, err := h.service.GetDynamicQueryData(ctx, req.CircuitID, req.BigValues(), req.Payload)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to build dynamic query",
			"error", err,
			"circuit_id", req.CircuitID,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.DynamicQueryResponse{Payload: out})
}

// HandleListDefaultQueries implements GET /queries/default.
func (h *Handler) HandleListDefaultQueries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	names, err := h.service.ListDefaultQueryNames(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list default queries",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.QueryNamesResponse{Names: names})
}

// HandleGetDefaultQuery implements GET /queries/default/{name}.
func (h *Handler) HandleGetDefaultQuery(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	q, err := h.service.GetDefaultQuery(r.Context(), name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewQueryResponse(name, q))
}

// HandleGetQuery implements GET /organizations/{orgID}/queries/{name} with
// organization-over-global resolution.
func (h *Handler) HandleGetQuery(w http.ResponseWriter, r *http.Request) {
	org, err := id.ParseOrganizationID(chi.URLParam(r, "orgID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	name := chi.URLParam(r, "name")
	q, err := h.service.GetQuery(r.Context(), org, name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewQueryResponse(name, q))
}

// HandleListQueryBuilders implements GET /query-builders.
func (h *Handler) HandleListQueryBuilders(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListQueryBuilders(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.BuildersResponse{Builders: list})
}

// HandleGetQueryBuilder implements GET /query-builders/{circuitID}.
func (h *Handler) HandleGetQueryBuilder(w http.ResponseWriter, r *http.Request) {
	circuitID := chi.URLParam(r, "circuitID")
	name, err := h.service.GetQueryBuilder(r.Context(), circuitID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if name == "" {
		httputil.WriteError(w, &models.UnsupportedCircuitError{CircuitID: circuitID})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.BuilderBinding{CircuitID: circuitID, Builder: name})
}
