// Package handler exposes the protocol manager and the deployed tokens over
// HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"verisbt/internal/protocol/models"
	"verisbt/internal/token"
	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
	"verisbt/pkg/platform/httputil"
	"verisbt/pkg/requestcontext"
)

type Service interface {
	UpdateProtocolIssuers(ctx context.Context, caller common.Address, ids []id.OrganizationID, isAdding bool) error
	GetProtocolIssuers(ctx context.Context) ([]id.OrganizationID, error)
	IsProtocolIssuer(ctx context.Context, org id.OrganizationID) (bool, error)
	DeployVerifiedSBT(ctx context.Context, req models.ProofRequest, name, symbol, baseURI string) (*models.Binding, error)
	ChangeBaseTokenURI(ctx context.Context, req models.ProofRequest, newBaseURI string) error
	MintVerifiedSBT(ctx context.Context, caller common.Address, items []models.MintItem) ([]models.Minted, error)
	GetTokenQueryKey(ctx context.Context, org id.OrganizationID, group id.GroupID, name string) (id.TokenKey, error)
	GetOrganizationBinding(ctx context.Context, org id.OrganizationID, group id.GroupID, name string) (*models.Binding, error)
}

// Tokens is the read side of the token ledger.
type Tokens interface {
	Metadata(ctx context.Context, addr common.Address) (*token.Metadata, error)
	Version(ctx context.Context, addr common.Address) (string, error)
	OwnerOf(ctx context.Context, addr common.Address, tokenID uint64) (common.Address, error)
	TokenURI(ctx context.Context, addr common.Address, tokenID uint64) (string, error)
}

type Handler struct {
	service Service
	tokens  Tokens
	logger  *slog.Logger
}

func New(service Service, tokens Tokens, logger *slog.Logger) *Handler {
	return &Handler{service: service, tokens: tokens, logger: logger}
}

// RegisterAdmin mounts owner-only routes; r must authenticate the caller.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Put("/admin/issuers", h.HandleUpdateIssuers)
}

// RegisterHolder mounts routes acting on behalf of the authenticated holder.
func (h *Handler) RegisterHolder(r chi.Router) {
	r.Post("/tokens/mint", h.HandleMint)
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/issuers", h.HandleListIssuers)
	r.Get("/issuers/{orgID}", h.HandleGetIssuer)
	r.Post("/tokens", h.HandleDeploy)
	r.Put("/tokens/base-uri", h.HandleChangeBaseURI)
	r.Get("/tokens/{orgID}/{groupID}/{name}", h.HandleGetToken)
	r.Get("/sbts/{address}", h.HandleGetSBT)
	r.Get("/sbts/{address}/{tokenID}", h.HandleGetSBTOwner)
}

// HandleUpdateIssuers implements PUT /admin/issuers.
func (h *Handler) HandleUpdateIssuers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, err := httputil.RequireCaller(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.UpdateProtocolIssuersRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if err := h.service.UpdateProtocolIssuers(ctx, caller, req.IDs(), req.IsAdding); err != nil {
		h.logger.ErrorContext(ctx, "failed to update protocol issuers",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListIssuers implements GET /issuers.
func (h *Handler) HandleListIssuers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	list, err := h.service.GetProtocolIssuers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list protocol issuers",
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.IssuersResponse{
		Issuers: lo.Map(list, func(org id.OrganizationID, _ int) string { return org.String() }),
	})
}

// HandleGetIssuer implements GET /issuers/{orgID}.
func (h *Handler) HandleGetIssuer(w http.ResponseWriter, r *http.Request) {
	org, err := id.ParseOrganizationID(chi.URLParam(r, "orgID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ok, err := h.service.IsProtocolIssuer(r.Context(), org)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.IssuerResponse{OrganizationID: org.String(), IsIssuer: ok})
}

// HandleDeploy implements POST /tokens. The proof authenticates the
// organization.
func (h *Handler) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.DeployVerifiedSBTRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	proofReq, err := req.Request.ToProofRequest()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	b, err := h.service.DeployVerifiedSBT(ctx, proofReq, req.Name, req.Symbol, req.BaseURI)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to deploy verified sbt",
			"error", err,
			"organization_id", proofReq.OrganizationID.String(),
			"query_name", proofReq.QueryName,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewTokenResponse(b))
}

// HandleChangeBaseURI implements PUT /tokens/base-uri.
func (h *Handler) HandleChangeBaseURI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.ChangeBaseTokenURIRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	proofReq, err := req.Request.ToProofRequest()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.ChangeBaseTokenURI(ctx, proofReq, req.BaseURI); err != nil {
		h.logger.WarnContext(ctx, "failed to change base token uri",
			"error", err,
			"organization_id", proofReq.OrganizationID.String(),
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleMint implements POST /tokens/mint. Tokens go to the authenticated
// caller.
func (h *Handler) HandleMint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	caller, err := httputil.RequireCaller(ctx, h.logger, requestID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.MintVerifiedSBTRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	items, err := req.ToItems()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	minted, err := h.service.MintVerifiedSBT(ctx, caller, items)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to mint verified sbt",
			"error", err,
			"holder", caller.Hex(),
			"items", len(items),
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewMintResponse(minted))
}

// HandleGetToken implements GET /tokens/{orgID}/{groupID}/{name}. An
// undeployed key answers with the zero address.
func (h *Handler) HandleGetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	org, err := id.ParseOrganizationID(chi.URLParam(r, "orgID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	group, err := id.ParseGroupID(chi.URLParam(r, "groupID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	name := chi.URLParam(r, "name")

	b, err := h.service.GetOrganizationBinding(ctx, org, group, name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if b != nil {
		httputil.WriteJSON(w, http.StatusOK, models.NewTokenResponse(b))
		return
	}
	key, err := h.service.GetTokenQueryKey(ctx, org, group, name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.TokenResponse{Token: common.Address{}.Hex(), TokenKey: key.String()})
}

// HandleGetSBT implements GET /sbts/{address}.
func (h *Handler) HandleGetSBT(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, err := id.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	meta, err := h.tokens.Metadata(ctx, addr)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	version, err := h.tokens.Version(ctx, addr)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.SBTResponse{
		Address:     meta.Address.Hex(),
		Name:        meta.Name,
		Symbol:      meta.Symbol,
		BaseURI:     meta.BaseURI,
		Version:     version,
		NextTokenID: meta.NextTokenID,
	})
}

// HandleGetSBTOwner implements GET /sbts/{address}/{tokenID}.
func (h *Handler) HandleGetSBTOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	addr, err := id.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	tokenID, err := strconv.ParseUint(chi.URLParam(r, "tokenID"), 10, 64)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "token id must be an unsigned integer"))
		return
	}
	owner, err := h.tokens.OwnerOf(ctx, addr, tokenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	uri, err := h.tokens.TokenURI(ctx, addr, tokenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.SBTOwnerResponse{
		Token:    addr.Hex(),
		TokenID:  tokenID,
		Owner:    owner.Hex(),
		TokenURI: uri,
	})
}
