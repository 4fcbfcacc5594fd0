// Package service implements the protocol manager: the issuer set, the
// token key bindings and the proof-gated token lifecycle.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"verisbt/internal/events"
	"verisbt/internal/fieldhash"
	"verisbt/internal/platform/tracer"
	protocolmetrics "verisbt/internal/protocol/metrics"
	"verisbt/internal/protocol/models"
	querymodels "verisbt/internal/query/models"
	"verisbt/internal/sentinel"
	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
	"verisbt/pkg/requestcontext"
)

// Component is the owner-registry key of the protocol manager.
const Component = "ProtocolManager"

type Store interface {
	AddIssuer(ctx context.Context, org id.OrganizationID) (bool, error)
	RemoveIssuer(ctx context.Context, org id.OrganizationID) (bool, error)
	HasIssuer(ctx context.Context, org id.OrganizationID) (bool, error)
	ListIssuers(ctx context.Context) ([]id.OrganizationID, error)
	CreateBinding(ctx context.Context, b models.Binding) error
	FindBinding(ctx context.Context, key id.TokenKey) (*models.Binding, error)
}

// Queries is the subset of the queries manager the protocol manager reads.
type Queries interface {
	GetQuery(ctx context.Context, org id.OrganizationID, name string) (*querymodels.Query, error)
	IsGroupLevelQuery(ctx context.Context, org id.OrganizationID, name string) (bool, error)
	GetQueryCircuitID(q *querymodels.Query) (string, error)
	GetDynamicQueryData(ctx context.Context, circuitID string, newValues []*big.Int, payload []byte) ([]byte, error)
	VerifyProof(ctx context.Context, q *querymodels.Query, proof validator.ZKProof, payload []byte) (id.OrganizationID, error)
}

type TokenFactory interface {
	DeployVerifiedSBT(ctx context.Context, caller common.Address, name, symbol, baseURI string) (common.Address, error)
}

type Tokens interface {
	SetBaseURI(ctx context.Context, token, caller common.Address, uri string) error
	Mint(ctx context.Context, token, caller, holder common.Address) (uint64, error)
	BalanceOf(ctx context.Context, token, holder common.Address) (uint64, error)
}

type Owner interface {
	Initialize(ctx context.Context, owner common.Address) error
	Owner(ctx context.Context) (common.Address, error)
	RequireOwner(ctx context.Context, caller common.Address) error
	TransferOwnership(ctx context.Context, caller, newOwner common.Address) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service is the protocol manager. Token factory and token calls are made
// with address as the caller, so tokens accept them as coming from the
// manager.
type Service struct {
	store   Store
	queries Queries
	factory TokenFactory
	tokens  Tokens
	owner   Owner
	address common.Address
	hasher  fieldhash.Hasher
	tx      StoreTx
	emitter *auditEmitter
	metrics *protocolmetrics.Metrics
	tracer  tracer.Tracer
}

func New(store Store, queries Queries, factory TokenFactory, tokens Tokens, owner Owner, address common.Address, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("protocol store is required")
	}
	if queries == nil {
		return nil, fmt.Errorf("queries manager is required")
	}
	if factory == nil {
		return nil, fmt.Errorf("token factory is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token ledger is required")
	}
	if owner == nil {
		return nil, fmt.Errorf("owner registry is required")
	}
	if address == (common.Address{}) {
		return nil, fmt.Errorf("protocol manager address is required")
	}

	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	tx := cfg.tx
	if tx == nil {
		tx = newInMemoryStoreTx()
	}
	tr := cfg.tracer
	if tr == nil {
		tr = tracer.NewNoop()
	}
	hasher := cfg.hasher
	if hasher == nil {
		hasher = fieldhash.NewPoseidon()
	}
	return &Service{
		store:   store,
		queries: queries,
		factory: factory,
		tokens:  tokens,
		owner:   owner,
		address: address,
		hasher:  hasher,
		tx:      tx,
		emitter: newAuditEmitter(cfg.logger, cfg.publisher),
		metrics: cfg.metrics,
		tracer:  tr,
	}, nil
}

// Address is the identity the manager uses towards the factory and tokens.
func (s *Service) Address() common.Address { return s.address }

// Initialize sets the owner. It succeeds once.
func (s *Service) Initialize(ctx context.Context, owner common.Address) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.owner.Initialize(txCtx, owner)
	})
	if err != nil {
		return err
	}
	s.emitter.emit(ctx, events.OwnershipTransferred, "component", Component, "new_owner", owner.Hex())
	return nil
}

func (s *Service) Owner(ctx context.Context) (common.Address, error) {
	return s.owner.Owner(ctx)
}

func (s *Service) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.owner.TransferOwnership(txCtx, caller, newOwner)
	})
	if err != nil {
		return err
	}
	s.emitter.emit(ctx, events.OwnershipTransferred, "component", Component, "new_owner", newOwner.Hex())
	return nil
}

// UpdateProtocolIssuers adds or removes issuers. Adding a member or removing
// a non-member is a no-op for that id. Owner only.
func (s *Service) UpdateProtocolIssuers(ctx context.Context, caller common.Address, ids []id.OrganizationID, isAdding bool) error {
	var total int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owner.RequireOwner(txCtx, caller); err != nil {
			return err
		}
		for _, org := range ids {
			var err error
			if isAdding {
				_, err = s.store.AddIssuer(txCtx, org)
			} else {
				_, err = s.store.RemoveIssuer(txCtx, org)
			}
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update protocol issuers")
			}
		}
		list, err := s.store.ListIssuers(txCtx)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list protocol issuers")
		}
		total = len(list)
		return nil
	})
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.SetIssuers(total)
	}
	s.emitter.emit(ctx, events.ProtocolIssuersUpdated,
		"organization_ids", joinIDs(ids),
		"is_adding", isAdding,
	)
	return nil
}

// DeployVerifiedSBT deploys the token for the request's key. The
// organization must be an issuer and prove its identity against the
// resolved query. A key is deployed at most once.
func (s *Service) DeployVerifiedSBT(ctx context.Context, req models.ProofRequest, name, symbol, baseURI string) (_ *models.Binding, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanDeploy, requestAttributes(req)...)
	defer func() { span.End(err) }()

	var binding *models.Binding
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		isIssuer, err := s.store.HasIssuer(txCtx, req.OrganizationID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load protocol issuers")
		}
		if !isIssuer {
			return &models.NotProtocolIssuerError{OrganizationID: req.OrganizationID}
		}
		q, err := s.authenticate(txCtx, req)
		if err != nil {
			return err
		}
		key, err := s.tokenKey(req, q)
		if err != nil {
			return err
		}
		existing, err := s.findBinding(txCtx, key)
		if err != nil {
			return err
		}
		if existing != nil {
			return &models.TokenAlreadyDeployedError{OrganizationID: req.OrganizationID, Key: key}
		}

		addr, err := s.factory.DeployVerifiedSBT(txCtx, s.address, name, symbol, baseURI)
		if err != nil {
			return err
		}
		b := models.Binding{
			Key:            key,
			Token:          addr,
			OrganizationID: req.OrganizationID,
			GroupID:        req.GroupID,
			QueryName:      req.QueryName,
			CreatedAt:      requestcontext.Now(txCtx),
		}
		if err := s.store.CreateBinding(txCtx, b); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return &models.TokenAlreadyDeployedError{OrganizationID: req.OrganizationID, Key: key}
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to bind token")
		}
		binding = &b
		return nil
	})
	if err != nil {
		s.recordRejection("deploy", err)
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementDeployed()
	}
	s.emitter.emit(ctx, events.VerifiedSBTDeployed,
		"organization_id", req.OrganizationID.String(),
		"group_id", req.GroupID.String(),
		"query_name", req.QueryName,
		"token", binding.Token.Hex(),
	)
	return binding, nil
}

// ChangeBaseTokenURI updates the base URI of the token bound to the
// request's key after re-checking the organization's proof.
func (s *Service) ChangeBaseTokenURI(ctx context.Context, req models.ProofRequest, newBaseURI string) (err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanChangeBaseURI, requestAttributes(req)...)
	defer func() { span.End(err) }()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.authenticate(txCtx, req)
		if err != nil {
			return err
		}
		b, err := s.requireBinding(txCtx, req, q)
		if err != nil {
			return err
		}
		return s.tokens.SetBaseURI(txCtx, b.Token, s.address, newBaseURI)
	})
	if err != nil {
		s.recordRejection("change_base_uri", err)
		return err
	}
	s.emitter.emit(ctx, events.BaseTokenURIChanged,
		"organization_id", req.OrganizationID.String(),
		"group_id", req.GroupID.String(),
		"query_name", req.QueryName,
		"base_uri", newBaseURI,
	)
	return nil
}

// authenticate resolves the request's query and checks that the proof
// verifies against it for the organization the request names.
func (s *Service) authenticate(ctx context.Context, req models.ProofRequest) (*querymodels.Query, error) {
	q, err := s.lookupQuery(ctx, req.OrganizationID, req.QueryName)
	if err != nil {
		return nil, err
	}
	if err := s.verify(ctx, req, q, q.Payload); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) verify(ctx context.Context, req models.ProofRequest, q *querymodels.Query, payload []byte) (err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanVerifyProof,
		tracer.String(tracer.AttrQueryName, req.QueryName),
		tracer.Bool(tracer.AttrStatic, q.IsStatic),
	)
	defer func() { span.End(err) }()

	actual, err := s.queries.VerifyProof(ctx, q, req.Proof, payload)
	if err != nil {
		return err
	}
	if actual != req.OrganizationID {
		return &models.InvalidOrganizationIDError{Expected: req.OrganizationID, Actual: actual}
	}
	return nil
}

func (s *Service) lookupQuery(ctx context.Context, org id.OrganizationID, name string) (*querymodels.Query, error) {
	q, err := s.queries.GetQuery(ctx, org, name)
	if err != nil {
		var missing *querymodels.QueryDoesNotExistError
		if errors.As(err, &missing) {
			return nil, &models.QueryDoesNotExistError{OrganizationID: org, QueryName: name}
		}
		return nil, err
	}
	return q, nil
}

// tokenKey scopes by group only for group-level queries.
func (s *Service) tokenKey(req models.ProofRequest, q *querymodels.Query) (id.TokenKey, error) {
	group := id.GroupID{}
	if q.IsGroupLevel {
		group = req.GroupID
	}
	key, err := models.DeriveTokenKey(s.hasher, req.OrganizationID, group, req.QueryName)
	if err != nil {
		return id.TokenKey{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to derive token key")
	}
	return key, nil
}

func (s *Service) requireBinding(ctx context.Context, req models.ProofRequest, q *querymodels.Query) (*models.Binding, error) {
	key, err := s.tokenKey(req, q)
	if err != nil {
		return nil, err
	}
	b, err := s.findBinding(ctx, key)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &models.ZeroTokenAddrError{OrganizationID: req.OrganizationID, GroupID: req.GroupID, QueryName: req.QueryName}
	}
	return b, nil
}

func (s *Service) recordRejection(operation string, err error) {
	if s.metrics != nil {
		s.metrics.IncrementRejected(operation, dErrors.ReasonOf(err))
	}
}

func requestAttributes(req models.ProofRequest) []tracer.Attribute {
	return []tracer.Attribute{
		tracer.String(tracer.AttrOrganizationID, req.OrganizationID.String()),
		tracer.String(tracer.AttrGroupID, req.GroupID.String()),
		tracer.String(tracer.AttrQueryName, req.QueryName),
	}
}

func joinIDs(ids []id.OrganizationID) string {
	return strings.Join(lo.Map(ids, func(org id.OrganizationID, _ int) string { return org.String() }), ",")
}
