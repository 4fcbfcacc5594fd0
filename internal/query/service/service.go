// Package service implements the queries manager: the two-level query
// registry, the circuit to builder bindings, and proof verification against
// stored queries.
package service

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"verisbt/internal/events"
	"verisbt/internal/query/builder"
	querymetrics "verisbt/internal/query/metrics"
	"verisbt/internal/query/models"
	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
)

// Component is the owner-registry key of the queries manager.
const Component = "ProtocolQueriesManager"

type QueryStore interface {
	PutDefault(ctx context.Context, name string, q *models.Query) error
	DeleteDefault(ctx context.Context, name string) error
	FindDefault(ctx context.Context, name string) (*models.Query, error)
	ListDefaultNames(ctx context.Context) ([]string, error)
	PutOrganization(ctx context.Context, org id.OrganizationID, name string, q *models.Query) error
	DeleteOrganization(ctx context.Context, org id.OrganizationID, name string) error
	FindOrganization(ctx context.Context, org id.OrganizationID, name string) (*models.Query, error)
}

type BuilderStore interface {
	PutBuilder(ctx context.Context, circuitID, builder string) error
	DeleteBuilder(ctx context.Context, circuitID string) error
	FindBuilder(ctx context.Context, circuitID string) (string, error)
	ListBuilders(ctx context.Context) ([]models.BuilderBinding, error)
}

type Owner interface {
	Initialize(ctx context.Context, owner common.Address) error
	Owner(ctx context.Context) (common.Address, error)
	RequireOwner(ctx context.Context, caller common.Address) error
	TransferOwnership(ctx context.Context, caller, newOwner common.Address) error
}

type ValidatorResolver interface {
	Resolve(ref validator.Ref) (validator.ProofValidator, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Service is the queries manager.
type Service struct {
	queries    QueryStore
	builders   BuilderStore
	catalog    map[string]builder.Builder
	validators ValidatorResolver
	owner      Owner
	tx         StoreTx
	emitter    *auditEmitter
	metrics    *querymetrics.Metrics
}

func New(queries QueryStore, builders BuilderStore, validators ValidatorResolver, owner Owner, opts ...Option) (*Service, error) {
	if queries == nil {
		return nil, fmt.Errorf("query store is required")
	}
	if builders == nil {
		return nil, fmt.Errorf("builder store is required")
	}
	if validators == nil {
		return nil, fmt.Errorf("validator resolver is required")
	}
	if owner == nil {
		return nil, fmt.Errorf("owner registry is required")
	}

	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	tx := cfg.tx
	if tx == nil {
		tx = newInMemoryStoreTx()
	}
	catalog := cfg.catalog
	if catalog == nil {
		catalog = defaultCatalog()
	}
	return &Service{
		queries:    queries,
		builders:   builders,
		catalog:    catalog,
		validators: validators,
		owner:      owner,
		tx:         tx,
		emitter:    newAuditEmitter(cfg.logger, cfg.publisher),
		metrics:    cfg.metrics,
	}, nil
}

// Initialize sets the owner and the initial builders and default queries.
// It succeeds once.
func (s *Service) Initialize(ctx context.Context, owner common.Address, builders []models.BuilderEntry, defaults []models.QueryEntry) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owner.Initialize(txCtx, owner); err != nil {
			return err
		}
		if err := s.applyBuilders(txCtx, builders); err != nil {
			return err
		}
		return s.applyDefaults(txCtx, defaults)
	})
	if err != nil {
		return err
	}
	s.emitter.emit(ctx, events.OwnershipTransferred, "component", Component, "new_owner", owner.Hex())
	s.emitBuilders(ctx, builders)
	s.emitQueries(ctx, events.DefaultQueriesUpdated, id.OrganizationID{}, defaults)
	return nil
}

// UpdateQueryBuilders binds or unbinds circuit ids. Owner only.
func (s *Service) UpdateQueryBuilders(ctx context.Context, caller common.Address, entries []models.BuilderEntry) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owner.RequireOwner(txCtx, caller); err != nil {
			return err
		}
		return s.applyBuilders(txCtx, entries)
	})
	if err != nil {
		return err
	}
	s.emitBuilders(ctx, entries)
	return nil
}

// UpdateDefaultQueries adds, replaces or removes global queries. Owner only.
// The organization admin query cannot be removed.
func (s *Service) UpdateDefaultQueries(ctx context.Context, caller common.Address, entries []models.QueryEntry) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.owner.RequireOwner(txCtx, caller); err != nil {
			return err
		}
		return s.applyDefaults(txCtx, entries)
	})
	if err != nil {
		return err
	}
	s.emitQueries(ctx, events.DefaultQueriesUpdated, id.OrganizationID{}, entries)
	return nil
}

// UpdateOrganizationQueries authenticates the organization with a proof of
// the global admin query and applies entries to that organization's scope.
// The proof is the only authorization; the organization id comes from it.
func (s *Service) UpdateOrganizationQueries(ctx context.Context, proof validator.ZKProof, entries []models.QueryEntry) (id.OrganizationID, error) {
	var org id.OrganizationID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		admin, err := s.findDefault(txCtx, models.OrganizationAdminQuery)
		if err != nil {
			return err
		}
		org, err = s.VerifyProof(txCtx, admin, proof, admin.Payload)
		if err != nil {
			return err
		}
		if err := validateQueryEntries(entries, false); err != nil {
			return err
		}
		for _, e := range entries {
			if e.IsAdding {
				q := e.Query
				err = s.queries.PutOrganization(txCtx, org, e.Name, &q)
			} else {
				err = s.queries.DeleteOrganization(txCtx, org, e.Name)
			}
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update organization query")
			}
			s.incrementRegistryUpdate(models.Scope(org), e.IsAdding)
		}
		return nil
	})
	if err != nil {
		return id.OrganizationID{}, err
	}
	s.emitQueries(ctx, events.OrganizationQueriesUpdated, org, entries)
	return org, nil
}

// GetDynamicQueryData rebuilds payload with newValues using the builder bound
// to circuitID.
func (s *Service) GetDynamicQueryData(ctx context.Context, circuitID string, newValues []*big.Int, payload []byte) ([]byte, error) {
	b, err := s.resolveBuilder(ctx, circuitID)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := b.BuildQuery(payload, newValues)
	if s.metrics != nil {
		s.metrics.ObserveRebuild(start)
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "failed to build query")
	}
	return out, nil
}

// VerifyProof checks proof against payload with the query's validator and
// returns the identity the proof attests. Zero is the global scope and is
// never a valid identity.
func (s *Service) VerifyProof(ctx context.Context, q *models.Query, proof validator.ZKProof, payload []byte) (id.OrganizationID, error) {
	v, err := s.validators.Resolve(q.Validator)
	if err != nil {
		return id.OrganizationID{}, err
	}
	org, err := v.Verify(ctx, proof, payload)
	if err == nil && org.IsZero() {
		err = validator.Rejected("proof attests the zero organization id")
	}
	if s.metrics != nil {
		s.metrics.IncrementVerification(err == nil)
	}
	if err != nil {
		return id.OrganizationID{}, err
	}
	return org, nil
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

func (s *Service) applyBuilders(ctx context.Context, entries []models.BuilderEntry) error {
	for _, e := range entries {
		if e.CircuitID == "" {
			return dErrors.New(dErrors.CodeValidation, "circuit id is required")
		}
		if !e.IsAdding {
			continue
		}
		if e.Builder == "" {
			return &models.ZeroAddressError{Subject: "QueryBuilder"}
		}
		if _, ok := s.catalog[e.Builder]; !ok {
			return &models.UnknownBuilderError{Name: e.Builder}
		}
	}
	for _, e := range entries {
		var err error
		if e.IsAdding {
			err = s.builders.PutBuilder(ctx, e.CircuitID, e.Builder)
		} else {
			err = s.builders.DeleteBuilder(ctx, e.CircuitID)
		}
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update query builder")
		}
	}
	return nil
}

func (s *Service) applyDefaults(ctx context.Context, entries []models.QueryEntry) error {
	if err := validateQueryEntries(entries, true); err != nil {
		return err
	}
	for _, e := range entries {
		var err error
		if e.IsAdding {
			q := e.Query
			err = s.queries.PutDefault(ctx, e.Name, &q)
		} else {
			err = s.queries.DeleteDefault(ctx, e.Name)
		}
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update default query")
		}
		s.incrementRegistryUpdate("global", e.IsAdding)
	}
	return nil
}

// validateQueryEntries checks a whole batch before anything is written so a
// rejected batch leaves no partial state behind.
func validateQueryEntries(entries []models.QueryEntry, global bool) error {
	for _, e := range entries {
		if e.Name == "" {
			return dErrors.New(dErrors.CodeValidation, "query name is required")
		}
		if !e.IsAdding {
			if global && e.Name == models.OrganizationAdminQuery {
				return &models.QueryDoesNotExistError{Name: e.Name, Protected: true}
			}
			continue
		}
		if e.Query.Validator.IsZero() {
			return &models.ZeroAddressError{Subject: "QueryValidator"}
		}
	}
	return nil
}

func (s *Service) resolveBuilder(ctx context.Context, circuitID string) (builder.Builder, error) {
	name, err := s.builders.FindBuilder(ctx, circuitID)
	if err != nil {
		return nil, wrapBuilderErr(err, circuitID)
	}
	b, ok := s.catalog[name]
	if !ok {
		return nil, &models.UnknownBuilderError{Name: name}
	}
	return b, nil
}

func (s *Service) incrementRegistryUpdate(scope string, adding bool) {
	if s.metrics != nil {
		s.metrics.IncrementRegistryUpdate(scope, adding)
	}
}

func (s *Service) emitBuilders(ctx context.Context, entries []models.BuilderEntry) {
	for _, e := range entries {
		s.emitter.emit(ctx, events.QueryBuildersUpdated,
			"circuit_id", e.CircuitID,
			"builder", e.Builder,
			"is_adding", e.IsAdding,
		)
	}
}

func (s *Service) emitQueries(ctx context.Context, t events.Type, org id.OrganizationID, entries []models.QueryEntry) {
	for _, e := range entries {
		s.emitter.emit(ctx, t,
			"organization_id", models.Scope(org),
			"query_name", e.Name,
			"is_adding", e.IsAdding,
		)
	}
}
