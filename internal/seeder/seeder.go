// Package seeder brings a fresh deployment to its initial state from a
// bootstrap file: owners, builder bindings, default queries and issuers.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"verisbt/internal/access"
	"verisbt/internal/platform/config"
	"verisbt/internal/query/builder"
	querymodels "verisbt/internal/query/models"
	"verisbt/internal/validator"
	"verisbt/internal/validator/groth16"
	"verisbt/internal/validator/validatortest"
	id "verisbt/pkg/domain"
)

// DefaultImplementation is the version reported by tokens deployed through
// a freshly seeded factory.
const DefaultImplementation = "v1.0.0"

type Queries interface {
	Initialize(ctx context.Context, owner common.Address, builders []querymodels.BuilderEntry, defaults []querymodels.QueryEntry) error
}

type Factory interface {
	Initialize(ctx context.Context, owner, manager common.Address, implementation string) error
}

type Protocol interface {
	Initialize(ctx context.Context, owner common.Address) error
	UpdateProtocolIssuers(ctx context.Context, caller common.Address, ids []id.OrganizationID, isAdding bool) error
}

type Seeder struct {
	queries  Queries
	factory  Factory
	protocol Protocol
	logger   *slog.Logger
}

func New(queries Queries, factory Factory, protocol Protocol, logger *slog.Logger) *Seeder {
	return &Seeder{
		queries:  queries,
		factory:  factory,
		protocol: protocol,
		logger:   logger,
	}
}

// Params names the identities a deployment is seeded with.
type Params struct {
	Owner          common.Address
	Manager        common.Address
	Implementation string
}

// SeedAll initializes every component that is not initialized yet. A
// component found already initialized is left as is, so restarting against
// a persistent store is safe. Issuers are only added on the run that
// initializes the protocol manager.
func (s *Seeder) SeedAll(ctx context.Context, boot *config.Bootstrap, p Params) error {
	if p.Implementation == "" {
		p.Implementation = DefaultImplementation
	}
	builders, err := BuilderEntries(boot)
	if err != nil {
		return err
	}
	issuers, err := IssuerIDs(boot)
	if err != nil {
		return err
	}

	if err := s.step("queries manager", s.queries.Initialize(ctx, p.Owner, builders, QueryEntries(boot))); err != nil {
		return err
	}
	if err := s.step("token factory", s.factory.Initialize(ctx, p.Owner, p.Manager, p.Implementation)); err != nil {
		return err
	}

	err = s.protocol.Initialize(ctx, p.Owner)
	if isAlreadyInitialized(err) {
		s.logger.Info("component already initialized, skipping", "component", "protocol manager")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed protocol manager: %w", err)
	}
	if len(issuers) > 0 {
		if err := s.protocol.UpdateProtocolIssuers(ctx, p.Owner, issuers, true); err != nil {
			return fmt.Errorf("failed to seed protocol issuers: %w", err)
		}
	}

	s.logger.Info("bootstrap applied",
		"builders", len(builders),
		"default_queries", len(boot.DefaultQueries),
		"protocol_issuers", len(issuers),
	)
	return nil
}

func (s *Seeder) step(component string, err error) error {
	if isAlreadyInitialized(err) {
		s.logger.Info("component already initialized, skipping", "component", component)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", component, err)
	}
	return nil
}

func isAlreadyInitialized(err error) bool {
	var already *access.AlreadyInitializedError
	return errors.As(err, &already)
}

// BuilderEntries returns the file's bindings, or the stock bindings when
// the file declares none.
func BuilderEntries(boot *config.Bootstrap) ([]querymodels.BuilderEntry, error) {
	stock := builder.Defaults(nil)
	if len(boot.Builders) == 0 {
		circuits := slices.Sorted(maps.Keys(stock))
		return lo.Map(circuits, func(c string, _ int) querymodels.BuilderEntry {
			return querymodels.BuilderEntry{CircuitID: c, Builder: stock[c].Name(), IsAdding: true}
		}), nil
	}

	known := lo.SliceToMap(lo.Values(stock), func(b builder.Builder) (string, struct{}) {
		return b.Name(), struct{}{}
	})
	entries := make([]querymodels.BuilderEntry, 0, len(boot.Builders))
	for _, b := range boot.Builders {
		if _, ok := known[b.Builder]; !ok {
			return nil, fmt.Errorf("unknown builder %q for circuit %s", b.Builder, b.CircuitID)
		}
		entries = append(entries, querymodels.BuilderEntry{CircuitID: b.CircuitID, Builder: b.Builder, IsAdding: true})
	}
	return entries, nil
}

func QueryEntries(boot *config.Bootstrap) []querymodels.QueryEntry {
	return lo.Map(boot.DefaultQueries, func(q config.QueryConfig, _ int) querymodels.QueryEntry {
		return querymodels.QueryEntry{
			Name: q.Name,
			Query: querymodels.Query{
				Metadata:     q.Metadata,
				Payload:      []byte(q.Payload),
				Validator:    validator.Ref(q.Validator),
				IsStatic:     q.IsStatic,
				IsGroupLevel: q.IsGroupLevel,
			},
			IsAdding: true,
		}
	})
}

func IssuerIDs(boot *config.Bootstrap) ([]id.OrganizationID, error) {
	ids := make([]id.OrganizationID, 0, len(boot.ProtocolIssuers))
	for _, raw := range boot.ProtocolIssuers {
		org, err := id.ParseOrganizationID(raw)
		if err != nil {
			return nil, fmt.Errorf("protocol issuer %q: %w", raw, err)
		}
		ids = append(ids, org)
	}
	return ids, nil
}

// BuildValidators registers the file's validators. Mock validators accept
// any proof and are refused unless allowMock is set.
func BuildValidators(boot *config.Bootstrap, allowMock bool) (*validator.Registry, error) {
	reg := validator.NewRegistry()
	for _, vc := range boot.Validators {
		v, err := buildValidator(vc, allowMock)
		if err != nil {
			return nil, fmt.Errorf("validator %s: %w", vc.Ref, err)
		}
		if err := reg.Register(validator.Ref(vc.Ref), v); err != nil {
			return nil, fmt.Errorf("validator %s: %w", vc.Ref, err)
		}
	}
	return reg, nil
}

func buildValidator(vc config.ValidatorConfig, allowMock bool) (validator.ProofValidator, error) {
	switch vc.Kind {
	case config.ValidatorKindMock:
		if !allowMock {
			return nil, fmt.Errorf("mock validators are only allowed in dev")
		}
		if len(vc.Inputs) == 0 {
			return validatortest.New(vc.CircuitID), nil
		}
		return validatortest.NewWithInputs(vc.CircuitID, true, vc.Inputs), nil
	case config.ValidatorKindGroth16:
		raw, err := os.ReadFile(vc.VerifyingKey)
		if err != nil {
			return nil, fmt.Errorf("read verifying key: %w", err)
		}
		vk, err := groth16.ParseSnarkJSKey(raw)
		if err != nil {
			return nil, err
		}
		v3 := vc.CircuitID == builder.CircuitV3OnChain
		layout := validator.LayoutV2OnChain
		if v3 {
			layout = validator.LayoutV3OnChain
		}
		return validator.NewCircuitValidator(vc.CircuitID, v3, layout, groth16.NewChecker(vk)), nil
	default:
		return nil, fmt.Errorf("unknown validator kind %q", vc.Kind)
	}
}
