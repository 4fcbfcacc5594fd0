package service

import (
	"context"
	"errors"
	"fmt"

	"verisbt/internal/query/models"
	"verisbt/internal/sentinel"
	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
)

// Lookups below take an organization id; the zero id means "global only".
// An organization entry shadows the global entry of the same name.

func (s *Service) IsDefaultQueryExist(ctx context.Context, name string) (bool, error) {
	return exists(s.findDefault(ctx, name))
}

func (s *Service) IsQueryExist(ctx context.Context, org id.OrganizationID, name string) (bool, error) {
	return exists(s.GetQuery(ctx, org, name))
}

func (s *Service) GetDefaultQuery(ctx context.Context, name string) (*models.Query, error) {
	return s.findDefault(ctx, name)
}

// GetQuery resolves name for org with shadowing precedence.
func (s *Service) GetQuery(ctx context.Context, org id.OrganizationID, name string) (*models.Query, error) {
	if !org.IsZero() {
		q, err := s.queries.FindOrganization(ctx, org, name)
		if err == nil {
			return q, nil
		}
		if !errors.Is(err, sentinel.ErrNotFound) {
			return nil, wrapQueryErr(err, name)
		}
	}
	return s.findDefault(ctx, name)
}

func (s *Service) GetQueryValidator(ctx context.Context, org id.OrganizationID, name string) (validator.Ref, error) {
	q, err := s.GetQuery(ctx, org, name)
	if err != nil {
		return "", err
	}
	return q.Validator, nil
}

func (s *Service) GetOrganizationAdminQuery(ctx context.Context) (*models.Query, error) {
	return s.findDefault(ctx, models.OrganizationAdminQuery)
}

func (s *Service) GetOrganizationAdminQueryValidator(ctx context.Context) (validator.Ref, error) {
	return s.GetQueryValidator(ctx, id.OrganizationID{}, models.OrganizationAdminQuery)
}

// IsStaticQuery reports false for a query that does not exist.
func (s *Service) IsStaticQuery(ctx context.Context, org id.OrganizationID, name string) (bool, error) {
	q, err := s.lookupOptional(ctx, org, name)
	if err != nil || q == nil {
		return false, err
	}
	return q.IsStatic, nil
}

// IsGroupLevelQuery reports false for a query that does not exist.
func (s *Service) IsGroupLevelQuery(ctx context.Context, org id.OrganizationID, name string) (bool, error) {
	q, err := s.lookupOptional(ctx, org, name)
	if err != nil || q == nil {
		return false, err
	}
	return q.IsGroupLevel, nil
}

// GetQueryCircuitID returns the circuit of the validator bound to q.
func (s *Service) GetQueryCircuitID(q *models.Query) (string, error) {
	v, err := s.validators.Resolve(q.Validator)
	if err != nil {
		return "", err
	}
	bound, ok := v.(validator.CircuitBound)
	if !ok {
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("validator %q is not bound to a circuit", q.Validator))
	}
	return bound.CircuitID(), nil
}

func (s *Service) ListDefaultQueryNames(ctx context.Context) ([]string, error) {
	names, err := s.queries.ListDefaultNames(ctx)
	if err != nil {
		return nil, wrapQueryErr(err, "")
	}
	return names, nil
}

// GetQueryBuilder returns the builder name bound to circuitID, or "" when
// the circuit is unsupported.
func (s *Service) GetQueryBuilder(ctx context.Context, circuitID string) (string, error) {
	name, err := s.builders.FindBuilder(ctx, circuitID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", wrapBuilderErr(err, circuitID)
	}
	return name, nil
}

func (s *Service) IsCircuitSupported(ctx context.Context, circuitID string) (bool, error) {
	name, err := s.GetQueryBuilder(ctx, circuitID)
	return name != "", err
}

func (s *Service) ListQueryBuilders(ctx context.Context) ([]models.BuilderBinding, error) {
	list, err := s.builders.ListBuilders(ctx)
	if err != nil {
		return nil, wrapBuilderErr(err, "")
	}
	return list, nil
}

func (s *Service) findDefault(ctx context.Context, name string) (*models.Query, error) {
	q, err := s.queries.FindDefault(ctx, name)
	if err != nil {
		return nil, wrapQueryErr(err, name)
	}
	return q, nil
}

func (s *Service) lookupOptional(ctx context.Context, org id.OrganizationID, name string) (*models.Query, error) {
	q, err := s.GetQuery(ctx, org, name)
	var missing *models.QueryDoesNotExistError
	if errors.As(err, &missing) {
		return nil, nil
	}
	return q, err
}

func exists(_ *models.Query, err error) (bool, error) {
	var missing *models.QueryDoesNotExistError
	if errors.As(err, &missing) {
		return false, nil
	}
	return err == nil, err
}
