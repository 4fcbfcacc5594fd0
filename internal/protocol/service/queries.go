package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"verisbt/internal/protocol/models"
	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
)

func (s *Service) GetProtocolIssuers(ctx context.Context) ([]id.OrganizationID, error) {
	list, err := s.store.ListIssuers(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list protocol issuers")
	}
	return list, nil
}

func (s *Service) IsProtocolIssuer(ctx context.Context, org id.OrganizationID) (bool, error) {
	ok, err := s.store.HasIssuer(ctx, org)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load protocol issuers")
	}
	return ok, nil
}

// GetTokenQueryKey derives the key for (org, group, name). The group is
// ignored unless the resolved query is group level; a missing query is
// treated as not group level.
func (s *Service) GetTokenQueryKey(ctx context.Context, org id.OrganizationID, group id.GroupID, name string) (id.TokenKey, error) {
	groupLevel, err := s.queries.IsGroupLevelQuery(ctx, org, name)
	if err != nil {
		return id.TokenKey{}, err
	}
	if !groupLevel {
		group = id.GroupID{}
	}
	key, err := models.DeriveTokenKey(s.hasher, org, group, name)
	if err != nil {
		return id.TokenKey{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to derive token key")
	}
	return key, nil
}

// GetOrganizationToken returns the token bound to (org, group, name), or the
// zero address when none is deployed.
func (s *Service) GetOrganizationToken(ctx context.Context, org id.OrganizationID, group id.GroupID, name string) (common.Address, error) {
	b, err := s.GetOrganizationBinding(ctx, org, group, name)
	if err != nil || b == nil {
		return common.Address{}, err
	}
	return b.Token, nil
}

// GetOrganizationBinding is GetOrganizationToken with the binding details;
// it returns nil when nothing is deployed.
func (s *Service) GetOrganizationBinding(ctx context.Context, org id.OrganizationID, group id.GroupID, name string) (*models.Binding, error) {
	key, err := s.GetTokenQueryKey(ctx, org, group, name)
	if err != nil {
		return nil, err
	}
	return s.findBinding(ctx, key)
}
