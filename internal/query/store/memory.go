// Package store persists the two-level query registry and the circuit to
// builder bindings.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/samber/lo"

	"verisbt/internal/query/models"
	"verisbt/internal/sentinel"
	id "verisbt/pkg/domain"
)

// InMemory keeps global and per-organization queries in separate maps so
// removals in one scope never touch the other. Returned queries are copies.
type InMemory struct {
	mu       sync.RWMutex
	defaults map[string]*models.Query
	orgs     map[id.OrganizationID]map[string]*models.Query
	builders map[string]string
}

func NewInMemory() *InMemory {
	return &InMemory{
		defaults: make(map[string]*models.Query),
		orgs:     make(map[id.OrganizationID]map[string]*models.Query),
		builders: make(map[string]string),
	}
}

func (s *InMemory) PutDefault(_ context.Context, name string, q *models.Query) error {
	cp, err := clone(q)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[name] = cp
	return nil
}

func (s *InMemory) DeleteDefault(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.defaults, name)
	return nil
}

func (s *InMemory) FindDefault(_ context.Context, name string) (*models.Query, error) {
	s.mu.RLock()
	q, ok := s.defaults[name]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(q)
}

func (s *InMemory) ListDefaultNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	names := lo.Keys(s.defaults)
	s.mu.RUnlock()
	slices.Sort(names)
	return names, nil
}

func (s *InMemory) PutOrganization(_ context.Context, org id.OrganizationID, name string, q *models.Query) error {
	cp, err := clone(q)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	scoped, ok := s.orgs[org]
	if !ok {
		scoped = make(map[string]*models.Query)
		s.orgs[org] = scoped
	}
	scoped[name] = cp
	return nil
}

func (s *InMemory) DeleteOrganization(_ context.Context, org id.OrganizationID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	scoped, ok := s.orgs[org]
	if !ok {
		return nil
	}
	delete(scoped, name)
	if len(scoped) == 0 {
		delete(s.orgs, org)
	}
	return nil
}

func (s *InMemory) FindOrganization(_ context.Context, org id.OrganizationID, name string) (*models.Query, error) {
	s.mu.RLock()
	q, ok := s.orgs[org][name]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(q)
}

func (s *InMemory) PutBuilder(_ context.Context, circuitID, builder string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builders[circuitID] = builder
	return nil
}

func (s *InMemory) DeleteBuilder(_ context.Context, circuitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.builders, circuitID)
	return nil
}

func (s *InMemory) FindBuilder(_ context.Context, circuitID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.builders[circuitID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	return b, nil
}

func (s *InMemory) ListBuilders(_ context.Context) ([]models.BuilderBinding, error) {
	s.mu.RLock()
	out := lo.MapToSlice(s.builders, func(circuitID, builder string) models.BuilderBinding {
		return models.BuilderBinding{CircuitID: circuitID, Builder: builder}
	})
	s.mu.RUnlock()
	slices.SortFunc(out, func(a, b models.BuilderBinding) int {
		switch {
		case a.CircuitID < b.CircuitID:
			return -1
		case a.CircuitID > b.CircuitID:
			return 1
		}
		return 0
	})
	return out, nil
}

func clone(q *models.Query) (*models.Query, error) {
	if q == nil {
		return nil, fmt.Errorf("query is required")
	}
	var cp models.Query
	if err := copier.CopyWithOption(&cp, q, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &cp, nil
}
