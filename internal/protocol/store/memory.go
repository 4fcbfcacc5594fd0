// Package store persists the protocol issuer set and token bindings.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"verisbt/internal/protocol/models"
	"verisbt/internal/sentinel"
	id "verisbt/pkg/domain"
)

// InMemory keeps issuers in insertion order. Removal moves the last issuer
// into the freed position.
type InMemory struct {
	mu       sync.RWMutex
	issuers  []id.OrganizationID
	position map[id.OrganizationID]int
	bindings map[id.TokenKey]models.Binding
}

func NewInMemory() *InMemory {
	return &InMemory{
		position: make(map[id.OrganizationID]int),
		bindings: make(map[id.TokenKey]models.Binding),
	}
}

func (s *InMemory) AddIssuer(_ context.Context, org id.OrganizationID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.position[org]; ok {
		return false, nil
	}
	s.position[org] = len(s.issuers)
	s.issuers = append(s.issuers, org)
	return true, nil
}

func (s *InMemory) RemoveIssuer(_ context.Context, org id.OrganizationID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.position[org]
	if !ok {
		return false, nil
	}
	last := len(s.issuers) - 1
	if i != last {
		moved := s.issuers[last]
		s.issuers[i] = moved
		s.position[moved] = i
	}
	s.issuers = s.issuers[:last]
	delete(s.position, org)
	return true, nil
}

func (s *InMemory) HasIssuer(_ context.Context, org id.OrganizationID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.position[org]
	return ok, nil
}

func (s *InMemory) ListIssuers(_ context.Context) ([]id.OrganizationID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.issuers), nil
}

func (s *InMemory) CreateBinding(_ context.Context, b models.Binding) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bindings[b.Key]; ok {
		return fmt.Errorf("token key %s: %w", b.Key, sentinel.ErrAlreadyUsed)
	}
	s.bindings[b.Key] = b
	return nil
}

func (s *InMemory) FindBinding(_ context.Context, key id.TokenKey) (*models.Binding, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bindings[key]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &b, nil
}
