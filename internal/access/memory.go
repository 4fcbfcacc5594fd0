package access

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"verisbt/internal/sentinel"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	owners map[string]common.Address
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{owners: make(map[string]common.Address)}
}

func (s *InMemoryStore) Initialize(_ context.Context, component string, owner common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[component]; ok {
		return fmt.Errorf("%s: %w", component, sentinel.ErrAlreadyUsed)
	}
	s.owners[component] = owner
	return nil
}

func (s *InMemoryStore) FindOwner(_ context.Context, component string) (common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	owner, ok := s.owners[component]
	if !ok {
		return common.Address{}, sentinel.ErrNotFound
	}
	return owner, nil
}

func (s *InMemoryStore) SaveOwner(_ context.Context, component string, owner common.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owners[component]; !ok {
		return sentinel.ErrNotFound
	}
	s.owners[component] = owner
	return nil
}
