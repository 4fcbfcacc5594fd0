package token

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"verisbt/internal/sentinel"
)

type tokenRecord struct {
	meta    Metadata
	holders []common.Address
}

// InMemoryStore keeps the factory and its tokens in process memory.
type InMemoryStore struct {
	mu      sync.RWMutex
	factory *FactoryState
	tokens  map[common.Address]*tokenRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{tokens: make(map[common.Address]*tokenRecord)}
}

func (s *InMemoryStore) SaveFactory(_ context.Context, state FactoryState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.factory = &state
	return nil
}

func (s *InMemoryStore) FindFactory(_ context.Context) (FactoryState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.factory == nil {
		return FactoryState{}, sentinel.ErrNotFound
	}
	return *s.factory, nil
}

// LockFactory is FindFactory; the in-memory transaction already serializes
// deployments.
func (s *InMemoryStore) LockFactory(ctx context.Context) (FactoryState, error) {
	return s.FindFactory(ctx)
}

func (s *InMemoryStore) CreateToken(_ context.Context, meta Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[meta.Address]; ok {
		return fmt.Errorf("token %s: %w", meta.Address.Hex(), sentinel.ErrAlreadyUsed)
	}
	meta.NextTokenID = 0
	s.tokens[meta.Address] = &tokenRecord{meta: meta}
	return nil
}

func (s *InMemoryStore) FindToken(_ context.Context, addr common.Address) (*Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tokens[addr]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	meta := rec.meta
	meta.NextTokenID = uint64(len(rec.holders))
	return &meta, nil
}

func (s *InMemoryStore) UpdateBaseURI(_ context.Context, addr common.Address, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.tokens[addr]
	if !ok {
		return sentinel.ErrNotFound
	}
	rec.meta.BaseURI = uri
	return nil
}

func (s *InMemoryStore) AppendHolder(_ context.Context, addr, holder common.Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.tokens[addr]
	if !ok {
		return 0, sentinel.ErrNotFound
	}
	if lo.Contains(rec.holders, holder) {
		return 0, fmt.Errorf("holder %s of %s: %w", holder.Hex(), addr.Hex(), sentinel.ErrAlreadyUsed)
	}
	rec.holders = append(rec.holders, holder)
	return uint64(len(rec.holders) - 1), nil
}

func (s *InMemoryStore) FindHolder(_ context.Context, addr common.Address, tokenID uint64) (common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tokens[addr]
	if !ok || tokenID >= uint64(len(rec.holders)) {
		return common.Address{}, sentinel.ErrNotFound
	}
	return rec.holders[tokenID], nil
}

func (s *InMemoryStore) CountHolder(_ context.Context, addr, holder common.Address) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tokens[addr]
	if !ok {
		return 0, nil
	}
	return uint64(lo.Count(rec.holders, holder)), nil
}
