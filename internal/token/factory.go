package token

import (
	"context"
	"errors"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"verisbt/internal/sentinel"
	dErrors "verisbt/pkg/domain-errors"
)

// Owner guards the factory's owner-only setters.
type Owner interface {
	Initialize(ctx context.Context, owner common.Address) error
	Owner(ctx context.Context) (common.Address, error)
	RequireOwner(ctx context.Context, caller common.Address) error
}

// Factory deploys verified SBTs on behalf of the protocol manager. Token
// addresses are derived from the factory address and a deployment nonce.
type Factory struct {
	self  common.Address
	store Store
	owner Owner

	mu sync.Mutex
}

func NewFactory(self common.Address, store Store, owner Owner) *Factory {
	return &Factory{self: self, store: store, owner: owner}
}

func (f *Factory) Address() common.Address { return f.self }

// Initialize records the owner, the protocol manager and the token
// implementation version. It succeeds once.
func (f *Factory) Initialize(ctx context.Context, owner, manager common.Address, implementation string) error {
	if err := f.owner.Initialize(ctx, owner); err != nil {
		return err
	}
	if err := f.store.SaveFactory(ctx, FactoryState{Manager: manager, Implementation: implementation}); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save factory state")
	}
	return nil
}

func (f *Factory) Owner(ctx context.Context) (common.Address, error) {
	return f.owner.Owner(ctx)
}

func (f *Factory) ProtocolManager(ctx context.Context) (common.Address, error) {
	state, err := f.state(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return state.Manager, nil
}

// Implementation is the version every deployed token reports.
func (f *Factory) Implementation(ctx context.Context) (string, error) {
	state, err := f.state(ctx)
	if err != nil {
		return "", err
	}
	return state.Implementation, nil
}

// SetProtocolManager changes the manager for future deployments. Tokens
// already deployed keep the manager they were created with. Owner only.
func (f *Factory) SetProtocolManager(ctx context.Context, caller, manager common.Address) error {
	return f.update(ctx, caller, func(s *FactoryState) { s.Manager = manager })
}

// SetImplementation upgrades the version of every deployed token. Owner only.
func (f *Factory) SetImplementation(ctx context.Context, caller common.Address, implementation string) error {
	return f.update(ctx, caller, func(s *FactoryState) { s.Implementation = implementation })
}

// DeployVerifiedSBT creates a token managed by the current protocol manager
// and returns its address. Only the protocol manager may deploy.
func (f *Factory) DeployVerifiedSBT(ctx context.Context, caller common.Address, name, symbol, baseURI string) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, err := f.lockedState(ctx)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return common.Address{}, &UnauthorizedError{Component: FactoryComponent, Caller: caller}
		}
		return common.Address{}, err
	}
	if caller != state.Manager {
		return common.Address{}, &UnauthorizedError{Component: FactoryComponent, Caller: caller}
	}

	addr := crypto.CreateAddress(f.self, state.Nonce)
	err = f.store.CreateToken(ctx, Metadata{
		Address: addr,
		Name:    name,
		Symbol:  symbol,
		BaseURI: baseURI,
		Manager: state.Manager,
	})
	if err != nil {
		return common.Address{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create token")
	}
	state.Nonce++
	if err := f.store.SaveFactory(ctx, state); err != nil {
		return common.Address{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save factory state")
	}
	return addr, nil
}

func (f *Factory) update(ctx context.Context, caller common.Address, apply func(*FactoryState)) error {
	if err := f.owner.RequireOwner(ctx, caller); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	state, err := f.lockedState(ctx)
	if err != nil {
		return err
	}
	apply(&state)
	if err := f.store.SaveFactory(ctx, state); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save factory state")
	}
	return nil
}

func (f *Factory) state(ctx context.Context) (FactoryState, error) {
	return f.load(ctx, f.store.FindFactory)
}

// lockedState reads the state for a read-modify-write.
func (f *Factory) lockedState(ctx context.Context) (FactoryState, error) {
	return f.load(ctx, f.store.LockFactory)
}

func (f *Factory) load(ctx context.Context, find func(context.Context) (FactoryState, error)) (FactoryState, error) {
	state, err := find(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return FactoryState{}, dErrors.New(dErrors.CodeNotFound, FactoryComponent+" is not initialized")
		}
		return FactoryState{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load factory state")
	}
	return state, nil
}
