package token

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"

	"verisbt/internal/sentinel"
	dErrors "verisbt/pkg/domain-errors"
)

// Ledger operates on deployed verified SBTs by address. Tokens cannot be
// transferred or burned; every token id resolves to the base URI.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

func (l *Ledger) Metadata(ctx context.Context, token common.Address) (*Metadata, error) {
	meta, err := l.store.FindToken(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, &NotDeployedError{Token: token}
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load token")
	}
	return meta, nil
}

// Version reports the implementation version the factory currently serves.
func (l *Ledger) Version(ctx context.Context, token common.Address) (string, error) {
	if _, err := l.Metadata(ctx, token); err != nil {
		return "", err
	}
	state, err := l.store.FindFactory(ctx)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to load factory state")
	}
	return state.Implementation, nil
}

func (l *Ledger) TokenURI(ctx context.Context, token common.Address, tokenID uint64) (string, error) {
	meta, err := l.Metadata(ctx, token)
	if err != nil {
		return "", err
	}
	if _, err := l.OwnerOf(ctx, token, tokenID); err != nil {
		return "", err
	}
	return meta.BaseURI, nil
}

func (l *Ledger) OwnerOf(ctx context.Context, token common.Address, tokenID uint64) (common.Address, error) {
	holder, err := l.store.FindHolder(ctx, token, tokenID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return common.Address{}, &NonexistentTokenError{Token: token, TokenID: tokenID}
		}
		return common.Address{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load token holder")
	}
	return holder, nil
}

func (l *Ledger) BalanceOf(ctx context.Context, token, holder common.Address) (uint64, error) {
	if _, err := l.Metadata(ctx, token); err != nil {
		return 0, err
	}
	n, err := l.store.CountHolder(ctx, token, holder)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count tokens")
	}
	return n, nil
}

func (l *Ledger) SetBaseURI(ctx context.Context, token, caller common.Address, uri string) error {
	if _, err := l.requireManager(ctx, token, caller); err != nil {
		return err
	}
	if err := l.store.UpdateBaseURI(ctx, token, uri); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update base URI")
	}
	return nil
}

// Mint issues the next token id to holder. Manager only.
func (l *Ledger) Mint(ctx context.Context, token, caller, holder common.Address) (uint64, error) {
	if _, err := l.requireManager(ctx, token, caller); err != nil {
		return 0, err
	}
	return l.mint(ctx, token, holder)
}

// BatchMint issues consecutive token ids to holders in order. Manager only.
func (l *Ledger) BatchMint(ctx context.Context, token, caller common.Address, holders []common.Address) ([]uint64, error) {
	if _, err := l.requireManager(ctx, token, caller); err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(holders))
	for _, h := range holders {
		tokenID, err := l.mint(ctx, token, h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, tokenID)
	}
	return ids, nil
}

func (l *Ledger) mint(ctx context.Context, token, holder common.Address) (uint64, error) {
	if holder == (common.Address{}) {
		return 0, dErrors.New(dErrors.CodeValidation, "ERC721: mint to the zero address")
	}
	tokenID, err := l.store.AppendHolder(ctx, token, holder)
	if err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return 0, &AlreadyHeldError{Token: token, Holder: holder}
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to mint token")
	}
	return tokenID, nil
}

func (l *Ledger) requireManager(ctx context.Context, token, caller common.Address) (*Metadata, error) {
	meta, err := l.Metadata(ctx, token)
	if err != nil {
		return nil, err
	}
	if caller != meta.Manager {
		return nil, &UnauthorizedError{Component: TokenComponent, Caller: caller}
	}
	return meta, nil
}
