// Package access implements one-shot initialization and single-owner
// authorization for the manager components.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"verisbt/internal/sentinel"
	dErrors "verisbt/pkg/domain-errors"
)

// Store persists the owner of each component. Implementations join the
// caller's transaction when one is present in ctx.
type Store interface {
	// Initialize records the first owner; a second call returns sentinel.ErrAlreadyUsed.
	Initialize(ctx context.Context, component string, owner common.Address) error
	FindOwner(ctx context.Context, component string) (common.Address, error)
	SaveOwner(ctx context.Context, component string, owner common.Address) error
}

// NotOwnerError is returned when a caller other than the owner attempts an
// owner-only operation.
type NotOwnerError struct {
	Component string
	Caller    common.Address
}

func (e *NotOwnerError) Error() string { return "Ownable: caller is not the owner" }

func (e *NotOwnerError) Reason() string { return "OwnableUnauthorizedAccount" }

func (e *NotOwnerError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeUnauthorized, Message: e.Error()}
}

// AlreadyInitializedError is returned by a second Initialize call.
type AlreadyInitializedError struct {
	Component string
}

func (e *AlreadyInitializedError) Error() string {
	return "Initializable: contract is already initialized"
}

func (e *AlreadyInitializedError) Reason() string { return "InvalidInitialization" }

func (e *AlreadyInitializedError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeConflict, Message: e.Error()}
}

// Ownable guards one named component.
type Ownable struct {
	component string
	store     Store
}

func NewOwnable(component string, store Store) *Ownable {
	return &Ownable{component: component, store: store}
}

func (o *Ownable) Component() string { return o.component }

// Initialize sets the first owner. It succeeds once per component.
func (o *Ownable) Initialize(ctx context.Context, owner common.Address) error {
	if owner == (common.Address{}) {
		return dErrors.New(dErrors.CodeValidation, "Ownable: owner is the zero address")
	}
	if err := o.store.Initialize(ctx, o.component, owner); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return &AlreadyInitializedError{Component: o.component}
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to initialize "+o.component)
	}
	return nil
}

func (o *Ownable) Owner(ctx context.Context) (common.Address, error) {
	owner, err := o.store.FindOwner(ctx, o.component)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return common.Address{}, dErrors.New(dErrors.CodeNotFound, o.component+" is not initialized")
		}
		return common.Address{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load owner")
	}
	return owner, nil
}

// RequireOwner fails with *NotOwnerError unless caller owns the component.
// An uninitialized component has no owner, so every caller is rejected.
func (o *Ownable) RequireOwner(ctx context.Context, caller common.Address) error {
	owner, err := o.store.FindOwner(ctx, o.component)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return &NotOwnerError{Component: o.component, Caller: caller}
	case err != nil:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load owner")
	case owner != caller:
		return &NotOwnerError{Component: o.component, Caller: caller}
	}
	return nil
}

func (o *Ownable) TransferOwnership(ctx context.Context, caller, newOwner common.Address) error {
	if err := o.RequireOwner(ctx, caller); err != nil {
		return err
	}
	if newOwner == (common.Address{}) {
		return dErrors.New(dErrors.CodeValidation, "Ownable: new owner is the zero address")
	}
	if err := o.store.SaveOwner(ctx, o.component, newOwner); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("failed to transfer %s ownership", o.component))
	}
	return nil
}
