// Package token implements the verified SBT factory and the non-transferable
// tokens it deploys. Every write is restricted to the protocol manager
// address recorded at deployment.
package token

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	dErrors "verisbt/pkg/domain-errors"
)

// Component names used in errors and the owner registry.
const (
	FactoryComponent = "TokensFactory"
	TokenComponent   = "VerifiedSBT"
)

// Metadata is the stored state of one deployed token.
type Metadata struct {
	Address     common.Address `json:"address"`
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	BaseURI     string         `json:"baseUri"`
	Manager     common.Address `json:"protocolManager"`
	NextTokenID uint64         `json:"nextTokenId"`
}

// FactoryState is the factory configuration. Nonce counts deployments and
// seeds the next token address.
type FactoryState struct {
	Manager        common.Address
	Implementation string
	Nonce          uint64
}

// Store persists factory state, token metadata and holders. Implementations
// join the caller's transaction when one is present in ctx.
type Store interface {
	SaveFactory(ctx context.Context, state FactoryState) error
	// FindFactory returns sentinel.ErrNotFound before the first SaveFactory.
	FindFactory(ctx context.Context) (FactoryState, error)
	// LockFactory is FindFactory holding the state until the caller's
	// transaction ends.
	LockFactory(ctx context.Context) (FactoryState, error)
	// CreateToken returns sentinel.ErrAlreadyUsed for a taken address.
	CreateToken(ctx context.Context, meta Metadata) error
	FindToken(ctx context.Context, addr common.Address) (*Metadata, error)
	UpdateBaseURI(ctx context.Context, addr common.Address, uri string) error
	// AppendHolder assigns the token's next id to holder and returns it.
	// A holder that already has a token gets sentinel.ErrAlreadyUsed.
	AppendHolder(ctx context.Context, addr, holder common.Address) (uint64, error)
	FindHolder(ctx context.Context, addr common.Address, tokenID uint64) (common.Address, error)
	CountHolder(ctx context.Context, addr, holder common.Address) (uint64, error)
}

// UnauthorizedError is returned when a caller other than the protocol
// manager calls a restricted factory or token method.
type UnauthorizedError struct {
	Component string
	Caller    common.Address
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: caller %s is not the protocol manager", e.Component, e.Caller.Hex())
}

func (e *UnauthorizedError) Reason() string { return e.Component + "Unauthorized" }

func (e *UnauthorizedError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeUnauthorized, Message: e.Error()}
}

// NonexistentTokenError is returned for a token id nobody holds.
type NonexistentTokenError struct {
	Token   common.Address
	TokenID uint64
}

func (e *NonexistentTokenError) Error() string {
	return fmt.Sprintf("token %d of %s does not exist", e.TokenID, e.Token.Hex())
}

func (e *NonexistentTokenError) Reason() string { return "ERC721NonexistentToken" }

func (e *NonexistentTokenError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeNotFound, Message: e.Error()}
}

// NotDeployedError is returned for an address the factory never deployed.
type NotDeployedError struct {
	Token common.Address
}

func (e *NotDeployedError) Error() string {
	return fmt.Sprintf("no verified SBT is deployed at %s", e.Token.Hex())
}

func (e *NotDeployedError) Reason() string { return "VerifiedSBTNotDeployed" }

func (e *NotDeployedError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeNotFound, Message: e.Error()}
}

// AlreadyHeldError is returned when minting to a holder that already owns a
// token of the contract.
type AlreadyHeldError struct {
	Token  common.Address
	Holder common.Address
}

func (e *AlreadyHeldError) Error() string {
	return fmt.Sprintf("%s already holds a token of %s", e.Holder.Hex(), e.Token.Hex())
}

func (e *AlreadyHeldError) Reason() string { return "VerifiedSBTAlreadyHeld" }

func (e *AlreadyHeldError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeConflict, Message: e.Error()}
}
