package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
)

type NotProtocolIssuerError struct {
	OrganizationID id.OrganizationID
}

func (e *NotProtocolIssuerError) Error() string {
	return fmt.Sprintf("organization %s is not a protocol issuer", e.OrganizationID)
}

func (e *NotProtocolIssuerError) Reason() string { return "ProtocolManagerIsNotTheProtocolIssuer" }

func (e *NotProtocolIssuerError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeUnauthorized, Message: e.Error()}
}

// InvalidOrganizationIDError is returned when the proof attests another
// organization than the one the request names.
type InvalidOrganizationIDError struct {
	Expected id.OrganizationID
	Actual   id.OrganizationID
}

func (e *InvalidOrganizationIDError) Error() string {
	return fmt.Sprintf("proof was issued for organization %s, not %s", e.Actual, e.Expected)
}

// Reason keeps the identifier exposed by the deployed contracts.
func (e *InvalidOrganizationIDError) Reason() string { return "ProtocolManagerInvalidaOrganizationId" }

func (e *InvalidOrganizationIDError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeUnauthorized, Message: e.Error()}
}

type QueryDoesNotExistError struct {
	OrganizationID id.OrganizationID
	QueryName      string
}

func (e *QueryDoesNotExistError) Error() string {
	return fmt.Sprintf("query %q does not exist for organization %s", e.QueryName, e.OrganizationID)
}

func (e *QueryDoesNotExistError) Reason() string { return "ProtocolManagerQueryDoesNotExist" }

func (e *QueryDoesNotExistError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeNotFound, Message: e.Error()}
}

type TokenAlreadyDeployedError struct {
	OrganizationID id.OrganizationID
	Key            id.TokenKey
}

func (e *TokenAlreadyDeployedError) Error() string {
	return fmt.Sprintf("token for key %s of organization %s is already deployed", e.Key, e.OrganizationID)
}

func (e *TokenAlreadyDeployedError) Reason() string { return "ProtocolManagerTokenIsAlreadyDeployed" }

func (e *TokenAlreadyDeployedError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeConflict, Message: e.Error()}
}

// ZeroTokenAddrError is returned when no token is bound to the request's key.
type ZeroTokenAddrError struct {
	OrganizationID id.OrganizationID
	GroupID        id.GroupID
	QueryName      string
}

func (e *ZeroTokenAddrError) Error() string {
	return fmt.Sprintf("no token deployed for organization %s, group %s, query %q", e.OrganizationID, e.GroupID, e.QueryName)
}

func (e *ZeroTokenAddrError) Reason() string { return "ProtocolManagerZeroTokenAddr" }

func (e *ZeroTokenAddrError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeNotFound, Message: e.Error()}
}

type EmptyMintBatchError struct{}

func (e *EmptyMintBatchError) Error() string { return "mint batch is empty" }

func (e *EmptyMintBatchError) Reason() string { return "ProtocolManagerZeroMintTokensDataArr" }

func (e *EmptyMintBatchError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeValidation, Message: e.Error()}
}

type UserAlreadyHasTokenError struct {
	Holder common.Address
	Token  common.Address
}

func (e *UserAlreadyHasTokenError) Error() string {
	return fmt.Sprintf("%s already holds a token of %s", e.Holder.Hex(), e.Token.Hex())
}

func (e *UserAlreadyHasTokenError) Reason() string { return "ProtocolManagerUserAlreadyHasTheToken" }

func (e *UserAlreadyHasTokenError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeConflict, Message: e.Error()}
}
