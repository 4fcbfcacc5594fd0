package models

import (
	"fmt"

	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
)

// QueryDoesNotExistError is returned when a lookup finds no query, and when a
// caller tries to remove the protected organization admin query.
type QueryDoesNotExistError struct {
	Name      string
	Protected bool
}

func (e *QueryDoesNotExistError) Error() string {
	if e.Protected {
		return fmt.Sprintf("query %q is protected and cannot be removed", e.Name)
	}
	return fmt.Sprintf("query %q does not exist", e.Name)
}

func (e *QueryDoesNotExistError) Reason() string { return "ProtocolQueriesManagerQueryDoesNotExist" }

func (e *QueryDoesNotExistError) Unwrap() error {
	code := dErrors.CodeNotFound
	if e.Protected {
		code = dErrors.CodeConflict
	}
	return &dErrors.Error{Code: code, Message: e.Error()}
}

// ZeroAddressError reports a null reference where a real one is required.
type ZeroAddressError struct {
	Subject string
}

func (e *ZeroAddressError) Error() string {
	return fmt.Sprintf("%s reference must not be empty", e.Subject)
}

func (e *ZeroAddressError) Reason() string { return "ProtocolQueriesManagerZeroAddress" }

func (e *ZeroAddressError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeValidation, Message: e.Error()}
}

// UnsupportedCircuitError is returned when no builder is bound to a circuit.
type UnsupportedCircuitError struct {
	CircuitID string
}

func (e *UnsupportedCircuitError) Error() string {
	return fmt.Sprintf("circuit %q has no query builder", e.CircuitID)
}

func (e *UnsupportedCircuitError) Reason() string { return "ProtocolQueriesManagerUnsupportedCircuit" }

func (e *UnsupportedCircuitError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeNotFound, Message: e.Error()}
}

// UnknownBuilderError is returned when an entry names a builder the service
// does not know how to construct.
type UnknownBuilderError struct {
	Name string
}

func (e *UnknownBuilderError) Error() string {
	return fmt.Sprintf("unknown query builder %q", e.Name)
}

func (e *UnknownBuilderError) Reason() string { return "ProtocolQueriesManagerUnknownBuilder" }

func (e *UnknownBuilderError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeValidation, Message: e.Error()}
}

// Scope renders an organization id for logs; zero is the global scope.
func Scope(org id.OrganizationID) string {
	if org.IsZero() {
		return "global"
	}
	return org.String()
}
