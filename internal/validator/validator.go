// Package validator defines zero-knowledge proof validators and the registry
// that resolves the validator references stored with queries.
package validator

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"sync"

	"github.com/samber/lo"

	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
)

// ZKProof is a Groth16 proof in contract calldata form plus its public inputs.
// B coordinates are ordered (c1, c0) per Fp2 element.
type ZKProof struct {
	A      [2]*big.Int
	B      [2][2]*big.Int
	C      [2]*big.Int
	Inputs []*big.Int
}

// Input returns the public input at i, or nil when out of range.
func (p ZKProof) Input(i int) *big.Int {
	if i < 0 || i >= len(p.Inputs) {
		return nil
	}
	return p.Inputs[i]
}

// Ref names a registered validator. The empty Ref is the null reference.
type Ref string

func (r Ref) IsZero() bool { return r == "" }

// ProofValidator verifies a proof against a query payload and returns the
// identity the proof was issued for.
type ProofValidator interface {
	Verify(ctx context.Context, proof ZKProof, payload []byte) (id.OrganizationID, error)
}

// CircuitBound is implemented by validators tied to one circuit. The
// circuit id selects the builder used to rebuild dynamic queries.
type CircuitBound interface {
	CircuitID() string
}

// VerificationFailedError wraps any validator rejection.
type VerificationFailedError struct {
	Detail string
	Err    error
}

func (e *VerificationFailedError) Error() string {
	if e.Detail == "" {
		return "proof verification failed"
	}
	return "proof verification failed: " + e.Detail
}

func (e *VerificationFailedError) Reason() string { return "VerificationFailed" }

func (e *VerificationFailedError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeProofVerification, Message: e.Error(), Err: e.Err}
}

// Rejected builds a VerificationFailedError.
func Rejected(format string, args ...any) error {
	return &VerificationFailedError{Detail: fmt.Sprintf(format, args...)}
}

// UnknownValidatorError is returned when a ref has no registered validator.
type UnknownValidatorError struct {
	Ref Ref
}

func (e *UnknownValidatorError) Error() string {
	return fmt.Sprintf("validator %q is not registered", string(e.Ref))
}

func (e *UnknownValidatorError) Reason() string { return "UnknownValidator" }

func (e *UnknownValidatorError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeNotFound, Message: e.Error()}
}

// Registry resolves validator references. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	validators map[Ref]ProofValidator
}

func NewRegistry() *Registry {
	return &Registry{validators: make(map[Ref]ProofValidator)}
}

// Register binds ref to v, replacing any previous binding.
func (r *Registry) Register(ref Ref, v ProofValidator) error {
	if ref.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "validator reference cannot be empty")
	}
	if v == nil {
		return dErrors.New(dErrors.CodeValidation, "validator cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[ref] = v
	return nil
}

// Resolve returns the validator bound to ref.
func (r *Registry) Resolve(ref Ref) (ProofValidator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.validators[ref]
	if !ok {
		return nil, &UnknownValidatorError{Ref: ref}
	}
	return v, nil
}

// Has reports whether ref is registered.
func (r *Registry) Has(ref Ref) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.validators[ref]
	return ok
}

// Refs lists registered references in lexical order.
func (r *Registry) Refs() []Ref {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := lo.Keys(r.validators)
	slices.Sort(out)
	return out
}
