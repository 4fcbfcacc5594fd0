// Package validatortest provides a configurable proof validator for tests and
// local environments.
package validatortest

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
)

// Default input names and positions.
const (
	InputIssuerID  = "issuerID"
	InputChallenge = "challenge"
)

// Mock accepts any proof while its result is true and reports the
// identity found at the issuerID input position.
type Mock struct {
	circuitID string

	mu      sync.RWMutex
	result  bool
	indexes map[string]int
	calls   int
}

// New returns a Mock with issuerID at input 6 and challenge at input 4.
func New(circuitID string) *Mock {
	return NewWithInputs(circuitID, true, map[string]int{InputIssuerID: 6, InputChallenge: 4})
}

func NewWithInputs(circuitID string, result bool, indexes map[string]int) *Mock {
	cp := make(map[string]int, len(indexes))
	for k, v := range indexes {
		cp[k] = v
	}
	return &Mock{circuitID: circuitID, result: result, indexes: cp}
}

func (m *Mock) CircuitID() string { return m.circuitID }

// SetVerificationResult switches the outcome of subsequent Verify calls.
func (m *Mock) SetVerificationResult(ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.result = ok
}

// InputIndex returns the configured position of a named input.
func (m *Mock) InputIndex(name string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.indexes[name]
	return i, ok
}

// Calls is the number of Verify invocations so far.
func (m *Mock) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

func (m *Mock) Verify(_ context.Context, proof validator.ZKProof, _ []byte) (id.OrganizationID, error) {
	m.mu.Lock()
	m.calls++
	ok := m.result
	idx, hasIdx := m.indexes[InputIssuerID]
	m.mu.Unlock()

	if !ok {
		return id.OrganizationID{}, validator.Rejected("mock verification result is false")
	}
	if !hasIdx {
		return id.OrganizationID{}, fmt.Errorf("mock: %s input index not configured", InputIssuerID)
	}
	in := proof.Input(idx)
	if in == nil {
		return id.OrganizationID{}, validator.Rejected("missing %s input at %d", InputIssuerID, idx)
	}
	return id.OrganizationIDFromBig(in)
}

// Proof returns a proof whose issuerID input carries org.
func Proof(org id.OrganizationID) validator.ZKProof {
	inputs := make([]*big.Int, 10)
	for i := range inputs {
		inputs[i] = new(big.Int)
	}
	inputs[6] = org.Big()
	zero := new(big.Int)
	return validator.ZKProof{
		A:      [2]*big.Int{zero, zero},
		B:      [2][2]*big.Int{{zero, zero}, {zero, zero}},
		C:      [2]*big.Int{zero, zero},
		Inputs: inputs,
	}
}
