// Package builder rebuilds credential-query payloads with caller-supplied
// values, recomputing the query commitment hash.
package builder

import (
	"fmt"
	"math/big"

	"verisbt/internal/fieldhash"
	"verisbt/internal/query/codec"
	dErrors "verisbt/pkg/domain-errors"
)

const (
	AtomicQueryBuilderName   = "CredentialAtomicQueryBuilder"
	AtomicQueryV3BuilderName = "CredentialAtomicQueryV3Builder"
)

// Builder rewrites a stored query payload with new dynamic values.
type Builder interface {
	// Name identifies the builder for introspection only.
	Name() string
	BuildQuery(payload []byte, values []*big.Int) ([]byte, error)
}

// InvalidValuesLengthError is returned when more values are supplied than a
// query can commit to.
type InvalidValuesLengthError struct {
	Actual int
	Max    int
}

func (e *InvalidValuesLengthError) Error() string {
	return fmt.Sprintf("invalid values length: got %d, max %d", e.Actual, e.Max)
}

func (e *InvalidValuesLengthError) Reason() string { return "QueryBuilderInvalidValuesArrLength" }

func (e *InvalidValuesLengthError) Unwrap() error {
	return &dErrors.Error{Code: dErrors.CodeValidation, Message: e.Error()}
}

// AtomicQueryBuilder rebuilds base credential queries.
type AtomicQueryBuilder struct {
	hasher fieldhash.Hasher
}

func NewAtomicQueryBuilder(hasher fieldhash.Hasher) *AtomicQueryBuilder {
	return &AtomicQueryBuilder{hasher: hasher}
}

func (b *AtomicQueryBuilder) Name() string { return AtomicQueryBuilderName }

func (b *AtomicQueryBuilder) BuildQuery(payload []byte, values []*big.Int) ([]byte, error) {
	if err := checkValuesLength(values); err != nil {
		return nil, err
	}
	q, err := codec.DecodeAtomicQuery(payload)
	if err != nil {
		return nil, err
	}
	hash, err := queryHash(b.hasher, q.Schema, q.SlotIndex, q.Operator, q.ClaimPathKey, values)
	if err != nil {
		return nil, err
	}
	q.Values = values
	q.QueryHash = hash
	return codec.EncodeAtomicQuery(q)
}

// AtomicQueryV3Builder rebuilds V3 credential queries. The V3-only fields are
// carried through untouched.
type AtomicQueryV3Builder struct {
	hasher fieldhash.Hasher
}

func NewAtomicQueryV3Builder(hasher fieldhash.Hasher) *AtomicQueryV3Builder {
	return &AtomicQueryV3Builder{hasher: hasher}
}

func (b *AtomicQueryV3Builder) Name() string { return AtomicQueryV3BuilderName }

func (b *AtomicQueryV3Builder) BuildQuery(payload []byte, values []*big.Int) ([]byte, error) {
	if err := checkValuesLength(values); err != nil {
		return nil, err
	}
	q, err := codec.DecodeAtomicQueryV3(payload)
	if err != nil {
		return nil, err
	}
	hash, err := queryHash(b.hasher, q.Schema, q.SlotIndex, q.Operator, q.ClaimPathKey, values)
	if err != nil {
		return nil, err
	}
	q.Values = values
	q.QueryHash = hash
	return codec.EncodeAtomicQueryV3(q)
}

func checkValuesLength(values []*big.Int) error {
	if len(values) > fieldhash.MaxValuesLength {
		return &InvalidValuesLengthError{Actual: len(values), Max: fieldhash.MaxValuesLength}
	}
	return nil
}

// QueryHash computes the commitment hash6(schema, slotIndex, operator,
// claimPathKey, 0, sponge(pad64(values))). Slot 4 is always zero: the circuit
// reserves it and fixes it regardless of the record's claimPathNotExists.
func QueryHash(hasher fieldhash.Hasher, schema, slotIndex, operator, claimPathKey *big.Int, values []*big.Int) (*big.Int, error) {
	if err := checkValuesLength(values); err != nil {
		return nil, err
	}
	return queryHash(hasher, schema, slotIndex, operator, claimPathKey, values)
}

func queryHash(hasher fieldhash.Hasher, schema, slotIndex, operator, claimPathKey *big.Int, values []*big.Int) (*big.Int, error) {
	padded, err := fieldhash.PadValues(values)
	if err != nil {
		return nil, &InvalidValuesLengthError{Actual: len(values), Max: fieldhash.MaxValuesLength}
	}
	valuesHash, err := hasher.SpongeHash(padded)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "hash query values")
	}
	hash, err := hasher.Hash6([6]*big.Int{schema, slotIndex, operator, claimPathKey, new(big.Int), valuesHash})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "hash query")
	}
	return hash, nil
}

// Circuit identifiers bound to the stock builders at bootstrap.
const (
	CircuitMTPV2OnChain = "credentialAtomicQueryMTPV2OnChain"
	CircuitSigV2OnChain = "credentialAtomicQuerySigV2OnChain"
	CircuitV3OnChain    = "credentialAtomicQueryV3OnChain-beta.0"
)

// Defaults returns the stock circuit-to-builder bindings.
func Defaults(hasher fieldhash.Hasher) map[string]Builder {
	base := NewAtomicQueryBuilder(hasher)
	return map[string]Builder{
		CircuitMTPV2OnChain: base,
		CircuitSigV2OnChain: base,
		CircuitV3OnChain:    NewAtomicQueryV3Builder(hasher),
	}
}
