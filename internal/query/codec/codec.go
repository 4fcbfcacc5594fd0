// Package codec encodes credential-query records to and from the opaque
// payload bytes stored with each query. Payloads use the Ethereum ABI tuple
// encoding so they match what on-chain validators consume.
package codec

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	dErrors "verisbt/pkg/domain-errors"
)

// AtomicQuery is the decoded base credential query.
type AtomicQuery struct {
	Schema                   *big.Int   `abi:"schema"`
	ClaimPathKey             *big.Int   `abi:"claimPathKey"`
	Operator                 *big.Int   `abi:"operator"`
	SlotIndex                *big.Int   `abi:"slotIndex"`
	Values                   []*big.Int `abi:"value"`
	QueryHash                *big.Int   `abi:"queryHash"`
	AllowedIssuers           []*big.Int `abi:"allowedIssuers"`
	CircuitIDs               []string   `abi:"circuitIds"`
	SkipClaimRevocationCheck bool       `abi:"skipClaimRevocationCheck"`
	ClaimPathNotExists       *big.Int   `abi:"claimPathNotExists"`
}

// AtomicQueryV3 extends AtomicQuery with four trailing fields.
type AtomicQueryV3 struct {
	Schema                   *big.Int   `abi:"schema"`
	ClaimPathKey             *big.Int   `abi:"claimPathKey"`
	Operator                 *big.Int   `abi:"operator"`
	SlotIndex                *big.Int   `abi:"slotIndex"`
	Values                   []*big.Int `abi:"value"`
	QueryHash                *big.Int   `abi:"queryHash"`
	AllowedIssuers           []*big.Int `abi:"allowedIssuers"`
	CircuitIDs               []string   `abi:"circuitIds"`
	SkipClaimRevocationCheck bool       `abi:"skipClaimRevocationCheck"`
	ClaimPathNotExists       *big.Int   `abi:"claimPathNotExists"`
	GroupID                  *big.Int   `abi:"groupID"`
	NullifierSessionID       *big.Int   `abi:"nullifierSessionID"`
	ProofType                *big.Int   `abi:"proofType"`
	VerifierID               *big.Int   `abi:"verifierID"`
}

var (
	baseComponents = []abi.ArgumentMarshaling{
		{Name: "schema", Type: "uint256"},
		{Name: "claimPathKey", Type: "uint256"},
		{Name: "operator", Type: "uint256"},
		{Name: "slotIndex", Type: "uint256"},
		{Name: "value", Type: "uint256[]"},
		{Name: "queryHash", Type: "uint256"},
		{Name: "allowedIssuers", Type: "uint256[]"},
		{Name: "circuitIds", Type: "string[]"},
		{Name: "skipClaimRevocationCheck", Type: "bool"},
		{Name: "claimPathNotExists", Type: "uint256"},
	}
	v3Components = append(append([]abi.ArgumentMarshaling{}, baseComponents...),
		abi.ArgumentMarshaling{Name: "groupID", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "nullifierSessionID", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "proofType", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "verifierID", Type: "uint256"},
	)

	baseArgs = mustTupleArgs(baseComponents)
	v3Args   = mustTupleArgs(v3Components)
)

func mustTupleArgs(components []abi.ArgumentMarshaling) abi.Arguments {
	t, err := abi.NewType("tuple", "", components)
	if err != nil {
		panic(fmt.Sprintf("codec: build tuple type: %v", err))
	}
	return abi.Arguments{{Type: t}}
}

// EncodeAtomicQuery produces the canonical payload for q.
func EncodeAtomicQuery(q *AtomicQuery) ([]byte, error) {
	if q == nil {
		return nil, dErrors.New(dErrors.CodeValidation, "query record is required")
	}
	rec := q.normalized()
	if err := checkRanges(rec.scalars(), rec.Values, rec.AllowedIssuers); err != nil {
		return nil, err
	}
	out, err := baseArgs.Pack(rec)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "encode credential query")
	}
	return out, nil
}

// DecodeAtomicQuery parses a base payload.
func DecodeAtomicQuery(payload []byte) (*AtomicQuery, error) {
	vals, err := baseArgs.Unpack(payload)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "decode credential query")
	}
	rec, err := convert[AtomicQuery](vals)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// EncodeAtomicQueryV3 produces the canonical V3 payload for q.
func EncodeAtomicQueryV3(q *AtomicQueryV3) ([]byte, error) {
	if q == nil {
		return nil, dErrors.New(dErrors.CodeValidation, "query record is required")
	}
	rec := q.normalized()
	if err := checkRanges(rec.scalars(), rec.Values, rec.AllowedIssuers); err != nil {
		return nil, err
	}
	out, err := v3Args.Pack(rec)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "encode credential query v3")
	}
	return out, nil
}

// DecodeAtomicQueryV3 parses a V3 payload.
func DecodeAtomicQueryV3(payload []byte) (*AtomicQueryV3, error) {
	vals, err := v3Args.Unpack(payload)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "decode credential query v3")
	}
	return convert[AtomicQueryV3](vals)
}

// convert copies the anonymous tuple struct produced by Unpack into T.
// Fields are matched by position, so T must follow the component order.
func convert[T any](vals []any) (out *T, err error) {
	if len(vals) != 1 {
		return nil, dErrors.New(dErrors.CodeValidation, "decode credential query: unexpected arity")
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("decode credential query: %v", r))
		}
	}()
	return abi.ConvertType(vals[0], new(T)).(*T), nil
}

func (q *AtomicQuery) normalized() AtomicQuery {
	return AtomicQuery{
		Schema:                   orZero(q.Schema),
		ClaimPathKey:             orZero(q.ClaimPathKey),
		Operator:                 orZero(q.Operator),
		SlotIndex:                orZero(q.SlotIndex),
		Values:                   zeroNils(q.Values),
		QueryHash:                orZero(q.QueryHash),
		AllowedIssuers:           zeroNils(q.AllowedIssuers),
		CircuitIDs:               emptyIfNil(q.CircuitIDs),
		SkipClaimRevocationCheck: q.SkipClaimRevocationCheck,
		ClaimPathNotExists:       orZero(q.ClaimPathNotExists),
	}
}

func (q *AtomicQuery) scalars() []*big.Int {
	return []*big.Int{q.Schema, q.ClaimPathKey, q.Operator, q.SlotIndex, q.QueryHash, q.ClaimPathNotExists}
}

func (q *AtomicQueryV3) normalized() AtomicQueryV3 {
	return AtomicQueryV3{
		Schema:                   orZero(q.Schema),
		ClaimPathKey:             orZero(q.ClaimPathKey),
		Operator:                 orZero(q.Operator),
		SlotIndex:                orZero(q.SlotIndex),
		Values:                   zeroNils(q.Values),
		QueryHash:                orZero(q.QueryHash),
		AllowedIssuers:           zeroNils(q.AllowedIssuers),
		CircuitIDs:               emptyIfNil(q.CircuitIDs),
		SkipClaimRevocationCheck: q.SkipClaimRevocationCheck,
		ClaimPathNotExists:       orZero(q.ClaimPathNotExists),
		GroupID:                  orZero(q.GroupID),
		NullifierSessionID:       orZero(q.NullifierSessionID),
		ProofType:                orZero(q.ProofType),
		VerifierID:               orZero(q.VerifierID),
	}
}

func (q *AtomicQueryV3) scalars() []*big.Int {
	return []*big.Int{
		q.Schema, q.ClaimPathKey, q.Operator, q.SlotIndex, q.QueryHash, q.ClaimPathNotExists,
		q.GroupID, q.NullifierSessionID, q.ProofType, q.VerifierID,
	}
}

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// checkRanges rejects values the uint256 encoding would silently wrap.
func checkRanges(scalars []*big.Int, lists ...[]*big.Int) error {
	check := func(v *big.Int) error {
		if v.Sign() < 0 || v.Cmp(maxUint256) > 0 {
			return dErrors.New(dErrors.CodeValidation, "credential query field out of uint256 range")
		}
		return nil
	}
	for _, v := range scalars {
		if err := check(v); err != nil {
			return err
		}
	}
	for _, l := range lists {
		for _, v := range l {
			if err := check(v); err != nil {
				return err
			}
		}
	}
	return nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

func zeroNils(in []*big.Int) []*big.Int {
	out := make([]*big.Int, len(in))
	for i, v := range in {
		out[i] = orZero(v)
	}
	return out
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
