// Package fieldhash exposes the BN254 field hash used to commit to credential
// queries and to derive token keys.
package fieldhash

import (
	"fmt"
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

// MaxValuesLength is the fixed width of a query's values vector once padded.
const MaxValuesLength = 64

// spongeWidth is the frame size of the sponge; one slot carries the previous digest.
const spongeWidth = 6

// Hasher is the field hash used by query builders and the protocol manager.
type Hasher interface {
	// Hash hashes up to 16 field elements.
	Hash(inputs ...*big.Int) (*big.Int, error)
	// Hash6 hashes exactly six field elements.
	Hash6(inputs [6]*big.Int) (*big.Int, error)
	// SpongeHash absorbs a padded values vector.
	SpongeHash(values [MaxValuesLength]*big.Int) (*big.Int, error)
}

// Poseidon implements Hasher with the iden3 Poseidon permutation.
type Poseidon struct{}

// NewPoseidon returns the Poseidon hasher.
func NewPoseidon() Poseidon {
	return Poseidon{}
}

func (Poseidon) Hash(inputs ...*big.Int) (*big.Int, error) {
	h, err := poseidon.Hash(normalize(inputs))
	if err != nil {
		return nil, fmt.Errorf("poseidon hash: %w", err)
	}
	return h, nil
}

func (p Poseidon) Hash6(inputs [6]*big.Int) (*big.Int, error) {
	return p.Hash(inputs[:]...)
}

// SpongeHash feeds values through a 6-wide frame. Each full frame is hashed
// and the digest carried into slot 0 of the next; a partial tail frame is
// hashed at the end.
func (Poseidon) SpongeHash(values [MaxValuesLength]*big.Int) (*big.Int, error) {
	h, err := poseidon.SpongeHashX(normalize(values[:]), spongeWidth)
	if err != nil {
		return nil, fmt.Errorf("poseidon sponge: %w", err)
	}
	return h, nil
}

// PadValues right-pads values with zeros to MaxValuesLength.
// Callers must reject longer inputs before padding.
func PadValues(values []*big.Int) ([MaxValuesLength]*big.Int, error) {
	var out [MaxValuesLength]*big.Int
	if len(values) > MaxValuesLength {
		return out, fmt.Errorf("values length %d exceeds %d", len(values), MaxValuesLength)
	}
	for i := range out {
		if i < len(values) {
			out[i] = orZero(values[i])
			continue
		}
		out[i] = new(big.Int)
	}
	return out, nil
}

// InField reports whether v is a canonical element of the BN254 scalar field.
func InField(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(FieldModulus()) < 0
}

// FieldModulus returns the BN254 scalar field order.
func FieldModulus() *big.Int {
	return new(big.Int).Set(fieldQ)
}

// Reduce maps an arbitrary non-negative integer into the field.
func Reduce(v *big.Int) *big.Int {
	return new(big.Int).Mod(orZero(v), fieldQ)
}

var fieldQ, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

func normalize(inputs []*big.Int) []*big.Int {
	out := make([]*big.Int, len(inputs))
	for i, v := range inputs {
		out[i] = orZero(v)
	}
	return out
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
