// Package groth16 checks Groth16 proofs over BN254 against a snarkjs
// verification key.
package groth16

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	ErrMalformedKey   = errors.New("malformed verifying key")
	ErrMalformedProof = errors.New("malformed proof")
	ErrInputCount     = errors.New("public input count mismatch")
	ErrInvalidProof   = errors.New("pairing check failed")
)

// VerifyingKey is a parsed Groth16 verifying key.
type VerifyingKey struct {
	Alpha bn254.G1Affine
	Beta  bn254.G2Affine
	Gamma bn254.G2Affine
	Delta bn254.G2Affine
	IC    []bn254.G1Affine
}

// PublicInputs is the number of public inputs the key accepts.
func (vk *VerifyingKey) PublicInputs() int {
	return len(vk.IC) - 1
}

// snarkjsKey mirrors the verification_key.json layout emitted by snarkjs.
type snarkjsKey struct {
	Protocol string     `json:"protocol"`
	Curve    string     `json:"curve"`
	NPublic  int        `json:"nPublic"`
	Alpha    []string   `json:"vk_alpha_1"`
	Beta     [][]string `json:"vk_beta_2"`
	Gamma    [][]string `json:"vk_gamma_2"`
	Delta    [][]string `json:"vk_delta_2"`
	IC       [][]string `json:"IC"`
}

// ParseSnarkJSKey parses a snarkjs verification key.
func ParseSnarkJSKey(raw []byte) (*VerifyingKey, error) {
	var k snarkjsKey
	if err := json.Unmarshal(raw, &k); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	if k.Protocol != "" && k.Protocol != "groth16" {
		return nil, fmt.Errorf("%w: unsupported protocol %q", ErrMalformedKey, k.Protocol)
	}
	if k.Curve != "" && k.Curve != "bn128" && k.Curve != "bn254" {
		return nil, fmt.Errorf("%w: unsupported curve %q", ErrMalformedKey, k.Curve)
	}
	if len(k.IC) == 0 || (k.NPublic != 0 && k.NPublic != len(k.IC)-1) {
		return nil, fmt.Errorf("%w: IC length does not match nPublic", ErrMalformedKey)
	}

	vk := &VerifyingKey{IC: make([]bn254.G1Affine, len(k.IC))}
	var err error
	if vk.Alpha, err = g1FromStrings(k.Alpha); err != nil {
		return nil, fmt.Errorf("%w: alpha: %v", ErrMalformedKey, err)
	}
	if vk.Beta, err = g2FromSnarkJS(k.Beta); err != nil {
		return nil, fmt.Errorf("%w: beta: %v", ErrMalformedKey, err)
	}
	if vk.Gamma, err = g2FromSnarkJS(k.Gamma); err != nil {
		return nil, fmt.Errorf("%w: gamma: %v", ErrMalformedKey, err)
	}
	if vk.Delta, err = g2FromSnarkJS(k.Delta); err != nil {
		return nil, fmt.Errorf("%w: delta: %v", ErrMalformedKey, err)
	}
	for i, p := range k.IC {
		if vk.IC[i], err = g1FromStrings(p); err != nil {
			return nil, fmt.Errorf("%w: IC[%d]: %v", ErrMalformedKey, i, err)
		}
	}
	return vk, nil
}

// Proof is a Groth16 proof with curve points already decoded.
type Proof struct {
	A bn254.G1Affine
	B bn254.G2Affine
	C bn254.G1Affine
}

// ProofFromCalldata decodes a proof given as Solidity verifier calldata,
// where each Fp2 coordinate of B is ordered (c1, c0).
func ProofFromCalldata(a [2]*big.Int, b [2][2]*big.Int, c [2]*big.Int) (*Proof, error) {
	var p Proof
	var err error
	if p.A, err = g1FromBig(a[0], a[1]); err != nil {
		return nil, fmt.Errorf("%w: A: %v", ErrMalformedProof, err)
	}
	if p.B, err = g2FromBig(b[0][1], b[0][0], b[1][1], b[1][0]); err != nil {
		return nil, fmt.Errorf("%w: B: %v", ErrMalformedProof, err)
	}
	if p.C, err = g1FromBig(c[0], c[1]); err != nil {
		return nil, fmt.Errorf("%w: C: %v", ErrMalformedProof, err)
	}
	return &p, nil
}

// Verify runs the Groth16 pairing equation
// e(-A, B) * e(alpha, beta) * e(vk_x, gamma) * e(C, delta) == 1.
func Verify(vk *VerifyingKey, proof *Proof, inputs []*big.Int) error {
	if len(inputs) != vk.PublicInputs() {
		return fmt.Errorf("%w: got %d, want %d", ErrInputCount, len(inputs), vk.PublicInputs())
	}

	r := fr.Modulus()
	var acc bn254.G1Jac
	acc.FromAffine(&vk.IC[0])
	for i, in := range inputs {
		if in == nil || in.Sign() < 0 || in.Cmp(r) >= 0 {
			return fmt.Errorf("%w: input %d is not a field element", ErrMalformedProof, i)
		}
		var term bn254.G1Jac
		term.FromAffine(&vk.IC[i+1])
		term.ScalarMultiplication(&term, in)
		acc.AddAssign(&term)
	}
	var vkX bn254.G1Affine
	vkX.FromJacobian(&acc)

	var negA bn254.G1Affine
	negA.Neg(&proof.A)

	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{negA, vk.Alpha, vkX, proof.C},
		[]bn254.G2Affine{proof.B, vk.Beta, vk.Gamma, vk.Delta},
	)
	if err != nil {
		return fmt.Errorf("pairing: %w", err)
	}
	if !ok {
		return ErrInvalidProof
	}
	return nil
}

// Checker binds a verifying key so it can be plugged into a circuit validator.
type Checker struct {
	vk *VerifyingKey
}

func NewChecker(vk *VerifyingKey) *Checker {
	return &Checker{vk: vk}
}

func (c *Checker) Check(a [2]*big.Int, b [2][2]*big.Int, cc [2]*big.Int, inputs []*big.Int) error {
	proof, err := ProofFromCalldata(a, b, cc)
	if err != nil {
		return err
	}
	return Verify(c.vk, proof, inputs)
}

func g1FromStrings(s []string) (bn254.G1Affine, error) {
	if len(s) < 2 {
		return bn254.G1Affine{}, errors.New("expected at least two coordinates")
	}
	x, err := parseBig(s[0])
	if err != nil {
		return bn254.G1Affine{}, err
	}
	y, err := parseBig(s[1])
	if err != nil {
		return bn254.G1Affine{}, err
	}
	return g1FromBig(x, y)
}

// g2FromSnarkJS reads [[x.c0, x.c1], [y.c0, y.c1], ...].
func g2FromSnarkJS(s [][]string) (bn254.G2Affine, error) {
	if len(s) < 2 || len(s[0]) != 2 || len(s[1]) != 2 {
		return bn254.G2Affine{}, errors.New("expected two Fp2 coordinates")
	}
	vals := make([]*big.Int, 4)
	for i, raw := range []string{s[0][0], s[0][1], s[1][0], s[1][1]} {
		v, err := parseBig(raw)
		if err != nil {
			return bn254.G2Affine{}, err
		}
		vals[i] = v
	}
	return g2FromBig(vals[0], vals[1], vals[2], vals[3])
}

func g1FromBig(x, y *big.Int) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if err := setFp(&p.X, x); err != nil {
		return p, err
	}
	if err := setFp(&p.Y, y); err != nil {
		return p, err
	}
	if !p.IsOnCurve() {
		return p, errors.New("point is not on G1")
	}
	return p, nil
}

func g2FromBig(xA0, xA1, yA0, yA1 *big.Int) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	for _, c := range []struct {
		dst *fp.Element
		v   *big.Int
	}{{&p.X.A0, xA0}, {&p.X.A1, xA1}, {&p.Y.A0, yA0}, {&p.Y.A1, yA1}} {
		if err := setFp(c.dst, c.v); err != nil {
			return p, err
		}
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return p, errors.New("point is not in G2")
	}
	return p, nil
}

func setFp(dst *fp.Element, v *big.Int) error {
	if v == nil || v.Sign() < 0 || v.Cmp(fp.Modulus()) >= 0 {
		return errors.New("coordinate is not a base field element")
	}
	dst.SetBigInt(v)
	return nil
}

func parseBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}
