package groth16

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a verifying key from known discrete logs so a valid proof can
// be assembled without a circuit: with A = a*G1, B = b*G2 and vk_x = x*G1 the
// pairing equation holds iff c = (a*b - alpha*beta - x*gamma) / delta mod r.
type fixture struct {
	vk     *VerifyingKey
	logs   struct{ alpha, beta, gamma, delta *big.Int }
	icLogs []*big.Int
}

func newFixture(t *testing.T, publicInputs int) *fixture {
	t.Helper()
	_, _, g1, g2 := bn254.Generators()
	f := &fixture{vk: &VerifyingKey{}}
	f.logs.alpha = big.NewInt(11)
	f.logs.beta = big.NewInt(13)
	f.logs.gamma = big.NewInt(17)
	f.logs.delta = big.NewInt(19)

	f.vk.Alpha.ScalarMultiplication(&g1, f.logs.alpha)
	f.vk.Beta.ScalarMultiplication(&g2, f.logs.beta)
	f.vk.Gamma.ScalarMultiplication(&g2, f.logs.gamma)
	f.vk.Delta.ScalarMultiplication(&g2, f.logs.delta)

	f.vk.IC = make([]bn254.G1Affine, publicInputs+1)
	f.icLogs = make([]*big.Int, publicInputs+1)
	for i := range f.vk.IC {
		f.icLogs[i] = big.NewInt(int64(23 + i))
		f.vk.IC[i].ScalarMultiplication(&g1, f.icLogs[i])
	}
	return f
}

// prove returns calldata-form proof components for inputs.
func (f *fixture) prove(inputs []*big.Int) ([2]*big.Int, [2][2]*big.Int, [2]*big.Int) {
	_, _, g1, g2 := bn254.Generators()
	r := fr.Modulus()
	a, b := big.NewInt(5), big.NewInt(7)

	x := new(big.Int).Set(f.icLogs[0])
	for i, in := range inputs {
		x.Add(x, new(big.Int).Mul(in, f.icLogs[i+1]))
	}
	x.Mod(x, r)

	c := new(big.Int).Mul(a, b)
	c.Sub(c, new(big.Int).Mul(f.logs.alpha, f.logs.beta))
	c.Sub(c, new(big.Int).Mul(x, f.logs.gamma))
	c.Mul(c, new(big.Int).ModInverse(f.logs.delta, r))
	c.Mod(c, r)

	var pa, pc bn254.G1Affine
	var pb bn254.G2Affine
	pa.ScalarMultiplication(&g1, a)
	pb.ScalarMultiplication(&g2, b)
	pc.ScalarMultiplication(&g1, c)

	big0 := func() *big.Int { return new(big.Int) }
	return [2]*big.Int{pa.X.BigInt(big0()), pa.Y.BigInt(big0())},
		[2][2]*big.Int{
			{pb.X.A1.BigInt(big0()), pb.X.A0.BigInt(big0())},
			{pb.Y.A1.BigInt(big0()), pb.Y.A0.BigInt(big0())},
		},
		[2]*big.Int{pc.X.BigInt(big0()), pc.Y.BigInt(big0())}
}

func TestCheckerAcceptsValidProof(t *testing.T) {
	f := newFixture(t, 3)
	inputs := []*big.Int{big.NewInt(1), big.NewInt(99), big.NewInt(12345)}
	a, b, c := f.prove(inputs)

	require.NoError(t, NewChecker(f.vk).Check(a, b, c, inputs))
}

func TestCheckerRejectsTamperedInput(t *testing.T) {
	f := newFixture(t, 2)
	inputs := []*big.Int{big.NewInt(1), big.NewInt(2)}
	a, b, c := f.prove(inputs)

	err := NewChecker(f.vk).Check(a, b, c, []*big.Int{big.NewInt(1), big.NewInt(3)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidProof))
}

func TestCheckerRejectsWrongInputCount(t *testing.T) {
	f := newFixture(t, 2)
	a, b, c := f.prove([]*big.Int{big.NewInt(1), big.NewInt(2)})

	err := NewChecker(f.vk).Check(a, b, c, []*big.Int{big.NewInt(1)})
	assert.True(t, errors.Is(err, ErrInputCount))
}

func TestCheckerRejectsOffCurvePoint(t *testing.T) {
	f := newFixture(t, 1)
	inputs := []*big.Int{big.NewInt(4)}
	a, b, c := f.prove(inputs)
	a[1] = new(big.Int).Add(a[1], big.NewInt(1))

	err := NewChecker(f.vk).Check(a, b, c, inputs)
	assert.True(t, errors.Is(err, ErrMalformedProof))
}

func TestCheckerRejectsUnswappedB(t *testing.T) {
	f := newFixture(t, 1)
	inputs := []*big.Int{big.NewInt(4)}
	a, b, c := f.prove(inputs)
	b[0][0], b[0][1] = b[0][1], b[0][0]
	b[1][0], b[1][1] = b[1][1], b[1][0]

	require.Error(t, NewChecker(f.vk).Check(a, b, c, inputs))
}

func TestParseSnarkJSKey(t *testing.T) {
	f := newFixture(t, 1)
	g1 := func(p bn254.G1Affine) []string {
		return []string{p.X.String(), p.Y.String(), "1"}
	}
	g2 := func(p bn254.G2Affine) [][]string {
		return [][]string{{p.X.A0.String(), p.X.A1.String()}, {p.Y.A0.String(), p.Y.A1.String()}, {"1", "0"}}
	}
	raw, err := json.Marshal(map[string]any{
		"protocol":   "groth16",
		"curve":      "bn128",
		"nPublic":    1,
		"vk_alpha_1": g1(f.vk.Alpha),
		"vk_beta_2":  g2(f.vk.Beta),
		"vk_gamma_2": g2(f.vk.Gamma),
		"vk_delta_2": g2(f.vk.Delta),
		"IC":         [][]string{g1(f.vk.IC[0]), g1(f.vk.IC[1])},
	})
	require.NoError(t, err)

	vk, err := ParseSnarkJSKey(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, vk.PublicInputs())
	assert.True(t, vk.Beta.Equal(&f.vk.Beta))

	inputs := []*big.Int{big.NewInt(8)}
	a, b, c := f.prove(inputs)
	require.NoError(t, NewChecker(vk).Check(a, b, c, inputs))
}

func TestParseSnarkJSKeyRejectsMismatchedIC(t *testing.T) {
	_, err := ParseSnarkJSKey([]byte(`{"protocol":"groth16","nPublic":3,"IC":[["1","2","1"]]}`))
	assert.True(t, errors.Is(err, ErrMalformedKey))

	_, err = ParseSnarkJSKey([]byte(`{"protocol":"plonk","IC":[["1","2","1"]]}`))
	assert.True(t, errors.Is(err, ErrMalformedKey))
}
