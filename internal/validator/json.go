package validator

import (
	"fmt"
	"math/big"

	dErrors "verisbt/pkg/domain-errors"
)

// MaxPublicInputs bounds the inputs accepted from the wire.
const MaxPublicInputs = 64

// ProofJSON is the wire form of ZKProof: every coordinate and input is a
// base-10 string, as produced by snarkjs calldata export.
type ProofJSON struct {
	A      [2]string    `json:"a"`
	B      [2][2]string `json:"b"`
	C      [2]string    `json:"c"`
	Inputs []string     `json:"inputs" validate:"required,min=1,max=64"`
}

// ToZKProof parses the wire form.
func (p ProofJSON) ToZKProof() (ZKProof, error) {
	var out ZKProof
	var err error
	for i := range p.A {
		if out.A[i], err = parseScalar(p.A[i], "a"); err != nil {
			return ZKProof{}, err
		}
		if out.C[i], err = parseScalar(p.C[i], "c"); err != nil {
			return ZKProof{}, err
		}
		for j := range p.B[i] {
			if out.B[i][j], err = parseScalar(p.B[i][j], "b"); err != nil {
				return ZKProof{}, err
			}
		}
	}
	if len(p.Inputs) > MaxPublicInputs {
		return ZKProof{}, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many public inputs: max %d allowed", MaxPublicInputs))
	}
	out.Inputs = make([]*big.Int, len(p.Inputs))
	for i, in := range p.Inputs {
		if out.Inputs[i], err = parseScalar(in, "inputs"); err != nil {
			return ZKProof{}, err
		}
	}
	return out, nil
}

// ProofToJSON renders a proof in wire form.
func ProofToJSON(p ZKProof) ProofJSON {
	var out ProofJSON
	for i := range out.A {
		out.A[i] = scalarString(p.A[i])
		out.C[i] = scalarString(p.C[i])
		for j := range out.B[i] {
			out.B[i][j] = scalarString(p.B[i][j])
		}
	}
	out.Inputs = make([]string, len(p.Inputs))
	for i, in := range p.Inputs {
		out.Inputs[i] = scalarString(in)
	}
	return out
}

func parseScalar(s, field string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 || v.BitLen() > 256 {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("proof %s must hold decimal uint256 values", field))
	}
	return v, nil
}

func scalarString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
