package validator

import (
	"context"
	"math/big"
	"slices"

	"verisbt/internal/query/codec"
	id "verisbt/pkg/domain"
)

// InputLayout names the public-input positions a circuit exposes.
type InputLayout struct {
	QueryHash int
	IssuerID  int
}

var (
	// LayoutV2OnChain matches credentialAtomicQuery{MTP,Sig}V2OnChain.
	LayoutV2OnChain = InputLayout{QueryHash: 2, IssuerID: 6}
	// LayoutV3OnChain matches credentialAtomicQueryV3OnChain-beta.0.
	LayoutV3OnChain = InputLayout{QueryHash: 1, IssuerID: 10}
)

func (l InputLayout) minInputs() int {
	return max(l.QueryHash, l.IssuerID) + 1
}

// ProofChecker runs the cryptographic proof check.
type ProofChecker interface {
	Check(a [2]*big.Int, b [2][2]*big.Int, c [2]*big.Int, inputs []*big.Int) error
}

// CircuitValidator binds a proof to one stored query. The proof must come
// from a circuit the query allows and commit to the query's hash; when the
// query lists allowed issuers the credential issuer must be one of them.
// The credential issuer is the identity returned on success.
type CircuitValidator struct {
	circuitID string
	v3        bool
	layout    InputLayout
	checker   ProofChecker
}

// NewCircuitValidator builds a validator for circuitID. v3 selects the V3
// payload schema.
func NewCircuitValidator(circuitID string, v3 bool, layout InputLayout, checker ProofChecker) *CircuitValidator {
	return &CircuitValidator{circuitID: circuitID, v3: v3, layout: layout, checker: checker}
}

func (v *CircuitValidator) CircuitID() string { return v.circuitID }

func (v *CircuitValidator) Verify(ctx context.Context, proof ZKProof, payload []byte) (id.OrganizationID, error) {
	if err := ctx.Err(); err != nil {
		return id.OrganizationID{}, err
	}
	q, err := v.decode(payload)
	if err != nil {
		return id.OrganizationID{}, &VerificationFailedError{Detail: "malformed query payload", Err: err}
	}
	if !slices.Contains(q.circuitIDs, v.circuitID) {
		return id.OrganizationID{}, Rejected("circuit %s is not allowed by the query", v.circuitID)
	}
	if len(proof.Inputs) < v.layout.minInputs() {
		return id.OrganizationID{}, Rejected("expected at least %d public inputs, got %d", v.layout.minInputs(), len(proof.Inputs))
	}
	if got := proof.Input(v.layout.QueryHash); got == nil || got.Cmp(q.queryHash) != 0 {
		return id.OrganizationID{}, Rejected("query hash does not match")
	}
	if len(q.allowedIssuers) > 0 {
		issuer := proof.Input(v.layout.IssuerID)
		if !slices.ContainsFunc(q.allowedIssuers, func(a *big.Int) bool { return issuer != nil && a.Cmp(issuer) == 0 }) {
			return id.OrganizationID{}, Rejected("issuer is not allowed")
		}
	}
	if err := v.checker.Check(proof.A, proof.B, proof.C, proof.Inputs); err != nil {
		return id.OrganizationID{}, &VerificationFailedError{Detail: "invalid proof", Err: err}
	}

	subject, err := id.OrganizationIDFromBig(proof.Input(v.layout.IssuerID))
	if err != nil {
		return id.OrganizationID{}, &VerificationFailedError{Detail: "invalid issuer identity", Err: err}
	}
	return subject, nil
}

type boundQuery struct {
	queryHash      *big.Int
	allowedIssuers []*big.Int
	circuitIDs     []string
}

func (v *CircuitValidator) decode(payload []byte) (*boundQuery, error) {
	if v.v3 {
		q, err := codec.DecodeAtomicQueryV3(payload)
		if err != nil {
			return nil, err
		}
		return &boundQuery{queryHash: q.QueryHash, allowedIssuers: q.AllowedIssuers, circuitIDs: q.CircuitIDs}, nil
	}
	q, err := codec.DecodeAtomicQuery(payload)
	if err != nil {
		return nil, err
	}
	return &boundQuery{queryHash: q.QueryHash, allowedIssuers: q.AllowedIssuers, circuitIDs: q.CircuitIDs}, nil
}
