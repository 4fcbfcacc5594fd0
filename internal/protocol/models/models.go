package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
)

// ProofRequest is a proof-gated request on behalf of an organization.
// OrganizationID is caller-supplied and only trusted after it matches the
// identity returned by proof verification.
type ProofRequest struct {
	OrganizationID id.OrganizationID
	Proof          validator.ZKProof
	GroupID        id.GroupID
	QueryName      string
}

// MintItem requests one token for the caller. ClaimFieldValue is embedded
// into non-static queries before the proof is checked.
type MintItem struct {
	Request         ProofRequest
	ClaimFieldValue *big.Int
}

// Binding maps a token key to the token deployed for it. Bindings are
// created once and never change.
type Binding struct {
	Key            id.TokenKey
	Token          common.Address
	OrganizationID id.OrganizationID
	GroupID        id.GroupID
	QueryName      string
	CreatedAt      time.Time
}

// Minted reports one token issued by MintVerifiedSBT.
type Minted struct {
	Token     common.Address
	TokenID   uint64
	QueryName string
}
