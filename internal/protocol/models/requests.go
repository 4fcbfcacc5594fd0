package models

import (
	"math/big"
	"strings"

	"github.com/samber/lo"

	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
	"verisbt/pkg/validation"
)

// ProofRequestJSON is the wire form of ProofRequest.
type ProofRequestJSON struct {
	OrganizationID string              `json:"organizationId" validate:"required,uint256"`
	GroupID        string              `json:"groupId" validate:"omitempty,uint256"`
	QueryName      string              `json:"queryName" validate:"required,notblank,max=128"`
	Proof          validator.ProofJSON `json:"proof"`
}

func (r *ProofRequestJSON) normalize() {
	r.OrganizationID = strings.TrimSpace(r.OrganizationID)
	r.GroupID = strings.TrimSpace(r.GroupID)
	r.QueryName = strings.TrimSpace(r.QueryName)
}

func (r ProofRequestJSON) ToProofRequest() (ProofRequest, error) {
	org, err := id.ParseOrganizationID(r.OrganizationID)
	if err != nil {
		return ProofRequest{}, err
	}
	group, err := id.ParseGroupID(r.GroupID)
	if err != nil {
		return ProofRequest{}, err
	}
	proof, err := r.Proof.ToZKProof()
	if err != nil {
		return ProofRequest{}, err
	}
	return ProofRequest{OrganizationID: org, Proof: proof, GroupID: group, QueryName: r.QueryName}, nil
}

type UpdateProtocolIssuersRequest struct {
	OrganizationIDs []string `json:"organizationIds" validate:"required,min=1,max=100,dive,uint256"`
	IsAdding        bool     `json:"isAdding"`
}

func (r *UpdateProtocolIssuersRequest) Normalize() {
	r.OrganizationIDs = lo.Map(r.OrganizationIDs, func(s string, _ int) string { return strings.TrimSpace(s) })
}

func (r *UpdateProtocolIssuersRequest) Validate() error {
	return validation.Validate(r)
}

// IDs parses OrganizationIDs; Validate has already checked them.
func (r *UpdateProtocolIssuersRequest) IDs() []id.OrganizationID {
	return lo.Map(r.OrganizationIDs, func(s string, _ int) id.OrganizationID {
		org, _ := id.ParseOrganizationID(s)
		return org
	})
}

type DeployVerifiedSBTRequest struct {
	Request ProofRequestJSON `json:"request"`
	Name    string           `json:"name" validate:"required,notblank,max=128"`
	Symbol  string           `json:"symbol" validate:"required,notblank,max=32"`
	BaseURI string           `json:"baseUri" validate:"max=2048"`
}

func (r *DeployVerifiedSBTRequest) Normalize() {
	r.Request.normalize()
	r.Name = strings.TrimSpace(r.Name)
	r.Symbol = strings.TrimSpace(r.Symbol)
	r.BaseURI = strings.TrimSpace(r.BaseURI)
}

func (r *DeployVerifiedSBTRequest) Validate() error {
	return validation.Validate(r)
}

type ChangeBaseTokenURIRequest struct {
	Request ProofRequestJSON `json:"request"`
	BaseURI string           `json:"baseUri" validate:"max=2048"`
}

func (r *ChangeBaseTokenURIRequest) Normalize() {
	r.Request.normalize()
	r.BaseURI = strings.TrimSpace(r.BaseURI)
}

func (r *ChangeBaseTokenURIRequest) Validate() error {
	return validation.Validate(r)
}

type MintItemRequest struct {
	Request         ProofRequestJSON `json:"request"`
	ClaimFieldValue string           `json:"claimFieldValue" validate:"omitempty,uint256"`
}

// MintVerifiedSBTRequest leaves the empty batch to the service, which
// rejects it with its own reason.
type MintVerifiedSBTRequest struct {
	Items []MintItemRequest `json:"items" validate:"max=50,dive"`
}

func (r *MintVerifiedSBTRequest) Normalize() {
	for i := range r.Items {
		r.Items[i].Request.normalize()
		r.Items[i].ClaimFieldValue = strings.TrimSpace(r.Items[i].ClaimFieldValue)
	}
}

func (r *MintVerifiedSBTRequest) Validate() error {
	return validation.Validate(r)
}

func (r *MintVerifiedSBTRequest) ToItems() ([]MintItem, error) {
	items := make([]MintItem, 0, len(r.Items))
	for _, it := range r.Items {
		req, err := it.Request.ToProofRequest()
		if err != nil {
			return nil, err
		}
		value := new(big.Int)
		if it.ClaimFieldValue != "" {
			value.SetString(it.ClaimFieldValue, 10)
		}
		items = append(items, MintItem{Request: req, ClaimFieldValue: value})
	}
	return items, nil
}

type IssuersResponse struct {
	Issuers []string `json:"issuers"`
}

type IssuerResponse struct {
	OrganizationID string `json:"organizationId"`
	IsIssuer       bool   `json:"isIssuer"`
}

type TokenResponse struct {
	Token          string `json:"token"`
	TokenKey       string `json:"tokenKey"`
	OrganizationID string `json:"organizationId,omitempty"`
	GroupID        string `json:"groupId,omitempty"`
	QueryName      string `json:"queryName,omitempty"`
}

func NewTokenResponse(b *Binding) TokenResponse {
	return TokenResponse{
		Token:          b.Token.Hex(),
		TokenKey:       b.Key.String(),
		OrganizationID: b.OrganizationID.String(),
		GroupID:        b.GroupID.String(),
		QueryName:      b.QueryName,
	}
}

type MintedResponse struct {
	Token     string `json:"token"`
	TokenID   uint64 `json:"tokenId"`
	QueryName string `json:"queryName"`
}

type MintResponse struct {
	Minted []MintedResponse `json:"minted"`
}

func NewMintResponse(minted []Minted) MintResponse {
	return MintResponse{Minted: lo.Map(minted, func(m Minted, _ int) MintedResponse {
		return MintedResponse{Token: m.Token.Hex(), TokenID: m.TokenID, QueryName: m.QueryName}
	})}
}

type SBTResponse struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	BaseURI     string `json:"baseUri"`
	Version     string `json:"version"`
	NextTokenID uint64 `json:"nextTokenId"`
}

type SBTOwnerResponse struct {
	Token    string `json:"token"`
	TokenID  uint64 `json:"tokenId"`
	Owner    string `json:"owner"`
	TokenURI string `json:"tokenUri"`
}
