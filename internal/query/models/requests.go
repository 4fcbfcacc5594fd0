package models

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"

	"verisbt/internal/validator"
	"verisbt/pkg/validation"
)

// QueryRequest is the wire form of Query.
type QueryRequest struct {
	Metadata     string        `json:"metadata" validate:"max=2048"`
	Payload      hexutil.Bytes `json:"payload" validate:"max=65536"`
	Validator    string        `json:"validator" validate:"max=128"`
	IsStatic     bool          `json:"isStatic"`
	IsGroupLevel bool          `json:"isGroupLevel"`
}

func (r QueryRequest) ToQuery() Query {
	return Query{
		Metadata:     r.Metadata,
		Payload:      []byte(r.Payload),
		Validator:    validator.Ref(r.Validator),
		IsStatic:     r.IsStatic,
		IsGroupLevel: r.IsGroupLevel,
	}
}

type QueryEntryRequest struct {
	Name     string       `json:"name" validate:"required,notblank,max=128"`
	Query    QueryRequest `json:"query"`
	IsAdding bool         `json:"isAdding"`
}

type BuilderEntryRequest struct {
	CircuitID string `json:"circuitId" validate:"required,notblank,max=128"`
	Builder   string `json:"builder" validate:"max=128"`
	IsAdding  bool   `json:"isAdding"`
}

type UpdateQueryBuildersRequest struct {
	Entries []BuilderEntryRequest `json:"entries" validate:"required,min=1,max=100,dive"`
}

func (r *UpdateQueryBuildersRequest) Normalize() {
	for i := range r.Entries {
		r.Entries[i].CircuitID = strings.TrimSpace(r.Entries[i].CircuitID)
		r.Entries[i].Builder = strings.TrimSpace(r.Entries[i].Builder)
	}
}

func (r *UpdateQueryBuildersRequest) Validate() error {
	return validation.Validate(r)
}

func (r *UpdateQueryBuildersRequest) ToEntries() []BuilderEntry {
	return lo.Map(r.Entries, func(e BuilderEntryRequest, _ int) BuilderEntry {
		return BuilderEntry{CircuitID: e.CircuitID, Builder: e.Builder, IsAdding: e.IsAdding}
	})
}

type UpdateDefaultQueriesRequest struct {
	Entries []QueryEntryRequest `json:"entries" validate:"required,min=1,max=100,dive"`
}

func (r *UpdateDefaultQueriesRequest) Normalize() { normalizeQueryEntries(r.Entries) }

func (r *UpdateDefaultQueriesRequest) Validate() error {
	return validation.Validate(r)
}

func (r *UpdateDefaultQueriesRequest) ToEntries() []QueryEntry { return toQueryEntries(r.Entries) }

type UpdateOrganizationQueriesRequest struct {
	Proof   validator.ProofJSON `json:"proof"`
	Entries []QueryEntryRequest `json:"entries" validate:"max=100,dive"`
}

func (r *UpdateOrganizationQueriesRequest) Normalize() { normalizeQueryEntries(r.Entries) }

func (r *UpdateOrganizationQueriesRequest) Validate() error {
	return validation.Validate(r)
}

func (r *UpdateOrganizationQueriesRequest) ToEntries() []QueryEntry { return toQueryEntries(r.Entries) }

type DynamicQueryRequest struct {
	CircuitID string        `json:"circuitId" validate:"required,notblank"`
	Values    []string      `json:"values" validate:"dive,uint256"`
	Payload   hexutil.Bytes `json:"payload" validate:"required"`
}

func (r *DynamicQueryRequest) Validate() error {
	return validation.Validate(r)
}

// BigValues parses Values; Validate has already checked them.
func (r *DynamicQueryRequest) BigValues() []*big.Int {
	return lo.Map(r.Values, func(v string, _ int) *big.Int {
		n, _ := new(big.Int).SetString(v, 10)
		return n
	})
}

type QueryResponse struct {
	Name         string        `json:"name"`
	Metadata     string        `json:"metadata"`
	Payload      hexutil.Bytes `json:"payload"`
	Validator    string        `json:"validator"`
	IsStatic     bool          `json:"isStatic"`
	IsGroupLevel bool          `json:"isGroupLevel"`
}

func NewQueryResponse(name string, q *Query) QueryResponse {
	return QueryResponse{
		Name:         name,
		Metadata:     q.Metadata,
		Payload:      q.Payload,
		Validator:    string(q.Validator),
		IsStatic:     q.IsStatic,
		IsGroupLevel: q.IsGroupLevel,
	}
}

type DynamicQueryResponse struct {
	Payload hexutil.Bytes `json:"payload"`
}

type OrganizationQueriesResponse struct {
	OrganizationID string `json:"organizationId"`
}

type QueryNamesResponse struct {
	Names []string `json:"names"`
}

type BuildersResponse struct {
	Builders []BuilderBinding `json:"builders"`
}

func normalizeQueryEntries(entries []QueryEntryRequest) {
	for i := range entries {
		entries[i].Name = strings.TrimSpace(entries[i].Name)
		entries[i].Query.Validator = strings.TrimSpace(entries[i].Query.Validator)
	}
}

func toQueryEntries(entries []QueryEntryRequest) []QueryEntry {
	return lo.Map(entries, func(e QueryEntryRequest, _ int) QueryEntry {
		return QueryEntry{Name: e.Name, Query: e.Query.ToQuery(), IsAdding: e.IsAdding}
	})
}
