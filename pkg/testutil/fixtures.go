package testutil

import (
	"github.com/ethereum/go-ethereum/common"

	querymodels "verisbt/internal/query/models"
	"verisbt/internal/validator"
	id "verisbt/pkg/domain"
)

// TestIDs provides deterministic identities for tests.
var TestIDs = struct {
	Org1    id.OrganizationID
	Org2    id.OrganizationID
	Group1  id.GroupID
	Group2  id.GroupID
	Owner   common.Address
	Manager common.Address
	Holder1 common.Address
	Holder2 common.Address
}{
	Org1:    id.MustOrganizationID("20823307793724103113205494482134473400617001723515577429684573989557567489"),
	Org2:    id.MustOrganizationID("123"),
	Group1:  mustGroup("2211"),
	Group2:  mustGroup("3311"),
	Owner:   common.HexToAddress("0x00000000000000000000000000000000000000a1"),
	Manager: common.HexToAddress("0x00000000000000000000000000000000000000c3"),
	Holder1: common.HexToAddress("0x00000000000000000000000000000000000000d5"),
	Holder2: common.HexToAddress("0x00000000000000000000000000000000000000d6"),
}

func mustGroup(s string) id.GroupID {
	g, err := id.ParseGroupID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// QueryBuilder provides a fluent interface for building stored queries.
type QueryBuilder struct {
	query querymodels.Query
}

// NewQueryBuilder starts from a static organization-level query bound to
// the "mock" validator.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{query: querymodels.Query{
		Metadata:  "test query",
		Payload:   []byte{0x01},
		Validator: "mock",
		IsStatic:  true,
	}}
}

func (b *QueryBuilder) WithMetadata(metadata string) *QueryBuilder {
	b.query.Metadata = metadata
	return b
}

func (b *QueryBuilder) WithPayload(payload []byte) *QueryBuilder {
	b.query.Payload = payload
	return b
}

func (b *QueryBuilder) WithValidator(ref validator.Ref) *QueryBuilder {
	b.query.Validator = ref
	return b
}

// Dynamic marks the query as rebuilt with the claimed value at mint time.
func (b *QueryBuilder) Dynamic() *QueryBuilder {
	b.query.IsStatic = false
	return b
}

func (b *QueryBuilder) GroupLevel() *QueryBuilder {
	b.query.IsGroupLevel = true
	return b
}

func (b *QueryBuilder) Build() *querymodels.Query {
	q := b.query
	return &q
}
