package seeder

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"verisbt/internal/access"
	"verisbt/internal/platform/config"
	protocolservice "verisbt/internal/protocol/service"
	protocolstore "verisbt/internal/protocol/store"
	"verisbt/internal/query/builder"
	querymodels "verisbt/internal/query/models"
	queryservice "verisbt/internal/query/service"
	querystore "verisbt/internal/query/store"
	"verisbt/internal/token"
	"verisbt/internal/validator"
	"verisbt/pkg/testutil"
)

var (
	owner   = testutil.TestIDs.Owner
	manager = testutil.TestIDs.Manager
)

func bootstrap() *config.Bootstrap {
	return &config.Bootstrap{
		Validators: []config.ValidatorConfig{
			{Ref: "mock", Kind: config.ValidatorKindMock, CircuitID: builder.CircuitMTPV2OnChain},
		},
		DefaultQueries: []config.QueryConfig{
			{Name: querymodels.OrganizationAdminQuery, Metadata: "admin", Payload: []byte{0x01}, Validator: "mock", IsStatic: true},
			{Name: "DATE_OF_BIRTH", Metadata: "dob", Payload: []byte{0x02}, Validator: "mock", IsStatic: true, IsGroupLevel: true},
		},
		ProtocolIssuers: []string{testutil.TestIDs.Org1.String(), testutil.TestIDs.Org2.String()},
	}
}

type SeederSuite struct {
	suite.Suite
	ctx      context.Context
	boot     *config.Bootstrap
	queries  *queryservice.Service
	factory  *token.Factory
	protocol *protocolservice.Service
	seeder   *Seeder
}

func TestSeederSuite(t *testing.T) {
	suite.Run(t, new(SeederSuite))
}

func (s *SeederSuite) SetupTest() {
	s.ctx = context.Background()
	s.boot = bootstrap()

	registry, err := BuildValidators(s.boot, true)
	s.Require().NoError(err)

	owners := access.NewInMemoryStore()
	qstore := querystore.NewInMemory()
	s.queries, err = queryservice.New(qstore, qstore, registry, access.NewOwnable(queryservice.Component, owners))
	s.Require().NoError(err)

	tokenStore := token.NewInMemoryStore()
	s.factory = token.NewFactory(common.HexToAddress("0x00000000000000000000000000000000000000f4"), tokenStore, access.NewOwnable(token.FactoryComponent, owners))
	s.protocol, err = protocolservice.New(protocolstore.NewInMemory(), s.queries, s.factory, token.NewLedger(tokenStore),
		access.NewOwnable(protocolservice.Component, owners), manager)
	s.Require().NoError(err)

	s.seeder = New(s.queries, s.factory, s.protocol, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *SeederSuite) TestSeedAll() {
	s.Require().NoError(s.seeder.SeedAll(s.ctx, s.boot, Params{Owner: owner, Manager: manager}))

	got, err := s.queries.GetDefaultQuery(s.ctx, "DATE_OF_BIRTH")
	s.Require().NoError(err)
	want := testutil.NewQueryBuilder().WithMetadata("dob").WithPayload([]byte{0x02}).GroupLevel().Build()
	s.True(want.Equal(got))

	for _, circuit := range []string{builder.CircuitMTPV2OnChain, builder.CircuitSigV2OnChain, builder.CircuitV3OnChain} {
		supported, err := s.queries.IsCircuitSupported(s.ctx, circuit)
		s.Require().NoError(err)
		s.True(supported, circuit)
	}

	issuers, err := s.protocol.GetProtocolIssuers(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, len(issuers))

	impl, err := s.factory.Implementation(s.ctx)
	s.Require().NoError(err)
	s.Equal(DefaultImplementation, impl)

	for _, c := range []interface {
		Owner(context.Context) (common.Address, error)
	}{s.queries, s.factory, s.protocol} {
		got, err := c.Owner(s.ctx)
		s.Require().NoError(err)
		s.Equal(owner, got)
	}
}

func (s *SeederSuite) TestSeedAllIsRestartSafe() {
	p := Params{Owner: owner, Manager: manager}
	s.Require().NoError(s.seeder.SeedAll(s.ctx, s.boot, p))

	s.boot.ProtocolIssuers = append(s.boot.ProtocolIssuers, "999")
	s.Require().NoError(s.seeder.SeedAll(s.ctx, s.boot, p))

	issuers, err := s.protocol.GetProtocolIssuers(s.ctx)
	s.Require().NoError(err)
	s.Len(issuers, 2, "issuers are only seeded on first start")
}

func (s *SeederSuite) TestSeedAllRejectsBadIssuer() {
	s.boot.ProtocolIssuers = []string{"not-a-number"}
	err := s.seeder.SeedAll(s.ctx, s.boot, Params{Owner: owner, Manager: manager})
	s.Require().Error(err)

	_, err = s.queries.Owner(s.ctx)
	s.Error(err, "nothing is initialized when the file is invalid")
}

func TestBuilderEntriesFromFile(t *testing.T) {
	boot := &config.Bootstrap{Builders: []config.BuilderConfig{
		{CircuitID: "custom", Builder: builder.AtomicQueryV3BuilderName},
	}}
	entries, err := BuilderEntries(boot)
	require.NoError(t, err)
	assert.Equal(t, []querymodels.BuilderEntry{{CircuitID: "custom", Builder: builder.AtomicQueryV3BuilderName, IsAdding: true}}, entries)

	boot.Builders[0].Builder = "NoSuchBuilder"
	_, err = BuilderEntries(boot)
	require.Error(t, err)
}

func TestBuildValidators(t *testing.T) {
	boot := bootstrap()

	_, err := BuildValidators(boot, false)
	require.Error(t, err, "mock validators need allowMock")

	reg, err := BuildValidators(boot, true)
	require.NoError(t, err)
	assert.Equal(t, []validator.Ref{"mock"}, reg.Refs())
}

func TestBuildGroth16Validator(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vk.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"protocol":"plonk","IC":[]}`), 0o600))

	boot := &config.Bootstrap{Validators: []config.ValidatorConfig{
		{Ref: "mtp", Kind: config.ValidatorKindGroth16, CircuitID: builder.CircuitMTPV2OnChain, VerifyingKey: path},
	}}
	_, err := BuildValidators(boot, false)
	require.Error(t, err, "malformed key is rejected")

	boot.Validators[0].VerifyingKey = filepath.Join(dir, "missing.json")
	_, err = BuildValidators(boot, false)
	require.Error(t, err)
}
