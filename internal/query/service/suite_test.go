package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks QueryStore,BuilderStore,Owner,ValidatorResolver,EventPublisher

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"verisbt/internal/access"
	"verisbt/internal/events"
	"verisbt/internal/query/builder"
	"verisbt/internal/query/codec"
	"verisbt/internal/query/models"
	"verisbt/internal/query/service/mocks"
	"verisbt/internal/query/store"
	"verisbt/internal/validator"
	"verisbt/internal/validator/validatortest"
	id "verisbt/pkg/domain"
)

// =============================================================================
// Queries Manager Test Suite
// =============================================================================
// The service is exercised against the in-memory stores and a mock proof
// validator; the event publisher is a gomock double so emitted events can be
// asserted.

const mockValidator validator.Ref = "mock"

var (
	ownerAddr    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	strangerAddr = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	testOrg      = id.MustOrganizationID("20823307793724103113205494482134473400617001723515577429684573989557567489")
)

type ServiceSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	mockPublisher *mocks.MockEventPublisher
	store         *store.InMemory
	validator     *validatortest.Mock
	service       *Service
	published     []events.Event
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockPublisher = mocks.NewMockEventPublisher(s.ctrl)
	s.published = nil
	s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e events.Event) error {
			s.published = append(s.published, e)
			return nil
		}).AnyTimes()

	s.store = store.NewInMemory()
	s.validator = validatortest.New(builder.CircuitMTPV2OnChain)
	registry := validator.NewRegistry()
	s.Require().NoError(registry.Register(mockValidator, s.validator))

	svc, err := New(s.store, s.store, registry,
		access.NewOwnable(Component, access.NewInMemoryStore()),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithEventPublisher(s.mockPublisher),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) initialize() {
	s.Require().NoError(s.service.Initialize(s.ctx, ownerAddr,
		[]models.BuilderEntry{{CircuitID: builder.CircuitMTPV2OnChain, Builder: builder.AtomicQueryBuilderName, IsAdding: true}},
		[]models.QueryEntry{{Name: models.OrganizationAdminQuery, Query: query("admin"), IsAdding: true}},
	))
	s.published = nil
}

func query(metadata string) models.Query {
	return models.Query{Metadata: metadata, Payload: []byte{0x01}, Validator: mockValidator}
}

func (s *ServiceSuite) payload(values ...int64) []byte {
	vals := make([]*big.Int, len(values))
	for i, v := range values {
		vals[i] = big.NewInt(v)
	}
	p, err := codec.EncodeAtomicQuery(&codec.AtomicQuery{
		Schema:       big.NewInt(1111),
		ClaimPathKey: big.NewInt(2222),
		Operator:     big.NewInt(2),
		SlotIndex:    big.NewInt(3),
		Values:       vals,
		QueryHash:    big.NewInt(0),
		CircuitIDs:   []string{builder.CircuitMTPV2OnChain},
	})
	s.Require().NoError(err)
	return p
}

func (s *ServiceSuite) TestNew() {
	owner := access.NewOwnable(Component, access.NewInMemoryStore())
	registry := validator.NewRegistry()

	s.Run("nil query store returns error", func() {
		_, err := New(nil, s.store, registry, owner)
		s.ErrorContains(err, "query store is required")
	})

	s.Run("nil builder store returns error", func() {
		_, err := New(s.store, nil, registry, owner)
		s.ErrorContains(err, "builder store is required")
	})

	s.Run("nil validator resolver returns error", func() {
		_, err := New(s.store, s.store, nil, owner)
		s.ErrorContains(err, "validator resolver is required")
	})

	s.Run("nil owner returns error", func() {
		_, err := New(s.store, s.store, registry, nil)
		s.ErrorContains(err, "owner registry is required")
	})

	s.Run("default catalog carries both stock builders", func() {
		svc, err := New(s.store, s.store, registry, owner)
		s.Require().NoError(err)
		s.Contains(svc.catalog, builder.AtomicQueryBuilderName)
		s.Contains(svc.catalog, builder.AtomicQueryV3BuilderName)
	})
}
