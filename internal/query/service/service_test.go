package service

import (
	"context"
	"errors"
	"math/big"

	"go.uber.org/mock/gomock"

	"verisbt/internal/access"
	"verisbt/internal/events"
	"verisbt/internal/fieldhash"
	"verisbt/internal/query/builder"
	"verisbt/internal/query/codec"
	"verisbt/internal/query/models"
	"verisbt/internal/query/service/mocks"
	"verisbt/internal/validator"
	"verisbt/internal/validator/validatortest"
	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
)

func (s *ServiceSuite) TestInitialize() {
	s.Run("sets owner, builders and defaults", func() {
		s.initialize()

		owner, err := s.service.Owner(s.ctx)
		s.Require().NoError(err)
		s.Equal(ownerAddr, owner)

		supported, err := s.service.IsCircuitSupported(s.ctx, builder.CircuitMTPV2OnChain)
		s.Require().NoError(err)
		s.True(supported)

		exists, err := s.service.IsDefaultQueryExist(s.ctx, models.OrganizationAdminQuery)
		s.Require().NoError(err)
		s.True(exists)
	})

	s.Run("second call is rejected", func() {
		err := s.service.Initialize(s.ctx, strangerAddr, nil, nil)
		var already *access.AlreadyInitializedError
		s.Require().ErrorAs(err, &already)
		s.Equal("InvalidInitialization", dErrors.ReasonOf(err))

		owner, err := s.service.Owner(s.ctx)
		s.Require().NoError(err)
		s.Equal(ownerAddr, owner)
	})
}

func (s *ServiceSuite) TestInitializeEmitsEvents() {
	s.Require().NoError(s.service.Initialize(s.ctx, ownerAddr,
		[]models.BuilderEntry{{CircuitID: builder.CircuitMTPV2OnChain, Builder: builder.AtomicQueryBuilderName, IsAdding: true}},
		[]models.QueryEntry{{Name: models.OrganizationAdminQuery, Query: query("admin"), IsAdding: true}},
	))

	types := make([]events.Type, 0, len(s.published))
	for _, e := range s.published {
		types = append(types, e.Type)
	}
	s.Equal([]events.Type{events.OwnershipTransferred, events.QueryBuildersUpdated, events.DefaultQueriesUpdated}, types)
	s.Equal(builder.CircuitMTPV2OnChain, s.published[1].Attributes["circuit_id"])
	s.Equal(models.OrganizationAdminQuery, s.published[2].Attributes["query_name"])
	s.Equal("global", s.published[2].Attributes["organization_id"])
}

func (s *ServiceSuite) TestUpdateQueryBuilders() {
	s.initialize()

	s.Run("non-owner is rejected", func() {
		err := s.service.UpdateQueryBuilders(s.ctx, strangerAddr, []models.BuilderEntry{
			{CircuitID: builder.CircuitV3OnChain, Builder: builder.AtomicQueryV3BuilderName, IsAdding: true},
		})
		var notOwner *access.NotOwnerError
		s.Require().ErrorAs(err, &notOwner)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("empty builder reference is rejected", func() {
		err := s.service.UpdateQueryBuilders(s.ctx, ownerAddr, []models.BuilderEntry{
			{CircuitID: builder.CircuitV3OnChain, IsAdding: true},
		})
		var zero *models.ZeroAddressError
		s.Require().ErrorAs(err, &zero)
		s.Equal("QueryBuilder", zero.Subject)
		s.Equal("ProtocolQueriesManagerZeroAddress", dErrors.ReasonOf(err))
	})

	s.Run("unknown builder name is rejected", func() {
		err := s.service.UpdateQueryBuilders(s.ctx, ownerAddr, []models.BuilderEntry{
			{CircuitID: builder.CircuitV3OnChain, Builder: "NoSuchBuilder", IsAdding: true},
		})
		var unknown *models.UnknownBuilderError
		s.Require().ErrorAs(err, &unknown)
	})

	s.Run("rejected batch leaves no partial state", func() {
		err := s.service.UpdateQueryBuilders(s.ctx, ownerAddr, []models.BuilderEntry{
			{CircuitID: builder.CircuitV3OnChain, Builder: builder.AtomicQueryV3BuilderName, IsAdding: true},
			{CircuitID: builder.CircuitSigV2OnChain, IsAdding: true},
		})
		s.Require().Error(err)

		supported, err := s.service.IsCircuitSupported(s.ctx, builder.CircuitV3OnChain)
		s.Require().NoError(err)
		s.False(supported)
	})

	s.Run("owner binds and unbinds circuits", func() {
		s.Require().NoError(s.service.UpdateQueryBuilders(s.ctx, ownerAddr, []models.BuilderEntry{
			{CircuitID: builder.CircuitV3OnChain, Builder: builder.AtomicQueryV3BuilderName, IsAdding: true},
			{CircuitID: builder.CircuitMTPV2OnChain, IsAdding: false},
		}))

		name, err := s.service.GetQueryBuilder(s.ctx, builder.CircuitV3OnChain)
		s.Require().NoError(err)
		s.Equal(builder.AtomicQueryV3BuilderName, name)

		name, err = s.service.GetQueryBuilder(s.ctx, builder.CircuitMTPV2OnChain)
		s.Require().NoError(err)
		s.Empty(name)

		list, err := s.service.ListQueryBuilders(s.ctx)
		s.Require().NoError(err)
		s.Equal([]models.BuilderBinding{{CircuitID: builder.CircuitV3OnChain, Builder: builder.AtomicQueryV3BuilderName}}, list)
	})
}

func (s *ServiceSuite) TestUpdateDefaultQueries() {
	s.initialize()

	s.Run("non-owner is rejected", func() {
		err := s.service.UpdateDefaultQueries(s.ctx, strangerAddr, []models.QueryEntry{{Name: "KYC", Query: query("kyc"), IsAdding: true}})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("empty validator reference is rejected", func() {
		err := s.service.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{{Name: "KYC", Query: models.Query{Metadata: "kyc"}, IsAdding: true}})
		var zero *models.ZeroAddressError
		s.Require().ErrorAs(err, &zero)
		s.Equal("QueryValidator", zero.Subject)
	})

	s.Run("admin query cannot be removed", func() {
		err := s.service.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{
			{Name: "KYC", Query: query("kyc"), IsAdding: true},
			{Name: models.OrganizationAdminQuery},
		})
		var missing *models.QueryDoesNotExistError
		s.Require().ErrorAs(err, &missing)
		s.True(missing.Protected)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))

		exists, err := s.service.IsDefaultQueryExist(s.ctx, "KYC")
		s.Require().NoError(err)
		s.False(exists, "batch must be rejected as a whole")
	})

	s.Run("admin query can be replaced", func() {
		replacement := query("admin v2")
		s.Require().NoError(s.service.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{
			{Name: models.OrganizationAdminQuery, Query: replacement, IsAdding: true},
		}))
		got, err := s.service.GetOrganizationAdminQuery(s.ctx)
		s.Require().NoError(err)
		s.True(got.Equal(&replacement))
	})

	s.Run("removing a missing query is a no-op", func() {
		s.NoError(s.service.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{{Name: "NOPE"}}))
	})

	s.Run("add then remove", func() {
		s.Require().NoError(s.service.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{{Name: "KYC", Query: query("kyc"), IsAdding: true}}))
		names, err := s.service.ListDefaultQueryNames(s.ctx)
		s.Require().NoError(err)
		s.Equal([]string{"KYC", models.OrganizationAdminQuery}, names)

		s.Require().NoError(s.service.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{{Name: "KYC"}}))
		_, err = s.service.GetDefaultQuery(s.ctx, "KYC")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestUpdateOrganizationQueries() {
	s.initialize()
	s.Require().NoError(s.service.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{
		{Name: "KYC", Query: query("global kyc"), IsAdding: true},
	}))

	s.Run("proof identifies the organization", func() {
		local := query("org kyc")
		local.IsStatic = true
		org, err := s.service.UpdateOrganizationQueries(s.ctx, validatortest.Proof(testOrg), []models.QueryEntry{
			{Name: "KYC", Query: local, IsAdding: true},
			{Name: "MEMBER", Query: query("member"), IsAdding: true},
		})
		s.Require().NoError(err)
		s.Equal(testOrg, org)

		got, err := s.service.GetQuery(s.ctx, testOrg, "KYC")
		s.Require().NoError(err)
		s.Equal("org kyc", got.Metadata, "organization entry shadows the global one")

		global, err := s.service.GetQuery(s.ctx, id.OrganizationID{}, "KYC")
		s.Require().NoError(err)
		s.Equal("global kyc", global.Metadata)

		static, err := s.service.IsStaticQuery(s.ctx, testOrg, "KYC")
		s.Require().NoError(err)
		s.True(static)

		exists, err := s.service.IsQueryExist(s.ctx, id.OrganizationID{}, "MEMBER")
		s.Require().NoError(err)
		s.False(exists)

		last := s.published[len(s.published)-1]
		s.Equal(events.OrganizationQueriesUpdated, last.Type)
		s.Equal(testOrg.String(), last.Attributes["organization_id"])
	})

	s.Run("removing the organization entry reveals the global one", func() {
		_, err := s.service.UpdateOrganizationQueries(s.ctx, validatortest.Proof(testOrg), []models.QueryEntry{{Name: "KYC"}})
		s.Require().NoError(err)

		got, err := s.service.GetQuery(s.ctx, testOrg, "KYC")
		s.Require().NoError(err)
		s.Equal("global kyc", got.Metadata)
	})

	s.Run("organization may remove its own admin query name", func() {
		_, err := s.service.UpdateOrganizationQueries(s.ctx, validatortest.Proof(testOrg), []models.QueryEntry{{Name: models.OrganizationAdminQuery}})
		s.NoError(err)
	})

	s.Run("failed verification propagates", func() {
		s.validator.SetVerificationResult(false)
		defer s.validator.SetVerificationResult(true)

		_, err := s.service.UpdateOrganizationQueries(s.ctx, validatortest.Proof(testOrg), []models.QueryEntry{
			{Name: "OTHER", Query: query("other"), IsAdding: true},
		})
		var failed *validator.VerificationFailedError
		s.Require().ErrorAs(err, &failed)
		s.True(dErrors.HasCode(err, dErrors.CodeProofVerification))

		exists, err := s.service.IsQueryExist(s.ctx, testOrg, "OTHER")
		s.Require().NoError(err)
		s.False(exists)
	})

	s.Run("proof for the zero organization writes nothing", func() {
		_, err := s.service.UpdateOrganizationQueries(s.ctx, validatortest.Proof(id.OrganizationID{}), []models.QueryEntry{
			{Name: "ZERO", Query: query("zero"), IsAdding: true},
		})
		var failed *validator.VerificationFailedError
		s.Require().ErrorAs(err, &failed)
		s.True(dErrors.HasCode(err, dErrors.CodeProofVerification))

		exists, err := s.service.IsQueryExist(s.ctx, id.OrganizationID{}, "ZERO")
		s.Require().NoError(err)
		s.False(exists)
	})

	s.Run("unregistered admin validator fails at verify time", func() {
		broken := models.Query{Metadata: "admin", Validator: "missing"}
		s.Require().NoError(s.service.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{
			{Name: models.OrganizationAdminQuery, Query: broken, IsAdding: true},
		}))
		_, err := s.service.UpdateOrganizationQueries(s.ctx, validatortest.Proof(testOrg), nil)
		var unknown *validator.UnknownValidatorError
		s.ErrorAs(err, &unknown)
	})
}

func (s *ServiceSuite) TestQueryLookups() {
	s.initialize()

	s.Run("missing query reports not found", func() {
		_, err := s.service.GetQuery(s.ctx, testOrg, "NOPE")
		var missing *models.QueryDoesNotExistError
		s.Require().ErrorAs(err, &missing)
		s.Equal("ProtocolQueriesManagerQueryDoesNotExist", dErrors.ReasonOf(err))

		_, err = s.service.GetQueryValidator(s.ctx, testOrg, "NOPE")
		s.ErrorAs(err, &missing)
	})

	s.Run("flags of a missing query are false", func() {
		static, err := s.service.IsStaticQuery(s.ctx, testOrg, "NOPE")
		s.NoError(err)
		s.False(static)

		group, err := s.service.IsGroupLevelQuery(s.ctx, testOrg, "NOPE")
		s.NoError(err)
		s.False(group)
	})

	s.Run("admin validator is resolvable", func() {
		ref, err := s.service.GetOrganizationAdminQueryValidator(s.ctx)
		s.Require().NoError(err)
		s.Equal(mockValidator, ref)
	})

	s.Run("circuit of the bound validator", func() {
		admin, err := s.service.GetOrganizationAdminQuery(s.ctx)
		s.Require().NoError(err)
		circuit, err := s.service.GetQueryCircuitID(admin)
		s.Require().NoError(err)
		s.Equal(builder.CircuitMTPV2OnChain, circuit)

		_, err = s.service.GetQueryCircuitID(&models.Query{Validator: "unregistered"})
		var unknown *validator.UnknownValidatorError
		s.ErrorAs(err, &unknown)
	})
}

func (s *ServiceSuite) TestGetDynamicQueryData() {
	s.initialize()

	s.Run("rebuilds values and query hash", func() {
		out, err := s.service.GetDynamicQueryData(s.ctx, builder.CircuitMTPV2OnChain, []*big.Int{big.NewInt(300)}, s.payload(200))
		s.Require().NoError(err)

		q, err := codec.DecodeAtomicQuery(out)
		s.Require().NoError(err)
		s.Require().Len(q.Values, 1)
		s.Equal(int64(300), q.Values[0].Int64())

		want, err := builder.QueryHash(fieldhash.NewPoseidon(), big.NewInt(1111), big.NewInt(3), big.NewInt(2), big.NewInt(2222), []*big.Int{big.NewInt(300)})
		s.Require().NoError(err)
		s.Equal(0, want.Cmp(q.QueryHash))
	})

	s.Run("unsupported circuit", func() {
		_, err := s.service.GetDynamicQueryData(s.ctx, builder.CircuitV3OnChain, []*big.Int{big.NewInt(1)}, s.payload(200))
		var unsupported *models.UnsupportedCircuitError
		s.Require().ErrorAs(err, &unsupported)
		s.Equal(builder.CircuitV3OnChain, unsupported.CircuitID)
	})

	s.Run("too many values", func() {
		values := make([]*big.Int, fieldhash.MaxValuesLength+1)
		for i := range values {
			values[i] = big.NewInt(int64(i))
		}
		_, err := s.service.GetDynamicQueryData(s.ctx, builder.CircuitMTPV2OnChain, values, s.payload(200))
		var invalid *builder.InvalidValuesLengthError
		s.Require().ErrorAs(err, &invalid)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestTransferOwnership() {
	s.initialize()

	s.Run("non-owner is rejected", func() {
		err := s.service.TransferOwnership(s.ctx, strangerAddr, strangerAddr)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("new owner takes over", func() {
		s.Require().NoError(s.service.TransferOwnership(s.ctx, ownerAddr, strangerAddr))
		s.NoError(s.service.UpdateDefaultQueries(s.ctx, strangerAddr, []models.QueryEntry{{Name: "KYC", Query: query("kyc"), IsAdding: true}}))
		s.True(dErrors.HasCode(s.service.UpdateDefaultQueries(s.ctx, ownerAddr, nil), dErrors.CodeUnauthorized))
	})
}

func (s *ServiceSuite) TestStoreFailures() {
	queries := mocks.NewMockQueryStore(s.ctrl)
	builders := mocks.NewMockBuilderStore(s.ctrl)
	owner := mocks.NewMockOwner(s.ctrl)
	resolver := mocks.NewMockValidatorResolver(s.ctrl)
	svc, err := New(queries, builders, resolver, owner)
	s.Require().NoError(err)

	s.Run("write failure is internal", func() {
		owner.EXPECT().RequireOwner(gomock.Any(), ownerAddr).Return(nil)
		queries.EXPECT().PutDefault(gomock.Any(), "KYC", gomock.Any()).Return(errors.New("disk full"))

		err := svc.UpdateDefaultQueries(s.ctx, ownerAddr, []models.QueryEntry{{Name: "KYC", Query: query("kyc"), IsAdding: true}})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("lookup failure is internal", func() {
		queries.EXPECT().FindOrganization(gomock.Any(), testOrg, "KYC").Return(nil, errors.New("conn reset"))

		_, err := svc.GetQuery(s.ctx, testOrg, "KYC")
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("cancelled context aborts the transaction", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		err := svc.UpdateQueryBuilders(ctx, ownerAddr, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	})
}
