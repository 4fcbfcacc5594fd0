package service

import (
	"errors"
	"math/big"

	"verisbt/internal/access"
	"verisbt/internal/events"
	"verisbt/internal/protocol/models"
	"verisbt/internal/query/builder"
	"verisbt/internal/query/codec"
	querymodels "verisbt/internal/query/models"
	"verisbt/internal/validator/validatortest"
	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
)

func (s *ServiceSuite) TestInitialize() {
	s.Run("owner is set once", func() {
		owner, err := s.service.Owner(s.ctx)
		s.Require().NoError(err)
		s.Equal(ownerAddr, owner)

		err = s.service.Initialize(s.ctx, strangerAddr)
		var already *access.AlreadyInitializedError
		s.True(errors.As(err, &already))
	})

	s.Run("ownership can be handed over", func() {
		s.Require().NoError(s.service.TransferOwnership(s.ctx, ownerAddr, strangerAddr))
		owner, err := s.service.Owner(s.ctx)
		s.Require().NoError(err)
		s.Equal(strangerAddr, owner)
		s.Equal([]events.Type{events.OwnershipTransferred}, s.publishedTypes())
		s.Require().NoError(s.service.TransferOwnership(s.ctx, strangerAddr, ownerAddr))
	})
}

func (s *ServiceSuite) TestUpdateProtocolIssuers() {
	s.Run("non-owner is rejected", func() {
		err := s.service.UpdateProtocolIssuers(s.ctx, strangerAddr, []id.OrganizationID{defOrg}, true)
		var notOwner *access.NotOwnerError
		s.True(errors.As(err, &notOwner))

		ok, err := s.service.IsProtocolIssuer(s.ctx, defOrg)
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("adds issuers in order and ignores repeats", func() {
		s.Require().NoError(s.service.UpdateProtocolIssuers(s.ctx, ownerAddr, []id.OrganizationID{defOrg, otherOrg, defOrg}, true))

		list, err := s.service.GetProtocolIssuers(s.ctx)
		s.Require().NoError(err)
		s.Equal([]id.OrganizationID{defOrg, otherOrg}, list)

		s.Require().Len(s.published, 1)
		last := s.published[0]
		s.Equal(events.ProtocolIssuersUpdated, last.Type)
		s.Equal("true", last.Attributes["is_adding"])
		s.Equal(defOrg.String()+","+otherOrg.String()+","+defOrg.String(), last.Attributes["organization_ids"])
	})

	s.Run("removes issuers and ignores non-members", func() {
		third := id.MustOrganizationID("456")
		s.Require().NoError(s.service.UpdateProtocolIssuers(s.ctx, ownerAddr, []id.OrganizationID{third}, true))
		s.Require().NoError(s.service.UpdateProtocolIssuers(s.ctx, ownerAddr, []id.OrganizationID{defOrg, id.MustOrganizationID("789")}, false))

		list, err := s.service.GetProtocolIssuers(s.ctx)
		s.Require().NoError(err)
		s.ElementsMatch([]id.OrganizationID{otherOrg, third}, list)

		ok, err := s.service.IsProtocolIssuer(s.ctx, defOrg)
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *ServiceSuite) TestDeployVerifiedSBT() {
	s.addIssuers(defOrg)

	s.Run("issuer deploys a token for a group-level query", func() {
		b, err := s.service.DeployVerifiedSBT(s.ctx, request(defOrg, defOrg, group1, dateOfBirth), "Verified SBT", "VSBT", baseURI)
		s.Require().NoError(err)
		s.NotEqual(b.Token.Hex(), "0x0000000000000000000000000000000000000000")
		s.Equal(group1, b.GroupID)

		key, err := s.service.GetTokenQueryKey(s.ctx, defOrg, group1, dateOfBirth)
		s.Require().NoError(err)
		s.Equal(key, b.Key)

		addr, err := s.service.GetOrganizationToken(s.ctx, defOrg, group1, dateOfBirth)
		s.Require().NoError(err)
		s.Equal(b.Token, addr)

		meta, err := s.tokens.Metadata(s.ctx, b.Token)
		s.Require().NoError(err)
		s.Equal("Verified SBT", meta.Name)
		s.Equal("VSBT", meta.Symbol)
		s.Equal(baseURI, meta.BaseURI)
		s.Equal(managerAddr, meta.Manager)

		s.Require().Len(s.published, 1)
		e := s.published[0]
		s.Equal(events.VerifiedSBTDeployed, e.Type)
		s.Equal(defOrg.String(), e.Attributes["organization_id"])
		s.Equal(group1.String(), e.Attributes["group_id"])
		s.Equal(dateOfBirth, e.Attributes["query_name"])
		s.Equal(b.Token.Hex(), e.Attributes["token"])
	})

	s.Run("another group gets another token", func() {
		first, err := s.service.GetOrganizationToken(s.ctx, defOrg, group1, dateOfBirth)
		s.Require().NoError(err)
		b := s.deploy(group2, dateOfBirth)
		s.NotEqual(first, b.Token)
	})

	s.Run("same key cannot be deployed twice", func() {
		_, err := s.service.DeployVerifiedSBT(s.ctx, request(defOrg, defOrg, group1, dateOfBirth), "Again", "AGN", baseURI)
		var deployed *models.TokenAlreadyDeployedError
		s.Require().True(errors.As(err, &deployed))
		key, keyErr := s.service.GetTokenQueryKey(s.ctx, defOrg, group1, dateOfBirth)
		s.Require().NoError(keyErr)
		s.Equal(key, deployed.Key)
		s.Equal("ProtocolManagerTokenIsAlreadyDeployed", dErrors.ReasonOf(err))
		s.Empty(s.published)
	})

	s.Run("group is ignored for organization-level queries", func() {
		s.deploy(group1, querymodels.OrganizationAdminQuery)

		_, err := s.service.DeployVerifiedSBT(s.ctx, request(defOrg, defOrg, group2, querymodels.OrganizationAdminQuery), "Admin", "ADM", baseURI)
		var deployed *models.TokenAlreadyDeployedError
		s.True(errors.As(err, &deployed))

		withoutGroup, err := s.service.GetTokenQueryKey(s.ctx, defOrg, id.GroupID{}, querymodels.OrganizationAdminQuery)
		s.Require().NoError(err)
		withGroup, err := s.service.GetTokenQueryKey(s.ctx, defOrg, group2, querymodels.OrganizationAdminQuery)
		s.Require().NoError(err)
		s.Equal(withoutGroup, withGroup)
	})

	s.Run("non-issuer is rejected before the proof is checked", func() {
		calls := s.validator.Calls()
		_, err := s.service.DeployVerifiedSBT(s.ctx, request(otherOrg, otherOrg, group1, dateOfBirth), "X", "X", baseURI)
		var notIssuer *models.NotProtocolIssuerError
		s.Require().True(errors.As(err, &notIssuer))
		s.Equal(otherOrg, notIssuer.OrganizationID)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.Equal(calls, s.validator.Calls())
	})

	s.Run("proof for another organization is rejected", func() {
		s.addIssuers(otherOrg)
		_, err := s.service.DeployVerifiedSBT(s.ctx, request(otherOrg, defOrg, group1, dateOfBirth), "X", "X", baseURI)
		var invalid *models.InvalidOrganizationIDError
		s.Require().True(errors.As(err, &invalid))
		s.Equal(otherOrg, invalid.Expected)
		s.Equal(defOrg, invalid.Actual)
		s.Equal("ProtocolManagerInvalidaOrganizationId", dErrors.ReasonOf(err))
	})

	s.Run("unknown query is rejected", func() {
		_, err := s.service.DeployVerifiedSBT(s.ctx, request(defOrg, defOrg, group1, "UNKNOWN"), "X", "X", baseURI)
		var missing *models.QueryDoesNotExistError
		s.Require().True(errors.As(err, &missing))
		s.Equal(defOrg, missing.OrganizationID)
		s.Equal("UNKNOWN", missing.QueryName)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("failed verification propagates", func() {
		s.validator.SetVerificationResult(false)
		defer s.validator.SetVerificationResult(true)

		_, err := s.service.DeployVerifiedSBT(s.ctx, request(defOrg, defOrg, mustGroup("9"), dateOfBirth), "X", "X", baseURI)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeProofVerification))

		addr, err := s.service.GetOrganizationToken(s.ctx, defOrg, mustGroup("9"), dateOfBirth)
		s.Require().NoError(err)
		s.Equal(addr.Hex(), "0x0000000000000000000000000000000000000000")
	})
}

func (s *ServiceSuite) TestDeployUsesOrganizationQuery() {
	s.addIssuers(defOrg)

	// The organization overrides DATE_OF_BIRTH with an organization-level
	// definition, so the group no longer scopes the key.
	_, err := s.queries.UpdateOrganizationQueries(s.ctx, validatortest.Proof(defOrg), []querymodels.QueryEntry{
		{Name: dateOfBirth, Query: staticQuery("organization wide", false), IsAdding: true},
	})
	s.Require().NoError(err)

	s.deploy(group1, dateOfBirth)
	_, err = s.service.DeployVerifiedSBT(s.ctx, request(defOrg, defOrg, group2, dateOfBirth), "X", "X", baseURI)
	var deployed *models.TokenAlreadyDeployedError
	s.True(errors.As(err, &deployed))
}

func (s *ServiceSuite) TestChangeBaseTokenURI() {
	s.addIssuers(defOrg)
	b := s.deploy(group1, dateOfBirth)

	s.Run("updates the bound token", func() {
		s.Require().NoError(s.service.ChangeBaseTokenURI(s.ctx, request(defOrg, defOrg, group1, dateOfBirth), "ipfs://updated"))

		meta, err := s.tokens.Metadata(s.ctx, b.Token)
		s.Require().NoError(err)
		s.Equal("ipfs://updated", meta.BaseURI)

		s.Require().Len(s.published, 1)
		s.Equal(events.BaseTokenURIChanged, s.published[0].Type)
		s.Equal("ipfs://updated", s.published[0].Attributes["base_uri"])
	})

	s.Run("does not require issuer membership", func() {
		s.Require().NoError(s.service.UpdateProtocolIssuers(s.ctx, ownerAddr, []id.OrganizationID{defOrg}, false))
		defer s.addIssuers(defOrg)

		s.NoError(s.service.ChangeBaseTokenURI(s.ctx, request(defOrg, defOrg, group1, dateOfBirth), "ipfs://again"))
	})

	s.Run("missing token reports zero address", func() {
		err := s.service.ChangeBaseTokenURI(s.ctx, request(defOrg, defOrg, group2, dateOfBirth), "ipfs://nowhere")
		var zero *models.ZeroTokenAddrError
		s.Require().True(errors.As(err, &zero))
		s.Equal(group2, zero.GroupID)
		s.Equal(dateOfBirth, zero.QueryName)
		s.Equal("ProtocolManagerZeroTokenAddr", dErrors.ReasonOf(err))
	})

	s.Run("proof for another organization is rejected", func() {
		err := s.service.ChangeBaseTokenURI(s.ctx, request(defOrg, otherOrg, group1, dateOfBirth), "ipfs://hijack")
		var invalid *models.InvalidOrganizationIDError
		s.Require().True(errors.As(err, &invalid))

		meta, metaErr := s.tokens.Metadata(s.ctx, b.Token)
		s.Require().NoError(metaErr)
		s.NotEqual("ipfs://hijack", meta.BaseURI)
	})
}

func (s *ServiceSuite) TestMintVerifiedSBT() {
	s.addIssuers(defOrg)
	dob := s.deploy(group1, dateOfBirth)
	admin := s.deploy(id.GroupID{}, querymodels.OrganizationAdminQuery)

	item := func(group id.GroupID, name string) models.MintItem {
		return models.MintItem{Request: request(defOrg, defOrg, group, name), ClaimFieldValue: big.NewInt(0)}
	}

	s.Run("empty batch is rejected", func() {
		_, err := s.service.MintVerifiedSBT(s.ctx, holderAddr, nil)
		var empty *models.EmptyMintBatchError
		s.True(errors.As(err, &empty))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("duplicate token in one batch mints nothing", func() {
		_, err := s.service.MintVerifiedSBT(s.ctx, holderAddr, []models.MintItem{item(group1, dateOfBirth), item(group1, dateOfBirth)})
		var has *models.UserAlreadyHasTokenError
		s.Require().True(errors.As(err, &has))
		s.Equal(holderAddr, has.Holder)
		s.Equal(dob.Token, has.Token)
		s.Zero(s.balance(dob.Token, holderAddr))
		s.Empty(s.published)
	})

	s.Run("failing item keeps earlier items unminted", func() {
		_, err := s.service.MintVerifiedSBT(s.ctx, holderAddr, []models.MintItem{item(group1, dateOfBirth), item(group2, dateOfBirth)})
		var zero *models.ZeroTokenAddrError
		s.Require().True(errors.As(err, &zero))
		s.ErrorContains(err, "mint item 1")
		s.Zero(s.balance(dob.Token, holderAddr))
	})

	s.Run("mints one token per item to the caller", func() {
		minted, err := s.service.MintVerifiedSBT(s.ctx, holderAddr, []models.MintItem{item(group1, dateOfBirth), item(id.GroupID{}, querymodels.OrganizationAdminQuery)})
		s.Require().NoError(err)
		s.Require().Len(minted, 2)
		s.Equal(models.Minted{Token: dob.Token, TokenID: 0, QueryName: dateOfBirth}, minted[0])
		s.Equal(models.Minted{Token: admin.Token, TokenID: 0, QueryName: querymodels.OrganizationAdminQuery}, minted[1])

		s.Equal(uint64(1), s.balance(dob.Token, holderAddr))
		s.Equal(uint64(1), s.balance(admin.Token, holderAddr))
		uri, err := s.tokens.TokenURI(s.ctx, dob.Token, 0)
		s.Require().NoError(err)
		s.Equal(baseURI, uri)

		s.Equal([]events.Type{events.VerifiedSBTMinted, events.VerifiedSBTMinted}, s.publishedTypes())
		s.Equal(holderAddr.Hex(), s.published[0].Attributes["holder"])
		s.Equal("0", s.published[0].Attributes["token_id"])
	})

	s.Run("holder cannot mint the same token again", func() {
		_, err := s.service.MintVerifiedSBT(s.ctx, holderAddr, []models.MintItem{item(group1, dateOfBirth)})
		var has *models.UserAlreadyHasTokenError
		s.Require().True(errors.As(err, &has))
		s.Equal("ProtocolManagerUserAlreadyHasTheToken", dErrors.ReasonOf(err))
	})

	s.Run("token ids increase per token", func() {
		minted, err := s.service.MintVerifiedSBT(s.ctx, strangerAddr, []models.MintItem{item(group1, dateOfBirth)})
		s.Require().NoError(err)
		s.Equal(uint64(1), minted[0].TokenID)

		owner, err := s.tokens.OwnerOf(s.ctx, dob.Token, 1)
		s.Require().NoError(err)
		s.Equal(strangerAddr, owner)
	})

	s.Run("unknown query is rejected", func() {
		_, err := s.service.MintVerifiedSBT(s.ctx, holderAddr, []models.MintItem{item(group1, "UNKNOWN")})
		var missing *models.QueryDoesNotExistError
		s.True(errors.As(err, &missing))
	})

	s.Run("issuer membership is not required to mint", func() {
		s.Require().NoError(s.service.UpdateProtocolIssuers(s.ctx, ownerAddr, []id.OrganizationID{defOrg}, false))
		defer s.addIssuers(defOrg)

		minted, err := s.service.MintVerifiedSBT(s.ctx, ownerAddr, []models.MintItem{item(group1, dateOfBirth)})
		s.Require().NoError(err)
		s.Len(minted, 1)
	})
}

func (s *ServiceSuite) TestMintDynamicQuery() {
	const age = "AGE"
	payload, err := codec.EncodeAtomicQuery(&codec.AtomicQuery{
		Schema:       big.NewInt(1111),
		ClaimPathKey: big.NewInt(2222),
		Operator:     big.NewInt(2),
		SlotIndex:    big.NewInt(3),
		Values:       []*big.Int{big.NewInt(18)},
		QueryHash:    big.NewInt(0),
		CircuitIDs:   []string{builder.CircuitMTPV2OnChain},
	})
	s.Require().NoError(err)
	s.Require().NoError(s.queries.UpdateDefaultQueries(s.ctx, ownerAddr, []querymodels.QueryEntry{
		{Name: age, Query: querymodels.Query{Metadata: "age", Payload: payload, Validator: mockRef}, IsAdding: true},
	}))
	s.addIssuers(defOrg)
	b := s.deploy(id.GroupID{}, age)

	minted, err := s.service.MintVerifiedSBT(s.ctx, holderAddr, []models.MintItem{{
		Request:         request(defOrg, defOrg, id.GroupID{}, age),
		ClaimFieldValue: big.NewInt(21),
	}})
	s.Require().NoError(err)
	s.Require().Len(minted, 1)
	s.Equal(b.Token, minted[0].Token)
}
