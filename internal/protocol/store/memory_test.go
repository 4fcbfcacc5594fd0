package store

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"

	"verisbt/internal/protocol/models"
	"verisbt/internal/sentinel"
	id "verisbt/pkg/domain"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func orgs(values ...string) []id.OrganizationID {
	out := make([]id.OrganizationID, len(values))
	for i, v := range values {
		out[i] = id.MustOrganizationID(v)
	}
	return out
}

func (s *InMemorySuite) add(values ...string) {
	for _, org := range orgs(values...) {
		_, err := s.store.AddIssuer(s.ctx, org)
		s.Require().NoError(err)
	}
}

func (s *InMemorySuite) list() []id.OrganizationID {
	got, err := s.store.ListIssuers(s.ctx)
	s.Require().NoError(err)
	return got
}

func (s *InMemorySuite) TestIssuersKeepInsertionOrder() {
	s.add("3", "1", "2")
	s.Equal(orgs("3", "1", "2"), s.list())

	added, err := s.store.AddIssuer(s.ctx, id.MustOrganizationID("1"))
	s.Require().NoError(err)
	s.False(added)
	s.Len(s.list(), 3)
}

func (s *InMemorySuite) TestRemoveSwapsLastIntoHole() {
	s.add("1", "2", "3", "4")

	removed, err := s.store.RemoveIssuer(s.ctx, id.MustOrganizationID("2"))
	s.Require().NoError(err)
	s.True(removed)
	s.Equal(orgs("1", "4", "3"), s.list())

	removed, err = s.store.RemoveIssuer(s.ctx, id.MustOrganizationID("3"))
	s.Require().NoError(err)
	s.True(removed)
	s.Equal(orgs("1", "4"), s.list())

	removed, err = s.store.RemoveIssuer(s.ctx, id.MustOrganizationID("9"))
	s.Require().NoError(err)
	s.False(removed)

	has, err := s.store.HasIssuer(s.ctx, id.MustOrganizationID("4"))
	s.Require().NoError(err)
	s.True(has)
	has, err = s.store.HasIssuer(s.ctx, id.MustOrganizationID("2"))
	s.Require().NoError(err)
	s.False(has)
}

func (s *InMemorySuite) TestListIsACopy() {
	s.add("1", "2")
	got := s.list()
	got[0] = id.MustOrganizationID("7")
	s.Equal(orgs("1", "2"), s.list())
}

func (s *InMemorySuite) TestBindingsAreCreatedOnce() {
	key, err := id.ParseTokenKey("12345")
	s.Require().NoError(err)
	b := models.Binding{
		Key:            key,
		Token:          common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		OrganizationID: id.MustOrganizationID("1"),
		QueryName:      "DATE_OF_BIRTH",
		CreatedAt:      time.Now(),
	}

	_, err = s.store.FindBinding(s.ctx, key)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.CreateBinding(s.ctx, b))
	err = s.store.CreateBinding(s.ctx, b)
	s.ErrorIs(err, sentinel.ErrAlreadyUsed)

	got, err := s.store.FindBinding(s.ctx, key)
	s.Require().NoError(err)
	s.Equal(b.Token, got.Token)
	s.Equal("DATE_OF_BIRTH", got.QueryName)
}
