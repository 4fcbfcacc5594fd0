package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

type reasonedErr struct{}

func (reasonedErr) Error() string  { return "query does not exist" }
func (reasonedErr) Reason() string { return "QueryDoesNotExist" }
func (reasonedErr) Unwrap() error  { return &Error{Code: CodeNotFound} }

func (s *DomainErrorsSuite) TestErrorString() {
	s.Equal("proof rejected", (&Error{Code: CodeProofVerification, Message: "proof rejected"}).Error())
	s.Equal("proof_verification_failed", (&Error{Code: CodeProofVerification}).Error())
}

func (s *DomainErrorsSuite) TestIsMatchesByCode() {
	s.Run("same code different message", func() {
		s.True(errors.Is(New(CodeConflict, "a"), &Error{Code: CodeConflict}))
	})

	s.Run("through a chain", func() {
		wrapped := fmt.Errorf("outer: %w", New(CodeNotFound, "inner"))
		s.True(errors.Is(wrapped, &Error{Code: CodeNotFound}))
		s.False(errors.Is(wrapped, &Error{Code: CodeConflict}))
	})
}

func (s *DomainErrorsSuite) TestWrapPreservesCode() {
	inner := New(CodeUnauthorized, "caller is not the owner")
	err := Wrap(inner, CodeInternal, "update failed")

	s.True(HasCode(err, CodeUnauthorized))
	s.Equal("update failed", err.Error())
	s.ErrorIs(err, inner)
}

func (s *DomainErrorsSuite) TestWrapPlainError() {
	err := Wrap(errors.New("disk"), CodeInternal, "store failed")
	s.True(HasCode(err, CodeInternal))
}

func (s *DomainErrorsSuite) TestReasonOf() {
	s.Equal("QueryDoesNotExist", ReasonOf(fmt.Errorf("lookup: %w", reasonedErr{})))
	s.Equal("", ReasonOf(errors.New("plain")))
	s.True(HasCode(reasonedErr{}, CodeNotFound))
}
