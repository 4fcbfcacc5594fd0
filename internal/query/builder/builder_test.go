package builder

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"verisbt/internal/fieldhash"
	"verisbt/internal/query/codec"
	dErrors "verisbt/pkg/domain-errors"
)

type BuilderSuite struct {
	suite.Suite
	hasher fieldhash.Poseidon
}

func TestBuilderSuite(t *testing.T) {
	suite.Run(t, new(BuilderSuite))
}

func (s *BuilderSuite) SetupTest() {
	s.hasher = fieldhash.NewPoseidon()
}

func (s *BuilderSuite) basePayload() []byte {
	payload, err := codec.EncodeAtomicQuery(&codec.AtomicQuery{
		Schema:       big.NewInt(1111),
		ClaimPathKey: big.NewInt(2222),
		Operator:     big.NewInt(2),
		SlotIndex:    big.NewInt(3),
		Values:       []*big.Int{big.NewInt(200)},
		QueryHash:    big.NewInt(0),
		CircuitIDs:   []string{CircuitMTPV2OnChain},
	})
	s.Require().NoError(err)
	return payload
}

func (s *BuilderSuite) v3Payload() []byte {
	payload, err := codec.EncodeAtomicQueryV3(&codec.AtomicQueryV3{
		Schema:             big.NewInt(1111),
		ClaimPathKey:       big.NewInt(2222),
		Operator:           big.NewInt(2),
		SlotIndex:          big.NewInt(3),
		Values:             []*big.Int{big.NewInt(200)},
		QueryHash:          big.NewInt(0),
		CircuitIDs:         []string{CircuitV3OnChain},
		ClaimPathNotExists: big.NewInt(1),
		GroupID:            big.NewInt(123),
		NullifierSessionID: big.NewInt(666),
		ProofType:          big.NewInt(2),
		VerifierID:         big.NewInt(999),
	})
	s.Require().NoError(err)
	return payload
}

// expectedHash follows the commitment recipe step by step with the real hasher.
func (s *BuilderSuite) expectedHash(values []*big.Int) *big.Int {
	padded := make([]*big.Int, 0, fieldhash.MaxValuesLength)
	padded = append(padded, values...)
	for len(padded) < fieldhash.MaxValuesLength {
		padded = append(padded, big.NewInt(0))
	}
	var arr [fieldhash.MaxValuesLength]*big.Int
	copy(arr[:], padded)
	valuesHash, err := s.hasher.SpongeHash(arr)
	s.Require().NoError(err)
	h, err := s.hasher.Hash6([6]*big.Int{big.NewInt(1111), big.NewInt(3), big.NewInt(2), big.NewInt(2222), big.NewInt(0), valuesHash})
	s.Require().NoError(err)
	return h
}

func (s *BuilderSuite) TestNames() {
	s.Equal("CredentialAtomicQueryBuilder", NewAtomicQueryBuilder(s.hasher).Name())
	s.Equal("CredentialAtomicQueryV3Builder", NewAtomicQueryV3Builder(s.hasher).Name())
}

func (s *BuilderSuite) TestBuildQueryUpdatesValuesAndHash() {
	out, err := NewAtomicQueryBuilder(s.hasher).BuildQuery(s.basePayload(), []*big.Int{big.NewInt(300)})
	s.Require().NoError(err)

	decoded, err := codec.DecodeAtomicQuery(out)
	s.Require().NoError(err)
	s.Require().Len(decoded.Values, 1, "values are stored unpadded")
	s.Equal("300", decoded.Values[0].String())
	s.Equal(s.expectedHash([]*big.Int{big.NewInt(300)}).String(), decoded.QueryHash.String())
	s.Equal("1111", decoded.Schema.String())
	s.Equal("2222", decoded.ClaimPathKey.String())
	s.Equal([]string{CircuitMTPV2OnChain}, decoded.CircuitIDs)
	s.False(decoded.SkipClaimRevocationCheck)
}

func (s *BuilderSuite) TestBuildQueryIsDeterministic() {
	values := []*big.Int{big.NewInt(300), big.NewInt(301), big.NewInt(302)}
	for _, tc := range []struct {
		builder Builder
		payload []byte
	}{
		{NewAtomicQueryBuilder(s.hasher), s.basePayload()},
		{NewAtomicQueryV3Builder(s.hasher), s.v3Payload()},
	} {
		s.Run(tc.builder.Name(), func() {
			first, err := tc.builder.BuildQuery(tc.payload, values)
			s.Require().NoError(err)
			second, err := tc.builder.BuildQuery(tc.payload, values)
			s.Require().NoError(err)
			s.True(bytes.Equal(first, second), "rebuild must be byte-identical")
		})
	}
}

func (s *BuilderSuite) TestBuildQueryMaxLength() {
	values := make([]*big.Int, fieldhash.MaxValuesLength)
	values[0] = big.NewInt(400)
	for i := 1; i < len(values); i++ {
		values[i] = big.NewInt(0)
	}

	out, err := NewAtomicQueryBuilder(s.hasher).BuildQuery(s.basePayload(), values)
	s.Require().NoError(err)
	decoded, err := codec.DecodeAtomicQuery(out)
	s.Require().NoError(err)
	s.Len(decoded.Values, fieldhash.MaxValuesLength)
	s.Equal(s.expectedHash(values).String(), decoded.QueryHash.String())
}

func (s *BuilderSuite) TestBuildQueryTooManyValues() {
	values := make([]*big.Int, 164)
	for i := range values {
		values[i] = big.NewInt(0)
	}

	for _, b := range []Builder{NewAtomicQueryBuilder(s.hasher), NewAtomicQueryV3Builder(s.hasher)} {
		_, err := b.BuildQuery(s.basePayload(), values)
		s.Require().Error(err)

		var lenErr *InvalidValuesLengthError
		s.Require().True(errors.As(err, &lenErr), b.Name())
		s.Equal(164, lenErr.Actual)
		s.Equal(64, lenErr.Max)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("QueryBuilderInvalidValuesArrLength", dErrors.ReasonOf(err))
	}
}

func (s *BuilderSuite) TestV3KeepsTrailingFields() {
	out, err := NewAtomicQueryV3Builder(s.hasher).BuildQuery(s.v3Payload(), []*big.Int{big.NewInt(300)})
	s.Require().NoError(err)

	decoded, err := codec.DecodeAtomicQueryV3(out)
	s.Require().NoError(err)
	s.Equal("123", decoded.GroupID.String())
	s.Equal("666", decoded.NullifierSessionID.String())
	s.Equal("2", decoded.ProofType.String())
	s.Equal("999", decoded.VerifierID.String())
	s.Equal("1", decoded.ClaimPathNotExists.String())
	// the reserved slot stays zero even though claimPathNotExists is set
	s.Equal(s.expectedHash([]*big.Int{big.NewInt(300)}).String(), decoded.QueryHash.String())
}

func (s *BuilderSuite) TestBuildQueryRejectsMalformedPayload() {
	_, err := NewAtomicQueryBuilder(s.hasher).BuildQuery([]byte("nope"), nil)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *BuilderSuite) TestBuildQueryRejectsNonFieldValue() {
	_, err := NewAtomicQueryBuilder(s.hasher).BuildQuery(s.basePayload(), []*big.Int{fieldhash.FieldModulus()})
	s.Require().Error(err)
}

type recordingHasher struct {
	fieldhash.Poseidon
	last [6]*big.Int
}

func (r *recordingHasher) Hash6(inputs [6]*big.Int) (*big.Int, error) {
	r.last = inputs
	return big.NewInt(42), nil
}

func TestQueryHashReservedSlotIsZero(t *testing.T) {
	h := &recordingHasher{}
	got, err := QueryHash(h, big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4), []*big.Int{big.NewInt(5)})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Int64())
	assert.Equal(t, "1", h.last[0].String())
	assert.Equal(t, "2", h.last[1].String())
	assert.Equal(t, "3", h.last[2].String())
	assert.Equal(t, "4", h.last[3].String())
	assert.Zero(t, h.last[4].Sign())
}

func TestDefaults(t *testing.T) {
	defaults := Defaults(fieldhash.NewPoseidon())
	require.Len(t, defaults, 3)
	assert.Equal(t, AtomicQueryBuilderName, defaults[CircuitMTPV2OnChain].Name())
	assert.Equal(t, AtomicQueryBuilderName, defaults[CircuitSigV2OnChain].Name())
	assert.Equal(t, AtomicQueryV3BuilderName, defaults[CircuitV3OnChain].Name())
}
