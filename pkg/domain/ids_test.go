package domain

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "verisbt/pkg/domain-errors"
)

const testOrgID = "20823307793724103113205494482134473400617001723515577429684573989557567489"

func TestParseOrganizationID(t *testing.T) {
	t.Run("decimal", func(t *testing.T) {
		id, err := ParseOrganizationID(testOrgID)
		require.NoError(t, err)
		assert.Equal(t, testOrgID, id.String())
	})

	t.Run("hex and decimal agree", func(t *testing.T) {
		fromHex, err := ParseOrganizationID("0x8ae")
		require.NoError(t, err)
		fromDec, err := ParseOrganizationID("2222")
		require.NoError(t, err)
		assert.Equal(t, fromDec, fromHex)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseOrganizationID("  ")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects garbage and leading-zero octal style", func(t *testing.T) {
		_, err := ParseOrganizationID("12ab")
		require.Error(t, err)
		id, err := ParseOrganizationID("0123")
		require.NoError(t, err)
		assert.Equal(t, "123", id.String())
	})

	t.Run("rejects overflow", func(t *testing.T) {
		tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
		_, err := ParseOrganizationID(tooBig.String())
		require.Error(t, err)
	})
}

func TestParseGroupIDEmptyIsZero(t *testing.T) {
	g, err := ParseGroupID("")
	require.NoError(t, err)
	assert.True(t, g.IsZero())
}

func TestIDsAreComparableMapKeys(t *testing.T) {
	m := map[OrganizationID]int{}
	m[MustOrganizationID("123")] = 1
	m[MustOrganizationID("0x7b")]++
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[MustOrganizationID("123")])
}

func TestBigRoundTrip(t *testing.T) {
	b, ok := new(big.Int).SetString(testOrgID, 10)
	require.True(t, ok)
	id, err := OrganizationIDFromBig(b)
	require.NoError(t, err)
	assert.Equal(t, 0, id.Big().Cmp(b))

	_, err = OrganizationIDFromBig(big.NewInt(-1))
	require.Error(t, err)
}

func TestJSONUsesDecimalStrings(t *testing.T) {
	type payload struct {
		Org   OrganizationID `json:"org"`
		Group GroupID        `json:"group"`
	}
	in := payload{Org: MustOrganizationID("123"), Group: GroupID(MustOrganizationID("2211"))}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"org":"123","group":"2211"}`, string(raw))

	var out payload
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x00000000000000000000000000000000000000aa")
	require.NoError(t, err)
	assert.Equal(t, byte(0xaa), addr[19])

	_, err = ParseAddress("not-an-address")
	require.Error(t, err)
}
