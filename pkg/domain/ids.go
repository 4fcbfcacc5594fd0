// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	dErrors "verisbt/pkg/domain-errors"
)

// Distinct 256-bit ID types. They are comparable and usable as map keys.
type (
	// OrganizationID is the identity an issuer proves with its credential.
	OrganizationID uint256.Int
	// GroupID scopes a token inside an organization. Zero means "no group".
	GroupID uint256.Int
	// TokenKey is the field-hash binding key of (organization, group, query name).
	TokenKey uint256.Int
)

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseOrganizationID(s string) (OrganizationID, error) {
	v, err := parseUint256(s, "organization ID")
	return OrganizationID(v), err
}

func ParseGroupID(s string) (GroupID, error) {
	if strings.TrimSpace(s) == "" {
		return GroupID{}, nil
	}
	v, err := parseUint256(s, "group ID")
	return GroupID(v), err
}

func ParseTokenKey(s string) (TokenKey, error) {
	v, err := parseUint256(s, "token key")
	return TokenKey(v), err
}

// ParseAddress parses a 0x-prefixed hex account address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, dErrors.New(dErrors.CodeInvalidInput, "invalid address format")
	}
	return common.HexToAddress(s), nil
}

// Big constructors - use when a value comes out of hashing or proof inputs.

func OrganizationIDFromBig(b *big.Int) (OrganizationID, error) {
	v, err := fromBig(b, "organization ID")
	return OrganizationID(v), err
}

func GroupIDFromBig(b *big.Int) (GroupID, error) {
	v, err := fromBig(b, "group ID")
	return GroupID(v), err
}

func TokenKeyFromBig(b *big.Int) (TokenKey, error) {
	v, err := fromBig(b, "token key")
	return TokenKey(v), err
}

// MustOrganizationID parses a decimal or 0x-hex literal and panics on failure.
// Intended for constants and tests.
func MustOrganizationID(s string) OrganizationID {
	id, err := ParseOrganizationID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String methods - decimal, matching how field elements are printed elsewhere.

func (id OrganizationID) String() string { return dec(uint256.Int(id)) }
func (id GroupID) String() string        { return dec(uint256.Int(id)) }
func (id TokenKey) String() string       { return dec(uint256.Int(id)) }

// Big conversions allocate a fresh *big.Int.

func (id OrganizationID) Big() *big.Int { return toBig(uint256.Int(id)) }
func (id GroupID) Big() *big.Int        { return toBig(uint256.Int(id)) }
func (id TokenKey) Big() *big.Int       { return toBig(uint256.Int(id)) }

func (id OrganizationID) IsZero() bool { return isZero(uint256.Int(id)) }
func (id GroupID) IsZero() bool        { return isZero(uint256.Int(id)) }
func (id TokenKey) IsZero() bool       { return isZero(uint256.Int(id)) }

// Text marshalling keeps JSON payloads as decimal strings.

func (id OrganizationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id GroupID) MarshalText() ([]byte, error)        { return []byte(id.String()), nil }
func (id TokenKey) MarshalText() ([]byte, error)       { return []byte(id.String()), nil }

func (id *OrganizationID) UnmarshalText(b []byte) error {
	v, err := ParseOrganizationID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id *GroupID) UnmarshalText(b []byte) error {
	v, err := ParseGroupID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id *TokenKey) UnmarshalText(b []byte) error {
	v, err := ParseTokenKey(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func dec(v uint256.Int) string { return v.Dec() }

func toBig(v uint256.Int) *big.Int { return v.ToBig() }

func isZero(v uint256.Int) bool { return v.IsZero() }

func fromBig(b *big.Int, label string) (uint256.Int, error) {
	if b == nil {
		return uint256.Int{}, nil
	}
	if b.Sign() < 0 {
		return uint256.Int{}, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be negative")
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return uint256.Int{}, dErrors.New(dErrors.CodeInvalidInput, label+" exceeds 256 bits")
	}
	return *v, nil
}

// parseUint256 accepts decimal or 0x-prefixed hex.
func parseUint256(s, label string) (uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uint256.Int{}, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return uint256.Int{}, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return fromBig(b, label)
}
