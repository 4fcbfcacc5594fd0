package models

import (
	"math/big"

	"golang.org/x/crypto/sha3"

	"verisbt/internal/fieldhash"
	id "verisbt/pkg/domain"
)

// QueryNameHash is keccak256(name) reduced into the field.
func QueryNameHash(name string) *big.Int {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	return fieldhash.Reduce(new(big.Int).SetBytes(h.Sum(nil)))
}

// DeriveTokenKey computes hash(org, group, QueryNameHash(name)). Callers pass
// the zero group for queries that are not group level.
func DeriveTokenKey(hasher fieldhash.Hasher, org id.OrganizationID, group id.GroupID, name string) (id.TokenKey, error) {
	h, err := hasher.Hash(org.Big(), group.Big(), QueryNameHash(name))
	if err != nil {
		return id.TokenKey{}, err
	}
	return id.TokenKeyFromBig(h)
}
