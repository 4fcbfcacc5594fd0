package models

import (
	"bytes"

	"verisbt/internal/validator"
)

// OrganizationAdminQuery is the global query every organization proves
// before it may change its own queries. It can never be removed.
const OrganizationAdminQuery = "ORGANIZATION_ADMIN"

// Query is a named credential predicate together with the validator that
// checks proofs against it. Mutations replace the whole value.
type Query struct {
	Metadata     string        `json:"metadata"`
	Payload      []byte        `json:"payload"`
	Validator    validator.Ref `json:"validator"`
	IsStatic     bool          `json:"isStatic"`
	IsGroupLevel bool          `json:"isGroupLevel"`
}

// Equal reports whether two queries carry the same definition.
func (q *Query) Equal(other *Query) bool {
	if q == nil || other == nil {
		return q == other
	}
	return q.Metadata == other.Metadata &&
		bytes.Equal(q.Payload, other.Payload) &&
		q.Validator == other.Validator &&
		q.IsStatic == other.IsStatic &&
		q.IsGroupLevel == other.IsGroupLevel
}

// QueryEntry adds (or replaces) a named query when IsAdding is set and
// removes it otherwise.
type QueryEntry struct {
	Name     string
	Query    Query
	IsAdding bool
}

// BuilderEntry binds a circuit id to a builder by name. An empty Builder is
// the null reference.
type BuilderEntry struct {
	CircuitID string
	Builder   string
	IsAdding  bool
}

// BuilderBinding is a stored circuit id to builder name mapping.
type BuilderBinding struct {
	CircuitID string `json:"circuitId"`
	Builder   string `json:"builder"`
}
