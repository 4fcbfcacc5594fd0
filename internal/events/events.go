// Package events publishes domain events emitted after a mutation commits.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	QueryBuildersUpdated       Type = "query_builders_updated"
	DefaultQueriesUpdated      Type = "default_queries_updated"
	OrganizationQueriesUpdated Type = "organization_queries_updated"
	ProtocolIssuersUpdated     Type = "protocol_issuers_updated"
	VerifiedSBTDeployed        Type = "verified_sbt_deployed"
	BaseTokenURIChanged        Type = "base_token_uri_changed"
	VerifiedSBTMinted          Type = "verified_sbt_minted"
	OwnershipTransferred       Type = "ownership_transferred"
)

// Event is transport-agnostic so sinks can fan out to logs, Kafka or tests.
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	Type       Type              `json:"type"`
	RequestID  string            `json:"request_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// New builds an event from alternating key/value pairs. Values are
// formatted with fmt.Sprint; a trailing key without value is dropped.
func New(t Type, kv ...any) Event {
	attrs := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		attrs[fmt.Sprint(kv[i])] = fmt.Sprint(kv[i+1])
	}
	return Event{Type: t, Attributes: attrs}
}
