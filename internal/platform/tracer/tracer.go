// Package tracer is a small span abstraction over OpenTelemetry. Services
// depend on the Tracer interface; tests use the no-op implementation.
package tracer

import (
	"context"
	"time"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span and marks it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration records value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanDeploy        = "protocol.deploy"
	SpanChangeBaseURI = "protocol.change_base_uri"
	SpanMint          = "protocol.mint"
	SpanVerifyProof   = "protocol.verify_proof"
)

// Attribute keys.
const (
	AttrOrganizationID = "organization_id"
	AttrGroupID        = "group_id"
	AttrQueryName      = "query_name"
	AttrItems          = "mint.items"
	AttrStatic         = "query.static"
)
