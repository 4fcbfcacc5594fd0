// Package requestcontext stores per-request values shared by middleware,
// handlers and services.
package requestcontext

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type (
	requestIDKey struct{}
	callerKey    struct{}
	clockKey     struct{}
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request id, or "" outside a request.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}

// WithCaller records the authenticated account address.
func WithCaller(ctx context.Context, caller common.Address) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// Caller returns the authenticated account address.
func Caller(ctx context.Context) (common.Address, bool) {
	v, ok := ctx.Value(callerKey{}).(common.Address)
	return v, ok
}

// WithNow pins the clock for a request. Tests use it to get stable timestamps.
func WithNow(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, clockKey{}, now)
}

// Now returns the pinned request time or the wall clock.
func Now(ctx context.Context) time.Time {
	if v, ok := ctx.Value(clockKey{}).(time.Time); ok {
		return v
	}
	return time.Now()
}
