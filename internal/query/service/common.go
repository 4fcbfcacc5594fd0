package service

import (
	"context"
	"errors"
	"log/slog"

	"verisbt/internal/events"
	"verisbt/internal/query/models"
	"verisbt/internal/sentinel"
	dErrors "verisbt/pkg/domain-errors"
	"verisbt/pkg/requestcontext"
)

// Error wrapping helpers translate sentinel errors to domain errors.

func wrapQueryErr(err error, name string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return &models.QueryDoesNotExistError{Name: name}
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load query")
}

func wrapBuilderErr(err error, circuitID string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return &models.UnsupportedCircuitError{CircuitID: circuitID}
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load query builder")
}

// auditEmitter logs committed changes and forwards them to the publisher.
// Publishing failures are logged and never fail the operation.
type auditEmitter struct {
	logger    *slog.Logger
	publisher EventPublisher
}

func newAuditEmitter(logger *slog.Logger, publisher EventPublisher) *auditEmitter {
	return &auditEmitter{logger: logger, publisher: publisher}
}

func (e *auditEmitter) emit(ctx context.Context, t events.Type, attributes ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	if e.logger != nil {
		args := append(attributes, "event", string(t), "log_type", "audit")
		e.logger.InfoContext(ctx, string(t), args...)
	}
	if e.publisher == nil {
		return
	}
	event := events.New(t, attributes...)
	event.RequestID = requestID
	if err := e.publisher.Publish(ctx, event); err != nil && e.logger != nil {
		e.logger.ErrorContext(ctx, "failed to publish event",
			"event", string(t),
			"error", err,
		)
	}
}
