package service

import (
	"context"
	"errors"
	"log/slog"

	"verisbt/internal/events"
	"verisbt/internal/protocol/models"
	"verisbt/internal/sentinel"
	id "verisbt/pkg/domain"
	dErrors "verisbt/pkg/domain-errors"
	"verisbt/pkg/requestcontext"
)

// findBinding returns nil without error when key is unbound.
func (s *Service) findBinding(ctx context.Context, key id.TokenKey) (*models.Binding, error) {
	b, err := s.store.FindBinding(ctx, key)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load token binding")
	}
	return b, nil
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
