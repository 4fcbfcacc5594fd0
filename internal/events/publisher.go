package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	dErrors "verisbt/pkg/domain-errors"
)

// Sink persists or forwards events.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher stamps events and hands them to a sink, optionally through a
// buffered background worker.
type Publisher struct {
	sink    Sink
	events  chan Event
	wg      sync.WaitGroup
	logger  *slog.Logger
	metrics PublisherMetrics
	async   bool
}

// PublisherMetrics counts delivery outcomes by event type.
type PublisherMetrics interface {
	EventPublished(eventType string)
	EventFailed(eventType string)
	EventDropped(eventType string)
}

type PublisherOption func(*Publisher)

// WithAsyncBuffer enables background delivery with the given queue size.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.events = make(chan Event, size)
			p.async = true
		}
	}
}

func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithPublisherMetrics(m PublisherMetrics) PublisherOption {
	return func(p *Publisher) {
		p.metrics = m
	}
}

func NewPublisher(sink Sink, opts ...PublisherOption) *Publisher {
	p := &Publisher{sink: sink}
	for _, opt := range opts {
		opt(p)
	}
	if p.async {
		p.wg.Add(1)
		go p.processEvents()
	}
	return p
}

func (p *Publisher) processEvents() {
	defer p.wg.Done()
	for event := range p.events {
		if err := p.deliver(context.Background(), event); err != nil && p.logger != nil {
			p.logger.Error("failed to deliver event",
				"error", err,
				"event_type", event.Type,
				"event_id", event.ID,
			)
		}
	}
}

func (p *Publisher) deliver(ctx context.Context, event Event) error {
	err := p.sink.Append(ctx, event)
	if p.metrics != nil {
		if err != nil {
			p.metrics.EventFailed(string(event.Type))
		} else {
			p.metrics.EventPublished(string(event.Type))
		}
	}
	return err
}

// Close drains queued events and stops the worker.
func (p *Publisher) Close() {
	if p.async && p.events != nil {
		close(p.events)
		p.wg.Wait()
	}
}

func (p *Publisher) Publish(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if !p.async {
		return p.deliver(ctx, event)
	}
	select {
	case p.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		if p.metrics != nil {
			p.metrics.EventDropped(string(event.Type))
		}
		if p.logger != nil {
			p.logger.Warn("event buffer full, event dropped", "event_type", event.Type)
		}
		return dErrors.New(dErrors.CodeInternal, "event buffer full")
	}
}
