package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"verisbt/internal/platform/kafka/producer"
)

// MemorySink keeps events in memory. Used by tests and single-node runs.
type MemorySink struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *MemorySink) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

// Types lists event types in delivery order.
func (s *MemorySink) Types() []Type {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Type, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

// LogSink writes events to a structured logger.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Append(ctx context.Context, event Event) error {
	args := []any{"event_id", event.ID, "event_type", event.Type, "log_type", "event"}
	for k, v := range event.Attributes {
		args = append(args, k, v)
	}
	s.logger.InfoContext(ctx, string(event.Type), args...)
	return nil
}

// Producer is the subset of the Kafka producer used by KafkaSink.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaSink publishes each event as a JSON record keyed by event type.
type KafkaSink struct {
	producer Producer
	topic    string
}

func NewKafkaSink(p Producer, topic string) *KafkaSink {
	return &KafkaSink{producer: p, topic: topic}
}

func (s *KafkaSink) Append(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	headers := map[string]string{"event_type": string(event.Type)}
	if event.RequestID != "" {
		headers["request_id"] = event.RequestID
	}
	return s.producer.Produce(ctx, &producer.Message{
		Topic:   s.topic,
		Key:     []byte(event.Type),
		Value:   value,
		Headers: headers,
	})
}
