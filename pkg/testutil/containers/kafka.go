//go:build integration

package containers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaContainer is a Redpanda broker. Brokers is the single seed address in
// the comma-separated form producer.DefaultConfig accepts.
type KafkaContainer struct {
	Container testcontainers.Container
	Brokers   string
}

func NewKafkaContainer(t *testing.T) *KafkaContainer {
	t.Helper()
	ctx := context.Background()

	container, err := kafka.Run(ctx,
		"redpandadata/redpanda:v24.2.7",
		kafka.WithClusterID("verisbt-test"),
	)
	if err != nil {
		t.Fatalf("start kafka container: %v", err)
	}

	brokers, err := container.Brokers(ctx)
	if err != nil || len(brokers) == 0 {
		_ = container.Terminate(ctx)
		t.Fatalf("kafka brokers: %v", err)
	}

	return &KafkaContainer{Container: container, Brokers: brokers[0]}
}

func (k *KafkaContainer) admin() (*kadm.Client, *kgo.Client, error) {
	client, err := kgo.NewClient(kgo.SeedBrokers(k.Brokers))
	if err != nil {
		return nil, nil, err
	}
	return kadm.NewClient(client), client, nil
}

// CreateTopic creates topic. An existing topic is not an error, so suites
// can share topic names across runs against the same broker.
func (k *KafkaContainer) CreateTopic(ctx context.Context, topic string, partitions int32, replicationFactor int16) error {
	adm, client, err := k.admin()
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := adm.CreateTopics(ctx, partitions, replicationFactor, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// TopicExists reports whether the broker knows topic.
func (k *KafkaContainer) TopicExists(ctx context.Context, topic string) (bool, error) {
	adm, client, err := k.admin()
	if err != nil {
		return false, err
	}
	defer client.Close()

	topics, err := adm.ListTopics(ctx, topic)
	if err != nil {
		return false, err
	}
	return topics.Has(topic), nil
}

// NewConsumer reads topics from the earliest offset without committing.
func (k *KafkaContainer) NewConsumer(_ context.Context, groupID string, topics ...string) (*kgo.Client, error) {
	return kgo.NewClient(
		kgo.SeedBrokers(k.Brokers),
		kgo.ConsumerGroup(groupID),
		kgo.ConsumeTopics(topics...),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
		kgo.DisableAutoCommit(),
	)
}

// WaitForMessage polls until a record satisfies match or timeout elapses,
// returning nil in the latter case.
func (k *KafkaContainer) WaitForMessage(ctx context.Context, client *kgo.Client, timeout time.Duration, match func(*kgo.Record) bool) *kgo.Record {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for ctx.Err() == nil {
		fetches := client.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return nil
		}
		iter := fetches.RecordIter()
		for !iter.Done() {
			if r := iter.Next(); match(r) {
				return r
			}
		}
	}
	return nil
}
