package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"verisbt/internal/platform/kafka/producer"
	"verisbt/internal/platform/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type failingSink struct{ err error }

func (s failingSink) Append(context.Context, Event) error { return s.err }

type captureProducer struct {
	msgs []*producer.Message
	err  error
}

func (p *captureProducer) Produce(_ context.Context, msg *producer.Message) error {
	p.msgs = append(p.msgs, msg)
	return p.err
}

func TestNewFormatsAttributes(t *testing.T) {
	e := New(ProtocolIssuersUpdated, "ids", []string{"1", "2"}, "is_adding", true, "dangling")
	assert.Equal(t, ProtocolIssuersUpdated, e.Type)
	assert.Equal(t, map[string]string{"ids": "[1 2]", "is_adding": "true"}, e.Attributes)
}

func TestPublisherStampsEvents(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink)

	before := time.Now().UTC()
	require.NoError(t, pub.Publish(context.Background(), New(VerifiedSBTDeployed)))

	got := sink.Events()
	require.Len(t, got, 1)
	assert.NotEqual(t, uuid.Nil, got[0].ID)
	assert.False(t, got[0].Timestamp.Before(before))
}

func TestPublisherPropagatesSyncSinkErrors(t *testing.T) {
	pub := NewPublisher(failingSink{err: errors.New("down")})
	assert.Error(t, pub.Publish(context.Background(), New(VerifiedSBTMinted)))
}

func TestAsyncPublisherDrainsOnClose(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink, WithAsyncBuffer(8))

	for _, typ := range []Type{QueryBuildersUpdated, DefaultQueriesUpdated, OrganizationQueriesUpdated} {
		require.NoError(t, pub.Publish(context.Background(), New(typ)))
	}
	pub.Close()

	assert.Equal(t, []Type{QueryBuildersUpdated, DefaultQueriesUpdated, OrganizationQueriesUpdated}, sink.Types())
}

func TestAsyncPublisherSurvivesSinkFailures(t *testing.T) {
	pub := NewPublisher(failingSink{err: errors.New("down")}, WithAsyncBuffer(1))
	require.NoError(t, pub.Publish(context.Background(), New(VerifiedSBTMinted)))
	pub.Close()
}

func TestPublisherCountsOutcomes(t *testing.T) {
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())

	ok := NewPublisher(NewMemorySink(), WithPublisherMetrics(m))
	require.NoError(t, ok.Publish(context.Background(), New(VerifiedSBTMinted)))

	bad := NewPublisher(failingSink{err: errors.New("down")}, WithPublisherMetrics(m))
	require.Error(t, bad.Publish(context.Background(), New(VerifiedSBTMinted)))

	assert.Equal(t, float64(1), promtest.ToFloat64(m.EventsPublished.WithLabelValues(string(VerifiedSBTMinted))))
	assert.Equal(t, float64(1), promtest.ToFloat64(m.EventsFailed.WithLabelValues(string(VerifiedSBTMinted))))
}

func TestKafkaSinkEncodesEvent(t *testing.T) {
	p := &captureProducer{}
	sink := NewKafkaSink(p, "vsbt.events")
	e := New(BaseTokenURIChanged, "base_uri", "ipfs://new/")
	e.ID = uuid.New()
	e.RequestID = "req-7"

	require.NoError(t, sink.Append(context.Background(), e))
	require.Len(t, p.msgs, 1)
	msg := p.msgs[0]
	assert.Equal(t, "vsbt.events", msg.Topic)
	assert.Equal(t, []byte(BaseTokenURIChanged), msg.Key)
	assert.Equal(t, "req-7", msg.Headers["request_id"])

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, e.ID, decoded.ID)
	assert.Equal(t, "ipfs://new/", decoded.Attributes["base_uri"])
}
