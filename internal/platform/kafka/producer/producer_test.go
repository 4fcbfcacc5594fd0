package producer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twmb/franz-go/pkg/kgo"
)

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, splitBrokers(""))
}

func TestNewRequiresBrokers(t *testing.T) {
	_, err := New(Config{Brokers: " , "}, nil)
	assert.Error(t, err)
}

func TestToRecordCopiesHeaders(t *testing.T) {
	r := toRecord(&Message{Topic: "t", Key: []byte("k"), Value: []byte("v"), Headers: map[string]string{"h": "1"}})
	assert.Equal(t, "t", r.Topic)
	assert.Equal(t, []kgo.RecordHeader{{Key: "h", Value: []byte("1")}}, r.Headers)
}
