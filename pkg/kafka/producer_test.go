package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestDefaultProducerConfig(t *testing.T) {
	cfg := DefaultProducerConfig([]string{"kafka:9092"})
	assert.Equal(t, []string{"kafka:9092"}, cfg.Brokers)
	assert.Equal(t, 100, cfg.BatchSize)
	assert.Positive(t, cfg.WriteTimeout)
}

func TestNewProducer_CreatesWriter(t *testing.T) {
	p := NewProducer(DefaultProducerConfig([]string{"localhost:9092"}), newTestLogger())
	require.NotNil(t, p)
	assert.NoError(t, p.Close())
}

func TestProducer_Publish_WritesKeyedMessage(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w, logger: newTestLogger()}

	ev, err := NewEvent("cart.updated", "sess-9", "session", "storefront", map[string]int{"count": 2})
	require.NoError(t, err)
	ev.WithCorrelationID("corr-9")

	require.NoError(t, p.Publish(context.Background(), Topic("cart", "updated"), ev))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "storefront.cart.updated", msg.Topic)
	assert.Equal(t, "sess-9", string(msg.Key))
	assert.Equal(t, "cart.updated", header(msg, "event_type"))
	assert.Equal(t, "storefront", header(msg, "source"))
	assert.Equal(t, "corr-9", header(msg, "correlation_id"))

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, ev.EventID, decoded.EventID)
}

func TestProducer_Publish_WrapsWriterError(t *testing.T) {
	cause := errors.New("leader not available")
	p := &Producer{writer: &fakeWriter{err: cause}, logger: newTestLogger()}

	ev, err := NewEvent("cart.updated", "s", "session", "storefront", nil)
	require.NoError(t, err)

	err = p.Publish(context.Background(), "storefront.cart.updated", ev)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "storefront.cart.updated")
}

func TestProducer_Close(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w, logger: newTestLogger()}
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPingBrokers_NoBrokers(t *testing.T) {
	err := PingBrokers(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no brokers configured")
}
