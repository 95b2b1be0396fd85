package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracedBridgeRoundtrip(t *testing.T) {
	// A disabled config yields a no-op tracer, which keeps the test free of
	// any exporter dependency.
	ctx := context.Background()
	tracer, cleanup, err := SetupOTel(ctx, DefaultTracingConfig())
	require.NoError(t, err)
	defer cleanup()

	bridge := NewWatermillBridgeWithTracer(tracer)
	require.NotNil(t, bridge)
	defer bridge.Close()

	received := make(chan Message, 1)
	err = bridge.Subscribe(ctx, "dashboard.summary.updated", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	sent := Message{
		Topic:   "dashboard.summary.updated",
		Payload: []byte(`<div id="summary-grid">updated</div>`),
		Metadata: map[string]string{
			"refreshed_at": "2026-08-29T12:00:00Z",
		},
	}
	require.NoError(t, bridge.Publish(ctx, sent))

	select {
	case msg := <-received:
		assert.Equal(t, sent.Topic, msg.Topic)
		assert.Equal(t, string(sent.Payload), string(msg.Payload))
		assert.Equal(t, "2026-08-29T12:00:00Z", msg.Metadata["refreshed_at"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for traced message")
	}
}

func TestLoadTracingConfigFromEnv(t *testing.T) {
	t.Setenv("PUBSUB_TRACING_ENABLED", "true")
	t.Setenv("PUBSUB_TRACING_SERVICE_NAME", "dash-test")
	t.Setenv("PUBSUB_TRACING_ZIPKIN_URL", "http://zipkin:9411/api/v2/spans")

	config := LoadTracingConfigFromEnv()
	assert.True(t, config.Enabled)
	assert.Equal(t, "dash-test", config.ServiceName)
	assert.Equal(t, "http://zipkin:9411/api/v2/spans", config.ZipkinURL)
}
