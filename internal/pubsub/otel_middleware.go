package pubsub

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// payloadPreview truncates a payload for span attributes.
func payloadPreview(payload []byte) string {
	preview := string(payload)
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	return preview
}

// PublisherTracingMiddleware wraps a watermill publisher with tracing, so
// every fragment pushed onto the bus shows up as a span.
type PublisherTracingMiddleware struct {
	publisher message.Publisher
	tracer    trace.Tracer
}

// NewPublisherTracingMiddleware creates a new publisher with tracing middleware
func NewPublisherTracingMiddleware(publisher message.Publisher, tracer trace.Tracer) *PublisherTracingMiddleware {
	return &PublisherTracingMiddleware{
		publisher: publisher,
		tracer:    tracer,
	}
}

// Publish wraps the publish operation with tracing
func (p *PublisherTracingMiddleware) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		ctx := msg.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		spanCtx, span := p.tracer.Start(ctx, fmt.Sprintf("pubsub.publish.%s", topic),
			trace.WithAttributes(
				attribute.String("messaging.system", "watermill"),
				attribute.String("messaging.operation", "publish"),
				attribute.String("messaging.destination", topic),
				attribute.String("messaging.message_id", msg.UUID),
				attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
				attribute.String("messaging.message_payload_preview", payloadPreview(msg.Payload)),
			),
		)
		defer span.End()

		msg.SetContext(spanCtx)
	}

	err := p.publisher.Publish(topic, messages...)
	if err != nil {
		for _, msg := range messages {
			if span := trace.SpanFromContext(msg.Context()); span != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
		}
	}

	return err
}

// Close closes the underlying publisher
func (p *PublisherTracingMiddleware) Close() error {
	return p.publisher.Close()
}
