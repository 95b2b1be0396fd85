package pubsub

import (
	"context"
)

// Message is the envelope passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to
	// (e.g. "dashboard.summary.updated").
	Topic string
	// Payload contains the raw message data, typically a rendered HTML
	// fragment or JSON.
	Payload []byte
	// Metadata carries arbitrary key-value context (e.g. timestamps).
	Metadata map[string]string
}

// Handler processes one received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the topic, processing messages with
	// the handler. It returns once the subscription is active; delivery
	// happens on a background goroutine until the context is canceled.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
