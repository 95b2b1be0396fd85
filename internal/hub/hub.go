package hub

import (
	"context"
	"log/slog"
)

// Subscriber is one connected dashboard. The hub delivers rendered HTML
// fragments to its Send channel; the owning connection drains it.
type Subscriber struct {
	// ID identifies the subscriber in logs.
	ID string

	// Send is a buffered channel of outbound fragments. The hub writes,
	// the connection's write pump reads.
	Send chan []byte
}

// Hub fans rendered fragments out to every connected dashboard. All state is
// owned by the Run goroutine; other goroutines communicate over channels.
type Hub struct {
	subscribers map[*Subscriber]bool

	// Broadcast accepts fragments to deliver to all subscribers.
	Broadcast chan []byte

	// Register and Unregister manage subscriber membership.
	Register   chan *Subscriber
	Unregister chan *Subscriber

	done chan struct{}
}

// NewHub creates a Hub. Call Run in its own goroutine before using it.
func NewHub() *Hub {
	return &Hub{
		Broadcast:   make(chan []byte),
		Register:    make(chan *Subscriber),
		Unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
		done:        make(chan struct{}),
	}
}

// Done is closed once Run has stopped. Senders on the hub's channels must
// select on it, since a stopped hub no longer receives.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Run processes hub traffic until the context is canceled, at which point
// every subscriber channel is closed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for sub := range h.subscribers {
				close(sub.Send)
				delete(h.subscribers, sub)
			}
			close(h.done)
			return

		case sub := <-h.Register:
			h.subscribers[sub] = true
			slog.Debug("Dashboard subscriber registered", "id", sub.ID, "total", len(h.subscribers))

		case sub := <-h.Unregister:
			if _, ok := h.subscribers[sub]; ok {
				delete(h.subscribers, sub)
				close(sub.Send)
				slog.Debug("Dashboard subscriber unregistered", "id", sub.ID, "total", len(h.subscribers))
			}

		case fragment := <-h.Broadcast:
			for sub := range h.subscribers {
				// Non-blocking send: a full buffer means the client is
				// lagging or gone, so it gets dropped.
				select {
				case sub.Send <- fragment:
				default:
					close(sub.Send)
					delete(h.subscribers, sub)
					slog.Warn("Dropping slow dashboard subscriber", "id", sub.ID, "total", len(h.subscribers))
				}
			}
		}
	}
}
