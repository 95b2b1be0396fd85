package live

import (
	"context"
	"log/slog"

	"github.com/coder/websocket"

	"github.com/postsaleshq/copilot-dash/internal/hub"
)

// Client is the middleman between one WebSocket connection and the hub.
type Client struct {
	conn       *websocket.Conn
	hub        *hub.Hub
	subscriber *hub.Subscriber
}

// readPump drains the connection until it closes. Dashboards don't send
// anything meaningful upstream; reading is only needed to notice
// disconnects and handle control frames.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.Unregister <- c.subscriber:
		case <-c.hub.Done():
		}
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		_, msg, err := c.conn.Read(context.Background())
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || websocket.CloseStatus(err) == websocket.StatusGoingAway {
				slog.Debug("Dashboard WebSocket closed normally", "id", c.subscriber.ID)
			} else {
				slog.Error("Dashboard readPump error", "id", c.subscriber.ID, "error", err)
			}
			break
		}
		slog.Debug("Ignoring message from dashboard client", "id", c.subscriber.ID, "bytes", len(msg))
	}
}

// writePump forwards hub fragments to the WebSocket connection.
func (c *Client) writePump() {
	defer func() {
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()
	for fragment := range c.subscriber.Send {
		if err := c.conn.Write(context.Background(), websocket.MessageText, fragment); err != nil {
			slog.Error("Dashboard writePump error", "id", c.subscriber.ID, "error", err)
			return
		}
	}
}
