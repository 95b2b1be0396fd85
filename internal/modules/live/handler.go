package live

import (
	"log/slog"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/postsaleshq/copilot-dash/internal/hub"
)

// Handler upgrades dashboard connections to WebSockets and attaches them to
// the hub.
type Handler struct {
	hub *hub.Hub
}

// NewHandler creates a new live handler.
func NewHandler(h *hub.Hub) *Handler {
	return &Handler{hub: h}
}

// ServeWS handles WebSocket connection requests from open dashboards.
func (h *Handler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true, // In production, check origin.
	})
	if err != nil {
		slog.Error("Failed to upgrade dashboard WebSocket", "error", err)
		return err
	}

	sub := &hub.Subscriber{
		ID:   uuid.NewString(),
		Send: make(chan []byte, 256),
	}
	client := &Client{conn: conn, hub: h.hub, subscriber: sub}

	// A stopped hub no longer receives registrations; refuse the
	// connection instead of blocking.
	select {
	case h.hub.Register <- sub:
	case <-h.hub.Done():
		conn.Close(websocket.StatusGoingAway, "shutting down")
		return nil
	}

	go client.writePump()
	go client.readPump()

	return nil
}
