package live

import (
	"context"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/postsaleshq/copilot-dash/internal/backend"
	"github.com/postsaleshq/copilot-dash/internal/hub"
	"github.com/postsaleshq/copilot-dash/internal/module"
	"github.com/postsaleshq/copilot-dash/internal/pubsub"
	"github.com/postsaleshq/copilot-dash/internal/queries"
	"github.com/postsaleshq/copilot-dash/internal/query"
	"github.com/postsaleshq/copilot-dash/internal/registry"
	"github.com/postsaleshq/copilot-dash/internal/rendering"
)

// PollerKey exposes the module's poller through the registry, mainly so
// tests and the server can reach it.
var PollerKey = registry.Key[*Poller]("live.poller")

// Dependencies holds the services the live module requires.
type Dependencies struct {
	Publisher    pubsub.Publisher
	Subscriber   pubsub.Subscriber
	Renderer     rendering.Renderer
	Queries      *query.Client
	API          *backend.Client
	Hub          *hub.Hub
	PollInterval time.Duration
	SummaryTTL   time.Duration
}

// LiveModule pushes summary updates to open dashboards over a WebSocket.
type LiveModule struct {
	module.BaseModule
	deps   Dependencies
	cancel context.CancelFunc
}

// New creates a new instance of the LiveModule.
func New(deps Dependencies) *LiveModule {
	return &LiveModule{deps: deps}
}

// Name returns the unique name for the module.
func (m *LiveModule) Name() string {
	return "live"
}

// Register creates the summary poller and shares it via the registry.
func (m *LiveModule) Register(reg *registry.Registry) error {
	def := queries.Summary(m.deps.API, m.deps.SummaryTTL)
	poller := NewPoller(m.deps.Queries, def, m.deps.Publisher, m.deps.Renderer, m.deps.PollInterval)
	registry.Set(reg, PollerKey, poller)
	return nil
}

// Boot starts the hub, the poller and the pubsub-to-hub bridge, and
// registers the WebSocket route.
func (m *LiveModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting LiveModule")

	runCtx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	go m.deps.Hub.Run(runCtx)

	// Bridge: every published fragment is broadcast to all subscribers.
	if err := m.deps.Subscriber.Subscribe(runCtx, TopicSummaryUpdated, func(ctx context.Context, msg pubsub.Message) error {
		select {
		case m.deps.Hub.Broadcast <- msg.Payload:
		case <-m.deps.Hub.Done():
		}
		return nil
	}); err != nil {
		cancel()
		return err
	}

	poller := registry.MustGet(reg, PollerKey)
	go poller.Run(runCtx)

	handler := NewHandler(m.deps.Hub)
	g.GET("/ws/dashboard", handler.ServeWS)
	return nil
}

// Shutdown stops the poller, bridge and hub.
func (m *LiveModule) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
