package app

import (
	"time"

	"github.com/postsaleshq/copilot-dash/internal/backend"
	"github.com/postsaleshq/copilot-dash/internal/hub"
	"github.com/postsaleshq/copilot-dash/internal/modules/live"
	"github.com/postsaleshq/copilot-dash/internal/pubsub"
	"github.com/postsaleshq/copilot-dash/internal/query"
	"github.com/postsaleshq/copilot-dash/internal/rendering"
)

// Dependencies holds the core services that are required by the application's
// modules. This struct is passed from the server to wire up the modules.
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

// liveDeps creates the dependency struct for the live module.
func liveDeps(deps Dependencies) live.Dependencies {
	return live.Dependencies{
		Publisher:    deps.Publisher,
		Subscriber:   deps.Subscriber,
		Renderer:     deps.Renderer,
		Queries:      deps.Queries,
		API:          deps.API,
		Hub:          deps.Hub,
		PollInterval: deps.PollInterval,
		SummaryTTL:   deps.SummaryTTL,
	}
}
