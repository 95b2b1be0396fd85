package live

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/postsaleshq/copilot-dash/internal/backend"
	"github.com/postsaleshq/copilot-dash/internal/pubsub"
	"github.com/postsaleshq/copilot-dash/internal/query"
	"github.com/postsaleshq/copilot-dash/internal/rendering"
	"github.com/postsaleshq/copilot-dash/web/src/templates/components"
)

// Poller refetches the dashboard summary on an interval and publishes a
// rendered fragment whenever the payload changes. It refetches through the
// shared query cache so pushed fragments and subsequent page loads agree.
type Poller struct {
	queries   *query.Client
	def       query.Definition
	publisher pubsub.Publisher
	renderer  rendering.Renderer
	interval  time.Duration

	lastPayload []byte
}

// NewPoller creates a Poller for the given summary query definition.
func NewPoller(q *query.Client, def query.Definition, pub pubsub.Publisher, r rendering.Renderer, interval time.Duration) *Poller {
	return &Poller{
		queries:   q,
		def:       def,
		publisher: pub,
		renderer:  r,
		interval:  interval,
	}
}

// Run polls until the context is canceled. A non-positive interval disables
// polling entirely rather than panicking the ticker.
func (p *Poller) Run(ctx context.Context) {
	if p.interval <= 0 {
		slog.Warn("Summary polling disabled", "interval", p.interval)
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Tick(ctx); err != nil {
				slog.Warn("Summary poll failed", "error", err)
			}
		}
	}
}

// Tick performs one poll cycle: refetch, compare, publish on change.
func (p *Poller) Tick(ctx context.Context) error {
	summary, err := query.RefetchAs[*backend.Summary](ctx, p.queries, p.def)
	if err != nil {
		// The error is now cached too; connected dashboards keep their
		// last good fragment rather than being pushed an error.
		return err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	if bytes.Equal(payload, p.lastPayload) {
		return nil
	}

	fragment, err := p.renderer.RenderComponent(ctx, components.SummaryGrid(summary, true))
	if err != nil {
		return err
	}

	if err := p.publisher.Publish(ctx, pubsub.Message{
		Topic:   TopicSummaryUpdated,
		Payload: fragment,
		Metadata: map[string]string{
			"refreshed_at": time.Now().UTC().Format(time.RFC3339),
		},
	}); err != nil {
		return err
	}

	p.lastPayload = payload
	slog.Debug("Published summary update", "bytes", len(fragment))
	return nil
}
