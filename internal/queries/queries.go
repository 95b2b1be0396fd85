// Package queries defines the application's named queries: the keys, TTLs
// and fetch functions the shared cache resolves against the backend API.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/postsaleshq/copilot-dash/internal/backend"
	"github.com/postsaleshq/copilot-dash/internal/query"
)

const (
	// KeySummary identifies the dashboard summary payload.
	KeySummary = "dashboard.summary"
	// KeyRoot identifies the backend root connectivity probe.
	KeyRoot = "backend.root"
)

// rootTTL keeps the status strip from hammering the backend on every page
// load while still noticing outages quickly.
const rootTTL = 15 * time.Second

// contractsTTL is short: the list reflects filter changes, so cache only
// long enough to absorb htmx re-requests.
const contractsTTL = 10 * time.Second

// Summary is the dashboard summary query.
func Summary(api *backend.Client, ttl time.Duration) query.Definition {
	return query.Definition{
		Key: KeySummary,
		TTL: ttl,
		Fetch: func(ctx context.Context) (any, error) {
			return api.Summary(ctx)
		},
	}
}

// Root is the connectivity probe against the backend's root endpoint.
func Root(api *backend.Client) query.Definition {
	return query.Definition{
		Key: KeyRoot,
		TTL: rootTTL,
		Fetch: func(ctx context.Context) (any, error) {
			return api.Root(ctx)
		},
	}
}

// Forecast is the renewal forecast query for a given horizon. Each horizon
// caches under its own key.
func Forecast(api *backend.Client, months int) query.Definition {
	return query.Definition{
		Key: fmt.Sprintf("dashboard.forecast.%d", months),
		TTL: time.Minute,
		Fetch: func(ctx context.Context) (any, error) {
			return api.RenewalForecast(ctx, months)
		},
	}
}

// Contracts is the contract list query for one filter/pagination combination.
func Contracts(api *backend.Client, opts backend.ListOptions) query.Definition {
	return query.Definition{
		Key: fmt.Sprintf("contracts.list.%s.%d.%d", opts.Status, opts.Skip, opts.Limit),
		TTL: contractsTTL,
		Fetch: func(ctx context.Context) (any, error) {
			return api.ListContracts(ctx, opts)
		},
	}
}
