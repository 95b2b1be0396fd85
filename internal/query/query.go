// Package query implements the shared client-side data cache backing every
// page and partial. Each piece of remote data is identified by a static key
// and carries a loading/error/data state triple. A single Client instance
// lives for the whole process, mirroring the one global cache a browser tab
// would hold.
package query

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Status describes the lifecycle phase of a cached entry.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is the observable state of one cache entry.
type State struct {
	Status    Status
	Data      any
	Err       error
	UpdatedAt time.Time
}

// Definition describes how to fetch one keyed piece of data. TTL controls
// how long a resolved value (or error) is served without refetching; a zero
// TTL means every Fetch revalidates.
type Definition struct {
	Key   string
	TTL   time.Duration
	Fetch func(ctx context.Context) (any, error)
}

type entry struct {
	state    State
	ttl      time.Duration
	inflight chan struct{} // non-nil while a fetch is running; closed on completion
}

// Client is the process-wide query cache. Concurrent fetches for the same
// key are deduplicated: one request hits the network and all waiters share
// its result. Stale successful entries are served immediately while a
// background revalidation runs.
type Client struct {
	mu      sync.Mutex
	entries map[string]*entry
	metrics *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithMetrics attaches cache counters to the client.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates an empty query cache.
func New(opts ...Option) *Client {
	c := &Client{entries: make(map[string]*entry)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch resolves the data for def.Key, consulting the cache first.
//
//   - A fresh success or error is returned as-is. Errors are cached too:
//     there is no retry policy, a failed fetch stays failed until its TTL
//     lapses or the key is invalidated.
//   - A stale success is returned immediately and revalidated in the
//     background.
//   - A stale error triggers a synchronous refetch.
//   - If a fetch for the key is already running, Fetch waits for it and
//     shares its result.
func (c *Client) Fetch(ctx context.Context, def Definition) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[def.Key]
	if !ok {
		e = &entry{state: State{Status: StatusLoading}, ttl: def.TTL}
		c.entries[def.Key] = e
	}
	e.ttl = def.TTL

	if e.state.Status == StatusSuccess {
		if c.fresh(e) {
			c.mu.Unlock()
			c.metrics.hit()
			return e.state.Data, nil
		}
		// Serve stale data and revalidate in the background unless a
		// fetch is already underway.
		data := e.state.Data
		if e.inflight == nil {
			c.beginFetch(e)
			go c.runFetch(context.WithoutCancel(ctx), def, e)
		}
		c.mu.Unlock()
		c.metrics.hit()
		return data, nil
	}

	if e.state.Status == StatusError && c.fresh(e) {
		err := e.state.Err
		c.mu.Unlock()
		c.metrics.hit()
		return nil, err
	}

	if e.inflight != nil {
		done := e.inflight
		c.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		c.mu.Lock()
		state := e.state
		c.mu.Unlock()
		return state.Data, state.Err
	}

	c.beginFetch(e)
	c.mu.Unlock()
	c.metrics.miss()
	return c.runFetch(ctx, def, e)
}

// Refetch bypasses the cache entirely: it always hits the network and
// replaces the cached entry with the result. Waiters piggyback on a fetch
// that is already in flight. The live poller uses this so that pushed
// fragments and subsequent page loads agree on the data.
func (c *Client) Refetch(ctx context.Context, def Definition) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[def.Key]
	if !ok {
		e = &entry{state: State{Status: StatusLoading}, ttl: def.TTL}
		c.entries[def.Key] = e
	}
	if e.inflight != nil {
		done := e.inflight
		c.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		c.mu.Lock()
		state := e.state
		c.mu.Unlock()
		return state.Data, state.Err
	}
	c.beginFetch(e)
	c.mu.Unlock()
	c.metrics.miss()
	return c.runFetch(ctx, def, e)
}

// Snapshot returns the current state for a key without triggering a fetch.
// Unknown keys report a loading state with a zero timestamp.
func (c *Client) Snapshot(key string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		return e.state
	}
	return State{Status: StatusLoading}
}

// Invalidate drops the entry for a key so the next Fetch hits the network.
// An in-flight fetch keeps running; its waiters still receive its result,
// but the cache forgets it.
func (c *Client) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// fresh reports whether the entry's resolved state is within its TTL.
// Callers must hold c.mu.
func (c *Client) fresh(e *entry) bool {
	if e.state.UpdatedAt.IsZero() {
		return false
	}
	return e.ttl > 0 && time.Since(e.state.UpdatedAt) < e.ttl
}

// beginFetch marks the entry as having a fetch in flight. Callers must hold
// c.mu.
func (c *Client) beginFetch(e *entry) {
	e.inflight = make(chan struct{})
}

// runFetch executes the fetch and publishes the result to the entry.
func (c *Client) runFetch(ctx context.Context, def Definition, e *entry) (any, error) {
	data, err := def.Fetch(ctx)

	c.mu.Lock()
	if err != nil {
		e.state = State{Status: StatusError, Err: err, UpdatedAt: time.Now()}
		c.metrics.refreshFailure()
	} else {
		e.state = State{Status: StatusSuccess, Data: data, UpdatedAt: time.Now()}
	}
	close(e.inflight)
	e.inflight = nil
	c.mu.Unlock()

	return data, err
}

// FetchAs is a typed convenience wrapper around Client.Fetch.
func FetchAs[T any](ctx context.Context, c *Client, def Definition) (T, error) {
	data, err := c.Fetch(ctx, def)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := data.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("query %q resolved to %T, expected %T", def.Key, data, zero)
	}
	return typed, nil
}

// RefetchAs is a typed convenience wrapper around Client.Refetch.
func RefetchAs[T any](ctx context.Context, c *Client, def Definition) (T, error) {
	data, err := c.Refetch(ctx, def)
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := data.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("query %q resolved to %T, expected %T", def.Key, data, zero)
	}
	return typed, nil
}
