package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIError is a non-2xx response from the copilot backend. The backend wraps
// error messages as {"detail": "..."}; when the body isn't in that shape the
// raw body is used as the detail instead.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// Client issues requests against the copilot backend API. It is safe for
// concurrent use and is shared across handlers, the CLI and the live poller.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the given backend origin, e.g.
// "http://localhost:8000".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend origin this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Root probes the backend's root endpoint. The payload is treated as opaque
// JSON; callers stringify it for display rather than interpreting it.
func (c *Client) Root(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Health calls the backend's health endpoint and reports whether it answered
// with a 2xx status.
func (c *Client) Health(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/health", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Summary fetches the dashboard summary metrics.
func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := c.getJSON(ctx, "/api/dashboard/summary", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Metrics fetches the detailed business metrics: contract, customer and
// payment aggregates beyond what the summary carries.
func (c *Client) Metrics(ctx context.Context) (*BusinessMetrics, error) {
	var m BusinessMetrics
	if err := c.getJSON(ctx, "/api/dashboard/metrics", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// RenewalForecast fetches the contract renewal forecast for the next
// `months` months.
func (c *Client) RenewalForecast(ctx context.Context, months int) (Forecast, error) {
	q := url.Values{}
	if months > 0 {
		q.Set("months", strconv.Itoa(months))
	}
	var f Forecast
	if err := c.getJSON(ctx, "/api/dashboard/renewal-forecast", q, &f); err != nil {
		return nil, err
	}
	return f, nil
}

// ListContracts fetches contracts, optionally filtered by status and
// paginated with skip/limit.
func (c *Client) ListContracts(ctx context.Context, opts ListOptions) ([]Contract, error) {
	q := url.Values{}
	if opts.Skip > 0 {
		q.Set("skip", strconv.Itoa(opts.Skip))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	var contracts []Contract
	if err := c.getJSON(ctx, "/api/contracts/", q, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// GetContract fetches a single contract by ID.
func (c *Client) GetContract(ctx context.Context, id int) (*Contract, error) {
	var contract Contract
	if err := c.getJSON(ctx, fmt.Sprintf("/api/contracts/%d", id), nil, &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

// errorDetail extracts FastAPI's {"detail": "..."} message, falling back to
// the raw body.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(body))
}
