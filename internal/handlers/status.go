package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postsaleshq/copilot-dash/internal/backend"
	"github.com/postsaleshq/copilot-dash/internal/queries"
	"github.com/postsaleshq/copilot-dash/internal/query"
	"github.com/postsaleshq/copilot-dash/web/src/templates/components"
)

// StatusHandler serves the backend connectivity strip in the app shell.
type StatusHandler struct {
	queries *query.Client
	api     *backend.Client
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(q *query.Client, api *backend.Client) *StatusHandler {
	return &StatusHandler{queries: q, api: api}
}

// StatusPartial probes the backend root endpoint. The payload is opaque
// JSON; it is shown in its serialized string form, not interpreted.
func (h *StatusHandler) StatusPartial(c echo.Context) error {
	raw, err := query.FetchAs[json.RawMessage](c.Request().Context(), h.queries, queries.Root(h.api))
	if err != nil {
		return c.Render(http.StatusOK, "", components.BackendStatus(false, err.Error()))
	}
	return c.Render(http.StatusOK, "", components.BackendStatus(true, string(raw)))
}
