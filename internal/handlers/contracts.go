package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postsaleshq/copilot-dash/internal/backend"
	"github.com/postsaleshq/copilot-dash/internal/queries"
	"github.com/postsaleshq/copilot-dash/internal/query"
	"github.com/postsaleshq/copilot-dash/internal/view"
	"github.com/postsaleshq/copilot-dash/web/src/templates/components"
	"github.com/postsaleshq/copilot-dash/web/src/templates/layouts"
	"github.com/postsaleshq/copilot-dash/web/src/templates/pages"
)

// defaultContractPageSize caps the list when the client doesn't ask for a
// specific limit, matching the backend's own default.
const defaultContractPageSize = 100

// ContractsHandler serves the contract list page and its htmx partial.
type ContractsHandler struct {
	queries *query.Client
	api     *backend.Client
}

// NewContractsHandler creates a new ContractsHandler.
func NewContractsHandler(q *query.Client, api *backend.Client) *ContractsHandler {
	return &ContractsHandler{queries: q, api: api}
}

// ContractsGet renders the contracts page shell.
func (h *ContractsHandler) ContractsGet(c echo.Context) error {
	page := layouts.Base("Contracts", view.GetFlashes(c), pages.Contracts())
	return c.Render(http.StatusOK, "", page)
}

// ListPartial renders the contract table for the requested filter.
func (h *ContractsHandler) ListPartial(c echo.Context) error {
	var req ContractListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid contract list parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid contract list parameters")
	}
	if req.Limit == 0 {
		req.Limit = defaultContractPageSize
	}

	opts := backend.ListOptions{Skip: req.Skip, Limit: req.Limit, Status: req.Status}
	def := queries.Contracts(h.api, opts)
	contracts, err := query.FetchAs[[]backend.Contract](c.Request().Context(), h.queries, def)
	if err != nil {
		return c.Render(http.StatusOK, "", components.ErrorAlert("Failed to load contracts: "+err.Error()))
	}
	return c.Render(http.StatusOK, "", components.ContractsTable(contracts))
}
