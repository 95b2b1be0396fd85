package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/postsaleshq/copilot-dash/internal/backend"
	"github.com/postsaleshq/copilot-dash/internal/config"
	"github.com/postsaleshq/copilot-dash/internal/queries"
	"github.com/postsaleshq/copilot-dash/internal/query"
	"github.com/postsaleshq/copilot-dash/internal/view"
	"github.com/postsaleshq/copilot-dash/web/src/templates/components"
	"github.com/postsaleshq/copilot-dash/web/src/templates/layouts"
	"github.com/postsaleshq/copilot-dash/web/src/templates/pages"
)

// DashboardHandler serves the KPI overview page and its htmx partials.
type DashboardHandler struct {
	queries *query.Client
	api     *backend.Client
	cfg     config.Provider
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(q *query.Client, api *backend.Client, cfg config.Provider) *DashboardHandler {
	return &DashboardHandler{queries: q, api: api, cfg: cfg}
}

// DashboardGet renders the dashboard shell. Data regions carry a loading
// indicator each; htmx resolves them against the partial endpoints below.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	page := layouts.Base("Dashboard", view.GetFlashes(c), pages.Dashboard())
	return c.Render(http.StatusOK, "", page)
}

// SummaryPartial resolves the dashboard summary through the shared query
// cache. A failed fetch renders as a plain-text error containing the
// underlying message and no KPI cards.
func (h *DashboardHandler) SummaryPartial(c echo.Context) error {
	def := queries.Summary(h.api, h.cfg.GetSummaryTTL())
	summary, err := query.FetchAs[*backend.Summary](c.Request().Context(), h.queries, def)
	if err != nil {
		return c.Render(http.StatusOK, "", components.ErrorAlert("Failed to load dashboard summary: "+err.Error()))
	}
	return c.Render(http.StatusOK, "", components.SummaryGrid(summary, false))
}

// ForecastPartial renders the renewal forecast table.
func (h *DashboardHandler) ForecastPartial(c echo.Context) error {
	var req ForecastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid forecast parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid forecast parameters")
	}
	if req.Months == 0 {
		req.Months = 6
	}

	def := queries.Forecast(h.api, req.Months)
	forecast, err := query.FetchAs[backend.Forecast](c.Request().Context(), h.queries, def)
	if err != nil {
		return c.Render(http.StatusOK, "", components.ErrorAlert("Failed to load renewal forecast: "+err.Error()))
	}
	return c.Render(http.StatusOK, "", components.ForecastTable(forecast))
}

// RefreshPost invalidates the cached summary so the next load refetches,
// then sends the user back to the dashboard.
func (h *DashboardHandler) RefreshPost(c echo.Context) error {
	h.queries.Invalidate(queries.KeySummary)
	view.SetFlashSuccess(c, "Dashboard data refreshed.")
	return c.Redirect(http.StatusSeeOther, "/")
}
