package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/postsaleshq/copilot-dash/internal/handlers"
	"github.com/postsaleshq/copilot-dash/internal/middleware"
	"github.com/postsaleshq/copilot-dash/internal/registry"
)

// RegisterRoutes sets up all the application routes and boots the modules.
func (s *Server) RegisterRoutes() {
	// Create instances of all application handlers.
	dashboardHandler := handlers.NewDashboardHandler(s.Queries, s.API, s.Cfg)
	contractsHandler := handlers.NewContractsHandler(s.Queries, s.API)
	statusHandler := handlers.NewStatusHandler(s.Queries, s.API)
	rateLimiter := middleware.RateLimiter()

	// Register routes.
	s.E.GET("/", dashboardHandler.DashboardGet)
	s.E.GET("/contracts", contractsHandler.ContractsGet)
	s.E.POST("/dashboard/refresh", dashboardHandler.RefreshPost, rateLimiter)

	s.E.GET("/partials/dashboard/summary", dashboardHandler.SummaryPartial)
	s.E.GET("/partials/dashboard/forecast", dashboardHandler.ForecastPartial)
	s.E.GET("/partials/contracts", contractsHandler.ListPartial)
	s.E.GET("/partials/status", statusHandler.StatusPartial)

	s.E.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})))
	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Register and boot the application modules.
	reg := registry.New(s.Cfg)
	for _, m := range s.modules {
		if err := m.Register(reg); err != nil {
			slog.Error("Failed to register module", "module", m.Name(), "error", err)
			os.Exit(1)
		}
	}
	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(context.Background(), root, reg); err != nil {
			slog.Error("Failed to boot module", "module", m.Name(), "error", err)
			os.Exit(1)
		}
	}
}
