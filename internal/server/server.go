package server

import (
	"context"
	"log/slog"
	"net/url"
	"os"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/postsaleshq/copilot-dash/internal/app"
	"github.com/postsaleshq/copilot-dash/internal/backend"
	"github.com/postsaleshq/copilot-dash/internal/config"
	"github.com/postsaleshq/copilot-dash/internal/handlers"
	"github.com/postsaleshq/copilot-dash/internal/hub"
	"github.com/postsaleshq/copilot-dash/internal/logging"
	"github.com/postsaleshq/copilot-dash/internal/middleware"
	"github.com/postsaleshq/copilot-dash/internal/module"
	"github.com/postsaleshq/copilot-dash/internal/pubsub"
	"github.com/postsaleshq/copilot-dash/internal/query"
	"github.com/postsaleshq/copilot-dash/internal/rendering"
	"github.com/postsaleshq/copilot-dash/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Queries  *query.Client
	API      *backend.Client
	Registry *prometheus.Registry

	hub          *hub.Hub
	bridge       *pubsub.WatermillBridge
	renderer     *rendering.UniversalRenderer
	modules      []module.Module
	traceCleanup func()
}

// New creates a new Server instance.
func New() *Server {
	logging.New() // Initialize the structured logger
	cfg := config.New()
	return NewWithConfig(cfg)
}

// NewWithConfig builds the server around an explicit configuration, which
// lets tests inject their own values.
func NewWithConfig(cfg config.Provider) *Server {
	api := backend.New(cfg.GetAPIBaseURL(), cfg.GetAPITimeout())

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	queries := query.New(query.WithMetrics(query.NewMetrics(promReg)))

	tracer, traceCleanup, err := pubsub.SetupOTel(context.Background(), pubsub.LoadTracingConfigFromEnv())
	if err != nil {
		slog.Error("Failed to set up pub/sub tracing", "error", err)
		os.Exit(1)
	}
	bridge := pubsub.NewWatermillBridgeWithTracer(tracer)
	dashboardHub := hub.NewHub()
	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handlers.NewValidator()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: promReg,
	}))

	// Configure and use session middleware
	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	if cfg.GetProxyEnabled() {
		target, err := url.Parse(cfg.GetAPIBaseURL())
		if err != nil {
			slog.Error("Invalid API base URL", "url", cfg.GetAPIBaseURL(), "error", err)
			os.Exit(1)
		}
		e.Use(middleware.BackendProxy(target, cfg.GetProxyAllPaths()))
	}

	// Serve the embedded static assets.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	modules := app.NewModules(app.Dependencies{
		Publisher:    bridge,
		Subscriber:   bridge,
		Renderer:     renderer,
		Queries:      queries,
		API:          api,
		Hub:          dashboardHub,
		PollInterval: cfg.GetLivePollInterval(),
		SummaryTTL:   cfg.GetSummaryTTL(),
	})

	return &Server{
		E:            e,
		Cfg:          cfg,
		Queries:      queries,
		API:          api,
		Registry:     promReg,
		hub:          dashboardHub,
		bridge:       bridge,
		renderer:     renderer,
		modules:      modules,
		traceCleanup: traceCleanup,
	}
}

// Hub is a getter for the server's dashboard hub, useful for testing.
func (s *Server) Hub() *hub.Hub {
	return s.hub
}
