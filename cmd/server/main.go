package main

import (
	"github.com/postsaleshq/copilot-dash/internal/server"
)

func main() {
	// Create a new server instance.
	s := server.New()

	// Register all application routes and boot the modules.
	s.RegisterRoutes()

	// Start the server.
	s.Start(s.Cfg.GetAppAddr())
}
