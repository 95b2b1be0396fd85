package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/postsaleshq/copilot-dash/internal/backend"
)

var (
	apiBaseURL string
	apiTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "Copilot Dash CLI tool",
	Long: `dashctl is a command-line companion to the Copilot Dash server.

It talks directly to the copilot backend API, which is useful for checking
connectivity and inspecting the data the dashboard renders without opening
a browser.

Available commands:
  probe      Check backend connectivity
  summary    Show the dashboard KPI summary
  contracts  List contracts
  forecast   Show the contract renewal forecast

Use "dashctl [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// apiClient builds a backend client from the global flags.
func apiClient() *backend.Client {
	return backend.New(apiBaseURL, apiTimeout)
}

func init() {
	defaultURL := os.Getenv("API_BASE_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8000"
	}
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", defaultURL, "Base URL of the copilot backend API")
	rootCmd.PersistentFlags().DurationVar(&apiTimeout, "timeout", 10*time.Second, "Request timeout")
}
