package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check backend connectivity",
	Long: `Probe calls the backend's root and health endpoints and prints the raw
responses. A non-zero exit code means the backend is unreachable or unhealthy.`,
	Run: probeHandler,
}

func probeHandler(cmd *cobra.Command, args []string) {
	api := apiClient()
	ctx := context.Background()

	root, err := api.Root(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: backend root probe failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("root:   %s\n", string(root))

	health, err := api.Health(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: backend health probe failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("health: %s\n", string(health))
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
