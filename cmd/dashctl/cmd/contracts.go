package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/number"

	"github.com/postsaleshq/copilot-dash/internal/backend"
)

var (
	contractsStatus string
	contractsSkip   int
	contractsLimit  int
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "List contracts",
	Long: `Contracts fetches GET /api/contracts/ and prints the result as a table.
The same filters the contracts page offers are available as flags.`,
	Run: contractsHandler,
}

func contractsHandler(cmd *cobra.Command, args []string) {
	api := apiClient()

	contracts, err := api.ListContracts(context.Background(), backend.ListOptions{
		Status: contractsStatus,
		Skip:   contractsSkip,
		Limit:  contractsLimit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list contracts: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tTITLE\tSTATUS\tRENEWAL\tVALUE")
	fmt.Fprintln(w, "------\t-----\t------\t-------\t-----")
	for _, c := range contracts {
		renewal := "-"
		if c.RenewalDate != nil {
			renewal = c.RenewalDate.Format("2006-01-02")
		}
		value := "-"
		if c.TotalValue != nil {
			value = "$" + printer.Sprint(number.Decimal(*c.TotalValue, number.MaxFractionDigits(0)))
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ContractNumber, c.Title, c.Status, renewal, value)
	}
	w.Flush()

	fmt.Printf("\n%d contract(s)\n", len(contracts))
}

func init() {
	contractsCmd.Flags().StringVar(&contractsStatus, "status", "", "Filter by status (active, expired, pending, terminated)")
	contractsCmd.Flags().IntVar(&contractsSkip, "skip", 0, "Number of contracts to skip")
	contractsCmd.Flags().IntVar(&contractsLimit, "limit", 0, "Maximum number of contracts to return")
	rootCmd.AddCommand(contractsCmd)
}
