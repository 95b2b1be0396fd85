package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/number"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show detailed business metrics",
	Long: `Metrics fetches GET /api/dashboard/metrics and prints the contract,
customer and payment aggregates that go beyond the summary's KPI cards.`,
	Run: metricsHandler,
}

func metricsHandler(cmd *cobra.Command, args []string) {
	api := apiClient()

	m, err := api.Metrics(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to fetch metrics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Contracts:")
	fmt.Printf("  Active:         %d\n", m.Contracts.TotalActive)
	fmt.Printf("  Expired:        %d\n", m.Contracts.TotalExpired)
	fmt.Printf("  Average value:  $%s\n", printer.Sprint(number.Decimal(m.Contracts.AvgValue, number.MaxFractionDigits(0))))
	fmt.Printf("  Total value:    $%s\n", printer.Sprint(number.Decimal(m.Contracts.TotalValue, number.MaxFractionDigits(0))))

	fmt.Println("\nCustomers:")
	fmt.Printf("  Total:          %d\n", m.Customers.Total)
	fmt.Printf("  With contracts: %d\n", m.Customers.WithActiveContracts)

	if len(m.Customers.TopByValue) > 0 {
		fmt.Println("\nTop customers by contract value:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  NAME\tVALUE")
		for _, c := range m.Customers.TopByValue {
			fmt.Fprintf(w, "  %s\t$%s\n", c.Name, printer.Sprint(number.Decimal(c.Value, number.MaxFractionDigits(0))))
		}
		w.Flush()
	}

	fmt.Println("\nPayments:")
	fmt.Printf("  Upcoming (30d): %d\n", m.Payments.Upcoming30Days)
	fmt.Printf("  Overdue:        %d\n", m.Payments.Overdue)
	fmt.Printf("  Expected:       $%s\n", printer.Sprint(number.Decimal(m.Payments.TotalExpected, number.MaxFractionDigits(0))))
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
