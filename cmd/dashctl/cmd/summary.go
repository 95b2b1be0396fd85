package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the dashboard KPI summary",
	Long: `Summary fetches GET /api/dashboard/summary and prints the same numbers
the dashboard's KPI cards show, plus upcoming payment reminders.`,
	Run: summaryHandler,
}

func summaryHandler(cmd *cobra.Command, args []string) {
	api := apiClient()

	summary, err := api.Summary(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to fetch summary: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Total contracts:      %s\n", printer.Sprint(number.Decimal(summary.TotalContracts)))
	fmt.Printf("Total contract value: $%s\n", printer.Sprint(number.Decimal(summary.TotalContractValue, number.MaxFractionDigits(0))))
	fmt.Printf("Expiring in 30 days:  %d\n", summary.ContractsExpiring30Days)
	fmt.Printf("Expiring in 60 days:  %d\n", summary.ContractsExpiring60Days)
	fmt.Printf("Expiring in 90 days:  %d\n", summary.ContractsExpiring90Days)

	if len(summary.PaymentReminders) > 0 {
		fmt.Println("\nUpcoming payments:")
		for _, r := range summary.PaymentReminders {
			fmt.Printf("  %s  %s  $%s (%s)\n",
				r.NextPaymentDate,
				r.ContractNumber,
				printer.Sprint(number.Decimal(r.Amount, number.MaxFractionDigits(0))),
				r.PaymentTerms,
			)
		}
	}
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
