package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/number"
)

var contractCmd = &cobra.Command{
	Use:   "contract <id>",
	Short: "Show a single contract",
	Long:  `Contract fetches GET /api/contracts/{id} and prints the full record.`,
	Args:  cobra.ExactArgs(1),
	Run:   contractHandler,
}

func contractHandler(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: contract id must be a number, got %q\n", args[0])
		os.Exit(1)
	}

	api := apiClient()
	c, err := api.GetContract(context.Background(), id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to fetch contract %d: %v\n", id, err)
		os.Exit(1)
	}

	fmt.Printf("Number:   %s\n", c.ContractNumber)
	fmt.Printf("Title:    %s\n", c.Title)
	fmt.Printf("Status:   %s\n", c.Status)
	if c.StartDate != nil {
		fmt.Printf("Start:    %s\n", c.StartDate.Format("2006-01-02"))
	}
	if c.RenewalDate != nil {
		fmt.Printf("Renewal:  %s\n", c.RenewalDate.Format("2006-01-02"))
	}
	if c.EndDate != nil {
		fmt.Printf("End:      %s\n", c.EndDate.Format("2006-01-02"))
	}
	if c.TotalValue != nil {
		fmt.Printf("Value:    $%s\n", printer.Sprint(number.Decimal(*c.TotalValue, number.MaxFractionDigits(0))))
	}
	if c.PaymentTerms != nil {
		fmt.Printf("Terms:    %s\n", *c.PaymentTerms)
	}
	if c.PaymentFrequency != nil {
		fmt.Printf("Payments: %s\n", *c.PaymentFrequency)
	}
	if len(c.Obligations) > 0 {
		fmt.Println("Obligations:")
		for _, o := range c.Obligations {
			fmt.Printf("  - %s\n", o)
		}
	}
}

func init() {
	rootCmd.AddCommand(contractCmd)
}
