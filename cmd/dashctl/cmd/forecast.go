package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/number"
)

var forecastMonths int

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Show the contract renewal forecast",
	Long: `Forecast fetches GET /api/dashboard/renewal-forecast and prints the
per-month renewal counts and values in chronological order.`,
	Run: forecastHandler,
}

func forecastHandler(cmd *cobra.Command, args []string) {
	api := apiClient()

	forecast, err := api.RenewalForecast(context.Background(), forecastMonths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to fetch forecast: %v\n", err)
		os.Exit(1)
	}

	months := make([]string, 0, len(forecast))
	for m := range forecast {
		months = append(months, m)
	}
	sort.Strings(months)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tRENEWALS\tVALUE")
	fmt.Fprintln(w, "-----\t--------\t-----")
	for _, m := range months {
		entry := forecast[m]
		fmt.Fprintf(w, "%s\t%d\t$%s\n", m, entry.Count,
			printer.Sprint(number.Decimal(entry.TotalValue, number.MaxFractionDigits(0))))
	}
	w.Flush()
}

func init() {
	forecastCmd.Flags().IntVar(&forecastMonths, "months", 6, "Number of months to forecast")
	rootCmd.AddCommand(forecastCmd)
}
