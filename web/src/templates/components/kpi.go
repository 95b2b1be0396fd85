package components

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders a contract value the way the dashboard displays
// money: dollar sign, thousands separators, no cents. 54000 -> "$54,000".
func FormatCurrency(v float64) string {
	return "$" + printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatCount renders an integer metric with thousands separators.
func FormatCount(n int) string {
	return printer.Sprint(number.Decimal(n))
}

// KPICard is a presentational element showing one labeled metric. It holds
// no state; the value arrives fully formatted.
func KPICard(label, value string) gomponents.Node {
	return Div(
		Class("kpi-card bg-white rounded-xl shadow p-6"),
		Div(
			Class("text-sm font-medium text-gray-500 uppercase tracking-wide"),
			gomponents.Text(label),
		),
		Div(
			Class("mt-2 text-3xl font-bold text-gray-900"),
			gomponents.Text(value),
		),
	)
}
