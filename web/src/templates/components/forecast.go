package components

import (
	"sort"

	"github.com/postsaleshq/copilot-dash/internal/backend"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ForecastTable renders the renewal forecast grouped by month. The backend
// keys months as "YYYY-MM", so a lexicographic sort is chronological.
func ForecastTable(f backend.Forecast) gomponents.Node {
	if len(f) == 0 {
		return Div(
			Class("forecast-empty text-gray-500 py-4"),
			gomponents.Text("No renewals in the selected window."),
		)
	}

	months := make([]string, 0, len(f))
	for month := range f {
		months = append(months, month)
	}
	sort.Strings(months)

	return Table(
		Class("forecast-table w-full bg-white rounded-xl shadow text-sm"),
		THead(
			Tr(
				Class("text-left text-gray-500 uppercase text-xs"),
				Th(Class("px-4 py-3"), gomponents.Text("Month")),
				Th(Class("px-4 py-3 text-right"), gomponents.Text("Renewals")),
				Th(Class("px-4 py-3 text-right"), gomponents.Text("Value at Risk")),
			),
		),
		TBody(
			gomponents.Map(months, func(month string) gomponents.Node {
				m := f[month]
				return Tr(
					Class("border-t"),
					Td(Class("px-4 py-2 font-mono"), gomponents.Text(month)),
					Td(Class("px-4 py-2 text-right"), gomponents.Text(FormatCount(m.Count))),
					Td(Class("px-4 py-2 text-right"), gomponents.Text(FormatCurrency(m.TotalValue))),
				)
			}),
		),
	)
}
