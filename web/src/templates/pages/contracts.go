package pages

import (
	"github.com/postsaleshq/copilot-dash/web/src/templates/components"

	hx "maragu.dev/gomponents-htmx"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// contractStatuses are the filter options offered on the contracts page,
// matching the statuses the backend assigns.
var contractStatuses = []string{"active", "expired", "pending", "terminated"}

// Contracts is the contract list page: a status filter plus a lazily loaded
// table region.
func Contracts() cmp.Node {
	return g.Div(
		g.Div(
			g.Class("flex items-center justify-between mb-6"),
			g.H1(g.Class("text-2xl font-bold text-gray-900"), cmp.Text("Contracts")),
			g.Select(
				g.Name("status"),
				g.Class("border rounded-lg px-3 py-2 text-sm bg-white"),
				hx.Get("/partials/contracts"),
				hx.Target("#contracts-region"),
				hx.Swap("innerHTML"),
				g.Option(g.Value(""), cmp.Text("All statuses")),
				cmp.Map(contractStatuses, func(s string) cmp.Node {
					return g.Option(g.Value(s), cmp.Text(s))
				}),
			),
		),
		g.Div(
			g.ID("contracts-region"),
			components.LoadingIndicator("/partials/contracts", "Loading contracts..."),
		),
	)
}
