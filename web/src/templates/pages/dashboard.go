package pages

import (
	"github.com/postsaleshq/copilot-dash/web/src/templates/components"

	hx "maragu.dev/gomponents-htmx"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Dashboard is the KPI overview page. The shell renders immediately with a
// single loading indicator per region; htmx fills the regions in, and the
// live socket keeps the summary grid current afterwards.
func Dashboard() cmp.Node {
	return g.Div(
		hx.Ext("ws"),
		cmp.Attr("ws-connect", "/ws/dashboard"),
		g.Div(
			g.Class("flex items-center justify-between mb-6"),
			g.H1(g.Class("text-2xl font-bold text-gray-900"), cmp.Text("Post-Sales Dashboard")),
			g.Form(
				g.Method("post"),
				g.Action("/dashboard/refresh"),
				g.Button(
					g.Type("submit"),
					g.Class("bg-indigo-600 hover:bg-indigo-700 text-white px-4 py-2 rounded-lg text-sm"),
					cmp.Text("Refresh data"),
				),
			),
		),
		g.Div(
			g.ID("summary-region"),
			components.LoadingIndicator("/partials/dashboard/summary", "Loading dashboard data..."),
		),
		g.Div(
			g.Class("mt-10"),
			g.H2(g.Class("text-lg font-semibold mb-4"), cmp.Text("Renewal Forecast (6 months)")),
			g.Div(
				g.ID("forecast-region"),
				components.LoadingIndicator("/partials/dashboard/forecast?months=6", "Loading renewal forecast..."),
			),
		),
	)
}
