package layouts

import (
	hx "maragu.dev/gomponents-htmx"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Copilot Dash"
	}
	return "Copilot Dash"
}

// Base is the application shell shared by every page: navigation, the
// backend status strip, flash messages and the page content.
func Base(title string, flashes map[string][]interface{}, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12/dist/ext/ws.js")),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
				g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
			),
			g.Body(
				g.Class("bg-gray-100 min-h-screen"),
				g.Nav(
					g.Class("bg-indigo-700 text-white shadow"),
					g.Div(
						g.Class("container mx-auto px-4 py-3 flex items-center justify-between"),
						g.A(g.Href("/"), g.Class("text-xl font-bold"), cmp.Text("Copilot Dash")),
						g.Div(
							g.Class("space-x-6"),
							g.A(g.Href("/"), g.Class("hover:underline"), cmp.Text("Dashboard")),
							g.A(g.Href("/contracts"), g.Class("hover:underline"), cmp.Text("Contracts")),
						),
					),
				),
				// The status strip probes the backend root once the page
				// has loaded, mirroring the app shell's connectivity check.
				g.Div(
					g.ID("backend-status"),
					g.Class("container mx-auto px-4 pt-4"),
					hx.Get("/partials/status"),
					hx.Trigger("load"),
					hx.Swap("innerHTML"),
				),
				flashMessages(flashes),
				g.Main(
					g.Class("container mx-auto px-4 py-6"),
					content,
				),
			),
		),
	)
}

// flashMessages renders one banner per flash message, keyed by severity.
func flashMessages(flashes map[string][]interface{}) cmp.Node {
	if len(flashes) == 0 {
		return nil
	}

	var banners []cmp.Node
	for _, msg := range flashes["success"] {
		if s, ok := msg.(string); ok {
			banners = append(banners, g.Div(
				g.Class("bg-green-100 border border-green-400 text-green-800 px-4 py-2 rounded mb-2"),
				cmp.Text(s),
			))
		}
	}
	for _, msg := range flashes["error"] {
		if s, ok := msg.(string); ok {
			banners = append(banners, g.Div(
				g.Class("bg-red-100 border border-red-400 text-red-800 px-4 py-2 rounded mb-2"),
				cmp.Text(s),
			))
		}
	}

	return g.Div(
		g.Class("container mx-auto px-4 pt-4"),
		cmp.Group(banners),
	)
}
