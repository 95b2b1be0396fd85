package components

import (
	"github.com/postsaleshq/copilot-dash/internal/backend"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContractsTable renders the contract list for the contracts page.
func ContractsTable(contracts []backend.Contract) gomponents.Node {
	if len(contracts) == 0 {
		return Div(
			Class("contracts-empty text-gray-500 py-8 text-center"),
			gomponents.Text("No contracts found."),
		)
	}

	return Table(
		Class("contracts-table w-full bg-white rounded-xl shadow text-sm"),
		THead(
			Tr(
				Class("text-left text-gray-500 uppercase text-xs"),
				Th(Class("px-4 py-3"), gomponents.Text("Number")),
				Th(Class("px-4 py-3"), gomponents.Text("Title")),
				Th(Class("px-4 py-3"), gomponents.Text("Status")),
				Th(Class("px-4 py-3"), gomponents.Text("Renewal Date")),
				Th(Class("px-4 py-3 text-right"), gomponents.Text("Value")),
			),
		),
		TBody(
			gomponents.Map(contracts, contractRow),
		),
	)
}

func contractRow(c backend.Contract) gomponents.Node {
	renewal := "—"
	if c.RenewalDate != nil {
		renewal = c.RenewalDate.Format("2006-01-02")
	}
	value := "—"
	if c.TotalValue != nil {
		value = FormatCurrency(*c.TotalValue)
	}

	return Tr(
		Class("border-t"),
		Td(Class("px-4 py-2 font-mono"), gomponents.Text(c.ContractNumber)),
		Td(Class("px-4 py-2"), gomponents.Text(c.Title)),
		Td(Class("px-4 py-2"), statusBadge(c.Status)),
		Td(Class("px-4 py-2"), gomponents.Text(renewal)),
		Td(Class("px-4 py-2 text-right"), gomponents.Text(value)),
	)
}

func statusBadge(status string) gomponents.Node {
	class := "bg-gray-100 text-gray-700"
	switch status {
	case "active":
		class = "bg-green-100 text-green-800"
	case "expired":
		class = "bg-red-100 text-red-800"
	case "pending":
		class = "bg-yellow-100 text-yellow-800"
	}
	return Span(
		Class("px-2 py-0.5 rounded text-xs font-medium "+class),
		gomponents.Text(status),
	)
}
