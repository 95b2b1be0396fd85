package components

import (
	"github.com/postsaleshq/copilot-dash/internal/backend"

	hx "maragu.dev/gomponents-htmx"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SummaryGrid renders the dashboard's KPI cards plus the renewal window,
// payment reminder and activity sections. When oob is true the element
// carries an out-of-band swap marker so it can be pushed over the live
// socket into an already-rendered page.
func SummaryGrid(s *backend.Summary, oob bool) gomponents.Node {
	return Div(
		ID("summary-grid"),
		gomponents.If(oob, hx.SwapOOB("outerHTML:#summary-grid")),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
			KPICard("Total Contracts", FormatCount(s.TotalContracts)),
			KPICard("Total Contract Value", FormatCurrency(s.TotalContractValue)),
			KPICard("Expiring in 30 Days", FormatCount(s.ContractsExpiring30Days)),
		),
		renewalWindows(s),
		remindersSection(s.PaymentReminders),
		activitySection(s.RecentActivities),
	)
}

// renewalWindows shows the longer expiry horizons the headline cards omit.
func renewalWindows(s *backend.Summary) gomponents.Node {
	return Div(
		Class("mt-6 flex gap-4 text-sm text-gray-600"),
		Span(gomponents.Textf("Expiring in 60 days: %s", FormatCount(s.ContractsExpiring60Days))),
		Span(gomponents.Textf("Expiring in 90 days: %s", FormatCount(s.ContractsExpiring90Days))),
	)
}

func remindersSection(reminders []backend.PaymentReminder) gomponents.Node {
	if len(reminders) == 0 {
		return nil
	}
	return Div(
		Class("mt-8 bg-white rounded-xl shadow p-6"),
		H2(Class("text-lg font-semibold mb-4"), gomponents.Text("Upcoming Payments")),
		Table(
			Class("w-full text-sm"),
			THead(
				Tr(
					Th(Class("text-left py-1"), gomponents.Text("Contract")),
					Th(Class("text-left py-1"), gomponents.Text("Next Payment")),
					Th(Class("text-right py-1"), gomponents.Text("Amount")),
					Th(Class("text-left py-1 pl-4"), gomponents.Text("Terms")),
				),
			),
			TBody(
				gomponents.Map(reminders, func(r backend.PaymentReminder) gomponents.Node {
					return Tr(
						Class("border-t"),
						Td(Class("py-1"), gomponents.Text(r.ContractNumber)),
						Td(Class("py-1"), gomponents.Text(r.NextPaymentDate)),
						Td(Class("py-1 text-right"), gomponents.Text(FormatCurrency(r.Amount))),
						Td(Class("py-1 pl-4"), gomponents.Text(r.PaymentTerms)),
					)
				}),
			),
		),
	)
}

func activitySection(activities []backend.Activity) gomponents.Node {
	if len(activities) == 0 {
		return nil
	}
	return Div(
		Class("mt-8 bg-white rounded-xl shadow p-6"),
		H2(Class("text-lg font-semibold mb-4"), gomponents.Text("Recent Activity")),
		Ul(
			Class("space-y-2 text-sm"),
			gomponents.Map(activities, func(a backend.Activity) gomponents.Node {
				return Li(
					Class("border-l-2 border-indigo-300 pl-3"),
					Span(Class("text-gray-900"), gomponents.Text(a.Details)),
					Span(Class("text-gray-400 ml-2 text-xs"), gomponents.Text(a.Timestamp)),
				)
			}),
		),
	)
}
