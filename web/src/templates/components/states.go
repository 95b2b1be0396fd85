package components

import (
	hx "maragu.dev/gomponents-htmx"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LoadingIndicator renders the placeholder shown while a region's data is in
// flight. htmx replaces the whole element with the partial fetched from url
// as soon as the page has loaded.
func LoadingIndicator(url, text string) gomponents.Node {
	return Div(
		Class("loading-indicator text-gray-500 italic py-8 text-center"),
		hx.Get(url),
		hx.Trigger("load"),
		hx.Swap("outerHTML"),
		gomponents.Text(text),
	)
}

// ErrorAlert renders a fetch failure as a plain-text message. No retry
// controls: the message stays until the region is loaded again.
func ErrorAlert(message string) gomponents.Node {
	return Div(
		Class("error-alert bg-red-50 border border-red-300 text-red-800 rounded-lg px-4 py-3"),
		Role("alert"),
		gomponents.Text(message),
	)
}

// BackendStatus renders the connectivity strip fed by the root probe. The
// probe payload is opaque JSON shown in its serialized form.
func BackendStatus(online bool, detail string) gomponents.Node {
	if !online {
		return Div(
			Class("backend-status text-sm text-red-700 bg-red-50 border border-red-200 rounded px-3 py-1 inline-block"),
			gomponents.Text("Backend offline: "+detail),
		)
	}
	return Div(
		Class("backend-status text-sm text-green-700 bg-green-50 border border-green-200 rounded px-3 py-1 inline-block"),
		Span(Class("font-semibold mr-2"), gomponents.Text("Backend connected")),
		Code(Class("text-xs text-gray-600"), gomponents.Text(detail)),
	)
}
