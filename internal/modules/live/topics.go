package live

// TopicSummaryUpdated carries rendered summary-grid fragments from the
// poller to the websocket bridge. Payloads are HTML, ready for an htmx
// out-of-band swap.
const TopicSummaryUpdated = "dashboard.summary.updated"
