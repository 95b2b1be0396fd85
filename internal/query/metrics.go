package query

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the cache counters exposed on /metrics. All methods are safe
// on a nil receiver so the cache can run without instrumentation in tests.
type Metrics struct {
	hits            prometheus.Counter
	misses          prometheus.Counter
	refreshFailures prometheus.Counter
}

// NewMetrics creates and registers the cache counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "copilot_dash",
			Subsystem: "query_cache",
			Name:      "hits_total",
			Help:      "Fetches served from the cache.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "copilot_dash",
			Subsystem: "query_cache",
			Name:      "misses_total",
			Help:      "Fetches that had to hit the backend.",
		}),
		refreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "copilot_dash",
			Subsystem: "query_cache",
			Name:      "refresh_failures_total",
			Help:      "Fetches that resolved with an error.",
		}),
	}
	reg.MustRegister(m.hits, m.misses, m.refreshFailures)
	return m
}

func (m *Metrics) hit() {
	if m != nil {
		m.hits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.misses.Inc()
	}
}

func (m *Metrics) refreshFailure() {
	if m != nil {
		m.refreshFailures.Inc()
	}
}
