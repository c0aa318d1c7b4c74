package eventstore

import "github.com/prometheus/client_golang/prometheus"

// Metrics ...
type Metrics struct {
	appendedEvents *prometheus.CounterVec
	conflicts      *prometheus.CounterVec
}

// NewMetrics ...
func NewMetrics() *Metrics {
	return &Metrics{
		appendedEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finledger",
			Subsystem: "eventstore",
			Name:      "appended_events_total",
			Help:      "Number of events appended",
		}, []string{"aggregate_type", "event_type"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finledger",
			Subsystem: "eventstore",
			Name:      "concurrency_conflicts_total",
			Help:      "Number of appends rejected because of a stale expected version",
		}, []string{"aggregate_type"}),
	}
}

// Register ...
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.appendedEvents, m.conflicts)
}
