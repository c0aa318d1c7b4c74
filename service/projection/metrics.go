package projection

import "github.com/prometheus/client_golang/prometheus"

// Metrics ...
type Metrics struct {
	applied    *prometheus.CounterVec
	discarded  *prometheus.CounterVec
	backfilled *prometheus.CounterVec
	failures   *prometheus.CounterVec
}

// NewMetrics ...
func NewMetrics() *Metrics {
	return &Metrics{
		applied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finledger",
			Subsystem: "projection",
			Name:      "applied_events_total",
			Help:      "Number of events applied to read models",
		}, []string{"projector"}),
		discarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finledger",
			Subsystem: "projection",
			Name:      "discarded_events_total",
			Help:      "Number of redelivered events ignored by the version guard",
		}, []string{"projector"}),
		backfilled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finledger",
			Subsystem: "projection",
			Name:      "backfilled_events_total",
			Help:      "Number of events loaded from the event store to close a version gap",
		}, []string{"projector"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finledger",
			Subsystem: "projection",
			Name:      "failures_total",
			Help:      "Number of failed attempts to project an event",
		}, []string{"projector"}),
	}
}

// Register ...
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.applied, m.discarded, m.backfilled, m.failures)
}
