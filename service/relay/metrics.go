package relay

import "github.com/prometheus/client_golang/prometheus"

// Metrics ...
type Metrics struct {
	published prometheus.Counter
	failed    prometheus.Counter
	backlog   prometheus.Gauge
	lag       prometheus.Histogram
}

// NewMetrics ...
func NewMetrics() *Metrics {
	return &Metrics{
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "finledger",
			Subsystem: "outbox",
			Name:      "published_total",
			Help:      "Number of outbox entries acknowledged by the bus",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "finledger",
			Subsystem: "outbox",
			Name:      "publish_failures_total",
			Help:      "Number of failed publish attempts",
		}),
		backlog: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "finledger",
			Subsystem: "outbox",
			Name:      "unpublished_entries",
			Help:      "Number of outbox entries waiting to be published",
		}),
		lag: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "finledger",
			Subsystem: "outbox",
			Name:      "publish_lag_seconds",
			Help:      "Time between commit and acknowledgement",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
		}),
	}
}

// Register ...
func (m *Metrics) Register(reg prometheus.Registerer) {
	reg.MustRegister(m.published, m.failed, m.backlog, m.lag)
}
