package consumer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for a consumption loop. A nil
// *Metrics disables instrumentation.
type Metrics struct {
	processed *prometheus.CounterVec
	duration  prometheus.Histogram
	running   prometheus.Gauge
}

// NewMetrics creates and registers the consumer instruments on reg. Pass
// prometheus.DefaultRegisterer for the process-wide registry, or a private
// registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		processed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eventflow",
			Subsystem: "consumer",
			Name:      "events_processed_total",
			Help:      "Events pulled from the backend, by handler result.",
		}, []string{"result"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "eventflow",
			Subsystem: "consumer",
			Name:      "handle_duration_seconds",
			Help:      "Time spent in the handler per event.",
			Buckets:   prometheus.DefBuckets,
		}),
		running: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "eventflow",
			Subsystem: "consumer",
			Name:      "running",
			Help:      "Number of active consumption loops.",
		}),
	}
}

// observe starts timing one handler invocation and returns the completion
// callback. Safe on a nil receiver.
func (m *Metrics) observe() func(error) {
	if m == nil {
		return func(error) {}
	}
	start := time.Now()
	return func(err error) {
		m.duration.Observe(time.Since(start).Seconds())
		result := "ok"
		if err != nil {
			result = "error"
		}
		m.processed.WithLabelValues(result).Inc()
	}
}
