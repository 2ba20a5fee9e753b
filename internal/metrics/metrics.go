package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "minicrm",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "minicrm",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "minicrm",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path"},
	)

	// Mutations per entity and operation ("create", "update", "delete").
	recordMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "minicrm",
			Subsystem: "records",
			Name:      "mutations_total",
			Help:      "Total number of successful record mutations.",
		},
		[]string{"entity", "operation"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		recordMutations,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func RequestStarted() {
	httpInFlight.Inc()
}

// RequestFinished records a completed request. path is the route template
// (e.g. /api/reminders/:id) so that ids do not explode label cardinality.
func RequestFinished(method, path, status string, duration time.Duration) {
	httpInFlight.Dec()
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordMutation(entity, operation string) {
	recordMutations.WithLabelValues(entity, operation).Inc()
}
