package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus collectors are global singletons: promauto registers them with
// the default registry at package init, so constructing multiple Metrics
// values (e.g. in tests) shares the same underlying collectors.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "polymul_active_requests",
		Help: "Number of in-flight HTTP requests.",
	})

	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymul_requests_total",
		Help: "Total HTTP requests by endpoint and status.",
	}, []string{"endpoint", "status"})

	multiplicationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "polymul_multiplications_total",
		Help: "Total polynomial multiplications served, by backend.",
	}, []string{"backend"})

	multiplyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "polymul_multiply_duration_seconds",
		Help:    "Wall-clock duration of served multiplications.",
		Buckets: prometheus.ExponentialBuckets(1e-4, 4, 10),
	})
)

// Metrics exposes the Prometheus instrumentation used by the HTTP server.
type Metrics struct {
	handler http.Handler
}

// NewMetrics creates a Metrics facade over the shared collectors.
func NewMetrics() *Metrics {
	return &Metrics{handler: promhttp.Handler()}
}

// IncrementActiveRequests increments the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() { activeRequests.Inc() }

// DecrementActiveRequests decrements the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() { activeRequests.Dec() }

// CountRequest records a completed request for the endpoint with the given
// HTTP status class.
func (m *Metrics) CountRequest(endpoint, status string) {
	requestsTotal.WithLabelValues(endpoint, status).Inc()
}

// ObserveMultiplication records one served multiplication and its duration.
func (m *Metrics) ObserveMultiplication(backend string, d time.Duration) {
	multiplicationsTotal.WithLabelValues(backend).Inc()
	multiplyDuration.Observe(d.Seconds())
}

// WritePrometheus serves the Prometheus exposition endpoint.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
