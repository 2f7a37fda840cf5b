package metrics

import (
	"net/http" // Exposition handler type
	"strconv"  // Status label formatting
	"time"     // Latency durations

	"github.com/prometheus/client_golang/prometheus"            // Collectors
	"github.com/prometheus/client_golang/prometheus/collectors" // Go and process collectors
	"github.com/prometheus/client_golang/prometheus/promhttp"   // Scrape handler
)

// Metrics holds the collectors exported on /metrics. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestLatency   *prometheus.HistogramVec // method, route, status
	DocumentsCreated *prometheus.CounterVec   // resource
}

// New registers the HTTP and document collectors plus Go/process collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		RequestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_requests_latency_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		DocumentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_created_total",
				Help: "Total documents created, by resource.",
			},
			[]string{"resource"},
		),
	}
	reg.MustRegister(
		m.RequestLatency,
		m.DocumentsCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// DocumentCreated counts a successful create.
func (m *Metrics) DocumentCreated(resource string) {
	if m == nil {
		return
	}
	m.DocumentsCreated.WithLabelValues(resource).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
