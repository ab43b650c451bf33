package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "parking_registry"

// Metrics holds the Prometheus collectors for the registry.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route

	NearestQueries    *prometheus.CounterVec // labels: outcome={found,not_found,error}
	NearestDistanceKm prometheus.Histogram
	FarQueries        prometheus.Counter
	AuditWriteErrors  prometheus.Counter

	AuditRecordsPersisted prometheus.Counter
	CacheLookups          *prometheus.CounterVec // labels: key, result={hit,miss,error}
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.NearestQueries,
		m.NearestDistanceKm,
		m.FarQueries,
		m.AuditWriteErrors,
		m.AuditRecordsPersisted,
		m.CacheLookups,
	)
	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build
// many instances without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
		NearestQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nearest_queries_total",
			Help:      "Nearest-parking queries by outcome.",
		}, []string{"outcome"}),
		NearestDistanceKm: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nearest_distance_km",
			Help:      "Distance to the resolved nearest parking.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 50, 100, 1000},
		}),
		FarQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "far_queries_total",
			Help:      "Nearest-parking queries resolved beyond the alert threshold.",
		}),
		AuditWriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_write_errors_total",
			Help:      "Audit records that could not be written.",
		}),
		AuditRecordsPersisted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "audit_records_persisted_total",
			Help:      "Audit records persisted by the stream worker.",
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by key and result.",
		}, []string{"key", "result"}),
	}
}
