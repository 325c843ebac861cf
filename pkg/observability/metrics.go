// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the lookup proxy.
package observability

import "github.com/prometheus/client_golang/prometheus"

// APIBuckets defines histogram buckets suited for a thin proxy in front of
// fast network calls, ranging from 5ms to 10s.
var APIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

var (
	// RequestsTotal counts all HTTP requests by method and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration records HTTP request duration in seconds by method.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lookup_request_duration_seconds",
			Help:    "Request duration",
			Buckets: APIBuckets,
		},
		[]string{"method"},
	)

	// AuthRequestsTotal counts authentication decisions by outcome:
	// "authenticated", "rejected", "forbidden", or "unavailable" when the
	// introspection endpoint could not be reached. An introspection outage
	// is never counted as a rejection.
	AuthRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_auth_requests_total",
			Help: "Authentication decisions",
		},
		[]string{"outcome"},
	)

	// IntrospectionRequestsTotal counts calls to the OAuth2 introspection
	// endpoint by transport status ("ok" or "error").
	IntrospectionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_introspection_requests_total",
			Help: "Token introspection calls",
		},
		[]string{"status"},
	)

	// IntrospectionLatency records introspection endpoint latency in seconds.
	IntrospectionLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lookup_introspection_latency_seconds",
			Help:    "Token introspection latency",
			Buckets: APIBuckets,
		},
	)

	// DirectoryRequestsTotal counts calls to the ibis directory backend by
	// operation and status ("ok", "not_found", or "error").
	DirectoryRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lookup_directory_requests_total",
			Help: "Directory backend calls",
		},
		[]string{"operation", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		AuthRequestsTotal,
		IntrospectionRequestsTotal,
		IntrospectionLatency,
		DirectoryRequestsTotal,
	)
}
