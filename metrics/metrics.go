// Package metrics holds the process-wide Prometheus collectors, exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postboard_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postboard_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// StoreErrors counts translated store failures by resource, operation and error code.
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postboard_store_errors_total",
			Help: "Total number of store failures by resource, operation and code",
		},
		[]string{"resource", "operation", "code"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postboard_rate_limited_requests_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	RateLimiterFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postboard_rate_limiter_failures_total",
			Help: "Total number of rate limiter backend failures (requests were allowed)",
		},
	)
)
