package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequestsTotal counts queries sent to the remote vault data service by outcome
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_discovery_upstream_requests_total",
			Help: "Total number of queries sent to the remote vault data service",
		},
		[]string{"status"},
	)

	// UpstreamRequestDuration tracks remote query latency
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vault_discovery_upstream_request_duration_seconds",
			Help:    "Remote vault query duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)

	// RecordsFetched counts raw vault records received from upstream
	RecordsFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vault_discovery_records_fetched_total",
			Help: "Total number of raw vault records received",
		},
	)

	// MappingFailures counts records skipped because they could not be mapped
	MappingFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_discovery_mapping_failures_total",
			Help: "Total number of vault records skipped by the mapper",
		},
		[]string{"field"},
	)

	// Resolutions counts vault address resolutions by result kind
	Resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_discovery_resolutions_total",
			Help: "Total number of vault address resolutions",
		},
		[]string{"kind"},
	)

	// FallbackResolutions counts resolutions served from the stale fallback table
	FallbackResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_discovery_fallback_resolutions_total",
			Help: "Total number of vault addresses served from the fallback table",
		},
		[]string{"chain", "asset"},
	)

	// FallbackRefreshes counts fallback table refresh attempts by outcome
	FallbackRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_discovery_fallback_refreshes_total",
			Help: "Total number of fallback table refresh attempts",
		},
		[]string{"status"},
	)

	// RateLimited counts HTTP requests rejected by the rate limiter
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vault_discovery_rate_limited_total",
			Help: "Total number of HTTP requests rejected by the rate limiter",
		},
	)
)
