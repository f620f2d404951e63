package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry

	// CacheLookupsTotal counts station cache reads by result: hit, miss, expired, corrupt, error.
	CacheLookupsTotal *prometheus.CounterVec

	// CacheWriteFailuresTotal counts writes the cache swallowed.
	CacheWriteFailuresTotal prometheus.Counter

	// UpstreamRequestsTotal counts calls to the dataset provider and the geocoder by outcome.
	UpstreamRequestsTotal *prometheus.CounterVec

	// UpstreamDuration is the latency of upstream calls in seconds.
	UpstreamDuration *prometheus.HistogramVec

	// ResolutionsTotal counts resolved locations by source.
	ResolutionsTotal *prometheus.CounterVec

	// HTTPRequestsTotal counts API requests by route and status code.
	HTTPRequestsTotal *prometheus.CounterVec
)

func init() {
	registry = prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationfinder_cache_lookups_total",
			Help: "Station cache lookups by result",
		},
		[]string{"result"},
	)
	CacheWriteFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "stationfinder_cache_write_failures_total",
			Help: "Station cache writes that failed and were ignored",
		},
	)
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationfinder_upstream_requests_total",
			Help: "Requests to external services by upstream and outcome",
		},
		[]string{"upstream", "outcome"},
	)
	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stationfinder_upstream_duration_seconds",
			Help:    "Latency of requests to external services",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"upstream"},
	)
	ResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationfinder_resolutions_total",
			Help: "Resolved locations by source",
		},
		[]string{"source"},
	)
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationfinder_http_requests_total",
			Help: "API requests by route and status code",
		},
		[]string{"route", "status"},
	)

	registry.MustRegister(
		CacheLookupsTotal,
		CacheWriteFailuresTotal,
		UpstreamRequestsTotal,
		UpstreamDuration,
		ResolutionsTotal,
		HTTPRequestsTotal,
	)
}

// Registry exposes the private registry, mostly for tests.
func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
