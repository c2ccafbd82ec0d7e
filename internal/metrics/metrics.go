package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APICallsTotal tracks outbound API calls per logical operation
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notionpush_api_calls_total",
			Help: "Total number of outbound API calls",
		},
		[]string{"operation"},
	)

	// APIErrorsTotal tracks terminal API errors per operation and error code
	APIErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notionpush_api_errors_total",
			Help: "Total number of API calls that ended in a terminal error",
		},
		[]string{"operation", "code"},
	)

	// APIRetriesTotal tracks retry attempts beyond the first attempt
	APIRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notionpush_api_retries_total",
			Help: "Total number of retried API attempts",
		},
		[]string{"operation"},
	)

	// APICallDuration tracks end-to-end call latency including retries
	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notionpush_api_call_duration_seconds",
			Help:    "API call latency in seconds, including backoff waits",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// RateLimitWaitSeconds tracks time spent suspended at the rate limiter
	RateLimitWaitSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notionpush_rate_limit_wait_seconds",
			Help:    "Time spent waiting for rate limiter budget",
			Buckets: []float64{.001, .01, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"class"},
	)

	// DocumentsPublished tracks documents pushed successfully
	DocumentsPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notionpush_documents_published_total",
			Help: "Total number of documents published",
		},
	)
)
