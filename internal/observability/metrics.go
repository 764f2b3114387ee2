package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibestudio_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// GenerationRequests counts content generation calls by category and outcome.
	GenerationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibestudio_generation_requests_total",
		Help: "Content generation requests by category and outcome",
	}, []string{"category", "outcome"})

	// GenerationLatency records upstream generation latency.
	GenerationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vibestudio_generation_latency_seconds",
		Help:    "Latency of content generation calls in seconds",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
	}, []string{"category"})

	// FeedDegraded counts listings served empty because the store failed.
	FeedDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibestudio_feed_degraded_total",
		Help: "Listings collapsed to empty after a store failure",
	}, []string{"listing"})

	// FeedCacheResults counts feed cache lookups by result (hit, miss, error).
	FeedCacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibestudio_feed_cache_results_total",
		Help: "Feed cache lookups by result",
	}, []string{"result"})

	// LikeToggles counts like toggles by resulting state.
	LikeToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibestudio_like_toggles_total",
		Help: "Like toggles by resulting state",
	}, []string{"state"})

	// UploadedImages counts stored post images by backend.
	UploadedImages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vibestudio_uploaded_images_total",
		Help: "Post images accepted by storage backend",
	}, []string{"backend"})
)
