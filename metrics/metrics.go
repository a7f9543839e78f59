package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoarena_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photoarena_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "photoarena_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoarena_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// Submissions counts photo submissions by outcome (admitted or the error code)
	Submissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoarena_submissions_total",
			Help: "Total number of photo submissions by outcome",
		},
		[]string{"outcome"},
	)

	// ModerationActions counts moderation decisions by action
	ModerationActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoarena_moderation_actions_total",
			Help: "Total number of moderation actions",
		},
		[]string{"action"},
	)

	// Votes counts vote and unvote operations
	Votes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoarena_votes_total",
			Help: "Total number of vote operations",
		},
		[]string{"action"},
	)

	// StorageOperationDuration measures blob store operation duration
	StorageOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photoarena_storage_operation_duration_seconds",
			Help:    "Blob store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Compensations counts successful saga compensations (blob deleted after a failed insert)
	Compensations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoarena_upload_compensations_total",
			Help: "Total number of upload saga compensations",
		},
	)

	// CompensationFailures counts compensations that could not delete the blob
	CompensationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoarena_upload_compensation_failures_total",
			Help: "Total number of failed upload saga compensations",
		},
	)

	// DatabaseOperationDuration measures database operation duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photoarena_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "photoarena_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photoarena_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}

// RecordStorageOperation records the duration of a blob store operation
func RecordStorageOperation(operation string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	StorageOperationDuration.WithLabelValues(operation).Observe(duration)
}
