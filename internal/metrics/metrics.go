// Package metrics provides Prometheus metrics collection for the load plan service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// RecommendationsTotal tracks total recommendation requests by plan status.
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of container recommendations",
		},
		[]string{"status"},
	)

	// RecommendationDuration tracks end-to-end recommendation duration.
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Container recommendation duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		},
	)

	// AlgorithmRunsTotal tracks individual packing algorithm runs.
	AlgorithmRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "packing_algorithm_runs_total",
			Help: "Total number of packing algorithm runs",
		},
		[]string{"algorithm", "status"},
	)

	// AlgorithmRunDuration tracks per-run packing algorithm duration.
	AlgorithmRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "packing_algorithm_run_duration_seconds",
			Help:    "Packing algorithm run duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"algorithm"},
	)

	// CacheOperationsTotal tracks catalog cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRecommendation records metrics for one recommendation request.
func RecordRecommendation(duration time.Duration, status string) {
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationsTotal.WithLabelValues(status).Inc()
}

// RecordAlgorithmRun records metrics for one strategy+algorithm run.
func RecordAlgorithmRun(algorithm string, duration time.Duration, status string) {
	AlgorithmRunDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	AlgorithmRunsTotal.WithLabelValues(algorithm, status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
