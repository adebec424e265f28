package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// BoardGameGeek client metrics
	BGGRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bgg_requests_total",
			Help: "Total number of requests sent to BoardGameGeek",
		},
		[]string{"endpoint", "outcome"}, // endpoint: "dump", "thing"; outcome: "success", "failure", "cached", "rejected"
	)

	BGGRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bgg_retries_total",
			Help: "Total number of retried BoardGameGeek requests",
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Import metrics
	ImportedGames = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "import_games_processed_total",
			Help: "Total number of games stored by the importer",
		},
	)

	ImportFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_games_failed_total",
			Help: "Total number of games the importer could not store",
		},
		[]string{"stage"}, // "fetch", "store"
	)

	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "import_duration_seconds",
			Help:    "Duration of complete import runs in seconds",
			Buckets: []float64{1, 10, 60, 300, 900, 1800, 3600},
		},
	)

	// Recommendation metrics
	RecommendationsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_created_total",
			Help: "Total number of recommendations created",
		},
	)

	RecommendedGames = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_size",
			Help:    "Number of games in created recommendations",
			Buckets: []float64{0, 1, 2, 5, 8, 10},
		},
	)
)

// GinMiddleware records request count and latency per route.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
