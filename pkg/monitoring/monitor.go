package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	AlertsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_alerts_created_total",
			Help: "Early alerts created by the monitoring engine",
		},
		[]string{"type"},
	)

	PlaylistAdvances = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pathway_playlist_advances_total",
			Help: "Playlist items completed via advance",
		},
	)

	DifficultyAdjustments = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pathway_difficulty_adjustments_total",
			Help: "Playlist difficulty transitions",
		},
		[]string{"direction"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(AlertsCreated)
	prometheus.MustRegister(PlaylistAdvances)
	prometheus.MustRegister(DifficultyAdjustments)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
