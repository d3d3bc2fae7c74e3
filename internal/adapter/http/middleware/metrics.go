package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Metrics middleware records HTTP metrics.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		// Wrap response writer to capture status code
		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// normalizePath collapses route IDs to keep metric cardinality low.
// /api/v1/transfers/buy/01ABC -> /api/v1/transfers/buy/:playerID
// /api/v1/transfers/list/01ABC -> /api/v1/transfers/list/:playerID
// /api/v1/transfers/01ABC -> /api/v1/transfers/:id
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/v1/transfers/buy/") && len(path) > len("/api/v1/transfers/buy/"):
		return "/api/v1/transfers/buy/:playerID"
	case strings.HasPrefix(path, "/api/v1/transfers/list/") && len(path) > len("/api/v1/transfers/list/"):
		return "/api/v1/transfers/list/:playerID"
	case strings.HasPrefix(path, "/api/v1/transfers/") && len(path) > len("/api/v1/transfers/"):
		rest := path[len("/api/v1/transfers/"):]
		if rest != "market" && rest != "history" && !strings.Contains(rest, "/") {
			return "/api/v1/transfers/:id"
		}
	}

	return path
}
