package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// GUILaunchesRunning is the number of GUI launches currently waiting for readiness.
	GUILaunchesRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gui_launches_running",
			Help: "Number of recognizer GUI launches currently in flight",
		},
	)

	// GUILaunchesTotal counts GUI launch outcomes by status (ready, completed, timeout, error).
	GUILaunchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gui_launches_total",
			Help: "Total number of recognizer GUI launches by outcome",
		},
		[]string{"status"},
	)
)

var (
	numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)
	initOnce           sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, GUILaunchesRunning, GUILaunchesTotal)
	})
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /api/sentences/123 -> /api/sentences/{id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request. Call from middleware with method, path, statusCode, duration.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncGUILaunchesRunning increments the in-flight launch gauge (call when a launch starts).
func IncGUILaunchesRunning() {
	GUILaunchesRunning.Inc()
}

// DecGUILaunchesRunning decrements the in-flight launch gauge (call when a launch settles).
func DecGUILaunchesRunning() {
	GUILaunchesRunning.Dec()
}

// IncGUILaunchesTotal increments the launch outcome counter (ready, completed, timeout, error).
func IncGUILaunchesTotal(status string) {
	GUILaunchesTotal.WithLabelValues(status).Inc()
}
