package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "telewatch",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "telewatch",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "telewatch",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Alert evaluation metrics
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "telewatch",
			Subsystem: "engine",
			Name:      "evaluations_total",
			Help:      "Total number of alert evaluation runs",
		},
		[]string{"status"},
	)

	evaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "telewatch",
			Subsystem: "engine",
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of a single evaluation run in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	rulesEvaluatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "telewatch",
			Subsystem: "engine",
			Name:      "rules_evaluated_total",
			Help:      "Total number of rules evaluated across all runs",
		},
	)

	alertEventsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "telewatch",
			Subsystem: "engine",
			Name:      "alert_events_created_total",
			Help:      "Total number of alert events created",
		},
	)

	suppressedFiringsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "telewatch",
			Subsystem: "engine",
			Name:      "suppressed_firings_total",
			Help:      "Total number of firings suppressed by the cooldown window",
		},
	)
)

// RecordEvaluation records the outcome of one evaluation run
func RecordEvaluation(status string, duration time.Duration, rulesEvaluated, eventsCreated int) {
	evaluationsTotal.WithLabelValues(status).Inc()
	evaluationDuration.Observe(duration.Seconds())
	rulesEvaluatedTotal.Add(float64(rulesEvaluated))
	alertEventsCreatedTotal.Add(float64(eventsCreated))
}

// RecordSuppressed records a firing withheld by the dedup gate
func RecordSuppressed() {
	suppressedFiringsTotal.Inc()
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns a middleware that records HTTP metrics per chi route
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			httpRequestsInFlight.Inc()
			defer httpRequestsInFlight.Dec()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			// Use the route pattern, not the raw path, to bound cardinality
			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			status := strconv.Itoa(ww.status)
			httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
