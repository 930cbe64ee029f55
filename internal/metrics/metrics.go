// Package metrics exposes Prometheus instrumentation for the classification service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"billsense/internal/domain"
)

const namespace = "billsense"

// Metrics holds the service's collectors.
type Metrics struct {
	Classifications    *prometheus.CounterVec
	Confidence         *prometheus.HistogramVec
	ClassifyDuration   prometheus.Histogram
	CacheLookups       *prometheus.CounterVec
	HistoryWriteErrors prometheus.Counter
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers all collectors on reg. Pass prometheus.NewRegistry() in tests.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Classifications by resulting document type and whether analysis may proceed.",
		}, []string{"type", "can_analyze"}),
		Confidence: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classification_confidence",
			Help:      "Confidence reported per classification.",
			Buckets:   []float64{50, 60, 70, 75, 80, 85, 90, 95, 100},
		}, []string{"type"}),
		ClassifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "classify_duration_seconds",
			Help:      "Time spent building the classification matrix.",
			Buckets:   []float64{.00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by outcome (hit, miss, error).",
		}, []string{"outcome"}),
		HistoryWriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_write_errors_total",
			Help:      "Classification history rows that failed to persist.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gatherer: reg,
	}

	reg.MustRegister(
		m.Classifications,
		m.Confidence,
		m.ClassifyDuration,
		m.CacheLookups,
		m.HistoryWriteErrors,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

// ObserveClassification records one classification outcome.
func (m *Metrics) ObserveClassification(t domain.DocumentType, canAnalyze bool, confidence int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Classifications.WithLabelValues(string(t), strconv.FormatBool(canAnalyze)).Inc()
	m.Confidence.WithLabelValues(string(t)).Observe(float64(confidence))
	m.ClassifyDuration.Observe(elapsed.Seconds())
}

// ObserveCache records a cache lookup outcome: "hit", "miss" or "error".
func (m *Metrics) ObserveCache(outcome string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(outcome).Inc()
}

// ObserveHistoryError counts a failed history write.
func (m *Metrics) ObserveHistoryError() {
	if m == nil {
		return
	}
	m.HistoryWriteErrors.Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler returns the exposition handler for the registry the metrics were created on.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
