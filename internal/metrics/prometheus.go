package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rgehrsitz/fitsizer/internal/domain"
)

// Manager owns the fitsizer metrics and the registry they live on.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         *prometheus.Registry

	// Engine metrics
	evaluations           *prometheus.CounterVec
	evaluationLatency     *prometheus.HistogramVec
	evaluationErrors      *prometheus.CounterVec
	degenerateResults     prometheus.Counter
	distributionFallbacks prometheus.Counter
	targetMisses          *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry a fresh
// registry is used so the default Go collectors stay out of /metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fitsizer",
		subsystem:        "engine",
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50},
		enabled:          true,
		constLabels:      map[string]string{},
	}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.evaluations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluations_total",
		Help:        "Total number of scenario evaluations by operation and scenario",
		ConstLabels: m.constLabels,
	}, []string{"operation", "scenario"})

	m.evaluationLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluation_latency_milliseconds",
		Help:        "Histogram of evaluation latency in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"operation"})

	m.evaluationErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "evaluation_errors_total",
		Help:        "Total number of rejected evaluations by operation",
		ConstLabels: m.constLabels,
	}, []string{"operation"})

	m.degenerateResults = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "degenerate_results_total",
		Help:        "Total number of results with a zero rate or density",
		ConstLabels: m.constLabels,
	})

	m.distributionFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "distribution_fallbacks_total",
		Help:        "Total number of evaluations that replaced a zero-sum distribution",
		ConstLabels: m.constLabels,
	})

	m.targetMisses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "target_misses_total",
		Help:        "Total number of evaluated scenarios below the revenue target",
		ConstLabels: m.constLabels,
	}, []string{"scenario"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})
}

func (m *Manager) active() bool {
	return m != nil && m.enabled
}

// ObserveResult records one successful evaluation and its quality flags.
func (m *Manager) ObserveResult(operation string, r *domain.AnalysisResult) {
	if !m.active() || r == nil {
		return
	}
	m.evaluations.WithLabelValues(operation, string(r.Scenario)).Inc()
	if r.Degenerate {
		m.degenerateResults.Inc()
	}
	if r.DistributionFallback {
		m.distributionFallbacks.Inc()
	}
	if !r.MeetsTarget {
		m.targetMisses.WithLabelValues(string(r.Scenario)).Inc()
	}
}

// ObserveLatency records how long an operation took.
func (m *Manager) ObserveLatency(operation string, d time.Duration) {
	if !m.active() {
		return
	}
	m.evaluationLatency.WithLabelValues(operation).Observe(float64(d) / float64(time.Millisecond))
}

// RecordError increments the rejected evaluation counter.
func (m *Manager) RecordError(operation string) {
	if !m.active() {
		return
	}
	m.evaluationErrors.WithLabelValues(operation).Inc()
}

// RecordHTTPRequest records an HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, d time.Duration) {
	if !m.active() {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(float64(d) / float64(time.Millisecond))
}

// Registry returns the registry the metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
