// Package metrics provides Prometheus metrics for the matchd recommendation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the matchd service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Model Lifecycle Metrics - Training is a stop-the-world rebuild
	trainingRuns        prometheus.Counter
	trainingDuration    prometheus.Histogram
	trainingLastUnix    prometheus.Gauge
	trainingErrors      prometheus.Counter

	// Model Shape Metrics - Size of the trained state
	modelFreelancers prometheus.Gauge
	modelClients     prometheus.Gauge
	vocabularySize   prometheus.Gauge

	// Recommendation Metrics - What the service exists to do
	recommendationsServed  *prometheus.CounterVec
	recommendationLatency  prometheus.Histogram
	collaborativeFallbacks prometheus.Counter
	emptyRecommendations   prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchd",
		subsystem:        "matcher",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Model Lifecycle Metrics
	m.trainingRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_runs_total",
		Help:      "Total number of full model training runs",
	})

	m.trainingDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_duration_milliseconds",
		Help:      "Histogram of full model rebuild duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.trainingLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_last_unix",
		Help:      "Unix timestamp of the last successful training run",
	})

	m.trainingErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "training_errors_total",
		Help:      "Total number of failed training runs",
	})

	// Model Shape Metrics
	m.modelFreelancers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "model_freelancers",
		Help:      "Number of freelancers in the trained model",
	})

	m.modelClients = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "model_clients",
		Help:      "Number of distinct clients in the interaction matrix",
	})

	m.vocabularySize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "vocabulary_size",
		Help:      "Number of skill terms in the fitted vocabulary",
	})

	// Recommendation Metrics
	m.recommendationsServed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "recommendations_served_total",
			Help:      "Total number of recommendation requests served by mode",
		},
		[]string{"mode"},
	)

	m.recommendationLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendation_latency_milliseconds",
		Help:      "Recommendation computation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.collaborativeFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "collaborative_fallbacks_total",
		Help:      "Total number of hybrid requests degraded to content-only ranking",
	})

	m.emptyRecommendations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_recommendations_total",
		Help:      "Total number of requests that produced no candidates",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordTrainingRun records a completed training run and its duration.
func RecordTrainingRun(durationMs float64, completedUnix int64) {
	globalManager.trainingRuns.Inc()
	globalManager.trainingDuration.Observe(durationMs)
	globalManager.trainingLastUnix.Set(float64(completedUnix))
}

// RecordTrainingError increments the failed training runs counter.
func RecordTrainingError() {
	globalManager.trainingErrors.Inc()
}

// UpdateModelShape sets the gauges describing the trained model.
func UpdateModelShape(freelancers, clients, vocabulary int) {
	globalManager.modelFreelancers.Set(float64(freelancers))
	globalManager.modelClients.Set(float64(clients))
	globalManager.vocabularySize.Set(float64(vocabulary))
}

// RecordRecommendation increments the served counter for a mode
// (content, hybrid, collaborative).
func RecordRecommendation(mode string) {
	globalManager.recommendationsServed.WithLabelValues(mode).Inc()
}

// RecordRecommendationLatency records recommendation computation latency.
func RecordRecommendationLatency(latencyMs float64) {
	globalManager.recommendationLatency.Observe(latencyMs)
}

// RecordCollaborativeFallback increments the content-only degradation counter.
func RecordCollaborativeFallback() {
	globalManager.collaborativeFallbacks.Inc()
}

// RecordEmptyRecommendation increments the empty result counter.
func RecordEmptyRecommendation() {
	globalManager.emptyRecommendations.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
