package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the translation service
type Metrics struct {
	// HTTP Request Metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Translation Metrics
	translationsTotal   *prometheus.CounterVec
	translationDuration *prometheus.HistogramVec
	pivotHopsTotal      *prometheus.CounterVec

	// Cache Metrics
	cacheHitsTotal   *prometheus.CounterVec
	cacheMissesTotal *prometheus.CounterVec
	cacheSize        *prometheus.GaugeVec

	// Backend Metrics
	backendRequestsTotal   *prometheus.CounterVec
	backendErrorsTotal     *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec

	// Corrector Metrics
	correctionsTotal *prometheus.CounterVec

	// Preview Metrics
	previewConnections      prometheus.Gauge
	previewsSupersededTotal prometheus.Counter
	previewsComputedTotal   prometheus.Counter
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests currently being processed",
				ConstLabels: constLabels,
			},
		),
		translationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "translations_total",
				Help:        "Total number of translation requests by route and status",
				ConstLabels: constLabels,
			},
			[]string{"route", "status"},
		),
		translationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "translation_duration_seconds",
				Help:        "Translation duration in seconds by route",
				ConstLabels: constLabels,
				Buckets:     []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"route"},
		),
		pivotHopsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "pivot_hops_total",
				Help:        "Total number of English-pivot hops by direction",
				ConstLabels: constLabels,
			},
			[]string{"direction"},
		),
		cacheHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "cache_hits_total",
				Help:        "Total number of cache hits by cache",
				ConstLabels: constLabels,
			},
			[]string{"cache"},
		),
		cacheMissesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "cache_misses_total",
				Help:        "Total number of cache misses by cache",
				ConstLabels: constLabels,
			},
			[]string{"cache"},
		),
		cacheSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "cache_entries",
				Help:        "Current number of cache entries by cache",
				ConstLabels: constLabels,
			},
			[]string{"cache"},
		),
		backendRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "backend_requests_total",
				Help:        "Total number of translation backend requests by mode and status",
				ConstLabels: constLabels,
			},
			[]string{"mode", "status"},
		),
		backendErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "backend_errors_total",
				Help:        "Total number of translation backend errors by mode and type",
				ConstLabels: constLabels,
			},
			[]string{"mode", "error_type"},
		),
		backendRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "backend_request_duration_seconds",
				Help:        "Translation backend request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"mode"},
		),
		correctionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "phonetic_corrections_total",
				Help:        "Total number of phonetic corrections applied by language",
				ConstLabels: constLabels,
			},
			[]string{"language"},
		),
		previewConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name:        "preview_connections",
				Help:        "Number of active live-preview WebSocket connections",
				ConstLabels: constLabels,
			},
		),
		previewsSupersededTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "previews_superseded_total",
				Help:        "Total number of in-flight previews superseded by a newer keystroke",
				ConstLabels: constLabels,
			},
		),
		previewsComputedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "previews_computed_total",
				Help:        "Total number of previews computed and delivered",
				ConstLabels: constLabels,
			},
		),
	}
}

// RecordHTTPRequest records an HTTP request with its duration
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncrementHTTPRequestsInFlight increments the in-flight gauge
func (m *Metrics) IncrementHTTPRequestsInFlight() {
	m.httpRequestsInFlight.Inc()
}

// DecrementHTTPRequestsInFlight decrements the in-flight gauge
func (m *Metrics) DecrementHTTPRequestsInFlight() {
	m.httpRequestsInFlight.Dec()
}

// RecordTranslation records a completed translation by route and status
func (m *Metrics) RecordTranslation(route, status string, duration time.Duration) {
	m.translationsTotal.WithLabelValues(route, status).Inc()
	m.translationDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordPivotHop records one hop of an English-pivot translation
// direction is "extraction" (source→en) or "rendering" (en→target)
func (m *Metrics) RecordPivotHop(direction string) {
	m.pivotHopsTotal.WithLabelValues(direction).Inc()
}

// RecordCacheHit records a cache hit for the named cache
func (m *Metrics) RecordCacheHit(cache string) {
	m.cacheHitsTotal.WithLabelValues(cache).Inc()
}

// RecordCacheMiss records a cache miss for the named cache
func (m *Metrics) RecordCacheMiss(cache string) {
	m.cacheMissesTotal.WithLabelValues(cache).Inc()
}

// SetCacheSize sets the current entry count for the named cache
func (m *Metrics) SetCacheSize(cache string, size int) {
	m.cacheSize.WithLabelValues(cache).Set(float64(size))
}

// RecordBackendRequest records a translation backend call
func (m *Metrics) RecordBackendRequest(mode string, status int, duration time.Duration) {
	m.backendRequestsTotal.WithLabelValues(mode, strconv.Itoa(status)).Inc()
	m.backendRequestDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordBackendError records a translation backend failure
func (m *Metrics) RecordBackendError(mode, errorType string) {
	m.backendErrorsTotal.WithLabelValues(mode, errorType).Inc()
}

// RecordCorrection records an applied phonetic correction
func (m *Metrics) RecordCorrection(language string) {
	if language == "" {
		language = "generic"
	}
	m.correctionsTotal.WithLabelValues(language).Inc()
}

// IncrementPreviewConnections increments the live-preview connection gauge
func (m *Metrics) IncrementPreviewConnections() {
	m.previewConnections.Inc()
}

// DecrementPreviewConnections decrements the live-preview connection gauge
func (m *Metrics) DecrementPreviewConnections() {
	m.previewConnections.Dec()
}

// RecordPreviewSuperseded records an in-flight preview cancelled by a newer keystroke
func (m *Metrics) RecordPreviewSuperseded() {
	m.previewsSupersededTotal.Inc()
}

// RecordPreviewComputed records a preview that completed and was delivered
func (m *Metrics) RecordPreviewComputed() {
	m.previewsComputedTotal.Inc()
}
