// Package metrics provides Prometheus metrics for the calculation service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// latencyBuckets are milliseconds; calculations are sub-millisecond and
// remote rule fetches land in the upper buckets.
var latencyBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 1000}

// Manager owns a private registry and every metric the service exports.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	calculations       *prometheus.CounterVec
	validationMessages *prometheus.CounterVec

	rulesInfo *prometheus.GaugeVec
}

// NewManager creates a manager on a fresh registry. Go runtime and process
// collectors are registered alongside the service metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "familaw",
		subsystem:        "engine",
		histogramBuckets: latencyBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})

	m.calculations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "calculations_total",
		Help:      "Calculations run, by calculator and outcome",
	}, []string{"calculator", "outcome"})

	m.validationMessages = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_messages_total",
		Help:      "Validation messages emitted, by calculator, level and code",
	}, []string{"calculator", "level", "code"})

	m.rulesInfo = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rules_info",
		Help:      "Active rule table; the value is always 1",
	}, []string{"version", "source"})
}

// RecordHTTPRequest counts a finished request.
func (m *Manager) RecordHTTPRequest(method, route string, status int) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// RecordHTTPRequestDuration observes request latency.
func (m *Manager) RecordHTTPRequestDuration(method, route string, d time.Duration) {
	m.httpRequestDuration.WithLabelValues(method, route).Observe(float64(d.Microseconds()) / 1000)
}

func (m *Manager) RecordCalculation(calculator, outcome string) {
	m.calculations.WithLabelValues(calculator, outcome).Inc()
}

func (m *Manager) RecordValidationMessage(calculator, level, code string) {
	m.validationMessages.WithLabelValues(calculator, level, code).Inc()
}

// SetRulesInfo publishes the loaded rule table version. Earlier values are
// cleared so only one series is ever set.
func (m *Manager) SetRulesInfo(version, source string) {
	m.rulesInfo.Reset()
	m.rulesInfo.WithLabelValues(version, source).Set(1)
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
