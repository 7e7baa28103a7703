package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

const namespace = "employee_portal"

// PrometheusMetrics implements core.Metrics on a private registry
type PrometheusMetrics struct {
	registry         *prometheus.Registry
	operations       *prometheus.CounterVec
	listenerFailures *prometheus.CounterVec
	openCheckIns     prometheus.Gauge
	staleCheckIns    prometheus.Gauge
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

var _ core.Metrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics registers every collector on a fresh registry
func NewPrometheusMetrics() *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetrics{
		registry: registry,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_operations_total",
			Help:      "Ledger operations by action and outcome",
		}, []string{"action", "outcome"}),
		listenerFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_listener_failures_total",
			Help:      "Event handlers that returned an error or panicked",
		}, []string{"listener"}),
		openCheckIns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "open_checkins",
			Help:      "Users currently checked in today",
		}),
		staleCheckIns: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stale_checkins",
			Help:      "Open entries left from an earlier day",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

func (m *PrometheusMetrics) RecordOperation(action, outcome string) {
	m.operations.WithLabelValues(action, outcome).Inc()
}

func (m *PrometheusMetrics) RecordListenerFailure(listener string) {
	m.listenerFailures.WithLabelValues(listener).Inc()
}

func (m *PrometheusMetrics) SetOpenCheckIns(count int) {
	m.openCheckIns.Set(float64(count))
}

func (m *PrometheusMetrics) SetStaleCheckIns(count int) {
	m.staleCheckIns.Set(float64(count))
}

func (m *PrometheusMetrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *PrometheusMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// NoopMetrics is used when metrics are disabled
type NoopMetrics struct{}

// NewNoopMetrics creates a metrics sink that records nothing
func NewNoopMetrics() core.Metrics {
	return NoopMetrics{}
}

func (NoopMetrics) RecordOperation(_, _ string)                              {}
func (NoopMetrics) RecordListenerFailure(_ string)                           {}
func (NoopMetrics) SetOpenCheckIns(_ int)                                    {}
func (NoopMetrics) SetStaleCheckIns(_ int)                                   {}
func (NoopMetrics) ObserveHTTPRequest(_, _ string, _ int, _ time.Duration) {}
