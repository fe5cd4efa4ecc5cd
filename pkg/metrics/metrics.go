package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	StepSubmitsTotal   *prometheus.CounterVec
	ProviderMatches    *prometheus.HistogramVec
	FlowStoreOpsTotal  *prometheus.CounterVec
	FlowStoreCorrupted *prometheus.CounterVec
}

// New создает метрики в собственном реестре
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StepSubmitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "intake_step_submits_total",
			Help:        "Step submit outcomes by step and result code",
			ConstLabels: labels,
		}, []string{"step", "result"}),
		ProviderMatches: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "intake_provider_matches",
			Help:        "Number of eligible providers per match request",
			ConstLabels: labels,
			Buckets:     []float64{0, 1, 2, 5, 10, 20, 50},
		}, []string{"outcome"}),
		FlowStoreOpsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "intake_flowstore_operations_total",
			Help:        "Flow store backend operations",
			ConstLabels: labels,
		}, []string{"backend", "operation", "status"}),
		FlowStoreCorrupted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "intake_flowstore_corrupted_total",
			Help:        "Namespace blobs that could not be decoded and were treated as empty",
			ConstLabels: labels,
		}, []string{"namespace"}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.StepSubmitsTotal,
		m.ProviderMatches,
		m.FlowStoreOpsTotal,
		m.FlowStoreCorrupted,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveSubmit записывает результат отправки шага
func (m *Metrics) ObserveSubmit(step, result string) {
	m.StepSubmitsTotal.WithLabelValues(step, result).Inc()
}

// ObserveMatch записывает количество подходящих исполнителей
func (m *Metrics) ObserveMatch(outcome string, eligible int) {
	m.ProviderMatches.WithLabelValues(outcome).Observe(float64(eligible))
}

// ObserveStoreOp записывает операцию хранилища
func (m *Metrics) ObserveStoreOp(backend, operation, status string) {
	m.FlowStoreOpsTotal.WithLabelValues(backend, operation, status).Inc()
}

// ObserveCorrupted отмечает испорченный blob пространства имён
func (m *Metrics) ObserveCorrupted(namespace string) {
	m.FlowStoreCorrupted.WithLabelValues(namespace).Inc()
}
