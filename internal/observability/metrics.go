package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Rejection and deactivation outcome labels.
const (
	RejectReasonMissingFields = "missing_fields"
	RejectReasonUnderage      = "underage"

	DeactivationOutcomeDeactivated = "deactivated"
	DeactivationOutcomeNotFound    = "not_found"
	DeactivationOutcomeAdmin       = "admin_exempt"
)

// Metrics holds the Prometheus collectors exported by the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpErrorsTotal     *prometheus.CounterVec

	usersCreatedTotal  prometheus.Counter
	usersRejectedTotal *prometheus.CounterVec
	deactivationsTotal *prometheus.CounterVec
	usersByStatus      *prometheus.GaugeVec
}

// NewMetrics registers collectors on a dedicated registry.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path"},
		),
		httpErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_errors_total",
				Help:      "HTTP requests answered with an error envelope",
			},
			[]string{"method", "path", "code"},
		),
		usersCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "users_created_total",
				Help:      "Users registered",
			},
		),
		usersRejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "users_rejected_total",
				Help:      "Registrations rejected by validation",
			},
			[]string{"reason"},
		),
		deactivationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "user_deactivations_total",
				Help:      "Deactivation requests by outcome",
			},
			[]string{"outcome"},
		),
		usersByStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "users",
				Help:      "Registered users by status",
			},
			[]string{"status"},
		),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.httpErrorsTotal.WithLabelValues(method, path, code).Inc()
}

func (m *Metrics) RecordUserCreated() {
	if m == nil {
		return
	}
	m.usersCreatedTotal.Inc()
}

func (m *Metrics) RecordUserRejected(reason string) {
	if m == nil {
		return
	}
	m.usersRejectedTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) RecordDeactivation(outcome string) {
	if m == nil {
		return
	}
	m.deactivationsTotal.WithLabelValues(outcome).Inc()
}

// SetUsersByStatus replaces the per-status gauges.
func (m *Metrics) SetUsersByStatus(counts map[string]int) {
	if m == nil {
		return
	}
	for status, count := range counts {
		m.usersByStatus.WithLabelValues(status).Set(float64(count))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
