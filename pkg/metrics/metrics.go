package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы бронирования
const (
	OutcomeCommitted   = "committed"
	OutcomeConflict    = "conflict"
	OutcomeUnverified  = "unverified"
	OutcomeUnreachable = "unreachable"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	storeDuration  *prometheus.HistogramVec
	storeErrors    *prometheus.CounterVec
	reservations   *prometheus.CounterVec
	notifications  *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "reservation_store_operation_duration_seconds",
			Help:        "Duration of reservation store operations in seconds",
			ConstLabels: labels,
			Buckets:     []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		storeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_store_errors_total",
			Help:        "Total number of failed reservation store operations",
			ConstLabels: labels,
		}, []string{"operation"}),
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_total",
			Help:        "Reservation commit outcomes",
			ConstLabels: labels,
		}, []string{"outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Confirmation e-mail outcomes",
			ConstLabels: labels,
		}, []string{"outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "active_sessions",
			Help:        "Number of open supplier sessions",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.storeDuration,
		m.storeErrors,
		m.reservations,
		m.notifications,
		m.activeSessions,
	)

	return m
}

// ObserveHTTPRequest учитывает завершённый HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveStoreOperation учитывает обращение к хранилищу бронирований
func (m *Metrics) ObserveStoreOperation(operation string, duration time.Duration, err error) {
	m.storeDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.storeErrors.WithLabelValues(operation).Inc()
	}
}

// IncReservation учитывает исход бронирования
func (m *Metrics) IncReservation(outcome string) {
	m.reservations.WithLabelValues(outcome).Inc()
}

// IncNotification учитывает исход отправки письма
func (m *Metrics) IncNotification(sent bool) {
	outcome := "sent"
	if !sent {
		outcome = "failed"
	}
	m.notifications.WithLabelValues(outcome).Inc()
}

// SetActiveSessions выставляет число открытых сессий
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}
