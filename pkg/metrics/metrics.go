package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса.
// Все методы допускают nil получатель: при выключенных метриках передается nil.
type Metrics struct {
	service string

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	bookings           *prometheus.CounterVec
	productsSold       *prometheus.CounterVec
	equipmentDestroyed *prometheus.CounterVec
	businessErrors     *prometheus.CounterVec
	balance            *prometheus.GaugeVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	m := &Metrics{
		service: serviceName,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salon_bookings_total",
			Help: "Booking lifecycle events",
		}, []string{"service", "event"}),
		productsSold: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salon_products_sold_total",
			Help: "Units of cosmetics sold",
		}, []string{"service", "product"}),
		equipmentDestroyed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salon_equipment_destroyed_total",
			Help: "Equipment units destroyed while performing services",
		}, []string{"service", "item"}),
		businessErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salon_business_errors_total",
			Help: "Rejected salon operations",
		}, []string{"service", "operation"}),
		balance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "salon_balance",
			Help: "Current reception balance",
		}, []string{"service"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.bookings,
		m.productsSold,
		m.equipmentDestroyed,
		m.businessErrors,
		m.balance,
	)
	return m
}

// RecordHTTPRequest учитывает один обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(m.service, method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(m.service, method, path).Observe(duration.Seconds())
}

func (m *Metrics) BookingCreated() {
	m.bookingEvent("created")
}

func (m *Metrics) BookingCompleted() {
	m.bookingEvent("completed")
}

func (m *Metrics) BookingCancelled() {
	m.bookingEvent("cancelled")
}

func (m *Metrics) bookingEvent(event string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(m.service, event).Inc()
}

func (m *Metrics) ProductSold(product string, quantity int) {
	if m == nil {
		return
	}
	m.productsSold.WithLabelValues(m.service, product).Add(float64(quantity))
}

func (m *Metrics) EquipmentDestroyed(item string) {
	if m == nil {
		return
	}
	m.equipmentDestroyed.WithLabelValues(m.service, item).Inc()
}

// BusinessError учитывает операцию, отклоненную правилами салона
func (m *Metrics) BusinessError(operation string) {
	if m == nil {
		return
	}
	m.businessErrors.WithLabelValues(m.service, operation).Inc()
}

func (m *Metrics) SetBalance(value float64) {
	if m == nil {
		return
	}
	m.balance.WithLabelValues(m.service).Set(value)
}
