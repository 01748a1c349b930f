package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	GridBuildsTotal  *prometheus.CounterVec
	RefreshTotal     *prometheus.CounterVec
	RefreshDuration  prometheus.Histogram
	SnapshotBookings prometheus.Gauge

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Gauge
}

// New регистрирует метрики в DefaultRegisterer (их отдаёт promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		GridBuildsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_grid_builds_total",
			Help:        "Calendar grids built, by view",
			ConstLabels: labels,
		}, []string{"view"}),

		RefreshTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_refresh_total",
			Help:        "Booking collection refetches, by result",
			ConstLabels: labels,
		}, []string{"result"}),

		RefreshDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "bookings_refresh_duration_seconds",
			Help:        "Duration of booking collection refetch",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),

		SnapshotBookings: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "bookings_snapshot_size",
			Help:        "Number of bookings in the latest committed snapshot",
			ConstLabels: labels,
		}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: labels,
		}),

		DBInUse: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: labels,
		}),

		DBIdle: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: labels,
		}),

		DBWaitCount: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTP записывает результат HTTP запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveGridBuild увеличивает счётчик построенных сеток
func (m *Metrics) ObserveGridBuild(view string) {
	m.GridBuildsTotal.WithLabelValues(view).Inc()
}

// ObserveRefresh записывает результат перезагрузки бронирований
func (m *Metrics) ObserveRefresh(success bool, size int, duration time.Duration) {
	result := "success"
	if !success {
		result = "error"
	} else {
		m.SnapshotBookings.Set(float64(size))
	}
	m.RefreshTotal.WithLabelValues(result).Inc()
	m.RefreshDuration.Observe(duration.Seconds())
}
