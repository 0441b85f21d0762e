package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	// HTTP requests by method, route, and status code
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTP latency by method and route
	HTTPRequestDuration *prometheus.HistogramVec

	// Ledger operations by operation (reserve, checkout, delete) and result
	LedgerOperationsTotal *prometheus.CounterVec

	SeatsAvailable     prometheus.Gauge
	SeatsCapacity      prometheus.Gauge
	SeatedReservations prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "path"},
		),
		LedgerOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "result"},
		),
		SeatsAvailable: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_seats_available",
			Help: "Seats not currently held by a seated party",
		}),
		SeatsCapacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_seats_capacity",
			Help: "Fixed seat capacity of the ledger",
		}),
		SeatedReservations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_seated_reservations",
			Help: "Reservations that have not checked out",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LedgerOperationsTotal,
		m.SeatsAvailable,
		m.SeatsCapacity,
		m.SeatedReservations,
	)

	return m
}

func (m *Metrics) ObserveOperation(operation, result string) {
	m.LedgerOperationsTotal.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveLedger(capacity, seatsAvailable, seatedReservations int) {
	m.SeatsCapacity.Set(float64(capacity))
	m.SeatsAvailable.Set(float64(seatsAvailable))
	m.SeatedReservations.Set(float64(seatedReservations))
}
