package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsTotal         = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxi_dispatch", Name: "bookings_total", Help: "Total bookings created"})
	BookingsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxi_dispatch", Name: "bookings_rejected_total", Help: "Booking requests rejected because no vehicle was available"})
	RidesCompletedTotal   = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxi_dispatch", Name: "rides_completed_total", Help: "Total rides completed"})
	PaymentsTotal         = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxi_dispatch", Name: "payments_processed_total", Help: "Total payments processed"})
	PaymentAmountTotal    = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxi_dispatch", Name: "payment_amount_total", Help: "Sum of all processed payment amounts"})

	FleetSize       = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "taxi_dispatch", Name: "fleet_size", Help: "Number of registered vehicles"})
	UsersRegistered = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "taxi_dispatch", Name: "users_registered", Help: "Number of registered users"})
)
