package service

import "github.com/prometheus/client_golang/prometheus"

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "booking_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of created orders",
		},
	)

	bookingConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking_service",
			Subsystem: "orders",
			Name:      "conflicts_total",
			Help:      "Total number of bookings refused by the conflict checker",
		},
		[]string{"reason"},
	)

	orderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking_service",
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Total number of order status transitions by target status",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		bookingConflicts,
		orderTransitions,
	)
}
