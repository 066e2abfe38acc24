package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "booking_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_processed_total",
			Help:      "Total number of successfully applied payment events",
		},
		[]string{"type"},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "booking_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_failed_total",
			Help:      "Total number of failed payment event processing attempts",
		},
	)

	eventsDuplicate = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "booking_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_duplicate_total",
			Help:      "Total number of payment events already applied to their order",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "booking_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_dlq_total",
			Help:      "Total number of payment events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "booking_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "booking_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_event_processing_duration_seconds",
			Help:      "Histogram of payment event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "booking_service",
			Subsystem: "kafka_consumer",
			Name:      "payment_events_in_progress",
			Help:      "Number of payment events currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDuplicate,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,
	)
}
