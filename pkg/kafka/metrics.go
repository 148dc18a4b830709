package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProducerMessagesPublished counts messages written to Kafka.
	ProducerMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_producer_messages_published_total",
			Help: "Total number of Kafka messages published",
		},
		[]string{"topic"},
	)

	// ProducerPublishErrors counts failed writes, including breaker rejections.
	ProducerPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_producer_publish_errors_total",
			Help: "Total number of Kafka publish errors",
		},
		[]string{"topic"},
	)

	// ProducerPublishDuration observes the duration of publish operations.
	ProducerPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kafka_producer_publish_duration_seconds",
			Help:    "Duration of Kafka publish operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic"},
	)

	// BreakerState reports the publish breaker state (0=closed, 1=half-open, 2=open).
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kafka_publish_breaker_state",
			Help: "Current state of the publish circuit breaker (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// BreakerRejections counts publishes refused while the breaker was open.
	BreakerRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_publish_breaker_rejections_total",
			Help: "Total number of publishes rejected by an open circuit breaker",
		},
		[]string{"name"},
	)
)
