package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "kafka_consumer",
		Name:      "commands_processed_total",
		Help:      "Total number of successfully processed merchant commands",
	})

	commandsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "kafka_consumer",
		Name:      "commands_failed_total",
		Help:      "Total number of failed merchant commands",
	})

	commandsDLQ = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "kafka_consumer",
		Name:      "commands_dlq_total",
		Help:      "Total number of commands written to DLQ",
	})

	commitErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "royal_shop",
		Subsystem: "kafka_consumer",
		Name:      "commit_errors_total",
		Help:      "Total number of Kafka commit errors",
	})

	commandDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "royal_shop",
		Subsystem: "kafka_consumer",
		Name:      "command_processing_duration_seconds",
		Help:      "Histogram of command processing durations in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	commandsInProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "royal_shop",
		Subsystem: "kafka_consumer",
		Name:      "commands_in_progress",
		Help:      "Number of commands currently being processed",
	})
)
