// Package metrics exposes Prometheus instrumentation for Farmdeck.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration observes request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "farmdeck",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// SyncPullsTotal counts delta pulls served.
	SyncPullsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "farmdeck",
		Subsystem: "sync",
		Name:      "pulls_total",
		Help:      "Delta pulls served.",
	})

	// SyncBatchesTotal counts batch submissions accepted.
	SyncBatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "farmdeck",
		Subsystem: "sync",
		Name:      "batches_total",
		Help:      "Client action batches accepted.",
	})

	// SyncActionsTotal counts per-action resolutions by outcome
	// (applied, stale, deleted, not_found, already_exists, validation, error).
	SyncActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "farmdeck",
		Subsystem: "sync",
		Name:      "actions_total",
		Help:      "Client actions resolved, by outcome.",
	}, []string{"outcome"})

	// SyncReplaysTotal counts idempotent replays served from the ledger.
	SyncReplaysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "farmdeck",
		Subsystem: "sync",
		Name:      "replays_total",
		Help:      "Actions answered from the idempotency ledger.",
	})

	// SensorReadingsTotal counts device readings accepted by the intake.
	SensorReadingsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "farmdeck",
		Subsystem: "ingest",
		Name:      "sensor_readings_total",
		Help:      "Sensor readings accepted.",
	})
)
