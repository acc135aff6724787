package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotmess_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hotmess_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// EngagementToggles counts like/share toggles by action and resulting state.
	EngagementToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotmess_engagement_toggles_total",
		Help: "Total number of engagement toggles by action and resulting state",
	}, []string{"action", "state"})

	// ConflictRetries counts uniqueness-race retries by operation.
	ConflictRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotmess_conflict_retries_total",
		Help: "Total number of transient uniqueness conflicts retried internally",
	}, []string{"operation"})

	// MessagesDelivered counts messages transitioned unread -> read.
	MessagesDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotmess_messages_delivered_total",
		Help: "Total number of messages marked read on viewer fetch",
	})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
