package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Oracle names used as label values.
const (
	OracleItems       = "items"
	OracleVotingPower = "voting_power"
)

// Oracle call outcomes used as label values.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeCached   = "cached"
)

// Pick mutation operations used as label values.
const (
	OperationPickAdd    = "add"
	OperationPickDelete = "delete"
	OperationPickBulk   = "bulk"
)

var (
	// OracleRequestsTotal counts oracle calls by oracle and outcome
	OracleRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_oracle_requests_total",
			Help: "Total number of oracle requests",
		},
		[]string{"oracle", "outcome"},
	)

	// OracleRequestDuration tracks oracle call latency, retries included
	OracleRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "favorites_oracle_request_duration_seconds",
			Help:    "Oracle request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"oracle"},
	)

	// HTTPRequestsTotal counts served requests by route pattern
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// PicksMutationsTotal counts successful pick mutations by operation
	PicksMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_picks_mutations_total",
			Help: "Total number of pick mutations",
		},
		[]string{"operation"},
	)
)

// ObserveOracle records one oracle call that started at start.
func ObserveOracle(oracle, outcome string, start time.Time) {
	OracleRequestsTotal.WithLabelValues(oracle, outcome).Inc()
	OracleRequestDuration.WithLabelValues(oracle).Observe(time.Since(start).Seconds())
}
