package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTransactionMetrics() {
	r.TransactionCommitsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphmatrix_transaction_commits_total",
			Help: "Total number of committed transactions",
		},
	)

	r.TransactionRevertsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphmatrix_transaction_reverts_total",
			Help: "Total number of reverted transactions",
		},
	)

	r.TransactionRevertFailures = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphmatrix_transaction_revert_failures_total",
			Help: "Total number of transaction reverts that themselves failed",
		},
	)

	r.TransactionRevertDurationSec = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphmatrix_transaction_revert_duration_seconds",
			Help:    "Duration of transaction revert operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)
}
