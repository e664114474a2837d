package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every metric the engine reports: indexer occupancy,
// store/type counts, transpose-cache size, and transaction outcomes.
type Registry struct {
	// Indexer metrics, one series per indexer instance (vertex type,
	// vertex element, edge type), labeled by "indexer".
	IndexerCapacity       *prometheus.GaugeVec
	IndexerValidElements  *prometheus.GaugeVec
	IndexAllocationsTotal *prometheus.CounterVec
	IndexFreesTotal       *prometheus.CounterVec

	// Store metrics.
	VertexTypesTotal   prometheus.Gauge
	EdgeTypesTotal     prometheus.Gauge
	TransposeCacheSize prometheus.Gauge

	// Transaction metrics.
	TransactionCommitsTotal      prometheus.Counter
	TransactionRevertsTotal      prometheus.Counter
	TransactionRevertFailures    prometheus.Counter
	TransactionRevertDurationSec prometheus.Histogram

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry, created lazily.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a fresh, independently scrapable registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}
	r.initIndexerMetrics()
	r.initStoreMetrics()
	r.initTransactionMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry, for
// handing to promhttp.HandlerFor.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
