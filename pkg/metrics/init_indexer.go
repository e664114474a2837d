package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initIndexerMetrics() {
	r.IndexerCapacity = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphmatrix_indexer_capacity",
			Help: "Current index capacity of an indexer",
		},
		[]string{"indexer"}, // vertex_type, vertex_element, edge_type
	)

	r.IndexerValidElements = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphmatrix_indexer_valid_elements",
			Help: "Number of currently valid (allocated) indices in an indexer",
		},
		[]string{"indexer"},
	)

	r.IndexAllocationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphmatrix_index_allocations_total",
			Help: "Total number of index allocations",
		},
		[]string{"indexer"},
	)

	r.IndexFreesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphmatrix_index_frees_total",
			Help: "Total number of index frees",
		},
		[]string{"indexer"},
	)
}
