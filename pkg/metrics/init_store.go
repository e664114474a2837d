package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initStoreMetrics() {
	r.VertexTypesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmatrix_vertex_types_total",
			Help: "Number of currently allocated vertex types",
		},
	)

	r.EdgeTypesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmatrix_edge_types_total",
			Help: "Number of currently allocated edge types",
		},
	)

	r.TransposeCacheSize = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphmatrix_transpose_cache_size",
			Help: "Number of adjacency matrix transposes currently cached",
		},
	)
}
