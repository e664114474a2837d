package metrics

import "time"

// ObserveIndexer updates an indexer's capacity and valid-element gauges.
func (r *Registry) ObserveIndexer(indexer string, capacity, validElements int) {
	r.IndexerCapacity.WithLabelValues(indexer).Set(float64(capacity))
	r.IndexerValidElements.WithLabelValues(indexer).Set(float64(validElements))
}

// RecordIndexAllocation increments the allocation counter for indexer.
func (r *Registry) RecordIndexAllocation(indexer string) {
	r.IndexAllocationsTotal.WithLabelValues(indexer).Inc()
}

// RecordIndexFree increments the free counter for indexer.
func (r *Registry) RecordIndexFree(indexer string) {
	r.IndexFreesTotal.WithLabelValues(indexer).Inc()
}

// ObserveStore updates the store-level gauges from a snapshot of counts.
func (r *Registry) ObserveStore(vertexTypes, edgeTypes, transposeCacheSize int) {
	r.VertexTypesTotal.Set(float64(vertexTypes))
	r.EdgeTypesTotal.Set(float64(edgeTypes))
	r.TransposeCacheSize.Set(float64(transposeCacheSize))
}

// RecordCommit increments the commit counter.
func (r *Registry) RecordCommit() {
	r.TransactionCommitsTotal.Inc()
}

// RecordRevert increments the revert counter and observes how long the
// revert took; ok reports whether the revert itself succeeded.
func (r *Registry) RecordRevert(duration time.Duration, ok bool) {
	r.TransactionRevertsTotal.Inc()
	r.TransactionRevertDurationSec.Observe(duration.Seconds())
	if !ok {
		r.TransactionRevertFailures.Inc()
	}
}
