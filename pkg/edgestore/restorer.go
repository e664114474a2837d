package edgestore

import "github.com/dd0wney/graphmatrix/pkg/indexing"

// EdgeStoreStateRestorer composes the edge-type-indexer restorer with
// every installed matrix's own undo log.
type EdgeStoreStateRestorer struct {
	typeIndexerRestorer *indexing.IndexerStateRestorer
}

// NewEdgeStoreStateRestorer latches the type indexer's current state.
func NewEdgeStoreStateRestorer(s *EdgeStore) *EdgeStoreStateRestorer {
	return &EdgeStoreStateRestorer{
		typeIndexerRestorer: indexing.NewIndexerStateRestorer(s.typeIndexer),
	}
}

// TypeIndexerRestorer exposes the type-indexer undo log.
func (r *EdgeStoreStateRestorer) TypeIndexerRestorer() *indexing.IndexerStateRestorer {
	return r.typeIndexerRestorer
}

// Restore reverts every installed matrix to its pre-transaction state,
// then reverts the type indexer, and drops the transpose cache (any
// cached transpose computed mid-transaction is stale once its source
// matrix is reverted).
func (r *EdgeStoreStateRestorer) Restore(s *EdgeStore) error {
	for _, mat := range s.matrices {
		if mat == nil {
			continue
		}
		if err := mat.Restore(); err != nil {
			return err
		}
	}
	s.transposed = make(map[indexing.EdgeTypeIndex]AnyAdjacencyMatrix)
	return r.typeIndexerRestorer.Restore(s.typeIndexer)
}

// Commit discards every accumulated undo record without touching live
// storage.
func (s *EdgeStore) Commit(r *EdgeStoreStateRestorer) *EdgeStoreStateRestorer {
	for _, mat := range s.matrices {
		if mat == nil {
			continue
		}
		mat.ResetUndoLog()
	}
	return NewEdgeStoreStateRestorer(s)
}
