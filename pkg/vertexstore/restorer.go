package vertexstore

import "github.com/dd0wney/graphmatrix/pkg/indexing"

// VertexStoreStateRestorer composes the type- and element-indexer
// restorers with every installed vector's own undo log. Each VertexVector
// already carries its own kernel.VectorReverter, so the store-level
// restorer's job is only to snapshot/restore the two indexers and fan
// Restore/ResetUndoLog out across every installed slot.
type VertexStoreStateRestorer struct {
	typeIndexerRestorer    *indexing.IndexerStateRestorer
	elementIndexerRestorer *indexing.IndexerStateRestorer
}

// NewVertexStoreStateRestorer latches both indexers' current state.
func NewVertexStoreStateRestorer(s *VertexStore) *VertexStoreStateRestorer {
	return &VertexStoreStateRestorer{
		typeIndexerRestorer:    indexing.NewIndexerStateRestorer(s.typeIndexer),
		elementIndexerRestorer: indexing.NewIndexerStateRestorer(s.elementIndexer),
	}
}

// TypeIndexerRestorer exposes the type-indexer undo log so store
// operations that allocate/free a vertex type can register through it.
func (r *VertexStoreStateRestorer) TypeIndexerRestorer() *indexing.IndexerStateRestorer {
	return r.typeIndexerRestorer
}

// ElementIndexerRestorer exposes the element-indexer undo log.
func (r *VertexStoreStateRestorer) ElementIndexerRestorer() *indexing.IndexerStateRestorer {
	return r.elementIndexerRestorer
}

// Restore reverts every installed vector to its pre-transaction state,
// then reverts both indexers, returning the store to exactly the state it
// was in when this restorer was created.
func (r *VertexStoreStateRestorer) Restore(s *VertexStore) error {
	for _, vec := range s.vectors {
		if vec == nil {
			continue
		}
		if err := vec.Restore(); err != nil {
			return err
		}
	}
	if err := r.typeIndexerRestorer.Restore(s.typeIndexer); err != nil {
		return err
	}
	return r.elementIndexerRestorer.Restore(s.elementIndexer)
}

// Commit discards every accumulated undo record without touching live
// storage, the store-level analogue of "replace each sub-restorer with a
// fresh one bound to the post-commit state": a subsequent revert becomes
// a no-op.
func (s *VertexStore) Commit(r *VertexStoreStateRestorer) *VertexStoreStateRestorer {
	for _, vec := range s.vectors {
		if vec == nil {
			continue
		}
		vec.ResetUndoLog()
	}
	return NewVertexStoreStateRestorer(s)
}
