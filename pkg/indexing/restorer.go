package indexing

import "github.com/dd0wney/graphmatrix/pkg/kernel"

// IndexerStateRestorer is the undo log for an Indexer: one
// kernel.VectorReverter[bool] per mask, plus a snapshot of the reuse
// queue and the capacity at transaction start. It mirrors the original
// source's indexer state restorer, which composes exactly these four
// mask restorers (indexer.rs).
type IndexerStateRestorer struct {
	validIndices        *kernel.VectorReverter[bool]
	privateIndices      *kernel.VectorReverter[bool]
	validPrivateIndices *kernel.VectorReverter[bool]
	validPublicIndices  *kernel.VectorReverter[bool]

	queueSnapshot      []Index
	queueSnapshotTaken bool
}

// NewIndexerStateRestorer creates a restorer latched to idx's current
// capacity and reuse-queue contents, so that Restore can undo every
// allocation and free made after this point even if nothing else is ever
// registered.
func NewIndexerStateRestorer(idx *Indexer) *IndexerStateRestorer {
	snapshot := make([]Index, idx.indicesAvailableForReuse.Length())
	copy(snapshot, idx.indicesAvailableForReuse.items[idx.indicesAvailableForReuse.head:])
	return &IndexerStateRestorer{
		validIndices:        kernel.NewVectorReverterWithLength[bool](idx.capacity),
		privateIndices:      kernel.NewVectorReverterWithLength[bool](idx.capacity),
		validPrivateIndices: kernel.NewVectorReverterWithLength[bool](idx.capacity),
		validPublicIndices:  kernel.NewVectorReverterWithLength[bool](idx.capacity),
		queueSnapshot:       snapshot,
		queueSnapshotTaken:  true,
	}
}

// WithResetState returns a fresh restorer latched to idx's post-operation
// state, the analogue of VectorReverter.WithResetState used when a
// transaction commits: subsequent reverts should only undo what happens
// from this point forward.
func (r *IndexerStateRestorer) WithResetState(idx *Indexer) *IndexerStateRestorer {
	return NewIndexerStateRestorer(idx)
}

func (r *IndexerStateRestorer) registerIndexState(i Index, wasValid, wasPrivate, wasValidPrivate, wasValidPublic bool) {
	register := func(rev *kernel.VectorReverter[bool], was bool) {
		if was {
			rev.RegisterElementValue(int(i), true)
		} else {
			rev.RegisterEmptyElement(int(i))
		}
	}
	register(r.validIndices, wasValid)
	register(r.privateIndices, wasPrivate)
	register(r.validPrivateIndices, wasValidPrivate)
	register(r.validPublicIndices, wasValidPublic)
}

// NewPublicIndex allocates a public index on idx and registers the undo
// state needed to reverse the allocation (and any capacity growth it
// triggered). An index about to be allocated is, by construction, never
// already valid: it is either never-issued or was freed and re-queued.
func (r *IndexerStateRestorer) NewPublicIndex(idx *Indexer) AssignedIndex {
	before := idx.capacity
	assigned := idx.NewPublicIndex()
	if idx.capacity != before {
		r.validIndices.RegisterLength(before)
		r.privateIndices.RegisterLength(before)
		r.validPrivateIndices.RegisterLength(before)
		r.validPublicIndices.RegisterLength(before)
	}
	r.registerIndexState(assigned.Index, false, false, false, false)
	return assigned
}

// NewPrivateIndex allocates a private index on idx and registers its undo
// state, mirroring NewPublicIndex.
func (r *IndexerStateRestorer) NewPrivateIndex(idx *Indexer) AssignedIndex {
	before := idx.capacity
	assigned := idx.NewPrivateIndex()
	if idx.capacity != before {
		r.validIndices.RegisterLength(before)
		r.privateIndices.RegisterLength(before)
		r.validPrivateIndices.RegisterLength(before)
		r.validPublicIndices.RegisterLength(before)
	}
	r.registerIndexState(assigned.Index, false, false, false, false)
	return assigned
}

// FreePublicIndex frees i on idx, recording its prior mask state so
// Restore can re-allocate it exactly as it was. A valid public index is
// never also private, so only validIndices and validPublicIndices carry a
// true prior state.
func (r *IndexerStateRestorer) FreePublicIndex(idx *Indexer, i Index) error {
	if err := idx.FreePublicIndex(i); err != nil {
		return err
	}
	r.registerIndexState(i, true, false, false, true)
	return nil
}

// FreePrivateIndex frees i on idx, recording its prior mask state.
func (r *IndexerStateRestorer) FreePrivateIndex(idx *Indexer, i Index) error {
	if err := idx.FreePrivateIndex(i); err != nil {
		return err
	}
	r.registerIndexState(i, true, true, true, false)
	return nil
}

// Restore replays every registered undo record against idx in reverse
// order, then reinstates the snapshotted reuse queue, returning idx to the
// state it was in when this restorer was created.
func (r *IndexerStateRestorer) Restore(idx *Indexer) error {
	if err := r.validIndices.Restore(idx.validIndices); err != nil {
		return err
	}
	if err := r.privateIndices.Restore(idx.privateIndices); err != nil {
		return err
	}
	if err := r.validPrivateIndices.Restore(idx.validPrivateIndices); err != nil {
		return err
	}
	if err := r.validPublicIndices.Restore(idx.validPublicIndices); err != nil {
		return err
	}
	idx.capacity = idx.validIndices.Length()

	idx.indicesAvailableForReuse = Queue[Index]{}
	for _, i := range r.queueSnapshot {
		idx.indicesAvailableForReuse.PushBack(i)
	}
	return nil
}
