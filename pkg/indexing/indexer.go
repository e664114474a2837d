package indexing

import (
	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/kernel"
	"github.com/dd0wney/graphmatrix/pkg/logging"
)

// Logger, when non-nil, receives a debug-level record every time an
// Indexer doubles its capacity. Left nil by default so allocation carries
// no logging overhead unless a caller opts in with logging.DefaultLogger()
// or its own logging.Logger.
var Logger logging.Logger

// MinimumCapacity is the capacity floor an indexer is raised to on
// creation or first growth, carried over from the original source's
// MINIMUM_INDEXER_CAPACITY (indexer.rs): "setting and enforcing this
// minimum improves performance, as it is guaranteed once and no longer
// needs checking upon capacity expansion."
const MinimumCapacity = 1

// DefaultInitialCapacity mirrors the original indexer's default initial
// capacity.
const DefaultInitialCapacity = 256

// Indexer is a capacity-managed allocator of dense indices, plus validity
// and public/private partitioning. All four masks are kept at the same
// length as capacity.
type Indexer struct {
	capacity int

	validIndices        *kernel.SparseVector[bool]
	privateIndices      *kernel.SparseVector[bool]
	validPrivateIndices *kernel.SparseVector[bool]
	validPublicIndices  *kernel.SparseVector[bool]

	indicesAvailableForReuse Queue[Index]
}

// NewIndexer creates an indexer with the default initial capacity.
func NewIndexer() *Indexer {
	return NewIndexerWithCapacity(DefaultInitialCapacity)
}

// NewIndexerWithCapacity creates an indexer with at least MinimumCapacity
// slots.
func NewIndexerWithCapacity(initialCapacity int) *Indexer {
	capacity := initialCapacity
	if capacity < MinimumCapacity {
		capacity = MinimumCapacity
	}
	return &Indexer{
		capacity:            capacity,
		validIndices:        kernel.NewSparseVector[bool](capacity),
		privateIndices:      kernel.NewSparseVector[bool](capacity),
		validPrivateIndices: kernel.NewSparseVector[bool](capacity),
		validPublicIndices:  kernel.NewSparseVector[bool](capacity),
	}
}

// Capacity returns the length shared by every mask vector.
func (idx *Indexer) Capacity() int { return idx.capacity }

// NumberOfIndexedElements returns the count of currently allocated
// (valid) indices.
func (idx *Indexer) NumberOfIndexedElements() int {
	return idx.validIndices.NumberOfStoredElements()
}

// NumberOfIndexedOrReusableElements adds the count of indices parked in
// the reuse queue, mirroring the original source's
// get_number_of_stored_and_reusable_elements.
func (idx *Indexer) NumberOfIndexedOrReusableElements() int {
	return idx.NumberOfIndexedElements() + idx.indicesAvailableForReuse.Length()
}

func boolAt(v *kernel.SparseVector[bool], i Index) bool {
	val, ok, _ := v.GetElement(int(i))
	return ok && val
}

func setBool(v *kernel.SparseVector[bool], i Index, val bool) {
	if val {
		_ = v.SetElement(int(i), true)
	} else {
		_ = v.DropElement(int(i))
	}
}

// IsValidIndex reports whether i is currently allocated (public or
// private).
func (idx *Indexer) IsValidIndex(i Index) bool {
	if int(i) >= idx.capacity {
		return false
	}
	return boolAt(idx.validIndices, i)
}

// IsValidPublicIndex reports whether i is allocated and public.
func (idx *Indexer) IsValidPublicIndex(i Index) bool {
	if int(i) >= idx.capacity {
		return false
	}
	return boolAt(idx.validPublicIndices, i)
}

// IsValidPrivateIndex reports whether i is allocated and private.
func (idx *Indexer) IsValidPrivateIndex(i Index) bool {
	if int(i) >= idx.capacity {
		return false
	}
	return boolAt(idx.validPrivateIndices, i)
}

// TryIndexValidity fails with a LogicError(IndexOutOfBounds) when i is not
// currently allocated.
func (idx *Indexer) TryIndexValidity(i Index) error {
	if !idx.IsValidIndex(i) {
		return graphcore.NewLogicError(graphcore.IndexOutOfBounds, "index %d is not valid", i)
	}
	return nil
}

// TryPublicIndexValidity fails unless i is allocated and public.
func (idx *Indexer) TryPublicIndexValidity(i Index) error {
	if !idx.IsValidPublicIndex(i) {
		return graphcore.NewLogicError(graphcore.IndexOutOfBounds, "index %d is not a valid public index", i)
	}
	return nil
}

// TryPrivateIndexValidity fails unless i is allocated and private.
func (idx *Indexer) TryPrivateIndexValidity(i Index) error {
	if !idx.IsValidPrivateIndex(i) {
		return graphcore.NewLogicError(graphcore.IndexOutOfBounds, "index %d is not a valid private index", i)
	}
	return nil
}

// ValidIndices returns every currently allocated index in ascending
// order.
func (idx *Indexer) ValidIndices() []Index {
	raw := idx.validIndices.Indices()
	out := make([]Index, len(raw))
	for i, v := range raw {
		out[i] = Index(v)
	}
	return out
}

func (idx *Indexer) grow() int {
	newCapacity := idx.capacity * 2
	if newCapacity < MinimumCapacity {
		newCapacity = MinimumCapacity
	}
	if newCapacity == idx.capacity {
		newCapacity = idx.capacity + 1
	}
	_ = idx.validIndices.Resize(newCapacity)
	_ = idx.privateIndices.Resize(newCapacity)
	_ = idx.validPrivateIndices.Resize(newCapacity)
	_ = idx.validPublicIndices.Resize(newCapacity)
	oldCapacity := idx.capacity
	idx.capacity = newCapacity
	if Logger != nil {
		Logger.Debug("indexer capacity grown", logging.Capacity(oldCapacity), logging.Int("new_capacity", newCapacity))
	}
	return newCapacity
}

// nextIndex implements the allocation algorithm: reuse a freed index if
// one is queued, otherwise issue the smallest never-issued index, growing
// capacity (doubling, minimum floor MinimumCapacity) if the
// chosen index would not fit.
func (idx *Indexer) nextIndex() AssignedIndex {
	if reused, ok := idx.indicesAvailableForReuse.PopFront(); ok {
		return AssignedIndex{Index: reused}
	}

	next := Index(idx.NumberOfIndexedElements())
	if int(next) < idx.capacity {
		return AssignedIndex{Index: next}
	}

	newCapacity := idx.grow()
	return AssignedIndex{Index: next, NewIndexCapacity: &newCapacity}
}

// NewPublicIndex allocates a fresh index in the public partition.
func (idx *Indexer) NewPublicIndex() AssignedIndex {
	assigned := idx.nextIndex()
	setBool(idx.validIndices, assigned.Index, true)
	setBool(idx.validPublicIndices, assigned.Index, true)
	return assigned
}

// NewPrivateIndex allocates a fresh index in the private partition.
func (idx *Indexer) NewPrivateIndex() AssignedIndex {
	assigned := idx.nextIndex()
	setBool(idx.validIndices, assigned.Index, true)
	setBool(idx.privateIndices, assigned.Index, true)
	setBool(idx.validPrivateIndices, assigned.Index, true)
	return assigned
}

// FreePublicIndex releases i, making it available for reuse. Fails if i is
// not currently a valid public index: a repeated free on an
// already-freed index errors rather than being silently tolerated.
func (idx *Indexer) FreePublicIndex(i Index) error {
	if err := idx.TryPublicIndexValidity(i); err != nil {
		return err
	}
	setBool(idx.validIndices, i, false)
	setBool(idx.validPublicIndices, i, false)
	idx.indicesAvailableForReuse.PushBack(i)
	return nil
}

// FreePrivateIndex releases i, making it available for reuse.
func (idx *Indexer) FreePrivateIndex(i Index) error {
	if err := idx.TryPrivateIndexValidity(i); err != nil {
		return err
	}
	setBool(idx.validIndices, i, false)
	setBool(idx.privateIndices, i, false)
	setBool(idx.validPrivateIndices, i, false)
	idx.indicesAvailableForReuse.PushBack(i)
	return nil
}

// SetIndexCapacity grows or restores the indexer's capacity directly; used
// by the transaction layer's revert path to re-latch a prior capacity.
func (idx *Indexer) SetIndexCapacity(n int) error {
	if n < MinimumCapacity {
		n = MinimumCapacity
	}
	if err := idx.validIndices.Resize(n); err != nil {
		return err
	}
	if err := idx.privateIndices.Resize(n); err != nil {
		return err
	}
	if err := idx.validPrivateIndices.Resize(n); err != nil {
		return err
	}
	if err := idx.validPublicIndices.Resize(n); err != nil {
		return err
	}
	idx.capacity = n
	return nil
}
