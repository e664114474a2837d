package vertexstore

import (
	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/indexing"
	"github.com/dd0wney/graphmatrix/pkg/metrics"
	"github.com/dd0wney/graphmatrix/pkg/valuetype"
)

// Metrics, when non-nil, receives allocation/free counts and indexer
// gauges from every vertex-type and vertex-element indexer operation. Left
// nil by default so the store carries no metrics overhead unless a caller
// opts in.
var Metrics *metrics.Registry

const (
	vertexTypeIndexerLabel    = "vertex_type"
	vertexElementIndexerLabel = "vertex_element"
)

// VertexStore is a vertex-type indexer plus a vertex-element indexer plus
// an ordered array of vertex vectors, one per vertex type.
type VertexStore struct {
	typeIndexer    *indexing.Indexer
	elementIndexer *indexing.Indexer
	vectors        []AnyVertexVector
}

// NewVertexStore creates an empty store with default-capacity indexers.
func NewVertexStore() *VertexStore {
	return &VertexStore{
		typeIndexer:    indexing.NewIndexer(),
		elementIndexer: indexing.NewIndexer(),
	}
}

// NewVertexStoreWithCapacity creates an empty store whose element indexer
// (vertex count) starts at elementCapacity instead of
// indexing.DefaultInitialCapacity; the type indexer keeps the default,
// since the number of distinct vertex types is independent of element
// count.
func NewVertexStoreWithCapacity(elementCapacity int) *VertexStore {
	return &VertexStore{
		typeIndexer:    indexing.NewIndexer(),
		elementIndexer: indexing.NewIndexerWithCapacity(elementCapacity),
	}
}

// TypeIndexer exposes the vertex-type allocator, read by Graph for
// indexing queries and by the transaction layer for undo composition.
func (s *VertexStore) TypeIndexer() *indexing.Indexer { return s.typeIndexer }

// ElementIndexer exposes the vertex-element allocator; GraphTransaction
// reads its capacity to size new adjacency matrices.
func (s *VertexStore) ElementIndexer() *indexing.Indexer { return s.elementIndexer }

func (s *VertexStore) growVectorSlotsTo(k int) {
	for len(s.vectors) < k {
		s.vectors = append(s.vectors, nil)
	}
}

// NewVertexType allocates a new public vertex type backed by scalar type
// T through restorer, recording undo for the allocation (and any capacity
// growth), and installs its empty vector. Go methods cannot carry their
// own type parameters, so this is a package-level function rather than a
// method.
func NewVertexType[T valuetype.Scalar](s *VertexStore, restorer *VertexStoreStateRestorer) indexing.VertexTypeIndex {
	assigned := restorer.typeIndexerRestorer.NewPublicIndex(s.typeIndexer)
	if assigned.NewIndexCapacity != nil {
		s.growVectorSlotsTo(*assigned.NewIndexCapacity)
	}
	s.growVectorSlotsTo(int(assigned.Index) + 1)
	s.vectors[assigned.Index] = NewVertexVector[T](s.elementIndexer.Capacity())
	if Metrics != nil {
		Metrics.RecordIndexAllocation(vertexTypeIndexerLabel)
	}
	s.observeTypeIndexer()
	return indexing.VertexTypeIndex(assigned.Index)
}

// NewPrivateVertexType is the private-partition analogue, used for
// engine-internal scratch vertex types (the public vs private
// partition).
func NewPrivateVertexType[T valuetype.Scalar](s *VertexStore, restorer *VertexStoreStateRestorer) indexing.VertexTypeIndex {
	assigned := restorer.typeIndexerRestorer.NewPrivateIndex(s.typeIndexer)
	if assigned.NewIndexCapacity != nil {
		s.growVectorSlotsTo(*assigned.NewIndexCapacity)
	}
	s.growVectorSlotsTo(int(assigned.Index) + 1)
	s.vectors[assigned.Index] = NewVertexVector[T](s.elementIndexer.Capacity())
	if Metrics != nil {
		Metrics.RecordIndexAllocation(vertexTypeIndexerLabel)
	}
	s.observeTypeIndexer()
	return indexing.VertexTypeIndex(assigned.Index)
}

// DropVertexType frees t through restorer; its slot becomes inaccessible
// but is not necessarily deallocated.
func (s *VertexStore) DropVertexType(restorer *VertexStoreStateRestorer, t indexing.VertexTypeIndex) error {
	var err error
	if s.typeIndexer.IsValidPrivateIndex(indexing.Index(t)) {
		err = restorer.typeIndexerRestorer.FreePrivateIndex(s.typeIndexer, indexing.Index(t))
	} else {
		err = restorer.typeIndexerRestorer.FreePublicIndex(s.typeIndexer, indexing.Index(t))
	}
	if err == nil {
		if Metrics != nil {
			Metrics.RecordIndexFree(vertexTypeIndexerLabel)
		}
		s.observeTypeIndexer()
	}
	return err
}

func (s *VertexStore) observeTypeIndexer() {
	if Metrics == nil {
		return
	}
	Metrics.ObserveIndexer(vertexTypeIndexerLabel, s.typeIndexer.Capacity(), s.typeIndexer.NumberOfIndexedElements())
}

func (s *VertexStore) observeElementIndexer() {
	if Metrics == nil {
		return
	}
	Metrics.ObserveIndexer(vertexElementIndexerLabel, s.elementIndexer.Capacity(), s.elementIndexer.NumberOfIndexedElements())
}

// VectorAt returns the vector installed at slot t, or nil if t is not a
// currently valid vertex type.
func (s *VertexStore) VectorAt(t indexing.VertexTypeIndex) AnyVertexVector {
	if !s.typeIndexer.IsValidIndex(indexing.Index(t)) || int(t) >= len(s.vectors) {
		return nil
	}
	return s.vectors[int(t)]
}

// ValidVertexTypes returns every currently allocated vertex type index.
func (s *VertexStore) ValidVertexTypes() []indexing.VertexTypeIndex {
	raw := s.typeIndexer.ValidIndices()
	out := make([]indexing.VertexTypeIndex, len(raw))
	for i, v := range raw {
		out[i] = indexing.VertexTypeIndex(v)
	}
	return out
}

// NewVertexIndex allocates a public vertex element index through
// restorer, resizing every valid vertex vector to the new capacity if
// allocation grew it. The caller (GraphTransaction) is responsible for notifying
// the edge store of a capacity change; the returned *int reports the new
// capacity, nil if none occurred.
func (s *VertexStore) NewVertexIndex(restorer *VertexStoreStateRestorer) (indexing.VertexIndex, *int, error) {
	assigned := restorer.elementIndexerRestorer.NewPublicIndex(s.elementIndexer)
	if assigned.NewIndexCapacity != nil {
		if err := s.resizeAllVectors(*assigned.NewIndexCapacity); err != nil {
			return 0, nil, graphcore.WrapKernelError(err)
		}
	}
	if Metrics != nil {
		Metrics.RecordIndexAllocation(vertexElementIndexerLabel)
	}
	s.observeElementIndexer()
	return indexing.VertexIndex(assigned.Index), assigned.NewIndexCapacity, nil
}

// NewPrivateVertexIndex is the private-partition analogue of
// NewVertexIndex.
func (s *VertexStore) NewPrivateVertexIndex(restorer *VertexStoreStateRestorer) (indexing.VertexIndex, *int, error) {
	assigned := restorer.elementIndexerRestorer.NewPrivateIndex(s.elementIndexer)
	if assigned.NewIndexCapacity != nil {
		if err := s.resizeAllVectors(*assigned.NewIndexCapacity); err != nil {
			return 0, nil, graphcore.WrapKernelError(err)
		}
	}
	if Metrics != nil {
		Metrics.RecordIndexAllocation(vertexElementIndexerLabel)
	}
	s.observeElementIndexer()
	return indexing.VertexIndex(assigned.Index), assigned.NewIndexCapacity, nil
}

func (s *VertexStore) resizeAllVectors(n int) error {
	for _, vec := range s.vectors {
		if vec == nil {
			continue
		}
		if err := vec.Resize(n); err != nil {
			return err
		}
	}
	return nil
}

// DropVertexIndex drops element v from every allocated vertex vector
// (each vector self-registers its own undo) and frees v in the element
// indexer through restorer. Cascading edge deletion is the caller's
// (GraphTransaction's) responsibility ("cyclic references between stores").
func (s *VertexStore) DropVertexIndex(restorer *VertexStoreStateRestorer, v indexing.VertexIndex) error {
	for _, vec := range s.vectors {
		if vec == nil {
			continue
		}
		if err := vec.DropElement(int(v)); err != nil {
			return err
		}
	}
	var err error
	if s.elementIndexer.IsValidPrivateIndex(indexing.Index(v)) {
		err = restorer.elementIndexerRestorer.FreePrivateIndex(s.elementIndexer, indexing.Index(v))
	} else {
		err = restorer.elementIndexerRestorer.FreePublicIndex(s.elementIndexer, indexing.Index(v))
	}
	if err == nil {
		if Metrics != nil {
			Metrics.RecordIndexFree(vertexElementIndexerLabel)
		}
		s.observeElementIndexer()
	}
	return err
}

// SetVertexValue writes value into slot (t, v), coercing through the
// value-type family if the caller's T differs from the slot's physical
// storage type. This is the public-API write path, so v must be both
// allocated and public: a private (engine-internal) index reaching here
// is rejected with UserError rather than silently accepted.
func SetVertexValue[T valuetype.Scalar](s *VertexStore, t indexing.VertexTypeIndex, v indexing.VertexIndex, value T) error {
	vec := s.VectorAt(t)
	if vec == nil {
		return graphcore.NewLogicError(graphcore.InvalidIndex, "vertex type %d is not valid", t)
	}
	if err := s.elementIndexer.TryPublicIndexValidity(indexing.Index(v)); err != nil {
		return graphcore.NewUserError(graphcore.UserIndexOutOfBounds, "vertex index %d is not a valid public index", v)
	}
	return vec.SetValue(int(v), valuetype.Of(value))
}

// GetVertexValue reads slot (t, v), coercing into T through the
// value-type family regardless of the slot's physical storage type. Like
// SetVertexValue, this is the public-API read path and requires v to be
// a valid public index.
func GetVertexValue[T valuetype.Scalar](s *VertexStore, t indexing.VertexTypeIndex, v indexing.VertexIndex) (T, bool, error) {
	var zero T
	vec := s.VectorAt(t)
	if vec == nil {
		return zero, false, graphcore.NewLogicError(graphcore.InvalidIndex, "vertex type %d is not valid", t)
	}
	if err := s.elementIndexer.TryPublicIndexValidity(indexing.Index(v)); err != nil {
		return zero, false, graphcore.NewUserError(graphcore.UserIndexOutOfBounds, "vertex index %d is not a valid public index", v)
	}
	raw, ok, err := vec.GetValue(int(v))
	if err != nil || !ok {
		return zero, ok, err
	}
	return valuetype.As[T](raw), true, nil
}

// SetPrivateVertexValue writes value into slot (t, v) for an
// engine-internal private index, used by private-partition scratch
// vertex types that never go through the public write path.
func SetPrivateVertexValue[T valuetype.Scalar](s *VertexStore, t indexing.VertexTypeIndex, v indexing.VertexIndex, value T) error {
	vec := s.VectorAt(t)
	if vec == nil {
		return graphcore.NewLogicError(graphcore.InvalidIndex, "vertex type %d is not valid", t)
	}
	if err := s.elementIndexer.TryPrivateIndexValidity(indexing.Index(v)); err != nil {
		return err
	}
	return vec.SetValue(int(v), valuetype.Of(value))
}

// GetPrivateVertexValue reads slot (t, v) for an engine-internal private
// index, coercing into T.
func GetPrivateVertexValue[T valuetype.Scalar](s *VertexStore, t indexing.VertexTypeIndex, v indexing.VertexIndex) (T, bool, error) {
	var zero T
	vec := s.VectorAt(t)
	if vec == nil {
		return zero, false, graphcore.NewLogicError(graphcore.InvalidIndex, "vertex type %d is not valid", t)
	}
	if err := s.elementIndexer.TryPrivateIndexValidity(indexing.Index(v)); err != nil {
		return zero, false, err
	}
	raw, ok, err := vec.GetValue(int(v))
	if err != nil || !ok {
		return zero, ok, err
	}
	return valuetype.As[T](raw), true, nil
}

// VertexValueOrDefault reads (t, v), returning def when the element is
// unset.
func VertexValueOrDefault[T valuetype.Scalar](s *VertexStore, t indexing.VertexTypeIndex, v indexing.VertexIndex, def T) (T, error) {
	val, ok, err := GetVertexValue[T](s, t, v)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return val, nil
}
