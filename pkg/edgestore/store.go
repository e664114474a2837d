package edgestore

import (
	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/indexing"
	"github.com/dd0wney/graphmatrix/pkg/metrics"
	"github.com/dd0wney/graphmatrix/pkg/valuetype"
)

// Metrics, when non-nil, receives allocation/free counts and indexer
// gauges from every edge-type indexer operation. Left nil by default so
// the store carries no metrics overhead unless a caller opts in.
var Metrics *metrics.Registry

const edgeTypeIndexerLabel = "edge_type"

// EdgeStore is an edge-type indexer plus an ordered array of adjacency
// matrices, one per edge type, plus a write-through transpose cache.
type EdgeStore struct {
	typeIndexer *indexing.Indexer
	matrices    []AnyAdjacencyMatrix
	transposed  map[indexing.EdgeTypeIndex]AnyAdjacencyMatrix
}

// NewEdgeStore creates an empty store with a default-capacity type
// indexer. Matrix dimension is given per edge type (see NewEdgeType).
func NewEdgeStore() *EdgeStore {
	return &EdgeStore{
		typeIndexer: indexing.NewIndexer(),
		transposed:  make(map[indexing.EdgeTypeIndex]AnyAdjacencyMatrix),
	}
}

// NewEdgeStoreWithCapacity creates an empty store whose edge-type indexer
// starts at typeCapacity instead of indexing.DefaultInitialCapacity.
// Adjacency matrix dimension always mirrors the vertex store's element
// capacity regardless of this value (see NewEdgeType).
func NewEdgeStoreWithCapacity(typeCapacity int) *EdgeStore {
	return &EdgeStore{
		typeIndexer: indexing.NewIndexerWithCapacity(typeCapacity),
		transposed:  make(map[indexing.EdgeTypeIndex]AnyAdjacencyMatrix),
	}
}

// TypeIndexer exposes the edge-type allocator.
func (s *EdgeStore) TypeIndexer() *indexing.Indexer { return s.typeIndexer }

func (s *EdgeStore) growMatrixSlotsTo(k int) {
	for len(s.matrices) < k {
		s.matrices = append(s.matrices, nil)
	}
}

// NewEdgeType allocates a new public edge type backed by scalar type T
// through restorer, installing an n x n empty matrix where n is the
// current vertex-element capacity.
func NewEdgeType[T valuetype.Scalar](s *EdgeStore, restorer *EdgeStoreStateRestorer, vertexCapacity int) indexing.EdgeTypeIndex {
	assigned := restorer.typeIndexerRestorer.NewPublicIndex(s.typeIndexer)
	if assigned.NewIndexCapacity != nil {
		s.growMatrixSlotsTo(*assigned.NewIndexCapacity)
	}
	s.growMatrixSlotsTo(int(assigned.Index) + 1)
	s.matrices[assigned.Index] = NewAdjacencyMatrix[T](vertexCapacity)
	if Metrics != nil {
		Metrics.RecordIndexAllocation(edgeTypeIndexerLabel)
	}
	s.observeTypeIndexer()
	return indexing.EdgeTypeIndex(assigned.Index)
}

// DropEdgeType frees t through restorer.
func (s *EdgeStore) DropEdgeType(restorer *EdgeStoreStateRestorer, t indexing.EdgeTypeIndex) error {
	delete(s.transposed, t)
	err := restorer.typeIndexerRestorer.FreePublicIndex(s.typeIndexer, indexing.Index(t))
	if err == nil {
		if Metrics != nil {
			Metrics.RecordIndexFree(edgeTypeIndexerLabel)
		}
		s.observeTypeIndexer()
	}
	return err
}

func (s *EdgeStore) observeTypeIndexer() {
	if Metrics == nil {
		return
	}
	Metrics.ObserveIndexer(edgeTypeIndexerLabel, s.typeIndexer.Capacity(), s.typeIndexer.NumberOfIndexedElements())
}

// MatrixAt returns the matrix installed at slot e, or nil if e is not a
// currently valid edge type.
func (s *EdgeStore) MatrixAt(e indexing.EdgeTypeIndex) AnyAdjacencyMatrix {
	if !s.typeIndexer.IsValidIndex(indexing.Index(e)) || int(e) >= len(s.matrices) {
		return nil
	}
	return s.matrices[int(e)]
}

// TransposeCacheSize returns the number of cached transposes currently
// held, used by the metrics registry's store-level gauge.
func (s *EdgeStore) TransposeCacheSize() int { return len(s.transposed) }

// ValidEdgeTypes returns every currently allocated edge type index.
func (s *EdgeStore) ValidEdgeTypes() []indexing.EdgeTypeIndex {
	raw := s.typeIndexer.ValidIndices()
	out := make([]indexing.EdgeTypeIndex, len(raw))
	for i, v := range raw {
		out[i] = indexing.EdgeTypeIndex(v)
	}
	return out
}

// ResizeAdjacencyMatrices resizes every allocated adjacency matrix to
// n x n and invalidates the entire transpose cache.
func (s *EdgeStore) ResizeAdjacencyMatrices(n int) error {
	for _, mat := range s.matrices {
		if mat == nil {
			continue
		}
		if err := mat.Resize(n); err != nil {
			return err
		}
	}
	s.transposed = make(map[indexing.EdgeTypeIndex]AnyAdjacencyMatrix)
	return nil
}

// SetEdgeValue writes weight into cell (tail, head) of matrix e,
// invalidating e's cached transpose.
func SetEdgeValue[T valuetype.Scalar](s *EdgeStore, e indexing.EdgeTypeIndex, tail, head int, value T) error {
	mat := s.MatrixAt(e)
	if mat == nil {
		return graphcore.NewLogicError(graphcore.EdgeTypeMustExist, "edge type %d is not valid", e)
	}
	delete(s.transposed, e)
	return mat.SetValue(tail, head, valuetype.Of(value))
}

// GetEdgeValue reads cell (tail, head) of matrix e, coercing into T.
func GetEdgeValue[T valuetype.Scalar](s *EdgeStore, e indexing.EdgeTypeIndex, tail, head int) (T, bool, error) {
	var zero T
	mat := s.MatrixAt(e)
	if mat == nil {
		return zero, false, graphcore.NewLogicError(graphcore.EdgeTypeMustExist, "edge type %d is not valid", e)
	}
	raw, ok, err := mat.GetValue(tail, head)
	if err != nil || !ok {
		return zero, ok, err
	}
	return valuetype.As[T](raw), true, nil
}

// IsEdge reports whether cell (tail, head) of matrix e is stored.
func (s *EdgeStore) IsEdge(e indexing.EdgeTypeIndex, tail, head int) bool {
	mat := s.MatrixAt(e)
	if mat == nil {
		return false
	}
	_, ok, err := mat.GetValue(tail, head)
	return err == nil && ok
}

// DeleteEdge drops cell (tail, head) in matrix e, invalidating e's cached
// transpose.
func (s *EdgeStore) DeleteEdge(e indexing.EdgeTypeIndex, tail, head int) error {
	mat := s.MatrixAt(e)
	if mat == nil {
		return graphcore.NewLogicError(graphcore.EdgeTypeMustExist, "edge type %d is not valid", e)
	}
	delete(s.transposed, e)
	return mat.DropElement(tail, head)
}

// DeleteVertexConnections overwrites row v and column v of every
// allocated adjacency matrix with empty vectors, invalidating every
// affected cache entry.
func (s *EdgeStore) DeleteVertexConnections(v int) error {
	for e, mat := range s.matrices {
		if mat == nil {
			continue
		}
		delete(s.transposed, indexing.EdgeTypeIndex(e))
		if err := mat.DeleteVertexConnections(v); err != nil {
			return err
		}
	}
	return nil
}

// TryTransposedAdjacencyMatrix returns the cached transpose of matrix e if
// present, otherwise computes, caches and returns it
// ("try_transposed_adjacency_matrix_ref").
func (s *EdgeStore) TryTransposedAdjacencyMatrix(e indexing.EdgeTypeIndex) (AnyAdjacencyMatrix, error) {
	if cached, ok := s.transposed[e]; ok {
		return cached, nil
	}
	mat := s.MatrixAt(e)
	if mat == nil {
		return nil, graphcore.NewLogicError(graphcore.EdgeTypeMustExist, "edge type %d is not valid", e)
	}
	tr := mat.Transpose()
	s.transposed[e] = tr
	return tr, nil
}
