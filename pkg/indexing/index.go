package indexing

// Index is a dense, non-negative integer identifying a slot in a typed
// container. Indices allocated by an Indexer always lie in [0, capacity).
type Index uint

// VertexIndex, VertexTypeIndex and EdgeTypeIndex are disjoint sub-kinds of
// Index, distinct at the type level only: numeric values may coincide
// across kinds.
type (
	VertexIndex     Index
	VertexTypeIndex Index
	EdgeTypeIndex   Index
)

// AssignedIndex is returned by every allocation call. NewIndexCapacity is
// set only when allocation grew the indexer's capacity, so that callers
// (VertexStore, EdgeStore) know to resize their own parallel arrays to
// match.
type AssignedIndex struct {
	Index            Index
	NewIndexCapacity *int
}
