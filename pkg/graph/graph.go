// Package graph binds the vertex store and edge store into the top-level
// aggregate the public API is built on.
package graph

import (
	"github.com/dd0wney/graphmatrix/pkg/edgestore"
	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/indexing"
	"github.com/dd0wney/graphmatrix/pkg/kernel"
	"github.com/dd0wney/graphmatrix/pkg/vertexstore"
)

// Graph is the top-level aggregate binding a VertexStore and an EdgeStore
// that share one algebra context.
type Graph struct {
	ctx      *kernel.Context
	vertices *vertexstore.VertexStore
	edges    *edgestore.EdgeStore
}

// New creates an empty graph under a fresh algebra context, with every
// indexer at indexing.DefaultInitialCapacity.
func New() *Graph {
	return &Graph{
		ctx:      kernel.NewContext(),
		vertices: vertexstore.NewVertexStore(),
		edges:    edgestore.NewEdgeStore(),
	}
}

// NewWithCapacity creates an empty graph whose vertex-element indexer
// starts at vertexCapacity and whose edge-type indexer starts at
// edgeTypeCapacity, the way config.EngineConfig's
// InitialVertexCapacity/InitialEdgeCapacity size a freshly started
// engine.
func NewWithCapacity(vertexCapacity, edgeTypeCapacity int) *Graph {
	return &Graph{
		ctx:      kernel.NewContext(),
		vertices: vertexstore.NewVertexStoreWithCapacity(vertexCapacity),
		edges:    edgestore.NewEdgeStoreWithCapacity(edgeTypeCapacity),
	}
}

// Context returns the shared algebra-kernel context handle.
func (g *Graph) Context() *kernel.Context { return g.ctx }

// Vertices exposes the vertex store for transaction wrappers and
// operator-application helpers.
func (g *Graph) Vertices() *vertexstore.VertexStore { return g.vertices }

// Edges exposes the edge store.
func (g *Graph) Edges() *edgestore.EdgeStore { return g.edges }

// IsValidVertexIndex reports whether v is currently allocated.
func (g *Graph) IsValidVertexIndex(v indexing.VertexIndex) bool {
	return g.vertices.ElementIndexer().IsValidIndex(indexing.Index(v))
}

// TryVertexIndexValidity fails with IndexOutOfBounds if v is not valid,
// regardless of partition, accepting both public and private indices.
// TryOptionalVertexIndexValidity delegates to it.
func (g *Graph) TryVertexIndexValidity(v indexing.VertexIndex) error {
	return g.vertices.ElementIndexer().TryIndexValidity(indexing.Index(v))
}

// TryPublicVertexIndexValidity is the public-API boundary check: it fails
// with UserError unless v is both allocated and in the public partition,
// per the public/private partition contract.
func (g *Graph) TryPublicVertexIndexValidity(v indexing.VertexIndex) error {
	if err := g.vertices.ElementIndexer().TryPublicIndexValidity(indexing.Index(v)); err != nil {
		return graphcore.NewUserError(graphcore.UserIndexOutOfBounds, "vertex index %d is not a valid public index", v)
	}
	return nil
}

// IsValidVertexTypeIndex reports whether t is currently allocated.
func (g *Graph) IsValidVertexTypeIndex(t indexing.VertexTypeIndex) bool {
	return g.vertices.TypeIndexer().IsValidIndex(indexing.Index(t))
}

// IsValidEdgeTypeIndex reports whether e is currently allocated.
func (g *Graph) IsValidEdgeTypeIndex(e indexing.EdgeTypeIndex) bool {
	return g.edges.TypeIndexer().IsValidIndex(indexing.Index(e))
}

// IsValidEdge reports whether edge (e, tail, head) exists.
func (g *Graph) IsValidEdge(e indexing.EdgeTypeIndex, tail, head indexing.VertexIndex) bool {
	return g.edges.IsEdge(e, int(tail), int(head))
}

// TryEdgeValidity fails with EdgeMustExist unless (e, tail, head) exists.
func (g *Graph) TryEdgeValidity(e indexing.EdgeTypeIndex, tail, head indexing.VertexIndex) error {
	if !g.IsValidEdge(e, tail, head) {
		return graphcore.NewLogicError(graphcore.EdgeMustExist, "edge (%d,%d,%d) does not exist", e, tail, head)
	}
	return nil
}

// TryOptionalVertexIndexValidity accepts nil as vacuously valid,
// otherwise defers to TryVertexIndexValidity ("try_optional_*").
func (g *Graph) TryOptionalVertexIndexValidity(v *indexing.VertexIndex) error {
	if v == nil {
		return nil
	}
	return g.TryVertexIndexValidity(*v)
}
