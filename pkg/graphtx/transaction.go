// Package graphtx implements the reversible transaction façade over a
// Graph: mutations are applied to the live stores immediately, while undo
// information accumulates in per-store state restorers so that Revert (or
// an unCommitted Close) replays every change in reverse.
package graphtx

import (
	"errors"
	"time"

	"github.com/dd0wney/graphmatrix/pkg/edgestore"
	"github.com/dd0wney/graphmatrix/pkg/graph"
	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/indexing"
	"github.com/dd0wney/graphmatrix/pkg/logging"
	"github.com/dd0wney/graphmatrix/pkg/metrics"
	"github.com/dd0wney/graphmatrix/pkg/valuetype"
	"github.com/dd0wney/graphmatrix/pkg/vertexstore"
)

// ErrTransactionNotActive is returned by Commit/Revert once a transaction
// has already been committed or reverted.
var ErrTransactionNotActive = errors.New("graphtx: transaction is not active")

// DebugMode, when true, makes Close panic after logging a revert failure
// on an uncommitted transaction, mirroring the original engine's
// debug-build abort ("drop semantics"). Release builds of a
// long-running server should leave this false and instead treat the graph
// as unusable once such an error is logged.
var DebugMode = false

// Metrics, when non-nil, receives a commit/revert observation from every
// Commit and Revert call. Left nil by default so transactions carry no
// metrics overhead unless a caller opts in with metrics.DefaultRegistry()
// or its own *metrics.Registry.
var Metrics *metrics.Registry

// GraphTransaction pairs a VertexStoreTransaction-equivalent restorer and
// an EdgeStoreTransaction-equivalent restorer over one borrowed Graph.
type GraphTransaction struct {
	g *graph.Graph

	vertexRestorer *vertexstore.VertexStoreStateRestorer
	edgeRestorer   *edgestore.EdgeStoreStateRestorer

	active    bool
	committed bool
	log       logging.Logger
}

// Begin opens a transaction over g, latching the current state of both
// stores so that Revert can undo everything done through this handle.
func Begin(g *graph.Graph) *GraphTransaction {
	return &GraphTransaction{
		g:              g,
		vertexRestorer: vertexstore.NewVertexStoreStateRestorer(g.Vertices()),
		edgeRestorer:   edgestore.NewEdgeStoreStateRestorer(g.Edges()),
		active:         true,
		log:            logging.DefaultLogger(),
	}
}

// Commit replaces each sub-restorer with a fresh one bound to the
// post-commit state and discards the undo records. The transaction is then
// no longer active: a later Commit or Revert returns ErrTransactionNotActive.
func (tx *GraphTransaction) Commit() error {
	if !tx.active {
		return ErrTransactionNotActive
	}
	tx.vertexRestorer = tx.g.Vertices().Commit(tx.vertexRestorer)
	tx.edgeRestorer = tx.g.Edges().Commit(tx.edgeRestorer)
	tx.committed = true
	tx.active = false
	tx.log.Debug("transaction committed", tx.txIDField())
	if Metrics != nil {
		Metrics.RecordCommit()
		Metrics.ObserveStore(
			len(tx.g.Vertices().ValidVertexTypes()),
			len(tx.g.Edges().ValidEdgeTypes()),
			tx.g.Edges().TransposeCacheSize(),
		)
	}
	return nil
}

// txIDField tags a log record with the owning graph's context identity, so
// records from concurrently used Graphs in one process can be told apart.
func (tx *GraphTransaction) txIDField() logging.Field {
	return logging.TxID(tx.g.Context().ID().String())
}

// Revert replays every registered undo record against the live stores in
// reverse order, returning them to the state they were in when Begin was
// called.
func (tx *GraphTransaction) Revert() error {
	if !tx.active {
		return ErrTransactionNotActive
	}
	start := time.Now()
	verr := tx.vertexRestorer.Restore(tx.g.Vertices())
	eerr := tx.edgeRestorer.Restore(tx.g.Edges())
	tx.active = false
	tx.log.Debug("transaction reverted", tx.txIDField())
	if Metrics != nil {
		Metrics.RecordRevert(time.Since(start), verr == nil && eerr == nil)
	}
	if verr != nil {
		return graphcore.WrapKernelError(verr)
	}
	if eerr != nil {
		return graphcore.WrapKernelError(eerr)
	}
	return nil
}

// Close reverts the transaction if it was never committed, the Go
// analogue of the original engine's Drop-triggers-revert semantics
// ("drop semantics"). Callers should `defer tx.Close()` immediately after
// Begin.
func (tx *GraphTransaction) Close() {
	if !tx.active {
		return
	}
	if err := tx.Revert(); err != nil {
		tx.log.Error("transaction revert failed on close", logging.Error(err), tx.txIDField())
		if DebugMode {
			panic(err)
		}
	}
}

// NewVertexType allocates a new public vertex type backed by scalar type
// T.
func NewVertexType[T valuetype.Scalar](tx *GraphTransaction) indexing.VertexTypeIndex {
	t := vertexstore.NewVertexType[T](tx.g.Vertices(), tx.vertexRestorer)
	tx.log.Debug("vertex type allocated", logging.VertexType(uint(t)), tx.txIDField())
	return t
}

// DropVertexType frees vertex type t.
func (tx *GraphTransaction) DropVertexType(t indexing.VertexTypeIndex) error {
	tx.log.Debug("vertex type dropped", logging.VertexType(uint(t)), tx.txIDField())
	return tx.g.Vertices().DropVertexType(tx.vertexRestorer, t)
}

// NewPrivateVertexType allocates a new private (engine-internal scratch)
// vertex type backed by scalar type T. Private types are not reachable
// from the public vertex-type listing and their values must be written
// through SetPrivateVertexValue, never SetVertexValue.
func NewPrivateVertexType[T valuetype.Scalar](tx *GraphTransaction) indexing.VertexTypeIndex {
	t := vertexstore.NewPrivateVertexType[T](tx.g.Vertices(), tx.vertexRestorer)
	tx.log.Debug("private vertex type allocated", logging.VertexType(uint(t)), tx.txIDField())
	return t
}

// NewPrivateVertexIndex allocates a new private vertex element index,
// propagating any capacity growth to the edge store exactly like
// NewVertexIndex.
func (tx *GraphTransaction) NewPrivateVertexIndex() (indexing.VertexIndex, error) {
	v, newCap, err := tx.g.Vertices().NewPrivateVertexIndex(tx.vertexRestorer)
	if err != nil {
		return 0, err
	}
	tx.log.Debug("private vertex index allocated", logging.VertexIndex(uint(v)), tx.txIDField())
	if newCap != nil {
		if err := tx.resizeEdgesTo(*newCap); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// SetPrivateVertexValue writes value into private slot (t, v).
func SetPrivateVertexValue[T valuetype.Scalar](tx *GraphTransaction, t indexing.VertexTypeIndex, v indexing.VertexIndex, value T) error {
	return vertexstore.SetPrivateVertexValue[T](tx.g.Vertices(), t, v, value)
}

// GetPrivateVertexValue reads private slot (t, v), coercing into T.
func GetPrivateVertexValue[T valuetype.Scalar](tx *GraphTransaction, t indexing.VertexTypeIndex, v indexing.VertexIndex) (T, bool, error) {
	return vertexstore.GetPrivateVertexValue[T](tx.g.Vertices(), t, v)
}

// NewVertexIndex allocates a new public vertex element index, propagating
// any capacity growth to the edge store so adjacency matrix dimensions
// stay in sync with vertex-index capacity.
func (tx *GraphTransaction) NewVertexIndex() (indexing.VertexIndex, error) {
	v, newCap, err := tx.g.Vertices().NewVertexIndex(tx.vertexRestorer)
	if err != nil {
		return 0, err
	}
	tx.log.Debug("vertex index allocated", logging.VertexIndex(uint(v)), tx.txIDField())
	if newCap != nil {
		if err := tx.resizeEdgesTo(*newCap); err != nil {
			return 0, err
		}
	}
	return v, nil
}

func (tx *GraphTransaction) resizeEdgesTo(n int) error {
	if err := tx.g.Edges().ResizeAdjacencyMatrices(n); err != nil {
		return graphcore.WrapKernelError(err)
	}
	return nil
}

// DropVertexIndex drops vertex index v: every vertex vector element at v
// is cleared, all edges incident to v are deleted, and v is freed.
func (tx *GraphTransaction) DropVertexIndex(v indexing.VertexIndex) error {
	tx.log.Debug("vertex index dropped", logging.VertexIndex(uint(v)), tx.txIDField())
	if err := tx.g.Edges().DeleteVertexConnections(int(v)); err != nil {
		return graphcore.WrapKernelError(err)
	}
	return tx.g.Vertices().DropVertexIndex(tx.vertexRestorer, v)
}

// SetVertexValue writes value into slot (t, v).
func SetVertexValue[T valuetype.Scalar](tx *GraphTransaction, t indexing.VertexTypeIndex, v indexing.VertexIndex, value T) error {
	return vertexstore.SetVertexValue[T](tx.g.Vertices(), t, v, value)
}

// GetVertexValue reads slot (t, v), coercing into T.
func GetVertexValue[T valuetype.Scalar](tx *GraphTransaction, t indexing.VertexTypeIndex, v indexing.VertexIndex) (T, bool, error) {
	return vertexstore.GetVertexValue[T](tx.g.Vertices(), t, v)
}

// NewEdgeType allocates a new public edge type backed by scalar type T.
func NewEdgeType[T valuetype.Scalar](tx *GraphTransaction) indexing.EdgeTypeIndex {
	e := edgestore.NewEdgeType[T](tx.g.Edges(), tx.edgeRestorer, tx.g.Vertices().ElementIndexer().Capacity())
	tx.log.Debug("edge type allocated", logging.EdgeType(uint(e)), tx.txIDField())
	return e
}

// DropEdgeType frees edge type e.
func (tx *GraphTransaction) DropEdgeType(e indexing.EdgeTypeIndex) error {
	tx.log.Debug("edge type dropped", logging.EdgeType(uint(e)), tx.txIDField())
	return tx.g.Edges().DropEdgeType(tx.edgeRestorer, e)
}

// SetEdgeValue writes weight into cell (tail, head) of matrix e.
func SetEdgeValue[T valuetype.Scalar](tx *GraphTransaction, e indexing.EdgeTypeIndex, tail, head indexing.VertexIndex, weight T) error {
	return edgestore.SetEdgeValue[T](tx.g.Edges(), e, int(tail), int(head), weight)
}

// GetEdgeValue reads cell (tail, head) of matrix e, coercing into T.
func GetEdgeValue[T valuetype.Scalar](tx *GraphTransaction, e indexing.EdgeTypeIndex, tail, head indexing.VertexIndex) (T, bool, error) {
	return edgestore.GetEdgeValue[T](tx.g.Edges(), e, int(tail), int(head))
}

// DeleteEdge drops cell (tail, head) in matrix e.
func (tx *GraphTransaction) DeleteEdge(e indexing.EdgeTypeIndex, tail, head indexing.VertexIndex) error {
	return tx.g.Edges().DeleteEdge(e, int(tail), int(head))
}
