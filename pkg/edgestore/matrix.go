// Package edgestore implements the edge-type indexer, the ordered array
// of typed adjacency matrices, and the transpose cache built on top of
// them.
package edgestore

import (
	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/kernel"
	"github.com/dd0wney/graphmatrix/pkg/valuetype"
)

// AnyAdjacencyMatrix is the untyped facade over AdjacencyMatrix[T],
// mirroring vertexstore.AnyVertexVector's role for the matrix side.
type AnyAdjacencyMatrix interface {
	TypeID() valuetype.ID
	Size() (int, int)
	Resize(n int) error
	DropElement(row, col int) error
	NumberOfStoredElements() int
	GetValue(row, col int) (valuetype.Value, bool, error)
	SetValue(row, col int, v valuetype.Value) error
	DeleteVertexConnections(v int) error
	Transpose() AnyAdjacencyMatrix

	RegisterLength(n int)
	RegisterSnapshot()
	Restore() error
	ResetUndoLog()
}

// AdjacencyMatrix is a thin typed wrapper over the external sparse matrix
// primitive, carrying the runtime value-type tag and its own undo log.
type AdjacencyMatrix[T valuetype.Scalar] struct {
	mat  *kernel.SparseMatrix[T]
	kind valuetype.ID
	rev  *kernel.MatrixReverter[T]
}

// NewAdjacencyMatrix creates an empty size x size matrix.
func NewAdjacencyMatrix[T valuetype.Scalar](size int) *AdjacencyMatrix[T] {
	return &AdjacencyMatrix[T]{
		mat:  kernel.NewSparseMatrix[T](size),
		kind: valuetype.IDFor[T](),
		rev:  kernel.NewMatrixReverterWithSize[T](size),
	}
}

func (m *AdjacencyMatrix[T]) TypeID() valuetype.ID { return m.kind }
func (m *AdjacencyMatrix[T]) Size() (int, int)     { return m.mat.Size() }

func (m *AdjacencyMatrix[T]) Resize(n int) error {
	rows, _ := m.mat.Size()
	m.rev.RegisterSize(rows)
	return m.mat.Resize(n)
}

func (m *AdjacencyMatrix[T]) registerBeforeWrite(row, col int) {
	old, existed, err := m.mat.GetElement(row, col)
	if err != nil {
		return
	}
	if existed {
		m.rev.RegisterElementValue(row, col, old)
	} else {
		m.rev.RegisterEmptyElement(row, col)
	}
}

func (m *AdjacencyMatrix[T]) DropElement(row, col int) error {
	m.registerBeforeWrite(row, col)
	return m.mat.DropElement(row, col)
}

func (m *AdjacencyMatrix[T]) NumberOfStoredElements() int { return m.mat.NumberOfStoredElements() }

// SetElement writes a natively typed weight, registering undo.
func (m *AdjacencyMatrix[T]) SetElement(row, col int, value T) error {
	m.registerBeforeWrite(row, col)
	return m.mat.SetElement(row, col, value)
}

// GetElement reads a natively typed weight.
func (m *AdjacencyMatrix[T]) GetElement(row, col int) (T, bool, error) {
	return m.mat.GetElement(row, col)
}

// GetValue reads (row, col) as an untyped, coercible Value.
func (m *AdjacencyMatrix[T]) GetValue(row, col int) (valuetype.Value, bool, error) {
	val, ok, err := m.mat.GetElement(row, col)
	if err != nil || !ok {
		return valuetype.Value{}, ok, err
	}
	return valuetype.Of(val), true, nil
}

// SetValue coerces an untyped Value into T and writes it.
func (m *AdjacencyMatrix[T]) SetValue(row, col int, value valuetype.Value) error {
	m.registerBeforeWrite(row, col)
	return m.mat.SetElement(row, col, valuetype.As[T](value))
}

// DeleteVertexConnections overwrites row v and column v with empty
// vectors via insert-vector-into-row/column with an Assignment
// accumulator, registering undo for every touched cell first
// ("delete_vertex_connections").
func (m *AdjacencyMatrix[T]) DeleteVertexConnections(v int) error {
	rows, _ := m.mat.Size()
	for col, val := range m.mat.RowEntries(v) {
		m.rev.RegisterElementValue(v, col, val)
	}
	for row, val := range m.mat.ColumnEntries(v) {
		if row == v {
			continue
		}
		m.rev.RegisterElementValue(row, v, val)
	}
	empty := kernel.NewSparseVector[T](rows)
	if err := kernel.InsertVectorIntoRow(m.mat, v, empty, nil); err != nil {
		return err
	}
	return kernel.InsertVectorIntoColumn(m.mat, v, empty, nil)
}

// Transpose returns a snapshot-typed transpose of the live matrix, used
// to populate the edge store's transpose cache.
func (m *AdjacencyMatrix[T]) Transpose() AnyAdjacencyMatrix {
	out := &AdjacencyMatrix[T]{mat: m.mat.Transpose(), kind: m.kind}
	rows, _ := out.mat.Size()
	out.rev = kernel.NewMatrixReverterWithSize[T](rows)
	return out
}

// RegisterLength latches the size to restore to, if not already set.
func (m *AdjacencyMatrix[T]) RegisterLength(n int) { m.rev.RegisterSize(n) }

// RegisterSnapshot takes a full clone of the live matrix as a single undo
// record, so a bulk write followed by a revert restores every cell in one
// step instead of one undo record per cell.
func (m *AdjacencyMatrix[T]) RegisterSnapshot() { m.rev.RegisterSnapshot(m.mat.Clone()) }

// Restore replays this matrix's undo log, then installs a fresh reverter
// latched to the post-restore size.
func (m *AdjacencyMatrix[T]) Restore() error {
	if err := m.rev.Restore(m.mat); err != nil {
		return err
	}
	rows, _ := m.mat.Size()
	m.rev = kernel.NewMatrixReverterWithSize[T](rows)
	return nil
}

// ResetUndoLog discards accumulated undo records without touching live
// storage, used on transaction commit.
func (m *AdjacencyMatrix[T]) ResetUndoLog() {
	rows, _ := m.mat.Size()
	m.rev = kernel.NewMatrixReverterWithSize[T](rows)
}

// Raw exposes the underlying sparse matrix for operator-application
// wrappers that hand it directly to the algebra kernel collaborator.
func (m *AdjacencyMatrix[T]) Raw() *kernel.SparseMatrix[T] { return m.mat }

// RawMatrixOf recovers the concrete *kernel.SparseMatrix[T] behind an
// AnyAdjacencyMatrix facade, failing with InvalidKey when the slot's
// physical storage type differs from T.
func RawMatrixOf[T valuetype.Scalar](mat AnyAdjacencyMatrix) (*kernel.SparseMatrix[T], error) {
	typed, ok := mat.(*AdjacencyMatrix[T])
	if !ok {
		return nil, graphcore.NewLogicError(graphcore.InvalidKey, "edge type stores %s, requested %s", mat.TypeID(), valuetype.IDFor[T]())
	}
	return typed.mat, nil
}

// MatrixOf recovers the concrete *AdjacencyMatrix[T] itself, so callers
// can also reach RegisterSnapshot before a bulk mutation.
func MatrixOf[T valuetype.Scalar](mat AnyAdjacencyMatrix) (*AdjacencyMatrix[T], error) {
	typed, ok := mat.(*AdjacencyMatrix[T])
	if !ok {
		return nil, graphcore.NewLogicError(graphcore.InvalidKey, "edge type stores %s, requested %s", mat.TypeID(), valuetype.IDFor[T]())
	}
	return typed, nil
}
