// Package vertexstore implements the vertex-type indexer, vertex-element
// indexer, and the ordered array of typed vertex vectors built on top of
// them.
package vertexstore

import (
	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/kernel"
	"github.com/dd0wney/graphmatrix/pkg/valuetype"
)

// AnyVertexVector is the untyped facade over VertexVector[T], letting the
// store hold a heterogeneous array of vectors while still dispatching
// reads through the physical storage type ("type-family dispatch").
// Every method needed by VertexStore, VertexStoreTransaction
// and the public API is expressed here so that call sites never need a
// type switch enumerating all 13 scalar types.
type AnyVertexVector interface {
	TypeID() valuetype.ID
	Length() int
	Resize(n int) error
	DropElement(i int) error
	NumberOfStoredElements() int
	GetValue(i int) (valuetype.Value, bool, error)
	SetValue(i int, v valuetype.Value) error

	// Undo-log operations, delegating to an internal kernel.VectorReverter
	// of the slot's own scalar type.
	RegisterEmptyBeforeWrite(i int)
	RegisterValueBeforeWrite(i int)
	RegisterSnapshot()
	RegisterLength(n int)
	Restore() error
	ResetUndoLog()
}

// VertexVector is a thin typed wrapper over the external sparse vector
// primitive, carrying the runtime value-type tag required by untyped
// readers, plus the undo log for its own mutations.
type VertexVector[T valuetype.Scalar] struct {
	vec  *kernel.SparseVector[T]
	kind valuetype.ID
	rev  *kernel.VectorReverter[T]
}

// NewVertexVector creates an empty vector of the given length with a
// fresh (empty) undo log.
func NewVertexVector[T valuetype.Scalar](length int) *VertexVector[T] {
	return &VertexVector[T]{
		vec:  kernel.NewSparseVector[T](length),
		kind: valuetype.IDFor[T](),
		rev:  kernel.NewVectorReverterWithLength[T](length),
	}
}

func (v *VertexVector[T]) TypeID() valuetype.ID { return v.kind }
func (v *VertexVector[T]) Length() int          { return v.vec.Length() }

func (v *VertexVector[T]) Resize(n int) error {
	v.rev.RegisterLength(v.vec.Length())
	return v.vec.Resize(n)
}

func (v *VertexVector[T]) DropElement(i int) error {
	v.RegisterEmptyBeforeWrite(i)
	return v.vec.DropElement(i)
}

func (v *VertexVector[T]) NumberOfStoredElements() int { return v.vec.NumberOfStoredElements() }

// SetElement writes a natively typed value, registering its prior state
// for undo.
func (v *VertexVector[T]) SetElement(i int, value T) error {
	v.RegisterValueBeforeWrite(i)
	return v.vec.SetElement(i, value)
}

// GetElement reads a natively typed value.
func (v *VertexVector[T]) GetElement(i int) (T, bool, error) { return v.vec.GetElement(i) }

// GetValue reads element i as an untyped, coercible Value.
func (v *VertexVector[T]) GetValue(i int) (valuetype.Value, bool, error) {
	val, ok, err := v.vec.GetElement(i)
	if err != nil || !ok {
		return valuetype.Value{}, ok, err
	}
	return valuetype.Of(val), true, nil
}

// SetValue coerces an untyped Value into T and writes it.
func (v *VertexVector[T]) SetValue(i int, value valuetype.Value) error {
	v.RegisterValueBeforeWrite(i)
	return v.vec.SetElement(i, valuetype.As[T](value))
}

// RegisterEmptyBeforeWrite / RegisterValueBeforeWrite inspect the current
// cell and push the matching undo record, per the registration
// discipline.
func (v *VertexVector[T]) RegisterEmptyBeforeWrite(i int) {
	old, existed, err := v.vec.GetElement(i)
	if err != nil {
		return
	}
	if existed {
		v.rev.RegisterElementValue(i, old)
	} else {
		v.rev.RegisterEmptyElement(i)
	}
}

func (v *VertexVector[T]) RegisterValueBeforeWrite(i int) { v.RegisterEmptyBeforeWrite(i) }

// RegisterSnapshot takes a full clone of the live vector as a single undo
// record, used ahead of bulk operator application so a revert restores
// every element in one step instead of one undo record per element.
func (v *VertexVector[T]) RegisterSnapshot() {
	v.rev.RegisterSnapshot(v.vec.Clone())
}

// RegisterLength latches the length to restore to, if not already set.
func (v *VertexVector[T]) RegisterLength(n int) { v.rev.RegisterLength(n) }

// Restore replays this vector's undo log against its live storage, then
// installs a fresh, empty reverter latched to the post-restore length
// (the per-slot analogue of "with_reset_state_to_restore").
func (v *VertexVector[T]) Restore() error {
	if err := v.rev.Restore(v.vec); err != nil {
		return err
	}
	v.rev = kernel.NewVectorReverterWithLength[T](v.vec.Length())
	return nil
}

// ResetUndoLog discards accumulated undo records without touching live
// storage, used on transaction commit.
func (v *VertexVector[T]) ResetUndoLog() {
	v.rev = kernel.NewVectorReverterWithLength[T](v.vec.Length())
}

// Raw exposes the underlying sparse vector, used by Graph-level operator
// application wrappers that hand the vector directly to the algebra
// kernel collaborator.
func (v *VertexVector[T]) Raw() *kernel.SparseVector[T] { return v.vec }

// RawVectorOf recovers the concrete *kernel.SparseVector[T] behind an
// AnyVertexVector facade, failing with InvalidKey when the slot's
// physical storage type differs from T. Operator-application call sites
// use this to hand the live vector to the algebra kernel without a type
// switch enumerating all 13 scalar types.
func RawVectorOf[T valuetype.Scalar](vec AnyVertexVector) (*kernel.SparseVector[T], error) {
	typed, ok := vec.(*VertexVector[T])
	if !ok {
		return nil, newVertexVectorTypeMismatch(valuetype.IDFor[T](), vec.TypeID())
	}
	return typed.vec, nil
}

// VectorOf recovers the concrete *VertexVector[T] itself (rather than
// just its raw storage), so callers can also reach RegisterSnapshot
// before a bulk mutation.
func VectorOf[T valuetype.Scalar](vec AnyVertexVector) (*VertexVector[T], error) {
	typed, ok := vec.(*VertexVector[T])
	if !ok {
		return nil, newVertexVectorTypeMismatch(valuetype.IDFor[T](), vec.TypeID())
	}
	return typed, nil
}

func newVertexVectorTypeMismatch(want, got valuetype.ID) error {
	return graphcore.NewLogicError(graphcore.InvalidKey, "vertex type stores %s, requested %s", got, want)
}
