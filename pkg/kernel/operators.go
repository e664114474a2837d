package kernel

import (
	"cmp"

	"github.com/dd0wney/graphmatrix/pkg/graphcore"
)

// UnaryOperator maps one value to another, e.g. negation.
type UnaryOperator[T any] func(T) T

// IndexUnaryOperator maps a (index, value) pair plus a fixed thunk to a
// result, e.g. "is value greater than thunk".
type IndexUnaryOperator[T any] func(index int, value T, thunk T) T

// BinaryOperator combines two values of the same domain into one; it
// doubles as the Accumulator type used throughout the apply/assign
// functions below (nil accumulator means Assignment: overwrite).
type BinaryOperator[T any] func(a, b T) T

// Assignment is the accumulator that discards the previous value and
// keeps only the newly computed one ("an assignment binary operator").
func Assignment[T any](_, b T) T { return b }

// Monoid is a binary operator with an identity element, used for
// element-wise addition and row/column reduction.
type Monoid[T any] struct {
	Identity T
	Op       BinaryOperator[T]
}

// LogicalOr is the bool monoid used for mask combination.
var LogicalOr = Monoid[bool]{Identity: false, Op: func(a, b bool) bool { return a || b }}

// Any is an alias for LogicalOr, named the way GraphBLAS names its
// "Any" monoid variant used for existence-style reductions.
var Any = LogicalOr

// GreaterThan builds an IndexUnaryOperator that reports whether a stored
// value exceeds a threshold ("is_value_greater_than"). zero/one give the
// operator's two possible results in T's own domain (e.g.
// uint8(0)/uint8(1)).
func GreaterThan[T cmp.Ordered](zero, one T) IndexUnaryOperator[T] {
	return func(_ int, value T, thunk T) T {
		if value > thunk {
			return one
		}
		return zero
	}
}

// ApplyUnaryOperatorToVector computes product<mask,accum> = op(arg), the
// shape of every apply-unary call.
func ApplyUnaryOperatorToVector[T any](product *SparseVector[T], mask *SparseVector[bool], accum BinaryOperator[T], op UnaryOperator[T], arg *SparseVector[T]) error {
	for _, i := range arg.Indices() {
		if mask != nil {
			if m, ok, _ := mask.GetElement(i); !ok || !m {
				continue
			}
		}
		val, _, err := arg.GetElement(i)
		if err != nil {
			return err
		}
		result := op(val)
		writeWithAccumulator(product, i, result, accum)
	}
	return nil
}

// ApplyIndexUnaryOperatorToVector computes product<mask,accum> =
// op(index, arg, thunk).
func ApplyIndexUnaryOperatorToVector[T any](product *SparseVector[T], mask *SparseVector[bool], accum BinaryOperator[T], op IndexUnaryOperator[T], arg *SparseVector[T], thunk T) error {
	for _, i := range arg.Indices() {
		if mask != nil {
			if m, ok, _ := mask.GetElement(i); !ok || !m {
				continue
			}
		}
		val, _, err := arg.GetElement(i)
		if err != nil {
			return err
		}
		result := op(i, val, thunk)
		writeWithAccumulator(product, i, result, accum)
	}
	return nil
}

// ApplyScalarBinaryOperatorToVector computes product<mask,accum> =
// op(arg, scalar) (scalarOnRight=true) or op(scalar, arg) otherwise.
func ApplyScalarBinaryOperatorToVector[T any](product *SparseVector[T], mask *SparseVector[bool], accum BinaryOperator[T], op BinaryOperator[T], arg *SparseVector[T], scalar T, scalarOnRight bool) error {
	for _, i := range arg.Indices() {
		if mask != nil {
			if m, ok, _ := mask.GetElement(i); !ok || !m {
				continue
			}
		}
		val, _, err := arg.GetElement(i)
		if err != nil {
			return err
		}
		var result T
		if scalarOnRight {
			result = op(val, scalar)
		} else {
			result = op(scalar, val)
		}
		writeWithAccumulator(product, i, result, accum)
	}
	return nil
}

func writeWithAccumulator[T any](product *SparseVector[T], i int, result T, accum BinaryOperator[T]) {
	if accum != nil {
		if old, ok, _ := product.GetElement(i); ok {
			result = accum(old, result)
		}
	}
	_ = product.SetElement(i, result)
}

// ApplyUnaryOperatorToMatrix computes product<mask,accum> = op(arg) over
// every stored cell of arg, the adjacency-matrix analogue of
// ApplyUnaryOperatorToVector.
func ApplyUnaryOperatorToMatrix[T any](product *SparseMatrix[T], mask *SparseMatrix[bool], accum BinaryOperator[T], op UnaryOperator[T], arg *SparseMatrix[T]) error {
	for _, e := range arg.Entries() {
		if mask != nil {
			if m, ok, _ := mask.GetElement(e.Row, e.Col); !ok || !m {
				continue
			}
		}
		writeMatrixWithAccumulator(product, e.Row, e.Col, op(e.Value), accum)
	}
	return nil
}

// ApplyIndexUnaryOperatorToMatrix computes product<mask,accum> =
// op(row*cols+col, arg, thunk).
func ApplyIndexUnaryOperatorToMatrix[T any](product *SparseMatrix[T], mask *SparseMatrix[bool], accum BinaryOperator[T], op IndexUnaryOperator[T], arg *SparseMatrix[T], thunk T) error {
	_, cols := arg.Size()
	for _, e := range arg.Entries() {
		if mask != nil {
			if m, ok, _ := mask.GetElement(e.Row, e.Col); !ok || !m {
				continue
			}
		}
		result := op(e.Row*cols+e.Col, e.Value, thunk)
		writeMatrixWithAccumulator(product, e.Row, e.Col, result, accum)
	}
	return nil
}

// ApplyScalarBinaryOperatorToMatrix computes product<mask,accum> =
// op(arg, scalar) (scalarOnRight=true) or op(scalar, arg) otherwise.
func ApplyScalarBinaryOperatorToMatrix[T any](product *SparseMatrix[T], mask *SparseMatrix[bool], accum BinaryOperator[T], op BinaryOperator[T], arg *SparseMatrix[T], scalar T, scalarOnRight bool) error {
	for _, e := range arg.Entries() {
		if mask != nil {
			if m, ok, _ := mask.GetElement(e.Row, e.Col); !ok || !m {
				continue
			}
		}
		var result T
		if scalarOnRight {
			result = op(e.Value, scalar)
		} else {
			result = op(scalar, e.Value)
		}
		writeMatrixWithAccumulator(product, e.Row, e.Col, result, accum)
	}
	return nil
}

func writeMatrixWithAccumulator[T any](product *SparseMatrix[T], row, col int, result T, accum BinaryOperator[T]) {
	if accum != nil {
		if old, ok, _ := product.GetElement(row, col); ok {
			result = accum(old, result)
		}
	}
	_ = product.SetElement(row, col, result)
}

// ElementWiseAddVectors returns a new vector holding a (monoid.Op) b over
// the union of stored indices; a and b are not modified.
func ElementWiseAddVectors[T any](a, b *SparseVector[T], monoid Monoid[T]) (*SparseVector[T], error) {
	if a.Length() != b.Length() {
		return nil, graphcore.NewLogicError(graphcore.DimensionMismatch, "vector lengths %d and %d differ", a.Length(), b.Length())
	}
	out := NewSparseVector[T](a.Length())
	seen := make(map[int]bool)
	for _, i := range a.Indices() {
		av, _, _ := a.GetElement(i)
		if bv, ok, _ := b.GetElement(i); ok {
			out.data[i] = monoid.Op(av, bv)
		} else {
			out.data[i] = av
		}
		seen[i] = true
	}
	for _, i := range b.Indices() {
		if seen[i] {
			continue
		}
		bv, _, _ := b.GetElement(i)
		out.data[i] = bv
	}
	return out, nil
}

// ReduceRowsWithMonoid reduces every row of m to a scalar, producing a
// vector of length rows.
func ReduceRowsWithMonoid[T any](m *SparseMatrix[T], monoid Monoid[T]) *SparseVector[T] {
	rows, _ := m.Size()
	out := NewSparseVector[T](rows)
	acc := make(map[int]T)
	for _, e := range m.Entries() {
		if cur, ok := acc[e.Row]; ok {
			acc[e.Row] = monoid.Op(cur, e.Value)
		} else {
			acc[e.Row] = e.Value
		}
	}
	for row, v := range acc {
		out.data[row] = v
	}
	return out
}

// ReduceColumnsWithMonoid reduces every column of m to a scalar, producing
// a vector of length cols.
func ReduceColumnsWithMonoid[T any](m *SparseMatrix[T], monoid Monoid[T]) *SparseVector[T] {
	_, cols := m.Size()
	out := NewSparseVector[T](cols)
	acc := make(map[int]T)
	for _, e := range m.Entries() {
		if cur, ok := acc[e.Col]; ok {
			acc[e.Col] = monoid.Op(cur, e.Value)
		} else {
			acc[e.Col] = e.Value
		}
	}
	for col, v := range acc {
		out.data[col] = v
	}
	return out
}

// InsertVectorIntoRow overwrites row with the contents of v under accum
// (nil means Assignment/overwrite, which is what vertex-deletion cascades
// use to blank a row).
func InsertVectorIntoRow[T any](m *SparseMatrix[T], row int, v *SparseVector[T], accum BinaryOperator[T]) error {
	if accum == nil {
		m.DropRow(row)
	}
	for _, i := range v.Indices() {
		val, _, _ := v.GetElement(i)
		if err := m.checkBounds(row, i); err != nil {
			return err
		}
		if accum != nil {
			if old, ok, _ := m.GetElement(row, i); ok {
				val = accum(old, val)
			}
		}
		m.data[coord{row, i}] = val
	}
	return nil
}

// InsertVectorIntoColumn overwrites column with the contents of v under
// accum (nil means Assignment/overwrite).
func InsertVectorIntoColumn[T any](m *SparseMatrix[T], col int, v *SparseVector[T], accum BinaryOperator[T]) error {
	if accum == nil {
		m.DropColumn(col)
	}
	for _, i := range v.Indices() {
		val, _, _ := v.GetElement(i)
		if err := m.checkBounds(i, col); err != nil {
			return err
		}
		if accum != nil {
			if old, ok, _ := m.GetElement(i, col); ok {
				val = accum(old, val)
			}
		}
		m.data[coord{i, col}] = val
	}
	return nil
}
