package kernel

// VectorReverter is the undo log for one SparseVector[T], mirroring
// SparseVectorStateReverter. Registrations are pushed in
// forward order; Restore replays them in reverse order, then applies the
// latched length, matching the original
// operators/in_memory_transaction/transaction/state_restorer/sparse_vector.rs.
type VectorReverter[T any] struct {
	lengthToRestore *int
	records         []vectorUndo[T]
	fullyDetermined bool
}

type vectorUndoKind uint8

const (
	vectorUndoEmpty vectorUndoKind = iota
	vectorUndoValue
	vectorUndoSnapshot
)

type vectorUndo[T any] struct {
	kind     vectorUndoKind
	index    int
	value    T
	snapshot *SparseVector[T]
}

// NewVectorReverter creates an empty reverter with no latched length.
func NewVectorReverter[T any]() *VectorReverter[T] {
	return &VectorReverter[T]{}
}

// NewVectorReverterWithLength creates a reverter that, absent any other
// registration, will resize its target back to length on restore.
func NewVectorReverterWithLength[T any](length int) *VectorReverter[T] {
	l := length
	return &VectorReverter[T]{lengthToRestore: &l}
}

// WithResetState returns a fresh reverter carrying forward only the
// latched length, the Go analogue of with_reset_state_to_restore: used
// when a transaction commits or reverts, to start the next undo window
// from the post-operation dimensions.
func (r *VectorReverter[T]) WithResetState(currentLength int) *VectorReverter[T] {
	return NewVectorReverterWithLength[T](currentLength)
}

// RegisterElementValue records that index previously held value.
func (r *VectorReverter[T]) RegisterElementValue(index int, value T) {
	if r.fullyDetermined {
		return
	}
	r.records = append(r.records, vectorUndo[T]{kind: vectorUndoValue, index: index, value: value})
}

// RegisterEmptyElement records that index was previously unset.
func (r *VectorReverter[T]) RegisterEmptyElement(index int) {
	if r.fullyDetermined {
		return
	}
	r.records = append(r.records, vectorUndo[T]{kind: vectorUndoEmpty, index: index})
}

// RegisterSnapshot records a full prior snapshot of the vector; once
// registered, further per-element registrations in the same transaction
// are skipped because the snapshot already covers them.
func (r *VectorReverter[T]) RegisterSnapshot(snapshot *SparseVector[T]) {
	if r.fullyDetermined {
		return
	}
	r.records = append(r.records, vectorUndo[T]{kind: vectorUndoSnapshot, snapshot: snapshot})
	r.fullyDetermined = true
}

// RegisterLength latches the length to restore to, if not already set by
// an earlier mutation in the same transaction.
func (r *VectorReverter[T]) RegisterLength(length int) {
	if r.lengthToRestore == nil {
		l := length
		r.lengthToRestore = &l
	}
}

// Restore applies every undo record in reverse order, then resizes to the
// latched length, returning target to the state it was in when this
// reverter was created.
func (r *VectorReverter[T]) Restore(target *SparseVector[T]) error {
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		switch rec.kind {
		case vectorUndoEmpty:
			if err := target.DropElement(rec.index); err != nil {
				return err
			}
		case vectorUndoValue:
			if err := target.SetElement(rec.index, rec.value); err != nil {
				return err
			}
		case vectorUndoSnapshot:
			target.Swap(rec.snapshot)
		}
	}
	if r.lengthToRestore != nil {
		if err := target.Resize(*r.lengthToRestore); err != nil {
			return err
		}
	}
	return nil
}

// MatrixReverter is the (row, column)-coordinate analogue of
// VectorReverter, mirroring SparseMatrixStateReverter.
type MatrixReverter[T any] struct {
	sizeToRestore *int
	records       []matrixUndo[T]
	fullyDetermined bool
}

type matrixUndo[T any] struct {
	kind     vectorUndoKind
	row, col int
	value    T
	snapshot *SparseMatrix[T]
}

func NewMatrixReverter[T any]() *MatrixReverter[T] {
	return &MatrixReverter[T]{}
}

func NewMatrixReverterWithSize[T any](size int) *MatrixReverter[T] {
	s := size
	return &MatrixReverter[T]{sizeToRestore: &s}
}

func (r *MatrixReverter[T]) WithResetState(currentSize int) *MatrixReverter[T] {
	return NewMatrixReverterWithSize[T](currentSize)
}

func (r *MatrixReverter[T]) RegisterElementValue(row, col int, value T) {
	if r.fullyDetermined {
		return
	}
	r.records = append(r.records, matrixUndo[T]{kind: vectorUndoValue, row: row, col: col, value: value})
}

func (r *MatrixReverter[T]) RegisterEmptyElement(row, col int) {
	if r.fullyDetermined {
		return
	}
	r.records = append(r.records, matrixUndo[T]{kind: vectorUndoEmpty, row: row, col: col})
}

func (r *MatrixReverter[T]) RegisterSnapshot(snapshot *SparseMatrix[T]) {
	if r.fullyDetermined {
		return
	}
	r.records = append(r.records, matrixUndo[T]{kind: vectorUndoSnapshot, snapshot: snapshot})
	r.fullyDetermined = true
}

func (r *MatrixReverter[T]) RegisterSize(size int) {
	if r.sizeToRestore == nil {
		s := size
		r.sizeToRestore = &s
	}
}

func (r *MatrixReverter[T]) Restore(target *SparseMatrix[T]) error {
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		switch rec.kind {
		case vectorUndoEmpty:
			if err := target.DropElement(rec.row, rec.col); err != nil {
				return err
			}
		case vectorUndoValue:
			if err := target.SetElement(rec.row, rec.col, rec.value); err != nil {
				return err
			}
		case vectorUndoSnapshot:
			target.Swap(rec.snapshot)
		}
	}
	if r.sizeToRestore != nil {
		if err := target.Resize(*r.sizeToRestore); err != nil {
			return err
		}
	}
	return nil
}
