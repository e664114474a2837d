// Package graphcore defines the closed error taxonomy shared by every
// package in the engine: LogicError, UserError, SystemError, OtherError.
// It generalizes a sentinel-error style to a small set of typed,
// sub-kinded errors, the way the original Rust implementation splits
// error/logic_error.rs, error/user_error.rs, error/system_error.rs and
// error/other_error.rs under one error/mod.rs aggregate.
package graphcore

import (
	"errors"
	"fmt"
)

// LogicErrorKind enumerates LogicError sub-kinds.
type LogicErrorKind uint8

const (
	IndexOutOfBounds LogicErrorKind = iota
	InvalidIndex
	InvalidKey
	KeyAlreadyExists
	EdgeTypeAlreadyExists
	EdgeTypeMustExist
	EdgeMustExist
	VertexMustExist
	DimensionMismatch
)

func (k LogicErrorKind) String() string {
	switch k {
	case IndexOutOfBounds:
		return "index out of bounds"
	case InvalidIndex:
		return "invalid index"
	case InvalidKey:
		return "invalid key"
	case KeyAlreadyExists:
		return "key already exists"
	case EdgeTypeAlreadyExists:
		return "edge type already exists"
	case EdgeTypeMustExist:
		return "edge type must exist"
	case EdgeMustExist:
		return "edge must exist"
	case VertexMustExist:
		return "vertex must exist"
	case DimensionMismatch:
		return "dimension mismatch"
	default:
		return "logic error"
	}
}

// LogicError is raised when a caller supplies an index or key that is out
// of range, freed, invalid for the requested partition, or already present.
type LogicError struct {
	Kind LogicErrorKind
	Msg  string
}

func (e *LogicError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// NewLogicError builds a LogicError of the given kind with a formatted
// message.
func NewLogicError(kind LogicErrorKind, format string, args ...any) *LogicError {
	return &LogicError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// UserErrorKind enumerates UserError sub-kinds, raised at the public
// boundary when a public operation is attempted on a private index (or
// vice versa), or the public API otherwise rejects a request that would be
// acceptable from a private/internal caller.
type UserErrorKind uint8

const (
	UserIndexOutOfBounds UserErrorKind = iota
	EdgeTypeDoesNotExist
	VertexAlreadyExists
)

func (k UserErrorKind) String() string {
	switch k {
	case UserIndexOutOfBounds:
		return "index out of bounds"
	case EdgeTypeDoesNotExist:
		return "edge type does not exist"
	case VertexAlreadyExists:
		return "vertex already exists"
	default:
		return "user error"
	}
}

// UserError is the same semantic class as LogicError, but raised at the
// public API boundary rather than from an internal/private-partition path.
type UserError struct {
	Kind UserErrorKind
	Msg  string
}

func (e *UserError) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func NewUserError(kind UserErrorKind, format string, args ...any) *UserError {
	return &UserError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// SystemErrorKind enumerates SystemError sub-kinds: resource exhaustion,
// kernel-level failures, poisoned state.
type SystemErrorKind uint8

const (
	CannotReserveMemory SystemErrorKind = iota
	PoisonedData
	KernelError
)

func (k SystemErrorKind) String() string {
	switch k {
	case CannotReserveMemory:
		return "cannot reserve memory"
	case PoisonedData:
		return "poisoned data"
	case KernelError:
		return "kernel error"
	default:
		return "system error"
	}
}

// SystemError signals resource exhaustion, a wrapped algebra-kernel
// failure, or detection of a previously poisoned graph.
type SystemError struct {
	Kind SystemErrorKind
	Msg  string
	Err  error
}

func (e *SystemError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *SystemError) Unwrap() error { return e.Err }

func NewSystemError(kind SystemErrorKind, format string, args ...any) *SystemError {
	return &SystemError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// WrapKernelError packages an error returned by the external algebra
// kernel into the taxonomy.
func WrapKernelError(err error) *SystemError {
	return &SystemError{Kind: KernelError, Msg: "algebra kernel", Err: err}
}

// OtherError wraps formatting/display failures that do not belong to any
// of the three structured kinds above.
type OtherError struct {
	Err error
}

func (e *OtherError) Error() string { return e.Err.Error() }
func (e *OtherError) Unwrap() error { return e.Err }

func NewOtherError(err error) *OtherError { return &OtherError{Err: err} }

// Compile-time checks that each taxonomy type implements error.
var (
	_ error = (*LogicError)(nil)
	_ error = (*UserError)(nil)
	_ error = (*SystemError)(nil)
	_ error = (*OtherError)(nil)
)

// IsLogicKind reports whether err is a *LogicError of the given kind.
func IsLogicKind(err error, kind LogicErrorKind) bool {
	var le *LogicError
	return errors.As(err, &le) && le.Kind == kind
}

// IsUserKind reports whether err is a *UserError of the given kind.
func IsUserKind(err error, kind UserErrorKind) bool {
	var ue *UserError
	return errors.As(err, &ue) && ue.Kind == kind
}

// IsSystemKind reports whether err is a *SystemError of the given kind.
func IsSystemKind(err error, kind SystemErrorKind) bool {
	var se *SystemError
	return errors.As(err, &se) && se.Kind == kind
}
