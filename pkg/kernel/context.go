// Package kernel is the external GraphBLAS-style sparse linear algebra
// provider the engine core depends on. Everything here is a collaborator
// contract plus a reference in-memory
// implementation: sparse vectors and matrices, monoids, operator
// application, and the generic undo logs (VectorReverter/MatrixReverter)
// that back the transaction layer's per-slot state restorers.
package kernel

import "github.com/google/uuid"

// Context is the process-wide handle shared by every sparse vector and
// matrix created under it. It carries a
// stable identity so that Graphs built over distinct contexts are
// distinguishable in logs; the reference kernel otherwise needs no other
// shared state, since allocation happens in plain Go memory.
type Context struct {
	id uuid.UUID
}

// NewContext creates a fresh algebra context. Multiple Graphs may share one
// Context, or each hold a context of its own.
func NewContext() *Context {
	return &Context{id: uuid.New()}
}

// ID returns the context's log-correlation identity.
func (c *Context) ID() uuid.UUID { return c.id }
