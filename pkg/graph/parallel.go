package graph

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dd0wney/graphmatrix/pkg/indexing"
	"github.com/dd0wney/graphmatrix/pkg/vertexstore"
)

// MapMutAllValidVertexVectors applies fn to every currently valid vertex
// type's vector, in data-parallel fashion: internal iteration over vertex
// vectors may be executed concurrently as long as the supplied per-slot
// function is declared safe to invoke concurrently. The caller attests to
// that safety by handing fn to this function at all; it is not re-checked
// at runtime. The first error from any slot cancels the remaining slots
// and is returned.
func MapMutAllValidVertexVectors(ctx context.Context, g *Graph, fn func(t indexing.VertexTypeIndex, vec vertexstore.AnyVertexVector) error) error {
	types := g.vertices.ValidVertexTypes()
	wg, wgCtx := errgroup.WithContext(ctx)
	for _, t := range types {
		t := t
		wg.Go(func() error {
			select {
			case <-wgCtx.Done():
				return wgCtx.Err()
			default:
			}
			vec := g.vertices.VectorAt(t)
			if vec == nil {
				return nil
			}
			return fn(t, vec)
		})
	}
	return wg.Wait()
}
