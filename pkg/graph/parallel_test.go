package graph

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/dd0wney/graphmatrix/pkg/indexing"
	"github.com/dd0wney/graphmatrix/pkg/vertexstore"
)

var errFixture = errors.New("fixture error")

func TestMapMutAllValidVertexVectorsVisitsEveryType(t *testing.T) {
	g := New()
	restorer := vertexstore.NewVertexStoreStateRestorer(g.Vertices())
	vertexstore.NewVertexType[uint8](g.Vertices(), restorer)
	vertexstore.NewVertexType[int32](g.Vertices(), restorer)
	vertexstore.NewVertexType[float64](g.Vertices(), restorer)

	var visited int64
	err := MapMutAllValidVertexVectors(context.Background(), g, func(_ indexing.VertexTypeIndex, _ vertexstore.AnyVertexVector) error {
		atomic.AddInt64(&visited, 1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if visited != 3 {
		t.Fatalf("expected 3 vertex types visited, got %d", visited)
	}
}

func TestMapMutAllValidVertexVectorsPropagatesError(t *testing.T) {
	g := New()
	restorer := vertexstore.NewVertexStoreStateRestorer(g.Vertices())
	vertexstore.NewVertexType[uint8](g.Vertices(), restorer)

	boom := errFixture
	err := MapMutAllValidVertexVectors(context.Background(), g, func(_ indexing.VertexTypeIndex, _ vertexstore.AnyVertexVector) error {
		return boom
	})
	if err != boom {
		t.Fatalf("expected propagated error %v, got %v", boom, err)
	}
}
