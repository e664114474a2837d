package graph

import (
	"testing"

	"github.com/dd0wney/graphmatrix/pkg/kernel"
	"github.com/dd0wney/graphmatrix/pkg/vertexstore"
)

func TestApplyIndexUnaryOperatorToVertexVectorWritesBackInPlace(t *testing.T) {
	g := New()
	restorer := vertexstore.NewVertexStoreStateRestorer(g.Vertices())
	tu8 := vertexstore.NewVertexType[uint8](g.Vertices(), restorer)

	v1, _, err := g.Vertices().NewVertexIndex(restorer)
	if err != nil {
		t.Fatal(err)
	}
	v2, _, err := g.Vertices().NewVertexIndex(restorer)
	if err != nil {
		t.Fatal(err)
	}

	if err := vertexstore.SetVertexValue[uint8](g.Vertices(), tu8, v1, 0); err != nil {
		t.Fatal(err)
	}
	if err := vertexstore.SetVertexValue[uint8](g.Vertices(), tu8, v2, 5); err != nil {
		t.Fatal(err)
	}

	op := kernel.GreaterThan[uint8](0, 1)
	if err := ApplyIndexUnaryOperatorToVertexVector[uint8](g, tu8, nil, kernel.Assignment[uint8], op, tu8, 1); err != nil {
		t.Fatal(err)
	}

	got1, _, _ := vertexstore.GetVertexValue[uint8](g.Vertices(), tu8, v1)
	got2, _, _ := vertexstore.GetVertexValue[uint8](g.Vertices(), tu8, v2)
	if got1 != 0 {
		t.Fatalf("expected v1 (value 0) to stay below threshold, got %d", got1)
	}
	if got2 != 1 {
		t.Fatalf("expected v2 (value 5) to flip to 1, got %d", got2)
	}
}
