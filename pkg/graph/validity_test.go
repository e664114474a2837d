package graph

import (
	"testing"

	"github.com/dd0wney/graphmatrix/pkg/graphcore"
	"github.com/dd0wney/graphmatrix/pkg/vertexstore"
)

func TestTryPublicVertexIndexValidityRejectsPrivateIndices(t *testing.T) {
	g := New()
	restorer := vertexstore.NewVertexStoreStateRestorer(g.Vertices())

	pub, _, err := g.Vertices().NewVertexIndex(restorer)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.TryPublicVertexIndexValidity(pub); err != nil {
		t.Fatalf("expected public index to pass the public check, got %v", err)
	}

	priv, _, err := g.Vertices().NewPrivateVertexIndex(restorer)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.TryVertexIndexValidity(priv); err != nil {
		t.Fatalf("expected private index to pass the partition-blind check, got %v", err)
	}
	if err := g.TryPublicVertexIndexValidity(priv); !graphcore.IsUserKind(err, graphcore.UserIndexOutOfBounds) {
		t.Fatalf("expected UserError(UserIndexOutOfBounds) for a private index, got %v", err)
	}
}
