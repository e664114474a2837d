package edgestore

import "testing"

func TestEdgeLifecycleAndTranspose(t *testing.T) {
	s := NewEdgeStore()
	restorer := NewEdgeStoreStateRestorer(s)

	et := NewEdgeType[uint8](s, restorer, 4)
	if err := SetEdgeValue[uint8](s, et, 0, 1, 3); err != nil {
		t.Fatal(err)
	}
	if !s.IsEdge(et, 0, 1) {
		t.Fatal("expected edge (0,1) to exist")
	}

	tr, err := s.TryTransposedAdjacencyMatrix(et)
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := tr.GetValue(1, 0)
	if err != nil || !ok {
		t.Fatalf("expected transposed (1,0) to exist, got ok=%v err=%v", ok, err)
	}
	_ = v

	if err := s.DeleteEdge(et, 0, 1); err != nil {
		t.Fatal(err)
	}
	if s.IsEdge(et, 0, 1) {
		t.Fatal("expected edge (0,1) deleted")
	}
}

func TestDeleteVertexConnectionsClearsRowAndColumn(t *testing.T) {
	s := NewEdgeStore()
	restorer := NewEdgeStoreStateRestorer(s)
	et := NewEdgeType[int](s, restorer, 3)

	_ = SetEdgeValue[int](s, et, 0, 1, 1)
	_ = SetEdgeValue[int](s, et, 1, 0, 2)
	_ = SetEdgeValue[int](s, et, 1, 2, 3)

	if err := s.DeleteVertexConnections(1); err != nil {
		t.Fatal(err)
	}

	mat := s.MatrixAt(et)
	if mat.NumberOfStoredElements() != 0 {
		t.Fatalf("expected all edges touching vertex 1 removed, got %d remaining", mat.NumberOfStoredElements())
	}
}

func TestEdgeStoreTransactionalRevert(t *testing.T) {
	s := NewEdgeStore()
	restorer := NewEdgeStoreStateRestorer(s)
	et := NewEdgeType[int](s, restorer, 3)
	_ = SetEdgeValue[int](s, et, 0, 1, 1)
	restorer = s.Commit(restorer)

	_ = SetEdgeValue[int](s, et, 0, 1, 99)
	_ = SetEdgeValue[int](s, et, 1, 2, 5)

	if err := restorer.Restore(s); err != nil {
		t.Fatal(err)
	}

	v, ok, _ := GetEdgeValue[int](s, et, 0, 1)
	if !ok || v != 1 {
		t.Fatalf("expected (0,1) reverted to 1, got %v ok=%v", v, ok)
	}
	if s.IsEdge(et, 1, 2) {
		t.Fatal("expected (1,2) reverted to absent")
	}
}
