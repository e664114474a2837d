package vertexstore

import "testing"

func TestVertexTypeAndValueLifecycle(t *testing.T) {
	s := NewVertexStore()
	restorer := NewVertexStoreStateRestorer(s)

	tu8 := NewVertexType[uint8](s, restorer)
	v1, _, err := s.NewVertexIndex(restorer)
	if err != nil {
		t.Fatal(err)
	}
	v2, _, err := s.NewVertexIndex(restorer)
	if err != nil {
		t.Fatal(err)
	}

	if err := SetVertexValue[uint8](s, tu8, v1, 7); err != nil {
		t.Fatal(err)
	}
	if err := SetVertexValue[uint8](s, tu8, v2, 9); err != nil {
		t.Fatal(err)
	}

	got, ok, err := GetVertexValue[uint8](s, tu8, v1)
	if err != nil || !ok || got != 7 {
		t.Fatalf("expected 7, got %v ok=%v err=%v", got, ok, err)
	}
	gotWide, ok, err := GetVertexValue[uint16](s, tu8, v1)
	if err != nil || !ok || gotWide != 7 {
		t.Fatalf("expected widened 7, got %v ok=%v err=%v", gotWide, ok, err)
	}
}

func TestVertexStoreTransactionalRevert(t *testing.T) {
	s := NewVertexStore()
	restorer := NewVertexStoreStateRestorer(s)
	tu8 := NewVertexType[uint8](s, restorer)
	v1, _, _ := s.NewVertexIndex(restorer)
	if err := SetVertexValue[uint8](s, tu8, v1, 7); err != nil {
		t.Fatal(err)
	}
	restorer = s.Commit(restorer)

	if err := SetVertexValue[uint8](s, tu8, v1, 42); err != nil {
		t.Fatal(err)
	}
	got, _, _ := GetVertexValue[uint8](s, tu8, v1)
	if got != 42 {
		t.Fatalf("expected 42 inside transaction, got %d", got)
	}

	if err := restorer.Restore(s); err != nil {
		t.Fatal(err)
	}
	got, _, _ = GetVertexValue[uint8](s, tu8, v1)
	if got != 7 {
		t.Fatalf("expected reverted to 7, got %d", got)
	}
}

func TestDropVertexIndexClearsAllVectors(t *testing.T) {
	s := NewVertexStore()
	restorer := NewVertexStoreStateRestorer(s)
	tu8 := NewVertexType[uint8](s, restorer)
	v1, _, _ := s.NewVertexIndex(restorer)
	_ = SetVertexValue[uint8](s, tu8, v1, 5)

	if err := s.DropVertexIndex(restorer, v1); err != nil {
		t.Fatal(err)
	}
	if n := s.VectorAt(tu8).NumberOfStoredElements(); n != 0 {
		t.Fatalf("expected vector cleared after drop, %d elements stored", n)
	}
	_, ok, err := GetVertexValue[uint8](s, tu8, v1)
	if err == nil || ok {
		t.Fatalf("expected error reading a dropped vertex index, got ok=%v err=%v", ok, err)
	}
}
