package kernel

import "testing"

func TestSparseVectorBasics(t *testing.T) {
	v := NewSparseVector[uint8](10)
	if err := v.SetElement(3, 7); err != nil {
		t.Fatal(err)
	}
	got, ok, err := v.GetElement(3)
	if err != nil || !ok || got != 7 {
		t.Fatalf("GetElement(3) = %v, %v, %v; want 7, true, nil", got, ok, err)
	}
	if v.NumberOfStoredElements() != 1 {
		t.Fatalf("expected 1 stored element, got %d", v.NumberOfStoredElements())
	}
	if err := v.DropElement(3); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := v.GetElement(3); ok {
		t.Fatal("expected element to be dropped")
	}
}

func TestSparseVectorResizeDropsOutOfBounds(t *testing.T) {
	v := NewSparseVector[int](5)
	_ = v.SetElement(4, 99)
	if err := v.Resize(2); err != nil {
		t.Fatal(err)
	}
	if v.Length() != 2 {
		t.Fatalf("expected length 2, got %d", v.Length())
	}
	if v.NumberOfStoredElements() != 0 {
		t.Fatal("expected element beyond new length to be dropped")
	}
}

func TestSparseVectorOutOfBoundsErrors(t *testing.T) {
	v := NewSparseVector[int](3)
	if err := v.SetElement(5, 1); err == nil {
		t.Fatal("expected out of bounds error")
	}
}

// TestRestoreSparseVector reproduces the original Rust reference test
// restore_sparse_vector (original_source sparse_vector.rs), in Go form.
func TestRestoreSparseVector(t *testing.T) {
	vector := NewSparseVector[uint16](10)
	_ = vector.SetElement(1, 1)
	_ = vector.SetElement(4, 4)
	_ = vector.SetElement(5, 5)

	reverter := NewVectorReverterWithLength[uint16](10)

	_ = vector.DropElement(1)
	reverter.RegisterElementValue(1, 1)

	_ = vector.SetElement(0, 0)
	reverter.RegisterEmptyElement(0)

	_ = vector.SetElement(0, 10)
	reverter.RegisterElementValue(0, 10)

	_ = vector.SetElement(4, 40)
	reverter.RegisterElementValue(4, 4)

	reverter.RegisterSnapshot(vector.Clone())
	_ = vector.Resize(4)

	_ = vector.DropElement(5)
	reverter.RegisterElementValue(5, 5)

	if err := reverter.Restore(vector); err != nil {
		t.Fatal(err)
	}

	if vector.Length() != 10 {
		t.Fatalf("expected restored length 10, got %d", vector.Length())
	}
	if _, ok, _ := vector.GetElement(0); ok {
		t.Fatal("expected element 0 to be empty after restore")
	}
	if v, ok, _ := vector.GetElement(1); !ok || v != 1 {
		t.Fatalf("expected element 1 = 1, got %v, %v", v, ok)
	}
	if v, ok, _ := vector.GetElement(4); !ok || v != 4 {
		t.Fatalf("expected element 4 = 4, got %v, %v", v, ok)
	}
	if vector.NumberOfStoredElements() != 3 {
		t.Fatalf("expected 3 stored elements, got %d", vector.NumberOfStoredElements())
	}
}
