package indexing

import "testing"

func TestQueueFIFOOrder(t *testing.T) {
	var q Queue[int]
	q.PushBack(1)
	q.PushBack(2)
	q.PushBack(3)
	for _, want := range []int{1, 2, 3} {
		got, ok := q.PopFront()
		if !ok || got != want {
			t.Fatalf("expected %d, got %v (ok=%v)", want, got, ok)
		}
	}
	if !q.IsEmpty() {
		t.Fatal("expected queue empty")
	}
}

func TestIndexerBasicLifecycle(t *testing.T) {
	idx := NewIndexerWithCapacity(4)

	a := idx.NewPublicIndex()
	b := idx.NewPrivateIndex()

	if !idx.IsValidPublicIndex(a.Index) {
		t.Fatal("expected a to be a valid public index")
	}
	if !idx.IsValidPrivateIndex(b.Index) {
		t.Fatal("expected b to be a valid private index")
	}
	if idx.NumberOfIndexedElements() != 2 {
		t.Fatalf("expected 2 indexed elements, got %d", idx.NumberOfIndexedElements())
	}

	if err := idx.FreePublicIndex(a.Index); err != nil {
		t.Fatal(err)
	}
	if idx.IsValidIndex(a.Index) {
		t.Fatal("expected a to no longer be valid after free")
	}
	if idx.NumberOfIndexedElements() != 1 {
		t.Fatalf("expected 1 indexed element after free, got %d", idx.NumberOfIndexedElements())
	}
}

func TestIndexerReusesFreedIndices(t *testing.T) {
	idx := NewIndexerWithCapacity(4)
	a := idx.NewPublicIndex()
	if err := idx.FreePublicIndex(a.Index); err != nil {
		t.Fatal(err)
	}
	b := idx.NewPublicIndex()
	if b.Index != a.Index {
		t.Fatalf("expected freed index %d to be reused, got %d", a.Index, b.Index)
	}
}

func TestIndexerGrowsCapacityOnExhaustion(t *testing.T) {
	idx := NewIndexerWithCapacity(2)
	first := idx.NewPublicIndex()
	second := idx.NewPublicIndex()
	if first.NewIndexCapacity != nil || second.NewIndexCapacity != nil {
		t.Fatal("capacity should not have grown yet")
	}

	third := idx.NewPublicIndex()
	if third.NewIndexCapacity == nil {
		t.Fatal("expected capacity growth signaled on exhaustion")
	}
	if idx.Capacity() <= 2 {
		t.Fatalf("expected capacity to have grown beyond 2, got %d", idx.Capacity())
	}
	if !idx.IsValidPublicIndex(third.Index) {
		t.Fatal("expected newly grown index to be valid")
	}
}

func TestIndexerFreeingInvalidIndexFails(t *testing.T) {
	idx := NewIndexerWithCapacity(4)
	if err := idx.FreePublicIndex(Index(0)); err == nil {
		t.Fatal("expected error freeing never-allocated index")
	}
	a := idx.NewPublicIndex()
	if err := idx.FreePrivateIndex(a.Index); err == nil {
		t.Fatal("expected error freeing a public index as private")
	}
}

func TestIndexerMinimumCapacityFloor(t *testing.T) {
	idx := NewIndexerWithCapacity(0)
	if idx.Capacity() < MinimumCapacity {
		t.Fatalf("expected capacity floor of %d, got %d", MinimumCapacity, idx.Capacity())
	}
}

func TestIndexerStateRestorerUndoesAllocationsAndFrees(t *testing.T) {
	idx := NewIndexerWithCapacity(2)
	a := idx.NewPublicIndex()

	restorer := NewIndexerStateRestorer(idx)

	b := restorer.NewPublicIndex(idx)
	c := restorer.NewPrivateIndex(idx)
	if err := restorer.FreePublicIndex(idx, a.Index); err != nil {
		t.Fatal(err)
	}

	if idx.IsValidIndex(a.Index) {
		t.Fatal("expected a freed")
	}
	if !idx.IsValidPublicIndex(b.Index) || !idx.IsValidPrivateIndex(c.Index) {
		t.Fatal("expected b and c allocated")
	}

	if err := restorer.Restore(idx); err != nil {
		t.Fatal(err)
	}

	if !idx.IsValidPublicIndex(a.Index) {
		t.Fatal("expected a restored to valid public")
	}
	if idx.IsValidIndex(b.Index) {
		t.Fatal("expected b restored to invalid")
	}
	if idx.IsValidIndex(c.Index) {
		t.Fatal("expected c restored to invalid")
	}
	if idx.NumberOfIndexedElements() != 1 {
		t.Fatalf("expected exactly 1 valid index after restore, got %d", idx.NumberOfIndexedElements())
	}
}

func TestIndexerStateRestorerUndoesCapacityGrowth(t *testing.T) {
	idx := NewIndexerWithCapacity(1)
	_ = idx.NewPublicIndex()
	restorer := NewIndexerStateRestorer(idx)

	before := idx.Capacity()
	grown := restorer.NewPublicIndex(idx)
	if grown.NewIndexCapacity == nil {
		t.Fatal("expected allocation on a full indexer to grow capacity")
	}
	if idx.Capacity() == before {
		t.Fatal("expected capacity to have grown")
	}

	if err := restorer.Restore(idx); err != nil {
		t.Fatal(err)
	}
	if idx.Capacity() != before {
		t.Fatalf("expected capacity restored to %d, got %d", before, idx.Capacity())
	}
}

func TestIndexerValidIndicesAreAscending(t *testing.T) {
	idx := NewIndexerWithCapacity(8)
	_ = idx.NewPublicIndex()
	_ = idx.NewPrivateIndex()
	_ = idx.NewPublicIndex()

	valid := idx.ValidIndices()
	for i := 1; i < len(valid); i++ {
		if valid[i-1] >= valid[i] {
			t.Fatalf("expected ascending order, got %v", valid)
		}
	}
	if len(valid) != 3 {
		t.Fatalf("expected 3 valid indices, got %d", len(valid))
	}
}
