package kernel

import "testing"

func TestApplyIndexUnaryGreaterThan(t *testing.T) {
	arg := NewSparseVector[uint8](4)
	_ = arg.SetElement(0, 3)
	_ = arg.SetElement(2, 9)

	product := NewSparseVector[uint8](4)
	op := GreaterThan[uint8](0, 1)

	if err := ApplyIndexUnaryOperatorToVector(product, nil, Assignment[uint8], op, arg, 5); err != nil {
		t.Fatal(err)
	}

	v, ok, _ := product.GetElement(0)
	if !ok || v != 0 {
		t.Fatalf("expected 3 > 5 = false(0), got %v, %v", v, ok)
	}
	v, ok, _ = product.GetElement(2)
	if !ok || v != 1 {
		t.Fatalf("expected 9 > 5 = true(1), got %v, %v", v, ok)
	}
}

func TestApplyUnaryOperatorWithMask(t *testing.T) {
	arg := NewSparseVector[int](3)
	_ = arg.SetElement(0, 10)
	_ = arg.SetElement(1, 20)

	mask := NewSparseVector[bool](3)
	_ = mask.SetElement(1, true)

	product := NewSparseVector[int](3)
	negate := func(v int) int { return -v }

	if err := ApplyUnaryOperatorToVector(product, mask, Assignment[int], negate, arg); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := product.GetElement(0); ok {
		t.Fatal("index 0 should be masked out")
	}
	v, ok, _ := product.GetElement(1)
	if !ok || v != -20 {
		t.Fatalf("expected -20 at index 1, got %v, %v", v, ok)
	}
}

func TestElementWiseAddVectorsDimensionMismatch(t *testing.T) {
	a := NewSparseVector[int](3)
	b := NewSparseVector[int](4)
	sum := Monoid[int]{Op: func(x, y int) int { return x + y }}
	if _, err := ElementWiseAddVectors(a, b, sum); err == nil {
		t.Fatal("expected dimension mismatch error")
	}
}
