package valuetype

import "testing"

// TestCoercionRoundTrip checks that widening then narrowing a value back to
// its original type is lossless.
func TestCoercionRoundTrip(t *testing.T) {
	x := uint8(7)
	v := Of(x)

	asU16 := As[uint16](v)
	if asU16 != 7 {
		t.Fatalf("expected widen to u16 = 7, got %d", asU16)
	}

	back := As[uint8](Of(asU16))
	if back != x {
		t.Fatalf("round trip u8 -> u16 -> u8 changed value: got %d, want %d", back, x)
	}
}

func TestCoercionSaturatesOnNarrowing(t *testing.T) {
	v := Of(int32(1000))
	got := As[int8](v)
	if got != 127 {
		t.Fatalf("expected saturation to int8 max 127, got %d", got)
	}

	v = Of(int32(-1000))
	got = As[int8](v)
	if got != -128 {
		t.Fatalf("expected saturation to int8 min -128, got %d", got)
	}
}

func TestCoercionBoolFromNumeric(t *testing.T) {
	if As[bool](Of(uint8(0))) != false {
		t.Fatal("expected 0 to coerce to false")
	}
	if As[bool](Of(uint8(9))) != true {
		t.Fatal("expected nonzero to coerce to true")
	}
}

func TestIDStringIsStable(t *testing.T) {
	cases := []struct {
		id   ID
		want string
	}{
		{Bool, "bool"}, {Int8, "i8"}, {Uint64, "u64"}, {Float32, "f32"},
	}
	for _, c := range cases {
		if got := c.id.String(); got != c.want {
			t.Errorf("ID(%d).String() = %q, want %q", c.id, got, c.want)
		}
	}
}
