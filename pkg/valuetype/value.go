package valuetype

import "math"

// Value is an untyped tagged scalar. It is the currency exchanged at store
// boundaries whenever a caller's requested type differs from a slot's
// physical storage type; it is never the physical representation itself
// (VertexVector[T]/AdjacencyMatrix[T] store native T, not Value).
type Value struct {
	id ID
	b  bool
	i  int64
	u  uint64
	f  float64
}

// ID reports which member of the value-type family this Value was
// constructed from.
func (v Value) ID() ID { return v.id }

// Of packages a native scalar into its tagged Value form.
func Of[T Scalar](v T) Value {
	id := IDFor[T]()
	switch x := any(v).(type) {
	case bool:
		return Value{id: id, b: x}
	case int8:
		return Value{id: id, i: int64(x)}
	case int16:
		return Value{id: id, i: int64(x)}
	case int32:
		return Value{id: id, i: int64(x)}
	case int64:
		return Value{id: id, i: x}
	case int:
		return Value{id: id, i: int64(x)}
	case uint8:
		return Value{id: id, u: uint64(x)}
	case uint16:
		return Value{id: id, u: uint64(x)}
	case uint32:
		return Value{id: id, u: uint64(x)}
	case uint64:
		return Value{id: id, u: x}
	case uint:
		return Value{id: id, u: uint64(x)}
	case float32:
		return Value{id: id, f: float64(x)}
	case float64:
		return Value{id: id, f: x}
	default:
		panic("valuetype: Of called with unsupported scalar type")
	}
}

// As coerces a Value into a requested scalar type, widening or narrowing
// (with saturation on overflow, truncation on float-to-int) the way the
// underlying sparse algebra kernel is contracted to: the core never
// reinterprets bits, it only repacks the decimal magnitude.
func As[T Scalar](v Value) T {
	target := IDFor[T]()

	var out T
	switch target {
	case Bool:
		out = any(asBool(v)).(T)
	case Int8, Int16, Int32, Int64, Isize:
		out = fromInt64[T](asInt64(v), target)
	case Uint8, Uint16, Uint32, Uint64, Usize:
		out = fromUint64[T](asUint64(v), target)
	case Float32, Float64:
		out = fromFloat64[T](asFloat64(v), target)
	}
	return out
}

func asBool(v Value) bool {
	switch v.id {
	case Bool:
		return v.b
	case Float32, Float64:
		return v.f != 0
	case Uint8, Uint16, Uint32, Uint64, Usize:
		return v.u != 0
	default:
		return v.i != 0
	}
}

func asInt64(v Value) int64 {
	switch v.id {
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case Float32, Float64:
		return int64(v.f)
	case Uint8, Uint16, Uint32, Uint64, Usize:
		if v.u > math.MaxInt64 {
			return math.MaxInt64
		}
		return int64(v.u)
	default:
		return v.i
	}
}

func asUint64(v Value) uint64 {
	switch v.id {
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case Float32, Float64:
		if v.f < 0 {
			return 0
		}
		return uint64(v.f)
	case Uint8, Uint16, Uint32, Uint64, Usize:
		return v.u
	default:
		if v.i < 0 {
			return 0
		}
		return uint64(v.i)
	}
}

func asFloat64(v Value) float64 {
	switch v.id {
	case Bool:
		if v.b {
			return 1
		}
		return 0
	case Float32, Float64:
		return v.f
	case Uint8, Uint16, Uint32, Uint64, Usize:
		return float64(v.u)
	default:
		return float64(v.i)
	}
}

// saturate clamps a signed magnitude into the closed range of the target
// narrower integer type.
func saturate(x int64, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func saturateU(x uint64, hi uint64) uint64 {
	if x > hi {
		return hi
	}
	return x
}

func fromInt64[T Scalar](x int64, target ID) T {
	switch target {
	case Int8:
		return any(int8(saturate(x, math.MinInt8, math.MaxInt8))).(T)
	case Int16:
		return any(int16(saturate(x, math.MinInt16, math.MaxInt16))).(T)
	case Int32:
		return any(int32(saturate(x, math.MinInt32, math.MaxInt32))).(T)
	case Int64:
		return any(x).(T)
	case Isize:
		return any(int(x)).(T)
	default:
		var zero T
		return zero
	}
}

func fromUint64[T Scalar](x uint64, target ID) T {
	switch target {
	case Uint8:
		return any(uint8(saturateU(x, math.MaxUint8))).(T)
	case Uint16:
		return any(uint16(saturateU(x, math.MaxUint16))).(T)
	case Uint32:
		return any(uint32(saturateU(x, math.MaxUint32))).(T)
	case Uint64:
		return any(x).(T)
	case Usize:
		return any(uint(x)).(T)
	default:
		var zero T
		return zero
	}
}

func fromFloat64[T Scalar](x float64, target ID) T {
	switch target {
	case Float32:
		return any(float32(x)).(T)
	case Float64:
		return any(x).(T)
	default:
		var zero T
		return zero
	}
}
