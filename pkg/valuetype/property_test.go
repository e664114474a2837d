package valuetype

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCoercionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("same-type coercion is the identity", prop.ForAll(
		func(x int32) bool {
			return As[int32](Of(x)) == x
		},
		gen.Int32(),
	))

	properties.Property("widening an unsigned value then narrowing back recovers it", prop.ForAll(
		func(x uint8) bool {
			widened := As[uint64](Of(x))
			return As[uint8](Of(widened)) == x
		},
		gen.UInt8(),
	))

	properties.Property("narrowing a signed value into int8 always saturates within range", prop.ForAll(
		func(x int32) bool {
			got := As[int8](Of(x))
			return got >= -128 && got <= 127
		},
		gen.Int32(),
	))

	properties.Property("bool coercion reports false only for the zero value", prop.ForAll(
		func(x int64) bool {
			got := As[bool](Of(x))
			return got == (x != 0)
		},
		gen.Int64(),
	))

	properties.Property("every scalar value reports the ID matching its own type", prop.ForAll(
		func(x float64) bool {
			return Of(x).ID() == Float64
		},
		gen.Float64(),
	))

	properties.TestingRun(t)
}
