package testutil

import (
	"math"
	"math/rand"
)

// RandomVector returns n values uniformly drawn from [-scale, scale) with a
// fixed seed.
func RandomVector(seed int64, scale float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * scale
	}
	return out
}

// NonZeroVector is RandomVector with values pushed away from zero by at
// least 0.5, for divisors.
func NonZeroVector(seed int64, scale float64, n int) []float64 {
	out := RandomVector(seed, scale, n)
	for i, v := range out {
		out[i] = v + math.Copysign(0.5, v)
	}
	return out
}

// Ramp returns start, start+step, ... with n elements.
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// SpecialValues returns operands that stress IEEE 754 edge cases.
func SpecialValues() []float64 {
	return []float64{
		0,
		math.Copysign(0, -1),
		1,
		-1,
		math.SmallestNonzeroFloat64,
		math.MaxFloat64,
		-math.MaxFloat64,
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
	}
}
