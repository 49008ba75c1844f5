//go:build !purego && (amd64 || arm64)

package accel

import (
	"github.com/cwbudde/algo-vecmath"
)

// AddBlock computes dst[i] = a[i] + b[i].
// dst may be a or b itself but must not partially overlap either.
// Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("arith: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	if &dst[0] == &b[0] {
		vecmath.AddBlockInPlace(dst, a)
		return
	}
	copy(dst, a)
	vecmath.AddBlockInPlace(dst, b)
}

// MulBlock computes dst[i] = a[i] * b[i].
// Panics if lengths differ.
func MulBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("arith: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	vecmath.MulBlock(dst, a, b)
}

// MulScalarBlock computes dst[i] = src[i] * s. The reverse flag has no effect
// because multiplication is commutative.
// Panics if lengths differ.
func MulScalarBlock(dst, src []float64, s float64, _ bool) {
	if len(dst) != len(src) {
		panic("arith: slice length mismatch")
	}
	if len(dst) == 0 {
		return
	}
	vecmath.ScaleBlock(dst, src, s)
}
