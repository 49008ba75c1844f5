// Package generic provides pure Go block kernels. Every element goes through
// op.Binary or op.Unary, so these kernels define the reference results.
package generic

import (
	"github.com/cwbudde/algo-arith/arith/internal/arch/registry"
	"github.com/cwbudde/algo-arith/op"
)

// BinaryBlock returns a kernel computing dst[i] = op.Binary(a[i], b[i], c).
// The kernel panics if the slice lengths differ.
func BinaryBlock(c op.Code) registry.BinaryBlockFn {
	return func(dst, a, b []float64) {
		if len(a) != len(b) || len(dst) != len(a) {
			panic("arith: slice length mismatch")
		}
		for i := range dst {
			dst[i] = op.Binary(a[i], b[i], c)
		}
	}
}

// ScalarBlock returns a kernel computing dst[i] = op.Binary(src[i], s, c),
// or op.Binary(s, src[i], c) when reverse is set.
// The kernel panics if the slice lengths differ.
func ScalarBlock(c op.Code) registry.ScalarBlockFn {
	return func(dst, src []float64, s float64, reverse bool) {
		if len(dst) != len(src) {
			panic("arith: slice length mismatch")
		}
		if reverse {
			for i := range dst {
				dst[i] = op.Binary(s, src[i], c)
			}
			return
		}
		for i := range dst {
			dst[i] = op.Binary(src[i], s, c)
		}
	}
}

// UnaryBlock returns a kernel computing dst[i] = op.Unary(src[i], c).
// The kernel panics if the slice lengths differ.
func UnaryBlock(c op.Code) registry.UnaryBlockFn {
	return func(dst, src []float64) {
		if len(dst) != len(src) {
			panic("arith: slice length mismatch")
		}
		for i := range dst {
			dst[i] = op.Unary(src[i], c)
		}
	}
}
