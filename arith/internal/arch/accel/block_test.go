//go:build !purego && (amd64 || arm64)

package accel

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-arith/arith/internal/arch/generic"
	"github.com/cwbudde/algo-arith/op"
)

var sizes = []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100, 1000}

func operands(n int) (a, b []float64) {
	a = make([]float64, n)
	b = make([]float64, n)
	for i := range a {
		a[i] = math.Sin(float64(i)*0.37) * 1e3
		b[i] = math.Cos(float64(i)*0.11)*0.25 - 0.1
	}
	return a, b
}

func sameBits(x, y float64) bool {
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	return math.Float64bits(x) == math.Float64bits(y)
}

func TestAddBlockMatchesGeneric(t *testing.T) {
	ref := generic.BinaryBlock(op.Add)
	for _, n := range sizes {
		t.Run("n="+strconv.Itoa(n), func(t *testing.T) {
			a, b := operands(n)
			got := make([]float64, n)
			want := make([]float64, n)

			AddBlock(got, a, b)
			ref(want, a, b)

			for i := range got {
				if !sameBits(got[i], want[i]) {
					t.Fatalf("AddBlock[%d] = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestMulBlockMatchesGeneric(t *testing.T) {
	ref := generic.BinaryBlock(op.Multiply)
	for _, n := range sizes {
		t.Run("n="+strconv.Itoa(n), func(t *testing.T) {
			a, b := operands(n)
			got := make([]float64, n)
			want := make([]float64, n)

			MulBlock(got, a, b)
			ref(want, a, b)

			for i := range got {
				if !sameBits(got[i], want[i]) {
					t.Fatalf("MulBlock[%d] = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestMulScalarBlockMatchesGeneric(t *testing.T) {
	ref := generic.ScalarBlock(op.Multiply)
	for _, reverse := range []bool{false, true} {
		for _, n := range sizes {
			a, _ := operands(n)
			got := make([]float64, n)
			want := make([]float64, n)

			MulScalarBlock(got, a, -3.75, reverse)
			ref(want, a, -3.75, reverse)

			for i := range got {
				if !sameBits(got[i], want[i]) {
					t.Fatalf("reverse=%v n=%d: MulScalarBlock[%d] = %v, want %v", reverse, n, i, got[i], want[i])
				}
			}
		}
	}
}

func TestAddBlockAliasing(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{10, 20, 30, 40, 50}

	AddBlock(b, a, b)
	want := []float64{11, 22, 33, 44, 55}
	for i := range b {
		if b[i] != want[i] {
			t.Fatalf("dst==b: b[%d] = %v, want %v", i, b[i], want[i])
		}
	}

	a = []float64{1, 2, 3, 4, 5}
	b = []float64{10, 20, 30, 40, 50}
	AddBlock(a, a, b)
	for i := range a {
		if a[i] != want[i] {
			t.Fatalf("dst==a: a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestSpecialValues(t *testing.T) {
	a := []float64{math.Inf(1), math.Inf(-1), math.NaN(), 0, math.Copysign(0, -1)}
	b := []float64{1, math.Inf(1), 2, math.Inf(1), 0}
	got := make([]float64, len(a))
	want := make([]float64, len(a))

	AddBlock(got, a, b)
	generic.BinaryBlock(op.Add)(want, a, b)
	for i := range got {
		if !sameBits(got[i], want[i]) {
			t.Fatalf("add special[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	MulBlock(got, a, b)
	generic.BinaryBlock(op.Multiply)(want, a, b)
	for i := range got {
		if !sameBits(got[i], want[i]) {
			t.Fatalf("mul special[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAddBlockPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AddBlock should panic on mismatched lengths")
		}
	}()
	AddBlock(make([]float64, 5), make([]float64, 5), make([]float64, 6))
}
