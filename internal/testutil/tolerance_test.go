package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestSameBits(t *testing.T) {
	if !SameBits(math.NaN(), math.Float64frombits(0x7ff8000000000001)) {
		t.Fatal("NaNs should compare equal")
	}
	if SameBits(0, math.Copysign(0, -1)) {
		t.Fatal("+0 and -0 differ in their encoding")
	}
	if !SameBits(1.5, 1.5) {
		t.Fatal("equal values should compare equal")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	src := []float64{1, 2, 3}
	snap := Snapshot(src)
	src[0] = 99
	if snap[0] != 1 {
		t.Fatalf("snapshot changed with source: %v", snap)
	}
	RequireBitIdentical(t, snap, []float64{1, 2, 3})
}
