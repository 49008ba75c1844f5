package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arith/internal/testutil"
	"github.com/cwbudde/algo-arith/op"
)

var testSizes = []int{0, 1, 3, 15, 16, 17, 64, 257}

func TestVectorsMatchPrimitive(t *testing.T) {
	for _, n := range testSizes {
		a := testutil.RandomVector(1, 10, n)
		b := testutil.NonZeroVector(2, 10, n)
		for _, c := range []op.Code{op.Add, op.Divide, op.Multiply, op.Subtract, op.Exp, op.Code(99)} {
			got, err := Vectors(a, b, c)
			require.NoError(t, err)
			require.Len(t, got, n)

			want := make([]float64, n)
			for i := range want {
				want[i] = op.Binary(a[i], b[i], c)
			}
			testutil.RequireBitIdentical(t, got, want)
		}
	}
}

func TestVectorsSpecialValues(t *testing.T) {
	special := testutil.SpecialValues()
	for _, c := range []op.Code{op.Add, op.Divide, op.Multiply, op.Subtract} {
		for _, x := range special {
			a := make([]float64, len(special))
			for i := range a {
				a[i] = x
			}
			got, err := Vectors(a, special, c)
			require.NoError(t, err)

			want := make([]float64, len(special))
			for i := range want {
				want[i] = op.Binary(x, special[i], c)
			}
			testutil.RequireBitIdentical(t, got, want)
		}
	}
}

func TestVectorsShapeMismatch(t *testing.T) {
	got, err := Vectors([]float64{1, 2, 3}, []float64{1, 2}, op.Add)
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, got)

	_, err = Vectors(nil, []float64{1}, op.Add)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestVectorsEmpty(t *testing.T) {
	got, err := Vectors(nil, nil, op.Add)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVectorScalar(t *testing.T) {
	v := []float64{1, 2, 4}

	got, err := VectorScalar(v, 8, op.Divide, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.125, 0.25, 0.5}, got)

	got, err = VectorScalar(v, 8, op.Divide, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 4, 2}, got)

	got, err = VectorScalar(v, 10, op.Subtract, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8, 6}, got)
}

func TestVectorScalarMatchesPrimitive(t *testing.T) {
	for _, n := range testSizes {
		v := testutil.NonZeroVector(3, 5, n)
		for _, c := range op.Codes() {
			for _, reverse := range []bool{false, true} {
				got, err := VectorScalar(v, -1.75, c, reverse)
				require.NoError(t, err)

				want := make([]float64, n)
				for i := range want {
					if reverse {
						want[i] = op.Binary(-1.75, v[i], c)
					} else {
						want[i] = op.Binary(v[i], -1.75, c)
					}
				}
				testutil.RequireBitIdentical(t, got, want)
			}
		}
	}
}

func TestUnaryVector(t *testing.T) {
	v := testutil.Ramp(-2, 0.25, 33)

	got, err := UnaryVector(v, op.Exp)
	require.NoError(t, err)
	for i := range v {
		assert.Equal(t, math.Exp(v[i]), got[i])
	}

	id, err := UnaryVector(v, op.Add)
	require.NoError(t, err)
	testutil.RequireBitIdentical(t, id, v)

	id[0] = 100
	assert.Equal(t, -2.0, v[0], "identity result must not alias the operand")
}

func TestVectorsToInPlace(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{10, 20, 30}
	require.NoError(t, Default().VectorsTo(a, a, b, op.Add))
	assert.Equal(t, []float64{11, 22, 33}, a)

	require.NoError(t, Default().VectorsTo(b, a, b, op.Subtract))
	assert.Equal(t, []float64{1, 2, 3}, b)
}

func TestToDestinationMismatch(t *testing.T) {
	e := Default()
	dst := make([]float64, 2)

	assert.ErrorIs(t, e.VectorsTo(dst, []float64{1, 2, 3}, []float64{1, 2, 3}, op.Add), ErrShapeMismatch)
	assert.ErrorIs(t, e.VectorScalarTo(dst, []float64{1}, 2, op.Add, false), ErrShapeMismatch)
	assert.ErrorIs(t, e.UnaryVectorTo(dst, []float64{1}, op.Exp), ErrShapeMismatch)
}

func TestOperandsUnchanged(t *testing.T) {
	a := testutil.RandomVector(5, 3, 40)
	b := testutil.RandomVector(6, 3, 40)
	sa, sb := testutil.Snapshot(a), testutil.Snapshot(b)

	_, err := Vectors(a, b, op.Multiply)
	require.NoError(t, err)
	_, err = VectorScalar(a, 2, op.Add, true)
	require.NoError(t, err)
	_, err = UnaryVector(b, op.Exp)
	require.NoError(t, err)

	testutil.RequireBitIdentical(t, a, sa)
	testutil.RequireBitIdentical(t, b, sb)
}

// Each result is a distinct allocation that later calls leave alone.
func TestResultsAreIndependent(t *testing.T) {
	a := testutil.Ramp(0, 1, 20)
	results := make([][]float64, 0, 1000)
	snaps := make([][]float64, 0, 1000)

	for i := 0; i < 1000; i++ {
		r, err := VectorScalar(a, float64(i), op.Add, false)
		require.NoError(t, err)
		results = append(results, r)
		snaps = append(snaps, testutil.Snapshot(r))
	}

	for i := range results {
		testutil.RequireBitIdentical(t, results[i], snaps[i])
		assert.Equal(t, float64(i), results[i][0])
	}
	results[0][0] = -1
	assert.Equal(t, 1.0, results[1][0])
}
