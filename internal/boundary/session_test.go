package boundary

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arith/arith"
	"github.com/cwbudde/algo-arith/internal/testutil"
	"github.com/cwbudde/algo-arith/op"
)

func TestSessionScalars(t *testing.T) {
	s := NewSession()

	got, err := s.Scalars(6, 3, int(op.Divide))
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = s.Scalars(6, 3, 77)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	got, err = s.UnaryScalar(0, int(op.Exp))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestSessionVectors(t *testing.T) {
	s := NewSession()

	h, err := s.Vectors([]float64{1, 2, 3}, []float64{4, 5, 6}, int(op.Multiply))
	require.NoError(t, err)

	data, err := s.Read(h)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 10, 18}, data)

	rows, cols, matrix, err := s.Shape(h)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 0, cols)
	assert.False(t, matrix)

	require.NoError(t, s.Release(h))
	assert.Equal(t, 0, s.Live())

	_, err = s.Vectors([]float64{1}, []float64{1, 2}, int(op.Add))
	assert.ErrorIs(t, err, arith.ErrShapeMismatch)
	assert.Equal(t, 0, s.Live())
}

func TestSessionVectorScalar(t *testing.T) {
	s := NewSession()

	h, err := s.VectorScalar([]float64{1, 2}, 10, int(op.Subtract), true)
	require.NoError(t, err)
	data, err := s.Read(h)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8}, data)

	h, err = s.UnaryVector([]float64{0, 1}, int(op.Exp))
	require.NoError(t, err)
	data, err = s.Read(h)
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, 1.0, data[0])
	assert.InDelta(t, math.E, data[1], 1e-15)
}

func TestSessionMatrixScenario(t *testing.T) {
	s := NewSession()
	m, err := CheckMatrix([]float64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)

	h, err := s.MatrixScalar(m, 10, int(op.Add), false)
	require.NoError(t, err)
	data, err := s.Read(h)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 12, 13, 14}, data)

	rows, cols, matrix, err := s.Shape(h)
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 2}, [2]int{rows, cols})
	assert.True(t, matrix)

	h, err = s.MatrixScalar(m, 10, int(op.Subtract), true)
	require.NoError(t, err)
	data, err = s.Read(h)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 8, 7, 6}, data)
}

func TestSessionMatrices(t *testing.T) {
	s := NewSession()
	a := arith.Matrix{Rows: 2, Cols: 2, Data: []float64{1, 2, 3, 4}}
	b := arith.Matrix{Rows: 1, Cols: 4, Data: []float64{1, 2, 3, 4}}

	_, err := s.Matrices(a, b, int(op.Add))
	assert.ErrorIs(t, err, arith.ErrShapeMismatch)

	h, err := s.Matrices(a, a, int(op.Subtract))
	require.NoError(t, err)
	data, err := s.Read(h)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, data)

	h, err = s.UnaryMatrix(a, int(op.Add))
	require.NoError(t, err)
	data, err = s.Read(h)
	require.NoError(t, err)
	assert.Equal(t, a.Data, data)

	_, err = s.UnaryMatrix(arith.Matrix{Rows: 2, Cols: 2}, int(op.Exp))
	assert.ErrorIs(t, err, arith.ErrShapeMismatch)
}

func TestSessionStrictToggle(t *testing.T) {
	s := NewSession()

	_, err := s.Vectors([]float64{1}, []float64{2}, 9)
	require.NoError(t, err)

	s.SetStrict(true)
	assert.True(t, s.Engine().Config().StrictOps)
	_, err = s.Vectors([]float64{1}, []float64{2}, 9)
	assert.ErrorIs(t, err, arith.ErrUnknownOp)
	assert.Equal(t, StatusUnknownOp, Status(err))
	assert.Equal(t, 1, s.Live(), "failed calls must not leak handles")

	s.SetStrict(false)
	_, err = s.Vectors([]float64{1}, []float64{2}, 9)
	require.NoError(t, err)
}

func TestSessionLimit(t *testing.T) {
	s := NewSession(arith.WithMaxElements(3))

	_, err := s.VectorScalar(make([]float64, 4), 1, int(op.Add), false)
	assert.ErrorIs(t, err, arith.ErrAllocationFailure)

	_, err = s.MatrixScalar(arith.Matrix{Rows: 2, Cols: 2, Data: make([]float64, 4)}, 1, int(op.Add), false)
	assert.ErrorIs(t, err, arith.ErrAllocationFailure)

	s.SetStrict(true)
	assert.Equal(t, 3, s.Engine().Config().MaxElements, "SetStrict keeps the rest of the config")
}

// Live results keep their contents while other results are created and
// released, so recycled buffers never alias a live handle.
func TestSessionResultsSurviveChurn(t *testing.T) {
	s := NewSession()
	v := testutil.Ramp(0, 1, 32)

	keep := make(map[Handle][]float64)
	for i := 0; i < 500; i++ {
		h, err := s.VectorScalar(v, float64(i), int(op.Multiply), false)
		require.NoError(t, err)

		if i%10 == 0 {
			data, err := s.Read(h)
			require.NoError(t, err)
			keep[h] = testutil.Snapshot(data)
			continue
		}
		require.NoError(t, s.Release(h))
	}

	assert.Equal(t, len(keep), s.Live())
	for h, want := range keep {
		data, err := s.Read(h)
		require.NoError(t, err)
		testutil.RequireBitIdentical(t, data, want)
	}
}

func TestSessionUnknownHandle(t *testing.T) {
	s := NewSession()

	_, err := s.Read(12345)
	assert.ErrorIs(t, err, ErrUnknownHandle)
	_, _, _, err = s.Shape(0)
	assert.ErrorIs(t, err, ErrUnknownHandle)
	assert.Equal(t, StatusUnknownHandle, Status(s.Release(7)))
}
