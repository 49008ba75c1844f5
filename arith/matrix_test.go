package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-arith/internal/testutil"
	"github.com/cwbudde/algo-arith/op"
)

func mustRows(t *testing.T, rows [][]float64) Matrix {
	t.Helper()
	m, err := MatrixFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestMatrixScalarScenario(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	sum, err := MatrixScalar(m, 10, op.Add, false)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{11, 12}, {13, 14}}, sum.ToRows())

	diff, err := MatrixScalar(m, 10, op.Subtract, true)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{9, 8}, {7, 6}}, diff.ToRows())

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
}

func TestMatricesMatchPrimitive(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {1, 1}, {2, 3}, {5, 4}, {16, 17}} {
		rows, cols := shape[0], shape[1]
		a, err := MatrixOf(rows, cols, testutil.RandomVector(11, 4, rows*cols))
		require.NoError(t, err)
		b, err := MatrixOf(rows, cols, testutil.NonZeroVector(12, 4, rows*cols))
		require.NoError(t, err)

		for _, c := range []op.Code{op.Add, op.Divide, op.Multiply, op.Subtract} {
			got, err := Matrices(a, b, c)
			require.NoError(t, err)
			assert.Equal(t, rows, got.Rows)
			assert.Equal(t, cols, got.Cols)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					want := op.Binary(a.At(i, j), b.At(i, j), c)
					require.True(t, testutil.SameBits(got.At(i, j), want), "(%d, %d) op %v", i, j, c)
				}
			}
		}
	}
}

func TestMatricesShapeMismatch(t *testing.T) {
	a := Matrix{Rows: 2, Cols: 3, Data: make([]float64, 6)}
	b := Matrix{Rows: 3, Cols: 2, Data: make([]float64, 6)}

	got, err := Matrices(a, b, op.Add)
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Nil(t, got.Data)

	bad := Matrix{Rows: 2, Cols: 2, Data: make([]float64, 3)}
	_, err = Matrices(bad, bad, op.Add)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = MatrixScalar(bad, 1, op.Add, false)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = UnaryMatrix(Matrix{Rows: -1, Cols: 2}, op.Exp)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestUnaryMatrix(t *testing.T) {
	m := mustRows(t, [][]float64{{0, 1}, {2, 3}, {4, 5}})

	e, err := UnaryMatrix(m, op.Exp)
	require.NoError(t, err)
	want, err := UnaryVector(m.Data, op.Exp)
	require.NoError(t, err)
	testutil.RequireBitIdentical(t, e.Data, want)

	id, err := UnaryMatrix(m, op.Divide)
	require.NoError(t, err)
	assert.Equal(t, m.ToRows(), id.ToRows())
}

func TestMatrixToVariants(t *testing.T) {
	e := Default()
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	dst := Matrix{Rows: 2, Cols: 2, Data: make([]float64, 4)}

	require.NoError(t, e.MatricesTo(dst, m, m, op.Multiply))
	assert.Equal(t, []float64{1, 4, 9, 16}, dst.Data)

	require.NoError(t, e.MatrixScalarTo(dst, m, 1, op.Subtract, false))
	assert.Equal(t, []float64{0, 1, 2, 3}, dst.Data)

	require.NoError(t, e.UnaryMatrixTo(dst, m, op.Add))
	assert.Equal(t, m.Data, dst.Data)

	wrong := Matrix{Rows: 4, Cols: 1, Data: make([]float64, 4)}
	assert.ErrorIs(t, e.MatricesTo(wrong, m, m, op.Add), ErrShapeMismatch)
	assert.ErrorIs(t, e.MatrixScalarTo(wrong, m, 1, op.Add, false), ErrShapeMismatch)
	assert.ErrorIs(t, e.UnaryMatrixTo(wrong, m, op.Exp), ErrShapeMismatch)
}

func TestMatrixFromRows(t *testing.T) {
	_, err := MatrixFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrShapeMismatch)

	empty, err := MatrixFromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	require.NoError(t, empty.Validate())

	src := [][]float64{{1, 2, 3}}
	m := mustRows(t, src)
	src[0][0] = 9
	assert.Equal(t, 1.0, m.At(0, 0), "rows must be copied")
}

func TestMatrixOf(t *testing.T) {
	_, err := MatrixOf(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrShapeMismatch)

	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := MatrixOf(2, 3, data)
	require.NoError(t, err)
	assert.Equal(t, 6.0, m.At(1, 2))
	data[5] = 7
	assert.Equal(t, 7.0, m.At(1, 2), "MatrixOf wraps without copying")
}

func TestMatrixAccessors(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	assert.Equal(t, 6, m.Len())
	assert.Equal(t, []float64{4, 5, 6}, m.Row(1))
	assert.Len(t, m.Row(0), 3)
	assert.Equal(t, 3, cap(m.Row(0)))

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, -1) })

	rows := m.ToRows()
	rows[0][0] = 42
	assert.Equal(t, 1.0, m.At(0, 0), "ToRows must copy")
	assert.True(t, m.SameShape(Matrix{Rows: 2, Cols: 3}))
}

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix(3, 2)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 6), m.Data)

	_, err = NewMatrix(-1, 2)
	require.ErrorIs(t, err, ErrInvalidShape)
}
