package arith

import (
	"fmt"

	"github.com/cwbudde/algo-arith/op"
)

// Product returns the matrix product a·b. It requires a.Cols == b.Rows and
// returns an a.Rows × b.Cols matrix.
//
// Row i of the result accumulates b's rows scaled by a(i, k) in order of k,
// using the engine's multiply-by-scalar and add kernels.
func (e *Engine) Product(a, b Matrix) (Matrix, error) {
	if err := a.Validate(); err != nil {
		return Matrix{}, err
	}
	if err := b.Validate(); err != nil {
		return Matrix{}, err
	}
	if a.Cols != b.Rows {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrShapeMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
	}

	n, err := elements(a.Rows, b.Cols)
	if err != nil {
		return Matrix{}, err
	}
	data, err := e.alloc(n)
	if err != nil {
		return Matrix{}, err
	}
	out := Matrix{Rows: a.Rows, Cols: b.Cols, Data: data}

	scaled := make([]float64, b.Cols)
	for i := 0; i < a.Rows; i++ {
		dst := out.Row(i)
		for k := 0; k < a.Cols; k++ {
			if err := e.VectorScalarTo(scaled, b.Row(k), a.Data[i*a.Cols+k], op.Multiply, false); err != nil {
				return Matrix{}, err
			}
			if err := e.VectorsTo(dst, dst, scaled, op.Add); err != nil {
				return Matrix{}, err
			}
		}
	}
	return out, nil
}

// Product returns a·b with the default engine.
func Product(a, b Matrix) (Matrix, error) {
	return defaultEngine.Product(a, b)
}
