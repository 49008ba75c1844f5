package arith

import "fmt"

// ConcatVectors returns a new vector holding a followed by b.
func ConcatVectors(a, b []float64) ([]float64, error) {
	out, err := defaultEngine.alloc(len(a) + len(b))
	if err != nil {
		return nil, err
	}
	copy(out, a)
	copy(out[len(a):], b)
	return out, nil
}

// Concat joins two arrays. Two vectors are always joined end to end. When a
// matrix is involved, axis 0 stacks rows (a vector counts as one row and must
// match the column count) and axis 1 joins columns (a vector counts as one
// column and must match the row count).
func Concat(a, b Value, axis int) (Value, error) {
	if a.kind == KindScalar || b.kind == KindScalar {
		return Value{}, fmt.Errorf("%w: concat needs vectors or matrices", ErrInvalidShape)
	}
	if axis != 0 && axis != 1 {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidAxis, axis)
	}

	if a.kind == KindVector && b.kind == KindVector {
		v, err := ConcatVectors(a.vector, b.vector)
		if err != nil {
			return Value{}, err
		}
		return Vec(v), nil
	}

	ma, mb := asMatrix(a, axis), asMatrix(b, axis)
	if err := ma.Validate(); err != nil {
		return Value{}, err
	}
	if err := mb.Validate(); err != nil {
		return Value{}, err
	}

	var (
		out Matrix
		err error
	)
	if axis == 0 {
		out, err = stackRows(ma, mb)
	} else {
		out, err = joinColumns(ma, mb)
	}
	if err != nil {
		return Value{}, err
	}
	return Mat(out), nil
}

// ConcatMatrices joins two matrices along axis 0 (rows) or 1 (columns).
func ConcatMatrices(a, b Matrix, axis int) (Matrix, error) {
	v, err := Concat(Mat(a), Mat(b), axis)
	if err != nil {
		return Matrix{}, err
	}
	return v.Matrix(), nil
}

// asMatrix views a vector as a single row (axis 0) or a single column (axis 1).
func asMatrix(v Value, axis int) Matrix {
	if v.kind == KindMatrix {
		return v.matrix
	}
	if axis == 0 {
		return Matrix{Rows: 1, Cols: len(v.vector), Data: v.vector}
	}
	return Matrix{Rows: len(v.vector), Cols: 1, Data: v.vector}
}

func stackRows(a, b Matrix) (Matrix, error) {
	if a.Cols != b.Cols {
		return Matrix{}, fmt.Errorf("%w: cannot stack %d columns onto %d", ErrShapeMismatch, b.Cols, a.Cols)
	}

	out, err := NewMatrix(a.Rows+b.Rows, a.Cols)
	if err != nil {
		return Matrix{}, err
	}
	copy(out.Data, a.Data)
	copy(out.Data[len(a.Data):], b.Data)
	return out, nil
}

func joinColumns(a, b Matrix) (Matrix, error) {
	if a.Rows != b.Rows {
		return Matrix{}, fmt.Errorf("%w: cannot join %d rows with %d", ErrShapeMismatch, a.Rows, b.Rows)
	}

	out, err := NewMatrix(a.Rows, a.Cols+b.Cols)
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < a.Rows; i++ {
		row := out.Row(i)
		copy(row, a.Row(i))
		copy(row[a.Cols:], b.Row(i))
	}
	return out, nil
}
