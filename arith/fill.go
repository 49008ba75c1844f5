package arith

import "fmt"

// Fill returns a Value of the given dimensions with every element set to x.
// No dimensions yield the scalar x, one yields a vector, two a matrix.
func Fill(x float64, dims ...int) (Value, error) {
	switch len(dims) {
	case 0:
		return Scalar(x), nil
	case 1:
		v, err := FillVector(dims[0], x)
		if err != nil {
			return Value{}, err
		}
		return Vec(v), nil
	case 2:
		m, err := FillMatrix(dims[0], dims[1], x)
		if err != nil {
			return Value{}, err
		}
		return Mat(m), nil
	default:
		return Value{}, fmt.Errorf("%w: rank %d not supported", ErrInvalidShape, len(dims))
	}
}

// Zeros is Fill(0, dims...).
func Zeros(dims ...int) (Value, error) {
	return Fill(0, dims...)
}

// Ones is Fill(1, dims...).
func Ones(dims ...int) (Value, error) {
	return Fill(1, dims...)
}

// FillVector returns a new vector of n elements set to x.
func FillVector(n int, x float64) ([]float64, error) {
	v, err := defaultEngine.alloc(n)
	if err != nil {
		return nil, err
	}
	fillBlock(v, x)
	return v, nil
}

// FillMatrix returns a new rows × cols matrix with every element set to x.
func FillMatrix(rows, cols int, x float64) (Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return Matrix{}, err
	}
	fillBlock(m.Data, x)
	return m, nil
}

func fillBlock(dst []float64, x float64) {
	for i := range dst {
		dst[i] = x
	}
}
