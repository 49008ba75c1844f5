package arith

import "github.com/cwbudde/algo-arith/op"

// Matrices returns a new matrix with result(i, j) = f(a(i, j), b(i, j)).
// Both matrices must be valid and share dimensions.
func (e *Engine) Matrices(a, b Matrix, c op.Code) (Matrix, error) {
	if err := validatePair(a, b); err != nil {
		return Matrix{}, err
	}

	dst, err := e.allocLike(a)
	if err != nil {
		return Matrix{}, err
	}

	if err := e.MatricesTo(dst, a, b, c); err != nil {
		return Matrix{}, err
	}
	return dst, nil
}

// MatricesTo is Matrices writing into dst, which must have the same shape.
func (e *Engine) MatricesTo(dst, a, b Matrix, c op.Code) error {
	if err := validatePair(a, b); err != nil {
		return err
	}
	if err := validateDestination(dst, a); err != nil {
		return err
	}
	return e.VectorsTo(dst.Data, a.Data, b.Data, c)
}

// MatrixScalar returns a new matrix with result(i, j) = f(m(i, j), s), or
// f(s, m(i, j)) when reverse is set.
func (e *Engine) MatrixScalar(m Matrix, s float64, c op.Code, reverse bool) (Matrix, error) {
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}

	dst, err := e.allocLike(m)
	if err != nil {
		return Matrix{}, err
	}

	if err := e.MatrixScalarTo(dst, m, s, c, reverse); err != nil {
		return Matrix{}, err
	}
	return dst, nil
}

// MatrixScalarTo is MatrixScalar writing into dst, which must have m's shape.
func (e *Engine) MatrixScalarTo(dst, m Matrix, s float64, c op.Code, reverse bool) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := validateDestination(dst, m); err != nil {
		return err
	}
	return e.VectorScalarTo(dst.Data, m.Data, s, c, reverse)
}

// UnaryMatrix returns a new matrix with result(i, j) = g(m(i, j)).
func (e *Engine) UnaryMatrix(m Matrix, c op.Code) (Matrix, error) {
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}

	dst, err := e.allocLike(m)
	if err != nil {
		return Matrix{}, err
	}

	if err := e.UnaryMatrixTo(dst, m, c); err != nil {
		return Matrix{}, err
	}
	return dst, nil
}

// UnaryMatrixTo is UnaryMatrix writing into dst, which must have m's shape.
func (e *Engine) UnaryMatrixTo(dst, m Matrix, c op.Code) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := validateDestination(dst, m); err != nil {
		return err
	}
	return e.UnaryVectorTo(dst.Data, m.Data, c)
}

// allocLike allocates one contiguous block shaped like m.
func (e *Engine) allocLike(m Matrix) (Matrix, error) {
	data, err := e.alloc(m.Rows * m.Cols)
	if err != nil {
		return Matrix{}, err
	}
	return Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}, nil
}

func validatePair(a, b Matrix) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if !a.SameShape(b) {
		return matrixMismatch(a, b)
	}
	return nil
}

func validateDestination(dst, like Matrix) error {
	if !dst.SameShape(like) {
		return matrixMismatch(dst, like)
	}
	return dst.Validate()
}

// Matrices applies c position-wise to two matrices with the default engine.
func Matrices(a, b Matrix, c op.Code) (Matrix, error) {
	return defaultEngine.Matrices(a, b, c)
}

// MatrixScalar broadcasts s against m with the default engine.
func MatrixScalar(m Matrix, s float64, c op.Code, reverse bool) (Matrix, error) {
	return defaultEngine.MatrixScalar(m, s, c, reverse)
}

// UnaryMatrix applies the unary form of c to m with the default engine.
func UnaryMatrix(m Matrix, c op.Code) (Matrix, error) {
	return defaultEngine.UnaryMatrix(m, c)
}
