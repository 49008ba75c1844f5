package arith

import "github.com/cwbudde/algo-arith/op"

// Vectors returns a new vector with result[i] = f(a[i], b[i]).
// a and b must have equal length.
func (e *Engine) Vectors(a, b []float64, c op.Code) ([]float64, error) {
	if len(a) != len(b) {
		return nil, vectorMismatch(len(a), len(b))
	}

	dst, err := e.alloc(len(a))
	if err != nil {
		return nil, err
	}

	if err := e.VectorsTo(dst, a, b, c); err != nil {
		return nil, err
	}
	return dst, nil
}

// VectorsTo writes f(a[i], b[i]) to dst[i]. All three lengths must match.
// dst may be a or b itself.
func (e *Engine) VectorsTo(dst, a, b []float64, c op.Code) error {
	code, err := e.binaryCode(c)
	if err != nil {
		return err
	}
	if len(a) != len(b) {
		return vectorMismatch(len(a), len(b))
	}
	if len(dst) != len(a) {
		return destinationMismatch(len(dst), len(a))
	}

	kernels(len(dst), e.cfg.AccelThreshold).Binary(code)(dst, a, b)
	return nil
}

// VectorScalar returns a new vector with result[i] = f(v[i], s), or
// f(s, v[i]) when reverse is set.
func (e *Engine) VectorScalar(v []float64, s float64, c op.Code, reverse bool) ([]float64, error) {
	dst, err := e.alloc(len(v))
	if err != nil {
		return nil, err
	}

	if err := e.VectorScalarTo(dst, v, s, c, reverse); err != nil {
		return nil, err
	}
	return dst, nil
}

// VectorScalarTo is VectorScalar writing into dst, which must have len(v) elements.
func (e *Engine) VectorScalarTo(dst, v []float64, s float64, c op.Code, reverse bool) error {
	code, err := e.binaryCode(c)
	if err != nil {
		return err
	}
	if len(dst) != len(v) {
		return destinationMismatch(len(dst), len(v))
	}

	kernels(len(dst), e.cfg.AccelThreshold).Scalar(code)(dst, v, s, reverse)
	return nil
}

// UnaryVector returns a new vector with result[i] = g(v[i]).
func (e *Engine) UnaryVector(v []float64, c op.Code) ([]float64, error) {
	dst, err := e.alloc(len(v))
	if err != nil {
		return nil, err
	}

	if err := e.UnaryVectorTo(dst, v, c); err != nil {
		return nil, err
	}
	return dst, nil
}

// UnaryVectorTo is UnaryVector writing into dst, which must have len(v) elements.
func (e *Engine) UnaryVectorTo(dst, v []float64, c op.Code) error {
	transform, err := e.unaryCode(c)
	if err != nil {
		return err
	}
	if len(dst) != len(v) {
		return destinationMismatch(len(dst), len(v))
	}

	if !transform {
		copy(dst, v)
		return nil
	}
	kernels(len(dst), e.cfg.AccelThreshold).Unary(c)(dst, v)
	return nil
}

// Vectors applies c position-wise to two vectors with the default engine.
func Vectors(a, b []float64, c op.Code) ([]float64, error) {
	return defaultEngine.Vectors(a, b, c)
}

// VectorScalar broadcasts s against v with the default engine.
func VectorScalar(v []float64, s float64, c op.Code, reverse bool) ([]float64, error) {
	return defaultEngine.VectorScalar(v, s, c, reverse)
}

// UnaryVector applies the unary form of c to v with the default engine.
func UnaryVector(v []float64, c op.Code) ([]float64, error) {
	return defaultEngine.UnaryVector(v, c)
}
