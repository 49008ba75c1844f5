package arith

import (
	"fmt"

	"github.com/cwbudde/algo-arith/op"
)

// Kind is the shape class of a Value.
type Kind int

const (
	// KindScalar is a single float64.
	KindScalar Kind = iota

	// KindVector is a []float64 of any length.
	KindVector

	// KindMatrix is a row-major Matrix.
	KindMatrix
)

// String returns the lower-case kind name, or "unknown".
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	default:
		return "unknown"
	}
}

// Value is a scalar, a vector or a matrix. The zero Value is the scalar 0.
type Value struct {
	kind   Kind
	scalar float64
	vector []float64
	matrix Matrix
}

// Scalar wraps x.
func Scalar(x float64) Value {
	return Value{kind: KindScalar, scalar: x}
}

// Vec wraps v without copying.
func Vec(v []float64) Value {
	return Value{kind: KindVector, vector: v}
}

// Mat wraps m without copying.
func Mat(m Matrix) Value {
	return Value{kind: KindMatrix, matrix: m}
}

// Kind returns the shape class.
func (v Value) Kind() Kind { return v.kind }

// Scalar returns the scalar payload (0 for non-scalars).
func (v Value) Scalar() float64 { return v.scalar }

// Vector returns the vector payload (nil for non-vectors).
func (v Value) Vector() []float64 { return v.vector }

// Matrix returns the matrix payload (zero Matrix for non-matrices).
func (v Value) Matrix() Matrix { return v.matrix }

// Shape returns (0, 0) for a scalar, (n, 0) for a vector of length n and
// (rows, cols) for a matrix.
func (v Value) Shape() (rows, cols int) {
	switch v.kind {
	case KindVector:
		return len(v.vector), 0
	case KindMatrix:
		return v.matrix.Rows, v.matrix.Cols
	default:
		return 0, 0
	}
}

// empty reports whether v is an array without elements.
func (v Value) empty() bool {
	switch v.kind {
	case KindVector:
		return len(v.vector) == 0
	case KindMatrix:
		return v.matrix.Len() == 0
	default:
		return false
	}
}

// Apply evaluates a ⊕ b, choosing the entry point from the operand shapes:
//
//   - scalar with scalar: the primitive
//   - scalar with vector or matrix: scalar broadcast, operand order kept
//   - vector with vector: equal lengths
//   - vector with matrix: the vector is repeated for every row (len == cols)
//   - 1×N with M×N: the single row is repeated
//   - M×1 with M×N: the single column is repeated
//   - equal matrices: position-wise
//
// Any other combination is ErrShapeMismatch. An empty array paired with a
// scalar is ErrEmptyOperand.
func (e *Engine) Apply(a, b Value, c op.Code) (Value, error) {
	switch {
	case a.kind == KindScalar && b.kind == KindScalar:
		r, err := e.Scalars(a.scalar, b.scalar, c)
		if err != nil {
			return Value{}, err
		}
		return Scalar(r), nil

	case a.kind == KindScalar:
		return e.applyScalar(b, a.scalar, c, true)

	case b.kind == KindScalar:
		return e.applyScalar(a, b.scalar, c, false)

	case a.kind == KindVector && b.kind == KindVector:
		r, err := e.Vectors(a.vector, b.vector, c)
		if err != nil {
			return Value{}, err
		}
		return Vec(r), nil
	}

	return e.applyMatrices(a, b, c)
}

func (e *Engine) applyScalar(arr Value, s float64, c op.Code, reverse bool) (Value, error) {
	if arr.empty() {
		return Value{}, fmt.Errorf("%w: cannot broadcast a scalar against an empty %v", ErrEmptyOperand, arr.kind)
	}

	if arr.kind == KindVector {
		r, err := e.VectorScalar(arr.vector, s, c, reverse)
		if err != nil {
			return Value{}, err
		}
		return Vec(r), nil
	}

	r, err := e.MatrixScalar(arr.matrix, s, c, reverse)
	if err != nil {
		return Value{}, err
	}
	return Mat(r), nil
}

// applyMatrices handles every pairing with at least one matrix.
func (e *Engine) applyMatrices(a, b Value, c op.Code) (Value, error) {
	if a.kind == KindVector {
		if len(a.vector) != b.matrix.Cols {
			return Value{}, shapeError(a, b)
		}
		return e.broadcastRow(a.vector, b.matrix, c, true)
	}
	if b.kind == KindVector {
		if len(b.vector) != a.matrix.Cols {
			return Value{}, shapeError(a, b)
		}
		return e.broadcastRow(b.vector, a.matrix, c, false)
	}

	ma, mb := a.matrix, b.matrix
	if err := ma.Validate(); err != nil {
		return Value{}, err
	}
	if err := mb.Validate(); err != nil {
		return Value{}, err
	}

	switch {
	case ma.SameShape(mb):
		r, err := e.Matrices(ma, mb, c)
		if err != nil {
			return Value{}, err
		}
		return Mat(r), nil

	case ma.Cols == mb.Cols && ma.Rows == 1 && mb.Rows > 1:
		return e.broadcastRow(ma.Data, mb, c, true)

	case ma.Cols == mb.Cols && mb.Rows == 1 && ma.Rows > 1:
		return e.broadcastRow(mb.Data, ma, c, false)

	case ma.Rows == mb.Rows && ma.Cols == 1 && mb.Cols > 1:
		return e.broadcastColumn(ma.Data, mb, c, true)

	case ma.Rows == mb.Rows && mb.Cols == 1 && ma.Cols > 1:
		return e.broadcastColumn(mb.Data, ma, c, false)
	}

	return Value{}, shapeError(a, b)
}

// broadcastRow evaluates row against every row of m. When rowFirst is set the
// row is the left operand.
func (e *Engine) broadcastRow(row []float64, m Matrix, c op.Code, rowFirst bool) (Value, error) {
	if err := m.Validate(); err != nil {
		return Value{}, err
	}

	dst, err := e.allocLike(m)
	if err != nil {
		return Value{}, err
	}

	for i := 0; i < m.Rows; i++ {
		left, right := m.Row(i), row
		if rowFirst {
			left, right = row, m.Row(i)
		}
		if err := e.VectorsTo(dst.Row(i), left, right, c); err != nil {
			return Value{}, err
		}
	}
	return Mat(dst), nil
}

// broadcastColumn evaluates col[i] against every element of row i of m. When
// colFirst is set the column is the left operand.
func (e *Engine) broadcastColumn(col []float64, m Matrix, c op.Code, colFirst bool) (Value, error) {
	dst, err := e.allocLike(m)
	if err != nil {
		return Value{}, err
	}

	for i := 0; i < m.Rows; i++ {
		if err := e.VectorScalarTo(dst.Row(i), m.Row(i), col[i], c, colFirst); err != nil {
			return Value{}, err
		}
	}
	return Mat(dst), nil
}

func shapeError(a, b Value) error {
	ra, ca := a.Shape()
	rb, cb := b.Shape()
	return fmt.Errorf("%w: cannot broadcast %v [%d %d] with %v [%d %d]", ErrShapeMismatch, a.kind, ra, ca, b.kind, rb, cb)
}

// ApplyUnary evaluates the unary form of c on a, keeping its shape.
func (e *Engine) ApplyUnary(a Value, c op.Code) (Value, error) {
	switch a.kind {
	case KindVector:
		r, err := e.UnaryVector(a.vector, c)
		if err != nil {
			return Value{}, err
		}
		return Vec(r), nil
	case KindMatrix:
		r, err := e.UnaryMatrix(a.matrix, c)
		if err != nil {
			return Value{}, err
		}
		return Mat(r), nil
	default:
		r, err := e.UnaryScalar(a.scalar, c)
		if err != nil {
			return Value{}, err
		}
		return Scalar(r), nil
	}
}

// Apply evaluates a ⊕ b with the default engine.
func Apply(a, b Value, c op.Code) (Value, error) {
	return defaultEngine.Apply(a, b, c)
}

// ApplyUnary evaluates the unary form of c on a with the default engine.
func ApplyUnary(a Value, c op.Code) (Value, error) {
	return defaultEngine.ApplyUnary(a, c)
}
