// Package arith is an elementwise operation engine for scalars, vectors and
// matrices.
//
// Every operation reduces to the scalar primitive in package op, so scalar,
// vector and matrix results always agree for equal inputs:
//
//	sum, _ := arith.Vectors(a, b, op.Add) // sum[i] = a[i] + b[i]
//	rev, _ := arith.VectorScalar(a, 10, op.Subtract, true) // rev[i] = 10 - a[i]
//	half, _ := arith.MatrixScalar(m, 2, op.Divide, false) // half(i, j) = m(i, j) / 2
//	e, _ := arith.UnaryVector(a, op.Exp) // e[i] = exp(a[i])
//
// # Shapes
//
// Vectors are plain []float64. A Matrix is one contiguous row-major block
// with explicit Rows and Cols. Binary operations between two arrays require
// equal dimensions and report ErrShapeMismatch otherwise; nothing is ever read
// past a stated length.
//
// # Results and ownership
//
// Functions returning an array allocate it once per call on the heap and hand
// it to the caller; the engine keeps no reference. The ...To methods of Engine
// write into a destination supplied by the caller, which is how the host
// boundary fills memory it owns.
//
// # Operation codes
//
// With the default configuration a binary entry point evaluates unknown codes
// as Subtract and a unary entry point passes the operand through, matching the
// host boundary contract. WithStrictOps(true) turns those fallbacks into
// ErrUnknownOp.
//
// # Kernels
//
// Long operands are processed by block kernels chosen once per process from a
// registry, by CPU features. Accelerated kernels are used only for operations
// where they are bit-identical to the primitive; see Kernels for the selection.
package arith
