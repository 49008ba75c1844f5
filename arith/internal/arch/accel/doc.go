// Package accel registers block kernels backed by github.com/cwbudde/algo-vecmath.
//
// Only operations whose accelerated form is bit-identical to the scalar
// primitive are provided: addition, multiplication and multiplication by a
// scalar. IEEE 754 addition and multiplication are exactly rounded per element
// and commutative, so lane-wise evaluation cannot change a result. Subtraction,
// division and exp are left to the generic kernels.
//
// The package is empty under the purego build tag and on architectures
// without a vecmath fast path.
package accel
