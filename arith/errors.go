package arith

import (
	"errors"
	"fmt"
)

// Errors returned by the engine. Returned errors wrap these sentinels with the
// offending dimensions; match them with errors.Is.
var (
	ErrShapeMismatch     = errors.New("arith: shape mismatch")
	ErrAllocationFailure = errors.New("arith: allocation failure")
	ErrInvalidShape      = errors.New("arith: invalid shape")
	ErrUnknownOp         = errors.New("arith: unknown operation")
	ErrEmptyOperand      = errors.New("arith: empty operand")
	ErrInvalidAxis       = errors.New("arith: invalid axis")
)

func vectorMismatch(a, b int) error {
	return fmt.Errorf("%w: vector length %d vs %d", ErrShapeMismatch, a, b)
}

func matrixMismatch(a, b Matrix) error {
	return fmt.Errorf("%w: matrix %dx%d vs %dx%d", ErrShapeMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
}

func destinationMismatch(got, want int) error {
	return fmt.Errorf("%w: destination length %d, want %d", ErrShapeMismatch, got, want)
}
