package boundary

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-arith/arith"
	"github.com/cwbudde/algo-arith/op"
)

// Status codes reported to hosts.
const (
	StatusOK                = 0
	StatusShapeMismatch     = 1
	StatusAllocationFailure = 2
	StatusUnknownOp         = 3
	StatusInvalidShape      = 4
	StatusUnknownHandle     = 5
	StatusEmptyOperand      = 6
	StatusInternal          = 99
)

var statusText = map[int]string{
	StatusOK:                "ok",
	StatusShapeMismatch:     "shape mismatch",
	StatusAllocationFailure: "allocation failure",
	StatusUnknownOp:         "unknown operation",
	StatusInvalidShape:      "invalid shape",
	StatusUnknownHandle:     "unknown handle",
	StatusEmptyOperand:      "empty operand",
	StatusInternal:          "internal error",
}

// Status maps err to a host status code. nil is StatusOK; errors that wrap
// none of the known sentinels are StatusInternal.
func Status(err error) int {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, arith.ErrShapeMismatch):
		return StatusShapeMismatch
	case errors.Is(err, arith.ErrAllocationFailure):
		return StatusAllocationFailure
	case errors.Is(err, arith.ErrUnknownOp), errors.Is(err, op.ErrUnknownName):
		return StatusUnknownOp
	case errors.Is(err, arith.ErrInvalidShape), errors.Is(err, arith.ErrInvalidAxis):
		return StatusInvalidShape
	case errors.Is(err, ErrUnknownHandle):
		return StatusUnknownHandle
	case errors.Is(err, arith.ErrEmptyOperand):
		return StatusEmptyOperand
	default:
		return StatusInternal
	}
}

// StatusText returns a short description of code.
func StatusText(code int) string {
	if s, ok := statusText[code]; ok {
		return s
	}
	return fmt.Sprintf("unknown status %d", code)
}

// CheckSize returns the first n elements of buf. It reports ErrInvalidShape
// for a negative n and ErrShapeMismatch when buf holds fewer than n
// elements, which covers a missing buffer with a non-zero size.
func CheckSize(buf []float64, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", arith.ErrInvalidShape, n)
	}
	if len(buf) < n {
		return nil, fmt.Errorf("%w: buffer holds %d elements, declared %d", arith.ErrShapeMismatch, len(buf), n)
	}
	return buf[:n:n], nil
}

// CheckMatrix validates the declared dimensions against buf and wraps the
// first rows*cols elements as a matrix.
func CheckMatrix(buf []float64, rows, cols int) (arith.Matrix, error) {
	n, err := Elements(rows, cols)
	if err != nil {
		return arith.Matrix{}, err
	}
	data, err := CheckSize(buf, n)
	if err != nil {
		return arith.Matrix{}, err
	}
	return arith.MatrixOf(rows, cols, data)
}

// Elements returns rows*cols for declared host dimensions.
func Elements(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("%w: %dx%d", arith.ErrInvalidShape, rows, cols)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %dx%d overflows", arith.ErrAllocationFailure, rows, cols)
	}
	return rows * cols, nil
}
