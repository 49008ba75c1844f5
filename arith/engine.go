package arith

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arith/op"
)

// Engine evaluates elementwise operations. It holds only its Config, is
// immutable after New and safe for concurrent use.
//
// Every array result is a fresh heap allocation owned by the caller; the
// engine keeps no reference to it. The ...To methods write into a
// caller-provided destination instead.
type Engine struct {
	cfg Config
}

// New returns an Engine configured by opts on top of DefaultConfig.
func New(opts ...Option) *Engine {
	return &Engine{cfg: ApplyOptions(opts...)}
}

var defaultEngine = New()

// Default returns the engine used by the package-level functions.
func Default() *Engine {
	return defaultEngine
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// binaryCode maps c to the code actually evaluated by a binary entry point.
func (e *Engine) binaryCode(c op.Code) (op.Code, error) {
	if c.IsBinary() {
		return c, nil
	}
	if e.cfg.StrictOps {
		return 0, fmt.Errorf("%w: %v has no binary form", ErrUnknownOp, c)
	}
	return op.Subtract, nil
}

// unaryCode reports whether c transforms its operand. Non-transforming codes
// are the identity; in strict mode codes outside the set are rejected.
func (e *Engine) unaryCode(c op.Code) (transform bool, err error) {
	if c.IsUnary() {
		return true, nil
	}
	if e.cfg.StrictOps && !c.Valid() {
		return false, fmt.Errorf("%w: %v", ErrUnknownOp, c)
	}
	return false, nil
}

// alloc returns a zeroed slice of n elements or ErrAllocationFailure.
// Runtime allocation panics (length out of range) are converted to errors;
// an out-of-memory condition of the Go runtime itself cannot be recovered.
func (e *Engine) alloc(n int) (out []float64, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidShape, n)
	}
	if e.cfg.MaxElements > 0 && n > e.cfg.MaxElements {
		return nil, fmt.Errorf("%w: %d elements exceeds limit %d", ErrAllocationFailure, n, e.cfg.MaxElements)
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrAllocationFailure, r)
		}
	}()

	return make([]float64, n), nil
}

// elements returns rows*cols, rejecting negative dimensions and overflow.
func elements(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrAllocationFailure, rows, cols)
	}
	return rows * cols, nil
}

// Scalars returns f(a, b) for the binary operation c.
func (e *Engine) Scalars(a, b float64, c op.Code) (float64, error) {
	code, err := e.binaryCode(c)
	if err != nil {
		return 0, err
	}
	return op.Binary(a, b, code), nil
}

// UnaryScalar returns g(a) for the unary operation c.
func (e *Engine) UnaryScalar(a float64, c op.Code) (float64, error) {
	if _, err := e.unaryCode(c); err != nil {
		return 0, err
	}
	return op.Unary(a, c), nil
}

// Scalars evaluates a binary operation on two scalars with the default engine.
func Scalars(a, b float64, c op.Code) (float64, error) {
	return defaultEngine.Scalars(a, b, c)
}

// UnaryScalar evaluates a unary operation on a scalar with the default engine.
func UnaryScalar(a float64, c op.Code) (float64, error) {
	return defaultEngine.UnaryScalar(a, c)
}
