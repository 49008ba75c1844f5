package boundary

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-arith/arith"
	"github.com/cwbudde/algo-arith/internal/buffer"
	"github.com/cwbudde/algo-arith/op"
)

// Session serves one host: it owns the engine configuration the host can
// change at run time and the arena holding the host's results.
type Session struct {
	mu     sync.RWMutex
	engine *arith.Engine

	pool  *buffer.Pool
	arena *Arena
}

// NewSession returns a Session with an engine built from opts.
func NewSession(opts ...arith.Option) *Session {
	pool := buffer.NewPool()
	return &Session{
		engine: arith.New(opts...),
		pool:   pool,
		arena:  NewArena(pool),
	}
}

// Engine returns the current engine.
func (s *Session) Engine() *arith.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// SetStrict swaps in an engine with strict operation codes on or off.
// Calls already running keep the engine they started with.
func (s *Session) SetStrict(strict bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg := s.engine.Config()
	cfg.StrictOps = strict
	s.engine = arith.New(arith.WithConfig(cfg))
}

// CheckLimit reports ErrAllocationFailure if n elements exceed the engine's
// per-result cap.
func (s *Session) CheckLimit(n int) error {
	limit := s.Engine().Config().MaxElements
	if limit > 0 && n > limit {
		return fmt.Errorf("%w: %d elements exceeds limit %d", arith.ErrAllocationFailure, n, limit)
	}
	return nil
}

// Scalars evaluates a binary operation on two scalars.
func (s *Session) Scalars(a, b float64, code int) (float64, error) {
	return s.Engine().Scalars(a, b, op.Code(code))
}

// UnaryScalar evaluates a unary operation on a scalar.
func (s *Session) UnaryScalar(a float64, code int) (float64, error) {
	return s.Engine().UnaryScalar(a, op.Code(code))
}

// Vectors stores f(a[i], b[i]) and returns its handle.
func (s *Session) Vectors(a, b []float64, code int) (Handle, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: vector length %d vs %d", arith.ErrShapeMismatch, len(a), len(b))
	}
	return s.vector(len(a), func(e *arith.Engine, dst []float64) error {
		return e.VectorsTo(dst, a, b, op.Code(code))
	})
}

// VectorScalar stores f(v[i], x), or f(x, v[i]) when reverse is set.
func (s *Session) VectorScalar(v []float64, x float64, code int, reverse bool) (Handle, error) {
	return s.vector(len(v), func(e *arith.Engine, dst []float64) error {
		return e.VectorScalarTo(dst, v, x, op.Code(code), reverse)
	})
}

// UnaryVector stores g(v[i]).
func (s *Session) UnaryVector(v []float64, code int) (Handle, error) {
	return s.vector(len(v), func(e *arith.Engine, dst []float64) error {
		return e.UnaryVectorTo(dst, v, op.Code(code))
	})
}

// Matrices stores f(a(i, j), b(i, j)).
func (s *Session) Matrices(a, b arith.Matrix, code int) (Handle, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if !a.SameShape(b) {
		return 0, fmt.Errorf("%w: matrix %dx%d vs %dx%d", arith.ErrShapeMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
	}
	return s.matrix(a, func(e *arith.Engine, dst arith.Matrix) error {
		return e.MatricesTo(dst, a, b, op.Code(code))
	})
}

// MatrixScalar stores f(m(i, j), x), or f(x, m(i, j)) when reverse is set.
func (s *Session) MatrixScalar(m arith.Matrix, x float64, code int, reverse bool) (Handle, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return s.matrix(m, func(e *arith.Engine, dst arith.Matrix) error {
		return e.MatrixScalarTo(dst, m, x, op.Code(code), reverse)
	})
}

// UnaryMatrix stores g(m(i, j)).
func (s *Session) UnaryMatrix(m arith.Matrix, code int) (Handle, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	return s.matrix(m, func(e *arith.Engine, dst arith.Matrix) error {
		return e.UnaryMatrixTo(dst, m, op.Code(code))
	})
}

func (s *Session) vector(n int, fill func(*arith.Engine, []float64) error) (Handle, error) {
	if err := s.CheckLimit(n); err != nil {
		return 0, err
	}

	buf := s.pool.Get(n)
	if err := fill(s.Engine(), buf.Data()); err != nil {
		s.pool.Put(buf)
		return 0, err
	}
	return s.arena.Put(buf), nil
}

func (s *Session) matrix(like arith.Matrix, fill func(*arith.Engine, arith.Matrix) error) (Handle, error) {
	if err := s.CheckLimit(like.Len()); err != nil {
		return 0, err
	}

	buf := s.pool.GetMatrix(like.Rows, like.Cols)
	if err := fill(s.Engine(), buf.Matrix()); err != nil {
		s.pool.Put(buf)
		return 0, err
	}
	return s.arena.Put(buf), nil
}

// Shape returns the dimensions of a live result: (n, 0) for a vector and
// (rows, cols) for a matrix.
func (s *Session) Shape(h Handle) (rows, cols int, matrix bool, err error) {
	b, err := s.arena.Get(h)
	if err != nil {
		return 0, 0, false, err
	}
	rows, cols = b.Shape()
	return rows, cols, b.IsMatrix(), nil
}

// Read returns the elements of a live result. The slice stays valid until h
// is released; hosts copy it into their own memory.
func (s *Session) Read(h Handle) ([]float64, error) {
	b, err := s.arena.Get(h)
	if err != nil {
		return nil, err
	}
	return b.Data(), nil
}

// Release frees a result.
func (s *Session) Release(h Handle) error {
	return s.arena.Release(h)
}

// Live returns the number of results not yet released.
func (s *Session) Live() int {
	return s.arena.Live()
}
