package boundary

import (
	"fmt"

	"github.com/cwbudde/algo-arith/arith"
)

// Allocator hands out result memory owned by the host, such as malloc'd
// blocks for C callers.
type Allocator interface {
	Alloc(n int) ([]float64, error)
	Free(data []float64)
}

// Produce computes an n-element result into memory from alloc and returns it
// with a status code. Empty results need no memory and come back as nil.
// When fill fails or panics the memory is returned to alloc and the result
// is nil; a panic is reported as StatusInternal.
func (s *Session) Produce(alloc Allocator, n int, fill func(e *arith.Engine, dst []float64) error) (out []float64, status int) {
	var dst []float64
	defer func() {
		if r := recover(); r != nil {
			if dst != nil {
				alloc.Free(dst)
			}
			out, status = nil, StatusInternal
		}
	}()

	if n < 0 {
		return nil, Status(fmt.Errorf("%w: negative size %d", arith.ErrInvalidShape, n))
	}
	if n > 0 {
		if err := s.CheckLimit(n); err != nil {
			return nil, Status(err)
		}
		d, err := alloc.Alloc(n)
		if err != nil {
			return nil, Status(err)
		}
		dst = d
	}

	if err := fill(s.Engine(), dst); err != nil {
		if dst != nil {
			alloc.Free(dst)
		}
		return nil, Status(err)
	}
	return dst, StatusOK
}
