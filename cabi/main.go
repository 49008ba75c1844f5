// Command cabi builds the engine as a C shared library:
//
//	go build -buildmode=c-shared -o libalgoarith.so ./cabi
//
// Array results are allocated with malloc and belong to the caller, who frees
// them with ArithFree. Every entry point reports a status code through its
// last argument; see ArithStatusText.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-arith/arith"
	"github.com/cwbudde/algo-arith/internal/boundary"
	"github.com/cwbudde/algo-arith/op"
)

var session = boundary.NewSession()

// goSlice views n doubles at p. The slice must not outlive the call.
func goSlice(p *C.double, n int) []float64 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(p)), n)
}

func setStatus(status *C.int, err error) {
	if status != nil {
		*status = C.int(boundary.Status(err))
	}
}

// cAllocator hands out malloc'd memory that the C caller frees with ArithFree.
type cAllocator struct{}

func (cAllocator) Alloc(n int) ([]float64, error) {
	p := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(C.double(0))))
	if p == nil {
		return nil, fmt.Errorf("%w: malloc of %d elements", arith.ErrAllocationFailure, n)
	}
	return unsafe.Slice((*float64)(p), n), nil
}

func (cAllocator) Free(data []float64) {
	if len(data) > 0 {
		C.free(unsafe.Pointer(&data[0]))
	}
}

// run computes an n-element result into C memory and reports the status.
// Empty results and failures return NULL.
func run(status *C.int, n int, fill func(e *arith.Engine, dst []float64) error) *C.double {
	data, code := session.Produce(cAllocator{}, n, fill)
	if status != nil {
		*status = C.int(code)
	}
	if len(data) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&data[0]))
}

func fail(status *C.int, err error) *C.double {
	setStatus(status, err)
	return nil
}

//export ArithOperateOnScalars
func ArithOperateOnScalars(a, b C.double, operation C.int, status *C.int) C.double {
	r, err := session.Scalars(float64(a), float64(b), int(operation))
	setStatus(status, err)
	return C.double(r)
}

//export ArithOperateUnaryScalar
func ArithOperateUnaryScalar(a C.double, operation C.int, status *C.int) C.double {
	r, err := session.UnaryScalar(float64(a), int(operation))
	setStatus(status, err)
	return C.double(r)
}

//export ArithOperateOnVectors
func ArithOperateOnVectors(a *C.double, aSize C.int, b *C.double, bSize C.int, operation C.int, status *C.int) *C.double {
	va, err := boundary.CheckSize(goSlice(a, int(aSize)), int(aSize))
	if err != nil {
		return fail(status, err)
	}
	vb, err := boundary.CheckSize(goSlice(b, int(bSize)), int(bSize))
	if err != nil {
		return fail(status, err)
	}
	if len(va) != len(vb) {
		return fail(status, fmt.Errorf("%w: vector length %d vs %d", arith.ErrShapeMismatch, len(va), len(vb)))
	}

	return run(status, len(va), func(e *arith.Engine, dst []float64) error {
		return e.VectorsTo(dst, va, vb, op.Code(operation))
	})
}

//export ArithOperateOnVectorAndScalar
func ArithOperateOnVectorAndScalar(v *C.double, size C.int, scalar C.double, operation C.int, reverse C.int, status *C.int) *C.double {
	vv, err := boundary.CheckSize(goSlice(v, int(size)), int(size))
	if err != nil {
		return fail(status, err)
	}

	return run(status, len(vv), func(e *arith.Engine, dst []float64) error {
		return e.VectorScalarTo(dst, vv, float64(scalar), op.Code(operation), reverse != 0)
	})
}

//export ArithOperateUnaryVector
func ArithOperateUnaryVector(v *C.double, size C.int, operation C.int, status *C.int) *C.double {
	vv, err := boundary.CheckSize(goSlice(v, int(size)), int(size))
	if err != nil {
		return fail(status, err)
	}

	return run(status, len(vv), func(e *arith.Engine, dst []float64) error {
		return e.UnaryVectorTo(dst, vv, op.Code(operation))
	})
}

func cMatrix(p *C.double, rows, cols C.int) (arith.Matrix, error) {
	n, err := boundary.Elements(int(rows), int(cols))
	if err != nil {
		return arith.Matrix{}, err
	}
	return boundary.CheckMatrix(goSlice(p, n), int(rows), int(cols))
}

//export ArithOperateOnMatrixAndScalar
func ArithOperateOnMatrixAndScalar(m *C.double, rows, cols C.int, scalar C.double, operation C.int, reverse C.int, status *C.int) *C.double {
	mm, err := cMatrix(m, rows, cols)
	if err != nil {
		return fail(status, err)
	}

	return run(status, mm.Len(), func(e *arith.Engine, dst []float64) error {
		out := arith.Matrix{Rows: mm.Rows, Cols: mm.Cols, Data: dst}
		return e.MatrixScalarTo(out, mm, float64(scalar), op.Code(operation), reverse != 0)
	})
}

//export ArithOperateOnMatrices
func ArithOperateOnMatrices(a *C.double, aRows, aCols C.int, b *C.double, bRows, bCols C.int, operation C.int, status *C.int) *C.double {
	ma, err := cMatrix(a, aRows, aCols)
	if err != nil {
		return fail(status, err)
	}
	mb, err := cMatrix(b, bRows, bCols)
	if err != nil {
		return fail(status, err)
	}
	if !ma.SameShape(mb) {
		return fail(status, fmt.Errorf("%w: matrix %dx%d vs %dx%d", arith.ErrShapeMismatch, ma.Rows, ma.Cols, mb.Rows, mb.Cols))
	}

	return run(status, ma.Len(), func(e *arith.Engine, dst []float64) error {
		out := arith.Matrix{Rows: ma.Rows, Cols: ma.Cols, Data: dst}
		return e.MatricesTo(out, ma, mb, op.Code(operation))
	})
}

//export ArithOperateUnaryMatrix
func ArithOperateUnaryMatrix(m *C.double, rows, cols C.int, operation C.int, status *C.int) *C.double {
	mm, err := cMatrix(m, rows, cols)
	if err != nil {
		return fail(status, err)
	}

	return run(status, mm.Len(), func(e *arith.Engine, dst []float64) error {
		out := arith.Matrix{Rows: mm.Rows, Cols: mm.Cols, Data: dst}
		return e.UnaryMatrixTo(out, mm, op.Code(operation))
	})
}

//export ArithFree
func ArithFree(p *C.double) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}

//export ArithStatusText
func ArithStatusText(code C.int) *C.char {
	return C.CString(boundary.StatusText(int(code)))
}

//export ArithFreeString
func ArithFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

//export ArithSetStrict
func ArithSetStrict(strict C.int) {
	session.SetStrict(strict != 0)
}

func main() {}
