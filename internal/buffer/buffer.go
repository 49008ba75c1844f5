package buffer

import "github.com/cwbudde/algo-arith/arith"

// Buffer is one contiguous block of results with the shape it was produced
// in. A vector has Rows == Len() and Cols == 0; a matrix is row-major.
type Buffer struct {
	data   []float64
	rows   int
	cols   int
	matrix bool
}

// New returns a zero-filled vector Buffer of n elements.
func New(n int) *Buffer {
	b := &Buffer{}
	b.Reshape(n)
	return b
}

// NewMatrix returns a zero-filled rows × cols Buffer.
func NewMatrix(rows, cols int) *Buffer {
	b := &Buffer{}
	b.ReshapeMatrix(rows, cols)
	return b
}

// Data returns the backing elements.
func (b *Buffer) Data() []float64 {
	return b.data
}

// Len returns the number of elements.
func (b *Buffer) Len() int {
	return len(b.data)
}

// IsMatrix reports whether the Buffer holds a matrix.
func (b *Buffer) IsMatrix() bool {
	return b.matrix
}

// Shape returns (n, 0) for a vector and (rows, cols) for a matrix.
func (b *Buffer) Shape() (rows, cols int) {
	return b.rows, b.cols
}

// Matrix views the Buffer as an arith.Matrix sharing its memory. A vector
// Buffer is viewed as a single row.
func (b *Buffer) Matrix() arith.Matrix {
	if !b.matrix {
		return arith.Matrix{Rows: 1, Cols: len(b.data), Data: b.data}
	}
	return arith.Matrix{Rows: b.rows, Cols: b.cols, Data: b.data}
}

// Reshape turns b into a vector of n elements, reusing its capacity.
// Elements beyond the previous length are zeroed.
func (b *Buffer) Reshape(n int) {
	if n < 0 {
		n = 0
	}
	b.resize(n)
	b.rows, b.cols, b.matrix = n, 0, false
}

// ReshapeMatrix turns b into a rows × cols matrix, reusing its capacity.
// Negative dimensions are treated as zero.
func (b *Buffer) ReshapeMatrix(rows, cols int) {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	b.resize(rows * cols)
	b.rows, b.cols, b.matrix = rows, cols, true
}

func (b *Buffer) resize(n int) {
	oldLen := len(b.data)
	if n <= cap(b.data) {
		b.data = b.data[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.data)
		b.data = s
	}
	// The backing array may hold values from an earlier result.
	for i := oldLen; i < n; i++ {
		b.data[i] = 0
	}
}

// Zero sets all elements to 0.
func (b *Buffer) Zero() {
	for i := range b.data {
		b.data[i] = 0
	}
}
