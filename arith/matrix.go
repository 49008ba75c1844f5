package arith

import "fmt"

// Matrix is a rows × cols grid stored as one contiguous row-major block:
// element (i, j) is Data[i*Cols+j]. A valid Matrix has len(Data) == Rows*Cols.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix returns a zero-filled rows × cols matrix.
func NewMatrix(rows, cols int) (Matrix, error) {
	n, err := elements(rows, cols)
	if err != nil {
		return Matrix{}, err
	}

	data, err := defaultEngine.alloc(n)
	if err != nil {
		return Matrix{}, err
	}
	return Matrix{Rows: rows, Cols: cols, Data: data}, nil
}

// MatrixOf wraps data without copying. It reports ErrShapeMismatch if
// len(data) is not rows*cols.
func MatrixOf(rows, cols int, data []float64) (Matrix, error) {
	m := Matrix{Rows: rows, Cols: cols, Data: data}
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}
	return m, nil
}

// MatrixFromRows copies a slice of equally long rows into a Matrix.
// Ragged input is reported as ErrShapeMismatch.
func MatrixFromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{Data: []float64{}}, nil
	}

	cols := len(rows[0])
	m, err := NewMatrix(len(rows), cols)
	if err != nil {
		return Matrix{}, err
	}

	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), cols)
		}
		copy(m.Data[i*cols:], row)
	}
	return m, nil
}

// Validate checks the dimensions against the backing slice.
func (m Matrix) Validate() error {
	n, err := elements(m.Rows, m.Cols)
	if err != nil {
		return err
	}
	if len(m.Data) != n {
		return fmt.Errorf("%w: %dx%d matrix backed by %d elements", ErrShapeMismatch, m.Rows, m.Cols, len(m.Data))
	}
	return nil
}

// Len returns the number of elements.
func (m Matrix) Len() int {
	return m.Rows * m.Cols
}

// SameShape reports whether m and other have equal dimensions.
func (m Matrix) SameShape(other Matrix) bool {
	return m.Rows == other.Rows && m.Cols == other.Cols
}

// At returns element (i, j). It panics if the indices are out of range.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		panic(fmt.Sprintf("arith: index (%d, %d) out of range for %dx%d matrix", i, j, m.Rows, m.Cols))
	}
	return m.Data[i*m.Cols+j]
}

// Row returns row i as a view into Data.
func (m Matrix) Row(i int) []float64 {
	return m.Data[i*m.Cols : (i+1)*m.Cols : (i+1)*m.Cols]
}

// ToRows copies the matrix into a slice of rows.
func (m Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.Rows)
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}
	return out
}
