package arith

// Transpose returns a new cols × rows matrix with result(j, i) = m(i, j).
func Transpose(m Matrix) (Matrix, error) {
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}

	out, err := NewMatrix(m.Cols, m.Rows)
	if err != nil {
		return Matrix{}, err
	}

	for i := 0; i < m.Rows; i++ {
		row := m.Row(i)
		for j, x := range row {
			out.Data[j*m.Rows+i] = x
		}
	}
	return out, nil
}
