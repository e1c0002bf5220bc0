package layered

import (
	"gonum.org/v1/gonum/blas/blas32"
)

// Matrix is a dense, row-major matrix of float32 values. Its dimensions are fixed at creation.
//
// For the layers of a network, column 0 holds the bias weight of each row and the remaining columns
// the weights from each value of the previous layer. Bias and Kernel give views of those parts.
type Matrix struct {
	rows, cols int
	data       []float32
}

// NewMatrix returns a zero-filled matrix with the given dimensions. It panics if either is less
// than 1.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 1 || cols < 1 {
		panic(ErrEmptyMatrix)
	}

	return &Matrix{rows, cols, make([]float32, rows*cols)}
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

// Data returns the backing slice of the matrix, stored row by row. Changes to it change the
// matrix.
func (m *Matrix) Data() []float32 {
	return m.data
}

func (m *Matrix) index(r, c int) int {
	if r < 0 || r >= m.rows {
		panic(IndexError{r, m.rows})
	} else if c < 0 || c >= m.cols {
		panic(IndexError{c, m.cols})
	}

	return r*m.cols + c
}

func (m *Matrix) At(r, c int) float32 {
	return m.data[m.index(r, c)]
}

func (m *Matrix) Set(r, c int, v float32) {
	m.data[m.index(r, c)] = v
}

// Row returns the given row, sharing storage with the matrix.
func (m *Matrix) Row(r int) []float32 {
	i := m.index(r, 0)
	return m.data[i : i+m.cols : i+m.cols]
}

// Kernel returns the matrix without its first column, sharing storage. It panics if the matrix
// only has one column.
func (m *Matrix) Kernel() blas32.General {
	if m.cols < 2 {
		panic(ErrEmptyMatrix)
	}

	return blas32.General{Rows: m.rows, Cols: m.cols - 1, Stride: m.cols, Data: m.data[1:]}
}

// Bias returns the first column of the matrix as a strided vector, sharing storage.
func (m *Matrix) Bias() blas32.Vector {
	return blas32.Vector{N: m.rows, Inc: m.cols, Data: m.data}
}

func (m *Matrix) vector() blas32.Vector {
	return blas32.Vector{N: len(m.data), Inc: 1, Data: m.data}
}

func (m *Matrix) shape() [2]int {
	return [2]int{m.rows, m.cols}
}

func (m *Matrix) Clone() *Matrix {
	c := &Matrix{m.rows, m.cols, make([]float32, len(m.data))}
	copy(c.data, m.data)
	return c
}
