// Package layered provides Set, an ordered list of dense float32 matrices -- one per connection
// between layers of a network -- with elementwise arithmetic over the whole list.
//
// The same type is used for the weights of a network, its gradients, and the updates applied to
// it. All binary operations require both sets to have the same number of layers and the same
// dimensions at every layer; a mismatch is a programming error and panics with a
// ShapeMismatchError.
package layered

import (
	"gonum.org/v1/gonum/blas/blas32"
)

// Set is an ordered list of matrices. The zero value is an empty set, ready to be appended to.
type Set struct {
	layers []*Matrix
}

// New returns a set of the given matrices, in order. The matrices are not copied.
func New(layers ...*Matrix) *Set {
	s := &Set{make([]*Matrix, 0, len(layers))}
	for _, m := range layers {
		s.Append(m)
	}

	return s
}

// Append adds a matrix to the end of the set. It panics if m is nil.
func (s *Set) Append(m *Matrix) {
	if m == nil {
		panic(ErrEmptyMatrix)
	}

	s.layers = append(s.layers, m)
}

func (s *Set) Len() int {
	return len(s.layers)
}

// Layer returns the matrix at index i. It panics with an IndexError if i is out of range.
func (s *Set) Layer(i int) *Matrix {
	if i < 0 || i >= len(s.layers) {
		panic(IndexError{i, len(s.layers)})
	}

	return s.layers[i]
}

// SetLayer replaces the matrix at index i. It panics with an IndexError if i is out of range.
func (s *Set) SetLayer(i int, m *Matrix) {
	if i < 0 || i >= len(s.layers) {
		panic(IndexError{i, len(s.layers)})
	} else if m == nil {
		panic(ErrEmptyMatrix)
	}

	s.layers[i] = m
}

// ZerosLike returns a new set with the same shapes as s, filled with zeros.
func (s *Set) ZerosLike() *Set {
	z := &Set{make([]*Matrix, len(s.layers))}
	for i, m := range s.layers {
		z.layers[i] = NewMatrix(m.rows, m.cols)
	}

	return z
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	c := &Set{make([]*Matrix, len(s.layers))}
	for i, m := range s.layers {
		c.layers[i] = m.Clone()
	}

	return c
}

// SameShape returns whether or not o has the same number of layers as s, with the same dimensions
// at each.
func (s *Set) SameShape(o *Set) bool {
	return s.mismatch(o) == nil
}

func (s *Set) mismatch(o *Set) *ShapeMismatchError {
	if len(s.layers) != len(o.layers) {
		return &ShapeMismatchError{Layer: -1, A: [2]int{len(s.layers)}, B: [2]int{len(o.layers)}}
	}

	for i := range s.layers {
		if a, b := s.layers[i].shape(), o.layers[i].shape(); a != b {
			return &ShapeMismatchError{i, a, b}
		}
	}

	return nil
}

func (s *Set) mustMatch(o *Set) {
	if err := s.mismatch(o); err != nil {
		panic(*err)
	}
}

// AddScaledInPlace sets s to s + alpha*o, returning s.
func (s *Set) AddScaledInPlace(alpha float32, o *Set) *Set {
	s.mustMatch(o)
	for i, m := range s.layers {
		blas32.Axpy(alpha, o.layers[i].vector(), m.vector())
	}

	return s
}

// AddInPlace sets s to s + o, returning s.
func (s *Set) AddInPlace(o *Set) *Set {
	return s.AddScaledInPlace(1, o)
}

// SubInPlace sets s to s - o, returning s.
func (s *Set) SubInPlace(o *Set) *Set {
	return s.AddScaledInPlace(-1, o)
}

// ScaleInPlace multiplies every value in s by f, returning s.
func (s *Set) ScaleInPlace(f float32) *Set {
	for _, m := range s.layers {
		blas32.Scal(f, m.vector())
	}

	return s
}

// DivInPlace divides every value in s by d, returning s. It panics with ErrDivideByZero if d is 0.
func (s *Set) DivInPlace(d float32) *Set {
	if d == 0 {
		panic(ErrDivideByZero)
	}

	for _, m := range s.layers {
		for j := range m.data {
			m.data[j] /= d
		}
	}

	return s
}

// Add returns s + o as a new set
func (s *Set) Add(o *Set) *Set {
	s.mustMatch(o)
	return s.Clone().AddInPlace(o)
}

// Sub returns s - o as a new set
func (s *Set) Sub(o *Set) *Set {
	s.mustMatch(o)
	return s.Clone().SubInPlace(o)
}

// Scale returns f*s as a new set
func (s *Set) Scale(f float32) *Set {
	return s.Clone().ScaleInPlace(f)
}

// Div returns s/d as a new set
func (s *Set) Div(d float32) *Set {
	if d == 0 {
		panic(ErrDivideByZero)
	}

	return s.Clone().DivInPlace(d)
}
