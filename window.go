package vectornn

import (
	"github.com/pkg/errors"
)

// Window is a Provider over a fixed-length run of samples from a larger pool, starting at an
// offset and wrapping around to the start of the pool. The samples are not copied; the pool must
// not be changed while the Window is in use.
type Window struct {
	pool           []Sample
	length, offset int
}

// NewWindow returns a Window of 'length' samples from the pool, starting at 'offset'. It panics if
// the pool is empty, if either length or offset is negative, or if length is greater than the size
// of the pool, so that no sample appears twice in one Window.
func NewWindow(pool []Sample, length, offset int) Window {
	if len(pool) == 0 {
		panic(ErrEmptyPool)
	} else if length < 0 || offset < 0 {
		panic(errors.Errorf("Invalid window (length %d, offset %d)", length, offset))
	} else if length > len(pool) {
		panic(errors.Errorf("Window length %d is greater than pool size %d", length, len(pool)))
	}

	return Window{pool, length, offset}
}

// Len returns the number of samples in the Window
func (w Window) Len() int {
	return w.length
}

// Get returns sample i of the Window: pool[(offset + i) % len(pool)]. It panics if i is not in
// the range [0, Len()).
func (w Window) Get(i int) Sample {
	if i < 0 || i >= w.length {
		panic(errors.Errorf("Window index %d out of range [0, %d)", i, w.length))
	}

	return w.pool[(w.offset+i)%len(w.pool)]
}

// Samples is a Provider for a slice of samples, in order
type Samples []Sample

func (s Samples) Len() int          { return len(s) }
func (s Samples) Get(i int) Sample { return s[i] }
