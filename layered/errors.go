package layered

import "fmt"

// Error is a wrapper for errors that need no additional information. They are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	ErrDivideByZero = Error{"Division of matrix set by zero"}
	ErrEmptyMatrix  = Error{"Matrix must have at least one row and one column"}
)

// ShapeMismatchError is panicked when two matrix sets, or two of their layers, do not have the same
// dimensions.
type ShapeMismatchError struct {
	// Layer is the index of the first differing layer, or -1 if the number of layers differs.
	Layer int

	// the shapes given, as {rows, cols}. If Layer is -1, only the first element of each is set, as
	// the number of layers
	A, B [2]int
}

func (err ShapeMismatchError) Error() string {
	if err.Layer < 0 {
		return fmt.Sprintf("Layer count mismatch (%d != %d)", err.A[0], err.B[0])
	}

	return fmt.Sprintf("Shape mismatch at layer %d (%dx%d != %dx%d)", err.Layer, err.A[0], err.A[1], err.B[0], err.B[1])
}

// IndexError is panicked on an out-of-range index.
type IndexError struct {
	Index, Len int
}

func (err IndexError) Error() string {
	return fmt.Sprintf("Index %d out of range [0, %d)", err.Index, err.Len)
}
