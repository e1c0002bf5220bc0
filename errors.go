package vectornn

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrTooFewLayers = Error{"Network must have at least two layers"}
	ErrEmptyLayer   = Error{"Layer size must be greater than zero"}
	ErrEmptyBatch   = Error{"Cannot compute gradient over zero samples"}
	ErrEmptyPool    = Error{"Sample pool is empty"}
)

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError is the result of a slice given to the Network not having the length it
// requires -- either an input or an expected output.
type SizeMismatchError struct {
	// what was mismatched; e.g. "input"
	Of string

	Got, Want int
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Size mismatch for %s (%d != %d)", err.Of, err.Got, err.Want)
}
