package executor

import (
	"github.com/google/uuid"
)

// Future is the pending result of a task submitted to a Pool. It is resolved exactly once, either
// by the task running or by the Pool failing it.
type Future[T any] struct {
	id   uuid.UUID
	done chan struct{}

	val T
	err error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{id: uuid.New(), done: make(chan struct{})}
}

func (f *Future[T]) resolve(v T, err error) {
	f.val, f.err = v, err
	close(f.done)
}

// ID returns the unique identifier of the task, which is also used in any TaskError it fails
// with.
func (f *Future[T]) ID() uuid.UUID {
	return f.id
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the task has finished (or failed), and returns its result.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}
