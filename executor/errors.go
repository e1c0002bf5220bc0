package executor

import (
	"fmt"

	"github.com/google/uuid"
)

// Error is a wrapper for errors that need no additional information.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

var (
	// ErrShutdown is the cause of failure for any task that was submitted after Close, or that was
	// still queued when Close was called.
	ErrShutdown = Error{"Could not perform task before pool shutdown"}

	// ErrQueueFull is the cause of failure for tasks submitted to a full queue with the Reject
	// policy.
	ErrQueueFull = Error{"Task queue is full"}
)

// TaskError records the failure of a single task, identified by the ID of its Future.
type TaskError struct {
	ID  uuid.UUID
	Err error
}

func (err *TaskError) Error() string {
	return fmt.Sprintf("task %s: %v", err.ID, err.Err)
}

func (err *TaskError) Unwrap() error { return err.Err }

// Cause allows github.com/pkg/errors.Cause to see through a TaskError
func (err *TaskError) Cause() error { return err.Err }
