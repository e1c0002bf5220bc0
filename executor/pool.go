// Package executor provides Pool, a fixed set of worker goroutines consuming a bounded queue of
// tasks, with results delivered through Futures.
//
// A Pool is created explicitly and must be closed by its owner. Closing a Pool stops the workers
// once their current task is finished; any tasks still queued at that point fail with ErrShutdown.
package executor

import (
	"runtime"
	"sync"

	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// DefaultQueueSize is the capacity of the task queue if none is given in Options
const DefaultQueueSize int = 128

// Policy determines what Submit does when the queue is full
type Policy int8

const (
	// Block makes Submit wait until there is room in the queue
	Block Policy = iota
	// Reject makes Submit fail the task immediately with ErrQueueFull
	Reject
)

// Options are the arguments to New. The zero value gives a Pool with DefaultWorkers workers, a
// queue of DefaultQueueSize, and the Block policy.
type Options struct {
	Workers   int
	QueueSize int
	Policy    Policy
}

// DefaultWorkers returns the number of logical cores available, as reported by cpuid, or
// runtime.NumCPU if that is unknown.
func DefaultWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}

	return runtime.NumCPU()
}

type task struct {
	run  func() error
	fail func(error)
}

// Pool is a fixed-size set of workers. All methods are safe for concurrent use.
type Pool struct {
	tasks  chan task
	quit   chan struct{}
	policy Policy

	numWorkers int
	wg         sync.WaitGroup

	// held for reading while submitting, and for writing while shutting down, so that no task can
	// be enqueued after the queue has been drained
	mux    sync.RWMutex
	closed atomic.Bool

	submitted, completed, failed, rejected, abandoned atomic.Int64
}

// Stats is a snapshot of the number of tasks in each state. A task that ran and returned an error
// (or panicked) counts as both completed and failed.
type Stats struct {
	Submitted int64
	Completed int64
	Failed    int64

	// tasks turned away by the Reject policy
	Rejected int64

	// tasks submitted after shutdown, or still queued at shutdown
	Abandoned int64
}

// New starts a Pool with the given options. It panics if Workers or QueueSize is negative.
func New(opts Options) *Pool {
	if opts.Workers < 0 || opts.QueueSize < 0 {
		panic(errors.Errorf("Invalid executor options: %+v", opts))
	}

	if opts.Workers == 0 {
		opts.Workers = DefaultWorkers()
	}
	if opts.QueueSize == 0 {
		opts.QueueSize = DefaultQueueSize
	}

	p := &Pool{
		tasks:      make(chan task, opts.QueueSize),
		quit:       make(chan struct{}),
		policy:     opts.Policy,
		numWorkers: opts.Workers,
	}

	p.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go p.work()
	}

	return p
}

// Workers returns the number of worker goroutines
func (p *Pool) Workers() int {
	return p.numWorkers
}

func (p *Pool) Stats() Stats {
	return Stats{
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
		Rejected:  p.rejected.Load(),
		Abandoned: p.abandoned.Load(),
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for {
		select {
		case <-p.quit:
			return
		case t := <-p.tasks:
			// select picks randomly when both are ready; queued tasks never start after shutdown
			if p.closed.Load() {
				p.abandon(t)
				continue
			}

			if err := t.run(); err != nil {
				p.failed.Inc()
			}
			p.completed.Inc()
		}
	}
}

func (p *Pool) abandon(t task) {
	p.abandoned.Inc()
	t.fail(ErrShutdown)
}

func (p *Pool) enqueue(t task) {
	p.mux.RLock()
	defer p.mux.RUnlock()

	if p.closed.Load() {
		p.abandon(t)
		return
	}

	if p.policy == Reject {
		select {
		case p.tasks <- t:
			p.submitted.Inc()
		default:
			p.rejected.Inc()
			t.fail(ErrQueueFull)
		}
		return
	}

	p.tasks <- t
	p.submitted.Inc()
}

// Close stops the Pool. Running tasks are allowed to finish, and Close waits for them; tasks still
// in the queue are failed with ErrShutdown. Calling Close more than once has no additional effect.
func (p *Pool) Close() {
	p.mux.Lock()
	if p.closed.Load() {
		p.mux.Unlock()
		return
	}
	p.closed.Store(true)
	p.mux.Unlock()

	close(p.quit)
	p.wg.Wait()

	for {
		select {
		case t := <-p.tasks:
			p.abandon(t)
		default:
			return
		}
	}
}

// Submit adds 'work' to the queue of the Pool, returning a Future for its result. Errors returned
// by 'work', panics within it, and failures from the Pool itself are all given as a *TaskError by
// the Future.
//
// With the Block policy, Submit waits while the queue is full.
func Submit[T any](p *Pool, work func() (T, error)) *Future[T] {
	f := newFuture[T]()

	t := task{
		run: func() error {
			v, err := safely(work)
			if err != nil {
				err = &TaskError{f.id, err}
			}

			f.resolve(v, err)
			return err
		},
		fail: func(err error) {
			var zero T
			f.resolve(zero, &TaskError{f.id, err})
		},
	}

	p.enqueue(t)
	return f
}

func safely[T any](work func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("Task panicked: %v", r)
		}
	}()

	return work()
}
