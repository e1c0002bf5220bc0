package executor

import (
	"runtime"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

func TestSubmitResults(t *testing.T) {
	p := New(Options{Workers: 3})
	defer p.Close()

	fs := make([]*Future[int], 50)
	for i := range fs {
		i := i
		fs[i] = Submit(p, func() (int, error) { return i * i, nil })
	}

	for i, f := range fs {
		v, err := f.Wait()
		if err != nil {
			t.Fatalf("task %d failed: %v", i, err)
		} else if v != i*i {
			t.Fatalf("task %d: got %d, want %d", i, v, i*i)
		}
	}

	if s := p.Stats(); s.Submitted != 50 || s.Failed != 0 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestTaskFailures(t *testing.T) {
	p := New(Options{Workers: 1})
	defer p.Close()

	cause := errors.New("bad input")

	tests := []struct {
		name string
		work func() (string, error)
	}{
		{"error", func() (string, error) { return "", cause }},
		{"panic", func() (string, error) { panic("boom") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := Submit(p, tc.work)
			_, err := f.Wait()

			var te *TaskError
			if !errors.As(err, &te) {
				t.Fatalf("expected *TaskError, got %v", err)
			} else if te.ID != f.ID() {
				t.Fatalf("error has id %s, future has %s", te.ID, f.ID())
			}
		})
	}

	// the worker must survive a panicking task
	if v, err := Submit(p, func() (int, error) { return 7, nil }).Wait(); err != nil || v != 7 {
		t.Fatalf("pool unusable after panic: %v, %v", v, err)
	}
}

func TestCloseFailsPending(t *testing.T) {
	p := New(Options{Workers: 1})

	started, release := make(chan struct{}), make(chan struct{})
	running := Submit(p, func() (int, error) {
		close(started)
		<-release
		return 1, nil
	})
	<-started

	pending := Submit(p, func() (int, error) { return 2, nil })

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		p.Close()
		wg.Done()
	}()

	for !p.closed.Load() {
		runtime.Gosched()
	}
	close(release)
	wg.Wait()

	if v, err := running.Wait(); err != nil || v != 1 {
		t.Fatalf("running task: got %v, %v", v, err)
	}

	if _, err := pending.Wait(); !errors.Is(err, ErrShutdown) {
		t.Fatalf("pending task: expected ErrShutdown, got %v", err)
	}

	if _, err := Submit(p, func() (int, error) { return 3, nil }).Wait(); !errors.Is(err, ErrShutdown) {
		t.Fatalf("submit after close: expected ErrShutdown, got %v", err)
	}

	if s := p.Stats(); s.Abandoned != 2 {
		t.Fatalf("expected 2 abandoned tasks, got %+v", s)
	}

	// again, for idempotence
	p.Close()
}

func TestRejectPolicy(t *testing.T) {
	p := New(Options{Workers: 1, QueueSize: 1, Policy: Reject})
	defer p.Close()

	started, release := make(chan struct{}), make(chan struct{})
	blocker := Submit(p, func() (int, error) {
		close(started)
		<-release
		return 0, nil
	})
	<-started

	queued := Submit(p, func() (int, error) { return 1, nil })
	rejected := Submit(p, func() (int, error) { return 2, nil })

	if _, err := rejected.Wait(); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	close(release)
	if _, err := blocker.Wait(); err != nil {
		t.Fatal(err)
	}
	if v, err := queued.Wait(); err != nil || v != 1 {
		t.Fatalf("queued task: got %v, %v", v, err)
	}
}

func TestDefaults(t *testing.T) {
	p := New(Options{})
	defer p.Close()

	if p.Workers() != DefaultWorkers() || p.Workers() < 1 {
		t.Fatalf("got %d workers, want %d", p.Workers(), DefaultWorkers())
	}
	if cap(p.tasks) != DefaultQueueSize {
		t.Fatalf("got queue size %d", cap(p.tasks))
	}
}
