// Package trainers provides the two training schedules for an Engine: SimpleTrainer, with a
// learning rate that decays linearly, and DynamicTrainer, with an adaptive learning rate and
// momentum.
//
// Both draw mini-batches as Windows over a pool of samples that they shuffle in place. The pool is
// shuffled at the start of every call to Train; once the next batch would run past the end of the
// pool, drawing starts again from the beginning, with SimpleTrainer always reshuffling first and
// DynamicTrainer only doing so one time in five.
package trainers

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/osushkov/vectornn"
	"github.com/osushkov/vectornn/layered"
)

// Trainer trains an Engine for a fixed number of iterations using the given pool of samples, which
// may be reordered. An error is returned only if a gradient could not be computed; no further
// updates are made after that.
//
// Train panics if the pool is empty or the number of iterations is not positive.
type Trainer interface {
	Train(net vectornn.Engine, pool []vectornn.Sample, iterations int) error
}

// schedule is the state of a single call to Train
type schedule interface {
	// rate returns the learning rate for the given iteration
	rate(iter int) float32

	// delta converts the gradient into the update to apply; grad may be modified
	delta(grad *layered.Set, rate float32) *layered.Set

	// observe is given the error of each iteration, after the update has been applied
	observe(err float32)

	// reshuffle returns whether the pool should be shuffled before starting from its beginning
	// again
	reshuffle(rng *rand.Rand) bool
}

// common is the configuration shared by both Trainers
type common struct {
	batchSize int
	rng       *rand.Rand

	status func(Result)
	every  int
}

func newCommon(batchSize int) common {
	return common{batchSize: batchSize, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (c *common) seed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

func (c *common) setStatus(every int, f func(Result)) {
	if f != nil && every < 1 {
		panic(errors.Errorf("Status interval must be at least 1 (got %d)", every))
	}

	c.status, c.every = f, every
}

func (c *common) train(net vectornn.Engine, pool []vectornn.Sample, iterations int, s schedule) error {
	if net == nil {
		panic(errors.New("Engine is nil"))
	} else if len(pool) == 0 {
		panic(vectornn.ErrEmptyPool)
	} else if iterations < 1 {
		panic(errors.Errorf("Number of iterations must be at least 1 (got %d)", iterations))
	}

	b := newBatcher(pool, c.batchSize, c.rng, s.reshuffle)

	var prog progress
	for i := 0; i < iterations; i++ {
		start := time.Now()
		rate := s.rate(i)

		grad, cost, err := net.ComputeGradient(b.next())
		if err != nil {
			return errors.Wrapf(err, "Training stopped at iteration %d", i)
		}

		net.ApplyUpdate(s.delta(grad, rate))
		s.observe(cost)

		prog.record(cost, rate, time.Since(start))
		if c.status != nil && (i+1)%c.every == 0 {
			c.status(prog.snapshot(i + 1))
		}
	}

	return nil
}

// batcher hands out consecutive Windows over the pool
type batcher struct {
	pool      []vectornn.Sample
	size      int
	offset    int
	rng       *rand.Rand
	reshuffle func(*rand.Rand) bool
}

func newBatcher(pool []vectornn.Sample, batchSize int, rng *rand.Rand, reshuffle func(*rand.Rand) bool) *batcher {
	if batchSize > len(pool) {
		batchSize = len(pool)
	}

	b := &batcher{pool: pool, size: batchSize, rng: rng, reshuffle: reshuffle}
	b.shuffle()
	return b
}

func (b *batcher) shuffle() {
	b.rng.Shuffle(len(b.pool), func(i, j int) {
		b.pool[i], b.pool[j] = b.pool[j], b.pool[i]
	})
}

func (b *batcher) next() vectornn.Window {
	if b.offset+b.size > len(b.pool) {
		if b.reshuffle(b.rng) {
			b.shuffle()
		}
		b.offset = 0
	}

	w := vectornn.NewWindow(b.pool, b.size, b.offset)
	b.offset += b.size
	return w
}
