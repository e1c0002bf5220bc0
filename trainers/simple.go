package trainers

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/osushkov/vectornn"
	"github.com/osushkov/vectornn/hyperparams"
	"github.com/osushkov/vectornn/layered"
	"github.com/osushkov/vectornn/optimizers"
)

// SimpleTrainer uses plain gradient descent, with a learning rate that decreases linearly from a
// start rate at the first iteration towards an end rate at the last.
type SimpleTrainer struct {
	common
	start, end float32
}

func checkSimple(start, end float32, batchSize int) error {
	if !(start > end) {
		return errors.Errorf("Start rate must be greater than end rate (%v <= %v)", start, end)
	} else if end < 0 {
		return errors.Errorf("End rate must not be negative (got %v)", end)
	} else if batchSize < 1 {
		return errors.Errorf("Batch size must be at least 1 (got %d)", batchSize)
	}

	return nil
}

// NewSimple returns a SimpleTrainer. It panics unless start > end ≥ 0 and batchSize ≥ 1.
func NewSimple(start, end float32, batchSize int) *SimpleTrainer {
	if err := checkSimple(start, end, batchSize); err != nil {
		panic(err)
	}

	return &SimpleTrainer{newCommon(batchSize), start, end}
}

// Seed sets the seed used for shuffling, returning the same Trainer
func (t *SimpleTrainer) Seed(seed int64) *SimpleTrainer {
	t.seed(seed)
	return t
}

// Status sets a function to be called with a Result after every 'every' iterations, returning the
// same Trainer. A nil function disables it.
func (t *SimpleTrainer) Status(every int, f func(Result)) *SimpleTrainer {
	t.setStatus(every, f)
	return t
}

func (t *SimpleTrainer) Train(net vectornn.Engine, pool []vectornn.Sample, iterations int) error {
	return t.train(net, pool, iterations, &simpleSchedule{
		lr:  hyperparams.Linear(t.start, t.end, iterations),
		opt: optimizers.GradientDescent(),
	})
}

type simpleSchedule struct {
	lr interface {
		Value(int) float32
	}
	opt interface {
		Step(*layered.Set, float32) *layered.Set
	}
}

func (s *simpleSchedule) rate(iter int) float32 {
	return s.lr.Value(iter)
}

func (s *simpleSchedule) delta(grad *layered.Set, rate float32) *layered.Set {
	return s.opt.Step(grad, rate)
}

func (s *simpleSchedule) observe(float32) {}

func (s *simpleSchedule) reshuffle(*rand.Rand) bool {
	return true
}
