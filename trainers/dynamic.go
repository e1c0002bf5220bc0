package trainers

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/osushkov/vectornn"
	"github.com/osushkov/vectornn/hyperparams"
	"github.com/osushkov/vectornn/layered"
	"github.com/osushkov/vectornn/optimizers"
)

// DynamicTrainer uses gradient descent with momentum, and a learning rate that grows while the
// batch error keeps falling (up to a maximum) and shrinks otherwise. See hyperparams.Adaptive and
// optimizers.Momentum.
type DynamicTrainer struct {
	common
	start, max, momentum float32
}

// 1 in reshuffleOdds wraparounds of the sample pool reshuffle it
const reshuffleOdds = 5

func checkDynamic(start, max, momentum float32, batchSize int) error {
	if !(start > 0) {
		return errors.Errorf("Start rate must be positive (got %v)", start)
	} else if !(max > 0) {
		return errors.Errorf("Max rate must be positive (got %v)", max)
	} else if momentum < 0 || momentum >= 1 {
		return errors.Errorf("Momentum must be in [0, 1) (got %v)", momentum)
	} else if batchSize < 1 {
		return errors.Errorf("Batch size must be at least 1 (got %d)", batchSize)
	}

	return nil
}

// NewDynamic returns a DynamicTrainer. It panics unless both rates are positive, momentum is in
// [0, 1), and batchSize ≥ 1.
func NewDynamic(start, max, momentum float32, batchSize int) *DynamicTrainer {
	if err := checkDynamic(start, max, momentum, batchSize); err != nil {
		panic(err)
	}

	return &DynamicTrainer{newCommon(batchSize), start, max, momentum}
}

// Seed sets the seed used for shuffling, returning the same Trainer
func (t *DynamicTrainer) Seed(seed int64) *DynamicTrainer {
	t.seed(seed)
	return t
}

// Status sets a function to be called with a Result after every 'every' iterations, returning the
// same Trainer. A nil function disables it.
func (t *DynamicTrainer) Status(every int, f func(Result)) *DynamicTrainer {
	t.setStatus(every, f)
	return t
}

// Train runs the schedule from its starting rate, with no momentum carried over from earlier calls.
func (t *DynamicTrainer) Train(net vectornn.Engine, pool []vectornn.Sample, iterations int) error {
	return t.train(net, pool, iterations, &dynamicSchedule{
		lr:  hyperparams.Adaptive(t.start, t.max),
		opt: optimizers.Momentum(t.momentum),
	})
}

type dynamicSchedule struct {
	lr interface {
		Value(int) float32
		Observe(float32)
	}
	opt interface {
		Step(*layered.Set, float32) *layered.Set
	}
}

func (s *dynamicSchedule) rate(iter int) float32 {
	return s.lr.Value(iter)
}

func (s *dynamicSchedule) delta(grad *layered.Set, rate float32) *layered.Set {
	return s.opt.Step(grad, rate)
}

func (s *dynamicSchedule) observe(err float32) {
	s.lr.Observe(err)
}

func (s *dynamicSchedule) reshuffle(rng *rand.Rand) bool {
	return rng.Intn(reshuffleOdds) == 0
}
