package optimizers

import (
	"github.com/osushkov/vectornn/layered"
)

type momentum struct {
	factor   float32
	velocity *layered.Set
}

// Momentum returns gradient descent with momentum, where each update is a running blend of the
// previous update and the new step:
//
//		v = factor*v + (1 - factor)*(-learningRate * grad)
//
// The first update after creation (or Reset) is just -learningRate * grad.
//
// Momentum panics if factor is not in [0, 1).
func Momentum(factor float32) *momentum {
	if factor < 0 || factor >= 1 {
		panic("momentum factor outside of [0, 1)")
	}

	return &momentum{factor: factor}
}

// Step returns the update to apply. 'grad' is used as scratch space and should not be used
// afterwards. The returned set is owned by the optimizer, and is only valid until the next call.
func (m *momentum) Step(grad *layered.Set, learningRate float32) *layered.Set {
	step := grad.ScaleInPlace(-learningRate)

	if m.velocity == nil {
		m.velocity = step.Clone()
		return m.velocity
	}

	m.velocity.ScaleInPlace(m.factor).AddScaledInPlace(1-m.factor, step)
	return m.velocity
}

// Reset forgets the previous update.
func (m *momentum) Reset() {
	m.velocity = nil
}
