package optimizers

import (
	"github.com/osushkov/vectornn/layered"
)

type gradientdescent int8

// GradientDescent returns plain stochastic gradient descent: the update is -learningRate * grad.
func GradientDescent() gradientdescent {
	return gradientdescent(0)
}

// Step turns the gradient into the update to apply, in place, and returns it.
func (g gradientdescent) Step(grad *layered.Set, learningRate float32) *layered.Set {
	return grad.ScaleInPlace(-learningRate)
}
