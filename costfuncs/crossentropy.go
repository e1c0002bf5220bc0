package costfuncs

import (
	"github.com/chewxy/math32"
)

// smallest value allowed into the logarithm
const epsilon float32 = 1e-7

type crossEntropy int8

// CrossEntropy returns the binary cross-entropy cost function, summed over all outputs.
//
// For logistic outputs, the derivative of this cost with respect to the pre-activation of each
// output is exactly out - target, which is what Derivs gives. This makes it the cost that the
// network's gradient is the true derivative of.
func CrossEntropy() crossEntropy {
	return crossEntropy(0)
}

func (c crossEntropy) TypeString() string {
	return "cross-entropy"
}

func (c crossEntropy) Cost(outs, targets []float32) float32 {
	var sum float32
	for i := range outs {
		o := clamp(outs[i])
		sum -= targets[i]*math32.Log(o) + (1-targets[i])*math32.Log(1-o)
	}

	return sum
}

func (c crossEntropy) Derivs(outs, targets, ds []float32) {
	for i := range outs {
		ds[i] = outs[i] - targets[i]
	}
}

func clamp(v float32) float32 {
	if v < epsilon {
		return epsilon
	} else if v > 1-epsilon {
		return 1 - epsilon
	}

	return v
}
