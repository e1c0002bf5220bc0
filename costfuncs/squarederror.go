package costfuncs

type squaredError int8

// SquaredError returns the summed squared error cost function: the sum over all outputs of
// (out - target)^2. Unlike a mean, it is not divided by the number of outputs.
//
// Derivs gives out - target. This is the output error term used by the network for backpropagation
// through a logistic output layer, and is intentionally not the derivative of Cost itself (which
// would be 2*(out - target)*out*(1 - out)).
func SquaredError() squaredError {
	return squaredError(0)
}

func (s squaredError) TypeString() string {
	return "squared-error"
}

func (s squaredError) Cost(outs, targets []float32) float32 {
	var sum float32
	for i := range outs {
		d := outs[i] - targets[i]
		sum += d * d
	}

	return sum
}

func (s squaredError) Derivs(outs, targets, ds []float32) {
	for i := range outs {
		ds[i] = outs[i] - targets[i]
	}
}
