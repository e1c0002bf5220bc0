package vectornn

import (
	"github.com/osushkov/vectornn/layered"
)

// Engine is the part of a Network used for training. *Network implements Engine.
type Engine interface {
	// Process returns the output of the network for the given input.
	Process(input []float32) []float32

	// ComputeGradient returns the gradient of the weights, averaged over all samples from the
	// Provider, and the average squared error of those samples. It fails only if the gradient
	// could not be computed, in which case no partial result is given.
	ComputeGradient(Provider) (*layered.Set, float32, error)

	// ApplyUpdate adds the given set to the weights.
	ApplyUpdate(delta *layered.Set)
}

// Provider gives random access to a fixed number of samples. It must be safe to call Get
// concurrently.
type Provider interface {
	Len() int
	Get(int) Sample
}

// Initializer sets the initial values of the weights of a Network; it is given the full matrix
// for each layer, biases included. The subpackage "initializers" provides implementations.
type Initializer interface {
	Set(ws []float32)
}

// Activation is an elementwise function applied to each layer's values.
type Activation interface {
	TypeString() string

	Value(x float32) float32

	// Deriv gives the derivative, given the value of the function (not its input)
	Deriv(v float32) float32
}

// CostFunction measures the error of the outputs of the Network. Cost and Derivs can assume that
// all slices have the same length.
type CostFunction interface {
	TypeString() string

	Cost(outs, targets []float32) float32

	// Derivs sets ds to the error term of each output
	Derivs(outs, targets, ds []float32)
}
