package vectornn

import (
	"github.com/osushkov/vectornn/executor"
	"github.com/osushkov/vectornn/layered"
)

// Network is a fully-connected feedforward network. The shapes of its weights are fixed at
// creation.
//
// Process and ComputeGradient only read the weights, and may be called concurrently with each
// other. ApplyUpdate and LoadWeights must not overlap with any other method.
type Network struct {
	// the number of values in each layer, from input to output
	sizes []int

	// one matrix for each pair of adjacent layers; layer i has sizes[i+1] rows and sizes[i]+1
	// columns
	weights *layered.Set

	act  Activation
	cost CostFunction

	// where gradient computations are run. Not owned by the Network
	pool *executor.Pool
}

// Sample is a single training or testing example
type Sample struct {
	// Input is the input to the network. It must have the same size as the network's input layer.
	Input []float32

	// Output is the expected output of the network, given the input.
	Output []float32
}

// Fits indicates whether or not the dimensions of the Sample match those of the Network
func (s Sample) Fits(net *Network) bool {
	return len(s.Input) == net.InputSize() && len(s.Output) == net.OutputSize()
}

// scratch is the working memory for a single forward and backward pass. Every pass that may run
// concurrently has its own.
type scratch struct {
	// the values of each layer; acts[0] is the input
	acts [][]float32

	// the error terms of each non-input layer; deltas[i] corresponds to acts[i+1]
	deltas [][]float32
}

func (net *Network) newScratch() *scratch {
	s := &scratch{
		acts:   make([][]float32, len(net.sizes)),
		deltas: make([][]float32, len(net.sizes)-1),
	}

	for i, size := range net.sizes {
		s.acts[i] = make([]float32, size)
		if i > 0 {
			s.deltas[i-1] = make([]float32, size)
		}
	}

	return s
}
