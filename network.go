package vectornn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/osushkov/vectornn/costfuncs"
	"github.com/osushkov/vectornn/executor"
	"github.com/osushkov/vectornn/initializers"
	"github.com/osushkov/vectornn/layered"
	"github.com/osushkov/vectornn/operators"
)

// New creates a Network with the given layer sizes, from input to output, whose weights are drawn
// uniformly from ±initializers.DefaultRange.
//
// New panics if pool is nil, if fewer than two sizes are given, or if any size is less than 1.
func New(pool *executor.Pool, sizes []int) *Network {
	return NewWithInitializer(pool, initializers.Uniform(), sizes)
}

// NewWithInitializer is the same as New, but sets the weights with the given Initializer.
func NewWithInitializer(pool *executor.Pool, initializer Initializer, sizes []int) *Network {
	if initializer == nil {
		panic(NilArgError{"Initializer"})
	} else if err := checkSizes(sizes); err != nil {
		panic(err)
	}

	ws := new(layered.Set)
	for i := 1; i < len(sizes); i++ {
		m := layered.NewMatrix(sizes[i], sizes[i-1]+1)
		initializer.Set(m.Data())
		ws.Append(m)
	}

	return newNetwork(pool, ws)
}

// NewFromWeights creates a Network using the given weights, which are not copied. The sizes of the
// layers are taken from the shapes of the matrices, which must be consistent: each matrix must have
// one more column than the previous has rows.
func NewFromWeights(pool *executor.Pool, weights *layered.Set) (*Network, error) {
	if weights == nil {
		return nil, NilArgError{"Weights"}
	} else if weights.Len() == 0 {
		return nil, ErrTooFewLayers
	}

	for i := 1; i < weights.Len(); i++ {
		prev, cur := weights.Layer(i-1), weights.Layer(i)
		if cur.Cols() != prev.Rows()+1 {
			return nil, errors.Errorf("Layer %d has %d columns, expected %d (from %d rows of layer %d)",
				i, cur.Cols(), prev.Rows()+1, prev.Rows(), i-1)
		}
	}

	if weights.Layer(0).Cols() < 2 {
		return nil, ErrEmptyLayer
	}

	return newNetwork(pool, weights), nil
}

func newNetwork(pool *executor.Pool, weights *layered.Set) *Network {
	if pool == nil {
		panic(NilArgError{"Pool"})
	}

	sizes := make([]int, weights.Len()+1)
	sizes[0] = weights.Layer(0).Cols() - 1
	for i := 0; i < weights.Len(); i++ {
		sizes[i+1] = weights.Layer(i).Rows()
	}

	return &Network{
		sizes:   sizes,
		weights: weights,
		act:     operators.Logistic(),
		cost:    costfuncs.SquaredError(),
		pool:    pool,
	}
}

func checkSizes(sizes []int) error {
	if len(sizes) < 2 {
		return ErrTooFewLayers
	}

	for i, s := range sizes {
		if s < 1 {
			return errors.Wrapf(ErrEmptyLayer, "Layer %d has size %d", i, s)
		}
	}

	return nil
}

// InputSize returns the number of values in the input layer
func (net *Network) InputSize() int {
	return net.sizes[0]
}

// OutputSize returns the number of values in the output layer
func (net *Network) OutputSize() int {
	return net.sizes[len(net.sizes)-1]
}

// Sizes returns the size of every layer, from input to output
func (net *Network) Sizes() []int {
	s := make([]int, len(net.sizes))
	copy(s, net.sizes)
	return s
}

// String describes the shape of the Network along with its activation and cost functions, for
// example "2-3-1 logistic/squared-error".
func (net *Network) String() string {
	var shape string
	for i, s := range net.sizes {
		if i > 0 {
			shape += "-"
		}
		shape += fmt.Sprint(s)
	}

	return shape + " " + net.act.TypeString() + "/" + net.cost.TypeString()
}

// Weights returns the weights of the Network. They are not copied, and should not be modified
// while the Network is in use.
func (net *Network) Weights() *layered.Set {
	return net.weights
}

// Process returns the output of the network for the given input. It panics with a
// SizeMismatchError if the input is the wrong length.
func (net *Network) Process(input []float32) []float32 {
	if len(input) != net.InputSize() {
		panic(SizeMismatchError{"input", len(input), net.InputSize()})
	}

	s := net.newScratch()
	out := net.forward(s, input)

	result := make([]float32, len(out))
	copy(result, out)
	return result
}

// ApplyUpdate adds delta to the weights of the Network. It panics with a
// layered.ShapeMismatchError if delta does not have the same shape as the weights.
func (net *Network) ApplyUpdate(delta *layered.Set) {
	if delta == nil {
		panic(NilArgError{"Update"})
	}

	net.weights.AddInPlace(delta)
}
