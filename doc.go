// Package vectornn provides a fully-connected feedforward neural network with logistic
// activations, whose gradient computation is split across the workers of an executor.Pool.
//
// Creating Networks
//
// A Network is defined by the sizes of its layers, from input to output, and runs its gradient
// computations on a Pool that is owned by the caller:
//
//		pool := executor.New(executor.Options{})
//		defer pool.Close()
//
//		net := vectornn.New(pool, []int{2, 3, 1})
//
// Weights are initialized uniformly in ±initializers.DefaultRange. Other initializers (for example,
// a seeded one) can be given with NewWithInitializer.
//
// Each pair of adjacent layers is connected by one matrix in a layered.Set. The matrix between a
// layer of size m and the next of size n has n rows and m+1 columns; column 0 is the bias.
//
// Training
//
// Networks do not train themselves; they implement Engine, which is used by the trainers in the
// subpackage "trainers":
//
//		t := trainers.NewDynamic(0.5, 0.5, 0.25, 500)
//		err := t.Train(net, samples, 100000)
//
// An Engine gives the average gradient and squared error over a batch of samples (through a
// Provider, usually a Window over a larger set of samples), and accepts updates to its weights.
//
// Saving weights
//
// WriteWeights writes the weights of a Network in a plain-text format, readable by ReadWeights:
// one line per row, values separated by (and followed by) a space, with an empty line after each
// layer.
package vectornn
