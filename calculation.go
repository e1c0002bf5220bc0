package vectornn

import (
	"sync"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"

	"github.com/osushkov/vectornn/executor"
	"github.com/osushkov/vectornn/layered"
	"github.com/osushkov/vectornn/utils"
)

func vec(vs []float32) blas32.Vector {
	return blas32.Vector{N: len(vs), Inc: 1, Data: vs}
}

// forward fills s.acts from the given input, returning the output layer (which is still part of
// the scratch space). The input is assumed to have the correct length.
func (net *Network) forward(s *scratch, input []float32) []float32 {
	copy(s.acts[0], input)

	for i := 0; i < net.weights.Len(); i++ {
		w := net.weights.Layer(i)
		out := s.acts[i+1]

		// out = bias + kernel·prev
		blas32.Copy(w.Bias(), vec(out))
		blas32.Gemv(blas.NoTrans, 1, w.Kernel(), vec(s.acts[i]), 1, vec(out))

		for j := range out {
			out[j] = net.act.Value(out[j])
		}
	}

	return s.acts[len(s.acts)-1]
}

// backward adds the gradient of a single sample to 'grad', given that s has just been used for the
// forward pass of that sample. It returns the squared error of the sample.
func (net *Network) backward(s *scratch, expected []float32, grad *layered.Set) float32 {
	last := net.weights.Len() - 1
	out := s.acts[last+1]

	net.cost.Derivs(out, expected, s.deltas[last])

	for i := last; i >= 0; i-- {
		g := grad.Layer(i)
		d := vec(s.deltas[i])

		// gradient of the layer is the outer product of its error terms with [1, prev...]
		blas32.Axpy(1, d, g.Bias())
		blas32.Ger(1, d, vec(s.acts[i]), g.Kernel())

		if i == 0 {
			break
		}

		prev := s.deltas[i-1]
		blas32.Gemv(blas.Trans, 1, net.weights.Layer(i).Kernel(), d, 0, vec(prev))
		for j, v := range s.acts[i] {
			prev[j] *= net.act.Deriv(v)
		}
	}

	return net.cost.Cost(out, expected)
}

// subsetGradient sequentially computes the summed gradient and squared error of samples in the
// given range.
func (net *Network) subsetGradient(p Provider, r utils.Range) (*layered.Set, float32) {
	s := net.newScratch()
	grad := net.weights.ZerosLike()

	var sum float32
	for i := r.Start; i < r.End; i++ {
		sample := p.Get(i)
		net.forward(s, sample.Input)
		sum += net.backward(s, sample.Output, grad)
	}

	return grad, sum
}

func (net *Network) checkSample(i int, sample Sample) {
	if sample.Fits(net) {
		return
	} else if len(sample.Input) != net.InputSize() {
		panic(errors.Wrapf(SizeMismatchError{"input", len(sample.Input), net.InputSize()}, "Sample %d", i))
	} else if len(sample.Output) != net.OutputSize() {
		panic(errors.Wrapf(SizeMismatchError{"output", len(sample.Output), net.OutputSize()}, "Sample %d", i))
	}
}

// ComputeGradient returns the gradient of the weights and the squared error, both averaged over
// every sample in the Provider.
//
// The samples are split into one contiguous subset for each worker of the Network's Pool, and the
// partial results are merged as each subset finishes. The result does not depend on the number of
// workers, except through floating-point rounding.
//
// ComputeGradient panics with ErrEmptyBatch if the Provider has no samples, and with a
// SizeMismatchError if any sample does not fit the Network. An error is returned only if the Pool
// fails to run a subset (for example, because it was closed).
func (net *Network) ComputeGradient(p Provider) (*layered.Set, float32, error) {
	if p == nil {
		panic(NilArgError{"Provider"})
	}

	n := p.Len()
	if n == 0 {
		panic(ErrEmptyBatch)
	}

	for i := 0; i < n; i++ {
		net.checkSample(i, p.Get(i))
	}

	total := net.weights.ZerosLike()
	var totalErr float32
	var mux sync.Mutex

	ranges := utils.Split(0, n, net.pool.Workers())
	futures := make([]*executor.Future[struct{}], len(ranges))
	for i, r := range ranges {
		r := r
		futures[i] = executor.Submit(net.pool, func() (struct{}, error) {
			grad, sum := net.subsetGradient(p, r)

			mux.Lock()
			total.AddInPlace(grad)
			totalErr += sum
			mux.Unlock()

			return struct{}{}, nil
		})
	}

	// every future is waited on, so that no task is still writing to 'total' on return
	var err error
	for _, f := range futures {
		if _, e := f.Wait(); e != nil && err == nil {
			err = e
		}
	}

	if err != nil {
		return nil, 0, errors.Wrapf(err, "Failed to compute gradient over %d samples", n)
	}

	total.DivInPlace(float32(n))
	return total, totalErr / float32(n), nil
}
