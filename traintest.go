package vectornn

import (
	"github.com/pkg/errors"

	"github.com/osushkov/vectornn/executor"
	"github.com/osushkov/vectornn/utils"
)

// Test runs the network on every given sample, returning the average squared error and the
// fraction of samples for which isCorrect returned true. If isCorrect is nil, the fraction
// correct is always 0.
//
// The samples are split between the workers of the Network's Pool, in the same way as
// ComputeGradient.
func (net *Network) Test(samples []Sample, isCorrect func(outs, targets []float32) bool) (cost float32, correct float64, err error) {
	if len(samples) == 0 {
		panic(ErrEmptyBatch)
	}

	for i := range samples {
		net.checkSample(i, samples[i])
	}

	if isCorrect == nil {
		isCorrect = func(a, b []float32) bool { return false }
	}

	type partial struct {
		cost    float32
		correct int
	}

	ranges := utils.Split(0, len(samples), net.pool.Workers())
	futures := make([]*executor.Future[partial], len(ranges))
	for i, r := range ranges {
		r := r
		futures[i] = executor.Submit(net.pool, func() (partial, error) {
			var p partial
			s := net.newScratch()
			for j := r.Start; j < r.End; j++ {
				out := net.forward(s, samples[j].Input)
				p.cost += net.cost.Cost(out, samples[j].Output)
				if isCorrect(out, samples[j].Output) {
					p.correct++
				}
			}

			return p, nil
		})
	}

	var numCorrect int
	for _, f := range futures {
		p, e := f.Wait()
		if e != nil {
			if err == nil {
				err = errors.Wrapf(e, "Failed to test network on %d samples", len(samples))
			}
			continue
		}

		cost += p.cost
		numCorrect += p.correct
	}

	if err != nil {
		return 0, 0, err
	}

	cost /= float32(len(samples))
	correct = float64(numCorrect) / float64(len(samples))
	return
}
