package trainers

import "time"

// Result is a summary of training since the previous Result, given to the Status function of a
// Trainer.
type Result struct {
	// the number of iterations completed so far
	Iteration int

	// the learning rate used for the most recent iteration
	LearningRate float32

	// the average batch error over the iterations since the previous Result
	Cost float32

	// the average time taken by each iteration, including the gradient computation and the update
	AvgIteration time.Duration
}

// progress accumulates per-iteration stats between Results.
type progress struct {
	steps    int
	cost     float32
	elapsed  time.Duration
	lastRate float32
}

func (p *progress) record(cost, rate float32, elapsed time.Duration) {
	p.steps++
	p.cost += cost
	p.elapsed += elapsed
	p.lastRate = rate
}

// snapshot returns the aggregated Result and resets the window.
func (p *progress) snapshot(iter int) Result {
	r := Result{Iteration: iter, LearningRate: p.lastRate}
	if p.steps > 0 {
		r.Cost = p.cost / float32(p.steps)
		r.AvgIteration = p.elapsed / time.Duration(p.steps)
	}

	*p = progress{}
	return r
}
