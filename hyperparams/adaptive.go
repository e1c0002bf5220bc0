package hyperparams

const (
	// GrowthFactor multiplies the rate when the error has decreased
	GrowthFactor float32 = 1.1

	// DecayFactor multiplies the rate when the error has not decreased
	DecayFactor float32 = 0.95
)

// adaptive is not safe for concurrent use; it belongs to a single training run.
type adaptive struct {
	start, max float32

	rate    float32
	prevErr float32
	seen    bool
}

// Adaptive returns a learning rate that begins at 'start' and changes after every observed error:
// growing by GrowthFactor (up to 'max') if the error is less than the previous one, and shrinking by
// DecayFactor otherwise. The first error observed only sets the baseline.
func Adaptive(start, max float32) *adaptive {
	a := &adaptive{start: start, max: max}
	a.Reset()
	return a
}

// Value returns the current learning rate. The iteration is ignored.
func (a *adaptive) Value(iter int) float32 {
	return a.rate
}

// Observe updates the learning rate given the error from the most recent iteration.
func (a *adaptive) Observe(err float32) {
	if a.seen {
		if err < a.prevErr {
			a.rate *= GrowthFactor
			if a.rate > a.max {
				a.rate = a.max
			}
		} else {
			a.rate *= DecayFactor
		}
	}

	a.prevErr = err
	a.seen = true
}

// Reset returns the rate to its starting value and forgets the previous error.
func (a *adaptive) Reset() {
	a.rate = a.start
	a.prevErr = 0
	a.seen = false
}
