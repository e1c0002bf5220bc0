package initializers

import (
	"math/rand"
	"time"
)

// DefaultRange is the bound on either side of zero used by Uniform unless set by Range
const DefaultRange float32 = 0.1

type uniform struct {
	lower, upper float32
	rng          *rand.Rand
}

// Uniform returns an Initializer that draws from a uniform random sample within a range, which
// defaults to ±DefaultRange and can be set by Range. It is seeded from the current time unless
// given a seed by Seed.
func Uniform() *uniform {
	return &uniform{-DefaultRange, DefaultRange, rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Range sets the range of a Uniform Initializer, returning the same Initializer
func (u *uniform) Range(lower, upper float32) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Seed resets the random source of the Initializer, returning it.
func (u *uniform) Seed(seed int64) *uniform {
	u.rng = rand.New(rand.NewSource(seed))
	return u
}

// Set fills ws with random values. Zero is never produced, unless the range is empty.
func (u *uniform) Set(ws []float32) {
	for i := 0; i < len(ws); i++ {
		w := u.rng.Float32()*(u.upper-u.lower) + u.lower
		if w == 0 && u.lower != u.upper {
			// discard and try again
			i--
			continue
		}
		ws[i] = w
	}
}
