// Package circle generates a two-dimensional classification problem: whether a point lies within a
// circle.
package circle

import (
	"math/rand"

	"github.com/osushkov/vectornn"
)

// Circle is the region that points are classified against
type Circle struct {
	X, Y   float32
	Radius float32
}

// Default is the circle used by the demo program
var Default = Circle{X: 0.75, Y: 0.6, Radius: 0.4}

// Contains returns whether the point (x, y) is strictly inside the circle
func (c Circle) Contains(x, y float32) bool {
	dx, dy := x-c.X, y-c.Y
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// Generate returns n samples with inputs drawn uniformly from [-1, 1]^2. The expected output is 1
// for points inside the circle and 0 otherwise.
func (c Circle) Generate(rng *rand.Rand, n int) []vectornn.Sample {
	ss := make([]vectornn.Sample, n)
	for i := range ss {
		x := rng.Float32()*2 - 1
		y := rng.Float32()*2 - 1

		var out float32
		if c.Contains(x, y) {
			out = 1
		}

		ss[i] = vectornn.Sample{Input: []float32{x, y}, Output: []float32{out}}
	}

	return ss
}
