package costfuncs

import (
	"math"
	"testing"
)

func TestSquaredError(t *testing.T) {
	outs := []float32{0.5, 1, 0}
	targets := []float32{1, 1, 0.5}

	if c := SquaredError().Cost(outs, targets); c != 0.5 {
		t.Fatalf("got cost %v, want 0.5", c)
	}

	ds := make([]float32, 3)
	SquaredError().Derivs(outs, targets, ds)
	want := []float32{-0.5, 0, -0.5}
	for i := range ds {
		if ds[i] != want[i] {
			t.Fatalf("got derivs %v, want %v", ds, want)
		}
	}
}

func TestCrossEntropy(t *testing.T) {
	if CrossEntropy().TypeString() != "cross-entropy" {
		t.Fatalf("got name %q", CrossEntropy().TypeString())
	}

	c := CrossEntropy().Cost([]float32{0.5}, []float32{1})
	if math.Abs(float64(c)-math.Ln2) > 1e-6 {
		t.Fatalf("got %v, want ln 2", c)
	}

	// saturated outputs are clamped instead of giving infinities
	c = CrossEntropy().Cost([]float32{0, 1}, []float32{1, 0})
	if math.IsInf(float64(c), 0) || math.IsNaN(float64(c)) {
		t.Fatalf("cost is not finite: %v", c)
	}
}
