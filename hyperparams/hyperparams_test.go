package hyperparams

import (
	"math"
	"testing"
)

func close32(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestLinear(t *testing.T) {
	l := Linear(1, 0.1, 10)

	if v := l.Value(0); v != 1 {
		t.Fatalf("Value(0) = %v, want 1", v)
	}
	if v := l.Value(9); !close32(v, 0.19) {
		t.Fatalf("Value(9) = %v, want 0.19", v)
	}
	if v := l.Value(5); !close32(v, 0.55) {
		t.Fatalf("Value(5) = %v, want 0.55", v)
	}
}

func TestAdaptive(t *testing.T) {
	a := Adaptive(0.5, 0.6)

	steps := []struct {
		err  float32
		want float32
	}{
		{1.0, 0.5},           // baseline only
		{0.9, 0.55},          // decreased
		{0.8, 0.6},           // decreased, capped at max
		{0.8, 0.6 * 0.95},    // not decreased
		{0.85, 0.6 * 0.9025}, // increased
	}

	for i, s := range steps {
		a.Observe(s.err)
		if v := a.Value(i); !close32(v, s.want) {
			t.Fatalf("step %d: rate %v, want %v", i, v, s.want)
		}
	}

	a.Reset()
	a.Observe(100)
	if v := a.Value(0); v != 0.5 {
		t.Fatalf("after reset: rate %v, want 0.5", v)
	}
}
