package operators

import (
	"math"
	"testing"
)

func TestLogistic(t *testing.T) {
	l := Logistic()

	tests := []struct {
		x, want float32
	}{
		{0, 0.5},
		{2, float32(1 / (1 + math.Exp(-2)))},
		{-3, float32(1 / (1 + math.Exp(3)))},
	}

	for _, tc := range tests {
		if v := l.Value(tc.x); math.Abs(float64(v-tc.want)) > 1e-6 {
			t.Fatalf("Value(%v) = %v, want %v", tc.x, v, tc.want)
		}
	}

	// compare the derivative against a central difference
	const h = 1e-2
	for _, x := range []float32{-1.5, 0, 0.7} {
		num := (l.Value(x+h) - l.Value(x-h)) / (2 * h)
		if d := l.Deriv(l.Value(x)); math.Abs(float64(d-num)) > 1e-4 {
			t.Fatalf("Deriv at %v = %v, numeric %v", x, d, num)
		}
	}
}
