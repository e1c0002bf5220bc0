package circle

import (
	"math/rand"
	"testing"
)

func TestGenerate(t *testing.T) {
	ss := Default.Generate(rand.New(rand.NewSource(1)), 2000)

	var inside int
	for _, s := range ss {
		x, y := s.Input[0], s.Input[1]
		if x < -1 || x > 1 || y < -1 || y > 1 {
			t.Fatalf("input (%v, %v) out of range", x, y)
		}

		want := Default.Contains(x, y)
		if (s.Output[0] == 1) != want {
			t.Fatalf("point (%v, %v) labelled %v", x, y, s.Output[0])
		}
		if want {
			inside++
		}
	}

	// the part of the circle inside the square covers about 11% of it
	if frac := float64(inside) / float64(len(ss)); frac < 0.09 || frac > 0.16 {
		t.Fatalf("fraction inside is %v", frac)
	}
}

func TestContains(t *testing.T) {
	if !Default.Contains(0.75, 0.6) || Default.Contains(0.75, 1.1) || Default.Contains(-1, -1) {
		t.Fatalf("Contains gave the wrong answer")
	}
}
