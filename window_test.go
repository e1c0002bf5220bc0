package vectornn

import "testing"

func numbered(n int) []Sample {
	ss := make([]Sample, n)
	for i := range ss {
		ss[i] = Sample{Input: []float32{float32(i)}}
	}

	return ss
}

func TestWindowWraps(t *testing.T) {
	w := NewWindow(numbered(10), 3, 8)

	if w.Len() != 3 {
		t.Fatalf("got length %d, want 3", w.Len())
	}

	want := []float32{8, 9, 0}
	for i, v := range want {
		if got := w.Get(i).Input[0]; got != v {
			t.Fatalf("Get(%d) = sample %v, want %v", i, got, v)
		}
	}

	expectPanic(t, "past end", func() { w.Get(3) })
	expectPanic(t, "negative", func() { w.Get(-1) })
}

func TestWindowSharesPool(t *testing.T) {
	pool := numbered(4)
	w := NewWindow(pool, 2, 1)

	pool[1], pool[2] = pool[2], pool[1]
	if w.Get(0).Input[0] != 2 {
		t.Fatalf("window does not see changes to its pool")
	}
}

func TestWindowPreconditions(t *testing.T) {
	expectPanic(t, "empty pool", func() { NewWindow(nil, 1, 0) })
	expectPanic(t, "negative length", func() { NewWindow(numbered(2), -1, 0) })
	expectPanic(t, "longer than pool", func() { NewWindow(numbered(3), 5, 0) })

	// the whole pool, starting part way through
	w := NewWindow(numbered(3), 3, 2)
	seen := map[float32]bool{}
	for i := 0; i < w.Len(); i++ {
		seen[w.Get(i).Input[0]] = true
	}
	if len(seen) != 3 {
		t.Fatalf("window over the whole pool repeated samples")
	}

	// zero length windows are allowed, but are refused by ComputeGradient
	if w := NewWindow(numbered(2), 0, 1); w.Len() != 0 {
		t.Fatalf("got length %d", w.Len())
	}
}
