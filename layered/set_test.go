package layered

import (
	"testing"
)

func filled(rows, cols int, vs ...float32) *Matrix {
	m := NewMatrix(rows, cols)
	copy(m.Data(), vs)
	return m
}

func expectPanic(t *testing.T, name string, f func()) (r interface{}) {
	t.Helper()
	defer func() {
		if r = recover(); r == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()

	f()
	return nil
}

func TestArithmetic(t *testing.T) {
	a := New(filled(2, 2, 1, 2, 3, 4), filled(1, 3, 5, 6, 7))
	b := New(filled(2, 2, 4, 3, 2, 1), filled(1, 3, 1, 1, 1))

	tests := []struct {
		name string
		got  *Set
		want [][]float32
	}{
		{"add", a.Add(b), [][]float32{{5, 5, 5, 5}, {6, 7, 8}}},
		{"sub", a.Sub(b), [][]float32{{-3, -1, 1, 3}, {4, 5, 6}}},
		{"scale", a.Scale(2), [][]float32{{2, 4, 6, 8}, {10, 12, 14}}},
		{"div", a.Div(2), [][]float32{{0.5, 1, 1.5, 2}, {2.5, 3, 3.5}}},
		{"axpy", a.Clone().AddScaledInPlace(-0.5, b), [][]float32{{-1, 0.5, 2, 3.5}, {4.5, 5.5, 6.5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got.Len() != len(tc.want) {
				t.Fatalf("got %d layers, want %d", tc.got.Len(), len(tc.want))
			}
			for i, w := range tc.want {
				d := tc.got.Layer(i).Data()
				for j := range w {
					if d[j] != w[j] {
						t.Fatalf("layer %d: got %v, want %v", i, d, w)
					}
				}
			}
		})
	}

	// the non-in-place versions must leave the receiver untouched
	if d := a.Layer(0).Data(); d[0] != 1 || d[3] != 4 {
		t.Fatalf("receiver was modified: %v", d)
	}
}

func TestShapeMismatch(t *testing.T) {
	a := New(filled(2, 2), filled(1, 3))
	b := New(filled(2, 3), filled(1, 3))
	c := New(filled(2, 2))

	r := expectPanic(t, "shape", func() { a.AddInPlace(b) })
	if e, ok := r.(ShapeMismatchError); !ok || e.Layer != 0 {
		t.Fatalf("unexpected panic value %#v", r)
	}

	r = expectPanic(t, "count", func() { a.Sub(c) })
	if e, ok := r.(ShapeMismatchError); !ok || e.Layer != -1 {
		t.Fatalf("unexpected panic value %#v", r)
	}

	if a.SameShape(b) || !a.SameShape(a.ZerosLike()) {
		t.Fatalf("SameShape gave the wrong answer")
	}
}

func TestIndexAndDivide(t *testing.T) {
	s := New(filled(1, 2, 1, 2))

	expectPanic(t, "layer", func() { s.Layer(1) })
	expectPanic(t, "set layer", func() { s.SetLayer(-1, NewMatrix(1, 1)) })
	expectPanic(t, "at", func() { s.Layer(0).At(1, 0) })

	if r := expectPanic(t, "div", func() { s.DivInPlace(0) }); r != ErrDivideByZero {
		t.Fatalf("unexpected panic value %v", r)
	}
}

func TestViews(t *testing.T) {
	m := filled(2, 3, 1, 2, 3, 4, 5, 6)

	k := m.Kernel()
	if k.Rows != 2 || k.Cols != 2 || k.Data[0] != 2 || k.Data[k.Stride] != 5 {
		t.Fatalf("bad kernel view %+v", k)
	}

	b := m.Bias()
	if b.N != 2 || b.Data[0] != 1 || b.Data[b.Inc] != 4 {
		t.Fatalf("bad bias view %+v", b)
	}

	m.Row(1)[2] = 9
	if m.At(1, 2) != 9 {
		t.Fatalf("Row does not share storage")
	}

	z := New(m).ZerosLike()
	for _, v := range z.Layer(0).Data() {
		if v != 0 {
			t.Fatalf("ZerosLike not zero")
		}
	}
}
