package fin

import (
	"errors"
	"testing"
)

func TestNewProduct(t *testing.T) {
	t.Parallel()

	a := NewObj("a0", "a1")
	b := NewObj("b0", "b1", "b2")

	t.Run("enumeration order", func(t *testing.T) {
		t.Parallel()
		p, err := NewProduct(a, b)
		if err != nil {
			t.Fatalf("NewProduct: %v", err)
		}
		if p.Obj().Size() != 6 {
			t.Fatalf("size = %d, want 6", p.Obj().Size())
		}
		// First factor major: (0,0),(0,1),(0,2),(1,0),(1,1),(1,2).
		want := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
		for i, w := range want {
			got := p.Coords(i)
			if got[0] != w[0] || got[1] != w[1] {
				t.Errorf("Coords(%d) = %v, want %v", i, got, w)
			}
			idx, err := p.Index(w)
			if err != nil {
				t.Fatalf("Index(%v): %v", w, err)
			}
			if idx != i {
				t.Errorf("Index(%v) = %d, want %d", w, idx, i)
			}
		}
	})

	t.Run("projections", func(t *testing.T) {
		t.Parallel()
		p, err := NewProduct(a, b)
		if err != nil {
			t.Fatalf("NewProduct: %v", err)
		}
		pa, pb := p.Projection(0), p.Projection(1)
		for i := 0; i < p.Obj().Size(); i++ {
			c := p.Coords(i)
			if pa.At(i) != c[0] || pb.At(i) != c[1] {
				t.Errorf("projections at %d = (%d,%d), want %v", i, pa.At(i), pb.At(i), c)
			}
		}
	})

	t.Run("empty factor list is terminal", func(t *testing.T) {
		t.Parallel()
		p, err := NewProduct()
		if err != nil {
			t.Fatalf("NewProduct: %v", err)
		}
		if p.Obj().Size() != 1 {
			t.Errorf("terminal size = %d, want 1", p.Obj().Size())
		}
	})

	t.Run("empty factor forces empty product", func(t *testing.T) {
		t.Parallel()
		empty := NewObj()
		p, err := NewProduct(a, empty, b)
		if err != nil {
			t.Fatalf("NewProduct: %v", err)
		}
		if p.Obj().Size() != 0 {
			t.Errorf("size = %d, want 0", p.Obj().Size())
		}
	})

	t.Run("index range validation", func(t *testing.T) {
		t.Parallel()
		p, err := NewProduct(a, b)
		if err != nil {
			t.Fatalf("NewProduct: %v", err)
		}
		if _, err := p.Index([]int{0, 3}); !errors.Is(err, ErrIndexRange) {
			t.Errorf("got %v, want ErrIndexRange", err)
		}
		if _, err := p.Index([]int{0}); !errors.Is(err, ErrArity) {
			t.Errorf("got %v, want ErrArity", err)
		}
	})
}

func TestProductTuple(t *testing.T) {
	t.Parallel()

	a := NewObj("a0", "a1", "a2")
	b := NewObj("b0", "b1")
	x := NewObj("x0", "x1")

	p, err := NewProduct(a, b)
	if err != nil {
		t.Fatalf("NewProduct: %v", err)
	}

	pLeg := mustArrow(t, x, a, []int{2, 0})
	qLeg := mustArrow(t, x, b, []int{1, 1})

	t.Run("projections recover the legs", func(t *testing.T) {
		t.Parallel()
		m, err := p.Tuple(x, []Arrow{pLeg, qLeg})
		if err != nil {
			t.Fatalf("Tuple: %v", err)
		}
		back0, _ := Compose(p.Projection(0), m)
		back1, _ := Compose(p.Projection(1), m)
		if !Equal(back0, pLeg) || !Equal(back1, qLeg) {
			t.Error("projections do not recover the tuple legs")
		}
	})

	t.Run("uniqueness", func(t *testing.T) {
		t.Parallel()
		// Any arrow into the product equals the tuple of its projections.
		m := mustArrow(t, x, p.Obj(), []int{5, 2})
		l0, _ := Compose(p.Projection(0), m)
		l1, _ := Compose(p.Projection(1), m)
		again, err := p.Tuple(x, []Arrow{l0, l1})
		if err != nil {
			t.Fatalf("Tuple: %v", err)
		}
		if !Equal(m, again) {
			t.Error("mediating arrow is not unique")
		}
	})

	t.Run("leg domain mismatch", func(t *testing.T) {
		t.Parallel()
		y := NewObj("y0", "y1")
		bad := mustArrow(t, y, a, []int{0, 0})
		if _, err := p.Tuple(x, []Arrow{bad, qLeg}); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("got %v, want ErrShapeMismatch", err)
		}
	})

	t.Run("leg count mismatch", func(t *testing.T) {
		t.Parallel()
		if _, err := p.Tuple(x, []Arrow{pLeg}); !errors.Is(err, ErrArity) {
			t.Errorf("got %v, want ErrArity", err)
		}
	})
}
