package fin

import (
	"errors"
	"testing"
)

func TestNewEqualizer(t *testing.T) {
	t.Parallel()

	x := NewObj("x0", "x1", "x2", "x3")
	y := NewObj("y0", "y1", "y2")
	f := mustArrow(t, x, y, []int{0, 1, 2, 1})
	g := mustArrow(t, x, y, []int{0, 2, 2, 1})

	t.Run("agreement sub-carrier", func(t *testing.T) {
		t.Parallel()
		e, err := NewEqualizer(f, g)
		if err != nil {
			t.Fatalf("NewEqualizer: %v", err)
		}
		// Agreement at indices 0, 2, 3, in order.
		if e.Obj().Size() != 3 {
			t.Fatalf("size = %d, want 3", e.Obj().Size())
		}
		want := []int{0, 2, 3}
		for j, w := range want {
			if e.Include().At(j) != w {
				t.Errorf("inclusion at %d = %d, want %d", j, e.Include().At(j), w)
			}
		}
		if !e.Include().IsMonic() {
			t.Error("inclusion must be monic")
		}
	})

	t.Run("not a parallel pair", func(t *testing.T) {
		t.Parallel()
		z := NewObj("z0", "z1", "z2")
		h := mustArrow(t, x, z, []int{0, 1, 2, 1})
		if _, err := NewEqualizer(f, h); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("got %v, want ErrShapeMismatch", err)
		}
	})

	t.Run("disagreeing everywhere", func(t *testing.T) {
		t.Parallel()
		h := mustArrow(t, x, y, []int{1, 2, 0, 2})
		e, err := NewEqualizer(f, h)
		if err != nil {
			t.Fatalf("NewEqualizer: %v", err)
		}
		if e.Obj().Size() != 0 {
			t.Errorf("size = %d, want 0", e.Obj().Size())
		}
	})
}

func TestEqualizerFactor(t *testing.T) {
	t.Parallel()

	x := NewObj("x0", "x1", "x2", "x3")
	y := NewObj("y0", "y1", "y2")
	w := NewObj("w0", "w1")
	f := mustArrow(t, x, y, []int{0, 1, 2, 1})
	g := mustArrow(t, x, y, []int{0, 2, 2, 1})

	e, err := NewEqualizer(f, g)
	if err != nil {
		t.Fatalf("NewEqualizer: %v", err)
	}

	t.Run("equalizing candidate factors uniquely", func(t *testing.T) {
		t.Parallel()
		h := mustArrow(t, w, x, []int{3, 0}) // lands in the agreement set
		fac, err := e.Factor(h)
		if err != nil {
			t.Fatalf("Factor: %v", err)
		}
		if !fac.Factored {
			t.Fatalf("not factored: %s", fac.Reason)
		}
		round, _ := Compose(e.Include(), fac.Mediator)
		if !Equal(round, h) {
			t.Error("inclusion ∘ mediator ≠ candidate")
		}
	})

	t.Run("non-equalizing candidate is a reported failure", func(t *testing.T) {
		t.Parallel()
		h := mustArrow(t, w, x, []int{1, 0}) // index 1 is a disagreement point
		fac, err := e.Factor(h)
		if err != nil {
			t.Fatalf("Factor: %v", err)
		}
		if fac.Factored {
			t.Error("non-commuting candidate factored")
		}
		if fac.Reason == "" {
			t.Error("failed factoring carries no reason")
		}
	})

	t.Run("malformed candidate is an error", func(t *testing.T) {
		t.Parallel()
		h := mustArrow(t, w, y, []int{0, 0})
		if _, err := e.Factor(h); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("got %v, want ErrShapeMismatch", err)
		}
	})
}

func TestNewCoequalizer(t *testing.T) {
	t.Parallel()

	t.Run("classes from united pairs", func(t *testing.T) {
		t.Parallel()
		// Codomain of size 4; unite (0,2) and (1,3): exactly 2 classes.
		x := NewObj("x0", "x1")
		y := NewObj("y0", "y1", "y2", "y3")
		f := mustArrow(t, x, y, []int{0, 1})
		g := mustArrow(t, x, y, []int{2, 3})

		c, err := NewCoequalizer(f, g)
		if err != nil {
			t.Fatalf("NewCoequalizer: %v", err)
		}
		if c.Obj().Size() != 2 {
			t.Fatalf("size = %d, want 2", c.Obj().Size())
		}
		q := c.Quotient()
		if q.At(0) != q.At(2) || q.At(1) != q.At(3) || q.At(0) == q.At(1) {
			t.Errorf("quotient = %v", q.Graph())
		}
		// Representatives by first appearance.
		classes := c.Classes()
		if classes[0][0] != 0 || classes[1][0] != 1 {
			t.Errorf("classes = %v", classes)
		}
		if !q.IsEpic() {
			t.Error("quotient must be epic")
		}
	})

	t.Run("no identifications", func(t *testing.T) {
		t.Parallel()
		x := NewObj("x0")
		y := NewObj("y0", "y1")
		f := mustArrow(t, x, y, []int{1})
		c, err := NewCoequalizer(f, f)
		if err != nil {
			t.Fatalf("NewCoequalizer: %v", err)
		}
		if c.Obj().Size() != 2 {
			t.Errorf("size = %d, want 2", c.Obj().Size())
		}
	})

	t.Run("not a parallel pair", func(t *testing.T) {
		t.Parallel()
		x := NewObj("x0")
		y := NewObj("y0", "y1")
		z := NewObj("z0", "z1")
		f := mustArrow(t, x, y, []int{0})
		g := mustArrow(t, x, z, []int{0})
		if _, err := NewCoequalizer(f, g); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("got %v, want ErrShapeMismatch", err)
		}
	})
}

func TestCoequalizerFactor(t *testing.T) {
	t.Parallel()

	x := NewObj("x0", "x1")
	y := NewObj("y0", "y1", "y2", "y3")
	w := NewObj("w0", "w1")
	f := mustArrow(t, x, y, []int{0, 1})
	g := mustArrow(t, x, y, []int{2, 3})

	c, err := NewCoequalizer(f, g)
	if err != nil {
		t.Fatalf("NewCoequalizer: %v", err)
	}

	t.Run("coequalizing candidate factors uniquely", func(t *testing.T) {
		t.Parallel()
		h := mustArrow(t, y, w, []int{0, 1, 0, 1}) // constant on classes
		fac, err := c.Factor(h)
		if err != nil {
			t.Fatalf("Factor: %v", err)
		}
		if !fac.Factored {
			t.Fatalf("not factored: %s", fac.Reason)
		}
		round, _ := Compose(fac.Mediator, c.Quotient())
		if !Equal(round, h) {
			t.Error("mediator ∘ quotient ≠ candidate")
		}
	})

	t.Run("non-coequalizing candidate is a reported failure", func(t *testing.T) {
		t.Parallel()
		h := mustArrow(t, y, w, []int{0, 1, 1, 1})
		fac, err := c.Factor(h)
		if err != nil {
			t.Fatalf("Factor: %v", err)
		}
		if fac.Factored {
			t.Error("non-commuting candidate factored")
		}
	})

	t.Run("malformed candidate is an error", func(t *testing.T) {
		t.Parallel()
		h := mustArrow(t, w, y, []int{0, 1})
		if _, err := c.Factor(h); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("got %v, want ErrShapeMismatch", err)
		}
	})
}

func TestUnionFind(t *testing.T) {
	t.Parallel()

	uf := NewUnionFind(6)
	uf.Union(0, 2)
	uf.Union(1, 3)
	uf.Union(2, 4)

	if !uf.Connected(0, 4) {
		t.Error("0 and 4 should be connected through 2")
	}
	if uf.Connected(0, 1) {
		t.Error("0 and 1 should be in different sets")
	}
	if uf.Connected(5, 0) {
		t.Error("5 should be a singleton")
	}
}
