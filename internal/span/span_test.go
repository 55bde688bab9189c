package span

import (
	"errors"
	"testing"

	"github.com/papapumpkin/topos/internal/diagram"
	"github.com/papapumpkin/topos/internal/fin"
)

func mustArrow(t *testing.T, dom, cod *fin.Obj, graph []int) fin.Arrow {
	t.Helper()
	f, err := fin.NewArrow(dom, cod, graph)
	if err != nil {
		t.Fatalf("NewArrow(%v): %v", graph, err)
	}
	return f
}

func TestNewPullback(t *testing.T) {
	t.Parallel()

	a := fin.NewObj("a0", "a1")
	b := fin.NewObj("b0", "b1", "b2")
	c := fin.NewObj("c0", "c1")
	f := mustArrow(t, a, c, []int{0, 1})
	g := mustArrow(t, b, c, []int{0, 0, 1})

	t.Run("matching pairs in deterministic order", func(t *testing.T) {
		t.Parallel()
		pb, err := NewPullback(f, g)
		if err != nil {
			t.Fatalf("NewPullback: %v", err)
		}
		// Shared codomain index 0: (0,0),(0,1); index 1: (1,2).
		wantLeft := []int{0, 0, 1}
		wantRight := []int{0, 1, 2}
		if pb.Apex().Size() != len(wantLeft) {
			t.Fatalf("size = %d, want %d", pb.Apex().Size(), len(wantLeft))
		}
		for i := range wantLeft {
			if pb.Left().At(i) != wantLeft[i] || pb.Right().At(i) != wantRight[i] {
				t.Errorf("pair %d = (%d,%d), want (%d,%d)",
					i, pb.Left().At(i), pb.Right().At(i), wantLeft[i], wantRight[i])
			}
		}
	})

	t.Run("square commutes", func(t *testing.T) {
		t.Parallel()
		pb, err := NewPullback(f, g)
		if err != nil {
			t.Fatalf("NewPullback: %v", err)
		}
		fp, err := fin.Compose(f, pb.Left())
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		gq, err := fin.Compose(g, pb.Right())
		if err != nil {
			t.Fatalf("Compose: %v", err)
		}
		if !fin.Equal(fp, gq) {
			t.Error("pullback square does not commute")
		}
	})

	t.Run("agrees with the generic cospan limit", func(t *testing.T) {
		t.Parallel()
		pb, err := NewPullback(f, g)
		if err != nil {
			t.Fatalf("NewPullback: %v", err)
		}
		d := diagram.New(a, b, c)
		if err := d.Add(0, 2, f); err != nil {
			t.Fatalf("Add: %v", err)
		}
		if err := d.Add(1, 2, g); err != nil {
			t.Fatalf("Add: %v", err)
		}
		l, err := d.Limit()
		if err != nil {
			t.Fatalf("Limit: %v", err)
		}
		if l.Obj().Size() != pb.Apex().Size() {
			t.Errorf("generic limit size %d, specialized size %d", l.Obj().Size(), pb.Apex().Size())
		}
	})

	t.Run("disjoint images give the empty pullback", func(t *testing.T) {
		t.Parallel()
		f2 := mustArrow(t, a, c, []int{0, 0})
		g2 := mustArrow(t, b, c, []int{1, 1, 1})
		pb, err := NewPullback(f2, g2)
		if err != nil {
			t.Fatalf("NewPullback: %v", err)
		}
		if pb.Apex().Size() != 0 {
			t.Errorf("size = %d, want 0", pb.Apex().Size())
		}
	})

	t.Run("different codomain objects", func(t *testing.T) {
		t.Parallel()
		c2 := fin.NewObj("c0", "c1")
		g2 := mustArrow(t, b, c2, []int{0, 0, 1})
		if _, err := NewPullback(f, g2); !errors.Is(err, fin.ErrShapeMismatch) {
			t.Errorf("got %v, want ErrShapeMismatch", err)
		}
	})
}

func TestPullbackFactor(t *testing.T) {
	t.Parallel()

	a := fin.NewObj("a0", "a1")
	b := fin.NewObj("b0", "b1", "b2")
	c := fin.NewObj("c0", "c1")
	f := mustArrow(t, a, c, []int{0, 1})
	g := mustArrow(t, b, c, []int{0, 0, 1})

	pb, err := NewPullback(f, g)
	if err != nil {
		t.Fatalf("NewPullback: %v", err)
	}
	w := fin.NewObj("w0", "w1")

	t.Run("commuting cone factors", func(t *testing.T) {
		t.Parallel()
		pLeg := mustArrow(t, w, a, []int{1, 0})
		qLeg := mustArrow(t, w, b, []int{2, 1})
		fac, err := pb.Factor(pLeg, qLeg)
		if err != nil {
			t.Fatalf("Factor: %v", err)
		}
		if !fac.Factored {
			t.Fatalf("not factored: %s", fac.Reason)
		}
		backP, _ := fin.Compose(pb.Left(), fac.Mediator)
		backQ, _ := fin.Compose(pb.Right(), fac.Mediator)
		if !fin.Equal(backP, pLeg) || !fin.Equal(backQ, qLeg) {
			t.Error("projections do not recover the cone legs")
		}
	})

	t.Run("non-commuting cone is a reported failure", func(t *testing.T) {
		t.Parallel()
		pLeg := mustArrow(t, w, a, []int{1, 0})
		qLeg := mustArrow(t, w, b, []int{0, 0}) // f(a1)=c1 but g(b0)=c0
		fac, err := pb.Factor(pLeg, qLeg)
		if err != nil {
			t.Fatalf("Factor: %v", err)
		}
		if fac.Factored {
			t.Error("non-commuting cone factored")
		}
	})

	t.Run("legs with different apexes are an error", func(t *testing.T) {
		t.Parallel()
		w2 := fin.NewObj("w0", "w1")
		pLeg := mustArrow(t, w, a, []int{1, 0})
		qLeg := mustArrow(t, w2, b, []int{2, 1})
		if _, err := pb.Factor(pLeg, qLeg); !errors.Is(err, fin.ErrShapeMismatch) {
			t.Errorf("got %v, want ErrShapeMismatch", err)
		}
	})
}

func TestNewPushout(t *testing.T) {
	t.Parallel()

	s := fin.NewObj("s0", "s1")
	a := fin.NewObj("a0", "a1", "a2")
	b := fin.NewObj("b0", "b1")
	f := mustArrow(t, s, a, []int{0, 2})
	g := mustArrow(t, s, b, []int{1, 1})

	t.Run("glues along the shared domain", func(t *testing.T) {
		t.Parallel()
		po, err := NewPushout(f, g)
		if err != nil {
			t.Fatalf("NewPushout: %v", err)
		}
		// a0 ~ b1 ~ a2 through s0 and s1; a1 and b0 stay separate.
		if po.Obj().Size() != 3 {
			t.Fatalf("size = %d, want 3", po.Obj().Size())
		}
		if po.Left().At(0) != po.Right().At(1) || po.Left().At(2) != po.Right().At(1) {
			t.Error("images along the span are not identified")
		}
		pf, _ := fin.Compose(po.Left(), f)
		qg, _ := fin.Compose(po.Right(), g)
		if !fin.Equal(pf, qg) {
			t.Error("pushout square does not commute")
		}
	})

	t.Run("different domain objects", func(t *testing.T) {
		t.Parallel()
		s2 := fin.NewObj("s0", "s1")
		g2 := mustArrow(t, s2, b, []int{1, 1})
		if _, err := NewPushout(f, g2); !errors.Is(err, fin.ErrShapeMismatch) {
			t.Errorf("got %v, want ErrShapeMismatch", err)
		}
	})
}

func TestPushoutFactor(t *testing.T) {
	t.Parallel()

	s := fin.NewObj("s0")
	a := fin.NewObj("a0", "a1")
	b := fin.NewObj("b0", "b1")
	f := mustArrow(t, s, a, []int{0})
	g := mustArrow(t, s, b, []int{1})

	po, err := NewPushout(f, g)
	if err != nil {
		t.Fatalf("NewPushout: %v", err)
	}
	w := fin.NewObj("w0", "w1")

	t.Run("commuting cocone factors", func(t *testing.T) {
		t.Parallel()
		pLeg := mustArrow(t, a, w, []int{0, 1})
		qLeg := mustArrow(t, b, w, []int{1, 0}) // q(g(s0)) = q(b1) = w0 = p(f(s0))
		fac, err := po.Factor(pLeg, qLeg)
		if err != nil {
			t.Fatalf("Factor: %v", err)
		}
		if !fac.Factored {
			t.Fatalf("not factored: %s", fac.Reason)
		}
		backP, _ := fin.Compose(fac.Mediator, po.Left())
		backQ, _ := fin.Compose(fac.Mediator, po.Right())
		if !fin.Equal(backP, pLeg) || !fin.Equal(backQ, qLeg) {
			t.Error("injections do not recover the cocone legs")
		}
	})

	t.Run("non-commuting cocone is a reported failure", func(t *testing.T) {
		t.Parallel()
		pLeg := mustArrow(t, a, w, []int{0, 1})
		qLeg := mustArrow(t, b, w, []int{0, 1})
		fac, err := po.Factor(pLeg, qLeg)
		if err != nil {
			t.Fatalf("Factor: %v", err)
		}
		if fac.Factored {
			t.Error("non-commuting cocone factored")
		}
	})
}
