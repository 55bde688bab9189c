package laws

import (
	"github.com/papapumpkin/topos/internal/fin"
)

// categorySuite checks the identity and associativity laws on sampled
// arrows.
func (r *Runner) categorySuite() ([]Report, error) {
	const suite = "category"
	var out []Report

	for n := 0; n < r.samples; n++ {
		a := r.obj("a", 1, 4)
		b := r.obj("b", 1, 4)
		c := r.obj("c", 1, 4)
		d := r.obj("d", 1, 4)

		f, err := r.arrow(a, b)
		if err != nil {
			return nil, err
		}

		left, err := fin.Compose(fin.Identity(b), f)
		if err != nil {
			return nil, err
		}
		right, err := fin.Compose(f, fin.Identity(a))
		if err != nil {
			return nil, err
		}
		if !fin.Equal(left, f) || !fin.Equal(right, f) {
			out = append(out, fail(suite, "identity unit", "identity does not preserve %v", f))
		} else {
			out = append(out, pass(suite, "identity unit"))
		}

		g, err := r.arrow(b, c)
		if err != nil {
			return nil, err
		}
		h, err := r.arrow(c, d)
		if err != nil {
			return nil, err
		}
		gf, err := fin.Compose(g, f)
		if err != nil {
			return nil, err
		}
		hg, err := fin.Compose(h, g)
		if err != nil {
			return nil, err
		}
		l, err := fin.Compose(h, gf)
		if err != nil {
			return nil, err
		}
		rr, err := fin.Compose(hg, f)
		if err != nil {
			return nil, err
		}
		if !fin.Equal(l, rr) {
			out = append(out, fail(suite, "associativity", "h∘(g∘f) = %v, (h∘g)∘f = %v", l, rr))
		} else {
			out = append(out, pass(suite, "associativity"))
		}
	}
	return out, nil
}

// productSuite checks the binary product's universal property and the fixed
// 2×3 enumeration.
func (r *Runner) productSuite() ([]Report, error) {
	const suite = "product"
	var out []Report

	// Fixed enumeration: |A|=2, |B|=3 gives six tuples, first factor major.
	a2 := fin.NewObj("a0", "a1")
	b3 := fin.NewObj("b0", "b1", "b2")
	p, err := r.kit.Product(a2, b3)
	if err != nil {
		return nil, err
	}
	wantOrder := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	ordered := p.Obj().Size() == 6
	for i, w := range wantOrder {
		if !ordered {
			break
		}
		c := p.Coords(i)
		ordered = c[0] == w[0] && c[1] == w[1]
	}
	if ordered {
		out = append(out, pass(suite, "2×3 enumeration"))
	} else {
		out = append(out, fail(suite, "2×3 enumeration", "size %d or order differs from first-factor-major", p.Obj().Size()))
	}

	for n := 0; n < r.samples; n++ {
		a := r.obj("a", 1, 3)
		b := r.obj("b", 1, 3)
		x := r.obj("x", 1, 3)
		prod, err := r.kit.Product(a, b)
		if err != nil {
			return nil, err
		}

		pLeg, err := r.arrow(x, a)
		if err != nil {
			return nil, err
		}
		qLeg, err := r.arrow(x, b)
		if err != nil {
			return nil, err
		}
		m, err := prod.Tuple(x, []fin.Arrow{pLeg, qLeg})
		if err != nil {
			return nil, err
		}
		back0, err := fin.Compose(prod.Projection(0), m)
		if err != nil {
			return nil, err
		}
		back1, err := fin.Compose(prod.Projection(1), m)
		if err != nil {
			return nil, err
		}
		if !fin.Equal(back0, pLeg) || !fin.Equal(back1, qLeg) {
			out = append(out, fail(suite, "projections recover legs", "legs (%v,%v) came back as (%v,%v)", pLeg, qLeg, back0, back1))
		} else {
			out = append(out, pass(suite, "projections recover legs"))
		}

		// Uniqueness: any arrow into the product is the tuple of its
		// projections.
		any, err := r.arrow(x, prod.Obj())
		if err != nil {
			return nil, err
		}
		l0, err := fin.Compose(prod.Projection(0), any)
		if err != nil {
			return nil, err
		}
		l1, err := fin.Compose(prod.Projection(1), any)
		if err != nil {
			return nil, err
		}
		again, err := prod.Tuple(x, []fin.Arrow{l0, l1})
		if err != nil {
			return nil, err
		}
		if !fin.Equal(any, again) {
			out = append(out, fail(suite, "mediator uniqueness", "arrow %v re-tuples to %v", any, again))
		} else {
			out = append(out, pass(suite, "mediator uniqueness"))
		}
	}
	return out, nil
}

// coproductSuite checks the binary coproduct's universal property.
func (r *Runner) coproductSuite() ([]Report, error) {
	const suite = "coproduct"
	var out []Report

	for n := 0; n < r.samples; n++ {
		a := r.obj("a", 1, 3)
		b := r.obj("b", 1, 3)
		y := r.obj("y", 1, 3)
		cop := r.kit.Coproduct(a, b)

		fLeg, err := r.arrow(a, y)
		if err != nil {
			return nil, err
		}
		gLeg, err := r.arrow(b, y)
		if err != nil {
			return nil, err
		}
		m, err := cop.Cotuple([]fin.Arrow{fLeg, gLeg}, y)
		if err != nil {
			return nil, err
		}
		back0, err := fin.Compose(m, cop.Injection(0))
		if err != nil {
			return nil, err
		}
		back1, err := fin.Compose(m, cop.Injection(1))
		if err != nil {
			return nil, err
		}
		if !fin.Equal(back0, fLeg) || !fin.Equal(back1, gLeg) {
			out = append(out, fail(suite, "injections recover legs", "legs (%v,%v) came back as (%v,%v)", fLeg, gLeg, back0, back1))
		} else {
			out = append(out, pass(suite, "injections recover legs"))
		}

		any, err := r.arrow(cop.Obj(), y)
		if err != nil {
			return nil, err
		}
		l0, err := fin.Compose(any, cop.Injection(0))
		if err != nil {
			return nil, err
		}
		l1, err := fin.Compose(any, cop.Injection(1))
		if err != nil {
			return nil, err
		}
		again, err := cop.Cotuple([]fin.Arrow{l0, l1}, y)
		if err != nil {
			return nil, err
		}
		if !fin.Equal(any, again) {
			out = append(out, fail(suite, "mediator uniqueness", "arrow %v re-cotuples to %v", any, again))
		} else {
			out = append(out, pass(suite, "mediator uniqueness"))
		}
	}
	return out, nil
}

// equalizerSuite checks that equalizing candidates factor uniquely through
// the inclusion and that the factored mediator reproduces them.
func (r *Runner) equalizerSuite() ([]Report, error) {
	const suite = "equalizer"
	var out []Report

	for n := 0; n < r.samples; n++ {
		x := r.obj("x", 2, 4)
		y := r.obj("y", 1, 3)
		f, err := r.arrow(x, y)
		if err != nil {
			return nil, err
		}
		g, err := r.arrow(x, y)
		if err != nil {
			return nil, err
		}
		eq, err := r.kit.Equalize(f, g)
		if err != nil {
			return nil, err
		}

		// A candidate through the inclusion always equalizes, so it must
		// factor back to itself.
		w := r.obj("w", 1, 3)
		if eq.Obj().Size() > 0 {
			pre, err := r.arrow(w, eq.Obj())
			if err != nil {
				return nil, err
			}
			h, err := fin.Compose(eq.Include(), pre)
			if err != nil {
				return nil, err
			}
			fac, err := eq.Factor(h)
			if err != nil {
				return nil, err
			}
			round := fin.Arrow{}
			if fac.Factored {
				round, err = fin.Compose(eq.Include(), fac.Mediator)
				if err != nil {
					return nil, err
				}
			}
			if !fac.Factored || !fin.Equal(round, h) {
				out = append(out, fail(suite, "equalizing candidate factors", "candidate %v: %s", h, fac.Reason))
			} else {
				out = append(out, pass(suite, "equalizing candidate factors"))
			}
		}

		// A candidate hitting a disagreement point must be reported, not
		// factored.
		disagree := -1
		for i := 0; i < x.Size(); i++ {
			if f.At(i) != g.At(i) {
				disagree = i
				break
			}
		}
		if disagree >= 0 {
			h, err := fin.NewArrow(w, x, constGraph(w.Size(), disagree))
			if err != nil {
				return nil, err
			}
			fac, err := eq.Factor(h)
			if err != nil {
				return nil, err
			}
			if fac.Factored {
				out = append(out, fail(suite, "non-equalizing candidate rejected", "candidate through disagreement index %d factored", disagree))
			} else {
				out = append(out, pass(suite, "non-equalizing candidate rejected"))
			}
		}
	}
	return out, nil
}

// coequalizerSuite checks the quotient construction, including the fixed
// four-element example collapsing to two classes.
func (r *Runner) coequalizerSuite() ([]Report, error) {
	const suite = "coequalizer"
	var out []Report

	// Fixed: codomain of size 4, uniting (0,2) and (1,3), gives 2 classes.
	x2 := fin.NewObj("x0", "x1")
	y4 := fin.NewObj("y0", "y1", "y2", "y3")
	f4, err := fin.NewArrow(x2, y4, []int{0, 1})
	if err != nil {
		return nil, err
	}
	g4, err := fin.NewArrow(x2, y4, []int{2, 3})
	if err != nil {
		return nil, err
	}
	coeq4, err := r.kit.Coequalize(f4, g4)
	if err != nil {
		return nil, err
	}
	if coeq4.Obj().Size() == 2 {
		out = append(out, pass(suite, "pairs (0,2),(1,3) give 2 classes"))
	} else {
		out = append(out, fail(suite, "pairs (0,2),(1,3) give 2 classes", "got %d classes", coeq4.Obj().Size()))
	}

	for n := 0; n < r.samples; n++ {
		x := r.obj("x", 1, 3)
		y := r.obj("y", 2, 4)
		f, err := r.arrow(x, y)
		if err != nil {
			return nil, err
		}
		g, err := r.arrow(x, y)
		if err != nil {
			return nil, err
		}
		coeq, err := r.kit.Coequalize(f, g)
		if err != nil {
			return nil, err
		}

		// A candidate through the quotient coequalizes, so it must factor
		// back to itself.
		w := r.obj("w", 1, 3)
		post, err := r.arrow(coeq.Obj(), w)
		if err != nil {
			return nil, err
		}
		h, err := fin.Compose(post, coeq.Quotient())
		if err != nil {
			return nil, err
		}
		fac, err := coeq.Factor(h)
		if err != nil {
			return nil, err
		}
		round := fin.Arrow{}
		if fac.Factored {
			round, err = fin.Compose(fac.Mediator, coeq.Quotient())
			if err != nil {
				return nil, err
			}
		}
		if !fac.Factored || !fin.Equal(round, h) {
			out = append(out, fail(suite, "coequalizing candidate factors", "candidate %v: %s", h, fac.Reason))
		} else {
			out = append(out, pass(suite, "coequalizing candidate factors"))
		}
	}
	return out, nil
}

// constGraph returns a length-n graph sending everything to v.
func constGraph(n, v int) []int {
	g := make([]int, n)
	for i := range g {
		g[i] = v
	}
	return g
}
