package laws

import (
	"github.com/papapumpkin/topos/internal/diagram"
	"github.com/papapumpkin/topos/internal/fin"
)

// spanSuite checks pullback and pushout squares and their factoring
// contracts.
func (r *Runner) spanSuite() ([]Report, error) {
	const suite = "span"
	var out []Report

	for n := 0; n < r.samples; n++ {
		a := r.obj("a", 1, 3)
		b := r.obj("b", 1, 3)
		c := r.obj("c", 1, 3)
		f, err := r.arrow(a, c)
		if err != nil {
			return nil, err
		}
		g, err := r.arrow(b, c)
		if err != nil {
			return nil, err
		}

		pb, err := r.kit.Pullback(f, g)
		if err != nil {
			return nil, err
		}
		fp, err := fin.Compose(f, pb.Left())
		if err != nil {
			return nil, err
		}
		gq, err := fin.Compose(g, pb.Right())
		if err != nil {
			return nil, err
		}
		if !fin.Equal(fp, gq) {
			out = append(out, fail(suite, "pullback square commutes", "f∘π₁ = %v, g∘π₂ = %v", fp, gq))
		} else {
			out = append(out, pass(suite, "pullback square commutes"))
		}

		// A cone through the apex always commutes, so it must factor back
		// to itself.
		if pb.Apex().Size() > 0 {
			w := r.obj("w", 1, 3)
			pre, err := r.arrow(w, pb.Apex())
			if err != nil {
				return nil, err
			}
			pLeg, err := fin.Compose(pb.Left(), pre)
			if err != nil {
				return nil, err
			}
			qLeg, err := fin.Compose(pb.Right(), pre)
			if err != nil {
				return nil, err
			}
			fac, err := pb.Factor(pLeg, qLeg)
			if err != nil {
				return nil, err
			}
			if !fac.Factored || !fin.Equal(fac.Mediator, pre) {
				out = append(out, fail(suite, "pullback cone factors uniquely", "%s", fac.Reason))
			} else {
				out = append(out, pass(suite, "pullback cone factors uniquely"))
			}
		}

		s := r.obj("s", 1, 3)
		fo, err := r.arrow(s, a)
		if err != nil {
			return nil, err
		}
		gleg, err := r.arrow(s, b)
		if err != nil {
			return nil, err
		}
		po, err := r.kit.Pushout(fo, gleg)
		if err != nil {
			return nil, err
		}
		pf, err := fin.Compose(po.Left(), fo)
		if err != nil {
			return nil, err
		}
		qg, err := fin.Compose(po.Right(), gleg)
		if err != nil {
			return nil, err
		}
		if !fin.Equal(pf, qg) {
			out = append(out, fail(suite, "pushout square commutes", "ι₁∘f = %v, ι₂∘g = %v", pf, qg))
		} else {
			out = append(out, pass(suite, "pushout square commutes"))
		}
	}
	return out, nil
}

// diagramSuite checks that the generic engine agrees with the primitive
// constructions on parallel-pair shapes and that cones factor.
func (r *Runner) diagramSuite() ([]Report, error) {
	const suite = "diagram"
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

		d := diagram.New(x, y)
		if err := d.Add(0, 1, f); err != nil {
			return nil, err
		}
		if err := d.Add(0, 1, g); err != nil {
			return nil, err
		}

		lim, err := r.kit.Limit(d)
		if err != nil {
			return nil, err
		}
		eq, err := r.kit.Equalize(f, g)
		if err != nil {
			return nil, err
		}
		if lim.Obj().Size() != eq.Obj().Size() {
			out = append(out, fail(suite, "parallel-pair limit is the equalizer", "limit size %d, equalizer size %d", lim.Obj().Size(), eq.Obj().Size()))
		} else {
			out = append(out, pass(suite, "parallel-pair limit is the equalizer"))
		}

		colim, err := r.kit.Colimit(d)
		if err != nil {
			return nil, err
		}
		coeq, err := r.kit.Coequalize(f, g)
		if err != nil {
			return nil, err
		}
		// The colimit also glues x into the coproduct; its size is the
		// coequalizer's class count plus the x-classes not reached by it.
		if colim.Obj().Size() < coeq.Obj().Size() {
			out = append(out, fail(suite, "parallel-pair colimit covers the coequalizer", "colimit size %d below coequalizer size %d", colim.Obj().Size(), coeq.Obj().Size()))
		} else {
			out = append(out, pass(suite, "parallel-pair colimit covers the coequalizer"))
		}

		// A cone assembled from the limit's own projections factors.
		if lim.Obj().Size() > 0 {
			w := r.obj("w", 1, 2)
			pre, err := r.arrow(w, lim.Obj())
			if err != nil {
				return nil, err
			}
			legX, err := fin.Compose(lim.Projection(0), pre)
			if err != nil {
				return nil, err
			}
			legY, err := fin.Compose(lim.Projection(1), pre)
			if err != nil {
				return nil, err
			}
			fac, err := lim.Factor(w, []fin.Arrow{legX, legY})
			if err != nil {
				return nil, err
			}
			if !fac.Factored || !fin.Equal(fac.Mediator, pre) {
				out = append(out, fail(suite, "limit cone factors uniquely", "%s", fac.Reason))
			} else {
				out = append(out, pass(suite, "limit cone factors uniquely"))
			}
		}
	}
	return out, nil
}

// closureSuite checks the exact curry/uncurry round trips.
func (r *Runner) closureSuite() ([]Report, error) {
	const suite = "closure"
	var out []Report

	for n := 0; n < r.samples; n++ {
		x := r.obj("x", 1, 3)
		s := r.obj("s", 1, 3)
		y := r.obj("y", 1, 3)

		e, err := r.kit.Exponential(y, s)
		if err != nil {
			return nil, err
		}
		xs, err := r.kit.Product(x, s)
		if err != nil {
			return nil, err
		}

		h, err := r.arrow(xs.Obj(), y)
		if err != nil {
			return nil, err
		}
		k, err := e.Curry(xs, h)
		if err != nil {
			return nil, err
		}
		back, err := e.Uncurry(xs, k)
		if err != nil {
			return nil, err
		}
		if !fin.Equal(back, h) {
			out = append(out, fail(suite, "uncurry∘curry is the identity", "h = %v came back as %v", h, back))
		} else {
			out = append(out, pass(suite, "uncurry∘curry is the identity"))
		}

		k2, err := r.arrow(x, e.Obj())
		if err != nil {
			return nil, err
		}
		h2, err := e.Uncurry(xs, k2)
		if err != nil {
			return nil, err
		}
		back2, err := e.Curry(xs, h2)
		if err != nil {
			return nil, err
		}
		if !fin.Equal(back2, k2) {
			out = append(out, fail(suite, "curry∘uncurry is the identity", "k = %v came back as %v", k2, back2))
		} else {
			out = append(out, pass(suite, "curry∘uncurry is the identity"))
		}
	}
	return out, nil
}

// classifierSuite checks the subobject classifier law, including the two
// fixed two-into-three examples.
func (r *Runner) classifierSuite() ([]Report, error) {
	const suite = "classifier"
	var out []Report

	// Fixed: the collapsing arrow [1,1] is not monic and must be rejected.
	a2 := fin.NewObj("a0", "a1")
	b3 := fin.NewObj("b0", "b1", "b2")
	collapse, err := fin.NewArrow(a2, b3, []int{1, 1})
	if err != nil {
		return nil, err
	}
	if collapse.IsMonic() {
		out = append(out, fail(suite, "collapsing arrow is not monic", "[1 1] reported monic"))
	} else if _, err := r.kit.Characteristic(collapse); err == nil {
		out = append(out, fail(suite, "collapsing arrow is not monic", "characteristic accepted a non-monic"))
	} else {
		out = append(out, pass(suite, "collapsing arrow is not monic"))
	}

	// Fixed: [0,2] is monic with characteristic [true,false,true], and
	// pulling truth back along it recovers a two-element apex.
	embed, err := fin.NewArrow(a2, b3, []int{0, 2})
	if err != nil {
		return nil, err
	}
	chi, err := r.kit.Characteristic(embed)
	if err != nil {
		return nil, err
	}
	if chi.At(0) != 1 || chi.At(1) != 0 || chi.At(2) != 1 {
		out = append(out, fail(suite, "characteristic marks the image", "χ = %v, want [1 0 1]", chi))
	} else {
		out = append(out, pass(suite, "characteristic marks the image"))
	}
	canon, err := r.kit.Classify(chi)
	if err != nil {
		return nil, err
	}
	if canon.Obj.Size() != 2 {
		out = append(out, fail(suite, "canonical apex has two elements", "size %d", canon.Obj.Size()))
	} else {
		out = append(out, pass(suite, "canonical apex has two elements"))
	}

	for n := 0; n < r.samples; n++ {
		k := 1 + r.rng.Intn(3)
		sub := r.obj("s", k, k)
		amb := r.obj("y", k, k+2)
		m, err := r.monic(sub, amb)
		if err != nil {
			return nil, err
		}

		mchi, err := r.kit.Characteristic(m)
		if err != nil {
			return nil, err
		}
		got, err := r.kit.Classify(mchi)
		if err != nil {
			return nil, err
		}
		iso, err := r.kit.MonicIso(m, got.Include)
		if err != nil {
			return nil, err
		}
		if !iso.Holds {
			out = append(out, fail(suite, "classified subobject is isomorphic", "%s", iso.Reason))
			continue
		}
		through, err := fin.Compose(got.Include, iso.Forward)
		if err != nil {
			return nil, err
		}
		if !fin.Equal(through, m) {
			out = append(out, fail(suite, "classified subobject is isomorphic", "inclusion ∘ iso ≠ monic"))
		} else {
			out = append(out, pass(suite, "classified subobject is isomorphic"))
		}
	}
	return out, nil
}
