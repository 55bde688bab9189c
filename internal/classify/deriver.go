package classify

import (
	"fmt"

	"github.com/papapumpkin/topos/internal/fin"
)

// Span is the minimal pullback result the classifier consumes: an apex with
// its two projections and a cone-factoring mediator.
type Span interface {
	Apex() *fin.Obj
	Left() fin.Arrow
	Right() fin.Arrow
	Factor(pLeg, qLeg fin.Arrow) (fin.Factoring, error)
}

// PullbackCalculator computes pullbacks of cospans. The classifier takes it
// as a capability rather than a fixed implementation, so the derivation runs
// over any category exposing this minimal surface, not only finite sets.
type PullbackCalculator interface {
	Pullback(f, g fin.Arrow) (Span, error)
}

// Deriver recovers canonical subobjects from characteristic arrows through
// an injected pullback calculator.
type Deriver struct {
	pulls PullbackCalculator
}

// NewDeriver creates a deriver over the given pullback calculator.
func NewDeriver(pulls PullbackCalculator) *Deriver {
	return &Deriver{pulls: pulls}
}

// Classify pulls the truth arrow back along chi: Y→Ω, recovering the
// canonical subobject of Y that chi classifies. The classifier axiom holds
// up to isomorphism: the result's inclusion need not equal a monic that chi
// came from pointwise, but MonicIso always connects the two.
func (d *Deriver) Classify(chi fin.Arrow) (Subobject, error) {
	if chi.Cod() != omega {
		return Subobject{}, fmt.Errorf("%w: characteristic arrow must end at Ω", fin.ErrShapeMismatch)
	}
	pb, err := d.pulls.Pullback(chi, truth)
	if err != nil {
		return Subobject{}, fmt.Errorf("classify: pulling truth back: %w", err)
	}
	return Subobject{Obj: pb.Apex(), Include: pb.Left()}, nil
}

// IsoResult is the outcome of comparing two monics into the same ambient
// object. When the monics present the same subobject, Holds is true and
// Forward/Backward are mutually inverse isomorphisms commuting with the
// inclusions. A pair presenting different subobjects is an ordinary,
// checkable outcome, reported through Holds and Reason.
type IsoResult struct {
	Holds             bool
	Forward, Backward fin.Arrow
	Reason            string
}

// MonicIso compares two monics m1: X1↪Y and m2: X2↪Y. If they share their
// image — the same characteristic arrow — it constructs the witnessing
// isomorphism by matching each domain index of one to the domain index of
// the other with the same image, and verifies that both round-trip
// composites collapse to identities. Non-monic arguments and mismatched
// ambient objects are contract violations.
func MonicIso(m1, m2 fin.Arrow) (IsoResult, error) {
	if m1.Cod() != m2.Cod() {
		return IsoResult{}, fmt.Errorf("%w: monics into different ambient objects", fin.ErrShapeMismatch)
	}
	if !m1.IsMonic() {
		return IsoResult{}, fmt.Errorf("%w: first argument", ErrNotMonic)
	}
	if !m2.IsMonic() {
		return IsoResult{}, fmt.Errorf("%w: second argument", ErrNotMonic)
	}

	// Invert m2 on its image.
	back := make(map[int]int, m2.Dom().Size())
	for j := 0; j < m2.Dom().Size(); j++ {
		back[m2.At(j)] = j
	}

	if m1.Dom().Size() != m2.Dom().Size() {
		return IsoResult{Reason: fmt.Sprintf("image sizes differ: %d vs %d", m1.Dom().Size(), m2.Dom().Size())}, nil
	}

	fwd := make([]int, m1.Dom().Size())
	for i := range fwd {
		j, ok := back[m1.At(i)]
		if !ok {
			return IsoResult{Reason: fmt.Sprintf("ambient index %d is hit by one monic only", m1.At(i))}, nil
		}
		fwd[i] = j
	}
	bwd := make([]int, m2.Dom().Size())
	for i := range fwd {
		bwd[fwd[i]] = i
	}
	// fwd is injective (m1 monic composed with m2's partial inverse), and
	// the domains have equal size, so bwd is total.

	forward, err := fin.NewArrow(m1.Dom(), m2.Dom(), fwd)
	if err != nil {
		return IsoResult{}, err
	}
	backward, err := fin.NewArrow(m2.Dom(), m1.Dom(), bwd)
	if err != nil {
		return IsoResult{}, err
	}

	// Verify both round trips collapse to identities and the triangle with
	// the inclusions commutes. These are index computations, not proofs by
	// construction, which is the point: the isomorphism is checked.
	bf, err := fin.Compose(backward, forward)
	if err != nil {
		return IsoResult{}, err
	}
	fb, err := fin.Compose(forward, backward)
	if err != nil {
		return IsoResult{}, err
	}
	if !fin.Equal(bf, fin.Identity(m1.Dom())) || !fin.Equal(fb, fin.Identity(m2.Dom())) {
		return IsoResult{Reason: "round trips do not collapse to identities"}, nil
	}
	through, err := fin.Compose(m2, forward)
	if err != nil {
		return IsoResult{}, err
	}
	if !fin.Equal(through, m1) {
		return IsoResult{Reason: "isomorphism does not commute with the inclusions"}, nil
	}

	return IsoResult{Holds: true, Forward: forward, Backward: backward}, nil
}
