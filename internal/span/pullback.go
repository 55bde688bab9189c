// Package span computes pullbacks of cospans and pushouts of spans directly,
// without routing through the generic diagram engine. The pullback walks the
// two arrows' image supports instead of enumerating the full binary product;
// the pushout is one coproduct and one coequalizer.
package span

import (
	"fmt"

	"github.com/papapumpkin/topos/internal/fin"
)

// Pullback is the limit of a cospan f: A→C ← B :g. Its carrier holds every
// pair (a, b) with f(a) = g(b), grouped by the shared codomain index and
// enumerated deterministically: ascending codomain index, then ascending
// left index, then ascending right index. The pair→index table uses a
// packed integer key.
type Pullback struct {
	f, g  fin.Arrow
	apex  *fin.Obj
	left  fin.Arrow
	right fin.Arrow
	pairs map[int]int // a·|B| + b → apex index
}

// NewPullback builds the pullback of f and g, which must share their
// codomain object. Only codomain indices in both image supports contribute;
// for each, every matching (a, b) pair is paired off.
func NewPullback(f, g fin.Arrow) (*Pullback, error) {
	if f.Cod() != g.Cod() {
		return nil, fmt.Errorf("%w: pullback needs a shared codomain", fin.ErrShapeMismatch)
	}

	// Preimage lists per codomain index, in ascending domain order.
	preF := make([][]int, f.Cod().Size())
	for a := 0; a < f.Dom().Size(); a++ {
		c := f.At(a)
		preF[c] = append(preF[c], a)
	}
	preG := make([][]int, g.Cod().Size())
	for b := 0; b < g.Dom().Size(); b++ {
		c := g.At(b)
		preG[c] = append(preG[c], b)
	}

	var labels []string
	var leftGraph, rightGraph []int
	pairs := make(map[int]int)
	for c := range preF {
		if len(preF[c]) == 0 || len(preG[c]) == 0 {
			continue
		}
		for _, a := range preF[c] {
			for _, b := range preG[c] {
				pairs[a*g.Dom().Size()+b] = len(leftGraph)
				leftGraph = append(leftGraph, a)
				rightGraph = append(rightGraph, b)
				labels = append(labels, "("+f.Dom().Label(a)+","+g.Dom().Label(b)+")")
			}
		}
	}

	apex := fin.NewObj(labels...)
	left, err := fin.NewArrow(apex, f.Dom(), leftGraph)
	if err != nil {
		return nil, fmt.Errorf("pullback: left projection: %w", err)
	}
	right, err := fin.NewArrow(apex, g.Dom(), rightGraph)
	if err != nil {
		return nil, fmt.Errorf("pullback: right projection: %w", err)
	}
	return &Pullback{f: f, g: g, apex: apex, left: left, right: right, pairs: pairs}, nil
}

// Apex returns the pullback carrier.
func (p *Pullback) Apex() *fin.Obj { return p.apex }

// Left returns the projection onto f's domain.
func (p *Pullback) Left() fin.Arrow { return p.left }

// Right returns the projection onto g's domain.
func (p *Pullback) Right() fin.Arrow { return p.right }

// Factor tests whether a candidate cone (pLeg into f's domain, qLeg into g's
// domain, both from the same apex) factors through the pullback. Legs with
// the wrong endpoints are an error; legs that fail f∘p = g∘q are an
// ordinary failed factoring.
func (p *Pullback) Factor(pLeg, qLeg fin.Arrow) (fin.Factoring, error) {
	if pLeg.Dom() != qLeg.Dom() {
		return fin.Factoring{}, fmt.Errorf("%w: cone legs do not share an apex", fin.ErrShapeMismatch)
	}
	if pLeg.Cod() != p.f.Dom() || qLeg.Cod() != p.g.Dom() {
		return fin.Factoring{}, fmt.Errorf("%w: cone legs do not end at the span feet", fin.ErrShapeMismatch)
	}

	g := make([]int, pLeg.Dom().Size())
	for w := range g {
		a, b := pLeg.At(w), qLeg.At(w)
		if p.f.At(a) != p.g.At(b) {
			return fin.Factoring{Reason: fmt.Sprintf("cone does not commute at apex index %d", w)}, nil
		}
		g[w] = p.pairs[a*p.g.Dom().Size()+b]
	}
	m, err := fin.NewArrow(pLeg.Dom(), p.apex, g)
	if err != nil {
		return fin.Factoring{}, err
	}
	return fin.Factoring{Factored: true, Mediator: m}, nil
}
