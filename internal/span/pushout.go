package span

import (
	"fmt"

	"github.com/papapumpkin/topos/internal/fin"
)

// Pushout is the colimit of a span f: A← S →B :g — the coproduct of the two
// codomains, glued by identifying f's and g's images of each shared domain
// element.
type Pushout struct {
	f, g fin.Arrow
	cop  *fin.Coproduct
	coeq *fin.Coequalizer

	obj   *fin.Obj
	left  fin.Arrow
	right fin.Arrow
}

// NewPushout builds the pushout of f and g, which must share their domain
// object.
func NewPushout(f, g fin.Arrow) (*Pushout, error) {
	if f.Dom() != g.Dom() {
		return nil, fmt.Errorf("%w: pushout needs a shared domain", fin.ErrShapeMismatch)
	}

	cop := fin.NewCoproduct(f.Cod(), g.Cod())
	viaF, err := fin.Compose(cop.Injection(0), f)
	if err != nil {
		return nil, fmt.Errorf("pushout: %w", err)
	}
	viaG, err := fin.Compose(cop.Injection(1), g)
	if err != nil {
		return nil, fmt.Errorf("pushout: %w", err)
	}

	coeq, err := fin.NewCoequalizer(viaF, viaG)
	if err != nil {
		return nil, fmt.Errorf("pushout: %w", err)
	}

	left, err := fin.Compose(coeq.Quotient(), cop.Injection(0))
	if err != nil {
		return nil, fmt.Errorf("pushout: left injection: %w", err)
	}
	right, err := fin.Compose(coeq.Quotient(), cop.Injection(1))
	if err != nil {
		return nil, fmt.Errorf("pushout: right injection: %w", err)
	}
	return &Pushout{f: f, g: g, cop: cop, coeq: coeq, obj: coeq.Obj(), left: left, right: right}, nil
}

// Obj returns the pushout carrier.
func (p *Pushout) Obj() *fin.Obj { return p.obj }

// Left returns the injection from f's codomain.
func (p *Pushout) Left() fin.Arrow { return p.left }

// Right returns the injection from g's codomain.
func (p *Pushout) Right() fin.Arrow { return p.right }

// Factor tests whether a candidate cocone (pLeg out of f's codomain, qLeg
// out of g's codomain, both into the same nadir) factors through the
// pushout. Legs with the wrong endpoints are an error; legs that fail
// p∘f = q∘g are an ordinary failed factoring.
func (p *Pushout) Factor(pLeg, qLeg fin.Arrow) (fin.Factoring, error) {
	if pLeg.Cod() != qLeg.Cod() {
		return fin.Factoring{}, fmt.Errorf("%w: cocone legs do not share a nadir", fin.ErrShapeMismatch)
	}
	if pLeg.Dom() != p.f.Cod() || qLeg.Dom() != p.g.Cod() {
		return fin.Factoring{}, fmt.Errorf("%w: cocone legs do not start at the span heads", fin.ErrShapeMismatch)
	}

	k, err := p.cop.Cotuple([]fin.Arrow{pLeg, qLeg}, pLeg.Cod())
	if err != nil {
		return fin.Factoring{}, err
	}
	return p.coeq.Factor(k)
}
