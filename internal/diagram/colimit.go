package diagram

import (
	"fmt"

	"github.com/papapumpkin/topos/internal/fin"
)

// Colimit is the colimit of a finite diagram: the quotient of the coproduct
// over all diagram objects by the identifications every structure arrow
// induces.
type Colimit struct {
	diag *Diagram
	cop  *fin.Coproduct
	coeq *fin.Coequalizer

	obj        *fin.Obj
	injections []fin.Arrow
	// u, v are the stacked comparison arrows whose coequalizer the colimit is.
	u, v fin.Arrow
}

// Colimit computes the diagram's colimit as one coproduct and one
// coequalizer, exactly dual to Limit: the coproduct C over all objects, and
// for each structure arrow a: i→j the parallel pair ι_j∘a versus ι_i,
// stacked over all edges out of the coproduct over the edge sources.
func (d *Diagram) Colimit() (*Colimit, error) {
	cop := fin.NewCoproduct(d.objects...)

	sources := make([]*fin.Obj, len(d.edges))
	for k, e := range d.edges {
		sources[k] = d.objects[e.Src]
	}
	stack := fin.NewCoproduct(sources...)

	uLegs := make([]fin.Arrow, len(d.edges))
	vLegs := make([]fin.Arrow, len(d.edges))
	for k, e := range d.edges {
		via, err := fin.Compose(cop.Injection(e.Dst), e.Arr)
		if err != nil {
			return nil, fmt.Errorf("colimit: edge %d: %w", k, err)
		}
		uLegs[k] = via
		vLegs[k] = cop.Injection(e.Src)
	}

	u, err := stack.Cotuple(uLegs, cop.Obj())
	if err != nil {
		return nil, fmt.Errorf("colimit: stacking comparison arrows: %w", err)
	}
	v, err := stack.Cotuple(vLegs, cop.Obj())
	if err != nil {
		return nil, fmt.Errorf("colimit: stacking comparison arrows: %w", err)
	}

	coeq, err := fin.NewCoequalizer(u, v)
	if err != nil {
		return nil, fmt.Errorf("colimit: coequalizing: %w", err)
	}

	injections := make([]fin.Arrow, len(d.objects))
	for i := range d.objects {
		inj, err := fin.Compose(coeq.Quotient(), cop.Injection(i))
		if err != nil {
			return nil, fmt.Errorf("colimit: injection %d: %w", i, err)
		}
		injections[i] = inj
	}

	return &Colimit{diag: d, cop: cop, coeq: coeq, obj: coeq.Obj(), injections: injections, u: u, v: v}, nil
}

// Obj returns the colimit carrier.
func (c *Colimit) Obj() *fin.Obj { return c.obj }

// Injection returns the colimit's injection from the object at position i.
func (c *Colimit) Injection(i int) fin.Arrow { return c.injections[i] }

// Factor tests whether a candidate cocone factors through the colimit. legs
// must hold one arrow per diagram position, all into the same nadir; a
// malformed family is an error. A family that does not commute with the
// structure arrows is an ordinary failed factoring.
func (c *Colimit) Factor(legs []fin.Arrow, nadir *fin.Obj) (fin.Factoring, error) {
	if len(legs) != len(c.diag.objects) {
		return fin.Factoring{}, fmt.Errorf("%w: got %d cocone legs for %d positions", fin.ErrArity, len(legs), len(c.diag.objects))
	}
	k, err := c.cop.Cotuple(legs, nadir)
	if err != nil {
		return fin.Factoring{}, fmt.Errorf("cocone cotuple: %w", err)
	}

	ku, err := fin.Compose(k, c.u)
	if err != nil {
		return fin.Factoring{}, err
	}
	kv, err := fin.Compose(k, c.v)
	if err != nil {
		return fin.Factoring{}, err
	}
	if !fin.Equal(ku, kv) {
		return fin.Factoring{Reason: "cocone does not commute with the diagram's structure arrows"}, nil
	}
	return c.coeq.Factor(k)
}
