package diagram

import (
	"fmt"

	"github.com/papapumpkin/topos/internal/fin"
)

// Limit is the limit of a finite diagram: the sub-carrier of the product
// over all diagram objects whose tuples commute with every structure arrow.
type Limit struct {
	diag *Diagram
	prod *fin.Product
	eq   *fin.Equalizer

	obj         *fin.Obj
	projections []fin.Arrow
	// u, v are the stacked comparison arrows whose equalizer the limit is.
	u, v fin.Arrow
}

// Limit computes the diagram's limit as one product and one equalizer:
// the product P over all objects, and for each structure arrow a: i→j the
// parallel pair a∘π_i versus π_j, stacked over all edges into a single pair
// of arrows from P into the product over the edge targets.
func (d *Diagram) Limit() (*Limit, error) {
	prod, err := fin.NewProduct(d.objects...)
	if err != nil {
		return nil, fmt.Errorf("limit: base product: %w", err)
	}

	targets := make([]*fin.Obj, len(d.edges))
	for k, e := range d.edges {
		targets[k] = d.objects[e.Dst]
	}
	stack, err := fin.NewProduct(targets...)
	if err != nil {
		return nil, fmt.Errorf("limit: comparison product: %w", err)
	}

	uLegs := make([]fin.Arrow, len(d.edges))
	vLegs := make([]fin.Arrow, len(d.edges))
	for k, e := range d.edges {
		via, err := fin.Compose(e.Arr, prod.Projection(e.Src))
		if err != nil {
			return nil, fmt.Errorf("limit: edge %d: %w", k, err)
		}
		uLegs[k] = via
		vLegs[k] = prod.Projection(e.Dst)
	}

	u, err := stack.Tuple(prod.Obj(), uLegs)
	if err != nil {
		return nil, fmt.Errorf("limit: stacking comparison arrows: %w", err)
	}
	v, err := stack.Tuple(prod.Obj(), vLegs)
	if err != nil {
		return nil, fmt.Errorf("limit: stacking comparison arrows: %w", err)
	}

	eq, err := fin.NewEqualizer(u, v)
	if err != nil {
		return nil, fmt.Errorf("limit: equalizing: %w", err)
	}

	projections := make([]fin.Arrow, len(d.objects))
	for i := range d.objects {
		p, err := fin.Compose(prod.Projection(i), eq.Include())
		if err != nil {
			return nil, fmt.Errorf("limit: projection %d: %w", i, err)
		}
		projections[i] = p
	}

	return &Limit{diag: d, prod: prod, eq: eq, obj: eq.Obj(), projections: projections, u: u, v: v}, nil
}

// Obj returns the limit carrier.
func (l *Limit) Obj() *fin.Obj { return l.obj }

// Projection returns the limit's projection to the object at position i.
func (l *Limit) Projection(i int) fin.Arrow { return l.projections[i] }

// Factor tests whether a candidate cone factors through the limit. legs must
// hold one arrow per diagram position, all from the same apex; a malformed
// family is an error. A family that does not commute with the structure
// arrows is an ordinary failed factoring: the candidate's tuple into the
// base product is built first, then checked against the internal comparison
// pair.
func (l *Limit) Factor(apex *fin.Obj, legs []fin.Arrow) (fin.Factoring, error) {
	if len(legs) != len(l.diag.objects) {
		return fin.Factoring{}, fmt.Errorf("%w: got %d cone legs for %d positions", fin.ErrArity, len(legs), len(l.diag.objects))
	}
	t, err := l.prod.Tuple(apex, legs)
	if err != nil {
		return fin.Factoring{}, fmt.Errorf("cone tuple: %w", err)
	}

	ut, err := fin.Compose(l.u, t)
	if err != nil {
		return fin.Factoring{}, err
	}
	vt, err := fin.Compose(l.v, t)
	if err != nil {
		return fin.Factoring{}, err
	}
	if !fin.Equal(ut, vt) {
		return fin.Factoring{Reason: "cone does not commute with the diagram's structure arrows"}, nil
	}
	return l.eq.Factor(t)
}
