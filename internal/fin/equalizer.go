package fin

import "fmt"

// Equalizer is the sub-carrier of a parallel pair's shared domain on which
// the two arrows agree, with its order-preserving inclusion. The position
// table is built once and never mutated.
type Equalizer struct {
	f, g    Arrow
	obj     *Obj
	include Arrow
	pos     []int // domain index → sub-carrier position, -1 when excluded
}

// NewEqualizer builds the equalizer of f and g, which must be a parallel
// pair: same domain object and same codomain object.
func NewEqualizer(f, g Arrow) (*Equalizer, error) {
	if f.dom != g.dom || f.cod != g.cod {
		return nil, fmt.Errorf("%w: equalizer needs a parallel pair", ErrShapeMismatch)
	}

	pos := make([]int, f.dom.Size())
	var kept []int
	for i := range pos {
		if f.graph[i] == g.graph[i] {
			pos[i] = len(kept)
			kept = append(kept, i)
		} else {
			pos[i] = -1
		}
	}

	labels := make([]string, len(kept))
	for j, i := range kept {
		labels[j] = f.dom.Label(i)
	}
	obj := NewObj(labels...)

	include := Arrow{dom: obj, cod: f.dom, graph: kept}
	if kept == nil {
		include.graph = []int{}
	}
	return &Equalizer{f: f, g: g, obj: obj, include: include, pos: pos}, nil
}

// Obj returns the equalizer carrier.
func (e *Equalizer) Obj() *Obj { return e.obj }

// Include returns the inclusion arrow into the shared domain.
func (e *Equalizer) Include() Arrow { return e.include }

// Factor tests whether h factors through the inclusion. h must end at the
// pair's shared domain; a malformed h is an error, while an h that lands
// outside the agreement set is an ordinary failed factoring. The mediator,
// when it exists, is unique because the inclusion is monic.
func (e *Equalizer) Factor(h Arrow) (Factoring, error) {
	if h.cod != e.f.dom {
		return Factoring{}, fmt.Errorf("%w: candidate does not end at the pair's domain", ErrShapeMismatch)
	}
	g := make([]int, h.dom.Size())
	for w, x := range h.graph {
		p := e.pos[x]
		if p < 0 {
			return notFactored("leg index %d lands on %d, where the pair disagrees", w, x), nil
		}
		g[w] = p
	}
	return factored(Arrow{dom: h.dom, cod: e.obj, graph: g}), nil
}
