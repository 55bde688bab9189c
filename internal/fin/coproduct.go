package fin

import "fmt"

// Coproduct is a finite tagged disjoint union. Its carrier concatenates the
// part carriers in order; element offset+j of the carrier is the pair
// (part k, local index j). The offset table is built once and never mutated.
type Coproduct struct {
	obj        *Obj
	parts      []*Obj
	offsets    []int
	injections []Arrow
}

// NewCoproduct builds the tagged disjoint union of the given parts. An empty
// part list yields the initial object (the empty carrier).
func NewCoproduct(parts ...*Obj) *Coproduct {
	ps := make([]*Obj, len(parts))
	copy(ps, parts)

	offsets := make([]int, len(ps))
	size := 0
	for k, p := range ps {
		offsets[k] = size
		size += p.Size()
	}

	labels := make([]string, 0, size)
	for k, p := range ps {
		for j := 0; j < p.Size(); j++ {
			labels = append(labels, fmt.Sprintf("%d:%s", k, p.Label(j)))
		}
	}
	obj := NewObj(labels...)

	c := &Coproduct{obj: obj, parts: ps, offsets: offsets}
	c.injections = make([]Arrow, len(ps))
	for k, p := range ps {
		g := make([]int, p.Size())
		for j := range g {
			g[j] = offsets[k] + j
		}
		c.injections[k] = Arrow{dom: p, cod: obj, graph: g}
	}
	return c
}

// Obj returns the coproduct carrier.
func (c *Coproduct) Obj() *Obj { return c.obj }

// Parts returns the part objects in order.
func (c *Coproduct) Parts() []*Obj {
	ps := make([]*Obj, len(c.parts))
	copy(ps, c.parts)
	return ps
}

// Arity returns the number of parts.
func (c *Coproduct) Arity() int { return len(c.parts) }

// Injection returns the k-th injection arrow, from the k-th part into the
// coproduct carrier.
func (c *Coproduct) Injection(k int) Arrow { return c.injections[k] }

// Tag returns the (part, local index) pair behind carrier index i.
func (c *Coproduct) Tag(i int) (part, local int, err error) {
	if i < 0 || i >= c.obj.Size() {
		return 0, 0, fmt.Errorf("%w: tag of %d, carrier size %d", ErrIndexRange, i, c.obj.Size())
	}
	for k := len(c.parts) - 1; k >= 0; k-- {
		if i >= c.offsets[k] {
			return k, i - c.offsets[k], nil
		}
	}
	return 0, 0, fmt.Errorf("%w: tag of %d", ErrIndexRange, i)
}

// Cotuple builds the unique mediating arrow [legs] out of the coproduct,
// given one leg per part. Each leg must start at its part and end at cod
// (the same object for every leg).
func (c *Coproduct) Cotuple(legs []Arrow, cod *Obj) (Arrow, error) {
	if len(legs) != len(c.parts) {
		return Arrow{}, fmt.Errorf("%w: got %d legs for %d parts", ErrArity, len(legs), len(c.parts))
	}
	for k, leg := range legs {
		if leg.dom != c.parts[k] {
			return Arrow{}, fmt.Errorf("%w: leg %d does not start at part %d", ErrShapeMismatch, k, k)
		}
		if leg.cod != cod {
			return Arrow{}, fmt.Errorf("%w: leg %d does not end at the cotuple codomain", ErrShapeMismatch, k)
		}
	}

	g := make([]int, c.obj.Size())
	for k, leg := range legs {
		for j := 0; j < c.parts[k].Size(); j++ {
			g[c.offsets[k]+j] = leg.graph[j]
		}
	}
	return Arrow{dom: c.obj, cod: cod, graph: g}, nil
}
