package fin

import "fmt"

// Coequalizer is the quotient of a parallel pair's shared codomain by the
// equivalence generated by identifying f(i) with g(i) for every domain
// index i. Classes are numbered by first appearance in codomain order, and
// each class's representative is its first-discovered member.
type Coequalizer struct {
	f, g     Arrow
	obj      *Obj
	quotient Arrow
	reps     []int   // class → representative codomain index
	classes  [][]int // class → member codomain indices, ascending
}

// NewCoequalizer builds the coequalizer of f and g, which must be a parallel
// pair: same domain object and same codomain object.
func NewCoequalizer(f, g Arrow) (*Coequalizer, error) {
	if f.dom != g.dom || f.cod != g.cod {
		return nil, fmt.Errorf("%w: coequalizer needs a parallel pair", ErrShapeMismatch)
	}

	n := f.cod.Size()
	uf := NewUnionFind(n)
	for i := range f.graph {
		uf.Union(f.graph[i], g.graph[i])
	}

	// Number classes in order of first appearance.
	classOf := make([]int, n)
	rootClass := make(map[int]int, n)
	var reps []int
	var classes [][]int
	for i := 0; i < n; i++ {
		root := uf.Find(i)
		c, ok := rootClass[root]
		if !ok {
			c = len(reps)
			rootClass[root] = c
			reps = append(reps, i)
			classes = append(classes, nil)
		}
		classOf[i] = c
		classes[c] = append(classes[c], i)
	}

	labels := make([]string, len(reps))
	for c, r := range reps {
		labels[c] = "[" + f.cod.Label(r) + "]"
	}
	obj := NewObj(labels...)

	quotient := Arrow{dom: f.cod, cod: obj, graph: classOf}
	return &Coequalizer{f: f, g: g, obj: obj, quotient: quotient, reps: reps, classes: classes}, nil
}

// Obj returns the quotient carrier.
func (c *Coequalizer) Obj() *Obj { return c.obj }

// Quotient returns the quotient arrow from the pair's shared codomain.
func (c *Coequalizer) Quotient() Arrow { return c.quotient }

// Classes returns the equivalence classes as member index lists, one per
// quotient element, each ascending.
func (c *Coequalizer) Classes() [][]int {
	out := make([][]int, len(c.classes))
	for i, members := range c.classes {
		m := make([]int, len(members))
		copy(m, members)
		out[i] = m
	}
	return out
}

// Factor tests whether h factors through the quotient. h must start at the
// pair's shared codomain; a malformed h is an error, while an h that fails
// to coequalize the pair is an ordinary failed factoring. The mediator,
// when it exists, is unique because the quotient is epic.
func (c *Coequalizer) Factor(h Arrow) (Factoring, error) {
	if h.dom != c.f.cod {
		return Factoring{}, fmt.Errorf("%w: candidate does not start at the pair's codomain", ErrShapeMismatch)
	}
	for i := range c.f.graph {
		if h.graph[c.f.graph[i]] != h.graph[c.g.graph[i]] {
			return notFactored("arrow does not coequalize the pair at domain index %d", i), nil
		}
	}
	g := make([]int, len(c.reps))
	for cls, r := range c.reps {
		g[cls] = h.graph[r]
	}
	return factored(Arrow{dom: c.obj, cod: h.cod, graph: g}), nil
}
