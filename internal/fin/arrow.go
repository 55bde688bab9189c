package fin

import (
	"fmt"
	"strings"
)

// Arrow is a total function between two carriers, stored as an index graph:
// one codomain index per domain element. Arrows are immutable values; the
// zero Arrow is invalid and only constructors produce valid ones.
type Arrow struct {
	dom, cod *Obj
	graph    []int
}

// NewArrow builds an arrow from dom to cod with the given index graph.
// The graph must have exactly dom.Size() entries, each a valid cod index.
func NewArrow(dom, cod *Obj, graph []int) (Arrow, error) {
	if dom == nil || cod == nil {
		return Arrow{}, fmt.Errorf("%w: nil endpoint object", ErrShapeMismatch)
	}
	if len(graph) != dom.Size() {
		return Arrow{}, fmt.Errorf("%w: got %d entries for domain size %d", ErrLength, len(graph), dom.Size())
	}
	g := make([]int, len(graph))
	for i, v := range graph {
		if v < 0 || v >= cod.Size() {
			return Arrow{}, fmt.Errorf("%w: entry %d maps to %d, codomain size %d", ErrIndexRange, i, v, cod.Size())
		}
		g[i] = v
	}
	return Arrow{dom: dom, cod: cod, graph: g}, nil
}

// Identity returns the identity arrow on x.
func Identity(x *Obj) Arrow {
	g := make([]int, x.Size())
	for i := range g {
		g[i] = i
	}
	return Arrow{dom: x, cod: x, graph: g}
}

// Compose returns g∘f. The codomain object of f must be the same object as
// the domain object of g; carriers of merely equal size do not compose.
func Compose(g, f Arrow) (Arrow, error) {
	if f.cod != g.dom {
		return Arrow{}, fmt.Errorf("%w: codomain of inner arrow is not the domain of the outer arrow", ErrShapeMismatch)
	}
	out := make([]int, len(f.graph))
	for i, v := range f.graph {
		out[i] = g.graph[v]
	}
	return Arrow{dom: f.dom, cod: g.cod, graph: out}, nil
}

// Equal reports whether f and g share both endpoint objects and agree on
// every domain index.
func Equal(f, g Arrow) bool {
	if f.dom != g.dom || f.cod != g.cod {
		return false
	}
	for i, v := range f.graph {
		if g.graph[i] != v {
			return false
		}
	}
	return true
}

// Dom returns the arrow's domain object.
func (f Arrow) Dom() *Obj { return f.dom }

// Cod returns the arrow's codomain object.
func (f Arrow) Cod() *Obj { return f.cod }

// At returns the codomain index that domain index i maps to.
func (f Arrow) At(i int) int { return f.graph[i] }

// Graph returns a copy of the arrow's index graph.
func (f Arrow) Graph() []int {
	g := make([]int, len(f.graph))
	copy(g, f.graph)
	return g
}

// IsMonic reports whether the arrow is injective.
func (f Arrow) IsMonic() bool {
	seen := make([]bool, f.cod.Size())
	for _, v := range f.graph {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// IsEpic reports whether the arrow is surjective.
func (f Arrow) IsEpic() bool {
	seen := make([]bool, f.cod.Size())
	hit := 0
	for _, v := range f.graph {
		if !seen[v] {
			seen[v] = true
			hit++
		}
	}
	return hit == f.cod.Size()
}

// String renders the arrow as its index graph.
func (f Arrow) String() string {
	parts := make([]string, len(f.graph))
	for i, v := range f.graph {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
