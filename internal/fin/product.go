package fin

import (
	"fmt"
	"math"
	"strings"
)

// Product is a finite Cartesian product. Its carrier enumerates coordinate
// tuples first-factor-major, so the tuple (c0, c1, …) sits at index
// c0·s0 + c1·s1 + …, where the strides s form a mixed-radix positional
// system. The strides double as the coordinate→index lookup, replacing any
// serialized-key table. The stride table is built once and never mutated.
type Product struct {
	obj         *Obj
	factors     []*Obj
	strides     []int
	projections []Arrow
}

// NewProduct builds the Cartesian product of the given factors. An empty
// factor list yields the terminal object (a one-element carrier). Returns
// ErrOverflow when the tuple count cannot be enumerated.
func NewProduct(factors ...*Obj) (*Product, error) {
	fs := make([]*Obj, len(factors))
	copy(fs, factors)

	size := 1
	for _, f := range fs {
		if f.Size() != 0 && size > math.MaxInt/f.Size() {
			return nil, fmt.Errorf("%w: product of %d factors", ErrOverflow, len(fs))
		}
		size *= f.Size()
	}

	strides := make([]int, len(fs))
	acc := 1
	for k := len(fs) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= fs[k].Size()
	}

	labels := make([]string, size)
	coords := make([]int, len(fs))
	for i := 0; i < size; i++ {
		decodeCoords(i, strides, fs, coords)
		parts := make([]string, len(fs))
		for k, c := range coords {
			parts[k] = fs[k].Label(c)
		}
		labels[i] = "(" + strings.Join(parts, ",") + ")"
	}
	obj := NewObj(labels...)

	p := &Product{obj: obj, factors: fs, strides: strides}
	p.projections = make([]Arrow, len(fs))
	for k := range fs {
		g := make([]int, size)
		for i := 0; i < size; i++ {
			g[i] = i / strides[k] % fs[k].Size()
		}
		p.projections[k] = Arrow{dom: obj, cod: fs[k], graph: g}
	}
	return p, nil
}

// decodeCoords writes the coordinate tuple of carrier index i into out.
func decodeCoords(i int, strides []int, factors []*Obj, out []int) {
	for k := range factors {
		out[k] = i / strides[k] % factors[k].Size()
	}
}

// Obj returns the product carrier.
func (p *Product) Obj() *Obj { return p.obj }

// Factors returns the factor objects in order.
func (p *Product) Factors() []*Obj {
	fs := make([]*Obj, len(p.factors))
	copy(fs, p.factors)
	return fs
}

// Arity returns the number of factors.
func (p *Product) Arity() int { return len(p.factors) }

// Projection returns the k-th projection arrow, from the product carrier to
// the k-th factor.
func (p *Product) Projection(k int) Arrow { return p.projections[k] }

// Index resolves a coordinate tuple to its carrier index. The enumeration
// order is fixed at construction, so this is pure stride arithmetic.
func (p *Product) Index(coords []int) (int, error) {
	if len(coords) != len(p.factors) {
		return 0, fmt.Errorf("%w: got %d coordinates for %d factors", ErrArity, len(coords), len(p.factors))
	}
	idx := 0
	for k, c := range coords {
		if c < 0 || c >= p.factors[k].Size() {
			return 0, fmt.Errorf("%w: coordinate %d is %d, factor size %d", ErrIndexRange, k, c, p.factors[k].Size())
		}
		idx += c * p.strides[k]
	}
	return idx, nil
}

// Coords returns the coordinate tuple at carrier index i.
func (p *Product) Coords(i int) []int {
	out := make([]int, len(p.factors))
	decodeCoords(i, p.strides, p.factors, out)
	return out
}

// Tuple builds the unique mediating arrow ⟨legs⟩ from dom into the product,
// given one leg per factor. Each leg must start at dom (the same object) and
// end at its factor.
func (p *Product) Tuple(dom *Obj, legs []Arrow) (Arrow, error) {
	if len(legs) != len(p.factors) {
		return Arrow{}, fmt.Errorf("%w: got %d legs for %d factors", ErrArity, len(legs), len(p.factors))
	}
	for k, leg := range legs {
		if leg.dom != dom {
			return Arrow{}, fmt.Errorf("%w: leg %d does not start at the tuple domain", ErrShapeMismatch, k)
		}
		if leg.cod != p.factors[k] {
			return Arrow{}, fmt.Errorf("%w: leg %d does not end at factor %d", ErrShapeMismatch, k, k)
		}
	}

	g := make([]int, dom.Size())
	coords := make([]int, len(p.factors))
	for i := range g {
		for k, leg := range legs {
			coords[k] = leg.graph[i]
		}
		idx, err := p.Index(coords)
		if err != nil {
			// Unreachable for validated legs: every in-range coordinate
			// tuple is enumerated.
			return Arrow{}, fmt.Errorf("tuple at domain index %d: %w", i, err)
		}
		g[i] = idx
	}
	return Arrow{dom: dom, cod: p.obj, graph: g}, nil
}
