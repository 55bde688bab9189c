// Package closure builds function-space objects over finite sets: for
// carriers S and Y, the exponential Y^S enumerates every total function
// S→Y, together with the evaluation arrow and exact curry/uncurry
// conversions.
package closure

import (
	"fmt"
	"math"
	"strings"

	"github.com/papapumpkin/topos/internal/fin"
)

// Exp is an exponential object Y^S. Its carrier enumerates every length-|S|
// index sequence with entries below |Y|, first position major, so a function
// graph and its carrier index convert in both directions by mixed-radix
// arithmetic — the packed-integer replacement for a serialized-key lookup
// table. All tables are built once and never mutated.
type Exp struct {
	obj  *fin.Obj
	arg  *fin.Obj // S
	cod  *fin.Obj // Y
	size int

	pairing *fin.Product // Exp × S, owned: the evaluation arrow's domain
	eval    fin.Arrow
}

// NewExp builds the exponential Y^S. The carrier has |Y|^|S| elements;
// ErrOverflow is returned when that count cannot be enumerated. The empty
// base gives the one-element carrier holding the empty function, including
// when Y is itself empty.
func NewExp(y, s *fin.Obj) (*Exp, error) {
	size := 1
	for i := 0; i < s.Size(); i++ {
		if y.Size() != 0 && size > math.MaxInt/y.Size() {
			return nil, fmt.Errorf("%w: %d^%d functions", fin.ErrOverflow, y.Size(), s.Size())
		}
		size *= y.Size()
	}

	labels := make([]string, size)
	graph := make([]int, s.Size())
	for i := 0; i < size; i++ {
		decodeGraph(i, y.Size(), graph)
		parts := make([]string, len(graph))
		for k, v := range graph {
			parts[k] = fmt.Sprintf("%d", v)
		}
		labels[i] = "[" + strings.Join(parts, ",") + "]"
	}
	obj := fin.NewObj(labels...)

	pairing, err := fin.NewProduct(obj, s)
	if err != nil {
		return nil, fmt.Errorf("exponential pairing: %w", err)
	}

	evalGraph := make([]int, pairing.Obj().Size())
	for p := range evalGraph {
		coords := pairing.Coords(p)
		decodeGraph(coords[0], y.Size(), graph)
		evalGraph[p] = graph[coords[1]]
	}
	eval, err := fin.NewArrow(pairing.Obj(), y, evalGraph)
	if err != nil {
		return nil, fmt.Errorf("evaluation arrow: %w", err)
	}

	return &Exp{obj: obj, arg: s, cod: y, size: size, pairing: pairing, eval: eval}, nil
}

// decodeGraph writes the function graph of carrier index i into out,
// first position major.
func decodeGraph(i, base int, out []int) {
	for k := len(out) - 1; k >= 0; k-- {
		out[k] = i % base
		i /= base
	}
}

// Obj returns the exponential carrier.
func (e *Exp) Obj() *fin.Obj { return e.obj }

// Arg returns the base object S.
func (e *Exp) Arg() *fin.Obj { return e.arg }

// Cod returns the value object Y.
func (e *Exp) Cod() *fin.Obj { return e.cod }

// Pairing returns the owned product Exp × S that the evaluation arrow
// starts from.
func (e *Exp) Pairing() *fin.Product { return e.pairing }

// Eval returns the evaluation arrow (Y^S × S) → Y: it reads the S-indexed
// coordinate of the paired function.
func (e *Exp) Eval() fin.Arrow { return e.eval }

// GraphAt returns the function graph behind carrier index i.
func (e *Exp) GraphAt(i int) []int {
	out := make([]int, e.arg.Size())
	decodeGraph(i, e.cod.Size(), out)
	return out
}

// Index resolves a function graph to its carrier index.
func (e *Exp) Index(graph []int) (int, error) {
	if len(graph) != e.arg.Size() {
		return 0, fmt.Errorf("%w: got %d entries for base size %d", fin.ErrLength, len(graph), e.arg.Size())
	}
	idx := 0
	for _, v := range graph {
		if v < 0 || v >= e.cod.Size() {
			return 0, fmt.Errorf("%w: entry %d, value carrier size %d", fin.ErrIndexRange, v, e.cod.Size())
		}
		idx = idx*e.cod.Size() + v
	}
	return idx, nil
}

// Curry transposes h: X×S → Y into X → Y^S. xs must be a product whose
// second factor is this exponential's base S, and h must start at exactly
// that product object and end at Y.
func (e *Exp) Curry(xs *fin.Product, h fin.Arrow) (fin.Arrow, error) {
	x, err := e.checkPairing(xs)
	if err != nil {
		return fin.Arrow{}, err
	}
	if h.Dom() != xs.Obj() {
		return fin.Arrow{}, fmt.Errorf("%w: arrow does not start at the pairing product", fin.ErrShapeMismatch)
	}
	if h.Cod() != e.cod {
		return fin.Arrow{}, fmt.Errorf("%w: arrow does not end at the exponential's value object", fin.ErrShapeMismatch)
	}

	g := make([]int, x.Size())
	graph := make([]int, e.arg.Size())
	coords := make([]int, 2)
	for xi := range g {
		for si := 0; si < e.arg.Size(); si++ {
			coords[0], coords[1] = xi, si
			p, err := xs.Index(coords)
			if err != nil {
				return fin.Arrow{}, err
			}
			graph[si] = h.At(p)
		}
		idx, err := e.Index(graph)
		if err != nil {
			return fin.Arrow{}, err
		}
		g[xi] = idx
	}
	return fin.NewArrow(x, e.obj, g)
}

// Uncurry transposes k: X → Y^S back into X×S → Y. It is the exact inverse
// of Curry over the same pairing product: uncurrying a curried arrow (and
// currying an uncurried one) reproduces the original index graph.
func (e *Exp) Uncurry(xs *fin.Product, k fin.Arrow) (fin.Arrow, error) {
	x, err := e.checkPairing(xs)
	if err != nil {
		return fin.Arrow{}, err
	}
	if k.Dom() != x {
		return fin.Arrow{}, fmt.Errorf("%w: arrow does not start at the pairing's first factor", fin.ErrShapeMismatch)
	}
	if k.Cod() != e.obj {
		return fin.Arrow{}, fmt.Errorf("%w: arrow does not end at the exponential", fin.ErrShapeMismatch)
	}

	g := make([]int, xs.Obj().Size())
	for p := range g {
		coords := xs.Coords(p)
		g[p] = e.GraphAt(k.At(coords[0]))[coords[1]]
	}
	return fin.NewArrow(xs.Obj(), e.cod, g)
}

// checkPairing validates that xs is a binary product over (X, S) for this
// exponential's base S and returns X.
func (e *Exp) checkPairing(xs *fin.Product) (*fin.Obj, error) {
	if xs.Arity() != 2 {
		return nil, fmt.Errorf("%w: pairing product must have exactly two factors", fin.ErrArity)
	}
	factors := xs.Factors()
	if factors[1] != e.arg {
		return nil, fmt.Errorf("%w: pairing's second factor is not the exponential's base", fin.ErrShapeMismatch)
	}
	return factors[0], nil
}
