// Package diagram computes limits and colimits of arbitrary finite-shape
// diagrams over finite sets. Both reduce to the two primitive constructions:
// a limit is one product and one equalizer, a colimit is one coproduct and
// one coequalizer.
package diagram

import (
	"errors"
	"fmt"

	"github.com/papapumpkin/topos/internal/fin"
)

// ErrPosition is returned when a structure arrow references a position
// outside the diagram's object list.
var ErrPosition = errors.New("diagram position out of range")

// Edge is a structure arrow between two diagram positions.
type Edge struct {
	Src, Dst int
	Arr      fin.Arrow
}

// Diagram is a finite shape: an ordered list of objects plus any number of
// structure arrows between positions. Positions may carry the same object
// more than once, and any ordered pair of positions may carry several
// arrows.
type Diagram struct {
	objects []*fin.Obj
	edges   []Edge
}

// New creates a diagram over the given objects with no structure arrows.
func New(objects ...*fin.Obj) *Diagram {
	objs := make([]*fin.Obj, len(objects))
	copy(objs, objects)
	return &Diagram{objects: objs}
}

// Objects returns the diagram's objects in position order.
func (d *Diagram) Objects() []*fin.Obj {
	objs := make([]*fin.Obj, len(d.objects))
	copy(objs, d.objects)
	return objs
}

// Edges returns the diagram's structure arrows.
func (d *Diagram) Edges() []Edge {
	es := make([]Edge, len(d.edges))
	copy(es, d.edges)
	return es
}

// Add appends a structure arrow from position src to position dst. The
// arrow's endpoint objects must be the objects at those positions.
func (d *Diagram) Add(src, dst int, a fin.Arrow) error {
	if src < 0 || src >= len(d.objects) {
		return fmt.Errorf("%w: source %d of %d objects", ErrPosition, src, len(d.objects))
	}
	if dst < 0 || dst >= len(d.objects) {
		return fmt.Errorf("%w: destination %d of %d objects", ErrPosition, dst, len(d.objects))
	}
	if a.Dom() != d.objects[src] {
		return fmt.Errorf("%w: arrow does not start at position %d", fin.ErrShapeMismatch, src)
	}
	if a.Cod() != d.objects[dst] {
		return fmt.Errorf("%w: arrow does not end at position %d", fin.ErrShapeMismatch, dst)
	}
	d.edges = append(d.edges, Edge{Src: src, Dst: dst, Arr: a})
	return nil
}
