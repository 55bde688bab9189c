// Package fin implements finite sets as ordered carriers of opaque elements,
// and total arrows between them as index maps. It also provides the primitive
// universal constructions — products, coproducts, equalizers, coequalizers —
// that every higher-shape limit and colimit reduces to.
//
// Objects are compared by identity, not by shape: two carriers of the same
// size are still different objects unless they are the same *Obj. Every
// construction in this package is pure; objects and arrows are never mutated
// after they are built.
package fin

import "strings"

// Obj is a finite carrier: an ordered, immutable sequence of elements.
// The only semantically observable properties of an element are its position
// (index) and the carrier's size. Labels exist for display only.
type Obj struct {
	labels []string
}

// NewObj creates a carrier whose elements are identified by position.
// The labels are copied; they have no semantic weight beyond display.
func NewObj(labels ...string) *Obj {
	ls := make([]string, len(labels))
	copy(ls, labels)
	return &Obj{labels: ls}
}

// Size returns the number of elements in the carrier.
func (o *Obj) Size() int {
	return len(o.labels)
}

// Label returns the display label of the element at index i, or the empty
// string when i is out of range.
func (o *Obj) Label(i int) string {
	if i < 0 || i >= len(o.labels) {
		return ""
	}
	return o.labels[i]
}

// Labels returns a copy of the carrier's display labels.
func (o *Obj) Labels() []string {
	ls := make([]string, len(o.labels))
	copy(ls, o.labels)
	return ls
}

// String renders the carrier as a braced element list.
func (o *Obj) String() string {
	return "{" + strings.Join(o.labels, " ") + "}"
}
