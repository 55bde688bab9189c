// Package classify implements the subobject classifier for finite sets: the
// two-element truth object Ω, characteristic arrows of monics, the canonical
// subobject recovered by pulling the truth arrow back, the computational
// uniqueness-up-to-isomorphism proof for monics sharing a characteristic,
// and the power object P(X) = Ω^X.
package classify

import (
	"errors"
	"fmt"

	"github.com/papapumpkin/topos/internal/fin"
)

// ErrNotMonic is returned when an arrow that must be monic is not. Asking
// for the characteristic of a non-injective arrow is a caller bug, not a
// checkable outcome.
var ErrNotMonic = errors.New("arrow is not monic")

// omega, point and truth are the fixed classifier singletons. They are
// immutable after package initialization; identity-sensitive callers always
// see the same objects.
var (
	omega = fin.NewObj("false", "true")
	point = fin.NewObj("*")
	truth = mustTruth()
)

func mustTruth() fin.Arrow {
	t, err := fin.NewArrow(point, omega, []int{1})
	if err != nil {
		panic(err) // unreachable: the graph is statically valid
	}
	return t
}

// Omega returns the truth-value object, the two-element carrier
// [false, true].
func Omega() *fin.Obj { return omega }

// Point returns the fixed terminal object the truth arrow starts from.
func Point() *fin.Obj { return point }

// Truth returns the truth arrow: the point of Ω picking true.
func Truth() fin.Arrow { return truth }

// Characteristic returns the classifying arrow of a monic m: X↪Y — the
// arrow Y→Ω that is true exactly on m's image. A non-monic argument is a
// contract violation.
func Characteristic(m fin.Arrow) (fin.Arrow, error) {
	if !m.IsMonic() {
		return fin.Arrow{}, fmt.Errorf("%w: characteristic needs an injective arrow", ErrNotMonic)
	}
	g := make([]int, m.Cod().Size())
	for i := 0; i < m.Dom().Size(); i++ {
		g[m.At(i)] = 1
	}
	return fin.NewArrow(m.Cod(), omega, g)
}

// Subobject is a witness for a subobject: a carrier together with its monic
// inclusion into the ambient object.
type Subobject struct {
	Obj     *fin.Obj
	Include fin.Arrow
}

// Characteristic returns the classifying arrow of the witness's inclusion.
func (s Subobject) Characteristic() (fin.Arrow, error) {
	return Characteristic(s.Include)
}
