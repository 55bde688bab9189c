// Package topos bundles the finite-set categorical kernel into a single
// capability surface: identity, composition, the primitive (co)limits,
// generic diagram (co)limits, Cartesian closure, and the subobject
// classifier. Consumers program against the bundle; the kernel packages
// under internal/ carry the constructions.
package topos

import (
	"errors"
	"fmt"
	"math"

	"github.com/papapumpkin/topos/internal/classify"
	"github.com/papapumpkin/topos/internal/closure"
	"github.com/papapumpkin/topos/internal/diagram"
	"github.com/papapumpkin/topos/internal/fin"
	"github.com/papapumpkin/topos/internal/span"
)

// ErrBound is returned when a requested construction would enumerate a
// carrier larger than the kit's configured bound.
var ErrBound = errors.New("configured size bound exceeded")

// finPullbacks exposes the span package's pullback as the classifier's
// injectable capability.
type finPullbacks struct{}

func (finPullbacks) Pullback(f, g fin.Arrow) (classify.Span, error) {
	return span.NewPullback(f, g)
}

// Kit is the capability bundle for the category of finite sets. The zero
// value is not usable; construct with New, optionally overriding the
// pullback calculator the classifier derives through.
type Kit struct {
	deriver *classify.Deriver
	pulls   classify.PullbackCalculator

	maxProduct     int // 0 means unlimited
	maxExponential int // 0 means unlimited
}

// New creates a kit wired to the finite-set pullback specialization.
func New() *Kit {
	return NewWithPullbacks(finPullbacks{})
}

// NewWithPullbacks creates a kit whose classifier derives subobjects through
// the given pullback calculator instead of the finite-set default.
func NewWithPullbacks(pulls classify.PullbackCalculator) *Kit {
	return &Kit{deriver: classify.NewDeriver(pulls), pulls: pulls}
}

// Bounded returns a copy of the kit that refuses products and exponentials
// whose carriers would exceed the given sizes. Bounds of zero or below mean
// unlimited.
func (k *Kit) Bounded(maxProduct, maxExponential int) *Kit {
	bounded := *k
	bounded.maxProduct = max(maxProduct, 0)
	bounded.maxExponential = max(maxExponential, 0)
	return &bounded
}

// productSize returns the carrier size the product of the given objects
// would enumerate, or an error when it exceeds the kit's product bound.
func (k *Kit) productSize(factors []*fin.Obj) (int, error) {
	size := 1
	for _, f := range factors {
		if f.Size() != 0 && size > math.MaxInt/f.Size() {
			return 0, fmt.Errorf("%w: product of %d factors overflows", fin.ErrOverflow, len(factors))
		}
		size *= f.Size()
	}
	if k.maxProduct > 0 && size > k.maxProduct {
		return 0, fmt.Errorf("%w: product carrier needs %d elements, bound is %d", ErrBound, size, k.maxProduct)
	}
	return size, nil
}

// checkExponential errors when Y^S would exceed the kit's exponential bound.
func (k *Kit) checkExponential(y, s *fin.Obj) error {
	if k.maxExponential <= 0 {
		return nil
	}
	count := 1
	for i := 0; i < s.Size(); i++ {
		if y.Size() != 0 && count > math.MaxInt/max(y.Size(), 1) {
			return fmt.Errorf("%w: %d^%d functions overflow", fin.ErrOverflow, y.Size(), s.Size())
		}
		count *= y.Size()
		if count > k.maxExponential {
			return fmt.Errorf("%w: exponential carrier needs at least %d elements, bound is %d", ErrBound, count, k.maxExponential)
		}
	}
	return nil
}

// Identity returns the identity arrow on x.
func (k *Kit) Identity(x *fin.Obj) fin.Arrow { return fin.Identity(x) }

// Compose returns g∘f.
func (k *Kit) Compose(g, f fin.Arrow) (fin.Arrow, error) { return fin.Compose(g, f) }

// Product builds the finite Cartesian product of the factors, refusing
// carriers beyond the kit's product bound.
func (k *Kit) Product(factors ...*fin.Obj) (*fin.Product, error) {
	if _, err := k.productSize(factors); err != nil {
		return nil, err
	}
	return fin.NewProduct(factors...)
}

// Coproduct builds the tagged disjoint union of the parts.
func (k *Kit) Coproduct(parts ...*fin.Obj) *fin.Coproduct {
	return fin.NewCoproduct(parts...)
}

// Equalize builds the equalizer of a parallel pair.
func (k *Kit) Equalize(f, g fin.Arrow) (*fin.Equalizer, error) {
	return fin.NewEqualizer(f, g)
}

// Coequalize builds the coequalizer of a parallel pair.
func (k *Kit) Coequalize(f, g fin.Arrow) (*fin.Coequalizer, error) {
	return fin.NewCoequalizer(f, g)
}

// Limit computes the limit of a finite diagram. The limit enumerates the
// product of all diagram objects first, so the kit's product bound applies.
func (k *Kit) Limit(d *diagram.Diagram) (*diagram.Limit, error) {
	if _, err := k.productSize(d.Objects()); err != nil {
		return nil, err
	}
	return d.Limit()
}

// Colimit computes the colimit of a finite diagram.
func (k *Kit) Colimit(d *diagram.Diagram) (*diagram.Colimit, error) { return d.Colimit() }

// Pullback computes the pullback of a cospan through the kit's calculator.
func (k *Kit) Pullback(f, g fin.Arrow) (classify.Span, error) {
	return k.pulls.Pullback(f, g)
}

// Pushout computes the pushout of a span.
func (k *Kit) Pushout(f, g fin.Arrow) (*span.Pushout, error) {
	return span.NewPushout(f, g)
}

// Exponential builds the function-space object Y^S, refusing carriers
// beyond the kit's exponential bound.
func (k *Kit) Exponential(y, s *fin.Obj) (*closure.Exp, error) {
	if err := k.checkExponential(y, s); err != nil {
		return nil, err
	}
	return closure.NewExp(y, s)
}

// Omega returns the truth-value object.
func (k *Kit) Omega() *fin.Obj { return classify.Omega() }

// Truth returns the truth arrow into Ω.
func (k *Kit) Truth() fin.Arrow { return classify.Truth() }

// Characteristic returns the classifying arrow of a monic.
func (k *Kit) Characteristic(m fin.Arrow) (fin.Arrow, error) {
	return classify.Characteristic(m)
}

// Classify recovers the canonical subobject a characteristic arrow
// classifies, by pulling the truth arrow back along it.
func (k *Kit) Classify(chi fin.Arrow) (classify.Subobject, error) {
	return k.deriver.Classify(chi)
}

// MonicIso compares two monics into the same object and, when they present
// the same subobject, returns the verified isomorphism between them.
func (k *Kit) MonicIso(m1, m2 fin.Arrow) (classify.IsoResult, error) {
	return classify.MonicIso(m1, m2)
}

// Power builds the power object P(X) = Ω^X. As an exponential over Ω, the
// kit's exponential bound applies.
func (k *Kit) Power(x *fin.Obj) (*classify.Power, error) {
	if err := k.checkExponential(k.Omega(), x); err != nil {
		return nil, err
	}
	return classify.NewPower(x)
}
