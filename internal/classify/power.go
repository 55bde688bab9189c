package classify

import (
	"fmt"

	"github.com/papapumpkin/topos/internal/closure"
	"github.com/papapumpkin/topos/internal/fin"
)

// Power is the power object P(X) = Ω^X. Each element of its carrier is the
// characteristic sequence of one subset of X, and membership is the
// exponential's evaluation arrow.
type Power struct {
	base *fin.Obj
	exp  *closure.Exp
}

// NewPower builds the power object of x.
func NewPower(x *fin.Obj) (*Power, error) {
	exp, err := closure.NewExp(omega, x)
	if err != nil {
		return nil, fmt.Errorf("power object: %w", err)
	}
	return &Power{base: x, exp: exp}, nil
}

// Obj returns the power carrier, of size 2^|X|.
func (p *Power) Obj() *fin.Obj { return p.exp.Obj() }

// Exp returns the underlying exponential Ω^X.
func (p *Power) Exp() *closure.Exp { return p.exp }

// Membership returns the membership arrow (P(X) × X) → Ω, reusing the
// exponential's evaluation arrow.
func (p *Power) Membership() fin.Arrow { return p.exp.Eval() }

// ElementOf resolves a subobject witness of X to the power-carrier index of
// the subset it presents. The witness's inclusion must be monic into X.
func (p *Power) ElementOf(sub Subobject) (int, error) {
	if sub.Include.Cod() != p.base {
		return 0, fmt.Errorf("%w: witness does not include into the power's base", fin.ErrShapeMismatch)
	}
	chi, err := Characteristic(sub.Include)
	if err != nil {
		return 0, err
	}
	return p.exp.Index(chi.Graph())
}

// Subset returns the ascending base indices belonging to the subset at
// power-carrier index i.
func (p *Power) Subset(i int) []int {
	graph := p.exp.GraphAt(i)
	var members []int
	for x, v := range graph {
		if v == 1 {
			members = append(members, x)
		}
	}
	return members
}
