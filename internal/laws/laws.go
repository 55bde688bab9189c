// Package laws runs the kernel's universal-property laws over deterministic
// sample data and reports pass/fail per check. Sampling is seeded, so a run
// is reproducible from its configuration alone. Failed checks are ordinary
// reports, not errors; errors are reserved for malformed suite requests and
// kernel contract violations, which signal a bug in the harness itself.
package laws

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/papapumpkin/topos"
	"github.com/papapumpkin/topos/internal/fin"
)

// ErrUnknownSuite is returned when a requested suite name is not registered.
var ErrUnknownSuite = errors.New("unknown law suite")

// Report is the outcome of a single law check.
type Report struct {
	Suite  string `json:"suite"`
	Check  string `json:"check"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Runner executes law suites against a capability kit with seeded sampling.
type Runner struct {
	kit     *topos.Kit
	rng     *rand.Rand
	samples int
}

// NewRunner creates a runner. samples controls how many sampled instances
// each randomized check sees; values below 1 are treated as 1.
func NewRunner(kit *topos.Kit, seed int64, samples int) *Runner {
	if samples < 1 {
		samples = 1
	}
	return &Runner{kit: kit, rng: rand.New(rand.NewSource(seed)), samples: samples}
}

// Suites returns the registered suite names in execution order.
func Suites() []string {
	return []string{
		"category",
		"product",
		"coproduct",
		"equalizer",
		"coequalizer",
		"span",
		"diagram",
		"closure",
		"classifier",
	}
}

// Run executes the named suites, or every registered suite when none are
// named, and returns one report per check.
func (r *Runner) Run(suites ...string) ([]Report, error) {
	registry := map[string]func() ([]Report, error){
		"category":    r.categorySuite,
		"product":     r.productSuite,
		"coproduct":   r.coproductSuite,
		"equalizer":   r.equalizerSuite,
		"coequalizer": r.coequalizerSuite,
		"span":        r.spanSuite,
		"diagram":     r.diagramSuite,
		"closure":     r.closureSuite,
		"classifier":  r.classifierSuite,
	}
	if len(suites) == 0 {
		suites = Suites()
	}

	var out []Report
	for _, name := range suites {
		suite, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
		}
		reports, err := suite()
		if err != nil {
			return nil, fmt.Errorf("suite %q: %w", name, err)
		}
		out = append(out, reports...)
	}
	return out, nil
}

// obj samples a carrier with between min and max elements.
func (r *Runner) obj(prefix string, min, max int) *fin.Obj {
	n := min + r.rng.Intn(max-min+1)
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return fin.NewObj(labels...)
}

// arrow samples a total arrow between two carriers. The codomain must be
// nonempty unless the domain is empty.
func (r *Runner) arrow(dom, cod *fin.Obj) (fin.Arrow, error) {
	g := make([]int, dom.Size())
	for i := range g {
		g[i] = r.rng.Intn(cod.Size())
	}
	return fin.NewArrow(dom, cod, g)
}

// monic samples an injective arrow; the codomain must be at least as large
// as the domain.
func (r *Runner) monic(dom, cod *fin.Obj) (fin.Arrow, error) {
	perm := r.rng.Perm(cod.Size())
	g := make([]int, dom.Size())
	copy(g, perm)
	return fin.NewArrow(dom, cod, g)
}

func pass(suite, check string) Report {
	return Report{Suite: suite, Check: check, Passed: true}
}

func fail(suite, check, format string, args ...any) Report {
	return Report{Suite: suite, Check: check, Detail: fmt.Sprintf(format, args...)}
}
