// Package ui renders law-check reports, workspace declarations, and run
// history for the terminal, and hosts the interactive report browser.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/papapumpkin/topos/internal/catalog"
	"github.com/papapumpkin/topos/internal/fin"
	"github.com/papapumpkin/topos/internal/laws"
	"github.com/papapumpkin/topos/internal/ledger"
)

// Printer writes styled output to a terminal stream.
type Printer struct {
	w io.Writer
}

// New returns a Printer writing to stderr.
func New() *Printer {
	return &Printer{w: os.Stderr}
}

// NewTo returns a Printer writing to w.
func NewTo(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Reports prints one line per check and a final tally.
func (p *Printer) Reports(reports []laws.Report) {
	passed := 0
	for _, r := range reports {
		if r.Passed {
			passed++
			fmt.Fprintf(p.w, "%s %s\n", stylePass.Render(iconPass), styleRowNormal.Render(r.Suite+": "+r.Check))
			continue
		}
		fmt.Fprintf(p.w, "%s %s\n", styleFail.Render(iconFail), styleRowNormal.Render(r.Suite+": "+r.Check))
		if r.Detail != "" {
			fmt.Fprintf(p.w, "  %s\n", styleDim.Render(r.Detail))
		}
	}

	failed := len(reports) - passed
	if failed == 0 {
		fmt.Fprintf(p.w, "%s\n", stylePass.Render(fmt.Sprintf("%s %d check(s) passed", iconPass, passed)))
		return
	}
	fmt.Fprintf(p.w, "%s\n", styleFail.Render(fmt.Sprintf("%s %d of %d check(s) failed", iconFail, failed, len(reports))))
}

// Object prints a carrier's elements with their indices.
func (p *Printer) Object(name string, o *fin.Obj) {
	fmt.Fprintf(p.w, "%s %s\n", styleHeading.Render(name), styleDim.Render(fmt.Sprintf("(%d elements)", o.Size())))
	for i, label := range o.Labels() {
		fmt.Fprintf(p.w, "  %s %s\n", styleDim.Render(fmt.Sprintf("%d", i)), styleRowNormal.Render(label))
	}
}

// Arrow prints an arrow's index map as label assignments.
func (p *Printer) Arrow(name string, a fin.Arrow) {
	fmt.Fprintf(p.w, "%s %s\n", styleHeading.Render(name),
		styleDim.Render(fmt.Sprintf("(%d → %d)", a.Dom().Size(), a.Cod().Size())))
	for i := 0; i < a.Dom().Size(); i++ {
		fmt.Fprintf(p.w, "  %s %s %s\n",
			styleRowNormal.Render(a.Dom().Label(i)),
			styleDim.Render("↦"),
			styleRowNormal.Render(a.Cod().Label(a.At(i))))
	}
}

// Workspace prints a catalog's declaration names grouped by kind.
func (p *Printer) Workspace(c *catalog.Catalog) {
	fmt.Fprintf(p.w, "%s %s\n", styleHeading.Render("workspace"), styleDim.Render(c.Dir()))
	p.nameList("objects", c.ObjectNames())
	p.nameList("arrows", c.ArrowNames())
	p.nameList("diagrams", c.DiagramNames())
}

func (p *Printer) nameList(kind string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(p.w, "  %s %s\n", styleDim.Render(kind+":"), styleDim.Render("(none)"))
		return
	}
	fmt.Fprintf(p.w, "  %s %s\n", styleDim.Render(kind+":"), styleRowNormal.Render(strings.Join(names, ", ")))
}

// History prints archived runs, newest first.
func (p *Printer) History(runs []ledger.Run) {
	if len(runs) == 0 {
		fmt.Fprintf(p.w, "%s\n", styleDim.Render("no archived runs"))
		return
	}
	for _, r := range runs {
		verdict := stylePass.Render(iconPass)
		if r.Failed > 0 {
			verdict = styleFail.Render(iconFail)
		}
		fmt.Fprintf(p.w, "%s %s %s %s\n",
			verdict,
			styleHeading.Render(fmt.Sprintf("run %d", r.ID)),
			styleRowNormal.Render(fmt.Sprintf("%d passed, %d failed", r.Passed, r.Failed)),
			styleDim.Render(fmt.Sprintf("(seed %d, samples %d, %s)",
				r.Seed, r.Samples, r.StartedAt.Format("2006-01-02 15:04:05"))))
	}
}

// Error prints an error message.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, "%s%s\n", styleFail.Render("error: "), msg)
}

// Info prints a de-emphasized status message.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, "%s\n", styleDim.Render(msg))
}
