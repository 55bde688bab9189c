package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/topos/internal/laws"
)

// RunFunc executes the law checks the browser displays. It is called once at
// startup and again on rerun.
type RunFunc func() ([]laws.Report, error)

// MsgReports delivers a finished run's reports to the browser.
type MsgReports []laws.Report

// MsgRunFailed delivers a run error to the browser.
type MsgRunFailed struct{ Err error }

// Browser is an interactive report list with a scrollable detail panel.
type Browser struct {
	keys     KeyMap
	spinner  spinner.Model
	detail   viewport.Model
	run      RunFunc
	reports  []laws.Report
	cursor   int
	showing  bool // detail panel open
	checking bool
	err      error
	width    int
	height   int
}

// NewBrowser creates a browser that runs checks via run.
func NewBrowser(run RunFunc) Browser {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Browser{
		keys:     DefaultKeyMap(),
		spinner:  s,
		detail:   viewport.New(80, 10),
		run:      run,
		checking: true,
		width:    80,
		height:   24,
	}
}

// Init starts the spinner and kicks off the first run.
func (b Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.runCmd())
}

func (b Browser) runCmd() tea.Cmd {
	run := b.run
	return func() tea.Msg {
		reports, err := run()
		if err != nil {
			return MsgRunFailed{Err: err}
		}
		return MsgReports(reports)
	}
}

// Update handles keypresses, run results, and window resizes.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.detail.Width = msg.Width - 4
		b.detail.Height = msg.Height - 6
		return b, nil

	case MsgReports:
		b.checking = false
		b.err = nil
		b.reports = msg
		if b.cursor >= len(b.reports) {
			b.cursor = 0
		}
		return b, nil

	case MsgRunFailed:
		b.checking = false
		b.err = msg.Err
		return b, nil

	case spinner.TickMsg:
		if !b.checking {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return b, cmd

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return b, nil
}

func (b Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keys.Quit):
		return b, tea.Quit

	case key.Matches(msg, b.keys.Back):
		b.showing = false
		return b, nil

	case key.Matches(msg, b.keys.Rerun):
		if b.checking {
			return b, nil
		}
		b.checking = true
		b.showing = false
		return b, tea.Batch(b.spinner.Tick, b.runCmd())

	case key.Matches(msg, b.keys.Up):
		if b.showing {
			var cmd tea.Cmd
			b.detail, cmd = b.detail.Update(msg)
			return b, cmd
		}
		if b.cursor > 0 {
			b.cursor--
		}
		return b, nil

	case key.Matches(msg, b.keys.Down):
		if b.showing {
			var cmd tea.Cmd
			b.detail, cmd = b.detail.Update(msg)
			return b, cmd
		}
		if b.cursor < len(b.reports)-1 {
			b.cursor++
		}
		return b, nil

	case key.Matches(msg, b.keys.Enter):
		if len(b.reports) == 0 {
			return b, nil
		}
		b.showing = true
		b.detail.SetContent(b.detailContent())
		b.detail.GotoTop()
		return b, nil
	}

	return b, nil
}

func (b Browser) detailContent() string {
	r := b.reports[b.cursor]
	var sb strings.Builder
	sb.WriteString(styleHeading.Render(r.Suite+": "+r.Check) + "\n\n")
	if r.Passed {
		sb.WriteString(stylePass.Render(iconPass+" passed") + "\n")
	} else {
		sb.WriteString(styleFail.Render(iconFail+" failed") + "\n")
		if r.Detail != "" {
			sb.WriteString("\n" + styleRowNormal.Render(r.Detail) + "\n")
		}
	}
	return sb.String()
}

// View renders the report list, or the detail panel when open.
func (b Browser) View() string {
	if b.checking {
		return fmt.Sprintf("\n %s %s\n", b.spinner.View(), styleDim.Render("running law checks..."))
	}
	if b.err != nil {
		return "\n " + styleFail.Render("error: ") + b.err.Error() + "\n\n " + b.footer()
	}
	if b.showing {
		return styleDetailBorder.Render(b.detail.View()) + "\n " + b.footer()
	}

	var sb strings.Builder
	sb.WriteString("\n " + styleHeading.Render("law checks") + "\n\n")
	for i, r := range b.reports {
		icon := stylePass.Render(iconPass)
		if !r.Passed {
			icon = styleFail.Render(iconFail)
		}
		line := r.Suite + ": " + r.Check
		if i == b.cursor {
			sb.WriteString(" " + styleSelectionIndicator.Render(selectionIndicator) + icon + " " + styleRowSelected.Render(line) + "\n")
		} else {
			sb.WriteString("  " + icon + " " + styleRowNormal.Render(line) + "\n")
		}
	}
	sb.WriteString("\n " + b.footer())
	return sb.String()
}

func (b Browser) footer() string {
	hints := []string{"↑/↓ move", "enter detail", "esc back", "r rerun", "q quit"}
	return styleDim.Render(strings.Join(hints, "  "))
}

// RunBrowser starts the browser in the alternate screen buffer and blocks
// until it exits.
func RunBrowser(run RunFunc) error {
	p := tea.NewProgram(NewBrowser(run), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("report browser: %w", err)
	}
	return nil
}
