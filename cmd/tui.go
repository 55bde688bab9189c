package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/topos/internal/laws"
	"github.com/papapumpkin/topos/internal/ui"
)

// tuiCmd launches the interactive report browser.
var tuiCmd = &cobra.Command{
	Use:   "tui [suite...]",
	Short: "Browse law-check reports interactively",
	Long: "Launch the full-screen report browser: runs the law suites, lists every\n" +
		"check, and opens a scrollable detail panel per report. Press r to rerun\n" +
		"after editing configuration or workspace files.",
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	run := func() ([]laws.Report, error) {
		return executeRun(cmd.Context(), cfg, args)
	}
	return ui.RunBrowser(run)
}
