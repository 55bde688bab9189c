package cmd

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/topos/internal/ledger"
	"github.com/papapumpkin/topos/internal/ui"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List archived law-check runs",
	Long: "List past runs recorded in the ledger database, newest first. With a\n" +
		"run ID, print that run's per-check reports instead.",
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum runs to list (0 = all)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.LedgerPath == "" {
		return errors.New("no ledger_path configured; set it to archive runs")
	}

	store, err := ledger.Open(cmd.Context(), cfg.LedgerPath)
	if err != nil {
		return err
	}
	defer store.Close()

	printer := ui.New()
	if len(args) == 1 {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.New("run ID must be an integer")
		}
		reports, err := store.Reports(cmd.Context(), runID)
		if err != nil {
			return err
		}
		printer.Reports(reports)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}
	printer.History(runs)
	return nil
}
