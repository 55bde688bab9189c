package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/topos/internal/telemetry"
	"github.com/papapumpkin/topos/internal/ui"
	"github.com/papapumpkin/topos/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [suite...]",
	Short: "Re-run law suites when the workspace changes",
	Long: "Run the law suites once, then watch the workspace directory and re-run\n" +
		"them whenever a declaration file is edited. Stop with ctrl-c.",
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var emitter *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		emitter, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return err
		}
		defer emitter.Close()
	}

	printer := ui.New()
	rerun := func() {
		reports, err := executeRun(ctx, cfg, args)
		if err != nil {
			printer.Error(err.Error())
			return
		}
		printer.Reports(reports)
	}

	rerun()

	w, err := watch.NewWatcher(cfg.Workspace)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	printer.Info("watching " + cfg.Workspace + " (ctrl-c to stop)")
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			_ = emitter.Emit(telemetry.Event{
				Timestamp: time.Now(),
				Kind:      telemetry.KindWorkspaceChange,
				Data:      map[string]string{"file": change.File},
			})
			printer.Info("changed: " + filepath.Base(change.File))
			rerun()
		}
	}
}
