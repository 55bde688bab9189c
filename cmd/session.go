package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/papapumpkin/topos"
	"github.com/papapumpkin/topos/internal/config"
	"github.com/papapumpkin/topos/internal/laws"
	"github.com/papapumpkin/topos/internal/ledger"
	"github.com/papapumpkin/topos/internal/telemetry"
)

// loadConfig wraps config.Load with a uniform error message for commands.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// executeRun runs the named law suites, streams telemetry when configured,
// and archives the run when a ledger path is configured.
func executeRun(ctx context.Context, cfg config.Config, suites []string) ([]laws.Report, error) {
	var emitter *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		var err error
		emitter, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return nil, err
		}
		defer emitter.Close()
	}

	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindRunStart,
		Data:      map[string]any{"seed": cfg.Seed, "samples": cfg.Samples, "suites": suites},
	})

	kit := topos.New().Bounded(cfg.MaxProductSize, cfg.MaxExponentialSize)
	runner := laws.NewRunner(kit, cfg.Seed, cfg.Samples)
	reports, err := runner.Run(suites...)
	if err != nil {
		return nil, err
	}

	passed, failed := 0, 0
	for _, r := range reports {
		kind := telemetry.KindCheckPass
		if r.Passed {
			passed++
		} else {
			failed++
			kind = telemetry.KindCheckFail
		}
		evt := telemetry.Event{
			Timestamp: time.Now(),
			Kind:      kind,
			Suite:     r.Suite,
			Check:     r.Check,
		}
		if r.Detail != "" {
			evt.Data = r.Detail
		}
		_ = emitter.Emit(evt)
	}

	_ = emitter.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      telemetry.KindRunDone,
		Data:      map[string]int{"passed": passed, "failed": failed},
	})

	if cfg.LedgerPath != "" {
		store, err := ledger.Open(ctx, cfg.LedgerPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		if _, err := store.RecordRun(ctx, cfg.Seed, cfg.Samples, suites, reports); err != nil {
			return nil, err
		}
	}

	return reports, nil
}
