package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/topos"
	"github.com/papapumpkin/topos/internal/catalog"
	"github.com/papapumpkin/topos/internal/ui"
)

var limitCmd = &cobra.Command{
	Use:   "limit <diagram>",
	Short: "Compute the limit of a declared diagram",
	Long: "Compute the limit cone of a diagram declared in the workspace: the apex\n" +
		"carrier and one projection per diagram position.",
	Args: cobra.ExactArgs(1),
	RunE: runLimit,
}

func init() {
	rootCmd.AddCommand(limitCmd)
}

func runLimit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Workspace)
	if err != nil {
		return err
	}
	d, err := cat.Diagram(args[0])
	if err != nil {
		return err
	}

	kit := topos.New().Bounded(cfg.MaxProductSize, cfg.MaxExponentialSize)
	lim, err := kit.Limit(d)
	if err != nil {
		return fmt.Errorf("computing limit of %q: %w", args[0], err)
	}

	printer := ui.New()
	printer.Object("limit of "+args[0], lim.Obj())
	for i := range d.Objects() {
		printer.Arrow(fmt.Sprintf("projection %d", i), lim.Projection(i))
	}
	return nil
}
