package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/topos/internal/catalog"
	"github.com/papapumpkin/topos/internal/ui"
)

var colimitCmd = &cobra.Command{
	Use:   "colimit <diagram>",
	Short: "Compute the colimit of a declared diagram",
	Long: "Compute the colimit cocone of a diagram declared in the workspace: the\n" +
		"nadir carrier and one injection per diagram position.",
	Args: cobra.ExactArgs(1),
	RunE: runColimit,
}

func init() {
	rootCmd.AddCommand(colimitCmd)
}

func runColimit(cmd *cobra.Command, args []string) error {
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

	colim, err := d.Colimit()
	if err != nil {
		return fmt.Errorf("computing colimit of %q: %w", args[0], err)
	}

	printer := ui.New()
	printer.Object("colimit of "+args[0], colim.Obj())
	for i := range d.Objects() {
		printer.Arrow(fmt.Sprintf("injection %d", i), colim.Injection(i))
	}
	return nil
}
