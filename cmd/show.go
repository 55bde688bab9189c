package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/topos/internal/catalog"
	"github.com/papapumpkin/topos/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show workspace declarations",
	Long: "With no arguments, list every object, arrow, and diagram declared in the\n" +
		"workspace. With a name, print that declaration's elements or index map.",
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.Workspace)
	if err != nil {
		return err
	}

	printer := ui.New()
	if len(args) == 0 {
		printer.Workspace(cat)
		return nil
	}

	name := args[0]
	if obj, err := cat.Object(name); err == nil {
		printer.Object(name, obj)
		return nil
	}
	if arr, err := cat.Arrow(name); err == nil {
		printer.Arrow(name, arr)
		return nil
	}
	d, err := cat.Diagram(name)
	if err != nil {
		return err
	}
	for i, obj := range d.Objects() {
		printer.Object(fmt.Sprintf("%s position %d", name, i), obj)
	}
	for _, e := range d.Edges() {
		printer.Arrow(fmt.Sprintf("%s edge %d→%d", name, e.Src, e.Dst), e.Arr)
	}
	return nil
}
