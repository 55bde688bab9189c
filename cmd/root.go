package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "topos",
	Short: "Finite-set category toolkit",
	Long: "Topos builds limits, colimits, exponentials, and subobject classifiers\n" +
		"over finite carriers, and checks their universal-property laws.",
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .topos.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("workspace", "w", "", "workspace directory of declaration files")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".topos")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("TOPOS")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault auto-launches the TUI when the workspace directory exists
// in the cwd. Otherwise it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return cmd.Help()
	}
	if _, err := os.Stat(cfg.Workspace); os.IsNotExist(err) {
		return cmd.Help()
	}
	// Delegate to the tui subcommand.
	return runTUI(tuiCmd, nil)
}
