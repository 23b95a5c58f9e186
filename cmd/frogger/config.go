package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a game would start with, after applying
--config and --difficulty, as YAML. Redirect it to a file to start a
custom config.

Examples:
  frogger config > my-frogger.yaml
  frogger config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
