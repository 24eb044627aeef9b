package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would start with, after the search
order (--config, ~/.blocks/configs/blocks.yaml, ./configs/blocks.yaml,
built-in defaults) and the --difficulty flag are applied.

Examples:
  blocks config
  blocks config --difficulty hard > ~/.blocks/configs/blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
