// blocks is a falling-block stacking game for the terminal.
//
// Usage:
//
//	blocks play              - Play in this terminal
//	blocks serve             - Start SSH server for remote play
//	blocks replays           - List recorded sessions
//	blocks replay <id>       - Re-run a recorded session headlessly
//	blocks config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal, hard, or fixed
//	--seed <value>       - RNG seed for a reproducible piece order
//	--db <path>          - Replay database (default: ~/.blocks/replays.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - stack falling pieces in your terminal",
	Long: `Blocks is a terminal falling-block game. Pieces fall one row per
gravity tick; fill a row to clear it and score 10 points.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  replays  - List recorded sessions
  replay   - Re-run a recorded session
  config   - Print the effective configuration

Examples:
  blocks play
  blocks play --difficulty hard
  blocks serve --ssh :2222
  blocks replays`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/replays.db", "Path to replay database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and the difficulty flag.
func loadConfig() (config.BlocksConfig, error) {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.IsValidPreset(preset) {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal, hard, or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	} else if !config.IsFixedPreset(cfg.Difficulty) {
		config.ApplyPreset(&cfg, cfg.Difficulty)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
