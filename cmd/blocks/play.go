package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var flagLogPath string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A/H      - Move left
  Right/D/L     - Move right
  Up/W/K/X      - Rotate clockwise
  Down/S/J      - Soft drop one row
  P/Esc         - Pause
  R             - Restart
  Ctrl+S        - Save a screenshot to ~/.blocks/screenshots
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - One row per second
  normal - One row every 600ms
  hard   - One row every 300ms
  fixed  - Keep gravity.period_ms from the config

The session is recorded; list recordings with 'blocks replays'.

Examples:
  blocks play
  blocks play --difficulty hard
  blocks play --seed 42 --log ./blocks.log
  blocks play --config ./my-blocks.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var out io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "blocks",
		Level:           log.DebugLevel,
	})

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	game, err := tui.NewGame(tui.GameOptions{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc.Seed = game.Seed
	if err := tui.Run(ctx, game, rc); err != nil {
		return err
	}

	// Recording is best effort; the game is already over.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open replay database", "error", err)
		return nil
	}
	defer store.Close()
	game.Save(store)
	return nil
}
