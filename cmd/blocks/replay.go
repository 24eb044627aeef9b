package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded session",
	Long: `Rebuild a recorded session from its seed and stimulus log and print
the final board with its totals. The result is identical to the live game.

Examples:
  blocks replay 2f1c5a0e-8d7b-4a55-9b3e-0c6c1d2e3f40`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	palette, err := cfg.PiecePalette()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	r, err := store.Replay(args[0])
	if err != nil {
		return fmt.Errorf("loading replay: %w", err)
	}
	if r == nil {
		return fmt.Errorf("no replay with id %q", args[0])
	}

	snap := r.Play(palette).Snapshot()
	w, h := blocks.MinScreenSize(snap.Width, snap.Height)
	screen := core.NewScreen(w, h)
	blocks.Render(screen, blocks.Frame{Snapshot: snap})

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Replay %s (seed %d, %d stimuli, %d games)\n", r.ID, r.Seed, len(r.Stimuli), r.Games)
	fmt.Fprintf(out, "Score: %d  Lines: %d  Pieces: %d\n", snap.Score, snap.Lines, snap.Pieces)
	if snap.Score != r.Score {
		fmt.Fprintf(out, "Warning: recorded score was %d\n", r.Score)
	}
	return nil
}
