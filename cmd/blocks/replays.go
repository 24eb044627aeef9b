package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded sessions",
	Long: `Display the most recent recorded sessions, newest first.

Examples:
  blocks replays
  blocks replays --limit 5
  blocks replays rm <id>`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replaysRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded session",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysRm,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to show")
	replaysCmd.AddCommand(replaysRmCmd)
}

func runReplays(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	list, err := store.RecentReplays(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving replays: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'blocks play' to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-36s  %-16s  %-6s  %-6s  %-5s  %s\n", "ID", "Date", "Score", "Lines", "Games", "Board")
	fmt.Fprintf(out, "  %-36s  %-16s  %-6s  %-6s  %-5s  %s\n", "--", "----", "-----", "-----", "-----", "-----")
	for _, r := range list {
		fmt.Fprintf(out, "  %-36s  %-16s  %-6d  %-6d  %-5d  %dx%d\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Score, r.Lines, r.Games, r.Width, r.Height)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'blocks replay <id>' to re-run a session.")
	return nil
}

func runReplaysRm(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening replay database: %w", err)
	}
	defer store.Close()

	deleted, err := store.DeleteReplay(args[0])
	if err != nil {
		return fmt.Errorf("deleting replay: %w", err)
	}
	if !deleted {
		return fmt.Errorf("no replay with id %q", args[0])
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
	return nil
}
