package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent catalog queries",
	Long: `Show the most recent catalog pages and searches, newest first.

History is recorded while browsing and survives restarts.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(
		&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := context.Background()
	entries, err := historyService.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No history yet.")
		return nil
	}

	for i := range entries {
		entry := entries[i]
		line := fmt.Sprintf("  %s  %-10s page %d",
			entry.CreatedAt.Format("2006-01-02 15:04"), entry.Category, entry.Page)
		if entry.Search != "" {
			line += fmt.Sprintf("  search %q", entry.Search)
		}
		line += fmt.Sprintf("  (%d results)", entry.Results)
		cmd.Println(line)
	}
	return nil
}
