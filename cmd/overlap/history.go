package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amizrahi/overlap/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded comparison runs",
	Long:  "Show every comparison recorded in the history file, oldest first.",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("max-text", 30, "truncate recorded match text to this many characters (0 = full)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store := history.New(historyPath())
	runs, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}

	maxText := viper.GetInt("max-text")
	for _, run := range runs {
		text := run.Text
		if maxText > 0 {
			if r := []rune(text); len(r) > maxText {
				text = string(r[:maxText]) + "..."
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s vs %s  length=%d  %q  (%v)\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			shortID(run.ID),
			run.SourceA,
			run.SourceB,
			run.Length,
			text,
			run.Elapsed)
	}
	return nil
}

// shortID keeps listings readable; full IDs live in the history file.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
