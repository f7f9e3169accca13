package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyJSON bool
	historyMax  int
	purgeOlder  time.Duration
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect committed drag operations",
	Long:  `List the drag operations recorded by the diagnostics store, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum entries to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.History == nil {
		return fmt.Errorf("operation history is disabled (see history.enabled in config)")
	}

	records, err := a.History.Recent(cmd.Context(), historyMax)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("no recorded operations")
		return nil
	}
	for _, rec := range records {
		fmt.Printf("%s  %s\n", rec.AppliedAt.Format(time.RFC3339), rec.Operation.String())
	}
	return nil
}

// purgeCmd deletes old history entries.
var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete old history entries",
	RunE:  runPurge,
}

func init() {
	historyCmd.AddCommand(purgeCmd)

	purgeCmd.Flags().DurationVar(&purgeOlder, "older-than", 30*24*time.Hour, "delete entries older than this")
}

func runPurge(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.History == nil {
		return fmt.Errorf("operation history is disabled (see history.enabled in config)")
	}

	deleted, err := a.History.Purge(cmd.Context(), time.Now().Add(-purgeOlder))
	if err != nil {
		return fmt.Errorf("purge history: %w", err)
	}
	fmt.Printf("deleted %d entries\n", deleted)
	return nil
}
