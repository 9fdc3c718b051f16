package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyard/tempo/internal/config"
	"github.com/halcyard/tempo/internal/history"
)

// historyCmd shows past conversions.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the conversion history log",
	Long: `Conversions, civil breakdowns, and period computations are recorded
to a local SQLite log. This command lists the most recent entries.`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum entries to show (default from config)")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	out := cmd.OutOrStdout()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.HistoryLimit
	}

	store, err := history.Open(cmd.Context(), cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "History is empty.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%s  %-10s %-32s -> %s\n",
			e.At.Format("2006-01-02 15:04:05"), e.Op, e.Input, e.Output)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	store, err := history.Open(cmd.Context(), cfg.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}
