package cmd

import (
	"github.com/spf13/cobra"

	"github.com/halcyard/tempo/internal/config"
	"github.com/halcyard/tempo/internal/tui"
)

// tuiCmd launches the interactive converter dashboard.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive converter dashboard",
	Long: `Launch a full-screen dashboard that shows a typed value on every
known time scale at once, with a civil breakdown and the epoch catalog.
The catalog file is watched, so edits from another terminal appear live.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	return tui.Run(cfg.CatalogPath)
}
