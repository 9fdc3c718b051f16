package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyard/tempo"
	"github.com/halcyard/tempo/internal/config"
)

// scalesCmd lists the known time scales.
var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List the supported time scales",
	Long: `List every time scale this tool understands, with the value of the
J2000.0 epoch (2000-01-01 12:00:00 UTC) on each scale as a sample.`,
	Args: cobra.NoArgs,
	RunE: runScales,
}

func init() {
	rootCmd.AddCommand(scalesCmd)
}

func runScales(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	out := cmd.OutOrStdout()

	j2000 := tempo.To[tempo.MJD](tempo.J2000()).Value()
	fmt.Fprintf(out, "%-6s %-6s %s\n", "NAME", "LABEL", "J2000.0")
	for _, name := range scaleNames() {
		ops := scaleTable[name]
		fmt.Fprintf(out, "%-6s %-6s %s\n", name, ops.label, formatValue(ops.fromMJD(j2000), cfg.Precision))
	}
	return nil
}
