package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyard/tempo/internal/config"
)

// civilCmd converts a civil date-time into scale values.
var civilCmd = &cobra.Command{
	Use:   "civil <YYYY-MM-DD [HH:MM:SS[.fff]]>",
	Short: "Convert a civil date-time to a time-scale value",
	Long: `Convert a civil (calendar) date-time into a value on one or all time
scales. The time part is optional and defaults to midnight; a leap second
(second 60) is accepted at 23:59:60 and normalizes to the next midnight.

Examples:

  tempo civil "2000-01-01 12:00:00" --to jd
  tempo civil 2025-06-01 --all`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCivil,
}

func init() {
	civilCmd.Flags().String("to", "", "target scale (default from config)")
	civilCmd.Flags().Bool("all", false, "print the instant on every known scale")
	rootCmd.AddCommand(civilCmd)
}

func runCivil(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	out := cmd.OutOrStdout()

	// Allow "2000-01-01 12:00:00" passed as two shell words.
	raw := args[0]
	if len(args) == 2 {
		raw += " " + args[1]
	}
	c, err := parseCivil(raw)
	if err != nil {
		return err
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		mjd, err := scaleTable["mjd"].fromCivil(c)
		if err != nil {
			return fmt.Errorf("civil: %w", err)
		}
		for _, name := range scaleNames() {
			ops := scaleTable[name]
			fmt.Fprintf(out, "%-4s %s\n", ops.label, formatValue(ops.fromMJD(mjd), cfg.Precision))
		}
		recordHistory(cfg, "civil", raw, "all scales")
		return nil
	}

	toName, _ := cmd.Flags().GetString("to")
	if toName == "" {
		toName = cfg.DefaultScale
	}
	to, err := lookupScale(toName)
	if err != nil {
		return err
	}
	v, err := to.fromCivil(c)
	if err != nil {
		return fmt.Errorf("civil: %w", err)
	}
	rendered := formatValue(v, cfg.Precision)
	fmt.Fprintln(out, rendered)

	recordHistory(cfg, "civil", raw, fmt.Sprintf("%s %s", to.name, rendered))
	return nil
}
