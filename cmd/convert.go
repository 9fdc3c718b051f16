package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/halcyard/tempo/internal/config"
)

// convertCmd converts a single instant between time scales.
var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert an instant from one time scale to another",
	Long: `Convert an instant between time scales. The value is a number on the
source scale, or "@name" to reference an epoch from the catalog.

Examples:

  tempo convert 2451545.0 --from jd --to mjd
  tempo convert 60000 --from mjd --all
  tempo convert @gaia-dr3 --to tt --civil`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("from", "", "source scale (default from config)")
	convertCmd.Flags().String("to", "", "target scale")
	convertCmd.Flags().Bool("all", false, "print the instant on every known scale")
	convertCmd.Flags().Bool("civil", false, "also print the civil breakdown")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	out := cmd.OutOrStdout()

	fromName, _ := cmd.Flags().GetString("from")
	if fromName == "" {
		fromName = cfg.DefaultScale
	}
	from, err := lookupScale(fromName)
	if err != nil {
		return err
	}

	value, err := resolveValue(cfg.CatalogPath, from, args[0])
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	civil, _ := cmd.Flags().GetBool("civil")
	toName, _ := cmd.Flags().GetString("to")
	if !all && toName == "" {
		return fmt.Errorf("convert: either --to or --all is required")
	}

	mjd := from.toMJD(value)
	var results []string
	if all {
		for _, name := range scaleNames() {
			ops := scaleTable[name]
			line := fmt.Sprintf("%-4s %s", ops.label, formatValue(ops.fromMJD(mjd), cfg.Precision))
			fmt.Fprintln(out, line)
			results = append(results, line)
		}
	} else {
		to, err := lookupScale(toName)
		if err != nil {
			return err
		}
		converted := to.fromMJD(mjd)
		fmt.Fprintln(out, formatValue(converted, cfg.Precision))
		results = append(results, formatValue(converted, cfg.Precision))
	}

	if civil {
		c, err := from.toCivil(value)
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}
		fmt.Fprintf(out, "civil (UTC): %s\n", c)
	}

	recordHistory(cfg, "convert",
		fmt.Sprintf("%s %s", from.name, args[0]),
		strings.Join(results, "; "))
	return nil
}
