package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyard/tempo"
	"github.com/halcyard/tempo/internal/config"
	"github.com/halcyard/tempo/quantity"
)

// periodCmd reports the duration of an inclusive period.
var periodCmd = &cobra.Command{
	Use:   "period <start> <end>",
	Short: "Measure the duration of an inclusive time period",
	Long: `Measure the duration between two instants on the same scale. Bounds
are scale values or "@name" catalog references; start must not exceed end.

Examples:

  tempo period 60000 60001 --scale mjd
  tempo period 60000 60001 --scale mjd --unit h
  tempo period @launch @landing --unit min`,
	Args: cobra.ExactArgs(2),
	RunE: runPeriod,
}

// periodIntersectCmd intersects two inclusive periods.
var periodIntersectCmd = &cobra.Command{
	Use:   "intersect <start1> <end1> <start2> <end2>",
	Short: "Intersect two inclusive time periods",
	Long: `Compute the overlap of two periods on the same scale. Periods that
merely touch intersect in a single instant; disjoint periods are an error.`,
	Args: cobra.ExactArgs(4),
	RunE: runPeriodIntersect,
}

var unitTable = map[string]quantity.Unit{
	"d":   quantity.Day,
	"h":   quantity.Hour,
	"min": quantity.Minute,
	"s":   quantity.Second,
	"jcy": quantity.JulianCentury,
}

func init() {
	periodCmd.Flags().String("scale", "", "time scale of the bounds (default from config)")
	periodCmd.Flags().String("unit", "d", "duration unit: d, h, min, s, jcy")
	periodIntersectCmd.Flags().String("scale", "", "time scale of the bounds (default from config)")
	periodCmd.AddCommand(periodIntersectCmd)
	rootCmd.AddCommand(periodCmd)
}

// periodArg resolves one period bound onto MJD.
func periodArg(cfg config.Config, ops scaleOps, arg string) (tempo.Time[tempo.MJD], error) {
	v, err := resolveValue(cfg.CatalogPath, ops, arg)
	if err != nil {
		return tempo.Time[tempo.MJD]{}, err
	}
	return tempo.New[tempo.MJD](ops.toMJD(v)), nil
}

func flagScale(cmd *cobra.Command, cfg config.Config) (scaleOps, error) {
	name, _ := cmd.Flags().GetString("scale")
	if name == "" {
		name = cfg.DefaultScale
	}
	return lookupScale(name)
}

func runPeriod(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	ops, err := flagScale(cmd, cfg)
	if err != nil {
		return err
	}
	start, err := periodArg(cfg, ops, args[0])
	if err != nil {
		return err
	}
	end, err := periodArg(cfg, ops, args[1])
	if err != nil {
		return err
	}

	p, err := tempo.NewPeriod(start, end)
	if err != nil {
		return fmt.Errorf("period: %w", err)
	}

	unitName, _ := cmd.Flags().GetString("unit")
	unit, ok := unitTable[unitName]
	if !ok {
		return fmt.Errorf("unknown unit %q (known: d, h, min, s, jcy)", unitName)
	}
	d, err := p.DurationIn(unit)
	if err != nil {
		return fmt.Errorf("period: %w", err)
	}

	rendered := fmt.Sprintf("%s %s", formatValue(d.Value(), cfg.Precision), unit)
	fmt.Fprintln(cmd.OutOrStdout(), rendered)

	recordHistory(cfg, "period",
		fmt.Sprintf("%s [%s, %s]", ops.name, args[0], args[1]), rendered)
	return nil
}

func runPeriodIntersect(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	ops, err := flagScale(cmd, cfg)
	if err != nil {
		return err
	}

	bounds := make([]tempo.Time[tempo.MJD], 4)
	for i, arg := range args {
		bounds[i], err = periodArg(cfg, ops, arg)
		if err != nil {
			return err
		}
	}

	a, err := tempo.NewPeriod(bounds[0], bounds[1])
	if err != nil {
		return fmt.Errorf("intersect: %w", err)
	}
	b, err := tempo.NewPeriod(bounds[2], bounds[3])
	if err != nil {
		return fmt.Errorf("intersect: %w", err)
	}

	overlap, err := a.Intersection(b)
	if err != nil {
		return fmt.Errorf("intersect: %w", err)
	}

	start := ops.fromMJD(overlap.Start().Value())
	end := ops.fromMJD(overlap.End().Value())
	rendered := fmt.Sprintf("[%s, %s]", formatValue(start, cfg.Precision), formatValue(end, cfg.Precision))
	fmt.Fprintln(cmd.OutOrStdout(), rendered)

	recordHistory(cfg, "intersect",
		fmt.Sprintf("%s [%s, %s] [%s, %s]", ops.name, args[0], args[1], args[2], args[3]), rendered)
	return nil
}
