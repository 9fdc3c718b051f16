package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyard/tempo/internal/catalog"
	"github.com/halcyard/tempo/internal/config"
)

// catalogCmd manages the named epoch catalog.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the named epoch catalog",
	Long: `The epoch catalog stores named instants in a TOML file. Other
commands can reference an entry as "@name" wherever a value is expected.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a named epoch to the catalog",
	Long: `Add an epoch under a unique name. Give the instant either as a raw
value with --value, or as a civil date-time with --civil; --scale names the
scale the instant is expressed on.

Examples:

  tempo catalog add j2000 --scale jd --value 2451545.0
  tempo catalog add y2k --scale utc --civil "2000-01-01 00:00:00"`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogAdd,
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a named epoch from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogRemove,
}

func init() {
	catalogAddCmd.Flags().String("scale", "mjd", "scale the epoch is expressed on")
	catalogAddCmd.Flags().Float64("value", 0, "raw value on the chosen scale")
	catalogAddCmd.Flags().String("civil", "", "civil date-time, YYYY-MM-DD [HH:MM:SS]")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogRemoveCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	out := cmd.OutOrStdout()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if len(cat.Epochs) == 0 {
		fmt.Fprintln(out, "Catalog is empty.")
		return nil
	}

	fmt.Fprintf(out, "%-20s %-6s %-16s %s\n", "NAME", "SCALE", "VALUE", "MJD")
	for _, e := range cat.Epochs {
		ops, v, err := entryValue(e)
		if err != nil {
			return err
		}
		raw := e.Civil
		if e.Value != nil {
			raw = formatValue(*e.Value, cfg.Precision)
		}
		fmt.Fprintf(out, "%-20s %-6s %-16s %s\n",
			e.Name, ops.name, raw, formatValue(ops.toMJD(v), cfg.Precision))
	}
	return nil
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	scaleName, _ := cmd.Flags().GetString("scale")
	if _, err := lookupScale(scaleName); err != nil {
		return err
	}

	e := catalog.Entry{Name: args[0], Scale: scaleName}
	if cmd.Flags().Changed("value") {
		v, _ := cmd.Flags().GetFloat64("value")
		e.Value = &v
	}
	if civil, _ := cmd.Flags().GetString("civil"); civil != "" {
		if _, err := parseCivil(civil); err != nil {
			return err
		}
		e.Civil = civil
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if err := cat.Add(e); err != nil {
		return err
	}
	if err := catalog.Save(cfg.CatalogPath, cat); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", e.Name, cfg.CatalogPath)
	return nil
}

func runCatalogRemove(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	if err := cat.Remove(args[0]); err != nil {
		return err
	}
	if err := catalog.Save(cfg.CatalogPath, cat); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s\n", args[0], cfg.CatalogPath)
	return nil
}
