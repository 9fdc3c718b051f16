package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halcyard/tempo/internal/config"
	"github.com/halcyard/tempo/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "tempo",
	Short: "Convert instants and periods across astronomical time scales",
	Long: "Tempo converts points in time between a dozen astronomical and civil\n" +
		"time scales (JD, MJD, UTC, TT, TAI, TDB, TCG, TCB, GPS, UT1, JDE, Unix)\n" +
		"and computes durations and intersections of inclusive time periods.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .tempo.yaml)")
	rootCmd.PersistentFlags().Int("precision", -1, "decimal places for printed values (-1 = shortest exact)")
	rootCmd.PersistentFlags().Bool("no-history", false, "do not record this invocation in the history log")
	_ = viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
	_ = viper.BindPFlag("no_history", rootCmd.PersistentFlags().Lookup("no-history"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".tempo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("TEMPO")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// recordHistory logs one completed operation. History is advisory: a
// failure to log never fails the command, it only warns.
func recordHistory(cfg config.Config, op, input, output string) {
	if cfg.NoHistory {
		return
	}
	ctx := context.Background()
	store, err := history.Open(ctx, cfg.HistoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()
	if err := store.Record(ctx, op, input, output); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history write failed: %v\n", err)
	}
}
