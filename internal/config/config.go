package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for the tempo CLI.
// Values are populated from .tempo.yaml, TEMPO_* env vars, and CLI flags.
type Config struct {
	DefaultScale string `mapstructure:"default_scale"`
	CatalogPath  string `mapstructure:"catalog_path"`
	HistoryPath  string `mapstructure:"history_path"`
	HistoryLimit int    `mapstructure:"history_limit"`
	NoHistory    bool   `mapstructure:"no_history"`
	Precision    int    `mapstructure:"precision"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("default_scale", "mjd")
	viper.SetDefault("catalog_path", ".tempo/catalog.toml")
	viper.SetDefault("history_path", ".tempo/history.db")
	viper.SetDefault("history_limit", 20)
	viper.SetDefault("no_history", false)
	viper.SetDefault("precision", -1)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
