package config

import (
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg := Load()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"DefaultScale", cfg.DefaultScale, "mjd"},
		{"CatalogPath", cfg.CatalogPath, ".tempo/catalog.toml"},
		{"HistoryPath", cfg.HistoryPath, ".tempo/history.db"},
		{"HistoryLimit", cfg.HistoryLimit, 20},
		{"NoHistory", cfg.NoHistory, false},
		{"Precision", cfg.Precision, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	t.Setenv("TEMPO_DEFAULT_SCALE", "jd")
	t.Setenv("TEMPO_HISTORY_LIMIT", "50")

	viper.SetEnvPrefix("TEMPO")
	viper.AutomaticEnv()

	cfg := Load()
	if cfg.DefaultScale != "jd" {
		t.Errorf("DefaultScale = %q, want %q", cfg.DefaultScale, "jd")
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.HistoryLimit)
	}
}

func TestLoad_ConfigValueOverrides(t *testing.T) {
	resetViper()

	viper.Set("catalog_path", "/tmp/catalog.toml")
	viper.Set("no_history", true)

	cfg := Load()
	if cfg.CatalogPath != "/tmp/catalog.toml" {
		t.Errorf("CatalogPath = %q, want /tmp/catalog.toml", cfg.CatalogPath)
	}
	if !cfg.NoHistory {
		t.Error("NoHistory = false, want true")
	}
}
