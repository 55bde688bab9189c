package config

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Workspace", cfg.Workspace, ".topos"},
		{"MaxProductSize", cfg.MaxProductSize, 1_000_000},
		{"MaxExponentialSize", cfg.MaxExponentialSize, 1_000_000},
		{"Seed", cfg.Seed, int64(1)},
		{"Samples", cfg.Samples, 16},
		{"TelemetryPath", cfg.TelemetryPath, ""},
		{"LedgerPath", cfg.LedgerPath, ""},
		{"Verbose", cfg.Verbose, false},
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

	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "workspace",
			envKey: "TOPOS_WORKSPACE",
			envVal: "/tmp/shapes",
			field:  func(c Config) any { return c.Workspace },
			want:   "/tmp/shapes",
		},
		{
			name:   "max_product_size",
			envKey: "TOPOS_MAX_PRODUCT_SIZE",
			envVal: "4096",
			field:  func(c Config) any { return c.MaxProductSize },
			want:   4096,
		},
		{
			name:   "seed",
			envKey: "TOPOS_SEED",
			envVal: "99",
			field:  func(c Config) any { return c.Seed },
			want:   int64(99),
		},
		{
			name:   "samples",
			envKey: "TOPOS_SAMPLES",
			envVal: "3",
			field:  func(c Config) any { return c.Samples },
			want:   3,
		},
		{
			name:   "verbose",
			envKey: "TOPOS_VERBOSE",
			envVal: "true",
			field:  func(c Config) any { return c.Verbose },
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			// Set env prefix so TOPOS_* env vars map to config keys.
			viper.SetEnvPrefix("TOPOS")
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_RejectsBadBounds(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  int
	}{
		{"zero product bound", "max_product_size", 0},
		{"negative exponential bound", "max_exponential_size", -1},
		{"zero samples", "samples", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.Set(tt.key, tt.val)
			defer resetViper()

			if _, err := Load(); !errors.Is(err, ErrBadBound) {
				t.Fatalf("expected ErrBadBound, got %v", err)
			}
		})
	}
}
