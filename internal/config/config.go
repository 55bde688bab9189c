package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrBadBound indicates a configured size or sampling bound is not positive.
var ErrBadBound = errors.New("configuration bound must be positive")

// Config holds all runtime configuration for a topos session.
// Values are populated from .topos.yaml, TOPOS_* env vars, and CLI flags.
type Config struct {
	Workspace          string `mapstructure:"workspace"`
	MaxProductSize     int    `mapstructure:"max_product_size"`
	MaxExponentialSize int    `mapstructure:"max_exponential_size"`
	Seed               int64  `mapstructure:"seed"`
	Samples            int    `mapstructure:"samples"`
	TelemetryPath      string `mapstructure:"telemetry_path"`
	LedgerPath         string `mapstructure:"ledger_path"`
	Verbose            bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags. Size and sampling
// bounds are checked eagerly so later kernel calls can trust them.
func Load() (Config, error) {
	viper.SetDefault("workspace", ".topos")
	viper.SetDefault("max_product_size", 1_000_000)
	viper.SetDefault("max_exponential_size", 1_000_000)
	viper.SetDefault("seed", 1)
	viper.SetDefault("samples", 16)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("ledger_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.MaxProductSize < 1 {
		return Config{}, fmt.Errorf("%w: max_product_size = %d", ErrBadBound, cfg.MaxProductSize)
	}
	if cfg.MaxExponentialSize < 1 {
		return Config{}, fmt.Errorf("%w: max_exponential_size = %d", ErrBadBound, cfg.MaxExponentialSize)
	}
	if cfg.Samples < 1 {
		return Config{}, fmt.Errorf("%w: samples = %d", ErrBadBound, cfg.Samples)
	}

	return cfg, nil
}
