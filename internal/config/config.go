// SPDX-License-Identifier: MIT

// Package config loads matcalc settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// MaxPrecision is the largest decimal count accepted for output.
// float64 carries at most 17 significant decimal digits.
const MaxPrecision = 17

// ErrInvalidConfig is returned when a parsed value is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds runtime settings for the calculator.
type Config struct {
	// Precision is the number of decimals for written matrices and printed scalars.
	Precision int `env:"MATCALC_PRECISION" envDefault:"6"`
	// MaxDetOrder caps cofactor expansion; 0 means no cap.
	MaxDetOrder int `env:"MATCALC_MAX_DET_ORDER" envDefault:"0"`
	// Verbose enables per-command trace logging.
	Verbose bool `env:"MATCALC_VERBOSE" envDefault:"false"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{Precision: 6}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: MATCALC_PRECISION=%d not in [0,%d]", ErrInvalidConfig, c.Precision, MaxPrecision)
	}
	if c.MaxDetOrder < 0 {
		return fmt.Errorf("%w: MATCALC_MAX_DET_ORDER=%d must be >= 0", ErrInvalidConfig, c.MaxDetOrder)
	}
	return nil
}
