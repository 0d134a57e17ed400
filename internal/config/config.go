// SPDX-License-Identifier: MIT

// Package config loads the lvtopo command-line configuration.
//
// Values come from, in increasing priority: Default(), a YAML file given to
// Load, and command flags applied by the caller. Validate rejects values
// the builders would refuse.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/geometry"
	"github.com/katalvlaran/lvtopo/topoerr"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = topoerr.New(topoerr.ErrInvalidArgument, "config: invalid value")

// Config is the full CLI configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Alpha    AlphaConfig    `yaml:"alpha"`
	Witness  WitnessConfig  `yaml:"witness"`
	Collapse CollapseConfig `yaml:"collapse"`
	Simplify SimplifyConfig `yaml:"simplify"`
	Metrics  bool           `yaml:"metrics"`
	Dump     bool           `yaml:"dump"`

	// MetricsFormat is "summary" (one sorted line per sample) or "text"
	// (Prometheus text exposition format).
	MetricsFormat string `yaml:"metrics_format"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// AlphaConfig holds the alpha builder settings.
type AlphaConfig struct {
	MaxAlphaSquare float64 `yaml:"max_alpha_square"`
	Epsilon        float64 `yaml:"epsilon"`
}

// WitnessConfig holds the witness builder settings.
type WitnessConfig struct {
	Landmarks    int     `yaml:"landmarks"`
	Relaxation   float64 `yaml:"relaxation"`
	MaxDimension int     `yaml:"max_dimension"`
	Nearest      int     `yaml:"nearest"` // 0: all landmarks
	Workers      int     `yaml:"workers"` // 0: GOMAXPROCS
	Seed         int64   `yaml:"seed"`
}

// CollapseConfig holds the Rips threshold and the re-expansion dimension.
type CollapseConfig struct {
	Threshold float64 `yaml:"threshold"`
	Expand    int     `yaml:"expand"` // 0: no re-expansion
}

// SimplifyConfig holds the edge-contraction settings.
type SimplifyConfig struct {
	Threshold    float64 `yaml:"threshold"`
	MaxDimension int     `yaml:"max_dimension"`
	Limit        int     `yaml:"limit"` // 0: unlimited
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Alpha:    AlphaConfig{MaxAlphaSquare: math.Inf(1), Epsilon: geometry.DefaultEpsilon},
		Witness:  WitnessConfig{Landmarks: 16, MaxDimension: 2, Seed: 1},
		Collapse: CollapseConfig{Threshold: 1},
		Simplify: SimplifyConfig{Threshold: 1, MaxDimension: 2},

		MetricsFormat: "summary",
	}
}

// Load returns Default() overlaid with the YAML file at path. An empty path
// yields the defaults; a missing file is an error. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode overlays the YAML document data onto cfg.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error
	bad := func(field string, v any) {
		errs = append(errs, fmt.Errorf("%s = %v: %w", field, v, ErrInvalid))
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		bad("log.level", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		bad("log.format", c.Log.Format)
	}
	if math.IsNaN(c.Alpha.MaxAlphaSquare) || c.Alpha.MaxAlphaSquare < 0 {
		bad("alpha.max_alpha_square", c.Alpha.MaxAlphaSquare)
	}
	if !(c.Alpha.Epsilon > 0) || math.IsInf(c.Alpha.Epsilon, 0) {
		bad("alpha.epsilon", c.Alpha.Epsilon)
	}
	if c.Witness.Landmarks < 1 {
		bad("witness.landmarks", c.Witness.Landmarks)
	}
	if math.IsNaN(c.Witness.Relaxation) || c.Witness.Relaxation < 0 {
		bad("witness.relaxation", c.Witness.Relaxation)
	}
	if c.Witness.MaxDimension < 0 {
		bad("witness.max_dimension", c.Witness.MaxDimension)
	}
	if c.Witness.Nearest < 0 {
		bad("witness.nearest", c.Witness.Nearest)
	}
	if c.Witness.Workers < 0 {
		bad("witness.workers", c.Witness.Workers)
	}
	if math.IsNaN(c.Collapse.Threshold) || c.Collapse.Threshold < 0 {
		bad("collapse.threshold", c.Collapse.Threshold)
	}
	if c.Collapse.Expand < 0 {
		bad("collapse.expand", c.Collapse.Expand)
	}
	if math.IsNaN(c.Simplify.Threshold) || c.Simplify.Threshold < 0 {
		bad("simplify.threshold", c.Simplify.Threshold)
	}
	if c.Simplify.MaxDimension < 0 {
		bad("simplify.max_dimension", c.Simplify.MaxDimension)
	}
	if c.Simplify.Limit < 0 {
		bad("simplify.limit", c.Simplify.Limit)
	}
	if c.MetricsFormat != "summary" && c.MetricsFormat != "text" {
		bad("metrics_format", c.MetricsFormat)
	}

	return errors.Join(errs...)
}
