// Package config loads the runtime configuration of the citybike CLI
// from YAML, with defaults matching the sample dataset layout.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/citybike/numeric"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full runtime configuration.
type Config struct {
	// DataDir holds trips.csv, stations.csv and maintenance.csv.
	DataDir string `yaml:"data_dir"`

	// OutputDir receives the chart HTML files.
	OutputDir string `yaml:"output_dir"`

	Outliers OutlierConfig `yaml:"outliers"`
	Bench    BenchConfig   `yaml:"bench"`

	// Charts toggles HTML chart rendering during a run.
	Charts bool `yaml:"charts"`
}

// OutlierConfig selects the outlier rule applied to trip durations.
type OutlierConfig struct {
	// Method is one of "iqr_fence", "modified_zscore", "zscore".
	Method string `yaml:"method"`

	// Threshold overrides the method default when > 0.
	Threshold float64 `yaml:"threshold"`
}

// BenchConfig drives the bench subcommand.
type BenchConfig struct {
	// Sizes are the input lengths each algorithm runs against.
	Sizes []int `yaml:"sizes"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DataDir:   "data",
		OutputDir: "out",
		Outliers: OutlierConfig{
			Method: numeric.IQRFence.String(),
		},
		Bench: BenchConfig{
			Sizes: []int{100, 500, 1000, 2000},
		},
		Charts: true,
	}
}

// Load reads path into a Config layered over Default and validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and the outlier method name.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must be set", ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must be set", ErrInvalidConfig)
	}
	if _, err := c.OutlierMethod(); err != nil {
		return err
	}
	if c.Outliers.Threshold < 0 {
		return fmt.Errorf("%w: outliers.threshold must be non-negative", ErrInvalidConfig)
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: bench.sizes must be positive, got %d", ErrInvalidConfig, n)
		}
	}

	return nil
}

// OutlierMethod maps the configured method name onto the numeric enum.
func (c Config) OutlierMethod() (numeric.OutlierMethod, error) {
	switch c.Outliers.Method {
	case numeric.IQRFence.String():
		return numeric.IQRFence, nil
	case numeric.ModifiedZScore.String():
		return numeric.ModifiedZScore, nil
	case numeric.ZScore.String():
		return numeric.ZScore, nil
	default:
		return 0, fmt.Errorf("%w: unknown outliers.method %q", ErrInvalidConfig, c.Outliers.Method)
	}
}
