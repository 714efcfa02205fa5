// Package config loads the CLI configuration file.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/c9s/tago/pkg/indicator"
)

// Config is the optional yaml configuration of the tago CLI. Flags override
// fields loaded from the file.
type Config struct {
	Period     int                     `yaml:"period"`
	MaxHistory int                     `yaml:"maxHistory"`
	Smoothing  indicator.SmoothingType `yaml:"smoothing"`

	// Input is the CSV price file (time,price,volume per row).
	Input string `yaml:"input"`

	// Chart is an optional PNG output path.
	Chart string `yaml:"chart"`
}

func Default() Config {
	momentum := indicator.DefaultMomentumConfig()
	return Config{
		Period:     momentum.Period,
		MaxHistory: momentum.MaxHistory,
		Smoothing:  momentum.Smoothing,
	}
}

// Load reads a yaml config file on top of the defaults and validates the
// indicator parameters.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "can not read config file %s", path)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "can not parse config file %s", path)
	}

	if _, err := c.Momentum(); err != nil {
		return c, err
	}

	return c, nil
}

// Momentum converts the loaded fields into a validated indicator config.
func (c Config) Momentum() (indicator.MomentumConfig, error) {
	return indicator.NewMomentumConfig(c.Period, c.MaxHistory, c.Smoothing)
}
