package cmd

import (
	"github.com/spf13/cobra"

	"github.com/c9s/tago/pkg/config"
	"github.com/c9s/tago/pkg/indicator"
)

func addIndicatorFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "csv price file (time,price,volume)")
	cmd.Flags().Int("period", 0, "smoothing period")
	cmd.Flags().Int("max-history", 0, "trailing computation window")
	cmd.Flags().String("smoothing", "", "smoothing type: wilder, ema or sma")
	cmd.Flags().String("chart", "", "render a png chart to this path")
}

// resolveConfig loads the optional --config file, then lets command flags
// override its fields.
func resolveConfig(cmd *cobra.Command) (config.Config, indicator.MomentumConfig, error) {
	c := config.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return c, indicator.MomentumConfig{}, err
	}
	if configPath != "" {
		if c, err = config.Load(configPath); err != nil {
			return c, indicator.MomentumConfig{}, err
		}
	}

	if period, _ := cmd.Flags().GetInt("period"); period != 0 {
		c.Period = period
	}
	if maxHistory, _ := cmd.Flags().GetInt("max-history"); maxHistory != 0 {
		c.MaxHistory = maxHistory
	}
	if smoothing, _ := cmd.Flags().GetString("smoothing"); smoothing != "" {
		c.Smoothing = indicator.SmoothingType(smoothing)
	}
	if input, _ := cmd.Flags().GetString("input"); input != "" {
		c.Input = input
	}
	if chartPath, _ := cmd.Flags().GetString("chart"); chartPath != "" {
		c.Chart = chartPath
	}

	momentum, err := c.Momentum()
	if err != nil {
		return c, indicator.MomentumConfig{}, err
	}

	return c, momentum, nil
}
