package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/tago/pkg/chart"
	"github.com/c9s/tago/pkg/fixedpoint"
	"github.com/c9s/tago/pkg/indicator"
	"github.com/c9s/tago/pkg/style"
)

func init() {
	addIndicatorFlags(NatrCmd)
	RootCmd.AddCommand(NatrCmd)
}

var NatrCmd = &cobra.Command{
	Use:          "natr --input [csv file]",
	Short:        "compute the normalized average true range over a csv price file",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, momentum, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if c.Input == "" {
			return errors.New("--input is required")
		}

		candles, err := loadCandlesCSV(c.Input, momentum.MaxHistory+momentum.Period)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"candles":   candles.Len(),
			"period":    momentum.Period,
			"smoothing": momentum.Smoothing,
		}).Debug("computing natr")

		result, err := indicator.Natr(candles, momentum)
		if err != nil {
			return err
		}

		offset := candles.Len() - result.Natr.Len()
		tw := style.NewTableWriter(os.Stdout)
		tw.AppendHeader(table.Row{"#", "TIME", "PRICE", "ATR", "NATR %"})
		for i := 0; i < result.Natr.Len(); i++ {
			candle, err := candles.At(offset + i)
			if err != nil {
				return err
			}
			tw.AppendRow(table.Row{
				offset + i,
				candle.Time,
				fmt.Sprintf("%.4f", candle.Price.Float64()),
				fmt.Sprintf("%.4f", result.Atr.Values()[i].Float64()),
				fmt.Sprintf("%.4f", result.Natr.Values()[i].Float64()),
			})
		}

		trs := fixedpoint.Slice(result.TrueRange.Values())
		tw.AppendFooter(table.Row{
			"",
			"",
			fmt.Sprintf("avg %.4f", fixedpoint.Avg(candles.Prices().Values()).Float64()),
			fmt.Sprintf("max tr %.4f", trs.Largest(1)[0].Float64()),
			fmt.Sprintf("median %.4f", fixedpoint.Slice(result.Natr.Values()).Median().Float64()),
		})
		tw.Render()

		if c.Chart != "" {
			canvas := chart.NewCanvas(fmt.Sprintf("NATR(%d)", momentum.Period))
			chart.Plot(canvas, "price", candles.Prices(), 0)
			chart.Plot(canvas, "natr", result.Natr, offset)

			f, err := os.Create(c.Chart)
			if err != nil {
				return errors.Wrapf(err, "can not create chart file %s", c.Chart)
			}
			defer f.Close()
			if err := canvas.Render(f); err != nil {
				return errors.Wrap(err, "can not render natr chart")
			}
			log.Infof("natr chart saved to %s", c.Chart)
		}

		return nil
	},
}
