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
	addIndicatorFlags(RsiCmd)
	RootCmd.AddCommand(RsiCmd)
}

var RsiCmd = &cobra.Command{
	Use:          "rsi --input [csv file]",
	Short:        "compute the relative strength index over a csv price file",
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
		}).Debug("computing rsi")

		result, err := indicator.RsiSeries(candles, momentum)
		if err != nil {
			return err
		}

		offset := candles.Len() - result.Rsi.Len()
		tw := style.NewTableWriter(os.Stdout)
		tw.AppendHeader(table.Row{"#", "TIME", "PRICE", "RSI"})
		for i, v := range result.Rsi.Values() {
			candle, err := candles.At(offset + i)
			if err != nil {
				return err
			}
			tw.AppendRow(table.Row{
				offset + i,
				candle.Time,
				fmt.Sprintf("%.4f", candle.Price.Float64()),
				fmt.Sprintf("%.4f", v.Float64()),
			})
		}

		moves := candles.Returns().Values()
		advances := fixedpoint.Filter(moves, fixedpoint.PositiveTester)
		declines := fixedpoint.Filter(moves, fixedpoint.NegativeTester)
		tw.AppendFooter(table.Row{
			"",
			fmt.Sprintf("%d up / %d down", len(advances), len(declines)),
			fmt.Sprintf("avg %.4f", fixedpoint.Avg(candles.Prices().Values()).Float64()),
			fmt.Sprintf("median %.4f", fixedpoint.Slice(result.Rsi.Values()).Median().Float64()),
		})
		tw.Render()

		if c.Chart != "" {
			canvas := chart.NewCanvas(fmt.Sprintf("RSI(%d)", momentum.Period))
			chart.Plot(canvas, "price", candles.Prices(), 0)
			chart.Plot(canvas, "rsi", result.Rsi, offset)

			f, err := os.Create(c.Chart)
			if err != nil {
				return errors.Wrapf(err, "can not create chart file %s", c.Chart)
			}
			defer f.Close()
			if err := canvas.Render(f); err != nil {
				return errors.Wrap(err, "can not render rsi chart")
			}
			log.Infof("rsi chart saved to %s", c.Chart)
		}

		return nil
	},
}
