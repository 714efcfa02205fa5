// Package chart renders indicator series to PNG charts.
package chart

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/c9s/tago/pkg/num"
	"github.com/c9s/tago/pkg/types"
)

// Canvas collects plotted series on top of a go-chart Chart.
type Canvas struct {
	chart.Chart
}

func NewCanvas(title string) *Canvas {
	out := &Canvas{
		Chart: chart.Chart{
			Title: title,
			XAxis: chart.XAxis{
				ValueFormatter: chart.IntValueFormatter,
			},
			YAxis: chart.YAxis{
				ValueFormatter: func(v interface{}) string {
					if vf, isFloat := v.(float64); isFloat {
						return fmt.Sprintf("%.4f", vf)
					}
					return ""
				},
			},
		},
	}
	out.Chart.Elements = []chart.Renderable{
		chart.LegendLeft(&out.Chart),
	}
	return out
}

// Plot adds a series as a continuous line, indexed 0..n-1 shifted by
// offset so warm-up-trimmed outputs line up with their inputs.
func Plot[T num.Value[T]](canvas *Canvas, tag string, series *types.Series[T], offset int) {
	ys := series.Float64s()
	if len(ys) == 0 {
		return
	}

	xs := make([]float64, len(ys))
	for i := range ys {
		xs[i] = float64(offset + i)
	}

	canvas.Series = append(canvas.Series, chart.ContinuousSeries{
		Name:    tag,
		XValues: xs,
		YValues: ys,
	})
}

// Render writes the chart as PNG.
func (canvas *Canvas) Render(w io.Writer) error {
	return canvas.Chart.Render(chart.PNG, w)
}
