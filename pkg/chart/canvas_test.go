package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/tago/pkg/num"
	"github.com/c9s/tago/pkg/types"
)

func Test_Canvas_Render(t *testing.T) {
	canvas := NewCanvas("RSI(14)")

	prices := types.NewSeries[num.Float64]("price", 44.34, 44.09, 44.15, 43.61, 44.33)
	rsi := types.NewSeries[num.Float64]("rsi", 70.5, 66.2)

	Plot(canvas, "price", prices, 0)
	Plot(canvas, "rsi", rsi, 3)

	var buf bytes.Buffer
	assert.NoError(t, canvas.Render(&buf))
	assert.NotZero(t, buf.Len())

	// png magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func Test_Canvas_PlotEmptySeries(t *testing.T) {
	canvas := NewCanvas("empty")
	Plot(canvas, "nothing", types.NewSeries[num.Float64]("nothing"), 0)
	assert.Empty(t, canvas.Series)
}
