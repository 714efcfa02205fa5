package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/tago/pkg/fixedpoint"
	"github.com/c9s/tago/pkg/num"
	"github.com/c9s/tago/pkg/types"
)

func candleSeriesFromPrices(t *testing.T, capacity int, prices ...float64) *types.CandleSeries[num.Float64] {
	candles, err := types.NewCandleSeries[num.Float64](capacity)
	assert.NoError(t, err)
	for i, p := range prices {
		candles.Push(num.Float64(p), int64(i)*60_000, num.Float64(100))
	}
	return candles
}

func Test_Natr(t *testing.T) {
	// unit steps: every true range is 1, so ATR stays 1 and
	// NATR = 100 / price at each aligned candle
	candles := candleSeriesFromPrices(t, 16, 100, 101, 102, 103, 104, 105)

	config := MomentumConfig{Period: 3, MaxHistory: 100, Smoothing: SmoothingWilder}
	result, err := Natr(candles, config)
	assert.NoError(t, err)

	assert.Equal(t, candles.Len()-config.Period, result.Natr.Len())
	assert.Equal(t, result.Natr.Len(), result.Atr.Len())
	assert.Equal(t, candles.Len()-1, result.TrueRange.Len())

	wantNatr := []float64{100.0 / 103, 100.0 / 104, 100.0 / 105}
	for i, want := range wantNatr {
		assert.InDelta(t, 1.0, result.Atr.Values()[i].Float64(), 1e-9)
		assert.InDelta(t, want, result.Natr.Values()[i].Float64(), 1e-9)
	}
}

func Test_Natr_TrueRangeIsAbsoluteChange(t *testing.T) {
	candles := candleSeriesFromPrices(t, 16, 50, 48, 51, 51)

	result, err := Natr(candles, MomentumConfig{Period: 2, MaxHistory: 100, Smoothing: SmoothingWilder})
	assert.NoError(t, err)

	wantTR := []float64{2, 3, 0}
	for i, want := range wantTR {
		assert.InDelta(t, want, result.TrueRange.Values()[i].Float64(), 1e-9)
	}
}

func Test_Natr_InsufficientData(t *testing.T) {
	candles := candleSeriesFromPrices(t, 16, 100, 101, 102)

	_, err := Natr(candles, MomentumConfig{Period: 3, MaxHistory: 100, Smoothing: SmoothingWilder})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func Test_Natr_NonNegative(t *testing.T) {
	candles := candleSeriesFromPrices(t, 32,
		50, 48, 51, 47, 52, 49, 53, 50, 54, 51, 55, 52)

	for _, smoothing := range []SmoothingType{SmoothingWilder, SmoothingEMA, SmoothingSMA} {
		result, err := Natr(candles, MomentumConfig{Period: 4, MaxHistory: 100, Smoothing: smoothing})
		assert.NoError(t, err)
		for i, v := range result.Natr.Values() {
			assert.GreaterOrEqual(t, v.Float64(), 0.0, "smoothing %s natr[%d]", smoothing, i)
		}
	}
}

func Test_Natr_ZeroPriceGuard(t *testing.T) {
	candles := candleSeriesFromPrices(t, 16, 5, 0, 5)

	result, err := Natr(candles, MomentumConfig{Period: 1, MaxHistory: 100, Smoothing: SmoothingWilder})
	assert.NoError(t, err)

	// aligned candles are the zero-price one and the final one
	assert.Equal(t, 2, result.Natr.Len())
	assert.InDelta(t, 0.0, result.Natr.Values()[0].Float64(), 1e-9)
	assert.InDelta(t, 100.0, result.Natr.Values()[1].Float64(), 1e-9)
}

// The same computation over different scalar types must agree within the
// precision gap of the types.
func Test_Natr_NumericTypeEquivalence(t *testing.T) {
	prices := []float64{50, 48, 51, 47, 52, 49, 53, 50, 54, 51, 55, 52}

	f64, err := types.NewCandleSeries[num.Float64](32)
	assert.NoError(t, err)
	f32, err := types.NewCandleSeries[num.Float32](32)
	assert.NoError(t, err)
	fp, err := types.NewCandleSeries[fixedpoint.Value](32)
	assert.NoError(t, err)

	for i, p := range prices {
		ts := int64(i) * 60_000
		f64.Push(num.Float64(p), ts, num.Float64(100))
		f32.Push(num.Float32(p), ts, num.Float32(100))
		fp.Push(fixedpoint.NewFromFloat(p), ts, fixedpoint.NewFromInt(100))
	}

	config := MomentumConfig{Period: 4, MaxHistory: 100, Smoothing: SmoothingWilder}

	r64, err := Natr(f64, config)
	assert.NoError(t, err)
	r32, err := Natr(f32, config)
	assert.NoError(t, err)
	rfp, err := Natr(fp, config)
	assert.NoError(t, err)

	assert.Equal(t, r64.Natr.Len(), r32.Natr.Len())
	assert.Equal(t, r64.Natr.Len(), rfp.Natr.Len())

	for i := range r64.Natr.Values() {
		want := r64.Natr.Values()[i].Float64()
		assert.InEpsilon(t, want, r32.Natr.Values()[i].Float64(), 1e-4, "float32 natr[%d]", i)
		assert.InEpsilon(t, want, rfp.Natr.Values()[i].Float64(), 1e-4, "fixedpoint natr[%d]", i)
	}
}

func Test_Natr_MaxHistoryTrimsWindow(t *testing.T) {
	candles := candleSeriesFromPrices(t, 64,
		100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110)

	result, err := Natr(candles, MomentumConfig{Period: 2, MaxHistory: 4, Smoothing: SmoothingWilder})
	assert.NoError(t, err)

	// 4 retained true ranges, 2 consumed by the seed window
	assert.Equal(t, 3, result.Natr.Len())

	// aligned to the last three candles
	assert.InDelta(t, 100.0/108, result.Natr.Values()[0].Float64(), 1e-9)
	assert.InDelta(t, 100.0/109, result.Natr.Values()[1].Float64(), 1e-9)
	assert.InDelta(t, 100.0/110, result.Natr.Values()[2].Float64(), 1e-9)
}
