package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/tago/pkg/num"
	"github.com/c9s/tago/pkg/types"
)

// NatrResult holds the normalized average true range pipeline. Natr and
// Atr omit the warm-up window (first value at input index Period, output
// Period elements shorter than the effective input); TrueRange starts at
// input index 1.
type NatrResult[T num.Value[T]] struct {
	Natr      *types.Series[T]
	Atr       *types.Series[T]
	TrueRange *types.Series[T]
}

/*
Natr computes the Normalized Average True Range over a candle series.

Candles carry a single price, so the close-only true range variant is used:
TR_i = |price_i - price_{i-1}|. TR is smoothed with the configured running
average (Wilder by default) into ATR, then normalized per candle as
NATR = 100 * ATR / price. A near-zero price triggers the division guard and
emits 0 for that position instead of an infinity.
*/
func Natr[T num.Value[T]](candles *types.CandleSeries[T], config MomentumConfig) (*NatrResult[T], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if candles.Len() < config.Period+1 {
		return nil, errors.Wrapf(ErrInsufficientData,
			"natr requires at least %d candles, got %d", config.Period+1, candles.Len())
	}

	trueRange := candles.TrueRange()
	trimmed := tail(trueRange.Values(), config.MaxHistory)

	atrValues := smooth(trimmed, config.Period, config.Smoothing)

	// index into the retained candles of the first smoothed value:
	// one candle consumed by TR, period-1 by the seed window, plus
	// whatever the history trim skipped.
	offset := candles.Len() - len(trimmed) + config.Period - 1

	var zero T
	hundred := num.FromFloat64[T](100)

	result := &NatrResult[T]{
		Natr:      types.NewSeries[T]("natr"),
		Atr:       types.NewSeries[T]("atr"),
		TrueRange: trueRange,
	}

	for i, atr := range atrValues {
		candle, err := candles.At(offset + i)
		if err != nil {
			return nil, err
		}

		result.Atr.Push(atr)
		if candle.Price.IsZero() {
			result.Natr.Push(zero)
		} else {
			result.Natr.Push(hundred.Mul(atr).Div(candle.Price))
		}
	}

	return result, nil
}
