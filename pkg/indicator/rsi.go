package indicator

import (
	"github.com/pkg/errors"

	"github.com/c9s/tago/pkg/num"
	"github.com/c9s/tago/pkg/types"
)

// RsiResult holds the RSI output plus the running averages it was derived
// from. All three series share the same alignment: the warm-up window is
// omitted, so the first value corresponds to input index Period and the
// output is exactly Period elements shorter than the effective input.
type RsiResult[T num.Value[T]] struct {
	Rsi     *types.Series[T]
	AvgGain *types.Series[T]
	AvgLoss *types.Series[T]
}

/*
Rsi computes the Relative Strength Index over a price series.

https://www.investopedia.com/terms/r/rsi.asp

Price changes are split into gains and losses, both averaged with the
configured smoothing (seeded by the simple mean of the first Period
entries), then RSI = 100 - 100/(1+RS) with RS = avgGain/avgLoss. A
near-zero average loss is guarded: the output is pinned to 100 instead of
dividing.
*/
func Rsi[T num.Value[T]](prices *types.Series[T], config RsiConfig) (*RsiResult[T], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	values := prices.Values()
	if len(values) < config.Period+1 {
		return nil, errors.Wrapf(ErrInsufficientData,
			"rsi requires at least %d prices, got %d", config.Period+1, len(values))
	}

	var zero T
	gains := make([]T, 0, len(values)-1)
	losses := make([]T, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		change := values[i].Sub(values[i-1])
		if change.Compare(zero) > 0 {
			gains = append(gains, change)
			losses = append(losses, zero)
		} else {
			gains = append(gains, zero)
			losses = append(losses, change.Abs())
		}
	}

	gains = tail(gains, config.MaxHistory)
	losses = tail(losses, config.MaxHistory)

	avgGains := smooth(gains, config.Period, config.Smoothing)
	avgLosses := smooth(losses, config.Period, config.Smoothing)

	hundred := num.FromFloat64[T](100)
	one := num.FromFloat64[T](1)

	result := &RsiResult[T]{
		Rsi:     types.NewSeries[T](prices.Name() + "_rsi"),
		AvgGain: types.NewSeries[T](prices.Name() + "_avg_gain"),
		AvgLoss: types.NewSeries[T](prices.Name() + "_avg_loss"),
	}

	for i := range avgGains {
		gain := avgGains[i]
		loss := avgLosses[i]

		var rsi T
		if loss.IsZero() {
			rsi = hundred
		} else {
			rs := gain.Div(loss)
			rsi = hundred.Sub(hundred.Div(one.Add(rs)))
		}

		result.Rsi.Push(rsi)
		result.AvgGain.Push(gain)
		result.AvgLoss.Push(loss)
	}

	return result, nil
}

// RsiSeries computes RSI over the prices retained in a candle series.
func RsiSeries[T num.Value[T]](candles *types.CandleSeries[T], config MomentumConfig) (*RsiResult[T], error) {
	return Rsi(candles.Prices(), config)
}
