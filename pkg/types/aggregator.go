package types

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/c9s/tago/pkg/num"
)

// TickAggregator buckets raw trade ticks into fixed-timeframe candles and
// streams them into a bounded CandleSeries. A tick in the same bucket as
// the newest candle updates it in place (price becomes the latest tick,
// volume accumulates); a tick in a later bucket opens a new candle.
type TickAggregator[T num.Value[T]] struct {
	timeframe int64
	series    *CandleSeries[T]
}

// NewTickAggregator creates an aggregator with the given bucket size in
// milliseconds, backed by a candle series of the given capacity.
func NewTickAggregator[T num.Value[T]](timeframe int64, capacity int) (*TickAggregator[T], error) {
	if timeframe < 1 {
		return nil, errors.Errorf("timeframe must be positive, got %d", timeframe)
	}

	series, err := NewCandleSeries[T](capacity)
	if err != nil {
		return nil, err
	}

	return &TickAggregator[T]{
		timeframe: timeframe,
		series:    series,
	}, nil
}

func (a *TickAggregator[T]) Series() *CandleSeries[T] {
	return a.series
}

// Push ingests one tick. A tick that falls before the newest candle's
// bucket fails with ErrInvalidTimestamp.
func (a *TickAggregator[T]) Push(price, volume T, ts int64) error {
	bucket := ts - ts%a.timeframe

	last, ok := a.series.Last()
	if !ok || bucket > last.Time {
		a.series.Push(price, bucket, volume)
		return nil
	}

	if bucket == last.Time {
		a.series.updateLast(price, volume)
		return nil
	}

	return ErrInvalidTimestamp
}

// PushUnchecked ingests one tick, silently dropping out-of-order ticks
// instead of failing.
func (a *TickAggregator[T]) PushUnchecked(price, volume T, ts int64) {
	if err := a.Push(price, volume, ts); err != nil {
		log.WithFields(log.Fields{
			"timestamp": ts,
			"timeframe": a.timeframe,
		}).Debug("dropping out-of-order tick")
	}
}
