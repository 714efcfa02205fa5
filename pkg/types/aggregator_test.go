package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c9s/tago/pkg/num"
)

func Test_TickAggregator_Bucketing(t *testing.T) {
	agg, err := NewTickAggregator[num.Float64](60_000, 16)
	assert.NoError(t, err)

	// three ticks in the first minute bucket
	assert.NoError(t, agg.Push(100, 10, 0))
	assert.NoError(t, agg.Push(101, 5, 30_000))
	assert.NoError(t, agg.Push(99, 5, 59_999))

	// one tick in the next bucket
	assert.NoError(t, agg.Push(102, 7, 60_001))

	series := agg.Series()
	assert.Equal(t, 2, series.Len())

	first, err := series.At(0)
	assert.NoError(t, err)
	assert.Equal(t, num.Float64(99), first.Price)
	assert.Equal(t, num.Float64(20), first.Volume)
	assert.Equal(t, int64(0), first.Time)

	second, err := series.At(1)
	assert.NoError(t, err)
	assert.Equal(t, num.Float64(102), second.Price)
	assert.Equal(t, int64(60_000), second.Time)
}

func Test_TickAggregator_OutOfOrder(t *testing.T) {
	agg, err := NewTickAggregator[num.Float64](60_000, 16)
	assert.NoError(t, err)

	assert.NoError(t, agg.Push(100, 1, 120_000))
	assert.ErrorIs(t, agg.Push(99, 1, 59_000), ErrInvalidTimestamp)

	// unchecked push drops the tick without failing
	agg.PushUnchecked(99, 1, 59_000)
	assert.Equal(t, 1, agg.Series().Len())
}

func Test_TickAggregator_InvalidTimeframe(t *testing.T) {
	_, err := NewTickAggregator[num.Float64](0, 16)
	assert.Error(t, err)
}

func Test_TickAggregator_InvalidCapacity(t *testing.T) {
	_, err := NewTickAggregator[num.Float64](60_000, 0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func Test_TickAggregator_EvictsWhenFull(t *testing.T) {
	agg, err := NewTickAggregator[num.Float64](1_000, 2)
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.NoError(t, agg.Push(num.Float64(i), 1, int64(i)*1_000))
	}

	series := agg.Series()
	assert.Equal(t, 2, series.Len())

	oldest, err := series.At(0)
	assert.NoError(t, err)
	assert.Equal(t, num.Float64(3), oldest.Price)
}
