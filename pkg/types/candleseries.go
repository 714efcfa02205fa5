package types

import (
	"github.com/pkg/errors"

	"github.com/c9s/tago/pkg/num"
)

// CandleSeries is a fixed-capacity FIFO buffer of candles laid out as a
// circular array. Once the buffer is full each push evicts the oldest
// candle, so a live feed can stream into it with constant memory and O(1)
// pushes.
type CandleSeries[T num.Value[T]] struct {
	candles []Candle[T]
	head    int
	length  int
}

// NewCandleSeries allocates a series holding at most capacity candles.
func NewCandleSeries[T num.Value[T]](capacity int) (*CandleSeries[T], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity must be positive, got %d", capacity)
	}
	return &CandleSeries[T]{
		candles: make([]Candle[T], capacity),
	}, nil
}

// Push appends a candle, evicting the oldest one first when the buffer is
// at capacity.
func (cs *CandleSeries[T]) Push(price T, ts int64, volume T) {
	cs.PushCandle(Candle[T]{Price: price, Time: ts, Volume: volume})
}

func (cs *CandleSeries[T]) PushCandle(c Candle[T]) {
	if cs.length < len(cs.candles) {
		cs.candles[(cs.head+cs.length)%len(cs.candles)] = c
		cs.length++
		return
	}

	// full: overwrite the oldest slot and advance the head
	cs.candles[cs.head] = c
	cs.head = (cs.head + 1) % len(cs.candles)
}

func (cs *CandleSeries[T]) Len() int {
	return cs.length
}

func (cs *CandleSeries[T]) Capacity() int {
	return len(cs.candles)
}

// At returns the i-th retained candle, 0 being the oldest.
func (cs *CandleSeries[T]) At(i int) (Candle[T], error) {
	if i < 0 || i >= cs.length {
		return Candle[T]{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, cs.length)
	}
	return cs.candles[(cs.head+i)%len(cs.candles)], nil
}

// Last returns the newest candle and false when the series is empty.
func (cs *CandleSeries[T]) Last() (Candle[T], bool) {
	if cs.length == 0 {
		return Candle[T]{}, false
	}
	c, _ := cs.At(cs.length - 1)
	return c, true
}

// updateLast rewrites the newest candle in place. Used by TickAggregator
// for same-bucket ticks.
func (cs *CandleSeries[T]) updateLast(price T, volume T) {
	i := (cs.head + cs.length - 1) % len(cs.candles)
	cs.candles[i].Price = price
	cs.candles[i].Volume = cs.candles[i].Volume.Add(volume)
}

// Prices returns the retained prices, oldest first, as a derived series.
// The buffer is not mutated.
func (cs *CandleSeries[T]) Prices() *Series[T] {
	s := NewSeries[T]("price")
	for i := 0; i < cs.length; i++ {
		c, _ := cs.At(i)
		s.Push(c.Price)
	}
	return s
}

// Volumes returns the retained volumes, oldest first.
func (cs *CandleSeries[T]) Volumes() *Series[T] {
	s := NewSeries[T]("volume")
	for i := 0; i < cs.length; i++ {
		c, _ := cs.At(i)
		s.Push(c.Volume)
	}
	return s
}

// Returns computes difference returns price[i] - price[i-1], one element
// shorter than the retained window.
func (cs *CandleSeries[T]) Returns() *Series[T] {
	s := NewSeries[T]("return")
	for i := 1; i < cs.length; i++ {
		cur, _ := cs.At(i)
		prev, _ := cs.At(i - 1)
		s.Push(cur.Price.Sub(prev.Price))
	}
	return s
}

// TrueRange computes the close-only true range, one element shorter than
// the retained window. With a single price per candle the high/low
// excursion terms of the classic formula collapse to the range spanned by
// the two closes, |price[i] - price[i-1]|.
func (cs *CandleSeries[T]) TrueRange() *Series[T] {
	s := NewSeries[T]("tr")
	for i := 1; i < cs.length; i++ {
		cur, _ := cs.At(i)
		prev, _ := cs.At(i - 1)
		hi := num.Max(cur.Price, prev.Price)
		lo := num.Min(cur.Price, prev.Price)
		s.Push(hi.Sub(lo))
	}
	return s
}
