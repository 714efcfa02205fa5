package types

import "github.com/pkg/errors"

var (
	// ErrInvalidCapacity is returned when a CandleSeries is constructed
	// with a non-positive capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrIndexOutOfRange is returned by indexed access past the retained
	// window.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidTimestamp is returned by TickAggregator.Push when a tick
	// falls before the bucket of the last candle.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
