package types

import (
	"gonum.org/v1/gonum/stat"

	"github.com/c9s/tago/pkg/num"
)

// Series is a named, append-only ordered sequence of scalar values. The
// name is fixed at construction; values are mutated only by Push.
type Series[T num.Value[T]] struct {
	name   string
	values []T
}

// NewSeries constructs a series with the given name and initial values in
// order.
func NewSeries[T num.Value[T]](name string, values ...T) *Series[T] {
	s := &Series[T]{name: name}
	s.values = append(s.values, values...)
	return s
}

func (s *Series[T]) Name() string {
	return s.name
}

func (s *Series[T]) Push(v T) {
	s.values = append(s.values, v)
}

// Values returns the ordered backing slice. Callers must treat it as
// read-only.
func (s *Series[T]) Values() []T {
	return s.values
}

func (s *Series[T]) Len() int {
	return len(s.values)
}

// Last returns the i-th value counting back from the newest, so Last(0) is
// the most recent one. Out-of-range access returns the zero value.
func (s *Series[T]) Last(i int) T {
	var zero T
	length := len(s.values)
	if i < 0 || length-i-1 < 0 {
		return zero
	}
	return s.values[length-i-1]
}

// Tail returns a copy of the trailing size values (all of them when the
// series is shorter).
func (s *Series[T]) Tail(size int) *Series[T] {
	length := len(s.values)
	if length <= size {
		return NewSeries(s.name, s.values...)
	}
	return NewSeries(s.name, s.values[length-size:]...)
}

// Diff returns the successive differences values[i] - values[i-1]. The
// result is one element shorter than the input.
func (s *Series[T]) Diff() *Series[T] {
	out := NewSeries[T](s.name + "_diff")
	for i := 1; i < len(s.values); i++ {
		out.Push(s.values[i].Sub(s.values[i-1]))
	}
	return out
}

func (s *Series[T]) Sum() T {
	var sum T
	for _, v := range s.values {
		sum = sum.Add(v)
	}
	return sum
}

// Mean returns the arithmetic mean, the zero value for an empty series.
func (s *Series[T]) Mean() T {
	if len(s.values) == 0 {
		var zero T
		return zero
	}
	return s.Sum().Div(num.FromFloat64[T](float64(len(s.values))))
}

// Float64s converts the series into a plain float64 slice for charting and
// float-based statistics.
func (s *Series[T]) Float64s() []float64 {
	out := make([]float64, len(s.values))
	for i, v := range s.values {
		out[i] = v.Float64()
	}
	return out
}

// Stdev returns the sample standard deviation of the series as float64.
func Stdev[T num.Value[T]](s *Series[T]) float64 {
	return stat.StdDev(s.Float64s(), nil)
}

// Variance returns the sample variance of the series as float64.
func Variance[T num.Value[T]](s *Series[T]) float64 {
	return stat.Variance(s.Float64s(), nil)
}
