// Package num defines the scalar capability contract shared by all
// indicator algorithms. An algorithm written against Value[T] runs
// unchanged over float64, float32 or fixed-point values.
package num

import "math"

// Value is the method set a scalar type must provide to participate in
// indicator math. Division by zero must stay total: implementations return
// a documented sentinel (IEEE Inf for floats, saturation for fixed-point)
// instead of faulting.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Abs() T

	// Compare returns -1, 0 or 1.
	Compare(T) int

	// IsZero reports whether the value is close enough to zero that
	// dividing by it is meaningless.
	IsZero() bool

	Float64() float64
	FromFloat64(float64) T
}

// FromFloat64 converts a float64 constant into T.
func FromFloat64[T Value[T]](f float64) T {
	var zero T
	return zero.FromFloat64(f)
}

// Max returns the larger of a and b.
func Max[T Value[T]](a, b T) T {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T Value[T]](a, b T) T {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

const (
	// Float64Epsilon is the near-zero threshold for Float64.
	Float64Epsilon = 1e-12

	// Float32Epsilon is the near-zero threshold for Float32.
	Float32Epsilon = 1e-6
)

// Float64 adapts the built-in float64 to the Value contract.
type Float64 float64

func (v Float64) Add(v2 Float64) Float64 { return v + v2 }
func (v Float64) Sub(v2 Float64) Float64 { return v - v2 }
func (v Float64) Mul(v2 Float64) Float64 { return v * v2 }

// Div returns the IEEE quotient. x/0 is ±Inf, the float sentinel.
func (v Float64) Div(v2 Float64) Float64 { return v / v2 }

func (v Float64) Abs() Float64 {
	return Float64(math.Abs(float64(v)))
}

func (v Float64) Compare(v2 Float64) int {
	if v < v2 {
		return -1
	} else if v > v2 {
		return 1
	}
	return 0
}

func (v Float64) IsZero() bool {
	return math.Abs(float64(v)) < Float64Epsilon
}

func (v Float64) Float64() float64 { return float64(v) }

func (v Float64) FromFloat64(f float64) Float64 { return Float64(f) }

// Float32 adapts the built-in float32 to the Value contract.
type Float32 float32

func (v Float32) Add(v2 Float32) Float32 { return v + v2 }
func (v Float32) Sub(v2 Float32) Float32 { return v - v2 }
func (v Float32) Mul(v2 Float32) Float32 { return v * v2 }

// Div returns the IEEE quotient. x/0 is ±Inf, the float sentinel.
func (v Float32) Div(v2 Float32) Float32 { return v / v2 }

func (v Float32) Abs() Float32 {
	return Float32(math.Abs(float64(v)))
}

func (v Float32) Compare(v2 Float32) int {
	if v < v2 {
		return -1
	} else if v > v2 {
		return 1
	}
	return 0
}

func (v Float32) IsZero() bool {
	return math.Abs(float64(v)) < Float32Epsilon
}

func (v Float32) Float64() float64 { return float64(v) }

func (v Float32) FromFloat64(f float64) Float32 { return Float32(f) }

var (
	_ Value[Float64] = Float64(0)
	_ Value[Float32] = Float32(0)
)
