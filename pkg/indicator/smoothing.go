package indicator

import "github.com/c9s/tago/pkg/num"

// smooth runs the configured running average over values. The first output
// is the simple mean of the first period values (the seed), so the result
// holds len(values)-period+1 entries, the i-th aligned to values[period-1+i].
// Callers guarantee len(values) >= period.
func smooth[T num.Value[T]](values []T, period int, mode SmoothingType) []T {
	p := num.FromFloat64[T](float64(period))

	var sum T
	for _, v := range values[:period] {
		sum = sum.Add(v)
	}
	avg := sum.Div(p)

	out := make([]T, 0, len(values)-period+1)
	out = append(out, avg)

	switch mode {
	case SmoothingEMA:
		alpha := 2.0 / float64(period+1)
		a := num.FromFloat64[T](alpha)
		b := num.FromFloat64[T](1.0 - alpha)
		for _, x := range values[period:] {
			avg = a.Mul(x).Add(b.Mul(avg))
			out = append(out, avg)
		}

	case SmoothingSMA:
		for i := period; i < len(values); i++ {
			sum = sum.Add(values[i]).Sub(values[i-period])
			out = append(out, sum.Div(p))
		}

	default: // SmoothingWilder
		pm1 := num.FromFloat64[T](float64(period - 1))
		for _, x := range values[period:] {
			avg = avg.Mul(pm1).Add(x).Div(p)
			out = append(out, avg)
		}
	}

	return out
}

// tail trims values to their trailing max entries.
func tail[T any](values []T, max int) []T {
	if max > 0 && len(values) > max {
		return values[len(values)-max:]
	}
	return values
}
