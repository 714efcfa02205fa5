package fixedpoint

// Tester reports whether a value belongs in a filtered slice.
type Tester func(value Value) bool

func PositiveTester(value Value) bool {
	return value.Sign() > 0
}

func NegativeTester(value Value) bool {
	return value.Sign() < 0
}

// Filter returns the values matching f, preserving order. The CLI uses it
// to split price moves into advances and declines.
func Filter(values []Value, f Tester) (out Slice) {
	for _, v := range values {
		if f(v) {
			out = append(out, v)
		}
	}
	return out
}
