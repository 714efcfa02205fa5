package fixedpoint

func Sum(values []Value) (s Value) {
	s = Zero
	for _, value := range values {
		s = s.Add(value)
	}
	return s
}

// Avg returns the mean of values, Zero for an empty slice.
func Avg(values []Value) (avg Value) {
	if len(values) == 0 {
		return Zero
	}

	s := Sum(values)
	avg = s.Div(NewFromInt(len(values)))
	return avg
}
