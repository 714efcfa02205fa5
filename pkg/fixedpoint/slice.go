package fixedpoint

import "sort"

// Slice is a []Value that sorts ascending and carries the summary helpers
// the CLI tables are built on.
type Slice []Value

func (s Slice) Len() int           { return len(s) }
func (s Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Slice) Less(i, j int) bool { return s[i].Compare(s[j]) < 0 }

// Descending adapts a []Value to sort high to low.
type Descending []Value

func (s Descending) Len() int           { return len(s) }
func (s Descending) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s Descending) Less(i, j int) bool { return s[i].Compare(s[j]) > 0 }

// Median returns the middle value, the mean of the two middle values for
// even lengths, and Zero for an empty slice. The receiver is not mutated.
func (s Slice) Median() Value {
	if len(s) == 0 {
		return Zero
	}

	sorted := make(Slice, len(s))
	copy(sorted, s)
	sort.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(NewFromInt(2))
}

// Largest returns the n largest values, high to low. The receiver is not
// mutated.
func (s Slice) Largest(n int) Slice {
	sorted := make(Slice, len(s))
	copy(sorted, s)
	sort.Sort(Descending(sorted))

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
