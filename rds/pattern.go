package rds

// SignificantPattern is an ordered, non-empty sequence of node indices
// representing a discovered recurring subsequence. Immutable once created.
type SignificantPattern []int

// NewSignificantPattern copies sequence into a pattern. An empty sequence is
// a caller bug in graph assembly and panics.
func NewSignificantPattern(sequence []int) SignificantPattern {
	if len(sequence) == 0 {
		panic("rds: significant pattern must be non-empty")
	}

	return append(SignificantPattern(nil), sequence...)
}

// Find returns the index of the first occurrence of unit, or -1.
func (sp SignificantPattern) Find(unit int) int {
	for i, u := range sp {
		if u == unit {
			return i
		}
	}

	return -1
}
