package scale

import (
	"sort"

	"github.com/katalvlaran/lvlchart/series"
)

// Mean returns the arithmetic mean of the observation values, typically
// used to position an average marker line.
// Returns ErrEmptySeries on zero observations.
// Complexity: O(n).
func Mean(s *series.DataSeries) (float64, error) {
	n := s.Len()
	if n == 0 {
		return 0, ErrEmptySeries
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += s.At(i).Value
	}

	return sum / float64(n), nil
}

// Median returns the median of the observation values: the middle value
// for odd n, the mean of the two middle values for even n.
// Returns ErrEmptySeries on zero observations.
// Complexity: O(n log n).
func Median(s *series.DataSeries) (float64, error) {
	n := s.Len()
	if n == 0 {
		return 0, ErrEmptySeries
	}
	vals := s.Values()
	sort.Float64s(vals)
	mid := n / 2
	if n%2 == 1 {
		return vals[mid], nil
	}

	return (vals[mid-1] + vals[mid]) / 2, nil
}
