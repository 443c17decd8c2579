// Package timeseries holds the (t, m, w) light curve view and the
// lazily-cached one-pass statistics evaluators read from it repeatedly.
package timeseries

import (
	"sort"

	"lightcurve/domain/numeric"
)

// DataSample wraps a single array (time, magnitude, or weight) and memoizes
// the handful of statistics evaluators re-derive over and over (sorted
// copy, mean, standard deviation, median). A DataSample never observes its
// backing array change after construction, so once a cache field is
// populated it stays valid for the sample's lifetime.
type DataSample[T numeric.Float] struct {
	data []T

	sorted []T
	mean   *T
	std    *T
	median *T
}

// NewDataSample copies data so later mutation of the caller's slice cannot
// invalidate the memoized statistics.
func NewDataSample[T numeric.Float](data []T) *DataSample[T] {
	return &DataSample[T]{data: append([]T(nil), data...)}
}

func (s *DataSample[T]) Len() int   { return len(s.data) }
func (s *DataSample[T]) Data() []T  { return s.data }
func (s *DataSample[T]) At(i int) T { return s.data[i] }

// Sorted returns an ascending copy of the sample, computed once.
func (s *DataSample[T]) Sorted() []T {
	if s.sorted == nil {
		cp := append([]T(nil), s.data...)
		sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
		s.sorted = cp
	}
	return s.sorted
}

// Mean returns the arithmetic mean.
func (s *DataSample[T]) Mean() T {
	if s.mean == nil {
		var sum T
		for _, v := range s.data {
			sum += v
		}
		m := sum / T(len(s.data))
		s.mean = &m
	}
	return *s.mean
}

// Std returns the sample standard deviation (N-1 divisor). NaN for fewer
// than two points.
func (s *DataSample[T]) Std() T {
	if s.std == nil {
		var v T
		if len(s.data) < 2 {
			v = numeric.NaN[T]()
		} else {
			mean := s.Mean()
			var ss T
			for _, x := range s.data {
				d := x - mean
				ss += d * d
			}
			v = numeric.Sqrt(ss / T(len(s.data)-1))
		}
		s.std = &v
	}
	return *s.std
}

// Median returns the median, averaging the two middle elements for an
// even-length sample.
func (s *DataSample[T]) Median() T {
	if s.median == nil {
		sorted := s.Sorted()
		n := len(sorted)
		var m T
		if n%2 == 1 {
			m = sorted[n/2]
		} else {
			m = (sorted[n/2-1] + sorted[n/2]) / 2
		}
		s.median = &m
	}
	return *s.median
}

// Quantile returns the q-th quantile (0 <= q <= 1) of the sample by linear
// interpolation between order statistics, operating on the cached sorted
// copy.
func (s *DataSample[T]) Quantile(q T) T {
	sorted := s.Sorted()
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := float64(q) * float64(n-1)
	lo := int(pos)
	if lo < 0 {
		lo = 0
	}
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := T(pos - float64(lo))
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
