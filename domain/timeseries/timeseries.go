package timeseries

import "lightcurve/domain/numeric"

// TimeSeries is the (t, m, w) triple every evaluator reads from: times,
// magnitudes, and weights (w = delta^2, the squared measurement error).
// Weights are optional — evaluators that require them surface
// lcerr.RequiresWeightsError rather than panicking on a nil W.
// t is expected non-decreasing; duplicate timestamps are permitted.
type TimeSeries[T numeric.Float] struct {
	T *DataSample[T]
	M *DataSample[T]
	W *DataSample[T]

	hasWeights   bool
	weightedMean *T
	reducedChi2  *T
}

// New builds a TimeSeries from raw (t, m, w) arrays. Pass w as nil for an
// unweighted series.
func New[T numeric.Float](t, m, w []T) *TimeSeries[T] {
	ts := &TimeSeries[T]{
		T: NewDataSample(t),
		M: NewDataSample(m),
	}
	if w != nil {
		ts.W = NewDataSample(w)
		ts.hasWeights = true
	}
	return ts
}

func (ts *TimeSeries[T]) Len() int         { return ts.T.Len() }
func (ts *TimeSeries[T]) HasWeights() bool { return ts.hasWeights }

// WeightedMean returns the inverse-variance-weighted mean of m, NaN if the
// series carries no weights.
func (ts *TimeSeries[T]) WeightedMean() T {
	if ts.weightedMean == nil {
		var v T
		if !ts.hasWeights {
			v = numeric.NaN[T]()
		} else {
			m, w := ts.M.Data(), ts.W.Data()
			var num, den T
			for i := range m {
				num += m[i] / w[i]
				den += 1 / w[i]
			}
			v = num / den
		}
		ts.weightedMean = &v
	}
	return *ts.weightedMean
}

// ReducedChi2 returns sum((m_i - weighted_mean)^2 / w_i) / (N - 1), NaN if
// the series carries no weights or has fewer than two points.
func (ts *TimeSeries[T]) ReducedChi2() T {
	if ts.reducedChi2 == nil {
		var v T
		if !ts.hasWeights || ts.Len() < 2 {
			v = numeric.NaN[T]()
		} else {
			mean := ts.WeightedMean()
			m, w := ts.M.Data(), ts.W.Data()
			var sum T
			for i := range m {
				d := m[i] - mean
				sum += d * d / w[i]
			}
			v = sum / T(ts.Len()-1)
		}
		ts.reducedChi2 = &v
	}
	return *ts.reducedChi2
}
