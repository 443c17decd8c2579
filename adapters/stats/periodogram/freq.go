// Package periodogram implements the Lomb-Scargle power evaluators and
// frequency-grid construction used by the Periodogram feature.
package periodogram

import (
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
)

// NyquistStrategy derives a Nyquist angular frequency from a time series.
type NyquistStrategy[T numeric.Float] func(ts *timeseries.TimeSeries[T]) T

// AverageNyquist returns pi*(N-1)/(t_max-t_min), the Nyquist frequency
// implied by the average sampling cadence.
func AverageNyquist[T numeric.Float](ts *timeseries.TimeSeries[T]) T {
	t := ts.T.Data()
	span := t[len(t)-1] - t[0]
	n := T(ts.Len())
	return numeric.Const[T](numeric.Pi) * (n - 1) / span
}

// QuantileNyquist returns a strategy using pi / quantile(dt, q) as the
// Nyquist frequency, robust to a handful of unusually short gaps.
func QuantileNyquist[T numeric.Float](q T) NyquistStrategy[T] {
	return func(ts *timeseries.TimeSeries[T]) T {
		t := ts.T.Data()
		diffs := make([]T, len(t)-1)
		for i := range diffs {
			diffs[i] = t[i+1] - t[i]
		}
		dtq := timeseries.NewDataSample(diffs).Quantile(q)
		return numeric.Const[T](numeric.Pi) / dtq
	}
}

// Grid builds the angular frequency grid {i*minFreq : i=1,2,...} up to
// maxFreqFactor*nyquist(ts), with minFreq = pi/(resolution*observationTime).
func Grid[T numeric.Float](ts *timeseries.TimeSeries[T], resolution, maxFreqFactor T, nyquist NyquistStrategy[T]) []T {
	t := ts.T.Data()
	observationTime := t[len(t)-1] - t[0]
	minFreq := numeric.Const[T](numeric.Pi) / (resolution * observationTime)
	maxFreq := maxFreqFactor * nyquist(ts)

	var freqs []T
	for i := 1; ; i++ {
		f := T(i) * minFreq
		if f > maxFreq {
			break
		}
		freqs = append(freqs, f)
	}
	return freqs
}
