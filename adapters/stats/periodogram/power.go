package periodogram

import (
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
)

// PowerEvaluator computes Lomb-Scargle power at each angular frequency in
// freqs for the given time series.
type PowerEvaluator[T numeric.Float] interface {
	Power(ts *timeseries.TimeSeries[T], freqs []T) []T
}

// DirectPower is the textbook O(N*M) Lomb-Scargle evaluator: for each
// frequency it computes the time-delay tau that makes the trigonometric
// basis functions orthogonal at that frequency, then the normalized power
// of the magnitude residuals projected onto that basis.
type DirectPower[T numeric.Float] struct{}

func (DirectPower[T]) Power(ts *timeseries.TimeSeries[T], freqs []T) []T {
	t := ts.T.Data()
	mean := ts.M.Mean()
	variance := populationVariance(ts.M.Data(), mean)

	power := make([]T, len(freqs))
	for i, omega := range freqs {
		power[i] = lombScarglePower(t, ts.M.Data(), mean, variance, omega)
	}
	return power
}

func tau[T numeric.Float](t []T, omega T) T {
	var sumSin, sumCos T
	for _, ti := range t {
		sumSin += numeric.Sin(2 * omega * ti)
		sumCos += numeric.Cos(2 * omega * ti)
	}
	if sumCos == 0 {
		return 0
	}
	return numeric.Atan(sumSin/sumCos) / (2 * omega)
}

func lombScarglePower[T numeric.Float](t, m []T, mean, variance, omega T) T {
	if variance == 0 {
		return 0
	}
	t0 := tau(t, omega)
	var sumCos, sumSin, sumCos2, sumSin2 T
	for i := range t {
		dt := t[i] - t0
		c := numeric.Cos(omega * dt)
		s := numeric.Sin(omega * dt)
		dm := m[i] - mean
		sumCos += dm * c
		sumSin += dm * s
		sumCos2 += c * c
		sumSin2 += s * s
	}
	var cosTerm, sinTerm T
	if sumCos2 != 0 {
		cosTerm = sumCos * sumCos / sumCos2
	}
	if sumSin2 != 0 {
		sinTerm = sumSin * sumSin / sumSin2
	}
	return 0.5 * (cosTerm + sinTerm) / variance
}

func populationVariance[T numeric.Float](data []T, mean T) T {
	var ss T
	for _, x := range data {
		d := x - mean
		ss += d * d
	}
	return ss / T(len(data))
}
