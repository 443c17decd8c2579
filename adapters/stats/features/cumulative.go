package features

import (
	"lightcurve/adapters/stats/evaluator"
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
)

// Cusum is the range of the normalized cumulative sum of magnitude
// deviations from the mean: max(S) - min(S), where
// S_j = (1/(N*std)) * sum_{i<=j} (m_i - mean).
type Cusum[T numeric.Float] struct{}

func (Cusum[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"cusum"}, MinTSLength: 2, MRequired: true}
}

func (e Cusum[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	std, err := evaluator.NonZeroStd(ts)
	if err != nil {
		return nil, err
	}
	mean := ts.M.Mean()
	n := T(ts.Len())
	norm := 1 / (n * std)
	var running, max, min T
	for i, x := range ts.M.Data() {
		running += (x - mean) * norm
		if i == 0 || running > max {
			max = running
		}
		if i == 0 || running < min {
			min = running
		}
	}
	return []T{max - min}, nil
}

// Eta is the von Neumann statistic: the sum of squared successive magnitude
// differences, divided by (N-1)*std^2.
type Eta[T numeric.Float] struct{}

func (Eta[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"eta"}, MinTSLength: 2, MRequired: true}
}

func (e Eta[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	std, err := evaluator.NonZeroStd(ts)
	if err != nil {
		return nil, err
	}
	m := ts.M.Data()
	var sum T
	for i := 0; i+1 < len(m); i++ {
		d := m[i+1] - m[i]
		sum += d * d
	}
	n := T(ts.Len())
	return []T{sum / ((n - 1) * std * std)}, nil
}

// EtaE is Eta corrected for irregular sampling: successive differences are
// divided by their time gap before squaring, and the sum is rescaled by
// the observation span so evenly- and unevenly-sampled series are
// comparable. Non-finite per-pair slopes (duplicate timestamps) are
// skipped rather than propagating a NaN/Inf into the sum.
type EtaE[T numeric.Float] struct{}

func (EtaE[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size:            1,
		Names:           []string{"eta_e"},
		MinTSLength:     2,
		TRequired:       true,
		MRequired:       true,
		SortingRequired: true,
	}
}

func (e EtaE[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	std, err := evaluator.NonZeroStd(ts)
	if err != nil {
		return nil, err
	}
	t, m := ts.T.Data(), ts.M.Data()
	var sum T
	for i := 0; i+1 < len(t); i++ {
		dt := t[i+1] - t[i]
		if dt == 0 {
			continue
		}
		slope := (m[i+1] - m[i]) / dt
		if !numeric.IsFinite(slope) {
			continue
		}
		sum += slope * slope
	}
	n := T(ts.Len())
	span := t[len(t)-1] - t[0]
	return []T{sum * span * span / ((n - 1) * (n - 1) * (n - 1) * std * std)}, nil
}

// StetsonK is the kurtosis-like Stetson K statistic, a robustness measure
// of the weighted residuals from the weighted mean. It requires weights and
// returns a RequiresWeightsError when they are absent, matching this
// module's typed-error model for every other weight-dependent evaluator
// (see DESIGN.md).
type StetsonK[T numeric.Float] struct{}

func (StetsonK[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"stetson_k"}, MinTSLength: 2, MRequired: true, WRequired: true}
}

func (e StetsonK[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	if err := evaluator.RequireWeights(ts, "stetson_k"); err != nil {
		return nil, err
	}
	n := T(ts.Len())
	chi2 := (n - 1) * ts.ReducedChi2()
	if chi2 == 0 {
		return []T{0}, nil
	}
	mean := ts.WeightedMean()
	m, w := ts.M.Data(), ts.W.Data()
	var sum T
	for i := range m {
		sum += numeric.Abs(m[i]-mean) / numeric.Sqrt(w[i])
	}
	return []T{sum / numeric.Sqrt(n*chi2)}, nil
}

// AndersonDarlingNormal is the Anderson-Darling A-squared statistic for
// normality of the magnitudes, evaluated with a log-scale complementary
// error function so the tail terms stay accurate even for points many
// standard deviations from the mean.
type AndersonDarlingNormal[T numeric.Float] struct{}

func (AndersonDarlingNormal[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"anderson_darling_normal"}, MinTSLength: 4, MRequired: true}
}

func (e AndersonDarlingNormal[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	std, err := evaluator.NonZeroStd(ts)
	if err != nil {
		return nil, err
	}
	mean := ts.M.Mean()
	sorted := ts.M.Sorted()
	n := len(sorted)

	ln2 := T(numeric.Ln2)
	lnPhi := func(z T) T {
		// ln(Phi(z)) = ln(0.5) + ln_erfc(-z/sqrt2)
		return -ln2 + numeric.LnErfc(-z/numeric.Sqrt2T[T]())
	}
	lnOneMinusPhi := func(z T) T {
		// ln(1 - Phi(z)) = ln(Phi(-z)) = ln(0.5) + ln_erfc(z/sqrt2)
		return -ln2 + numeric.LnErfc(z/numeric.Sqrt2T[T]())
	}

	var sum T
	for i := 0; i < n; i++ {
		zLow := (sorted[i] - mean) / std
		zHigh := (sorted[n-1-i] - mean) / std
		weight := T(2*(i+1) - 1)
		sum += weight * (lnPhi(zLow) + lnOneMinusPhi(zHigh))
	}
	nT := T(n)
	a2 := -nT - sum/nT
	correction := 1 + 4/nT - 25/(nT*nT)
	return []T{a2 * correction}, nil
}
