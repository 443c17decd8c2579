package features

import (
	"lightcurve/adapters/stats/evaluator"
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
)

// Skew is the unbiased (adjusted Fisher-Pearson) sample skewness.
type Skew[T numeric.Float] struct{}

func (Skew[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"skew"}, MinTSLength: 3, MRequired: true}
}

func (e Skew[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	std, err := evaluator.NonZeroStd(ts)
	if err != nil {
		return nil, err
	}
	mean := ts.M.Mean()
	n := T(ts.Len())
	var m3 T
	for _, x := range ts.M.Data() {
		d := (x - mean) / std
		m3 += d * d * d
	}
	coeff := n / ((n - 1) * (n - 2))
	return []T{coeff * m3}, nil
}

// Kurtosis is the unbiased sample excess kurtosis.
type Kurtosis[T numeric.Float] struct{}

func (Kurtosis[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"kurtosis"}, MinTSLength: 4, MRequired: true}
}

func (e Kurtosis[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	std, err := evaluator.NonZeroStd(ts)
	if err != nil {
		return nil, err
	}
	mean := ts.M.Mean()
	n := T(ts.Len())
	var m4 T
	for _, x := range ts.M.Data() {
		d := (x - mean) / std
		m4 += d * d * d * d
	}
	coeff := n * (n + 1) / ((n - 1) * (n - 2) * (n - 3))
	correction := 3 * (n - 1) * (n - 1) / ((n - 2) * (n - 3))
	return []T{coeff*m4 - correction}, nil
}
