// Package features implements the leaf and composite feature evaluators
// over a timeseries.TimeSeries: one small struct per statistic, each
// implementing evaluator.FeatureEvaluator with a fixed output width.
package features

import (
	"lightcurve/adapters/stats/evaluator"
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
)

// Mean is the arithmetic mean of the magnitudes.
type Mean[T numeric.Float] struct{}

func (Mean[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"mean"}, MinTSLength: 1, MRequired: true}
}

func (e Mean[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	return []T{ts.M.Mean()}, nil
}

// Median is the median of the magnitudes.
type Median[T numeric.Float] struct{}

func (Median[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"median"}, MinTSLength: 1, MRequired: true}
}

func (e Median[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	return []T{ts.M.Median()}, nil
}

// StandardDeviation is the sample standard deviation of the magnitudes
// (N-1 divisor).
type StandardDeviation[T numeric.Float] struct{}

func (StandardDeviation[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"standard_deviation"}, MinTSLength: 2, MRequired: true}
}

func (e StandardDeviation[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	return []T{ts.M.Std()}, nil
}

// WeightedMean is the inverse-variance-weighted mean of the magnitudes.
type WeightedMean[T numeric.Float] struct{}

func (WeightedMean[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"weighted_mean"}, MinTSLength: 1, MRequired: true, WRequired: true}
}

func (e WeightedMean[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	if err := evaluator.RequireWeights(ts, "weighted_mean"); err != nil {
		return nil, err
	}
	return []T{ts.WeightedMean()}, nil
}

// ReducedChi2 is the weighted mean's reduced chi-square goodness of fit
// against a constant model.
type ReducedChi2[T numeric.Float] struct{}

func (ReducedChi2[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"chi2"}, MinTSLength: 2, MRequired: true, WRequired: true}
}

func (e ReducedChi2[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	if err := evaluator.RequireWeights(ts, "chi2"); err != nil {
		return nil, err
	}
	return []T{ts.ReducedChi2()}, nil
}

// Amplitude is half the range of the magnitudes: (max(m)-min(m))/2.
type Amplitude[T numeric.Float] struct{}

func (Amplitude[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"amplitude"}, MinTSLength: 1, MRequired: true}
}

func (e Amplitude[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	sorted := ts.M.Sorted()
	return []T{(sorted[len(sorted)-1] - sorted[0]) / 2}, nil
}

// PercentAmplitude is the larger of the two one-sided deviations of the
// magnitude range from the median: max(max(m)-median, median-min(m)).
type PercentAmplitude[T numeric.Float] struct{}

func (PercentAmplitude[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"percent_amplitude"}, MinTSLength: 1, MRequired: true}
}

func (e PercentAmplitude[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	sorted := ts.M.Sorted()
	median := ts.M.Median()
	top := sorted[len(sorted)-1] - median
	bottom := median - sorted[0]
	return []T{numeric.Max(top, bottom)}, nil
}
