package features

import (
	"fmt"

	"lightcurve/adapters/stats/evaluator"
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
	"lightcurve/internal/lcerr"
)

// BeyondNStd is the fraction of magnitudes further than n standard
// deviations from the mean.
type BeyondNStd[T numeric.Float] struct {
	N T
}

// NewBeyondNStd returns a BeyondNStd evaluator for the given number of
// standard deviations; n=1 is the conventional default.
func NewBeyondNStd[T numeric.Float](n T) BeyondNStd[T] { return BeyondNStd[T]{N: n} }

func (e BeyondNStd[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size:        1,
		Names:       []string{fmt.Sprintf("beyond_%v_std", float64(e.N))},
		MinTSLength: 2,
		MRequired:   true,
	}
}

func (e BeyondNStd[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	std, err := evaluator.NonZeroStd(ts)
	if err != nil {
		return nil, err
	}
	mean := ts.M.Mean()
	threshold := e.N * std
	var count T
	for _, x := range ts.M.Data() {
		if numeric.Abs(x-mean) > threshold {
			count++
		}
	}
	return []T{count / T(ts.Len())}, nil
}

// MedianAbsoluteDeviation is the median of |m_i - median(m)|.
type MedianAbsoluteDeviation[T numeric.Float] struct{}

func (MedianAbsoluteDeviation[T]) Info() evaluator.Info {
	return evaluator.Info{Size: 1, Names: []string{"median_absolute_deviation"}, MinTSLength: 1, MRequired: true}
}

func (e MedianAbsoluteDeviation[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	median := ts.M.Median()
	deviations := make([]T, ts.Len())
	for i, x := range ts.M.Data() {
		deviations[i] = numeric.Abs(x - median)
	}
	return []T{timeseries.NewDataSample(deviations).Median()}, nil
}

// MedianBufferRangePercentage is the fraction of magnitudes within
// quantile*median(m) of the median. The threshold scales with the median
// itself, literally, including its sign, rather than with the series'
// amplitude.
type MedianBufferRangePercentage[T numeric.Float] struct {
	Quantile T
}

// NewMedianBufferRangePercentage returns the evaluator for the given
// quantile; 0.1 is the conventional default.
func NewMedianBufferRangePercentage[T numeric.Float](quantile T) (MedianBufferRangePercentage[T], error) {
	if quantile <= 0 {
		return MedianBufferRangePercentage[T]{}, &lcerr.InvalidParameterError{Feature: "median_buffer_range_percentage", Parameter: "quantile", Reason: "must be positive"}
	}
	return MedianBufferRangePercentage[T]{Quantile: quantile}, nil
}

func (e MedianBufferRangePercentage[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size:        1,
		Names:       []string{fmt.Sprintf("median_buffer_range_percentage_%.0f", float64(e.Quantile)*100)},
		MinTSLength: 1,
		MRequired:   true,
	}
}

func (e MedianBufferRangePercentage[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	median := ts.M.Median()
	threshold := e.Quantile * median
	var count T
	for _, x := range ts.M.Data() {
		if numeric.Abs(x-median) < threshold {
			count++
		}
	}
	return []T{count / T(ts.Len())}, nil
}

// InterPercentileRange is ppf(1-quantile) - ppf(quantile) of the
// magnitudes, quantile in (0, 0.5).
type InterPercentileRange[T numeric.Float] struct {
	Quantile T
}

// NewInterPercentileRange returns the evaluator for the given quantile,
// which must satisfy 0 < quantile < 0.5.
func NewInterPercentileRange[T numeric.Float](quantile T) (InterPercentileRange[T], error) {
	if !(quantile > 0 && quantile < 0.5) {
		return InterPercentileRange[T]{}, &lcerr.InvalidParameterError{Feature: "inter_percentile_range", Parameter: "quantile", Reason: "must satisfy 0 < quantile < 0.5"}
	}
	return InterPercentileRange[T]{Quantile: quantile}, nil
}

func (e InterPercentileRange[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size:        1,
		Names:       []string{fmt.Sprintf("inter_percentile_range_%.0f", float64(e.Quantile)*100)},
		MinTSLength: 1,
		MRequired:   true,
	}
}

func (e InterPercentileRange[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	return []T{ts.M.Quantile(1 - e.Quantile) - ts.M.Quantile(e.Quantile)}, nil
}

// MagnitudePercentageRatio is the ratio of two inter-percentile ranges of
// the magnitudes, with both quantiles in (0, 0.5); no ordering between the
// two quantiles is required. Returns 0 if both ranges are exactly zero.
type MagnitudePercentageRatio[T numeric.Float] struct {
	QuantileNumerator, QuantileDenominator T
}

func NewMagnitudePercentageRatio[T numeric.Float](qNum, qDen T) (MagnitudePercentageRatio[T], error) {
	if !(qNum > 0 && qNum < 0.5) {
		return MagnitudePercentageRatio[T]{}, &lcerr.InvalidParameterError{Feature: "magnitude_percentage_ratio", Parameter: "quantile_numerator", Reason: "must satisfy 0 < q < 0.5"}
	}
	if !(qDen > 0 && qDen < 0.5) {
		return MagnitudePercentageRatio[T]{}, &lcerr.InvalidParameterError{Feature: "magnitude_percentage_ratio", Parameter: "quantile_denominator", Reason: "must satisfy 0 < q < 0.5"}
	}
	return MagnitudePercentageRatio[T]{QuantileNumerator: qNum, QuantileDenominator: qDen}, nil
}

func (e MagnitudePercentageRatio[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size: 1,
		Names: []string{fmt.Sprintf("magnitude_percentage_ratio_%.0f_%.0f",
			float64(e.QuantileNumerator)*100, float64(e.QuantileDenominator)*100)},
		MinTSLength: 1,
		MRequired:   true,
	}
}

func (e MagnitudePercentageRatio[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	numerator := ts.M.Quantile(1-e.QuantileNumerator) - ts.M.Quantile(e.QuantileNumerator)
	denominator := ts.M.Quantile(1-e.QuantileDenominator) - ts.M.Quantile(e.QuantileDenominator)
	if numerator == 0 && denominator == 0 {
		return []T{0}, nil
	}
	return []T{numerator / denominator}, nil
}

// PercentDifferenceMagnitudePercentile is the inter-percentile range of the
// magnitudes divided by the median.
type PercentDifferenceMagnitudePercentile[T numeric.Float] struct {
	Quantile T
}

func NewPercentDifferenceMagnitudePercentile[T numeric.Float](quantile T) (PercentDifferenceMagnitudePercentile[T], error) {
	if !(quantile > 0 && quantile < 0.5) {
		return PercentDifferenceMagnitudePercentile[T]{}, &lcerr.InvalidParameterError{Feature: "percent_difference_magnitude_percentile", Parameter: "quantile", Reason: "must satisfy 0 < quantile < 0.5"}
	}
	return PercentDifferenceMagnitudePercentile[T]{Quantile: quantile}, nil
}

func (e PercentDifferenceMagnitudePercentile[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size:        1,
		Names:       []string{fmt.Sprintf("percent_difference_magnitude_percentile_%.0f", float64(e.Quantile)*100)},
		MinTSLength: 1,
		MRequired:   true,
	}
}

func (e PercentDifferenceMagnitudePercentile[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	median := ts.M.Median()
	ppfRange := ts.M.Quantile(1-e.Quantile) - ts.M.Quantile(e.Quantile)
	ppfRange = ts.M.Quantile(1-e.Quantile) - ts.M.Quantile(e.Quantile)
	return []T{ppfRange / median}, nil
}
