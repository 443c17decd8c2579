// Package evaluator defines the common contract every feature evaluator
// implements: a fixed output width known ahead of time, a declared minimum
// series length, and a closed evaluator error set instead of free-form
// errors.
package evaluator

import (
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
	"lightcurve/internal/lcerr"
)

// Info describes an evaluator's static metadata: how many values it
// produces, their names, the minimum series length it can run on, and
// which of (t, m, w) it actually reads plus whether it requires t sorted.
// Expressed as a plain struct rather than generated metadata, since Go has
// no declarative macro to build it from.
type Info struct {
	Size             int
	Names            []string
	MinTSLength      int
	TRequired        bool
	MRequired        bool
	WRequired        bool
	SortingRequired  bool
}

// FeatureEvaluator is the contract every leaf and composite feature
// evaluator implements. T is the working float precision.
type FeatureEvaluator[T numeric.Float] interface {
	// Info returns the evaluator's static metadata.
	Info() Info

	// Eval computes the evaluator's output on ts, returning exactly
	// Info().Size values in order, or an lcerr error if ts does not meet
	// the evaluator's preconditions.
	Eval(ts *timeseries.TimeSeries[T]) ([]T, error)
}

// EvalOrFill runs e on ts, substituting fill for every output value if e
// returns an error instead of propagating it. This is the Go counterpart
// of the Rust trait's default eval_or_fill method.
func EvalOrFill[T numeric.Float](e FeatureEvaluator[T], ts *timeseries.TimeSeries[T], fill T) []T {
	values, err := e.Eval(ts)
	if err != nil {
		out := make([]T, e.Info().Size)
		for i := range out {
			out[i] = fill
		}
		return out
	}
	return values
}

// CheckLength returns a ShortTimeSeriesError if ts has fewer points than
// min.
func CheckLength[T numeric.Float](ts *timeseries.TimeSeries[T], min int) error {
	if ts.Len() < min {
		return &lcerr.ShortTimeSeriesError{Actual: ts.Len(), Minimum: min}
	}
	return nil
}

// RequireWeights returns a RequiresWeightsError tagged with feature if ts
// carries no weights.
func RequireWeights[T numeric.Float](ts *timeseries.TimeSeries[T], feature string) error {
	if !ts.HasWeights() {
		return &lcerr.RequiresWeightsError{Feature: feature}
	}
	return nil
}

// NonZeroStd returns ts.M's standard deviation, or a FlatTimeSeriesError if
// it is zero (or NaN, for a too-short sample).
func NonZeroStd[T numeric.Float](ts *timeseries.TimeSeries[T]) (T, error) {
	std := ts.M.Std()
	if std == 0 || std != std {
		return 0, &lcerr.FlatTimeSeriesError{}
	}
	return std, nil
}

// NonZeroReducedChi2 returns ts.ReducedChi2(), or a FlatTimeSeriesError if
// it is zero.
func NonZeroReducedChi2[T numeric.Float](ts *timeseries.TimeSeries[T]) (T, error) {
	chi2 := ts.ReducedChi2()
	if chi2 == 0 {
		return 0, &lcerr.FlatTimeSeriesError{}
	}
	return chi2, nil
}
