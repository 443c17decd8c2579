// Package engine composes ordered feature evaluators into a single façade,
// with a semaphore-bounded goroutine-fan-out path for running independent
// evaluators concurrently over one time series.
package engine

import (
	"context"

	"golang.org/x/sync/semaphore"

	"lightcurve/adapters/stats/evaluator"
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
)

// FeatureExtractor runs an ordered list of evaluators over a TimeSeries and
// concatenates their outputs. It is itself a FeatureEvaluator, so a
// FeatureExtractor can be nested inside another evaluator's child slot
// (Bins, Periodogram peak features).
type FeatureExtractor[T numeric.Float] struct {
	evaluators []evaluator.FeatureEvaluator[T]
}

// New builds a FeatureExtractor over the given evaluators, in order.
func New[T numeric.Float](evaluators ...evaluator.FeatureEvaluator[T]) *FeatureExtractor[T] {
	return &FeatureExtractor[T]{evaluators: evaluators}
}

// Info aggregates the child evaluators' metadata: total width, concatenated
// names, the largest minimum length any child requires, and the union of
// which of (t, m, w) and sorting any child needs.
func (f *FeatureExtractor[T]) Info() evaluator.Info {
	var info evaluator.Info
	for _, e := range f.evaluators {
		ci := e.Info()
		info.Size += ci.Size
		info.Names = append(info.Names, ci.Names...)
		if ci.MinTSLength > info.MinTSLength {
			info.MinTSLength = ci.MinTSLength
		}
		info.TRequired = info.TRequired || ci.TRequired
		info.MRequired = info.MRequired || ci.MRequired
		info.WRequired = info.WRequired || ci.WRequired
		info.SortingRequired = info.SortingRequired || ci.SortingRequired
	}
	return info
}

// Eval runs every child evaluator in order, stopping at the first error.
func (f *FeatureExtractor[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	out := make([]T, 0, f.Info().Size)
	for _, e := range f.evaluators {
		values, err := e.Eval(ts)
		if err != nil {
			return nil, err
		}
		out = append(out, values...)
	}
	return out, nil
}

// EvalOrFill runs every child evaluator, substituting fill for any child
// that errors instead of aborting the whole extraction.
func (f *FeatureExtractor[T]) EvalOrFill(ts *timeseries.TimeSeries[T], fill T) []T {
	out := make([]T, 0, f.Info().Size)
	for _, e := range f.evaluators {
		out = append(out, evaluator.EvalOrFill(e, ts, fill)...)
	}
	return out
}

// Names returns the concatenated output names of every child evaluator.
func (f *FeatureExtractor[T]) Names() []string { return f.Info().Names }

// EvalParallel runs the child evaluators concurrently, bounded by maxWorkers
// in flight at once, and reassembles their outputs in the original order.
// Each evaluator call gets its own copy of the TimeSeries, so the lazily
// filled statistic caches are never written from two goroutines, and
// writes to its own output slot, so no synchronization is needed beyond the
// semaphore itself.
func (f *FeatureExtractor[T]) EvalParallel(ctx context.Context, ts *timeseries.TimeSeries[T], maxWorkers int64) ([]T, error) {
	sem := semaphore.NewWeighted(maxWorkers)
	results := make([][]T, len(f.evaluators))
	errs := make([]error, len(f.evaluators))

	var w []T
	if ts.HasWeights() {
		w = ts.W.Data()
	}
	for i, e := range f.evaluators {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		local := timeseries.New(ts.T.Data(), ts.M.Data(), w)
		go func(i int, e evaluator.FeatureEvaluator[T], local *timeseries.TimeSeries[T]) {
			defer sem.Release(1)
			results[i], errs[i] = e.Eval(local)
		}(i, e, local)
	}

	if err := sem.Acquire(ctx, maxWorkers); err != nil {
		return nil, err
	}
	sem.Release(maxWorkers)

	out := make([]T, 0, f.Info().Size)
	for i := range f.evaluators {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out = append(out, results[i]...)
	}
	return out, nil
}
