package features

import (
	"fmt"

	"lightcurve/adapters/stats/engine"
	"lightcurve/adapters/stats/evaluator"
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
	"lightcurve/internal/lcerr"
)

// Bins re-bins the time series into fixed-width windows of width Window
// (starting at Offset), replacing each window's points with a single
// inverse-variance-weighted observation before handing the rebinned series
// to Child. The rebinned weight for a window is n*norm, where norm is the
// reciprocal of the summed inverse variances in that window — the combined
// weight of the bin's weighted mean scaled back up by the number of points
// it absorbed.
type Bins[T numeric.Float] struct {
	Window, Offset T
	Child          *engine.FeatureExtractor[T]
}

func NewBins[T numeric.Float](window, offset T, child *engine.FeatureExtractor[T]) Bins[T] {
	return Bins[T]{Window: window, Offset: offset, Child: child}
}

func (b Bins[T]) Info() evaluator.Info {
	child := b.Child.Info()
	names := make([]string, len(child.Names))
	for i, n := range child.Names {
		names[i] = fmt.Sprintf("bins_window%.1f_offset%.1f_%s", float64(b.Window), float64(b.Offset), n)
	}
	return evaluator.Info{
		Size:            child.Size,
		Names:           names,
		MinTSLength:     1,
		TRequired:       true,
		MRequired:       true,
		WRequired:       true,
		SortingRequired: true,
	}
}

func (b Bins[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, b.Info().MinTSLength); err != nil {
		return nil, err
	}
	if err := evaluator.RequireWeights(ts, "bins"); err != nil {
		return nil, err
	}
	if b.Window <= 0 {
		return nil, &lcerr.InvalidParameterError{Feature: "bins", Parameter: "window", Reason: "must be positive"}
	}

	t, m, w := ts.T.Data(), ts.M.Data(), ts.W.Data()

	var binnedT, binnedM, binnedW []T
	start := 0
	for start < len(t) {
		windowIndex := numeric.Floor((t[start] - b.Offset) / b.Window)
		end := start + 1
		for end < len(t) {
			idx := numeric.Floor((t[end] - b.Offset) / b.Window)
			if idx != windowIndex {
				break
			}
			end++
		}

		var sumInvW, sumMOverW T
		for i := start; i < end; i++ {
			invW := 1 / w[i]
			sumInvW += invW
			sumMOverW += m[i] / w[i]
		}
		n := T(end - start)
		norm := 1 / sumInvW
		binnedT = append(binnedT, (windowIndex+0.5)*b.Window)
		binnedM = append(binnedM, sumMOverW*norm)
		binnedW = append(binnedW, n*norm)

		start = end
	}

	binnedTS := timeseries.New(binnedT, binnedM, binnedW)
	return evaluator.EvalOrFill(b.Child, binnedTS, 0), nil
}
