package features

import (
	"lightcurve/adapters/stats/evaluator"
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
	"lightcurve/internal/lcerr"
)

// LinearTrend fits an unweighted straight line m = a + slope*t and reports
// the slope and its standard error. N=2 is a degenerate exact fit: the
// slope is just the two-point secant and its error is reported as zero
// rather than through a (N-2)=0 division.
type LinearTrend[T numeric.Float] struct{}

func (LinearTrend[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size:        2,
		Names:       []string{"linear_trend", "linear_trend_sigma"},
		MinTSLength: 2,
		TRequired:   true,
		MRequired:   true,
	}
}

func (e LinearTrend[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	t, m := ts.T.Data(), ts.M.Data()
	if ts.Len() == 2 {
		slope := (m[1] - m[0]) / (t[1] - t[0])
		return []T{slope, 0}, nil
	}
	tMean, mMean := ts.T.Mean(), ts.M.Mean()
	var sxx, sxy T
	for i := range t {
		dt := t[i] - tMean
		sxx += dt * dt
		sxy += dt * (m[i] - mMean)
	}
	if sxx == 0 {
		return nil, &lcerr.FlatTimeSeriesError{}
	}
	slope := sxy / sxx
	intercept := mMean - slope*tMean
	var ssResidual T
	for i := range t {
		fit := intercept + slope*t[i]
		d := m[i] - fit
		ssResidual += d * d
	}
	n := T(ts.Len())
	residualVariance := ssResidual / (n - 2)
	sigma := numeric.Sqrt(residualVariance / sxx)
	return []T{slope, sigma}, nil
}

// LinearFit fits a weighted straight line m = a + slope*t, weighting each
// point by its inverse variance 1/w (w=delta^2), reporting the slope, its standard
// error, and the fit's reduced chi-square.
type LinearFit[T numeric.Float] struct{}

func (LinearFit[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size:        3,
		Names:       []string{"linear_fit_slope", "linear_fit_slope_sigma", "linear_fit_reduced_chi2"},
		MinTSLength: 2,
		TRequired:   true,
		MRequired:   true,
		WRequired:   true,
	}
}

func (e LinearFit[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	if err := evaluator.RequireWeights(ts, "linear_fit"); err != nil {
		return nil, err
	}
	t, m, w := ts.T.Data(), ts.M.Data(), ts.W.Data()
	var s, sx, sy, sxx, sxy T
	for i := range t {
		inv := 1 / w[i]
		s += inv
		sx += t[i] * inv
		sy += m[i] * inv
		sxx += t[i] * t[i] * inv
		sxy += t[i] * m[i] * inv
	}
	denom := s*sxx - sx*sx
	if denom == 0 {
		return nil, &lcerr.FlatTimeSeriesError{}
	}
	slope := (s*sxy - sx*sy) / denom
	intercept := (sxx*sy - sx*sxy) / denom
	slopeVariance := s / denom
	var chi2 T
	for i := range t {
		fit := intercept + slope*t[i]
		d := m[i] - fit
		chi2 += d * d / w[i]
	}
	reducedChi2 := chi2 / T(ts.Len()-2)
	return []T{slope, numeric.Sqrt(slopeVariance), reducedChi2}, nil
}

// MaximumSlope is the largest |delta m / delta t| between consecutive
// points, skipping any non-finite slope (duplicate timestamps produce an
// infinite or NaN slope rather than a spurious extreme value).
type MaximumSlope[T numeric.Float] struct{}

func (MaximumSlope[T]) Info() evaluator.Info {
	return evaluator.Info{
		Size:            1,
		Names:           []string{"maximum_slope"},
		MinTSLength:     2,
		TRequired:       true,
		MRequired:       true,
		SortingRequired: true,
	}
}

func (e MaximumSlope[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, e.Info().MinTSLength); err != nil {
		return nil, err
	}
	t, m := ts.T.Data(), ts.M.Data()
	var max T
	seen := false
	for i := 0; i+1 < len(t); i++ {
		dt := t[i+1] - t[i]
		if dt == 0 {
			continue
		}
		slope := numeric.Abs((m[i+1] - m[i]) / dt)
		if !numeric.IsFinite(slope) {
			continue
		}
		if !seen || slope > max {
			max = slope
			seen = true
		}
	}
	if !seen {
		return nil, &lcerr.FlatTimeSeriesError{}
	}
	return []T{max}, nil
}
