package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightcurve/adapters/stats/evaluator"
	"lightcurve/domain/timeseries"
)

type constEvaluator struct {
	size  int
	value float64
	fail  bool
}

func (c constEvaluator) Info() evaluator.Info {
	names := make([]string, c.size)
	for i := range names {
		names[i] = "const"
	}
	return evaluator.Info{Size: c.size, Names: names, MinTSLength: 1}
}

func (c constEvaluator) Eval(ts *timeseries.TimeSeries[float64]) ([]float64, error) {
	if c.fail {
		return nil, assertErr{}
	}
	out := make([]float64, c.size)
	for i := range out {
		out[i] = c.value
	}
	return out, nil
}

type assertErr struct{}

func (assertErr) Error() string { return "forced failure" }

func TestFeatureExtractor_EvalConcatenatesInOrder(t *testing.T) {
	fx := New[float64](constEvaluator{size: 1, value: 1}, constEvaluator{size: 2, value: 2})
	ts := timeseries.New([]float64{0, 1}, []float64{1, 2}, nil)

	values, err := fx.Eval(ts)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2}, values)
}

func TestFeatureExtractor_EvalStopsOnFirstError(t *testing.T) {
	fx := New[float64](constEvaluator{size: 1, value: 1}, constEvaluator{size: 1, fail: true})
	ts := timeseries.New([]float64{0, 1}, []float64{1, 2}, nil)

	_, err := fx.Eval(ts)
	assert.Error(t, err)
}

func TestFeatureExtractor_EvalOrFillSubstitutesFailures(t *testing.T) {
	fx := New[float64](constEvaluator{size: 1, value: 1}, constEvaluator{size: 1, fail: true})
	ts := timeseries.New([]float64{0, 1}, []float64{1, 2}, nil)

	values := fx.EvalOrFill(ts, -1)
	assert.Equal(t, []float64{1, -1}, values)
}

func TestFeatureExtractor_EvalParallelMatchesSequential(t *testing.T) {
	fx := New[float64](
		constEvaluator{size: 1, value: 1},
		constEvaluator{size: 1, value: 2},
		constEvaluator{size: 1, value: 3},
	)
	ts := timeseries.New([]float64{0, 1}, []float64{1, 2}, nil)

	seq, err := fx.Eval(ts)
	require.NoError(t, err)

	par, err := fx.EvalParallel(context.Background(), ts, 2)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}
