package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightcurve/domain/timeseries"
	"lightcurve/internal/lcerr"
)

func TestMean(t *testing.T) {
	ts := timeseries.New([]float64{0, 1, 2}, []float64{1, 2, 3}, nil)
	values, err := Mean[float64]{}.Eval(ts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, values[0], 1e-12)
}

func TestAmplitude(t *testing.T) {
	ts := timeseries.New([]float64{0, 1, 2}, []float64{1, 5, 3}, nil)
	values, err := Amplitude[float64]{}.Eval(ts)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, values[0], 1e-12)
}

func TestPercentAmplitude(t *testing.T) {
	ts := timeseries.New([]float64{0, 1, 2, 3}, []float64{1, 2, 3, 10}, nil)
	values, err := PercentAmplitude[float64]{}.Eval(ts)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, values[0], 1e-12)
}

func TestStandardDeviation_TooShort(t *testing.T) {
	ts := timeseries.New([]float64{0}, []float64{1}, nil)
	_, err := StandardDeviation[float64]{}.Eval(ts)
	require.Error(t, err)
	var shortErr *lcerr.ShortTimeSeriesError
	assert.ErrorAs(t, err, &shortErr)
}

func TestWeightedMean_RequiresWeights(t *testing.T) {
	ts := timeseries.New([]float64{0, 1}, []float64{1, 2}, nil)
	_, err := WeightedMean[float64]{}.Eval(ts)
	require.Error(t, err)
	var weightsErr *lcerr.RequiresWeightsError
	assert.ErrorAs(t, err, &weightsErr)
}
