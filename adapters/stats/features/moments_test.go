package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightcurve/domain/timeseries"
	"lightcurve/internal/lcerr"
)

func TestSkew_SymmetricDataIsNearZero(t *testing.T) {
	ts := timeseries.New([]float64{0, 1, 2, 3, 4}, []float64{1, 2, 3, 4, 5}, nil)
	values, err := Skew[float64]{}.Eval(ts)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, values[0], 1e-9)
}

func TestSkew_FlatSeriesIsFlatTimeSeriesError(t *testing.T) {
	ts := timeseries.New([]float64{0, 1, 2}, []float64{5, 5, 5}, nil)
	_, err := Skew[float64]{}.Eval(ts)
	require.Error(t, err)
	var flatErr *lcerr.FlatTimeSeriesError
	assert.ErrorAs(t, err, &flatErr)
}

func TestKurtosis_TooShort(t *testing.T) {
	ts := timeseries.New([]float64{0, 1, 2}, []float64{1, 2, 3}, nil)
	_, err := Kurtosis[float64]{}.Eval(ts)
	require.Error(t, err)
}
