package periodogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"lightcurve/domain/timeseries"
)

func sineLightCurve(n int, period float64) *timeseries.TimeSeries[float64] {
	t := make([]float64, n)
	m := make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = float64(i) * 0.1
		m[i] = math.Sin(2 * math.Pi * t[i] / period)
	}
	return timeseries.New(t, m, nil)
}

func TestGrid_Increasing(t *testing.T) {
	ts := sineLightCurve(50, 3.0)
	freqs := Grid(ts, 10.0, 1.0, AverageNyquist[float64])
	require := assert.New(t)
	require.NotEmpty(freqs)
	for i := 1; i < len(freqs); i++ {
		require.Greater(freqs[i], freqs[i-1])
	}
}

func TestDirectPower_PeaksNearTrueFrequency(t *testing.T) {
	period := 3.0
	ts := sineLightCurve(200, period)
	freqs := Grid(ts, 10.0, 1.0, AverageNyquist[float64])
	power := DirectPower[float64]{}.Power(ts, freqs)
	peaks := Peaks(freqs, power)

	assert.NotEmpty(t, peaks)
	bestPeriod := 2 * math.Pi / peaks[0].Freq
	assert.InDelta(t, period, bestPeriod, 0.3)
}
