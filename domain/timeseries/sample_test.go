package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataSample_MeanAndStd(t *testing.T) {
	s := NewDataSample([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 3.0, s.Mean(), 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.Std(), 1e-12)
}

func TestDataSample_MedianOddAndEven(t *testing.T) {
	odd := NewDataSample([]float64{3, 1, 2})
	assert.Equal(t, 2.0, odd.Median())

	even := NewDataSample([]float64{4, 1, 3, 2})
	assert.Equal(t, 2.5, even.Median())
}

func TestDataSample_Quantile(t *testing.T) {
	s := NewDataSample([]float64{1, 2, 3, 4, 5})
	assert.InDelta(t, 1.0, s.Quantile(0), 1e-12)
	assert.InDelta(t, 5.0, s.Quantile(1), 1e-12)
	assert.InDelta(t, 3.0, s.Quantile(0.5), 1e-12)
}

func TestDataSample_StdOfSinglePointIsNaN(t *testing.T) {
	s := NewDataSample([]float64{1})
	assert.True(t, math.IsNaN(s.Std()))
}

func TestTimeSeries_WeightedMeanAndReducedChi2(t *testing.T) {
	ts := New([]float64{0, 1, 2}, []float64{1, 2, 3}, []float64{1, 1, 1})
	assert.InDelta(t, 2.0, ts.WeightedMean(), 1e-12)
	assert.InDelta(t, 1.0, ts.ReducedChi2(), 1e-9)
}

func TestTimeSeries_WithoutWeightsReportsNaN(t *testing.T) {
	ts := New([]float64{0, 1, 2}, []float64{1, 2, 3}, nil)
	assert.False(t, ts.HasWeights())
	assert.True(t, math.IsNaN(ts.WeightedMean()))
	assert.True(t, math.IsNaN(ts.ReducedChi2()))
}
