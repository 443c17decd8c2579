package main

import (
	"lightcurve/adapters/lcio"
	"lightcurve/domain/timeseries"
)

func timeSeriesFromLightCurve(lc *lcio.LightCurve) *timeseries.TimeSeries[float64] {
	return timeseries.New(lc.T, lc.M, lc.W)
}
