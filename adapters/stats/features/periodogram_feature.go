package features

import (
	"fmt"

	"lightcurve/adapters/stats/engine"
	"lightcurve/adapters/stats/evaluator"
	"lightcurve/adapters/stats/periodogram"
	"lightcurve/domain/numeric"
	"lightcurve/domain/timeseries"
	"lightcurve/internal/lcerr"
)

// Periodogram computes the Lomb-Scargle power spectrum of the light curve
// and reports, for the NPeaks highest local maxima (by descending power),
// the corresponding period and signal-to-noise ratio. An optional Child
// feature extractor additionally runs over the (frequency, power) spectrum
// itself, reinterpreted as a plain unweighted time series — the same
// transformer composition pattern Bins uses.
type Periodogram[T numeric.Float] struct {
	NPeaks        int
	Resolution    T
	MaxFreqFactor T
	Nyquist       periodogram.NyquistStrategy[T]
	Algorithm     periodogram.PowerEvaluator[T]
	Child         *engine.FeatureExtractor[T]
}

// NewPeriodogram returns a Periodogram evaluator with resolution 10,
// max_freq_factor 1, average-cadence Nyquist frequency, and the direct
// Lomb-Scargle evaluator as defaults.
func NewPeriodogram[T numeric.Float](nPeaks int) Periodogram[T] {
	return Periodogram[T]{
		NPeaks:        nPeaks,
		Resolution:    10,
		MaxFreqFactor: 1,
		Nyquist:       periodogram.AverageNyquist[T],
		Algorithm:     periodogram.DirectPower[T]{},
	}
}

func (p Periodogram[T]) childInfo() evaluator.Info {
	if p.Child == nil {
		return evaluator.Info{}
	}
	return p.Child.Info()
}

func (p Periodogram[T]) Info() evaluator.Info {
	names := make([]string, 0, 2*p.NPeaks)
	for i := 1; i <= p.NPeaks; i++ {
		names = append(names,
			fmt.Sprintf("period_%d", i),
			fmt.Sprintf("period_s_to_n_%d", i),
		)
	}
	child := p.childInfo()
	for _, n := range child.Names {
		names = append(names, fmt.Sprintf("periodogram_%s", n))
	}
	return evaluator.Info{
		Size:        2*p.NPeaks + child.Size,
		Names:       names,
		MinTSLength: 2,
		TRequired:   true,
		MRequired:   true,
	}
}

func (p Periodogram[T]) Eval(ts *timeseries.TimeSeries[T]) ([]T, error) {
	if err := evaluator.CheckLength(ts, p.Info().MinTSLength); err != nil {
		return nil, err
	}
	t := ts.T.Data()
	if t[len(t)-1] == t[0] {
		return nil, &lcerr.FlatTimeSeriesError{}
	}

	freqs := periodogram.Grid(ts, p.Resolution, p.MaxFreqFactor, p.Nyquist)
	if len(freqs) == 0 {
		return nil, &lcerr.FlatTimeSeriesError{}
	}
	power := p.Algorithm.Power(ts, freqs)
	peaks := periodogram.Peaks(freqs, power)

	out := make([]T, 0, p.Info().Size)
	for i := 0; i < p.NPeaks; i++ {
		if i < len(peaks) {
			period := T(2*numeric.Pi) / peaks[i].Freq
			out = append(out, period, peaks[i].SignalToNoise)
		} else {
			out = append(out, 0, 0)
		}
	}

	if p.Child != nil {
		spectrum := timeseries.New(freqs, power, nil)
		out = append(out, evaluator.EvalOrFill(p.Child, spectrum, 0)...)
	}
	return out, nil
}
