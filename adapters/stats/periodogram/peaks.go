package periodogram

import (
	"sort"

	"lightcurve/domain/numeric"
)

// Peak is a local maximum of the periodogram power spectrum.
type Peak[T numeric.Float] struct {
	Freq, Power, SignalToNoise T
}

// Peaks finds every local maximum in power (power[i] > both neighbors;
// endpoints compare against their single neighbor only), scores each by
// its signal-to-noise ratio against the spectrum's mean and standard
// deviation, and returns them sorted by descending power.
func Peaks[T numeric.Float](freqs, power []T) []Peak[T] {
	if len(power) == 0 {
		return nil
	}
	mean, std := meanStd(power)

	var peaks []Peak[T]
	for i := range power {
		if i > 0 && power[i] <= power[i-1] {
			continue
		}
		if i < len(power)-1 && power[i] <= power[i+1] {
			continue
		}
		snr := T(0)
		if std != 0 {
			snr = (power[i] - mean) / std
		}
		peaks = append(peaks, Peak[T]{Freq: freqs[i], Power: power[i], SignalToNoise: snr})
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Power > peaks[j].Power })
	return peaks
}

func meanStd[T numeric.Float](data []T) (T, T) {
	var sum T
	for _, v := range data {
		sum += v
	}
	mean := sum / T(len(data))
	if len(data) < 2 {
		return mean, 0
	}
	var ss T
	for _, v := range data {
		d := v - mean
		ss += d * d
	}
	return mean, numeric.Sqrt(ss / T(len(data)-1))
}
