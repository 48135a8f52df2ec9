package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of bins 0..n/2 inclusive. Any length
// is accepted.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// centered removes the mean so the DC bin does not dominate.
func centered(pops []int) []float64 {
	out := make([]float64, len(pops))
	var mean float64
	for _, p := range pops {
		mean += float64(p)
	}
	mean /= float64(len(pops))
	for i, p := range pops {
		out[i] = float64(p) - mean
	}
	return out
}

// DominantPeriod estimates the strongest oscillation period of a population
// series. ok is false when the series is too short or flat.
func DominantPeriod(pops []int) (period float64, ok bool) {
	if len(pops) < 4 {
		return 0, false
	}
	ps := PowerSpectrum(centered(pops))

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	if ps[best] < 1e-9 {
		return 0, false
	}
	return float64(len(pops)) / float64(best), true
}
