package wfs

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// PrefilterFIR designs the WFS prefilter as a linear-phase FIR. The target
// magnitude rises with sqrt(f) (+3 dB/octave) from the cutoff up to the
// spatial aliasing frequency and stays flat above it; below the cutoff the
// response is unity. The response is frequency-sampled on a power-of-two
// grid, brought to the time domain, centered, and Hann-windowed down to
// numTaps coefficients.
func PrefilterFIR(cutoff, aliasingFreq, sampleRate float64, numTaps int) ([]float64, error) {
	if numTaps < 3 {
		return nil, fmt.Errorf("wfs: prefilter needs at least 3 taps, got %d", numTaps)
	}

	if cutoff <= 0 || sampleRate <= 0 {
		return nil, fmt.Errorf("wfs: cutoff and sample rate must be positive")
	}

	if aliasingFreq <= cutoff {
		return nil, fmt.Errorf("wfs: aliasing frequency %.1f not above cutoff %.1f", aliasingFreq, cutoff)
	}

	fftSize := nextPowerOf2(4 * numTaps)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("wfs: failed to create FFT plan: %w", err)
	}

	// Zero-phase target spectrum, conjugate-symmetric so the impulse
	// response comes out real.
	spectrum := make([]complex128, fftSize)
	for k := 0; k <= fftSize/2; k++ {
		f := float64(k) * sampleRate / float64(fftSize)
		spectrum[k] = complex(prefilterMagnitude(f, cutoff, aliasingFreq), 0)

		if k > 0 && k < fftSize/2 {
			spectrum[fftSize-k] = spectrum[k]
		}
	}

	impulse := make([]complex128, fftSize)
	if err := plan.Inverse(impulse, spectrum); err != nil {
		return nil, fmt.Errorf("wfs: inverse FFT failed: %w", err)
	}

	// Center the zero-phase impulse and window it to length.
	taps := make([]float64, numTaps)
	center := numTaps / 2

	for i := range taps {
		idx := (i - center + fftSize) % fftSize
		taps[i] = real(impulse[idx]) * hann(i, numTaps)
	}

	return taps, nil
}

// prefilterMagnitude is the target response at frequency f.
func prefilterMagnitude(f, cutoff, aliasingFreq float64) float64 {
	switch {
	case f <= cutoff:
		return 1.0
	case f >= aliasingFreq:
		return math.Sqrt(aliasingFreq / cutoff)
	default:
		return math.Sqrt(f / cutoff)
	}
}

func hann(i, n int) float64 {
	if n == 1 {
		return 1.0
	}

	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
