package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Periodogram returns the power spectrum |X[k]|^2 of the flux for the
// non-negative-frequency bins [0..fftSize/2]. The flux is zero-padded to
// the next power of two. The result is useful as a noise-floor diagnostic
// on synthetic spectra; no window is applied.
func (s *Spectrum) Periodogram() ([]float64, error) {
	n := s.Len()
	fftSize := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range s.flux {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)
	return power, nil
}
