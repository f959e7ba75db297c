package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Smooth convolves the flux with a normalized Gaussian kernel of standard
// deviation sigma, given in axis units. The kernel is truncated at four
// standard deviations and renormalized over its in-range support, so a
// constant spectrum is a fixed point of the operation.
//
// The convolution runs in the frequency domain: both the flux and a
// unit-weight reference are zero-padded to a power of two, transformed,
// multiplied bin-wise with the kernel spectrum, and transformed back.
func (s *Spectrum) Smooth(sigma float64) (*Spectrum, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSigma, sigma)
	}

	n := s.Len()
	sigmaSamples := sigma / s.xarr.Spacing()
	half := int(math.Ceil(4 * sigmaSamples))
	if half < 1 {
		half = 1
	}

	kernel := make([]float64, 2*half+1)
	sum := 0.0
	for i := range kernel {
		d := float64(i - half)
		kernel[i] = math.Exp(-d * d / (2 * sigmaSamples * sigmaSamples))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	smoothed, err := fftConvolveSame(s.flux, kernel)
	if err != nil {
		return nil, err
	}

	// Weight of the kernel support that fell inside the grid; dividing by it
	// undoes the edge taper.
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	weight, err := fftConvolveSame(ones, kernel)
	if err != nil {
		return nil, err
	}
	for i := range smoothed {
		smoothed[i] /= weight[i]
	}

	return NewSpectrum(s.xarr, smoothed, WithFluxUnit(s.fluxUnit))
}

// fftConvolveSame returns the central len(signal) samples of the linear
// convolution signal * kernel. The kernel length must be odd.
func fftConvolveSame(signal, kernel []float64) ([]float64, error) {
	n := len(signal)
	m := len(kernel)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	signalPadded := make([]complex128, fftSize)
	kernelPadded := make([]complex128, fftSize)
	for i, v := range signal {
		signalPadded[i] = complex(v, 0)
	}
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	signalFreq := make([]complex128, fftSize)
	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(signalFreq, signalPadded); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	if err := plan.Forward(kernelFreq, kernelPadded); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	resultFreq := make([]complex128, fftSize)
	for i := range resultFreq {
		resultFreq[i] = signalFreq[i] * kernelFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, resultFreq); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	// The full convolution has length n+m-1; "same" mode keeps the n
	// samples centered on the kernel midpoint.
	offset := (m - 1) / 2
	out := make([]float64, n)
	for i := range out {
		out[i] = real(resultTime[i+offset])
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
