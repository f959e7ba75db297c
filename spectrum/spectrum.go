package spectrum

import "fmt"

// Spectrum pairs a spectroscopic axis with flux samples.
type Spectrum struct {
	xarr     *Axis
	flux     []float64
	fluxUnit string
}

// Option mutates a Spectrum during construction.
type Option func(*Spectrum)

// WithFluxUnit sets the flux unit label carried alongside the data.
func WithFluxUnit(unit string) Option {
	return func(s *Spectrum) {
		s.fluxUnit = unit
	}
}

// NewSpectrum pairs axis and flux. The flux slice is copied; axis and flux
// must have equal length.
func NewSpectrum(axis *Axis, flux []float64, opts ...Option) (*Spectrum, error) {
	if axis == nil {
		return nil, ErrNilAxis
	}
	if axis.Len() != len(flux) {
		return nil, fmt.Errorf("%w: axis %d, flux %d", ErrLengthMismatch, axis.Len(), len(flux))
	}

	out := make([]float64, len(flux))
	copy(out, flux)

	s := &Spectrum{xarr: axis, flux: out}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Len returns the number of samples.
func (s *Spectrum) Len() int { return len(s.flux) }

// Axis returns the spectroscopic axis.
func (s *Spectrum) Axis() *Axis { return s.xarr }

// FluxUnit returns the flux unit label, if any.
func (s *Spectrum) FluxUnit() string { return s.fluxUnit }

// Flux returns a copy of the flux samples.
func (s *Spectrum) Flux() []float64 {
	out := make([]float64, len(s.flux))
	copy(out, s.flux)
	return out
}

// FluxAt returns the flux of the sample nearest to axis value x.
func (s *Spectrum) FluxAt(x float64) float64 {
	return s.flux[s.xarr.NearestIndex(x)]
}

// MaxFlux returns the largest flux value.
func (s *Spectrum) MaxFlux() float64 {
	_, f := s.Peak()
	return f
}

// Peak returns the axis value and flux of the sample with maximum flux.
func (s *Spectrum) Peak() (x, flux float64) {
	peak := 0
	for i := 1; i < len(s.flux); i++ {
		if s.flux[i] > s.flux[peak] {
			peak = i
		}
	}
	return s.xarr.At(peak), s.flux[peak]
}

// Slice returns the sub-spectrum with axis values in [xmin, xmax]. The
// result shares no flux backing with the receiver.
func (s *Spectrum) Slice(xmin, xmax float64) (*Spectrum, error) {
	if xmin > xmax {
		xmin, xmax = xmax, xmin
	}

	lo := 0
	for lo < s.Len() && s.xarr.At(lo) < xmin {
		lo++
	}
	hi := s.Len()
	for hi > lo && s.xarr.At(hi-1) > xmax {
		hi--
	}
	if hi-lo < 2 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrEmptySlice, xmin, xmax)
	}

	axis, err := New(s.xarr.values[lo:hi], s.xarr.unit)
	if err != nil {
		return nil, err
	}
	return NewSpectrum(axis, s.flux[lo:hi], WithFluxUnit(s.fluxUnit))
}
