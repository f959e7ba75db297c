package spectrum

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned by axis and spectrum constructors.
var (
	ErrNilAxis        = errors.New("spectrum: axis must not be nil")
	ErrTooFewPoints   = errors.New("spectrum: axis needs at least 2 points")
	ErrNotIncreasing  = errors.New("spectrum: axis values must be strictly increasing")
	ErrInvalidRange   = errors.New("spectrum: axis range must satisfy min < max")
	ErrLengthMismatch = errors.New("spectrum: axis and flux lengths differ")
	ErrUnknownUnit    = errors.New("spectrum: unknown unit")
	ErrEmptySlice     = errors.New("spectrum: slice range contains no samples")
	ErrInvalidSigma   = errors.New("spectrum: smoothing width must be > 0")

	errZeroFrequency = errors.New("spectrum: cannot convert zero value between wavelength and frequency")
)

// Axis is an immutable, strictly increasing spectroscopic grid.
type Axis struct {
	values []float64
	unit   Unit
}

// Linear builds an evenly spaced axis of n points spanning [min, max]
// inclusive.
func Linear(min, max float64, n int, unit Unit) (*Axis, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	if min >= max {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, min, max)
	}

	values := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range values {
		values[i] = min + step*float64(i)
	}
	// Guarantee the endpoint is exact despite accumulated rounding.
	values[n-1] = max

	return &Axis{values: values, unit: unit}, nil
}

// New builds an axis from explicit values, which must be strictly increasing.
// The slice is copied.
func New(values []float64, unit Unit) (*Axis, error) {
	if len(values) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(values))
	}
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return nil, fmt.Errorf("%w: values[%d]=%g, values[%d]=%g",
				ErrNotIncreasing, i-1, values[i-1], i, values[i])
		}
	}

	out := make([]float64, len(values))
	copy(out, values)
	return &Axis{values: out, unit: unit}, nil
}

// Len returns the number of grid points.
func (a *Axis) Len() int { return len(a.values) }

// Unit returns the axis unit.
func (a *Axis) Unit() Unit { return a.unit }

// Min returns the first (smallest) grid value.
func (a *Axis) Min() float64 { return a.values[0] }

// Max returns the last (largest) grid value.
func (a *Axis) Max() float64 { return a.values[len(a.values)-1] }

// At returns the grid value at index i.
func (a *Axis) At(i int) float64 { return a.values[i] }

// Values returns a copy of the grid.
func (a *Axis) Values() []float64 {
	out := make([]float64, len(a.values))
	copy(out, a.values)
	return out
}

// Spacing returns the mean grid spacing.
func (a *Axis) Spacing() float64 {
	return (a.Max() - a.Min()) / float64(len(a.values)-1)
}

// NearestIndex returns the index of the grid point closest to x. Values
// outside the grid clamp to the nearest endpoint.
func (a *Axis) NearestIndex(x float64) int {
	i := sort.SearchFloat64s(a.values, x)
	if i == 0 {
		return 0
	}
	if i == len(a.values) {
		return len(a.values) - 1
	}
	if x-a.values[i-1] <= a.values[i]-x {
		return i - 1
	}
	return i
}

// Convert returns a new axis expressed in the target unit. Conversions
// between wavelength and frequency/wavenumber units reverse the grid so the
// result stays strictly increasing.
func (a *Axis) Convert(target Unit) (*Axis, error) {
	out := make([]float64, len(a.values))
	for i, v := range a.values {
		micron, err := a.unit.toMicron(v)
		if err != nil {
			return nil, err
		}
		converted, err := target.fromMicron(micron)
		if err != nil {
			return nil, err
		}
		out[i] = converted
	}

	if a.unit.inverting(target) {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return New(out, target)
}
