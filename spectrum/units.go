package spectrum

import "fmt"

// Unit identifies a spectroscopic axis unit.
type Unit int

const (
	UnitMicron Unit = iota
	UnitNanometer
	UnitAngstrom
	UnitMillimeter
	UnitGigahertz
	UnitInverseCentimeter
)

// cMicronGigahertz is the speed of light expressed in µm·GHz, so that
// f[GHz] = cMicronGigahertz / λ[µm].
const cMicronGigahertz = 2.99792458e5

var unitNames = map[Unit]string{
	UnitMicron:            "micron",
	UnitNanometer:         "nanometer",
	UnitAngstrom:          "angstrom",
	UnitMillimeter:        "millimeter",
	UnitGigahertz:         "gigahertz",
	UnitInverseCentimeter: "cm-1",
}

// String returns the canonical unit name.
func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// IsWavelength reports whether the unit measures wavelength rather than
// frequency or wavenumber.
func (u Unit) IsWavelength() bool {
	switch u {
	case UnitMicron, UnitNanometer, UnitAngstrom, UnitMillimeter:
		return true
	}
	return false
}

// toMicron converts a single value in unit u to micrometers.
func (u Unit) toMicron(v float64) (float64, error) {
	switch u {
	case UnitMicron:
		return v, nil
	case UnitNanometer:
		return v * 1e-3, nil
	case UnitAngstrom:
		return v * 1e-4, nil
	case UnitMillimeter:
		return v * 1e3, nil
	case UnitGigahertz:
		if v == 0 {
			return 0, errZeroFrequency
		}
		return cMicronGigahertz / v, nil
	case UnitInverseCentimeter:
		if v == 0 {
			return 0, errZeroFrequency
		}
		return 1e4 / v, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
}

// fromMicron converts a wavelength in micrometers to unit u.
func (u Unit) fromMicron(v float64) (float64, error) {
	switch u {
	case UnitMicron:
		return v, nil
	case UnitNanometer:
		return v * 1e3, nil
	case UnitAngstrom:
		return v * 1e4, nil
	case UnitMillimeter:
		return v * 1e-3, nil
	case UnitGigahertz:
		if v == 0 {
			return 0, errZeroFrequency
		}
		return cMicronGigahertz / v, nil
	case UnitInverseCentimeter:
		if v == 0 {
			return 0, errZeroFrequency
		}
		return 1e4 / v, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownUnit, int(u))
}

// inverting reports whether converting from u to target reverses ordering
// (wavelength to frequency/wavenumber or back).
func (u Unit) inverting(target Unit) bool {
	return u.IsWavelength() != target.IsWavelength()
}
