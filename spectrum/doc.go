// Package spectrum provides spectroscopic axis and spectrum containers.
//
// An Axis is a strictly increasing wavelength (or frequency) grid tagged
// with a physical unit. A Spectrum pairs an axis with flux samples and
// offers single-shot queries (peak, nearest sample, slicing) plus
// instrumental smoothing and a power-spectrum diagnostic.
//
// The package operates on fixed-length data computed once; nothing here is
// safe for concurrent mutation, and nothing needs to be.
package spectrum
