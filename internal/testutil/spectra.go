package testutil

import "math"

// LinearGrid returns n evenly spaced values spanning [min, max] inclusive.
func LinearGrid(min, max float64, n int) []float64 {
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + step*float64(i)
	}
	out[n-1] = max
	return out
}

// LinearContinuum evaluates base + slope*(x - ref) over the grid.
func LinearContinuum(grid []float64, base, slope, ref float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = base + slope*(x-ref)
	}
	return out
}

// GaussianProfile evaluates ampl * exp(-(x-center)^2 / (2 width^2)) over
// the grid.
func GaussianProfile(grid []float64, center, width, ampl float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		d := x - center
		out[i] = ampl * math.Exp(-d*d/(2*width*width))
	}
	return out
}
