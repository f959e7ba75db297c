// Command waterline renders a synthetic mid-infrared spectrum of a
// protoplanetary disk with the 17.22 µm rotational line of water vapor
// marked and labeled, and saves the figure as water_line_spectrum.png.
//
// The spectrum is a linear continuum plus one Gaussian emission line plus
// seeded Gaussian noise; all parameters are fixed. The command takes no
// arguments.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/mirspec/render"
	"github.com/cwbudde/mirspec/spectrum"
	"github.com/cwbudde/mirspec/synth"
)

const (
	waveMin = 10.0 // µm
	waveMax = 30.0 // µm
	nPoints = 500

	lineCenter = 17.22 // µm
	lineWidth  = 0.15  // µm, FWHM ~ 0.35 µm
	lineAmpl   = 0.3   // relative to continuum

	noiseScale = 0.02
	noiseSeed  = 12345

	outFile = "water_line_spectrum.png"
)

func main() {
	if err := run(os.Stdout, outFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(out io.Writer, path string) error {
	axis, err := spectrum.Linear(waveMin, waveMax, nPoints, spectrum.UnitMicron)
	if err != nil {
		return err
	}

	model := synth.Model{
		Continuum:  synth.Continuum{Base: 1.0, Slope: 0.02, Reference: 20.0},
		Lines:      []synth.GaussianLine{{Center: lineCenter, Width: lineWidth, Amplitude: lineAmpl}},
		NoiseScale: noiseScale,
		Seed:       noiseSeed,
	}

	sp, err := model.Synthesize(axis, spectrum.WithFluxUnit("erg s⁻¹ cm⁻² µm⁻¹"))
	if err != nil {
		return err
	}

	p := render.New(
		render.WithTitle("Mid-infrared spectrum of a protoplanetary disk"),
		render.WithXLabel("Wavelength [µm]"),
		render.WithYLabel("Normalized Flux"),
		render.WithGrid(true),
	)
	p.AddSpectrum("Synthetic spectrum", sp)
	p.AddVerticalMarker(lineCenter, "H₂O rotational line (17.22 µm)")

	max := sp.MaxFlux()
	p.AddArrow("H₂O 17.22 µm", lineCenter, max*0.9, lineCenter+1.0, max*0.95)

	if err := p.SavePNG(path); err != nil {
		return err
	}

	fmt.Fprintf(out, "Figure saved as %s\n", path)
	return nil
}
