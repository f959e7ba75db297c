package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/mirspec/internal/testutil"
	"github.com/cwbudde/mirspec/spectrum"
)

// demoModel mirrors the fixed parameters of the shipped waterline command.
func demoModel() Model {
	return Model{
		Continuum:  Continuum{Base: 1.0, Slope: 0.02, Reference: 20.0},
		Lines:      []GaussianLine{{Center: 17.22, Width: 0.15, Amplitude: 0.3}},
		NoiseScale: 0.02,
		Seed:       12345,
	}
}

func demoAxis(t *testing.T) *spectrum.Axis {
	t.Helper()
	axis, err := spectrum.Linear(10, 30, 500, spectrum.UnitMicron)
	if err != nil {
		t.Fatal(err)
	}
	return axis
}

func TestContinuumIsExactlyLinear(t *testing.T) {
	c := Continuum{Base: 1.0, Slope: 0.02, Reference: 20.0}
	grid := testutil.LinearGrid(10, 30, 500)

	got := c.Sample(grid)
	for i, x := range grid {
		want := 1.0 + 0.02*(x-20.0)
		if got[i] != want {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestGaussianLineValidate(t *testing.T) {
	tests := []struct {
		name string
		line GaussianLine
		ok   bool
	}{
		{"valid", GaussianLine{Center: 17.22, Width: 0.15, Amplitude: 0.3}, true},
		{"zero width", GaussianLine{Center: 17.22, Width: 0, Amplitude: 0.3}, false},
		{"negative width", GaussianLine{Center: 17.22, Width: -1, Amplitude: 0.3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidWidth) {
				t.Fatalf("err = %v, want %v", err, ErrInvalidWidth)
			}
		})
	}
}

func TestGaussianLineFWHM(t *testing.T) {
	l := GaussianLine{Center: 17.22, Width: 0.15, Amplitude: 0.3}
	want := 2 * math.Sqrt(2*math.Ln2) * 0.15
	testutil.RequireNearlyEqual(t, l.FWHM(), want, 1e-12)

	// The profile really is at half maximum there.
	half := l.Eval(l.Center + l.FWHM()/2)
	testutil.RequireNearlyEqual(t, half, l.Amplitude/2, 1e-12)
}

func TestNoiseReproducible(t *testing.T) {
	a := Noise(12345, 0.02, 500)
	b := Noise(12345, 0.02, 500)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v for identical seeds", i, a[i], b[i])
		}
	}

	c := Noise(54321, 0.02, 500)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestSynthesizeReproducible(t *testing.T) {
	axis := demoAxis(t)
	model := demoModel()

	first, err := model.Synthesize(axis)
	if err != nil {
		t.Fatal(err)
	}
	second, err := model.Synthesize(axis)
	if err != nil {
		t.Fatal(err)
	}

	a, b := first.Flux(), second.Flux()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v across runs", i, a[i], b[i])
		}
	}
}

func TestSeedChangesFluxNotAxis(t *testing.T) {
	axis := demoAxis(t)

	model := demoModel()
	first, err := model.Synthesize(axis)
	if err != nil {
		t.Fatal(err)
	}

	model.Seed = 99999
	second, err := model.Synthesize(axis)
	if err != nil {
		t.Fatal(err)
	}

	if first.Axis() != second.Axis() {
		t.Fatal("axis identity should be shared")
	}

	a, b := first.Flux(), second.Flux()
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical flux")
	}
}

func TestLinePeakAboveContinuum(t *testing.T) {
	axis := demoAxis(t)
	model := demoModel()

	sp, err := model.Synthesize(axis)
	if err != nil {
		t.Fatal(err)
	}

	i := axis.NearestIndex(17.22)
	continuum := model.Continuum.Eval(axis.At(i))
	excess := sp.Flux()[i] - continuum

	// Amplitude 0.3 minus sub-percent grid offset, plus noise at scale 0.02.
	if math.Abs(excess-0.3) > 0.1 {
		t.Fatalf("line excess = %v, want ~0.3", excess)
	}
}

func TestNoiseFreeModelIsExact(t *testing.T) {
	axis := demoAxis(t)
	model := demoModel()
	model.NoiseScale = 0

	sp, err := model.Synthesize(axis)
	if err != nil {
		t.Fatal(err)
	}

	grid := axis.Values()
	want := testutil.LinearContinuum(grid, 1.0, 0.02, 20.0)
	line := testutil.GaussianProfile(grid, 17.22, 0.15, 0.3)
	for i := range want {
		want[i] += line[i]
	}

	testutil.RequireSliceNearlyEqual(t, sp.Flux(), want, 1e-12)
}

func TestModelValidate(t *testing.T) {
	model := demoModel()
	model.NoiseScale = -0.1
	if err := model.Validate(); !errors.Is(err, ErrInvalidNoiseScale) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidNoiseScale)
	}

	model = demoModel()
	model.Lines = append(model.Lines, GaussianLine{Center: 12, Width: 0})
	if err := model.Validate(); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("err = %v, want %v", err, ErrInvalidWidth)
	}
}

func TestSynthesizeNilAxis(t *testing.T) {
	if _, err := demoModel().Synthesize(nil); !errors.Is(err, ErrNilAxis) {
		t.Fatalf("err = %v, want %v", err, ErrNilAxis)
	}
}
