package spectrum

import "testing"

func benchSpectrum(b *testing.B, n int) *Spectrum {
	b.Helper()
	axis, err := Linear(10, 30, n, UnitMicron)
	if err != nil {
		b.Fatal(err)
	}
	flux := make([]float64, n)
	for i := range flux {
		flux[i] = 1.0
	}
	sp, err := NewSpectrum(axis, flux)
	if err != nil {
		b.Fatal(err)
	}
	return sp
}

func BenchmarkSmooth(b *testing.B) {
	sp := benchSpectrum(b, 500)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sp.Smooth(0.3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPeriodogram(b *testing.B) {
	sp := benchSpectrum(b, 500)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sp.Periodogram(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPeak(b *testing.B) {
	sp := benchSpectrum(b, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sp.Peak()
	}
}
