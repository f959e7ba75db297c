// Package render draws spectra as line charts and exports them to PNG.
//
// The backend is go-chart. A Plot accumulates series, vertical line markers,
// and arrow annotations, then renders them at a fixed figure size and DPI.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/cwbudde/mirspec/spectrum"
)

// Default figure geometry, matching a 10x6 inch figure at 150 DPI.
const (
	DefaultWidthInches  = 10.0
	DefaultHeightInches = 6.0
	DefaultDPI          = 150.0
)

// Plot accumulates chart content before rendering.
type Plot struct {
	widthInches  float64
	heightInches float64
	dpi          float64
	title        string
	xLabel       string
	yLabel       string
	grid         bool

	series []chart.Series
	legend []chart.Series
}

// Option configures a Plot.
type Option func(*Plot)

// WithSize sets the figure size in inches.
func WithSize(widthInches, heightInches float64) Option {
	return func(p *Plot) {
		if widthInches > 0 && heightInches > 0 {
			p.widthInches = widthInches
			p.heightInches = heightInches
		}
	}
}

// WithDPI sets the output resolution in dots per inch.
func WithDPI(dpi float64) Option {
	return func(p *Plot) {
		if dpi > 0 {
			p.dpi = dpi
		}
	}
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(p *Plot) {
		p.title = title
	}
}

// WithXLabel sets the x axis label.
func WithXLabel(label string) Option {
	return func(p *Plot) {
		p.xLabel = label
	}
}

// WithYLabel sets the y axis label.
func WithYLabel(label string) Option {
	return func(p *Plot) {
		p.yLabel = label
	}
}

// WithGrid enables or disables the background grid.
func WithGrid(enabled bool) Option {
	return func(p *Plot) {
		p.grid = enabled
	}
}

// New returns an empty plot with default geometry.
func New(opts ...Option) *Plot {
	p := &Plot{
		widthInches:  DefaultWidthInches,
		heightInches: DefaultHeightInches,
		dpi:          DefaultDPI,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// AddSpectrum adds a spectrum as a line series.
func (p *Plot) AddSpectrum(name string, sp *spectrum.Spectrum) {
	p.AddSeries(name, sp.Axis().Values(), sp.Flux())
}

// AddSeries adds a raw line series.
func (p *Plot) AddSeries(name string, xs, ys []float64) {
	s := chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: chart.ColorBlack,
			StrokeWidth: 1.5,
		},
	}
	p.series = append(p.series, s)
	p.legend = append(p.legend, s)
}

// AddVerticalMarker adds a dashed full-height vertical line at x. The label
// appears in the legend.
func (p *Plot) AddVerticalMarker(x float64, label string) {
	m := verticalMarker{
		name: label,
		x:    x,
		style: chart.Style{
			StrokeColor:     chart.ColorRed.WithAlpha(204),
			StrokeWidth:     2.0,
			StrokeDashArray: []float64{6.0, 4.0},
		},
	}
	p.series = append(p.series, m)
	p.legend = append(p.legend, m)
}

// AddArrow adds a text label at the anchor point with an arrow drawn from
// the anchor to the target, both in data coordinates.
func (p *Plot) AddArrow(text string, targetX, targetY, anchorX, anchorY float64) {
	a := arrowAnnotation{
		text:    text,
		targetX: targetX,
		targetY: targetY,
		anchorX: anchorX,
		anchorY: anchorY,
		style: chart.Style{
			StrokeColor: chart.ColorRed,
			StrokeWidth: 1.5,
			FontColor:   chart.ColorRed,
			FontSize:    13,
		},
	}
	p.series = append(p.series, a)
}

// Render draws the chart as a PNG to w.
func (p *Plot) Render(w io.Writer) error {
	if len(p.series) == 0 {
		return errNoSeries
	}

	ch := chart.Chart{
		Title:  p.title,
		Width:  int(p.widthInches * p.dpi),
		Height: int(p.heightInches * p.dpi),
		DPI:    p.dpi,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis:  chart.XAxis{Name: p.xLabel},
		YAxis:  chart.YAxis{Name: p.yLabel},
		Series: p.series,
	}

	if p.grid {
		gridStyle := chart.Style{
			StrokeColor: chart.ColorAlternateGray.WithAlpha(77),
			StrokeWidth: 1.0,
		}
		ch.XAxis.GridMajorStyle = gridStyle
		ch.XAxis.GridMinorStyle = gridStyle
		ch.YAxis.GridMajorStyle = gridStyle
		ch.YAxis.GridMinorStyle = gridStyle
	}

	// The legend reads series from a chart value, so point it at a copy that
	// holds only the series meant to be listed (annotations stay out).
	legendChart := ch
	legendChart.Series = p.legend
	ch.Elements = []chart.Renderable{chart.Legend(&legendChart)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// SavePNG renders the chart and writes it to path.
func (p *Plot) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := p.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
