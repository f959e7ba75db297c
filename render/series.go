package render

import (
	"errors"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

var errNoSeries = errors.New("render: plot has no series")

// verticalMarker draws a dashed vertical line spanning the full plot height
// at a fixed data x coordinate.
type verticalMarker struct {
	name  string
	x     float64
	style chart.Style
}

func (m verticalMarker) GetName() string { return m.name }

func (m verticalMarker) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (m verticalMarker) GetStyle() chart.Style { return m.style }

func (m verticalMarker) Validate() error { return nil }

func (m verticalMarker) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := m.style.InheritFrom(defaults)
	cx := canvasBox.Left + xrange.Translate(m.x)

	r.SetStrokeColor(style.GetStrokeColor())
	r.SetStrokeWidth(style.GetStrokeWidth())
	r.SetStrokeDashArray(style.GetStrokeDashArray())
	r.MoveTo(cx, canvasBox.Top)
	r.LineTo(cx, canvasBox.Bottom)
	r.Stroke()
}

// arrowAnnotation draws a text label at an anchor point and an arrow from
// the anchor toward a target point, both given in data coordinates.
type arrowAnnotation struct {
	text    string
	targetX float64
	targetY float64
	anchorX float64
	anchorY float64
	style   chart.Style
}

func (a arrowAnnotation) GetName() string { return "" }

func (a arrowAnnotation) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (a arrowAnnotation) GetStyle() chart.Style { return a.style }

func (a arrowAnnotation) Validate() error { return nil }

func (a arrowAnnotation) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := a.style.InheritFrom(defaults)

	tx := canvasBox.Left + xrange.Translate(a.targetX)
	ty := canvasBox.Bottom - yrange.Translate(a.targetY)
	ax := canvasBox.Left + xrange.Translate(a.anchorX)
	ay := canvasBox.Bottom - yrange.Translate(a.anchorY)

	r.SetStrokeColor(style.GetStrokeColor())
	r.SetStrokeWidth(style.GetStrokeWidth())
	r.SetStrokeDashArray(nil)
	r.MoveTo(ax, ay)
	r.LineTo(tx, ty)
	r.Stroke()

	drawArrowHead(r, ax, ay, tx, ty)

	r.SetFont(style.GetFont())
	r.SetFontColor(style.GetFontColor())
	r.SetFontSize(style.GetFontSize())

	// Center the label horizontally over the anchor, just above the line end.
	bounds := r.MeasureText(a.text)
	r.Text(a.text, ax-bounds.Width()/2, ay-4)
}

// drawArrowHead draws the two head strokes of an arrow pointing at (tx, ty)
// coming from the direction of (ax, ay).
func drawArrowHead(r chart.Renderer, ax, ay, tx, ty int) {
	const headLen = 8.0
	const headAngle = math.Pi / 7

	angle := math.Atan2(float64(ty-ay), float64(tx-ax))
	for _, da := range []float64{headAngle, -headAngle} {
		hx := float64(tx) - headLen*math.Cos(angle-da)
		hy := float64(ty) - headLen*math.Sin(angle-da)
		r.MoveTo(tx, ty)
		r.LineTo(int(math.Round(hx)), int(math.Round(hy)))
		r.Stroke()
	}
}
