package chart

import (
	"fmt"
	"math"

	"PixelTicker/internal/pixel"
	"PixelTicker/internal/series"
)

// axisLabelX is the fixed left margin for y-axis labels, independent of the
// chart rectangle so the labels line up across views.
const axisLabelX = 4

// Spec describes one render call: the target rectangle, the view tag shown
// in the corner, the currency unit for the min/max labels, the desired
// vertical gridline count and the dash pattern. Immutable per call.
type Spec struct {
	Left   int
	Top    int
	Width  int
	Height int

	SpanLabel string
	Unit      string
	Grid      int // desired vertical gridline count
	Dash      int
	Gap       int
}

// Render draws the full chart into buf: inset border, dashed grid with axis
// labels, the series polyline and the min/max/span annotations. An empty
// history renders a placeholder instead. Only buf is mutated.
func Render(buf *pixel.Buffer, spec Spec, hist *series.HistoryBuffer) {
	buf.Rect(spec.Left-1, spec.Top-1, spec.Width+2, spec.Height+2, pixel.Ink)
	if hist.Len() == 0 {
		buf.Text("no data", spec.Left+4, spec.Top+spec.Height/2, pixel.Ink)
		return
	}

	values := hist.Values()
	points := len(values)
	min, max := hist.MinMax()
	span := SpanOf(min, max)
	stepX := float64(spec.Width)
	if points > 1 {
		stepX = float64(spec.Width) / float64(points-1)
	}

	drawRowGrid(buf, spec, min, max, span)
	drawColGrid(buf, spec, points, stepX)

	prevX := spec.Left
	prevY := spec.Top + spec.Height - Scale(values[0], min, span, spec.Height)
	for idx := 1; idx < points; idx++ {
		x := spec.Left + int(float64(idx)*stepX)
		y := spec.Top + spec.Height - Scale(values[idx], min, span, spec.Height)
		buf.Line(prevX, prevY, x, y, pixel.Ink)
		prevX, prevY = x, y
	}

	buf.Text(fmt.Sprintf("Min %.0f %s", min, spec.Unit), spec.Left, spec.Top+spec.Height+4, pixel.Ink)
	buf.Text(fmt.Sprintf("Max %.0f %s", max, spec.Unit), spec.Left+110, spec.Top+spec.Height+4, pixel.Ink)
	// Glyph boxes are GlyphHeight tall; placed so the tag's ink sits between
	// the header area and the top border row.
	buf.Text(spec.SpanLabel, spec.Left+spec.Width-36, spec.Top-pixel.GlyphHeight+1, pixel.Ink)
}

func drawRowGrid(buf *pixel.Buffer, spec Spec, min, max, span float64) {
	step := NiceStep(span)
	for _, v := range GridRows(min, max, step) {
		offset := Scale(v, min, span, spec.Height)
		y := spec.Top + spec.Height - offset
		buf.HLineDashed(spec.Left, y, spec.Width, spec.Dash, spec.Gap, pixel.Ink)
		// Center the glyph box on the gridline.
		buf.Text(FormatK(v), axisLabelX, y-pixel.GlyphHeight/2, pixel.Ink)
	}
}

func drawColGrid(buf *pixel.Buffer, spec Spec, points int, stepX float64) {
	for _, idx := range GridCols(points, spec.Grid) {
		x := spec.Left + int(float64(idx)*stepX)
		buf.VLineDashed(x, spec.Top, spec.Height, spec.Dash, spec.Gap, pixel.Ink)
	}
}

// FormatK abbreviates magnitudes of 1000 and above with a one-decimal "k"
// suffix to keep axis labels inside their margin.
func FormatK(value float64) string {
	if math.Abs(value) >= 1000 {
		return fmt.Sprintf("%.1fk", value/1000)
	}
	return fmt.Sprintf("%.0f", value)
}
