// Package chart computes value-to-pixel scaling and grid geometry for a
// bounded monochrome drawing rectangle, and renders a price series into it.
package chart

import "math"

// minSpan replaces a zero or negative value span so the scaling math never
// divides by zero.
const minSpan = 1e-6

// SpanOf returns max-min, substituting a small positive epsilon for
// degenerate ranges.
func SpanOf(min, max float64) float64 {
	span := max - min
	if span < minSpan {
		return minSpan
	}
	return span
}

// Scale maps value onto a pixel offset in [0, height-1], where min maps to 0
// and min+span maps to height-1. Results are rounded and clamped.
func Scale(value, min, span float64, height int) int {
	if span <= 0 {
		span = minSpan
	}
	offset := int(math.Round((value - min) / span * float64(height-1)))
	if offset < 0 {
		return 0
	}
	if offset > height-1 {
		return height - 1
	}
	return offset
}

// NiceStep picks a gridline step from {1, 2, 5, 10} x 10^k such that the
// span is covered by at most 6 lines; with the candidates bracketing span/4
// this yields 3 to 6 lines regardless of magnitude. A non-positive span
// falls back to a magnitude of 1.
func NiceStep(span float64) float64 {
	rough := span / 4
	magnitude := 1.0
	if rough > 0 {
		magnitude = math.Pow(10, math.Floor(math.Log10(rough)))
	}
	for _, factor := range []float64{1, 2, 5, 10} {
		step := factor * magnitude
		if span/step <= 6 {
			return step
		}
	}
	return magnitude
}

// GridRows returns the horizontal gridline values: multiples of step from
// the smallest multiple >= min up to max.
func GridRows(min, max, step float64) []float64 {
	var rows []float64
	for v := math.Ceil(min/step) * step; v <= max; v += step {
		rows = append(rows, v)
	}
	return rows
}

// GridCols returns the sample indices at which vertical gridlines are drawn:
// every (points/desired)-th sample, excluding the left edge. Fewer than two
// points produce no lines.
func GridCols(points, desired int) []int {
	if points < 2 || desired < 1 {
		return nil
	}
	step := points / desired
	if step < 1 {
		step = 1
	}
	var cols []int
	for idx := step; idx < points; idx += step {
		cols = append(cols, idx)
	}
	return cols
}
