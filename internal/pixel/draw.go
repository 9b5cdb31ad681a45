package pixel

// HLine draws a horizontal run of length pixels starting at (x, y).
func (b *Buffer) HLine(x, y, length int, c Color) {
	for i := 0; i < length; i++ {
		b.SetPixel(x+i, y, c)
	}
}

// VLine draws a vertical run of length pixels starting at (x, y).
func (b *Buffer) VLine(x, y, length int, c Color) {
	for i := 0; i < length; i++ {
		b.SetPixel(x, y+i, c)
	}
}

// HLineDashed draws a horizontal dashed line: alternating runs of dash
// pixels on and gap pixels off. The final run is clipped to the line end
// instead of overshooting.
func (b *Buffer) HLineDashed(x, y, length, dash, gap int, c Color) {
	end := x + length
	for pos := x; pos < end; pos += dash + gap {
		run := dash
		if end-pos < run {
			run = end - pos
		}
		b.HLine(pos, y, run, c)
	}
}

// VLineDashed draws a vertical dashed line with the same run handling as
// HLineDashed.
func (b *Buffer) VLineDashed(x, y, length, dash, gap int, c Color) {
	end := y + length
	for pos := y; pos < end; pos += dash + gap {
		run := dash
		if end-pos < run {
			run = end - pos
		}
		b.VLine(x, pos, run, c)
	}
}

// Line draws a straight segment from (x0, y0) to (x1, y1) using Bresenham's
// algorithm.
func (b *Buffer) Line(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect draws an unfilled rectangle outline.
func (b *Buffer) Rect(x, y, width, height int, c Color) {
	if width <= 0 || height <= 0 {
		return
	}
	b.HLine(x, y, width, c)
	b.HLine(x, y+height-1, width, c)
	b.VLine(x, y, height, c)
	b.VLine(x+width-1, y, height, c)
}

// FillRect fills a rectangle.
func (b *Buffer) FillRect(x, y, width, height int, c Color) {
	for row := 0; row < height; row++ {
		b.HLine(x, y+row, width, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
