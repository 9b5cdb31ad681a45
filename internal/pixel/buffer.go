// Package pixel provides a 1-bit-per-pixel drawing surface and the
// primitives the chart and screen layers render with. The buffer implements
// draw.Image, so the standard image codecs and golang.org/x/image font
// drawing work on it directly.
package pixel

import (
	"image"
	"image/color"
)

// Color is a single pixel value. Ink is the drawn (dark) state, Clear the
// background, matching the monochrome e-paper convention where 1 is white.
type Color byte

const (
	Ink   Color = 0
	Clear Color = 1
)

func (c Color) gray() color.Gray {
	if c == Ink {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 255}
}

// Buffer is a rectangular 1-bpp surface, row-major, most significant bit
// first within each byte. Coordinates have their origin at the top left,
// x increasing rightward and y increasing downward. All drawing operations
// clip silently at the edges.
type Buffer struct {
	width  int
	height int
	stride int // bytes per row
	bits   []byte
}

// New allocates a cleared buffer. Panics on non-positive dimensions.
func New(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic("pixel: dimensions must be positive")
	}
	stride := (width + 7) / 8
	b := &Buffer{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]byte, stride*height),
	}
	b.Fill(Clear)
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Bytes exposes the packed pixel data for display drivers. The slice aliases
// the buffer; callers must not retain it across draw calls.
func (b *Buffer) Bytes() []byte { return b.bits }

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	var v byte
	if c == Clear {
		v = 0xFF
	}
	for i := range b.bits {
		b.bits[i] = v
	}
}

// SetPixel sets one pixel. Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	idx := y*b.stride + x/8
	mask := byte(0x80) >> uint(x%8)
	if c == Clear {
		b.bits[idx] |= mask
	} else {
		b.bits[idx] &^= mask
	}
}

// Pixel reads one pixel. Out-of-range coordinates read as Clear.
func (b *Buffer) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Clear
	}
	if b.bits[y*b.stride+x/8]&(0x80>>uint(x%8)) != 0 {
		return Clear
	}
	return Ink
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return color.GrayModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color { return b.Pixel(x, y).gray() }

// Set implements draw.Image: anything darker than mid-gray becomes Ink.
func (b *Buffer) Set(x, y int, c color.Color) {
	if color.GrayModel.Convert(c).(color.Gray).Y < 128 {
		b.SetPixel(x, y, Ink)
	} else {
		b.SetPixel(x, y, Clear)
	}
}
