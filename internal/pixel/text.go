package pixel

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// face is the fixed-width bitmap font used for all labels.
var face = basicfont.Face7x13

// GlyphWidth is the horizontal advance of one character.
const GlyphWidth = 7

// GlyphHeight is the line height of one character.
const GlyphHeight = 13

// Text draws a string with its top-left corner at (x, y).
func (b *Buffer) Text(text string, x, y int, c Color) {
	d := font.Drawer{
		Dst:  b,
		Src:  image.NewUniform(c.gray()),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

// TextScaled draws a string magnified by an integer factor, filling each
// glyph cell with bg first so the text stays readable on any background.
// The glyphs are rendered at native size into a scratch buffer and blown up
// block-wise.
func (b *Buffer) TextScaled(text string, x, y, scale int, fg, bg Color) {
	if len(text) == 0 {
		return
	}
	if scale < 1 {
		scale = 1
	}
	w := GlyphWidth * len(text)
	h := GlyphHeight
	tmp := New(w, h)
	if bg == Ink {
		tmp.Fill(Ink)
	}
	tmp.Text(text, 0, 0, fg)
	for ty := 0; ty < h; ty++ {
		for tx := 0; tx < w; tx++ {
			b.FillRect(x+tx*scale, y+ty*scale, scale, scale, tmp.Pixel(tx, ty))
		}
	}
}
