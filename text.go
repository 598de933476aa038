package ugfx

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// textFace is the fixed-cell bitmap face used for debug text. Glyphs are
// pre-rendered bitmaps; no shaping or layout is performed.
var textFace = basicfont.Face7x13

// DrawText draws a string of bitmap glyphs with the top-left corner of
// the first glyph cell at (x, y). Glyphs outside the surface are
// clipped. The string advances left to right with no wrapping.
func DrawText(s *Surface, x, y int, text string, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	d := font.Drawer{
		Dst:  s,
		Src:  image.NewUniform(c.Color()),
		Face: textFace,
		Dot:  fixed.P(x, y+textFace.Ascent),
	}
	d.DrawString(text)
	return nil
}

// DrawChar draws a single bitmap glyph at (x, y).
func DrawChar(s *Surface, x, y int, ch rune, c Color) error {
	return DrawText(s, x, y, string(ch), c)
}

// TextExtent returns the pixel width and height the string would cover.
func TextExtent(text string) (w, h int) {
	d := font.Drawer{Face: textFace}
	return d.MeasureString(text).Ceil(), textFace.Height
}
