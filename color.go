package ugfx

import "image/color"

// Color represents an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Space identifies the color space a ColorF is expressed in.
type Space int

const (
	// SpaceRGB stores red, green, blue in R, G, B.
	SpaceRGB Space = iota
	// SpaceHSV stores hue (normalized to [0,1]) in R, saturation in G,
	// value in B.
	SpaceHSV
	// SpaceHSL stores hue (normalized to [0,1]) in R, saturation in G,
	// lightness in B.
	SpaceHSL
	// SpaceLAB stores L normalized to [0,1] in R, and a/b remapped from
	// [-128,128] to [0,1] in G and B.
	SpaceLAB
)

// ColorF represents a color with normalized float components tagged with
// the space they are expressed in. Alpha is always linear and unchanged
// by conversions.
type ColorF struct {
	R, G, B, A float32
	Space      Space
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ToF converts a Color to a normalized float RGB ColorF.
func (c Color) ToF() ColorF {
	return ColorF{
		R:     float32(c.R) / 255,
		G:     float32(c.G) / 255,
		B:     float32(c.B) / 255,
		A:     float32(c.A) / 255,
		Space: SpaceRGB,
	}
}

// ToColor converts a ColorF back to an 8-bit Color with rounding.
// The ColorF should be in RGB space; other spaces are converted first.
func (c ColorF) ToColor() Color {
	if c.Space != SpaceRGB {
		c = Convert(c, SpaceRGB)
	}
	return Color{
		R: clampU8(c.R*255 + 0.5),
		G: clampU8(c.G*255 + 0.5),
		B: clampU8(c.B*255 + 0.5),
		A: clampU8(c.A*255 + 0.5),
	}
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color. Color stores
// straight alpha, so premultiplied inputs are unpremultiplied by the
// NRGBA model conversion.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// packed returns the color packed as XRGB8888, the window scanout format.
// Alpha occupies the X byte; KMS ignores it on a depth-24 framebuffer.
func (c Color) packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// unpack reverses packed.
func unpack(p uint32) Color {
	return Color{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// clampU8 restricts a value to [0, 255] and converts it to uint8.
func clampU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// clampF restricts a value to [0, 1].
func clampF(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Gray        = RGB(128, 128, 128)
	Orange      = RGB(255, 165, 0)
	Transparent = RGBA(0, 0, 0, 0)
)
