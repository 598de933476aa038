package ugfx

import "math"

// Convert converts a ColorF between color spaces. Conversions pivot
// through RGB; converting to the color's own space returns it unchanged.
// Alpha is never touched.
//
// HSV and HSL store hue normalized to [0,1] in the R field (multiply by
// 360 for degrees), saturation in G, and value/lightness in B. LAB
// stores L/100 in R and a/b remapped from [-128,128] into [0,1].
func Convert(c ColorF, to Space) ColorF {
	if c.Space == to {
		return c
	}

	var rgb ColorF
	switch c.Space {
	case SpaceRGB:
		rgb = c
	case SpaceHSV:
		rgb = hsvToRGB(c)
	case SpaceHSL:
		rgb = hslToRGB(c)
	case SpaceLAB:
		rgb = labToRGB(c)
	default:
		return c
	}
	rgb.Space = SpaceRGB

	switch to {
	case SpaceRGB:
		return rgb
	case SpaceHSV:
		return rgbToHSV(rgb)
	case SpaceHSL:
		return rgbToHSL(rgb)
	case SpaceLAB:
		return rgbToLAB(rgb)
	default:
		return rgb
	}
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func rgbToHSV(c ColorF) ColorF {
	maxV := max3(c.R, c.G, c.B)
	minV := min3(c.R, c.G, c.B)
	delta := maxV - minV

	out := ColorF{A: c.A, Space: SpaceHSV}
	out.B = maxV // V

	if maxV == 0 {
		out.G = 0
	} else {
		out.G = delta / maxV // S
	}

	out.R = hueFromMax(c, maxV, delta) // H normalized

	return out
}

func hsvToRGB(c ColorF) ColorF {
	h := c.R * 360
	s := c.G
	v := c.B

	out := ColorF{A: c.A, Space: SpaceRGB}
	if s == 0 {
		out.R, out.G, out.B = v, v, v
		return out
	}

	chroma := v * s
	x := chroma * (1 - float32(math.Abs(math.Mod(float64(h)/60, 2)-1)))
	m := v - chroma

	r, g, b := hueSector(h, chroma, x)
	out.R = r + m
	out.G = g + m
	out.B = b + m
	return out
}

func rgbToHSL(c ColorF) ColorF {
	maxV := max3(c.R, c.G, c.B)
	minV := min3(c.R, c.G, c.B)
	delta := maxV - minV

	out := ColorF{A: c.A, Space: SpaceHSL}
	out.B = (maxV + minV) / 2 // L

	if delta == 0 {
		return out
	}

	if out.B < 0.5 {
		out.G = delta / (maxV + minV)
	} else {
		out.G = delta / (2 - maxV - minV)
	}

	out.R = hueFromMax(c, maxV, delta)
	return out
}

func hslToRGB(c ColorF) ColorF {
	h := c.R * 360
	s := c.G
	l := c.B

	out := ColorF{A: c.A, Space: SpaceRGB}
	if s == 0 {
		out.R, out.G, out.B = l, l, l
		return out
	}

	chroma := (1 - float32(math.Abs(float64(2*l-1)))) * s
	x := chroma * (1 - float32(math.Abs(math.Mod(float64(h)/60, 2)-1)))
	m := l - chroma/2

	r, g, b := hueSector(h, chroma, x)
	out.R = r + m
	out.G = g + m
	out.B = b + m
	return out
}

// hueFromMax computes the hue in [0,1) from the dominant channel.
func hueFromMax(c ColorF, maxV, delta float32) float32 {
	if delta == 0 {
		return 0
	}
	var h float32
	switch maxV {
	case c.R:
		h = 60 * float32(math.Mod(float64((c.G-c.B)/delta), 6))
	case c.G:
		h = 60 * ((c.B-c.R)/delta + 2)
	default:
		h = 60 * ((c.R-c.G)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h / 360
}

// hueSector maps a hue in degrees to the (r,g,b) triple before the
// lightness offset is added.
func hueSector(h, chroma, x float32) (r, g, b float32) {
	switch {
	case h < 60:
		return chroma, x, 0
	case h < 120:
		return x, chroma, 0
	case h < 180:
		return 0, chroma, x
	case h < 240:
		return 0, x, chroma
	case h < 300:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}

// sRGB transfer functions, used by the LAB path.

func srgbToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64(s+0.055)/1.055, 2.4))
}

func linearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// D65 white point.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

func labF(t float32) float32 {
	if t > 0.008856 {
		return float32(math.Cbrt(float64(t)))
	}
	return 7.787*t + 16.0/116.0
}

func labFInv(t float32) float32 {
	if t > 0.206897 {
		return t * t * t
	}
	return (t - 16.0/116.0) / 7.787
}

func rgbToLAB(c ColorF) ColorF {
	r := srgbToLinear(c.R)
	g := srgbToLinear(c.G)
	b := srgbToLinear(c.B)

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	l := 116*fy - 16
	a := 500 * (fx - fy)
	bb := 200 * (fy - fz)

	return ColorF{
		R:     l / 100,
		G:     (a + 128) / 256,
		B:     (bb + 128) / 256,
		A:     c.A,
		Space: SpaceLAB,
	}
}

func labToRGB(c ColorF) ColorF {
	l := c.R * 100
	a := c.G*256 - 128
	b := c.B*256 - 128

	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	x := labFInv(fx) * whiteX
	y := labFInv(fy) * whiteY
	z := labFInv(fz) * whiteZ

	rl := 3.2404542*x - 1.5371385*y - 0.4985314*z
	gl := -0.9692660*x + 1.8760108*y + 0.0415560*z
	bl := 0.0556434*x - 0.2040259*y + 1.0572252*z

	return ColorF{
		R:     clampF(linearToSRGB(rl)),
		G:     clampF(linearToSRGB(gl)),
		B:     clampF(linearToSRGB(bl)),
		A:     c.A,
		Space: SpaceRGB,
	}
}
