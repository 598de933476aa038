package ugfx

// BlendMode selects a rule for combining a source and destination color.
type BlendMode int

const (
	// BlendNone replaces the destination with the source.
	BlendNone BlendMode = iota
	// BlendAlpha is the Porter-Duff "over" operator.
	BlendAlpha
	// BlendAdd adds channels with saturation.
	BlendAdd
	// BlendMultiply multiplies channels.
	BlendMultiply
	// BlendScreen inverts, multiplies, and inverts again.
	BlendScreen
)

// AlphaBlend composites src over dst using the Porter-Duff "over"
// operator. A fully transparent src returns dst unchanged; a fully
// opaque src returns src unchanged.
func AlphaBlend(src, dst Color) Color {
	if src.A == 0 {
		return dst
	}
	if src.A == 255 {
		return src
	}

	srcA := float32(src.A) / 255
	dstA := float32(dst.A) / 255
	invSrcA := 1 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return Color{}
	}

	// Premultiply, combine, unpremultiply.
	outR := (float32(src.R)/255*srcA + float32(dst.R)/255*dstA*invSrcA) / outA
	outG := (float32(src.G)/255*srcA + float32(dst.G)/255*dstA*invSrcA) / outA
	outB := (float32(src.B)/255*srcA + float32(dst.B)/255*dstA*invSrcA) / outA

	return Color{
		R: clampU8(outR*255 + 0.5),
		G: clampU8(outG*255 + 0.5),
		B: clampU8(outB*255 + 0.5),
		A: clampU8(outA*255 + 0.5),
	}
}

// BlendColors blends two colors using the specified mode.
// Unknown modes behave like BlendNone.
func BlendColors(src, dst Color, mode BlendMode) Color {
	switch mode {
	case BlendAlpha:
		return AlphaBlend(src, dst)
	case BlendAdd:
		return Color{
			R: satAddU8(src.R, dst.R),
			G: satAddU8(src.G, dst.G),
			B: satAddU8(src.B, dst.B),
			A: satAddU8(src.A, dst.A),
		}
	case BlendMultiply:
		return Color{
			R: mulU8(src.R, dst.R),
			G: mulU8(src.G, dst.G),
			B: mulU8(src.B, dst.B),
			A: mulU8(src.A, dst.A),
		}
	case BlendScreen:
		return Color{
			R: 255 - mulU8(255-src.R, 255-dst.R),
			G: 255 - mulU8(255-src.G, 255-dst.G),
			B: 255 - mulU8(255-src.B, 255-dst.B),
			A: 255 - mulU8(255-src.A, 255-dst.A),
		}
	default:
		return src
	}
}

// BlendAdvanced blends with float precision and an extra source opacity
// factor in [0,1] applied before compositing.
func BlendAdvanced(src, dst Color, mode BlendMode, opacity float32) Color {
	s := src.ToF()
	d := dst.ToF()
	s.A *= clampF(opacity)

	var out ColorF
	out.Space = SpaceRGB
	switch mode {
	case BlendAlpha:
		a := s.A
		inv := 1 - a
		out.R = s.R*a + d.R*inv
		out.G = s.G*a + d.G*inv
		out.B = s.B*a + d.B*inv
		out.A = a + d.A*inv
	case BlendAdd:
		out.R = clampF(s.R + d.R)
		out.G = clampF(s.G + d.G)
		out.B = clampF(s.B + d.B)
		out.A = clampF(s.A + d.A)
	case BlendMultiply:
		out.R = s.R * d.R
		out.G = s.G * d.G
		out.B = s.B * d.B
		out.A = s.A * d.A
	case BlendScreen:
		out.R = 1 - (1-s.R)*(1-d.R)
		out.G = 1 - (1-s.G)*(1-d.G)
		out.B = 1 - (1-s.B)*(1-d.B)
		out.A = 1 - (1-s.A)*(1-d.A)
	default:
		out = s
	}
	return out.ToColor()
}

// BlendOverlay multiplies dark regions and screens light ones, judged by
// the destination channel.
func BlendOverlay(src, dst Color) Color {
	s := src.ToF()
	d := dst.ToF()
	out := ColorF{A: s.A, Space: SpaceRGB}
	out.R = overlayChan(s.R, d.R)
	out.G = overlayChan(s.G, d.G)
	out.B = overlayChan(s.B, d.B)
	return out.ToColor()
}

// BlendHardLight is overlay with the roles of source and destination
// swapped: the source channel decides between multiply and screen.
func BlendHardLight(src, dst Color) Color {
	s := src.ToF()
	d := dst.ToF()
	out := ColorF{A: s.A, Space: SpaceRGB}
	out.R = overlayChan(d.R, s.R)
	out.G = overlayChan(d.G, s.G)
	out.B = overlayChan(d.B, s.B)
	return out.ToColor()
}

// BlendSoftLight darkens or lightens depending on the source channel.
func BlendSoftLight(src, dst Color) Color {
	s := src.ToF()
	d := dst.ToF()
	out := ColorF{A: s.A, Space: SpaceRGB}
	out.R = (1-2*s.R)*d.R*d.R + 2*s.R*d.R
	out.G = (1-2*s.G)*d.G*d.G + 2*s.G*d.G
	out.B = (1-2*s.B)*d.B*d.B + 2*s.B*d.B
	return out.ToColor()
}

// BlendColorDodge brightens the destination toward the source.
func BlendColorDodge(src, dst Color) Color {
	s := src.ToF()
	d := dst.ToF()
	out := ColorF{A: s.A, Space: SpaceRGB}
	out.R = dodgeChan(s.R, d.R)
	out.G = dodgeChan(s.G, d.G)
	out.B = dodgeChan(s.B, d.B)
	return out.ToColor()
}

// BlendColorBurn darkens the destination toward the source.
func BlendColorBurn(src, dst Color) Color {
	s := src.ToF()
	d := dst.ToF()
	out := ColorF{A: s.A, Space: SpaceRGB}
	out.R = burnChan(s.R, d.R)
	out.G = burnChan(s.G, d.G)
	out.B = burnChan(s.B, d.B)
	return out.ToColor()
}

// BlendDifference takes the absolute channel difference.
func BlendDifference(src, dst Color) Color {
	return Color{
		R: absDiffU8(src.R, dst.R),
		G: absDiffU8(src.G, dst.G),
		B: absDiffU8(src.B, dst.B),
		A: src.A,
	}
}

// BlendExclusion is a lower-contrast difference.
func BlendExclusion(src, dst Color) Color {
	s := src.ToF()
	d := dst.ToF()
	out := ColorF{A: s.A, Space: SpaceRGB}
	out.R = s.R + d.R - 2*s.R*d.R
	out.G = s.G + d.G - 2*s.G*d.G
	out.B = s.B + d.B - 2*s.B*d.B
	return out.ToColor()
}

func overlayChan(s, d float32) float32 {
	if d < 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}

func dodgeChan(s, d float32) float32 {
	if s >= 1 {
		return 1
	}
	return clampF(d / (1 - s))
}

func burnChan(s, d float32) float32 {
	if s <= 0 {
		return 0
	}
	return clampF(1 - (1-d)/s)
}

func satAddU8(a, b uint8) uint8 {
	sum := int32(a) + int32(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func mulU8(a, b uint8) uint8 {
	return uint8(int32(a) * int32(b) / 255)
}

func absDiffU8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
