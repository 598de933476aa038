package wide

import "encoding/binary"

// batch is the number of pixels processed per unrolled iteration.
const batch = 8

// FillSpan writes the packed pixel value into every 4-byte cell of dst.
// len(dst) must be a multiple of 4; extra trailing bytes are ignored.
func FillSpan(dst []byte, pixel uint32) {
	n := len(dst) / 4

	// Splat one batch, then copy-double it across the span. This keeps
	// the inner loop a plain word store the compiler can vectorize.
	var chunk [batch * 4]byte
	for i := 0; i < batch; i++ {
		binary.LittleEndian.PutUint32(chunk[i*4:], pixel)
	}

	i := 0
	for ; i+batch <= n; i += batch {
		copy(dst[i*4:(i+batch)*4], chunk[:])
	}
	for ; i < n; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:], pixel)
	}
}

// BlendSpan composites a solid source color over every pixel of dst
// using integer source-over with the usual /255 approximation
// ((x*a + 127) * 257 >> 16). A fully opaque source degenerates to
// FillSpan; a fully transparent one is a no-op.
func BlendSpan(dst []byte, pixel uint32) {
	a := uint32(pixel >> 24)
	if a == 255 {
		FillSpan(dst, pixel)
		return
	}
	if a == 0 {
		return
	}

	sr := (pixel >> 16) & 0xff
	sg := (pixel >> 8) & 0xff
	sb := pixel & 0xff
	inv := 255 - a

	// Premultiplied source contribution is constant across the span.
	pr := sr * a
	pg := sg * a
	pb := sb * a

	n := len(dst) / 4
	for i := 0; i < n; i++ {
		p := binary.LittleEndian.Uint32(dst[i*4:])
		dr := (p >> 16) & 0xff
		dg := (p >> 8) & 0xff
		db := p & 0xff
		da := p >> 24

		r := div255(pr + dr*inv)
		g := div255(pg + dg*inv)
		b := div255(pb + db*inv)
		oa := a + div255(da*inv)

		binary.LittleEndian.PutUint32(dst[i*4:], oa<<24|r<<16|g<<8|b)
	}
}

// TintSpan multiplies every pixel channel by the corresponding channel
// of the packed tint color.
func TintSpan(dst []byte, tint uint32) {
	tr := (tint >> 16) & 0xff
	tg := (tint >> 8) & 0xff
	tb := tint & 0xff
	ta := tint >> 24

	n := len(dst) / 4
	for i := 0; i < n; i++ {
		p := binary.LittleEndian.Uint32(dst[i*4:])
		r := div255(((p >> 16) & 0xff) * tr)
		g := div255(((p >> 8) & 0xff) * tg)
		b := div255((p & 0xff) * tb)
		a := div255((p >> 24) * ta)
		binary.LittleEndian.PutUint32(dst[i*4:], a<<24|r<<16|g<<8|b)
	}
}

// div255 divides by 255 with rounding using the 257-multiply trick.
func div255(x uint32) uint32 {
	return ((x + 127) * 257) >> 16
}
