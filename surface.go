package ugfx

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/unhinged/ugfx/internal/wide"
)

// Surface is a rectangular pixel buffer: packed 32-bit XRGB pixels with
// a row stride that may exceed the logical width due to hardware
// padding. Invariant: stride*height*4 <= ByteSize().
//
// A Surface is exclusively owned by its creator. Arena-backed surfaces
// release their pixels on Destroy; surfaces borrowed from the window
// share the mapped framebuffer and must never outlive it.
type Surface struct {
	pix      []byte
	width    int
	height   int
	stride   int // pixels per row
	arena    *Arena
	borrowed bool
}

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*surfaceOptions)

type surfaceOptions struct {
	arena *Arena
}

// WithArena allocates the pixel buffer from the given arena instead of
// the Go heap. Creation fails (returns nil) when the arena cannot
// satisfy the allocation.
func WithArena(a *Arena) SurfaceOption {
	return func(o *surfaceOptions) {
		o.arena = a
	}
}

// NewSurface creates a surface with the given dimensions. It returns
// nil for non-positive dimensions or when the backing allocation fails.
func NewSurface(width, height int, opts ...SurfaceOption) *Surface {
	if width <= 0 || height <= 0 {
		return nil
	}

	var o surfaceOptions
	for _, opt := range opts {
		opt(&o)
	}

	size := width * height * 4
	var pix []byte
	if o.arena != nil {
		// Cache-line alignment keeps row spans from straddling lines.
		pix = o.arena.Alloc(size, 64)
		if pix == nil {
			return nil
		}
	} else {
		pix = make([]byte, size)
	}

	return &Surface{
		pix:    pix,
		width:  width,
		height: height,
		stride: width,
		arena:  o.arena,
	}
}

// newBorrowedSurface wraps externally owned pixel memory, typically the
// mapped framebuffer. stride is in pixels.
func newBorrowedSurface(pix []byte, width, height, stride int) *Surface {
	return &Surface{
		pix:      pix,
		width:    width,
		height:   height,
		stride:   stride,
		borrowed: true,
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Stride returns the number of pixels per row, which may exceed Width.
func (s *Surface) Stride() int { return s.stride }

// ByteSize returns the size of the backing pixel buffer in bytes.
func (s *Surface) ByteSize() int { return len(s.pix) }

// Pix returns the raw packed pixel buffer. Rows are Stride() pixels
// apart; only the first Width() pixels of each row are meaningful.
func (s *Surface) Pix() []byte { return s.pix }

// Destroy releases an arena-backed surface's pixels. It is a no-op for
// heap-backed surfaces (the GC owns them) and for surfaces borrowed
// from the window, which are released by WindowClose.
func (s *Surface) Destroy() {
	if s == nil || s.borrowed {
		return
	}
	if s.arena != nil {
		s.arena.Free(s.pix)
		s.arena = nil
	}
	s.pix = nil
	s.width = 0
	s.height = 0
	s.stride = 0
}

// Clear writes the color to every pixel.
func (s *Surface) Clear(c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	p := c.packed()
	if s.stride == s.width {
		wide.FillSpan(s.pix[:s.width*s.height*4], p)
		return nil
	}
	for y := 0; y < s.height; y++ {
		wide.FillSpan(s.row(y), p)
	}
	return nil
}

// row returns the drawable bytes of row y (width pixels, not stride).
func (s *Surface) row(y int) []byte {
	off := y * s.stride * 4
	return s.pix[off : off+s.width*4]
}

// span returns the bytes of row y between x0 and x1 inclusive.
// The caller must have clipped the coordinates already.
func (s *Surface) span(x0, x1, y int) []byte {
	off := (y*s.stride + x0) * 4
	return s.pix[off : off+(x1-x0+1)*4]
}

// SetPixel sets a single pixel. Out-of-bounds writes are ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if s == nil || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	binary.LittleEndian.PutUint32(s.pix[(y*s.stride+x)*4:], c.packed())
}

// BlendPixel composites c over the existing pixel with the "over"
// operator. Out-of-bounds writes are ignored.
func (s *Surface) BlendPixel(x, y int, c Color) {
	if s == nil || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	off := (y*s.stride + x) * 4
	dst := unpack(binary.LittleEndian.Uint32(s.pix[off:]))
	binary.LittleEndian.PutUint32(s.pix[off:], AlphaBlend(c, dst).packed())
}

// PixelAt returns the pixel at (x, y), or the zero Color out of bounds.
func (s *Surface) PixelAt(x, y int) Color {
	if s == nil || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Color{}
	}
	return unpack(binary.LittleEndian.Uint32(s.pix[(y*s.stride+x)*4:]))
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.PixelAt(x, y).Color()
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	if s == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
