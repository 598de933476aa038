package ugfx

import (
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// ToImage converts the surface to an image.NRGBA. Surface pixels carry
// straight (non-premultiplied) alpha, which is exactly NRGBA's layout.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.PixelAt(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}

// SurfaceFromImage creates a heap-backed surface holding a copy of img.
func SurfaceFromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	s := NewSurface(bounds.Dx(), bounds.Dy())
	if s == nil {
		return nil
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return s
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.ToImage())
}

// DrawImage copies img onto the surface with its top-left corner at
// (x, y), clipping to the surface bounds.
func (s *Surface) DrawImage(img image.Image, x, y int) error {
	if s == nil || s.pix == nil || img == nil {
		return ErrInvalidParam
	}
	r := img.Bounds().Sub(img.Bounds().Min).Add(image.Pt(x, y))
	xdraw.Draw(s, r, img, img.Bounds().Min, xdraw.Src)
	return nil
}

// DrawImageScaled draws img scaled into the destination rectangle using
// nearest-neighbor interpolation.
func (s *Surface) DrawImageScaled(img image.Image, dst Rect) error {
	if s == nil || s.pix == nil || img == nil || dst.W <= 0 || dst.H <= 0 {
		return ErrInvalidParam
	}
	r := image.Rect(dst.X, dst.Y, dst.X+dst.W, dst.Y+dst.H)
	xdraw.NearestNeighbor.Scale(s, r, img, img.Bounds(), xdraw.Src, nil)
	return nil
}
