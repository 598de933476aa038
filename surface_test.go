package ugfx

import (
	"image"
	"image/color"
	"testing"
)

func TestNewSurfaceInvalidDims(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, -1}, {-5, 10}} {
		if s := NewSurface(dims[0], dims[1]); s != nil {
			t.Errorf("NewSurface(%d, %d) = %v, want nil", dims[0], dims[1], s)
		}
	}
}

func TestNewSurfaceHeap(t *testing.T) {
	s := NewSurface(17, 9)
	if s == nil {
		t.Fatal("NewSurface failed")
	}
	defer s.Destroy()

	if s.Width() != 17 || s.Height() != 9 {
		t.Errorf("dims = %dx%d", s.Width(), s.Height())
	}
	if s.Stride() != 17 {
		t.Errorf("stride = %d, want width", s.Stride())
	}
	if s.ByteSize() != 17*9*4 {
		t.Errorf("ByteSize = %d, want %d", s.ByteSize(), 17*9*4)
	}
}

func TestSurfaceClear(t *testing.T) {
	s := NewSurface(33, 7)
	if s == nil {
		t.Fatal("NewSurface failed")
	}
	defer s.Destroy()

	if err := s.Clear(Red); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, pt := range [][2]int{{0, 0}, {32, 0}, {0, 6}, {32, 6}, {16, 3}} {
		if got := s.PixelAt(pt[0], pt[1]); got != Red {
			t.Errorf("PixelAt(%d, %d) = %v, want red", pt[0], pt[1], got)
		}
	}
}

func TestSurfaceClearNil(t *testing.T) {
	var s *Surface
	if err := s.Clear(Red); err != ErrInvalidParam {
		t.Errorf("nil Clear = %v, want ErrInvalidParam", err)
	}

	d := NewSurface(4, 4)
	d.pix = nil
	if err := d.Clear(Red); err != ErrInvalidParam {
		t.Errorf("released Clear = %v, want ErrInvalidParam", err)
	}
}

func TestSetAndGetPixel(t *testing.T) {
	s := NewSurface(8, 8)
	defer s.Destroy()

	s.SetPixel(3, 4, Magenta)
	if got := s.PixelAt(3, 4); got != Magenta {
		t.Errorf("PixelAt = %v, want magenta", got)
	}

	// Out-of-bounds writes and reads are silent.
	s.SetPixel(-1, 0, Red)
	s.SetPixel(8, 0, Red)
	s.SetPixel(0, 8, Red)
	if got := s.PixelAt(-1, 0); got != (Color{}) {
		t.Errorf("out-of-bounds PixelAt = %v, want zero", got)
	}
	if got := s.PixelAt(0, 0); got != (Color{}) {
		t.Errorf("corner dirtied by out-of-bounds write: %v", got)
	}
}

func TestBlendPixel(t *testing.T) {
	s := NewSurface(4, 4)
	defer s.Destroy()

	_ = s.Clear(RGBA(0, 0, 255, 255))
	s.BlendPixel(1, 1, RGBA(255, 0, 0, 128))
	got := s.PixelAt(1, 1)
	if got.R < 127 || got.R > 129 || got.B < 126 || got.B > 128 {
		t.Errorf("blended pixel = %v, want ~(128, 0, 127)", got)
	}

	s.BlendPixel(2, 2, RGBA(255, 0, 0, 255))
	if got := s.PixelAt(2, 2); got != RGBA(255, 0, 0, 255) {
		t.Errorf("opaque blend = %v, want src", got)
	}
}

func TestSurfaceWithArena(t *testing.T) {
	a, err := NewArena(1 << 16)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	defer a.Destroy()

	s := NewSurface(32, 32, WithArena(a))
	if s == nil {
		t.Fatal("arena-backed NewSurface failed")
	}
	if a.InUse() != 32*32*4 {
		t.Errorf("arena InUse = %d, want %d", a.InUse(), 32*32*4)
	}

	_ = s.Clear(Green)
	if got := s.PixelAt(31, 31); got != Green {
		t.Errorf("arena surface pixel = %v, want green", got)
	}

	s.Destroy()
	if a.InUse() != 0 {
		t.Errorf("arena InUse after Destroy = %d, want 0", a.InUse())
	}
}

func TestSurfaceWithArenaExhausted(t *testing.T) {
	a, err := NewArena(arenaMinCapacity)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	defer a.Destroy()

	if s := NewSurface(100, 100, WithArena(a)); s != nil {
		t.Error("NewSurface succeeded beyond arena capacity")
	}
}

func TestSurfaceImageInterfaces(t *testing.T) {
	s := NewSurface(5, 5)
	defer s.Destroy()

	if got := s.Bounds(); got != image.Rect(0, 0, 5, 5) {
		t.Errorf("Bounds = %v", got)
	}

	s.SetPixel(2, 2, Cyan)
	r, g, b, a := s.At(2, 2).RGBA()
	if r != 0 || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("At(2,2).RGBA() = %d,%d,%d,%d", r, g, b, a)
	}

	img := s.ToImage()
	if img.Bounds() != s.Bounds() {
		t.Errorf("ToImage bounds = %v", img.Bounds())
	}
	ir, ig, ib, _ := img.At(2, 2).RGBA()
	if ir != 0 || ig != 0xffff || ib != 0xffff {
		t.Errorf("ToImage pixel = %d,%d,%d", ir, ig, ib)
	}
}

func TestTranslucentImageRoundTrip(t *testing.T) {
	s := NewSurface(4, 4)
	defer s.Destroy()

	c := RGBA(200, 100, 50, 128)
	s.SetPixel(1, 1, c)

	img := s.ToImage()
	got := img.NRGBAAt(1, 1)
	if got.R != c.R || got.G != c.G || got.B != c.B || got.A != c.A {
		t.Errorf("ToImage translucent pixel = %v, want %v", got, c)
	}

	back := SurfaceFromImage(img)
	defer back.Destroy()
	if got := back.PixelAt(1, 1); got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestFromColorStraightAlpha(t *testing.T) {
	c := RGBA(200, 100, 50, 128)
	if got := FromColor(c.Color()); got != c {
		t.Errorf("FromColor(NRGBA) = %v, want %v", got, c)
	}

	// Premultiplied input must be unpremultiplied, not shifted through.
	got := FromColor(color.RGBA{R: 100, G: 50, B: 25, A: 128})
	if got.A != 128 {
		t.Errorf("A = %d, want 128", got.A)
	}
	if got.R < 198 || got.R > 201 {
		t.Errorf("R = %d, want ~199", got.R)
	}
	if got.G < 98 || got.G > 101 {
		t.Errorf("G = %d, want ~100", got.G)
	}
}

func TestBorrowedSurfaceDestroyKeepsPixels(t *testing.T) {
	backing := make([]byte, 8*4*4)
	s := newBorrowedSurface(backing, 8, 4, 8)
	s.SetPixel(0, 0, Red)
	s.Destroy()
	if backing[2] != 255 {
		t.Error("borrowed Destroy dropped the backing write")
	}
}
