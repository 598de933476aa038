package wide

import (
	"encoding/binary"
	"testing"
)

func pixelAt(buf []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(buf[i*4:])
}

func TestFillSpan(t *testing.T) {
	// Length chosen to exercise both the batch loop and the tail.
	buf := make([]byte, 19*4)
	FillSpan(buf, 0xffaabbcc)

	for i := 0; i < 19; i++ {
		if got := pixelAt(buf, i); got != 0xffaabbcc {
			t.Fatalf("pixel %d = %#x, want 0xffaabbcc", i, got)
		}
	}
}

func TestFillSpanEmpty(t *testing.T) {
	FillSpan(nil, 0x12345678) // must not panic
}

func TestBlendSpanOpaque(t *testing.T) {
	buf := make([]byte, 4*4)
	FillSpan(buf, 0xff000000)
	BlendSpan(buf, 0xffff0000)

	if got := pixelAt(buf, 2); got != 0xffff0000 {
		t.Errorf("opaque blend = %#x, want 0xffff0000", got)
	}
}

func TestBlendSpanTransparent(t *testing.T) {
	buf := make([]byte, 4*4)
	FillSpan(buf, 0xff336699)
	BlendSpan(buf, 0x00ffffff)

	if got := pixelAt(buf, 0); got != 0xff336699 {
		t.Errorf("transparent blend changed pixel: %#x", got)
	}
}

func TestBlendSpanHalf(t *testing.T) {
	buf := make([]byte, 4)
	FillSpan(buf, 0xff000000)       // opaque black
	BlendSpan(buf, 0x80ffffff)      // half-transparent white
	got := unpackChan(pixelAt(buf, 0), 16)
	if got < 126 || got > 130 {
		t.Errorf("half blend red = %d, want ~128", got)
	}
	if a := unpackChan(pixelAt(buf, 0), 24); a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
}

func TestTintSpan(t *testing.T) {
	buf := make([]byte, 4)
	FillSpan(buf, 0xffffffff)
	TintSpan(buf, 0xff808080)

	if got := unpackChan(pixelAt(buf, 0), 8); got != 128 {
		t.Errorf("tinted green = %d, want 128", got)
	}
}

func unpackChan(p uint32, shift uint) uint32 {
	return (p >> shift) & 0xff
}

func BenchmarkFillSpan(b *testing.B) {
	buf := make([]byte, 1920*4)
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		FillSpan(buf, 0xff204060)
	}
}

func BenchmarkBlendSpan(b *testing.B) {
	buf := make([]byte, 1920*4)
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		BlendSpan(buf, 0x80204060)
	}
}
