package ugfx

import "testing"

func TestCaps(t *testing.T) {
	caps := Caps()
	if caps.PlatformName == "" {
		t.Error("PlatformName is empty")
	}
	if caps.GPUVendor == "" {
		t.Error("GPUVendor is empty")
	}
	if again := Caps(); again != caps {
		t.Errorf("second probe differs: %+v vs %+v", again, caps)
	}
}

func TestShouldUseGPUConsistency(t *testing.T) {
	caps := Caps()
	if !caps.HasKMS && ShouldUseGPU() {
		t.Error("ShouldUseGPU true without a mode-setting device")
	}
	if caps.GPUVendor == "Unknown" && ShouldUseGPU() {
		t.Error("ShouldUseGPU true with unknown vendor")
	}
}

func TestShouldUseSIMDConsistency(t *testing.T) {
	caps := Caps()
	if got := ShouldUseSIMD(); got != (caps.HasAVX2 || caps.HasNEON) {
		t.Errorf("ShouldUseSIMD = %v, caps = %+v", got, caps)
	}
}

func TestMemoryGeometry(t *testing.T) {
	cl := CacheLineSize()
	if cl <= 0 || cl&(cl-1) != 0 {
		t.Errorf("CacheLineSize = %d, want positive power of two", cl)
	}
	ps := PageSize()
	if ps <= 0 || ps&(ps-1) != 0 {
		t.Errorf("PageSize = %d, want positive power of two", ps)
	}
	if ps < cl {
		t.Errorf("page size %d smaller than cache line %d", ps, cl)
	}
}
