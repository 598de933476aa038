package ugfx

import (
	"sync"

	"github.com/unhinged/ugfx/internal/platform"
)

// PlatformCaps describes the probed host capabilities. Computed once on
// first use and immutable afterward.
//
// Probes degrade rather than fail: a false or zero field means the
// capability was not verified present, not that it is verified absent.
type PlatformCaps struct {
	// HasAVX2 reports wide (256-bit) SIMD support.
	HasAVX2 bool
	// HasNEON reports narrow (128-bit) SIMD support.
	HasNEON bool
	// GPUVendor is the display adapter vendor name, or "Unknown".
	GPUVendor string
	// HasKMS reports whether kernel mode-setting device nodes exist.
	HasKMS bool
	// HasWayland reports whether a Wayland compositor protocol is
	// reachable (running session or client library present).
	HasWayland bool
	// PlatformName is the OS name, never empty.
	PlatformName string
}

var (
	capsOnce   sync.Once
	cachedCaps PlatformCaps
)

// Caps returns the platform capabilities. The probe runs once; the
// first call may do file and device inspection, subsequent calls return
// the cached value. Safe for concurrent first use.
func Caps() PlatformCaps {
	capsOnce.Do(func() {
		c := platform.Detect()
		cachedCaps = PlatformCaps{
			HasAVX2:      c.HasAVX2,
			HasNEON:      c.HasNEON,
			GPUVendor:    c.GPUVendor,
			HasKMS:       c.HasKMS,
			HasWayland:   c.HasWayland,
			PlatformName: c.PlatformName,
		}
		Logger().Debug("platform probe complete",
			"platform", c.PlatformName,
			"avx2", c.HasAVX2,
			"neon", c.HasNEON,
			"gpu_vendor", c.GPUVendor,
			"kms", c.HasKMS,
			"wayland", c.HasWayland)
	})
	return cachedCaps
}

// ShouldUseSIMD reports whether batch span operations are worthwhile:
// any SIMD extension, wide or narrow, is present.
func ShouldUseSIMD() bool {
	c := Caps()
	return c.HasAVX2 || c.HasNEON
}

// ShouldUseGPU reports whether a GPU path could work on this host: a
// mode-setting device exists and the vendor was identified. This
// library itself never renders on the GPU.
func ShouldUseGPU() bool {
	c := Caps()
	return c.HasKMS && c.GPUVendor != "Unknown"
}

// CacheLineSize returns the L1 data cache line size in bytes,
// defaulting to 64 when the OS query fails.
func CacheLineSize() int {
	return platform.CacheLineSize()
}

// PageSize returns the OS page size in bytes, defaulting to 4096 when
// the OS query fails.
func PageSize() int {
	return platform.PageSize()
}
