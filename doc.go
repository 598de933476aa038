// Package ugfx is a software 2D rendering core that draws directly to a
// Linux display through kernel mode-setting (KMS), with no windowing
// server in between.
//
// # Overview
//
// ugfx provides pixel surfaces, color and blending operations, integer
// rasterization primitives, an arena allocator for pixel memory, and a
// single full-screen window backed by a KMS dumb buffer. Rendering is
// CPU-only by design.
//
// # Quick Start
//
//	import "github.com/unhinged/ugfx"
//
//	if err := ugfx.Init(); err != nil {
//		log.Fatal(err)
//	}
//	defer ugfx.Shutdown()
//
//	s := ugfx.NewSurface(640, 480)
//	_ = s.Clear(ugfx.White)
//	_ = ugfx.DrawLine(s, 10, 10, 630, 470, ugfx.Red)
//	_ = s.SavePNG("out.png")
//
// To draw to the display instead, create the window and use its surface:
//
//	if err := ugfx.WindowCreate(0, 0); err != nil { // 0,0 = native mode
//		log.Fatal(err)
//	}
//	defer ugfx.WindowClose()
//	s := ugfx.WindowSurface()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, Color, Arena, draw primitives, window functions
//   - internal/platform: capability probing (SIMD, GPU vendor, KMS, Wayland)
//   - internal/kms: mode-setting device access and dumb-buffer framebuffers
//   - internal/wide: batch span operations written for auto-vectorization
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Pixels
// are packed 32-bit XRGB, matching the scanout format of KMS dumb
// buffers on little-endian machines.
//
// # Concurrency
//
// The library is synchronous and single-threaded by contract. Capability
// probing is guarded for concurrent first use; the window singleton and
// Arena are not internally synchronized and callers must serialize
// access themselves.
package ugfx

// Version information
const (
	// Version is the current version of the library
	Version = "1.0.0"

	// VersionMajor is the major version
	VersionMajor = 1

	// VersionMinor is the minor version
	VersionMinor = 0

	// VersionPatch is the patch version
	VersionPatch = 0
)
