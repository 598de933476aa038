// Package wide provides batch span operations over packed 32-bit pixels.
//
// The functions here are the hot inner loops of surface clears,
// horizontal span fills, and solid-color compositing. They are written
// as simple loops over fixed-size chunks so the Go compiler can
// auto-vectorize them on architectures with SIMD support (SSE/AVX,
// NEON); whether the host actually has those units is reported by
// internal/platform, not decided here.
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - No assembly and no per-architecture source files
//   - Keep functions small and inlineable
//   - Benchmarks verify the batch paths beat the scalar ones
//
// Pixels are packed XRGB8888 little-endian, four bytes per pixel, the
// same layout the KMS dumb buffer scans out.
package wide
