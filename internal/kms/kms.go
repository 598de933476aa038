// Package kms opens the kernel mode-setting device, discovers a
// connected output and its controller, and manages CPU-writable dumb
// framebuffers bound to that output.
//
// The package talks to /dev/dri/card* directly with ioctls; there is no
// libdrm dependency. Request codes are computed from the wire structs
// with the kernel's _IOC formula, so a struct layout mistake changes
// the request code and fails loudly instead of corrupting memory.
package kms

import "errors"

// Sentinel errors. The caller maps these onto its own taxonomy.
var (
	// ErrNotSupported means no usable device, output, or controller.
	ErrNotSupported = errors.New("kms: no usable mode-setting device")

	// ErrNoMemory means a buffer allocation or mapping failed.
	ErrNoMemory = errors.New("kms: framebuffer allocation failed")
)

// Output describes a connected display output and the controller that
// scans out to it.
type Output struct {
	ConnectorID uint32
	CRTCID      uint32
	Width       uint32 // native mode width
	Height      uint32 // native mode height
	Name        string // native mode name, e.g. "1920x1080"

	mode modeInfo
}

// Framebuffer is a mapped dumb buffer registered with the device.
type Framebuffer struct {
	Handle uint32
	FBID   uint32
	Pitch  uint32 // bytes per row
	Size   uint64
	Pix    []byte // mapped pixel memory

	width  uint32
	height uint32
}
