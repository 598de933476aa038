package ugfx

import (
	"errors"
	"fmt"

	"github.com/unhinged/ugfx/internal/kms"
)

// window holds the singleton display output state. The library drives
// at most one display at a time; a zero value means no window is open.
type window struct {
	dev    *kms.Device
	out    *kms.Output
	fb     *kms.Framebuffer
	surf   *Surface
	width  uint32
	height uint32
}

var win window

// WindowCreate opens the display: it acquires a mode-setting device,
// picks the first connected output, allocates a scanout framebuffer and
// binds it to the output's controller. A zero width or height selects
// the output's native mode size.
//
// Calling it while a window is already open succeeds and leaves the
// open window untouched. On hosts without a usable mode-setting device
// it returns ErrPlatformNotSupported; rendering to off-screen surfaces
// still works there.
func WindowCreate(width, height uint32) error {
	if !initialized {
		return fmt.Errorf("%w: call Init before WindowCreate", ErrNotInitialized)
	}
	if win.dev != nil {
		return nil
	}

	dev, err := kms.Open(Logger())
	if err != nil {
		return mapKMSErr(err)
	}

	out, err := dev.FindOutput()
	if err != nil {
		dev.Close()
		return mapKMSErr(err)
	}

	if width == 0 {
		width = out.Width
	}
	if height == 0 {
		height = out.Height
	}

	fb, err := dev.CreateFramebuffer(width, height)
	if err != nil {
		dev.Close()
		return mapKMSErr(err)
	}

	if err := dev.SetCRTC(out, fb); err != nil {
		dev.DestroyFramebuffer(fb)
		dev.Close()
		return mapKMSErr(err)
	}

	win = window{
		dev:    dev,
		out:    out,
		fb:     fb,
		surf:   newBorrowedSurface(fb.Pix, int(width), int(height), int(fb.Pitch/4)),
		width:  width,
		height: height,
	}
	Logger().Info("window created",
		"width", width, "height", height, "mode", out.Name, "device", dev.Path())
	return nil
}

// WindowSurface returns the surface backed by the scanout framebuffer,
// or nil when no window is open. Pixels written to it are live on the
// display; the surface must not be used after WindowClose.
func WindowSurface() *Surface {
	return win.surf
}

// WindowPresent marks the end of a frame. The scanout framebuffer is
// mapped directly, so pixels are visible as soon as they are written
// and there is nothing to flush. Kept as an explicit frame boundary so
// callers are ready for a backend that does need one.
func WindowPresent() {}

// WindowClose unbinds and releases the framebuffer and closes the
// device. Safe to call when no window is open and safe to call twice.
func WindowClose() {
	if win.dev == nil {
		return
	}
	win.dev.DestroyFramebuffer(win.fb)
	win.dev.Close()
	win = window{}
	Logger().Info("window closed")
}

// WindowIsOpen reports whether a window is currently open.
func WindowIsOpen() bool {
	return win.dev != nil
}

// WindowSize returns the open window's dimensions, or zeros when no
// window is open.
func WindowSize() (width, height uint32) {
	return win.width, win.height
}

// mapKMSErr translates device-layer failures into the public error
// taxonomy while keeping the underlying detail in the message.
func mapKMSErr(err error) error {
	switch {
	case errors.Is(err, kms.ErrNoMemory):
		return fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	case errors.Is(err, kms.ErrNotSupported):
		return fmt.Errorf("%w: %v", ErrPlatformNotSupported, err)
	default:
		return err
	}
}
