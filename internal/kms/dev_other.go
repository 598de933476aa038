//go:build !linux

package kms

import (
	"fmt"
	"log/slog"
)

// Device is a placeholder on targets without kernel mode-setting.
type Device struct{}

// Open always fails off Linux; the off-screen surface path is the only
// rendering option there.
func Open(log *slog.Logger) (*Device, error) {
	return nil, fmt.Errorf("%w: kernel mode-setting requires Linux", ErrNotSupported)
}

func (d *Device) Path() string    { return "" }
func (d *Device) IsMaster() bool  { return false }
func (d *Device) Close()          {}

func (d *Device) FindOutput() (*Output, error) {
	return nil, ErrNotSupported
}

func (d *Device) CreateFramebuffer(width, height uint32) (*Framebuffer, error) {
	return nil, ErrNotSupported
}

func (d *Device) SetCRTC(out *Output, fb *Framebuffer) error {
	return ErrNotSupported
}

func (d *Device) DestroyFramebuffer(fb *Framebuffer) {}
