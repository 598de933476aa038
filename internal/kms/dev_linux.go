package kms

import (
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Device is an open mode-setting device node.
type Device struct {
	fd       int
	path     string
	isMaster bool
	log      *slog.Logger
}

// cardPaths are the device nodes scanned in order. Render nodes
// (renderD*) are excluded: they cannot mode-set.
var cardPaths = []string{
	"/dev/dri/card0",
	"/dev/dri/card1",
	"/dev/dri/card2",
	"/dev/dri/card3",
}

// Open opens the first available card node and tries to become DRM
// master. Master may be refused while a compositor holds the device;
// that is not fatal for buffer creation, only for SetCRTC, which will
// then report its own error.
func Open(log *slog.Logger) (*Device, error) {
	for _, path := range cardPaths {
		fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
		if err != nil {
			continue
		}
		d := &Device{fd: fd, path: path, log: log}
		d.isMaster = d.ioctl(reqSetMaster, nil) == nil
		log.Debug("opened mode-setting device",
			"path", path, "master", d.isMaster)
		return d, nil
	}
	return nil, fmt.Errorf("%w: no card node under /dev/dri", ErrNotSupported)
}

// Path returns the device node path.
func (d *Device) Path() string { return d.path }

// IsMaster reports whether the device granted DRM master.
func (d *Device) IsMaster() bool { return d.isMaster }

// Close drops master if held and closes the device node. Safe to call
// more than once.
func (d *Device) Close() {
	if d == nil || d.fd < 0 {
		return
	}
	if d.isMaster {
		_ = d.ioctl(reqDropMaster, nil)
		d.isMaster = false
	}
	_ = unix.Close(d.fd)
	d.fd = -1
}

// ioctl issues a request with an optional argument struct.
func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL,
		uintptr(d.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// FindOutput enumerates connectors and returns the first connected one
// that reports at least one mode, with its driving controller resolved.
func (d *Device) FindOutput() (*Output, error) {
	var res cardRes
	if err := d.ioctl(reqGetResources, unsafe.Pointer(&res)); err != nil {
		return nil, fmt.Errorf("%w: get resources: %v", ErrNotSupported, err)
	}
	if res.CountConnectors == 0 {
		return nil, fmt.Errorf("%w: device has no connectors", ErrNotSupported)
	}

	connectors := make([]uint32, res.CountConnectors)
	crtcs := make([]uint32, max(res.CountCRTCs, 1))
	res = cardRes{
		ConnectorIDPtr:  uint64(uintptr(unsafe.Pointer(&connectors[0]))),
		CountConnectors: uint32(len(connectors)),
		CRTCIDPtr:       uint64(uintptr(unsafe.Pointer(&crtcs[0]))),
		CountCRTCs:      uint32(len(crtcs)),
	}
	if err := d.ioctl(reqGetResources, unsafe.Pointer(&res)); err != nil {
		return nil, fmt.Errorf("%w: get resources: %v", ErrNotSupported, err)
	}
	if res.CountConnectors < uint32(len(connectors)) {
		connectors = connectors[:res.CountConnectors]
	}

	for _, id := range connectors {
		out, err := d.probeConnector(id, crtcs[:min(res.CountCRTCs, uint32(len(crtcs)))])
		if err != nil {
			d.log.Debug("connector probe failed", "connector", id, "error", err)
			continue
		}
		if out != nil {
			d.log.Info("selected output",
				"connector", out.ConnectorID, "crtc", out.CRTCID, "mode", out.Name)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: no connected output with modes", ErrNotSupported)
}

// probeConnector returns the Output for a connector, or nil if it is
// disconnected or has no modes.
func (d *Device) probeConnector(id uint32, crtcs []uint32) (*Output, error) {
	conn := getConnector{ConnectorID: id}
	if err := d.ioctl(reqGetConnector, unsafe.Pointer(&conn)); err != nil {
		return nil, err
	}
	if conn.Connection != connected || conn.CountModes == 0 {
		return nil, nil
	}

	modes := make([]modeInfo, conn.CountModes)
	conn = getConnector{
		ConnectorID: id,
		ModesPtr:    uint64(uintptr(unsafe.Pointer(&modes[0]))),
		CountModes:  uint32(len(modes)),
	}
	if err := d.ioctl(reqGetConnector, unsafe.Pointer(&conn)); err != nil {
		return nil, err
	}
	if conn.Connection != connected || conn.CountModes == 0 {
		return nil, nil
	}

	// The kernel sorts modes preferred-first.
	mode := modes[0]

	crtcID := uint32(0)
	if conn.EncoderID != 0 {
		enc := getEncoder{EncoderID: conn.EncoderID}
		if err := d.ioctl(reqGetEncoder, unsafe.Pointer(&enc)); err == nil {
			crtcID = enc.CRTCID
		}
	}
	if crtcID == 0 && len(crtcs) > 0 {
		crtcID = crtcs[0]
	}
	if crtcID == 0 {
		return nil, nil
	}

	return &Output{
		ConnectorID: id,
		CRTCID:      crtcID,
		Width:       uint32(mode.HDisplay),
		Height:      uint32(mode.VDisplay),
		Name:        modeName(mode.Name),
		mode:        mode,
	}, nil
}

// CreateFramebuffer allocates a dumb buffer of the given size, registers
// it as a framebuffer object, and maps it into the process. On any
// failure the partially acquired resources are released before
// returning.
func (d *Device) CreateFramebuffer(width, height uint32) (*Framebuffer, error) {
	creq := createDumb{Width: width, Height: height, BPP: 32}
	if err := d.ioctl(reqCreateDumb, unsafe.Pointer(&creq)); err != nil {
		return nil, fmt.Errorf("%w: create dumb buffer: %v", ErrNotSupported, err)
	}

	fcmd := fbCmd{
		Width:  width,
		Height: height,
		Pitch:  creq.Pitch,
		BPP:    32,
		Depth:  24,
		Handle: creq.Handle,
	}
	if err := d.ioctl(reqAddFB, unsafe.Pointer(&fcmd)); err != nil {
		d.destroyDumb(creq.Handle)
		return nil, fmt.Errorf("%w: add framebuffer: %v", ErrNotSupported, err)
	}

	mreq := mapDumb{Handle: creq.Handle}
	if err := d.ioctl(reqMapDumb, unsafe.Pointer(&mreq)); err != nil {
		d.removeFB(fcmd.FBID)
		d.destroyDumb(creq.Handle)
		return nil, fmt.Errorf("%w: map dumb buffer: %v", ErrNoMemory, err)
	}

	pix, err := unix.Mmap(d.fd, int64(mreq.Offset), int(creq.Size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		d.removeFB(fcmd.FBID)
		d.destroyDumb(creq.Handle)
		return nil, fmt.Errorf("%w: mmap framebuffer: %v", ErrNoMemory, err)
	}

	d.log.Debug("framebuffer mapped",
		"width", width, "height", height, "pitch", creq.Pitch, "size", creq.Size)

	return &Framebuffer{
		Handle: creq.Handle,
		FBID:   fcmd.FBID,
		Pitch:  creq.Pitch,
		Size:   creq.Size,
		Pix:    pix,
		width:  width,
		height: height,
	}, nil
}

// SetCRTC binds the framebuffer to the output's controller, making it
// the scanout source.
func (d *Device) SetCRTC(out *Output, fb *Framebuffer) error {
	connectors := []uint32{out.ConnectorID}
	crtc := crtcInfo{
		SetConnectorsPtr: uint64(uintptr(unsafe.Pointer(&connectors[0]))),
		CountConnectors:  1,
		CRTCID:           out.CRTCID,
		FBID:             fb.FBID,
		ModeValid:        1,
		Mode:             out.mode,
	}
	if err := d.ioctl(reqSetCRTC, unsafe.Pointer(&crtc)); err != nil {
		return fmt.Errorf("%w: set CRTC: %v", ErrNotSupported, err)
	}
	return nil
}

// DestroyFramebuffer unmaps the buffer and releases the framebuffer
// object and dumb buffer. The mapping is removed before anything else
// so no writable view of freed device memory survives.
func (d *Device) DestroyFramebuffer(fb *Framebuffer) {
	if fb == nil {
		return
	}
	if fb.Pix != nil {
		if err := unix.Munmap(fb.Pix); err != nil {
			d.log.Warn("framebuffer munmap failed", "error", err)
		}
		fb.Pix = nil
	}
	if fb.FBID != 0 {
		d.removeFB(fb.FBID)
		fb.FBID = 0
	}
	if fb.Handle != 0 {
		d.destroyDumb(fb.Handle)
		fb.Handle = 0
	}
}

func (d *Device) removeFB(fbID uint32) {
	id := fbID
	_ = d.ioctl(reqRmFB, unsafe.Pointer(&id))
}

func (d *Device) destroyDumb(handle uint32) {
	dreq := destroyDumb{Handle: handle}
	_ = d.ioctl(reqDestroyDumb, unsafe.Pointer(&dreq))
}
