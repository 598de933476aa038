package kms

import "unsafe"

// Wire structs, mirroring the kernel's drm_mode_* layouts field for
// field. Field order and widths matter: the ioctl request codes below
// embed unsafe.Sizeof of these structs, and the kernel copies exactly
// that many bytes in and out.

type modeInfo struct {
	Clock      uint32
	HDisplay   uint16
	HSyncStart uint16
	HSyncEnd   uint16
	HTotal     uint16
	HSkew      uint16
	VDisplay   uint16
	VSyncStart uint16
	VSyncEnd   uint16
	VTotal     uint16
	VScan      uint16
	VRefresh   uint32
	Flags      uint32
	Type       uint32
	Name       [32]byte
}

type cardRes struct {
	FBIDPtr         uint64
	CRTCIDPtr       uint64
	ConnectorIDPtr  uint64
	EncoderIDPtr    uint64
	CountFBs        uint32
	CountCRTCs      uint32
	CountConnectors uint32
	CountEncoders   uint32
	MinWidth        uint32
	MaxWidth        uint32
	MinHeight       uint32
	MaxHeight       uint32
}

type getConnector struct {
	EncodersPtr     uint64
	ModesPtr        uint64
	PropsPtr        uint64
	PropValuesPtr   uint64
	CountModes      uint32
	CountProps      uint32
	CountEncoders   uint32
	EncoderID       uint32
	ConnectorID     uint32
	ConnectorType   uint32
	ConnectorTypeID uint32
	Connection      uint32
	MmWidth         uint32
	MmHeight        uint32
	Subpixel        uint32
	Pad             uint32
}

type getEncoder struct {
	EncoderID      uint32
	EncoderType    uint32
	CRTCID         uint32
	PossibleCRTCs  uint32
	PossibleClones uint32
}

type crtcInfo struct {
	SetConnectorsPtr uint64
	CountConnectors  uint32
	CRTCID           uint32
	FBID             uint32
	X                uint32
	Y                uint32
	GammaSize        uint32
	ModeValid        uint32
	Mode             modeInfo
}

type fbCmd struct {
	FBID   uint32
	Width  uint32
	Height uint32
	Pitch  uint32
	BPP    uint32
	Depth  uint32
	Handle uint32
}

type createDumb struct {
	Height uint32
	Width  uint32
	BPP    uint32
	Flags  uint32
	Handle uint32
	Pitch  uint32
	Size   uint64
}

type mapDumb struct {
	Handle uint32
	Pad    uint32
	Offset uint64
}

type destroyDumb struct {
	Handle uint32
}

// connected is the drm_mode_get_connector connection value for an
// attached display.
const connected = 1

// _IOC direction bits and the DRM ioctl type byte ('d').
const (
	iocWrite    = 1
	iocRead     = 2
	drmIoctlTyp = 'd'
)

// ioc builds an ioctl request number the way the kernel's _IOC macro
// does: dir<<30 | size<<16 | type<<8 | nr.
func ioc(dir, nr, size uintptr) uintptr {
	return dir<<30 | size<<16 | drmIoctlTyp<<8 | nr
}

func drmIO(nr uintptr) uintptr {
	return ioc(0, nr, 0)
}

func drmIOWR(nr, size uintptr) uintptr {
	return ioc(iocRead|iocWrite, nr, size)
}

// DRM ioctl request codes.
var (
	reqSetMaster    = drmIO(0x1e)
	reqDropMaster   = drmIO(0x1f)
	reqGetResources = drmIOWR(0xa0, unsafe.Sizeof(cardRes{}))
	reqGetCRTC      = drmIOWR(0xa1, unsafe.Sizeof(crtcInfo{}))
	reqSetCRTC      = drmIOWR(0xa2, unsafe.Sizeof(crtcInfo{}))
	reqGetEncoder   = drmIOWR(0xa6, unsafe.Sizeof(getEncoder{}))
	reqGetConnector = drmIOWR(0xa7, unsafe.Sizeof(getConnector{}))
	reqAddFB        = drmIOWR(0xae, unsafe.Sizeof(fbCmd{}))
	reqRmFB         = drmIOWR(0xaf, unsafe.Sizeof(uint32(0)))
	reqCreateDumb   = drmIOWR(0xb2, unsafe.Sizeof(createDumb{}))
	reqMapDumb      = drmIOWR(0xb3, unsafe.Sizeof(mapDumb{}))
	reqDestroyDumb  = drmIOWR(0xb4, unsafe.Sizeof(destroyDumb{}))
)

// modeName converts the fixed-size mode name to a string.
func modeName(name [32]byte) string {
	for i, b := range name {
		if b == 0 {
			return string(name[:i])
		}
	}
	return string(name[:])
}
