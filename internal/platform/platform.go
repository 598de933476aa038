// Package platform probes host capabilities: CPU SIMD extensions, GPU
// vendor, mode-setting device availability, compositor protocol, and
// memory geometry.
//
// Every probe degrades to a conservative "unsupported" answer instead
// of returning an error, so a false or zero result means "not verified
// present", never "verified absent". Callers cache the result; Detect
// itself performs fresh probes each call.
package platform

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// Caps describes the probed host capabilities.
type Caps struct {
	HasAVX2      bool
	HasNEON      bool
	GPUVendor    string
	HasKMS       bool
	HasWayland   bool
	PlatformName string
}

// prober supplies the OS-specific probes. One implementation per target
// OS; shared heuristics (vendor table, SIMD detection) live here.
type prober interface {
	gpuVendor() string
	hasKMS() bool
	hasWayland() bool
	cacheLineSize() int
}

// Detect probes the host and returns its capabilities.
func Detect() Caps {
	p := newProber()
	return Caps{
		HasAVX2:      detectAVX2(),
		HasNEON:      detectNEON(),
		GPUVendor:    p.gpuVendor(),
		HasKMS:       p.hasKMS(),
		HasWayland:   p.hasWayland(),
		PlatformName: platformName(),
	}
}

// CacheLineSize returns the L1 data cache line size in bytes, falling
// back to 64 when the OS query fails.
func CacheLineSize() int {
	if n := newProber().cacheLineSize(); n > 0 {
		return n
	}
	return 64
}

// PageSize returns the OS page size in bytes, falling back to 4096.
func PageSize() int {
	if n := os.Getpagesize(); n > 0 {
		return n
	}
	return 4096
}

// detectAVX2 reports wide-SIMD support. The cpu package gives the
// answer on x86 hosts where its init ran; the /proc/cpuinfo flag list
// is the fallback, and an absent file simply reports false.
func detectAVX2() bool {
	if runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		return false
	}
	if cpu.Initialized {
		return cpu.X86.HasAVX2
	}
	return cpuinfoHasFlag("flags", "avx2")
}

// detectNEON reports narrow-SIMD support. AArch64 mandates NEON; 32-bit
// ARM needs the feature list.
func detectNEON() bool {
	switch runtime.GOARCH {
	case "arm64":
		return true
	case "arm":
		return cpuinfoHasFlag("Features", "neon")
	default:
		return false
	}
}

// cpuinfoHasFlag scans /proc/cpuinfo for a feature token on the given
// key line. Any read failure reports false.
func cpuinfoHasFlag(key, flag string) bool {
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, key) {
			continue
		}
		for _, tok := range strings.Fields(line) {
			if tok == flag {
				return true
			}
		}
	}
	return false
}

// vendorFromID maps a PCI vendor ID to a display name.
func vendorFromID(id uint64) string {
	switch id {
	case 0x8086:
		return "Intel"
	case 0x10de:
		return "NVIDIA"
	case 0x1002:
		return "AMD"
	case 0x1414:
		return "Microsoft"
	default:
		return "Unknown"
	}
}

// parseVendorID parses a sysfs vendor file's "0x8086" style content.
func parseVendorID(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	id, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return id, true
}

// platformName maps the runtime OS to the name the caps report.
func platformName() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "freebsd":
		return "FreeBSD"
	case "openbsd":
		return "OpenBSD"
	case "netbsd":
		return "NetBSD"
	default:
		return "Unknown"
	}
}
