package platform

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

func newProber() prober { return linuxProber{} }

type linuxProber struct{}

// gpuVendor reads the first display device's PCI vendor ID from sysfs
// and maps known IDs to names. When sysfs gives nothing, it falls back
// to pattern-matching lspci output, and finally to "Unknown".
func (linuxProber) gpuVendor() string {
	for _, path := range []string{
		"/sys/class/drm/card0/device/vendor",
		"/sys/class/drm/card1/device/vendor",
	} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if id, ok := parseVendorID(string(data)); ok {
			return vendorFromID(id)
		}
	}
	return lspciVendor()
}

// lspciVendor shells out to lspci and matches the VGA line. Any failure
// reports "Unknown".
func lspciVendor() string {
	out, err := exec.Command("lspci").Output()
	if err != nil {
		return "Unknown"
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D controller") {
			continue
		}
		switch {
		case strings.Contains(line, "Intel"):
			return "Intel"
		case strings.Contains(line, "NVIDIA"):
			return "NVIDIA"
		case strings.Contains(line, "AMD"), strings.Contains(line, "ATI"):
			return "AMD"
		}
	}
	return "Unknown"
}

func (linuxProber) hasKMS() bool {
	for _, path := range []string{"/dev/dri/card0", "/dev/dri/card1"} {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func (linuxProber) hasWayland() bool {
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	for _, path := range []string{
		"/usr/lib/x86_64-linux-gnu/libwayland-client.so.0",
		"/usr/lib/x86_64-linux-gnu/libwayland-client.so",
		"/usr/lib/libwayland-client.so.0",
		"/usr/lib/libwayland-client.so",
	} {
		if _, err := os.Stat(path); err == nil {
			return true
		}
	}
	return false
}

func (linuxProber) cacheLineSize() int {
	data, err := os.ReadFile("/sys/devices/system/cpu/cpu0/cache/index0/coherency_line_size")
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n
}
