package platform

import "testing"

func TestVendorFromID(t *testing.T) {
	tests := []struct {
		id   uint64
		want string
	}{
		{0x8086, "Intel"},
		{0x10de, "NVIDIA"},
		{0x1002, "AMD"},
		{0x1414, "Microsoft"},
		{0xdead, "Unknown"},
		{0, "Unknown"},
	}
	for _, tt := range tests {
		if got := vendorFromID(tt.id); got != tt.want {
			t.Errorf("vendorFromID(%#x) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestParseVendorID(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		ok   bool
	}{
		{"0x8086\n", 0x8086, true},
		{"0x10de", 0x10de, true},
		{"1002", 0x1002, true},
		{"  0x1414  ", 0x1414, true},
		{"", 0, false},
		{"0x", 0, false},
		{"vendor", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseVendorID(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseVendorID(%q) = %#x, %v, want %#x, %v",
				tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlatformName(t *testing.T) {
	if got := platformName(); got == "" {
		t.Error("platformName is empty")
	}
}

func TestDetect(t *testing.T) {
	caps := Detect()
	if caps.PlatformName == "" {
		t.Error("PlatformName is empty")
	}
	if caps.GPUVendor == "" {
		t.Error("GPUVendor is empty")
	}
}

func TestMemoryGeometryFallbacks(t *testing.T) {
	if got := CacheLineSize(); got <= 0 {
		t.Errorf("CacheLineSize = %d", got)
	}
	if got := PageSize(); got <= 0 {
		t.Errorf("PageSize = %d", got)
	}
}
