package ugfx

// initialized tracks whether Init has run. Not synchronized: the
// library is single-threaded by contract and only the capability cache
// guards against concurrent first use.
var initialized bool

// Init initializes the library and performs the one-time platform
// capability probe. It is idempotent and never fails on probe
// degradation; probes that cannot run report conservative answers.
func Init() error {
	if initialized {
		return nil
	}
	caps := Caps()
	Logger().Info("ugfx initialized",
		"version", Version,
		"platform", caps.PlatformName,
		"gpu_vendor", caps.GPUVendor,
		"simd", ShouldUseSIMD(),
		"kms", caps.HasKMS)
	initialized = true
	return nil
}

// Shutdown closes the window if one is open, releases the shared
// surface pools, and tears the library down. Safe to call without Init
// and safe to call twice.
func Shutdown() {
	WindowClose()
	cleanupSurfacePools()
	initialized = false
}

// GetVersion returns the library version string.
func GetVersion() string {
	return Version
}
