//go:build !linux

package platform

func newProber() prober { return stubProber{} }

// stubProber reports conservative answers on targets without the Linux
// device tree. Display access requires KMS, so these hosts get the
// off-screen rendering path only.
type stubProber struct{}

func (stubProber) gpuVendor() string { return "Unknown" }
func (stubProber) hasKMS() bool      { return false }
func (stubProber) hasWayland() bool  { return false }
func (stubProber) cacheLineSize() int { return 0 }
