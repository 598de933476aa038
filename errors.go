package ugfx

import "errors"

// Error taxonomy. All fallible operations return one of these sentinels,
// possibly wrapped with additional context; match with errors.Is.
var (
	// ErrInvalidParam indicates a nil surface, non-positive dimension, or
	// otherwise out-of-range argument.
	ErrInvalidParam = errors.New("ugfx: invalid parameter")

	// ErrOutOfMemory indicates arena exhaustion or a failed memory mapping.
	ErrOutOfMemory = errors.New("ugfx: out of memory")

	// ErrPlatformNotSupported indicates that no suitable device, output,
	// or OS facility was found. The library performs no retries; callers
	// decide whether to fall back to an off-screen surface.
	ErrPlatformNotSupported = errors.New("ugfx: platform not supported")

	// ErrNotInitialized indicates a call that requires Init first.
	ErrNotInitialized = errors.New("ugfx: library not initialized")
)
