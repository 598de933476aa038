package ugfx

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Minimum arena capacity and allocation alignment, matching the
// guarantees the surface and span code rely on.
const (
	arenaMinCapacity  = 1024
	arenaMinAlignment = 16
)

// Arena is a fixed-capacity allocator handing out aligned slices from
// one pre-reserved memory region. The region is an anonymous mapping,
// so its base is page-aligned and offset arithmetic alone satisfies any
// power-of-two alignment up to the page size.
//
// Arena is not internally synchronized; callers serialize access.
type Arena struct {
	buf  []byte
	free []arenaBlock
	used map[int]int // offset -> size
}

type arenaBlock struct {
	off, size int
}

// NewArena reserves an arena of the given capacity (minimum 1 KiB).
func NewArena(capacity int) (*Arena, error) {
	if capacity < arenaMinCapacity {
		return nil, fmt.Errorf("%w: arena capacity %d below minimum %d",
			ErrInvalidParam, capacity, arenaMinCapacity)
	}
	buf, err := unix.Mmap(-1, 0, capacity,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("%w: arena mmap: %v", ErrOutOfMemory, err)
	}
	return &Arena{
		buf:  buf,
		free: []arenaBlock{{off: 0, size: capacity}},
		used: make(map[int]int),
	}, nil
}

// Alloc returns a slice of the requested size whose start address is a
// multiple of align (power of two, minimum 16, at most the page size —
// the region's base is only page-aligned, so larger alignments cannot
// be honored by offset arithmetic). It returns nil on bad parameters or
// when no free block can satisfy the request; the arena never grows.
func (a *Arena) Alloc(size, align int) []byte {
	if a == nil || a.buf == nil || size <= 0 {
		return nil
	}
	if align < arenaMinAlignment {
		align = arenaMinAlignment
	}
	if align&(align-1) != 0 || align > os.Getpagesize() {
		return nil
	}

	for i, b := range a.free {
		off := alignUp(b.off, align)
		end := off + size
		if end > b.off+b.size {
			continue
		}

		// Carve the block: leading gap and trailing remainder both stay
		// on the free list.
		a.free = append(a.free[:i], a.free[i+1:]...)
		if lead := off - b.off; lead > 0 {
			a.free = append(a.free, arenaBlock{off: b.off, size: lead})
		}
		if tail := b.off + b.size - end; tail > 0 {
			a.free = append(a.free, arenaBlock{off: end, size: tail})
		}

		a.used[off] = size
		return a.buf[off:end:end]
	}
	return nil
}

// Free returns a slice obtained from Alloc to the arena. Freeing nil, a
// foreign slice, or an already-freed slice is a safe no-op.
func (a *Arena) Free(buf []byte) {
	if a == nil || a.buf == nil || len(buf) == 0 {
		return
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	if addr < base || addr >= base+uintptr(len(a.buf)) {
		return
	}
	off := int(addr - base)

	size, ok := a.used[off]
	if !ok || size != len(buf) {
		return
	}
	delete(a.used, off)
	// No coalescing with neighbors; fragmentation is bounded by the
	// arena's fixed lifetime.
	a.free = append(a.free, arenaBlock{off: off, size: size})
}

// Destroy releases the entire region in one step, invalidating every
// outstanding allocation. The arena must not be used afterward; methods
// on a destroyed arena are safe no-ops.
func (a *Arena) Destroy() {
	if a == nil || a.buf == nil {
		return
	}
	if err := unix.Munmap(a.buf); err != nil {
		Logger().Warn("arena munmap failed", "error", err)
	}
	a.buf = nil
	a.free = nil
	a.used = nil
}

// Capacity returns the total arena size in bytes, or 0 once destroyed.
func (a *Arena) Capacity() int {
	if a == nil {
		return 0
	}
	return len(a.buf)
}

// InUse returns the number of bytes currently allocated.
func (a *Arena) InUse() int {
	if a == nil {
		return 0
	}
	total := 0
	for _, size := range a.used {
		total += size
	}
	return total
}

// Available returns the number of free bytes. Fragmentation may prevent
// a single allocation of this size.
func (a *Arena) Available() int {
	if a == nil {
		return 0
	}
	total := 0
	for _, b := range a.free {
		total += b.size
	}
	return total
}

func alignUp(v, align int) int {
	return (v + align - 1) &^ (align - 1)
}
