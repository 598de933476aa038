package ugfx

// Registry limits for the shared per-size pools.
const (
	maxSharedPools   = 8
	sharedPoolDepth  = 16
	poolArenaPadding = 1024
)

// SurfacePool recycles same-sized surfaces backed by a private arena.
// Get reuses a returned surface when one is available and allocates a
// fresh one from the arena otherwise; Put clears a surface and shelves
// it for reuse. A pool hands out at most max surfaces at a time.
//
// Like the rest of the library, a pool is not internally synchronized.
type SurfacePool struct {
	arena       *Arena
	free        []*Surface
	width       int
	height      int
	max         int
	outstanding int
}

// NewSurfacePool creates a pool of up to max surfaces of the given size.
func NewSurfacePool(width, height, max int) (*SurfacePool, error) {
	if width <= 0 || height <= 0 || max <= 0 {
		return nil, ErrInvalidParam
	}

	// Each surface is cache-line aligned inside the arena, so pad each
	// slot by the alignment and leave room for bookkeeping slack.
	slot := width*height*4 + 64
	capacity := slot*max + poolArenaPadding
	if capacity < arenaMinCapacity {
		capacity = arenaMinCapacity
	}

	arena, err := NewArena(capacity)
	if err != nil {
		return nil, err
	}
	return &SurfacePool{
		arena:  arena,
		free:   make([]*Surface, 0, max),
		width:  width,
		height: height,
		max:    max,
	}, nil
}

// Get returns a surface from the pool, reusing a shelved one when
// possible. It returns nil once max surfaces are outstanding.
func (p *SurfacePool) Get() *Surface {
	if p == nil || p.arena == nil || p.outstanding >= p.max {
		return nil
	}
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		p.outstanding++
		return s
	}
	s := NewSurface(p.width, p.height, WithArena(p.arena))
	if s != nil {
		p.outstanding++
	}
	return s
}

// Put returns a surface to the pool. The surface is cleared before it
// is shelved so a later Get starts blank. Surfaces of the wrong size,
// or arriving when the shelf is full, are destroyed instead. Nil is a
// safe no-op.
func (p *SurfacePool) Put(s *Surface) {
	if p == nil || s == nil {
		return
	}
	if s.width != p.width || s.height != p.height {
		s.Destroy()
		return
	}
	if p.outstanding > 0 {
		p.outstanding--
	}
	if len(p.free) >= p.max {
		s.Destroy()
		return
	}
	_ = s.Clear(Transparent)
	p.free = append(p.free, s)
}

// FreeCount returns the number of shelved surfaces ready for reuse.
func (p *SurfacePool) FreeCount() int {
	if p == nil {
		return 0
	}
	return len(p.free)
}

// Width returns the pool's surface width.
func (p *SurfacePool) Width() int { return p.width }

// Height returns the pool's surface height.
func (p *SurfacePool) Height() int { return p.height }

// Destroy releases the pool's arena, invalidating every surface it ever
// produced, shelved or outstanding.
func (p *SurfacePool) Destroy() {
	if p == nil || p.arena == nil {
		return
	}
	p.arena.Destroy()
	p.arena = nil
	p.free = nil
}

// sharedPools holds the per-size pools handed out by GetSurfacePool.
var sharedPools []*SurfacePool

// GetSurfacePool returns the shared pool for the given surface size,
// creating it on first use. At most eight distinct sizes are pooled;
// beyond that, or on creation failure, it returns nil and callers fall
// back to plain NewSurface.
func GetSurfacePool(width, height int) *SurfacePool {
	for _, p := range sharedPools {
		if p.width == width && p.height == height {
			return p
		}
	}
	if len(sharedPools) >= maxSharedPools {
		return nil
	}
	p, err := NewSurfacePool(width, height, sharedPoolDepth)
	if err != nil {
		Logger().Warn("surface pool creation failed",
			"width", width, "height", height, "error", err)
		return nil
	}
	sharedPools = append(sharedPools, p)
	return p
}

// cleanupSurfacePools destroys every shared pool. Called by Shutdown.
func cleanupSurfacePools() {
	for _, p := range sharedPools {
		p.Destroy()
	}
	sharedPools = nil
}
