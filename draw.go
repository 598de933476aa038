package ugfx

import (
	"math"

	"github.com/unhinged/ugfx/internal/wide"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, W, H int
}

// hline fills the pixels from x1 to x2 inclusive on row y, clipping to
// the surface. Coordinates may arrive unordered or out of bounds.
func hline(s *Surface, x1, x2, y int, p uint32) {
	if y < 0 || y >= s.height {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 >= s.width {
		x2 = s.width - 1
	}
	if x1 > x2 {
		return
	}
	wide.FillSpan(s.span(x1, x2, y), p)
}

// DrawLine rasterizes a straight segment between two points using
// Bresenham's algorithm. Portions outside the surface are clipped.
func DrawLine(s *Surface, x0, y0, x1, y1 int, c Color) error {
	if s == nil || s.pix == nil {
		return ErrInvalidParam
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		s.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRectFilled fills the rectangle [X, X+W) x [Y, Y+H), clipped to the
// surface. Negative width or height is an error; a rectangle entirely
// outside the surface succeeds without writing anything.
func DrawRectFilled(s *Surface, r Rect, c Color) error {
	if s == nil || s.pix == nil || r.W < 0 || r.H < 0 {
		return ErrInvalidParam
	}

	x0, y0, x1, y1, ok := clipRect(s, r)
	if !ok {
		return nil
	}

	p := c.packed()
	for y := y0; y <= y1; y++ {
		wide.FillSpan(s.span(x0, x1, y), p)
	}
	return nil
}

// DrawRectBlended composites the color over the rectangle
// [X, X+W) x [Y, Y+H) with the "over" operator, clipped to the surface.
// An opaque color degenerates to DrawRectFilled.
func DrawRectBlended(s *Surface, r Rect, c Color) error {
	if s == nil || s.pix == nil || r.W < 0 || r.H < 0 {
		return ErrInvalidParam
	}

	x0, y0, x1, y1, ok := clipRect(s, r)
	if !ok {
		return nil
	}

	p := c.packed()
	for y := y0; y <= y1; y++ {
		wide.BlendSpan(s.span(x0, x1, y), p)
	}
	return nil
}

// TintRect multiplies every channel inside [X, X+W) x [Y, Y+H) by the
// corresponding channel of the tint color, clipped to the surface.
// White leaves pixels unchanged; black clears them.
func TintRect(s *Surface, r Rect, c Color) error {
	if s == nil || s.pix == nil || r.W < 0 || r.H < 0 {
		return ErrInvalidParam
	}

	x0, y0, x1, y1, ok := clipRect(s, r)
	if !ok {
		return nil
	}

	p := c.packed()
	for y := y0; y <= y1; y++ {
		wide.TintSpan(s.span(x0, x1, y), p)
	}
	return nil
}

// clipRect intersects r with the surface bounds, returning inclusive
// pixel coordinates. ok is false when nothing remains.
func clipRect(s *Surface, r Rect) (x0, y0, x1, y1 int, ok bool) {
	x0, y0 = r.X, r.Y
	x1, y1 = r.X+r.W-1, r.Y+r.H-1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= s.width {
		x1 = s.width - 1
	}
	if y1 >= s.height {
		y1 = s.height - 1
	}
	ok = x0 <= x1 && y0 <= y1
	return
}

// DrawCircleFilled fills a disc using the midpoint circle algorithm with
// horizontal span fills. A radius of zero plots a single pixel.
func DrawCircleFilled(s *Surface, cx, cy, radius int, c Color) error {
	if s == nil || s.pix == nil || radius < 0 {
		return ErrInvalidParam
	}
	if radius == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	p := c.packed()
	x := 0
	y := radius
	d := 1 - radius

	fillCircleSpans(s, cx, cy, x, y, p)
	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		fillCircleSpans(s, cx, cy, x, y, p)
	}
	return nil
}

// fillCircleSpans fills the horizontal spans for the four quadrant pairs
// at octant offsets (x, y). Guards avoid double-filling shared rows.
func fillCircleSpans(s *Surface, cx, cy, x, y int, p uint32) {
	if x != 0 {
		hline(s, cx-x, cx+x, cy+y, p)
		hline(s, cx-x, cx+x, cy-y, p)
	}
	if y != 0 && y != x {
		hline(s, cx-y, cx+y, cy+x, p)
		hline(s, cx-y, cx+y, cy-x, p)
	}
}

// DrawArc draws a circular arc from startAngle to endAngle in radians,
// measured clockwise from the positive x axis (y grows downward).
// Angles are normalized into [0, 2π); when the normalized end angle
// precedes the start, nothing but the end point is drawn.
func DrawArc(s *Surface, cx, cy, radius int, startAngle, endAngle float64, c Color) error {
	if s == nil || s.pix == nil || radius < 0 {
		return ErrInvalidParam
	}

	start := normalizeAngle(startAngle)
	end := normalizeAngle(endAngle)

	// Step fine enough that consecutive points touch at this radius.
	step := 0.1
	if radius > 10 {
		step = 1 / float64(radius)
	}

	for angle := start; angle <= end; angle += step {
		x := cx + int(float64(radius)*math.Cos(angle))
		y := cy + int(float64(radius)*math.Sin(angle))
		s.SetPixel(x, y, c)
	}

	// The stepped loop can stop short of the exact end angle.
	s.SetPixel(cx+int(float64(radius)*math.Cos(end)),
		cy+int(float64(radius)*math.Sin(end)), c)
	return nil
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// DrawCircleOutlineAA draws an antialiased circle outline. Each pixel
// within one pixel of the ideal circle is composited over the existing
// content with coverage derived from its distance to the edge.
func DrawCircleOutlineAA(s *Surface, cx, cy, radius int, c Color) error {
	if s == nil || s.pix == nil || radius < 0 {
		return ErrInvalidParam
	}

	x0 := cx - radius - 1
	x1 := cx + radius + 1
	y0 := cy - radius - 1
	y1 := cy + radius + 1
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= s.width {
		x1 = s.width - 1
	}
	if y1 >= s.height {
		y1 = s.height - 1
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			dist := math.Sqrt(dx*dx + dy*dy)

			coverage := 1 - math.Abs(dist-float64(radius))
			if coverage <= 0 {
				continue
			}
			if coverage > 1 {
				coverage = 1
			}
			aa := c
			aa.A = uint8(float64(c.A) * coverage)
			s.BlendPixel(x, y, aa)
		}
	}
	return nil
}

// DrawCircleOutline draws a circle outline using the midpoint algorithm.
func DrawCircleOutline(s *Surface, cx, cy, radius int, c Color) error {
	if s == nil || s.pix == nil || radius < 0 {
		return ErrInvalidParam
	}
	if radius == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	x := 0
	y := radius
	d := 1 - radius

	plotCirclePoints(s, cx, cy, x, y, c)
	for x < y {
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		plotCirclePoints(s, cx, cy, x, y, c)
	}
	return nil
}

// plotCirclePoints plots the 8 symmetric points of a circle outline.
func plotCirclePoints(s *Surface, cx, cy, x, y int, c Color) {
	s.SetPixel(cx+x, cy+y, c)
	s.SetPixel(cx-x, cy+y, c)
	s.SetPixel(cx+x, cy-y, c)
	s.SetPixel(cx-x, cy-y, c)
	s.SetPixel(cx+y, cy+x, c)
	s.SetPixel(cx-y, cy+x, c)
	s.SetPixel(cx+y, cy-x, c)
	s.SetPixel(cx-y, cy-x, c)
}

// DrawEllipseOutline draws an axis-aligned ellipse outline using the
// midpoint ellipse algorithm.
func DrawEllipseOutline(s *Surface, cx, cy, rx, ry int, c Color) error {
	if s == nil || s.pix == nil || rx < 0 || ry < 0 {
		return ErrInvalidParam
	}
	if rx == 0 && ry == 0 {
		s.SetPixel(cx, cy, c)
		return nil
	}

	x := 0
	y := ry
	rx2 := rx * rx
	ry2 := ry * ry

	plotEllipsePoints(s, cx, cy, x, y, c)

	// Region 1: slope > -1.
	d1 := float64(ry2) - float64(rx2*ry) + 0.25*float64(rx2)
	for ry2*x < rx2*y {
		if d1 < 0 {
			d1 += float64(ry2 * (2*x + 3))
		} else {
			d1 += float64(ry2*(2*x+3) + rx2*(-2*y+2))
			y--
		}
		x++
		plotEllipsePoints(s, cx, cy, x, y, c)
	}

	// Region 2: slope <= -1.
	fx := float64(x) + 0.5
	d2 := float64(ry2)*fx*fx + float64(rx2*(y-1)*(y-1)) - float64(rx2*ry2)
	for y > 0 {
		if d2 < 0 {
			d2 += float64(ry2*(2*x+2) + rx2*(-2*y+3))
			x++
		} else {
			d2 += float64(rx2 * (-2*y + 3))
		}
		y--
		plotEllipsePoints(s, cx, cy, x, y, c)
	}
	return nil
}

func plotEllipsePoints(s *Surface, cx, cy, x, y int, c Color) {
	s.SetPixel(cx+x, cy+y, c)
	s.SetPixel(cx-x, cy+y, c)
	s.SetPixel(cx+x, cy-y, c)
	s.SetPixel(cx-x, cy-y, c)
}

// DrawEllipseFilled fills an axis-aligned ellipse by scanline.
func DrawEllipseFilled(s *Surface, cx, cy, rx, ry int, c Color) error {
	if s == nil || s.pix == nil || rx < 0 || ry < 0 {
		return ErrInvalidParam
	}
	if ry == 0 {
		hline(s, cx-rx, cx+rx, cy, c.packed())
		return nil
	}

	p := c.packed()
	for y := -ry; y <= ry; y++ {
		yn := float64(y) / float64(ry)
		extent := int(float64(rx) * math.Sqrt(1-yn*yn))
		hline(s, cx-extent, cx+extent, cy+y, p)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
