// Command ugfxdemo demonstrates the ugfx 2D rendering core.
//
// By default it renders a test scene to a PNG file. With -display it
// instead opens the first connected output via kernel mode-setting and
// scans the scene out for a few seconds, which needs a free DRM device
// (a virtual terminal, not a desktop session).
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	ugfx "github.com/unhinged/ugfx"
)

func main() {
	var (
		width   = flag.Int("width", 800, "surface width")
		height  = flag.Int("height", 600, "surface height")
		output  = flag.String("output", "demo.png", "output file")
		display = flag.Bool("display", false, "render to the display instead of a file")
		hold    = flag.Duration("hold", 5*time.Second, "how long to hold the displayed frame")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ugfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := ugfx.Init(); err != nil {
		log.Fatalf("init failed: %v", err)
	}
	defer ugfx.Shutdown()

	caps := ugfx.Caps()
	log.Printf("platform %s, gpu %s, simd %v",
		caps.PlatformName, caps.GPUVendor, ugfx.ShouldUseSIMD())

	if *display {
		if err := runDisplay(*hold); err != nil {
			log.Fatalf("display failed: %v", err)
		}
		return
	}

	s := ugfx.NewSurface(*width, *height)
	if s == nil {
		log.Fatalf("surface allocation failed (%dx%d)", *width, *height)
	}
	defer s.Destroy()

	drawScene(s)

	if err := s.SavePNG(*output); err != nil {
		log.Fatalf("save failed: %v", err)
	}
	log.Printf("demo saved to %s (%dx%d)", *output, *width, *height)
}

func runDisplay(hold time.Duration) error {
	if err := ugfx.WindowCreate(0, 0); err != nil {
		return err
	}
	defer ugfx.WindowClose()

	w, h := ugfx.WindowSize()
	log.Printf("window open at %dx%d", w, h)

	drawScene(ugfx.WindowSurface())
	ugfx.WindowPresent()

	time.Sleep(hold)
	return nil
}

// drawScene exercises every primitive family on one surface.
func drawScene(s *ugfx.Surface) {
	w, h := s.Width(), s.Height()

	// Vertical gradient background.
	for y := 0; y < h; y++ {
		t := float32(y) / float32(h)
		c := ugfx.RGB(uint8(25+t*100), uint8(50+t*75), uint8(100+t*50))
		_ = ugfx.DrawRectFilled(s, ugfx.Rect{X: 0, Y: y, W: w, H: 1}, c)
	}

	// Overlapping discs blended over the background by hand: the fill
	// primitives overwrite, so composite the disc colors first.
	bg := s.PixelAt(w/4, h/3)
	cx, cy, r := w/4, h/3, minInt(w, h)/6
	_ = ugfx.DrawCircleFilled(s, cx-r/2, cy, r, ugfx.AlphaBlend(ugfx.RGBA(255, 60, 60, 200), bg))
	_ = ugfx.DrawCircleFilled(s, cx+r/2, cy, r, ugfx.AlphaBlend(ugfx.RGBA(60, 255, 60, 200), bg))
	_ = ugfx.DrawCircleFilled(s, cx, cy+r/2, r, ugfx.AlphaBlend(ugfx.RGBA(60, 60, 255, 200), bg))

	// Rectangles, the second additive over the first.
	base := ugfx.Rect{X: w / 2, Y: h / 4, W: w / 6, H: h / 6}
	_ = ugfx.DrawRectFilled(s, base, ugfx.Orange)
	glow := ugfx.BlendColors(ugfx.RGBA(80, 80, 255, 255), ugfx.Orange, ugfx.BlendAdd)
	_ = ugfx.DrawRectFilled(s, ugfx.Rect{X: base.X + w/24, Y: base.Y + h/24, W: w / 6, H: h / 6}, glow)

	// Line fan sweeping the hue wheel.
	for i := 0; i <= 8; i++ {
		hue := float32(i) / 9
		c := ugfx.Convert(ugfx.ColorF{R: hue, G: 0.9, B: 0.9, A: 1, Space: ugfx.SpaceHSV}, ugfx.SpaceRGB)
		_ = ugfx.DrawLine(s, w/8, h-h/8, w/8+i*w/24, h-h/3, c.ToColor())
	}

	// Outlined shapes, one aliased and one antialiased for comparison.
	_ = ugfx.DrawCircleOutline(s, 3*w/4, 2*h/3, minInt(w, h)/8, ugfx.White)
	_ = ugfx.DrawCircleOutlineAA(s, 3*w/4, h/3, minInt(w, h)/8, ugfx.White)
	_ = ugfx.DrawEllipseOutline(s, 3*w/4, 2*h/3, w/6, h/10, ugfx.Yellow)
	_ = ugfx.DrawEllipseFilled(s, w/4, 2*h/3, w/10, h/14, ugfx.Cyan)

	// Arc sweep over the ellipse.
	_ = ugfx.DrawArc(s, w/2, h/2, minInt(w, h)/4, math.Pi, 2*math.Pi-0.01, ugfx.Magenta)

	// Translucent caption bar.
	_ = ugfx.DrawRectBlended(s, ugfx.Rect{X: 0, Y: 0, W: w, H: 24}, ugfx.RGBA(0, 0, 0, 140))
	label := fmt.Sprintf("ugfx %s", ugfx.GetVersion())
	_ = ugfx.DrawText(s, 8, 5, label, ugfx.White)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
