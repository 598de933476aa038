package ugfx

import "testing"

func TestLifecycle(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if got := GetVersion(); got != Version {
		t.Errorf("GetVersion = %q, want %q", got, Version)
	}
	Shutdown()
	Shutdown()
	if err := Init(); err != nil {
		t.Fatalf("Init after Shutdown: %v", err)
	}
}

// TestRenderScene draws the composed scene used as the acceptance check:
// a white clear, a red diagonal, a filled blue disc, and a filled green
// rectangle on top.
func TestRenderScene(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	s := NewSurface(100, 100)
	if s == nil {
		t.Fatal("NewSurface failed")
	}
	defer s.Destroy()

	if err := s.Clear(White); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := DrawLine(s, 10, 10, 90, 90, Red); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	if err := DrawCircleFilled(s, 50, 50, 20, Blue); err != nil {
		t.Fatalf("DrawCircleFilled: %v", err)
	}
	if err := DrawRectFilled(s, Rect{X: 20, Y: 20, W: 30, H: 30}, Green); err != nil {
		t.Fatalf("DrawRectFilled: %v", err)
	}

	checks := []struct {
		x, y int
		want Color
		desc string
	}{
		{5, 5, White, "background"},
		{95, 95, White, "past line end"},
		{15, 15, Red, "diagonal"},
		{25, 25, Green, "rect over circle"},
		{49, 49, Green, "rect bottom-right interior"},
		{50, 65, Blue, "disc below rect"},
		{65, 50, Blue, "disc right of rect"},
		{50, 75, White, "past disc edge"},
	}
	for _, c := range checks {
		if got := s.PixelAt(c.x, c.y); got != c.want {
			t.Errorf("%s at (%d, %d) = %v, want %v", c.desc, c.x, c.y, got, c.want)
		}
	}
}

func TestSceneWithArena(t *testing.T) {
	a, err := NewArena(1 << 20)
	if err != nil {
		t.Fatalf("NewArena: %v", err)
	}
	defer a.Destroy()

	s := NewSurface(64, 64, WithArena(a))
	if s == nil {
		t.Fatal("arena surface failed")
	}
	if err := s.Clear(Black); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := DrawCircleFilled(s, 32, 32, 10, Orange); err != nil {
		t.Fatalf("DrawCircleFilled: %v", err)
	}
	if got := s.PixelAt(32, 32); got != Orange {
		t.Errorf("center = %v, want orange", got)
	}
	s.Destroy()
	if a.InUse() != 0 {
		t.Errorf("arena InUse after surface Destroy = %d", a.InUse())
	}
}
