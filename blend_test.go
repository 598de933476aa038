package ugfx

import "testing"

func TestAlphaBlendEndpoints(t *testing.T) {
	src := RGBA(200, 100, 50, 255)
	dst := RGBA(10, 20, 30, 255)

	if got := AlphaBlend(RGBA(200, 100, 50, 0), dst); got != dst {
		t.Errorf("transparent src: got %v, want dst %v", got, dst)
	}
	if got := AlphaBlend(src, dst); got != src {
		t.Errorf("opaque src: got %v, want src %v", got, src)
	}
	if got := AlphaBlend(Transparent, Transparent); got != Transparent {
		t.Errorf("both transparent: got %v, want zero", got)
	}
}

func TestAlphaBlendHalf(t *testing.T) {
	src := RGBA(255, 0, 0, 128)
	dst := RGBA(0, 0, 255, 255)
	got := AlphaBlend(src, dst)

	if got.A != 255 {
		t.Errorf("A = %d, want 255", got.A)
	}
	// 128/255 source coverage lands within a step of the midpoint.
	if got.R < 127 || got.R > 129 {
		t.Errorf("R = %d, want ~128", got.R)
	}
	if got.B < 126 || got.B > 128 {
		t.Errorf("B = %d, want ~127", got.B)
	}
	if got.G != 0 {
		t.Errorf("G = %d, want 0", got.G)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Color
		mode     BlendMode
		want     Color
	}{
		{"none", RGBA(1, 2, 3, 4), RGBA(9, 9, 9, 9), BlendNone, RGBA(1, 2, 3, 4)},
		{"add", RGBA(200, 100, 0, 255), RGBA(100, 100, 100, 255), BlendAdd, RGBA(255, 200, 100, 255)},
		{"multiply by white", RGBA(10, 128, 250, 255), White, BlendMultiply, RGBA(10, 128, 250, 255)},
		{"multiply by black", RGBA(10, 128, 250, 255), RGBA(0, 0, 0, 255), BlendMultiply, RGBA(0, 0, 0, 255)},
		{"screen with black", RGBA(10, 128, 250, 255), RGBA(0, 0, 0, 255), BlendScreen, RGBA(10, 128, 250, 255)},
		{"screen with white", RGBA(10, 128, 250, 255), White, BlendScreen, White},
	}
	for _, tt := range tests {
		if got := BlendColors(tt.src, tt.dst, tt.mode); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestBlendColorsScreenMid(t *testing.T) {
	got := BlendColors(RGBA(128, 128, 128, 255), RGBA(128, 128, 128, 255), BlendScreen)
	// 1 - (1-0.5)^2 = 0.75
	if got.R < 191 || got.R > 193 {
		t.Errorf("screen midpoint R = %d, want ~192", got.R)
	}
}

func TestBlendAdvancedOpacity(t *testing.T) {
	src := RGBA(255, 0, 0, 255)
	dst := RGBA(0, 0, 255, 255)

	if got := BlendAdvanced(src, dst, BlendAlpha, 0); got != dst {
		t.Errorf("opacity 0: got %v, want dst", got)
	}
	if got := BlendAdvanced(src, dst, BlendAlpha, 1); got != src {
		t.Errorf("opacity 1: got %v, want src", got)
	}

	half := BlendAdvanced(src, dst, BlendAlpha, 0.5)
	if half.R < 126 || half.R > 129 {
		t.Errorf("opacity 0.5 R = %d, want ~128", half.R)
	}
}

func TestBlendOverlayEndpoints(t *testing.T) {
	src := RGBA(180, 90, 45, 255)
	if got := BlendOverlay(src, RGBA(0, 0, 0, 255)); (got.R | got.G | got.B) != 0 {
		t.Errorf("overlay on black = %v, want black", got)
	}
	got := BlendOverlay(src, White)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("overlay on white = %v, want white", got)
	}
}

func TestBlendDodgeBurnEdges(t *testing.T) {
	dst := RGBA(100, 100, 100, 255)
	if got := BlendColorDodge(White, dst); got.R != 255 {
		t.Errorf("dodge with white src R = %d, want 255", got.R)
	}
	if got := BlendColorBurn(RGBA(0, 0, 0, 255), dst); got.R != 0 {
		t.Errorf("burn with black src R = %d, want 0", got.R)
	}
}

func TestBlendDifference(t *testing.T) {
	got := BlendDifference(RGBA(200, 10, 128, 255), RGBA(50, 60, 128, 255))
	want := RGBA(150, 50, 0, 255)
	if got != want {
		t.Errorf("difference = %v, want %v", got, want)
	}
}

func TestBlendExclusionOnBlack(t *testing.T) {
	src := RGBA(200, 10, 128, 255)
	got := BlendExclusion(src, RGBA(0, 0, 0, 255))
	// Against black the exclusion term vanishes.
	if got.R != src.R || got.G != src.G || got.B != src.B {
		t.Errorf("exclusion on black = %v, want %v", got, src)
	}
}
