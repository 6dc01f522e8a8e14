package stopedit

import (
	"math"
	"testing"
)

// tolerance for floating point comparisons
const gradientEpsilon = 0.01

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func mustGradient(t *testing.T, stops []CanonicalStop) *Gradient {
	t.Helper()
	g, err := NewGradient(stops)
	if err != nil {
		t.Fatalf("NewGradient() error = %v", err)
	}
	return g
}

func TestGradientColorAt(t *testing.T) {
	g := mustGradient(t, []CanonicalStop{
		{ID: 1, Offset: "0.000", Color: "#ff0000", Opacity: 1},
		{ID: 2, Offset: "0.500", Color: "lime", Opacity: 1},
		{ID: 3, Offset: "1.000", Color: "rgb(0, 0, 255)", Opacity: 1},
	})

	tests := []struct {
		name string
		t    float64
		want RGBA
	}{
		{"start", 0, RGBA{R: 1, A: 1}},
		{"middle stop", 0.5, RGBA{G: 1, A: 1}},
		{"end", 1, RGBA{B: 1, A: 1}},
		{"before start", -1, RGBA{R: 1, A: 1}},
		{"after end", 2, RGBA{B: 1, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ColorAt(tt.t); !colorsEqual(got, tt.want, gradientEpsilon) {
				t.Errorf("ColorAt(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}

	// Linear-light blend of red and lime is brighter than a plain sRGB lerp.
	mid := g.ColorAt(0.25)
	if mid.R <= 0.5 || mid.G <= 0.5 {
		t.Errorf("ColorAt(0.25) = %+v, want both channels above 0.5", mid)
	}
}

func TestGradientOpacity(t *testing.T) {
	g := mustGradient(t, []CanonicalStop{
		{ID: 1, Offset: "0.000", Color: "black", Opacity: 0},
		{ID: 2, Offset: "1.000", Color: "black", Opacity: 1},
	})
	if got := g.ColorAt(0.5).A; math.Abs(got-0.5) > gradientEpsilon {
		t.Errorf("alpha at 0.5 = %v, want 0.5", got)
	}
}

func TestGradientCoincidentStops(t *testing.T) {
	g := mustGradient(t, []CanonicalStop{
		{ID: 1, Offset: "0.500", Color: "red", Opacity: 1},
		{ID: 2, Offset: "0.500", Color: "blue", Opacity: 1},
	})
	if got := g.ColorAt(0.5); !colorsEqual(got, RGBA{R: 1, A: 1}, gradientEpsilon) {
		t.Errorf("ColorAt(0.5) = %+v, want red", got)
	}
}

func TestGradientSingleStop(t *testing.T) {
	g := mustGradient(t, []CanonicalStop{{ID: 1, Offset: "0.300", Color: "#fff", Opacity: 1}})
	if got := g.ColorAt(0.9); !colorsEqual(got, RGBA{1, 1, 1, 1}, gradientEpsilon) {
		t.Errorf("ColorAt(0.9) = %+v, want white", got)
	}
}

func TestNewGradientBadColor(t *testing.T) {
	if _, err := NewGradient([]CanonicalStop{{ID: 1, Offset: "0.000", Color: "not-a-color"}}); err == nil {
		t.Error("NewGradient() accepted an unknown color")
	}
}

func TestGradientCSS(t *testing.T) {
	g := mustGradient(t, []CanonicalStop{
		{ID: 1, Offset: "0.000", Color: "#ff0000", Opacity: 1},
		{ID: 2, Offset: "0.255", Color: "#0000ff", Opacity: 0.5},
	})
	want := "linear-gradient(90deg, rgba(255, 0, 0, 1) 0%, rgba(0, 0, 255, 0.5) 25.5%)"
	if got := g.CSS(DefaultAngle); got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
	if got := g.CSS(-90); got[:20] != "linear-gradient(270d" {
		t.Errorf("CSS(-90) = %q", got)
	}
}

func TestGradientSwatch(t *testing.T) {
	g := mustGradient(t, []CanonicalStop{
		{ID: 1, Offset: "0.000", Color: "#000000", Opacity: 1},
		{ID: 2, Offset: "1.000", Color: "#ffffff", Opacity: 1},
	})

	img := g.Swatch(64, 8)
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 8 {
		t.Fatalf("Swatch bounds = %v", b)
	}
	left := img.RGBAAt(0, 7)
	right := img.RGBAAt(63, 0)
	if left.R != 0 || right.R != 255 {
		t.Errorf("edges = %v, %v, want black and white", left, right)
	}
	if img.RGBAAt(10, 0) != img.RGBAAt(10, 7) {
		t.Error("swatch columns are not uniform")
	}

	if empty := g.Swatch(0, 10); !empty.Bounds().Empty() {
		t.Error("Swatch(0, 10) should be empty")
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0}, {90, 90}, {360, 0}, {361, 1}, {-1, 359}, {-720, 0},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
