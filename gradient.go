package stopedit

import (
	"fmt"
	"image"
	"math"
	"sort"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/stopedit/internal/color"
)

// DefaultAngle is the preview direction, left to right.
const DefaultAngle = 90

// gradientStop is a canonical stop resolved to a color.
type gradientStop struct {
	offset float64
	color  RGBA
}

// Gradient is a preview of an emitted palette. It is built from the
// canonical form so a host can render exactly what it persisted.
type Gradient struct {
	stops []gradientStop
}

// NewGradient resolves the colors of a canonical palette. Opacity is folded
// into each color's alpha.
func NewGradient(stops []CanonicalStop) (*Gradient, error) {
	parsed, err := ParseCanonical(stops)
	if err != nil {
		return nil, err
	}

	g := &Gradient{stops: make([]gradientStop, len(parsed))}
	for i, s := range parsed {
		c, err := ParseColor(s.Color)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", s.ID, err)
		}
		g.stops[i] = gradientStop{offset: s.Offset, color: c.WithOpacity(s.Opacity)}
	}

	// Emissions are already sorted; parsed input from elsewhere may not be.
	sort.SliceStable(g.stops, func(i, j int) bool {
		return g.stops[i].offset < g.stops[j].offset
	})
	return g, nil
}

// ColorAt returns the interpolated color at offset t. Offsets outside
// [0, 1] take the color of the nearest end.
func (g *Gradient) ColorAt(t float64) RGBA {
	stops := g.stops
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].color
	}

	t = clamp01(t)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].offset >= t
	})
	if idx == 0 {
		return stops[0].color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].color
	}

	s1, s2 := stops[idx-1], stops[idx]
	// Coincident stops make a hard edge.
	if s2.offset == s1.offset {
		return s1.color
	}

	return interpolateColorLinear(s1.color, s2.color, (t-s1.offset)/(s2.offset-s1.offset))
}

// interpolateColorLinear blends two sRGB colors in linear light.
// Alpha is interpolated directly.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: color.MixSRGB(c1.R, c2.R, t),
		G: color.MixSRGB(c1.G, c2.G, t),
		B: color.MixSRGB(c1.B, c2.B, t),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// CSS returns a CSS linear-gradient background for the palette at angle
// degrees.
func (g *Gradient) CSS(angle int) string {
	parts := make([]string, len(g.stops))
	for i, s := range g.stops {
		pct := strconv.FormatFloat(math.Round(s.offset*1000)/10, 'f', -1, 64)
		parts[i] = s.color.CSS() + " " + pct + "%"
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", NormalizeAngle(angle), strings.Join(parts, ", "))
}

// Swatch renders the gradient left to right into a width x height image.
func (g *Gradient) Swatch(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if width <= 0 || height <= 0 {
		return dst
	}

	strip := image.NewNRGBA(image.Rect(0, 0, width, 1))
	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		strip.Set(x, 0, g.ColorAt(t).Color())
	}

	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), strip, strip.Bounds(), xdraw.Src, nil)
	return dst
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(angle int) int {
	angle %= 360
	if angle < 0 {
		angle += 360
	}
	return angle
}
