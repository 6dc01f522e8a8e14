package stopedit

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Transparent is the fully transparent color.
var Transparent = RGBA{}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// WithOpacity scales the alpha channel by opacity.
func (c RGBA) WithOpacity(opacity float64) RGBA {
	c.A *= clamp01(opacity)
	return c
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// CSS formats the color as a CSS rgba() value.
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", to8(c.R), to8(c.G), to8(c.B),
		strconv.FormatFloat(math.Round(clamp01(c.A)*1000)/1000, 'f', -1, 64))
}

// ParseColor parses a CSS color value.
// Supports "#rgb", "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)",
// "rgba(r, g, b, a)", the space form "rgb(r g b / a)" with numeric or
// percentage arguments, "transparent" and the CSS color keywords.
func ParseColor(s string) (RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	switch {
	case v == "transparent":
		return Transparent, nil
	case strings.HasPrefix(v, "#"):
		if c, ok := parseHexColor(v[1:]); ok {
			return c, nil
		}
	case strings.HasPrefix(v, "rgb"):
		if c, ok := parseRGBFunc(v); ok {
			return c, nil
		}
	default:
		if c, ok := colornames.Map[v]; ok {
			return FromColor(c), nil
		}
	}
	return Transparent, fmt.Errorf("stopedit: unrecognized color %q", s)
}

// parseHexColor parses the digits of a hex color.
func parseHexColor(hex string) (RGBA, bool) {
	var r, g, b, a uint64
	a = 255

	nibble := func(s string) (uint64, bool) {
		v, err := strconv.ParseUint(s, 16, 8)
		return v, err == nil
	}

	var ok [4]bool
	ok[3] = true
	switch len(hex) {
	case 3, 4: // RGB, RGBA
		r, ok[0] = nibble(hex[0:1])
		g, ok[1] = nibble(hex[1:2])
		b, ok[2] = nibble(hex[2:3])
		if len(hex) == 4 {
			a, ok[3] = nibble(hex[3:4])
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8: // RRGGBB, RRGGBBAA
		r, ok[0] = nibble(hex[0:2])
		g, ok[1] = nibble(hex[2:4])
		b, ok[2] = nibble(hex[4:6])
		if len(hex) == 8 {
			a, ok[3] = nibble(hex[6:8])
		}
	default:
		return Transparent, false
	}
	if !ok[0] || !ok[1] || !ok[2] || !ok[3] {
		return Transparent, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// parseRGBFunc parses rgb(...) and rgba(...). Arguments are separated by
// commas, or by spaces with an optional "/" before the alpha. Channels are
// 0-255 or percentages; alpha is 0-1 or a percentage.
func parseRGBFunc(v string) (RGBA, bool) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return Transparent, false
	}
	args := v[open+1 : len(v)-1]

	var parts []string
	if strings.Contains(args, ",") {
		parts = strings.Split(args, ",")
	} else {
		parts = strings.Fields(strings.Replace(args, "/", " ", 1))
	}
	if len(parts) != 3 && len(parts) != 4 {
		return Transparent, false
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		p = strings.TrimSpace(p)
		scale := 255.0
		if i == 3 {
			scale = 1
		}
		if pct, ok := strings.CutSuffix(p, "%"); ok {
			p = pct
			scale = 100
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Transparent, false
		}
		ch[i] = clamp01(f / scale)
	}

	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// to8 maps a [0, 1] component to [0, 255] with rounding.
func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
