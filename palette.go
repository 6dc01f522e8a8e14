package stopedit

// ColorStop is a color anchored at a normalized position along the track.
type ColorStop struct {
	ID      int     // Unique positive id; zero in an initial palette means unassigned
	Offset  float64 // Position along the gradient, 0.0 to 1.0
	Color   string  // Caller-defined color value, never parsed by the editor
	Opacity float64 // 0.0 to 1.0
}

// NewColorStop returns a fully opaque stop without an id.
func NewColorStop(offset float64, color string) ColorStop {
	return ColorStop{Offset: offset, Color: color, Opacity: 1}
}

// Stop is the render view of a ColorStop: its marker position on the
// track and whether it is the active selection.
type Stop struct {
	ID          int
	PixelOffset float64
	Color       string
	Opacity     float64
	Active      bool
}

// Palette is an ordered set of color stops in insertion order.
// Methods never modify the receiver; they return a new Palette.
type Palette []ColorStop

// AssignIDs returns a copy of stops in which every stop without an id
// receives its 1-based position.
func AssignIDs(stops []ColorStop) Palette {
	p := make(Palette, len(stops))
	for i, s := range stops {
		if s.ID <= 0 {
			s.ID = i + 1
		}
		p[i] = s
	}
	return p
}

// NextID returns one past the largest id in the palette.
func (p Palette) NextID() int {
	next := 1
	for _, s := range p {
		if s.ID >= next {
			next = s.ID + 1
		}
	}
	return next
}

// Find returns the stop with the given id.
func (p Palette) Find(id int) (ColorStop, bool) {
	for _, s := range p {
		if s.ID == id {
			return s, true
		}
	}
	return ColorStop{}, false
}

// With returns the palette with s appended.
func (p Palette) With(s ColorStop) Palette {
	out := make(Palette, 0, len(p)+1)
	out = append(out, p...)
	return append(out, s)
}

// Without returns the palette with the stop matching id removed.
func (p Palette) Without(id int) Palette {
	out := make(Palette, 0, len(p))
	for _, s := range p {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// Update returns the palette with fn applied to the stop matching id.
// Other stops are copied unchanged.
func (p Palette) Update(id int, fn func(ColorStop) ColorStop) Palette {
	out := make(Palette, len(p))
	for i, s := range p {
		if s.ID == id {
			s = fn(s)
		}
		out[i] = s
	}
	return out
}

// Leftmost returns the id of the stop with the smallest offset, or zero for
// an empty palette. Ties resolve to the earliest stop in insertion order.
func (p Palette) Leftmost() int {
	if len(p) == 0 {
		return 0
	}
	best := p[0]
	for _, s := range p[1:] {
		if s.Offset < best.Offset {
			best = s
		}
	}
	return best.ID
}
