package stopedit

// Store owns the palette and the active selection.
//
// Every mutation produces a new palette value, canonicalizes it and hands it
// to the sink. Mutations that would violate the stop bounds, or that need an
// active stop when there is none, are ignored without an emission.
//
// A Store is not safe for concurrent use. The host delivers pointer and
// selection events one at a time, in arrival order.
type Store struct {
	opts    options
	palette Palette
	sink    Sink

	activeID      int
	pickerVisible bool
}

// NewStore creates an editor over the initial palette. Stops without an id
// receive their 1-based position. It returns ErrEmptyPalette if initial is
// empty. A nil sink discards emissions.
func NewStore(initial []ColorStop, sink Sink, opts ...Option) (*Store, error) {
	if len(initial) == 0 {
		return nil, ErrEmptyPalette
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if sink == nil {
		sink = func([]CanonicalStop) {}
	}

	return &Store{
		opts:    o,
		palette: AssignIDs(initial),
		sink:    sink,
	}, nil
}

// Width returns the track width in pixels.
func (s *Store) Width() float64 { return s.opts.width }

// PaletteHeight returns the preview swatch height in pixels.
func (s *Store) PaletteHeight() float64 { return s.opts.paletteHeight }

// FlatStyle reports whether the detail widget renders flat.
func (s *Store) FlatStyle() bool { return s.opts.flatStyle }

// Len returns the number of stops.
func (s *Store) Len() int { return len(s.palette) }

// Limits returns the drag bounds for the track.
func (s *Store) Limits() Limits {
	return NewLimits(s.opts.width, s.opts.stopRemovalDrop)
}

// ActiveID returns the active stop id and whether one is selected.
func (s *Store) ActiveID() (int, bool) {
	return s.activeID, s.activeID != 0
}

// ActiveStop returns the active stop for the detail widget.
func (s *Store) ActiveStop() (ColorStop, bool) {
	if s.activeID == 0 {
		return ColorStop{}, false
	}
	return s.palette.Find(s.activeID)
}

// PickerVisible reports whether the detail widget should be shown.
// It is only meaningful while a stop is active.
func (s *Store) PickerVisible() bool {
	return s.pickerVisible && s.activeID != 0
}

// ShowPicker sets the detail widget visibility flag.
func (s *Store) ShowPicker(visible bool) {
	s.pickerVisible = visible
}

// AddDisabled reports whether the track accepts no more stops.
func (s *Store) AddDisabled() bool {
	return len(s.palette) >= s.opts.maxStops
}

// DeleteDisabled reports whether the delete control has nothing to do.
func (s *Store) DeleteDisabled() bool {
	return s.activeID == 0 || len(s.palette) <= s.opts.minStops
}

// Stops returns the render view of the palette in insertion order.
func (s *Store) Stops() []Stop {
	out := make([]Stop, len(s.palette))
	for i, c := range s.palette {
		out[i] = Stop{
			ID:          c.ID,
			PixelOffset: ToPixelOffset(c.Offset, s.opts.width),
			Color:       c.Color,
			Opacity:     c.Opacity,
			Active:      c.ID == s.activeID,
		}
	}
	return out
}

// Stop returns the render view of a single stop.
func (s *Store) Stop(id int) (Stop, bool) {
	for _, st := range s.Stops() {
		if st.ID == id {
			return st, true
		}
	}
	return Stop{}, false
}

// AddStop inserts a stop at a raw pixel position on the track. The new stop
// copies the color and opacity of the active stop, or of the first stop
// when nothing is active, and becomes the active stop.
func (s *Store) AddStop(pixel float64) {
	if len(s.palette) >= s.opts.maxStops {
		Logger().Debug("stopedit: add ignored", "stops", len(s.palette), "max", s.opts.maxStops)
		return
	}

	src, ok := s.palette.Find(s.activeID)
	if !ok {
		src = s.palette[0]
	}

	stop := ColorStop{
		ID:      s.palette.NextID(),
		Offset:  AddOffset(pixel, s.opts.width),
		Color:   src.Color,
		Opacity: src.Opacity,
	}

	s.activeID = stop.ID
	s.commit(s.palette.With(stop))
	Logger().Debug("stopedit: stop added", "id", stop.ID, "offset", stop.Offset)
}

// DeleteStop removes the stop matching id. Afterwards the stop with the
// smallest offset becomes active.
func (s *Store) DeleteStop(id int) {
	if len(s.palette) <= s.opts.minStops {
		Logger().Debug("stopedit: delete ignored", "id", id, "stops", len(s.palette), "min", s.opts.minStops)
		return
	}
	if _, ok := s.palette.Find(id); !ok {
		return
	}

	updated := s.palette.Without(id)
	s.activeID = updated.Leftmost()
	s.commit(updated)
	Logger().Debug("stopedit: stop deleted", "id", id, "active", s.activeID)
}

// DeleteActive deletes the active stop, if any.
func (s *Store) DeleteActive() {
	if s.activeID == 0 {
		return
	}
	s.DeleteStop(s.activeID)
}

// MoveStop places the stop matching id at a marker pixel position.
// It emits on every call, so a drag emits once per pointer sample.
func (s *Store) MoveStop(id int, pixel float64) {
	if _, ok := s.palette.Find(id); !ok {
		return
	}

	offset := ToNormalizedOffset(pixel, s.opts.width)
	s.commit(s.palette.Update(id, func(c ColorStop) ColorStop {
		c.Offset = offset
		return c
	}))
}

// SelectStop sets the active stop. Zero, or an id not in the palette,
// clears the selection.
func (s *Store) SelectStop(id int) {
	if _, ok := s.palette.Find(id); !ok {
		id = 0
	}
	s.activeID = id
}

// RecolorActive replaces the color and opacity of the active stop.
func (s *Store) RecolorActive(color string, opacity float64) {
	if _, ok := s.palette.Find(s.activeID); !ok {
		Logger().Debug("stopedit: recolor ignored, no active stop")
		return
	}

	s.commit(s.palette.Update(s.activeID, func(c ColorStop) ColorStop {
		c.Color = color
		c.Opacity = opacity
		return c
	}))
}

// DragStart selects the dragged stop, or clears the selection when the
// stop was already active.
func (s *Store) DragStart(id int) {
	if id == s.activeID {
		s.SelectStop(0)
		return
	}
	s.SelectStop(id)
}

// DragEnd is called once when a drag on id finishes.
func (s *Store) DragEnd(id int) {
	Logger().Debug("stopedit: drag ended", "id", id)
}

// commit replaces the palette and emits its canonical form.
func (s *Store) commit(p Palette) {
	s.palette = p
	s.sink(Canonicalize(p))
}
