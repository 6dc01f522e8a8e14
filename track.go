package stopedit

// PointerButton identifies the button of a pointer-down event.
type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonAuxiliary
	ButtonSecondary
)

// Track translates pointer-downs on empty track space into new stops.
type Track struct {
	store      *Store
	onActivate func()
}

// NewTrack returns a track surface for store. onActivate, if not nil, is
// called after a stop is added so the host can show the detail widget.
func NewTrack(store *Store, onActivate func()) *Track {
	return &Track{store: store, onActivate: onActivate}
}

// Disabled reports whether the track is full.
func (t *Track) Disabled() bool {
	return t.store.AddDisabled()
}

// PointerDown handles a pointer-down at clientX on a track whose left edge
// is at trackLeft. Only the primary button adds a stop.
func (t *Track) PointerDown(button PointerButton, clientX, trackLeft float64) {
	if button != ButtonPrimary {
		return
	}

	t.store.AddStop(clientX - trackLeft)
	t.store.ShowPicker(true)
	if t.onActivate != nil {
		t.onActivate()
	}
}
