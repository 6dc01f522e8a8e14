package stopedit

// Region names an area of the editor a click can land in.
type Region int

const (
	// RegionNone is anywhere outside the editor's recognized areas.
	RegionNone Region = iota
	// RegionTrack is the empty track where clicks add stops.
	RegionTrack
	// RegionStopMarker is a stop's draggable handle.
	RegionStopMarker
	// RegionDeleteControl is the control that deletes the active stop.
	RegionDeleteControl
	// RegionDetailWidget is the color and opacity picker.
	RegionDetailWidget
)

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionTrack:
		return "track"
	case RegionStopMarker:
		return "stopMarker"
	case RegionDeleteControl:
		return "deleteControl"
	case RegionDetailWidget:
		return "detailWidget"
	default:
		return "none"
	}
}

// HitTester is provided by the host to resolve a pointer position to the
// region under it.
type HitTester interface {
	HitTest(x, y float64) Region
}

// HitTesterFunc adapts a function to HitTester.
type HitTesterFunc func(x, y float64) Region

// HitTest implements HitTester.
func (f HitTesterFunc) HitTest(x, y float64) Region { return f(x, y) }

// HandleClick applies a pointer-down that landed in r. Clicks on the track,
// a stop marker or the detail widget leave the selection alone. Anywhere
// else hides the detail widget, and everything but the delete control also
// clears the active stop.
//
// The rule applies whether or not the detail widget is currently shown, so
// an outside click also drops a selection made while the widget was hidden.
func (s *Store) HandleClick(r Region) {
	switch r {
	case RegionTrack, RegionStopMarker, RegionDetailWidget:
		return
	}

	s.pickerVisible = false
	if r != RegionDeleteControl {
		s.activeID = 0
	}
}

// ClickAt resolves (x, y) with ht and applies the click.
func (s *Store) ClickAt(ht HitTester, x, y float64) Region {
	r := ht.HitTest(x, y)
	s.HandleClick(r)
	return r
}
