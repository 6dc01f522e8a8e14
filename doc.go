// Package stopedit provides the editing engine behind a gradient color-stop
// picker.
//
// # Overview
//
// A gradient is a set of color stops placed along a horizontal track. The
// user adds stops by clicking the track, drags them to new positions,
// selects one to recolor it, and deletes them. stopedit models that
// interaction without rendering anything: the host feeds it pointer events
// and draws what the editor reports.
//
// # Quick Start
//
//	s, err := stopedit.NewStore([]stopedit.ColorStop{
//	    stopedit.NewColorStop(0, "#ff0000"),
//	    stopedit.NewColorStop(1, "#0000ff"),
//	}, func(p []stopedit.CanonicalStop) {
//	    save(p) // every change arrives here, sorted by offset
//	})
//
//	track := stopedit.NewTrack(s, showPicker)
//	track.PointerDown(stopedit.ButtonPrimary, clientX, trackLeft)
//
//	drags := stopedit.NewDragController(s, s.Limits())
//	stop, _ := s.Stop(id)
//	err = drags.Run(ctx, stop, pointerEvents)
//
// # Coordinates
//
// Offsets are normalized to [0, 1] of the track width. A stop's marker is
// drawn at ToPixelOffset(offset, width), which is shifted left by
// MarkerHalfWidth so the marker is centered on its offset. Dragged markers
// map back through ToNormalizedOffset. New stops map through AddOffset,
// which anchors them at the raw click point.
//
// # Limits
//
// Adds beyond the maximum stop count, deletes below the minimum, and
// recolors without an active stop are ignored. They are not errors and
// produce no emission.
//
// # Concurrency
//
// Store, Track and DragController expect their methods to be called from a
// single event loop in arrival order. Only SetLogger and Logger are safe
// for concurrent use.
package stopedit
