package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/stopedit"
	"github.com/gogpu/stopedit/internal/config"
)

var buttons = map[string]stopedit.PointerButton{
	"":          stopedit.ButtonPrimary,
	"primary":   stopedit.ButtonPrimary,
	"auxiliary": stopedit.ButtonAuxiliary,
	"secondary": stopedit.ButtonSecondary,
}

var regions = map[string]stopedit.Region{
	"":              stopedit.RegionNone,
	"none":          stopedit.RegionNone,
	"track":         stopedit.RegionTrack,
	"stopMarker":    stopedit.RegionStopMarker,
	"deleteControl": stopedit.RegionDeleteControl,
	"detailWidget":  stopedit.RegionDetailWidget,
}

// replay runs actions against store in order.
func replay(store *stopedit.Store, actions []config.Action, logger *slog.Logger) error {
	track := stopedit.NewTrack(store, func() {
		logger.Debug("detail widget shown")
	})
	drags := stopedit.NewDragController(store, store.Limits())

	for i, a := range actions {
		switch a.Type {
		case "add":
			b, ok := buttons[a.Button]
			if !ok {
				return fmt.Errorf("action %d: unknown button %q", i, a.Button)
			}
			track.PointerDown(b, a.X, 0)
		case "drag":
			stop, ok := store.Stop(a.ID)
			if !ok {
				return fmt.Errorf("action %d: no stop %d", i, a.ID)
			}
			if err := drags.Run(context.Background(), stop, gesture(a)); err != nil {
				return fmt.Errorf("action %d: %w", i, err)
			}
		case "select":
			store.SelectStop(a.ID)
		case "delete":
			if a.ID == 0 {
				store.DeleteActive()
			} else {
				store.DeleteStop(a.ID)
			}
		case "recolor":
			store.RecolorActive(a.Color, config.OpacityOr(a.Opacity, 1))
		case "click":
			r, ok := regions[a.Region]
			if !ok {
				return fmt.Errorf("action %d: unknown region %q", i, a.Region)
			}
			store.HandleClick(r)
		default:
			return fmt.Errorf("action %d: unknown type %q", i, a.Type)
		}

		id, _ := store.ActiveID()
		logger.Debug("action applied", "index", i, "type", a.Type, "active", id,
			"picker", store.PickerVisible())
	}
	return nil
}

// gesture turns a drag action into a complete pointer stream.
func gesture(a config.Action) <-chan stopedit.PointerEvent {
	events := make(chan stopedit.PointerEvent, len(a.Moves)+2)
	events <- stopedit.PointerEvent{Type: stopedit.PointerDown, ClientX: a.X}
	last := a.X
	for _, x := range a.Moves {
		events <- stopedit.PointerEvent{Type: stopedit.PointerMove, ClientX: x}
		last = x
	}
	events <- stopedit.PointerEvent{Type: stopedit.PointerUp, ClientX: last}
	close(events)
	return events
}
