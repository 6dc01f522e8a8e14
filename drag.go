package stopedit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDragInProgress is returned by Begin when the stop already has a live
// drag session.
var ErrDragInProgress = errors.New("stopedit: drag already in progress")

// DefaultAbandonTimeout is how long a drag session may go without a pointer
// sample before a new Begin on the same stop releases it.
const DefaultAbandonTimeout = 30 * time.Second

// DragTarget receives the updates produced by a drag. Store implements it.
type DragTarget interface {
	DragStart(id int)
	MoveStop(id int, pixel float64)
	DragEnd(id int)
}

// PointerEventType distinguishes the samples of a drag gesture.
type PointerEventType int

const (
	PointerDown PointerEventType = iota
	PointerMove
	PointerUp
)

// PointerEvent is one sample of a drag gesture.
type PointerEvent struct {
	Type    PointerEventType
	ClientX float64
}

// DragOption configures a DragController.
type DragOption func(*DragController)

// WithAbandonTimeout sets the idle time after which a session counts as
// abandoned. Zero or negative disables abandonment detection.
func WithAbandonTimeout(d time.Duration) DragOption {
	return func(c *DragController) {
		c.timeout = d
	}
}

// withClock replaces the time source.
func withClock(now func() time.Time) DragOption {
	return func(c *DragController) {
		c.now = now
	}
}

// DragController turns pointer samples into clamped stop positions.
// It knows nothing about the palette beyond the stop handed to Begin and
// never writes the palette itself; every position goes through the target.
//
// A DragController is not safe for concurrent use.
type DragController struct {
	target   DragTarget
	limits   Limits
	timeout  time.Duration
	now      func() time.Time
	sessions map[int]*DragSession
}

// NewDragController returns a controller that reports to target and keeps
// stops within limits.
func NewDragController(target DragTarget, limits Limits, opts ...DragOption) *DragController {
	c := &DragController{
		target:   target,
		limits:   limits,
		timeout:  DefaultAbandonTimeout,
		now:      time.Now,
		sessions: make(map[int]*DragSession),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLimits replaces the drag bounds, e.g. after the track is resized.
// Live sessions use the new bounds on their next move.
func (c *DragController) SetLimits(l Limits) {
	c.limits = l
}

// Limits returns the current drag bounds.
func (c *DragController) Limits() Limits {
	return c.limits
}

// Dragging reports whether stopID has a live session.
func (c *DragController) Dragging(stopID int) bool {
	_, ok := c.sessions[stopID]
	return ok
}

// Begin opens a drag session for stop with the pointer at pointerX and
// notifies the target. A session left idle past the abandonment timeout is
// released first; any other live session on the stop is an error.
func (c *DragController) Begin(stop Stop, pointerX float64) (*DragSession, error) {
	if prev, ok := c.sessions[stop.ID]; ok {
		if c.timeout <= 0 || c.now().Sub(prev.lastSeen) <= c.timeout {
			return nil, fmt.Errorf("%w: stop %d", ErrDragInProgress, stop.ID)
		}
		Logger().Warn("stopedit: releasing abandoned drag", "id", stop.ID,
			"idle", c.now().Sub(prev.lastSeen))
		prev.End()
	}

	s := &DragSession{
		ctrl:         c,
		stopID:       stop.ID,
		startPixel:   stop.PixelOffset,
		startPointer: pointerX,
		lastSeen:     c.now(),
	}
	c.sessions[stop.ID] = s
	c.target.DragStart(stop.ID)
	return s, nil
}

// Release ends the live session on stopID, if any. Hosts call it when they
// lose pointer capture without seeing a pointer-up.
func (c *DragController) Release(stopID int) {
	if s, ok := c.sessions[stopID]; ok {
		s.End()
	}
}

// Run drives one drag gesture from events. The session opens on the first
// PointerDown and is always closed on return: on PointerUp, when events is
// closed, or when ctx is done. It returns ctx.Err() on cancellation.
func (c *DragController) Run(ctx context.Context, stop Stop, events <-chan PointerEvent) error {
	var sess *DragSession
	defer func() {
		if sess != nil {
			sess.End()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Type {
			case PointerDown:
				if sess != nil {
					continue
				}
				s, err := c.Begin(stop, ev.ClientX)
				if err != nil {
					return err
				}
				sess = s
			case PointerMove:
				if sess != nil {
					sess.Move(ev.ClientX)
				}
			case PointerUp:
				return nil
			}
		}
	}
}

// DragSession is the state of one drag gesture on one stop.
type DragSession struct {
	ctrl         *DragController
	stopID       int
	startPixel   float64
	startPointer float64
	lastSeen     time.Time
	closed       bool
}

// StopID returns the id of the dragged stop.
func (s *DragSession) StopID() int { return s.stopID }

// Closed reports whether End has run.
func (s *DragSession) Closed() bool { return s.closed }

// Move reports the stop position for a pointer at pointerX, clamped to
// the controller's limits. Moves after End are ignored.
func (s *DragSession) Move(pointerX float64) {
	if s.closed {
		return
	}
	s.lastSeen = s.ctrl.now()

	l := s.ctrl.limits
	pos := Clamp(s.startPixel-s.startPointer+pointerX, l.Min, l.Max)
	s.ctrl.target.MoveStop(s.stopID, pos)
}

// End closes the session and notifies the target. Only the first call has
// an effect.
func (s *DragSession) End() {
	if s.closed {
		return
	}
	s.closed = true
	if s.ctrl.sessions[s.stopID] == s {
		delete(s.ctrl.sessions, s.stopID)
	}
	s.ctrl.target.DragEnd(s.stopID)
}
