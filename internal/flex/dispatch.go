package flex

import "panegrid/internal/geometry"

// MouseAction is the kind of pointer event.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseMotion
	MouseRelease
)

// MouseEvent is a pointer event in scene coordinates.
type MouseEvent struct {
	Action   MouseAction
	Position geometry.Vector
}

type gestureState int

const (
	gestureIdle gestureState = iota
	gestureArmed
	gestureDragging
)

func (g gestureState) String() string {
	switch g {
	case gestureArmed:
		return "armed"
	case gestureDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// EventContext is handed to region handlers.
type EventContext struct {
	d *Dispatcher
}

// Notify requests a new layout and paint pass.
func (cx *EventContext) Notify() {
	cx.d.notified = true
}

// Dispatcher routes pointer events to the mouse regions of the last painted
// scene. A press inside a region arms it, motion turns the press into a drag,
// and release returns to idle. Dragging looks the region up again on every
// move so handlers always see the sizes of the latest paint; if the region is
// gone the gesture is dropped and earlier adjustments stay in place.
type Dispatcher struct {
	scene    *Scene
	state    gestureState
	active   RegionID
	start    geometry.Vector
	notified bool
}

// NewDispatcher returns an idle dispatcher with no scene.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SetScene installs the scene produced by the latest paint.
func (d *Dispatcher) SetScene(s *Scene) {
	d.scene = s
}

// Scene returns the latest painted scene, or nil.
func (d *Dispatcher) Scene() *Scene {
	return d.scene
}

// Dragging reports whether a press has turned into a drag.
func (d *Dispatcher) Dragging() bool {
	return d.state == gestureDragging
}

// Active returns the region of the gesture in progress.
func (d *Dispatcher) Active() (RegionID, bool) {
	return d.active, d.state != gestureIdle
}

// State names the gesture state: idle, armed or dragging.
func (d *Dispatcher) State() string {
	return d.state.String()
}

// Cancel abandons the gesture in progress without undoing its effects.
func (d *Dispatcher) Cancel() {
	d.state = gestureIdle
	d.active = RegionID{}
}

// TakeNotified reports whether a handler asked for a repaint since the last
// call, and clears the flag.
func (d *Dispatcher) TakeNotified() bool {
	n := d.notified
	d.notified = false
	return n
}

// CursorAt returns the cursor affordance at p.
func (d *Dispatcher) CursorAt(p geometry.Vector) CursorStyle {
	if d.scene == nil {
		return CursorArrow
	}
	return d.scene.CursorAt(p)
}

// Dispatch handles ev and reports whether it was consumed by a region.
func (d *Dispatcher) Dispatch(ev MouseEvent) bool {
	if d.scene == nil {
		return false
	}
	cx := &EventContext{d: d}

	switch ev.Action {
	case MousePress:
		region, ok := d.scene.RegionAt(ev.Position)
		if !ok || (region.OnDrag == nil && region.OnClick == nil) {
			d.Cancel()
			return false
		}
		d.state = gestureArmed
		d.active = region.ID
		d.start = ev.Position
		return true

	case MouseMotion:
		if d.state == gestureIdle {
			return false
		}
		region, ok := d.scene.Region(d.active)
		if !ok {
			d.Cancel()
			return false
		}
		d.state = gestureDragging
		if region.OnDrag != nil {
			region.OnDrag(DragEvent{Position: ev.Position, Start: d.start}, cx)
		}
		return true

	case MouseRelease:
		if d.state == gestureIdle {
			return false
		}
		wasArmed := d.state == gestureArmed
		id := d.active
		d.Cancel()
		if !wasArmed {
			return true
		}
		region, ok := d.scene.Region(id)
		if ok && region.OnClick != nil && region.Bounds.Contains(ev.Position) {
			region.OnClick(ClickEvent{Position: ev.Position}, cx)
		}
		return true
	}
	return false
}
