package flex

import (
	"fmt"
	"math"

	"panegrid/internal/geometry"
)

// HandleHitboxSize is the default thickness of the divider drag region.
const HandleHitboxSize = 4.0

// ResizeHandleKind is the RegionID kind of divider drag regions.
const ResizeHandleKind = "resize-handle"

// AxisElement lays children out along one axis in proportion to a shared
// weight vector and paints a drag handle between each adjacent pair.
type AxisElement struct {
	axis       geometry.Axis
	firstID    int
	weights    *Weights
	children   []Element
	minSizes   MinSizes
	handleSize float64

	size      geometry.Vector
	remaining float64
}

// NewAxisElement returns an element reading its weights from weights. Its drag
// handles get region IDs firstID, firstID+1, ...
func NewAxisElement(axis geometry.Axis, firstID int, weights *Weights) *AxisElement {
	return &AxisElement{
		axis:       axis,
		firstID:    firstID,
		weights:    weights,
		minSizes:   DefaultMinSizes,
		handleSize: HandleHitboxSize,
	}
}

// WithChild appends a child.
func (e *AxisElement) WithChild(child Element) *AxisElement {
	e.children = append(e.children, child)
	return e
}

// WithMinSizes overrides the drag floors.
func (e *AxisElement) WithMinSizes(m MinSizes) *AxisElement {
	e.minSizes = m
	return e
}

// WithHandleSize overrides the divider hit-region thickness.
func (e *AxisElement) WithHandleSize(size float64) *AxisElement {
	if size > 0 {
		e.handleSize = size
	}
	return e
}

// Axis returns the layout axis.
func (e *AxisElement) Axis() geometry.Axis { return e.axis }

// Children returns the child elements in order.
func (e *AxisElement) Children() []Element { return e.children }

// Remaining returns the main-axis space left unused by the last Layout.
// It is negative when the children overflow.
func (e *AxisElement) Remaining() float64 { return e.remaining }

func (e *AxisElement) Layout(c geometry.SizeConstraint) geometry.Vector {
	if len(e.children) != e.weights.Len() {
		panic(fmt.Sprintf("flex: %d children but %d weights", len(e.children), e.weights.Len()))
	}

	remainingFlex := e.weights.Total()
	remainingSpace := c.MaxAlong(e.axis)
	if math.IsInf(remainingSpace, 0) {
		panic("flex: flexible children require a finite constraint along the flex axis")
	}

	cross := e.axis.Invert()
	var crossMax float64
	for ix, child := range e.children {
		flex := e.weights.At(ix)

		span := remainingSpace
		if remainingFlex != 0 {
			span = remainingSpace / remainingFlex * flex
		}

		childConstraint := geometry.NewConstraint(
			c.Min.WithAlong(e.axis, span),
			c.Max.WithAlong(e.axis, span),
		)
		childSize := child.Layout(childConstraint)
		remainingSpace -= childSize.Along(e.axis)
		remainingFlex -= flex
		crossMax = math.Max(crossMax, childSize.Along(cross))
	}

	var size geometry.Vector
	size = size.WithAlong(e.axis, c.MaxAlong(e.axis)-remainingSpace)
	size = size.WithAlong(cross, crossMax)

	e.size = c.Constrain(size)
	e.remaining = remainingSpace
	return e.size
}

func (e *AxisElement) Paint(s *Scene, origin geometry.Vector, visible geometry.Rect) {
	bounds := geometry.Rect{Origin: origin, Size: e.size}
	visible, ok := bounds.Intersect(visible)
	if !ok {
		visible = geometry.Rect{Origin: origin}
	}

	overflowing := e.remaining < 0
	if overflowing {
		s.PushLayer(visible)
		defer s.PopLayer()
	}

	cursor := CursorResizeLeftRight
	if e.axis == geometry.Vertical {
		cursor = CursorResizeUpDown
	}
	minSize := e.minSizes.Along(e.axis)

	starts := make([]geometry.Vector, len(e.children)+1)
	starts[0] = origin
	for ix, child := range e.children {
		child.Paint(s, starts[ix], visible)
		var step geometry.Vector
		starts[ix+1] = starts[ix].Add(step.WithAlong(e.axis, child.Size().Along(e.axis)))
	}

	// Handles go on top of both neighbours' regions.
	for ix := 0; ix+1 < len(e.children); ix++ {
		child, next := e.children[ix], e.children[ix+1]

		var shift geometry.Vector
		handleOrigin := starts[ix+1].Sub(shift.WithAlong(e.axis, e.handleSize/2))
		var handleSize geometry.Vector
		handleSize = handleSize.WithAlong(e.axis, e.handleSize)
		handleSize = handleSize.WithAlong(e.axis.Invert(), visible.LengthAlong(e.axis.Invert()))
		handleOrigin = handleOrigin.WithAlong(e.axis.Invert(), visible.Origin.Along(e.axis.Invert()))
		handleBounds := geometry.Rect{Origin: handleOrigin, Size: handleSize}

		s.PushCursorRegion(CursorRegion{Bounds: handleBounds, Style: cursor})

		gesture := ResizeGesture{
			Axis:            e.axis,
			Index:           ix,
			ChildStart:      starts[ix],
			ChildSize:       child.Size().Along(e.axis),
			NextSize:        next.Size().Along(e.axis),
			CurrentFlex:     e.weights.At(ix),
			NextFlex:        e.weights.At(ix + 1),
			ContainerLength: visible.LengthAlong(e.axis),
			MinSize:         minSize,
			Weights:         e.weights,
		}
		s.PushMouseRegion(MouseRegion{
			ID:     RegionID{Kind: ResizeHandleKind, Index: e.firstID + ix},
			Bounds: handleBounds,
			OnDrag: func(ev DragEvent, cx *EventContext) {
				if gesture.Drag(ev.Position) {
					cx.Notify()
				}
			},
		})
	}
}

func (e *AxisElement) Size() geometry.Vector { return e.size }
