package flex

import (
	"panegrid/internal/geometry"

	"github.com/charmbracelet/lipgloss"
)

// CursorStyle is the pointer affordance advertised by a region.
type CursorStyle int

const (
	CursorArrow CursorStyle = iota
	CursorResizeLeftRight
	CursorResizeUpDown
	CursorPointingHand
)

// RenderFunc produces the content of a box sized in whole cells.
type RenderFunc func(width, height int) string

// Border describes which edges of a rectangle carry a border line.
// Overlay borders are drawn over the content instead of taking space from it.
type Border struct {
	Width   float64
	Color   lipgloss.TerminalColor
	Style   lipgloss.Border
	Top     bool
	Right   bool
	Bottom  bool
	Left    bool
	Overlay bool
}

// BorderAll returns a border on all four edges.
func BorderAll(width float64, color lipgloss.TerminalColor) Border {
	return Border{
		Width:  width,
		Color:  color,
		Style:  lipgloss.NormalBorder(),
		Top:    true,
		Right:  true,
		Bottom: true,
		Left:   true,
	}
}

// IsZero reports whether the border draws nothing.
func (b Border) IsZero() bool {
	return b.Width <= 0 || !(b.Top || b.Right || b.Bottom || b.Left)
}

// insets returns the space the border takes from its content on each edge.
func (b Border) insets() (top, right, bottom, left float64) {
	if b.Overlay || b.Width <= 0 {
		return 0, 0, 0, 0
	}
	if b.Top {
		top = b.Width
	}
	if b.Right {
		right = b.Width
	}
	if b.Bottom {
		bottom = b.Width
	}
	if b.Left {
		left = b.Width
	}
	return top, right, bottom, left
}

type primitiveKind int

const (
	primitiveContent primitiveKind = iota
	primitiveBorder
)

// Primitive is one drawing operation recorded by a scene.
type Primitive struct {
	kind   primitiveKind
	Bounds geometry.Rect
	Clip   geometry.Rect
	render RenderFunc
	border Border
}

// CursorRegion advertises a cursor style over an area.
type CursorRegion struct {
	Bounds geometry.Rect
	Style  CursorStyle
}

// RegionID identifies a mouse region across repaints. Kind names the handler
// family and Index is derived from the element's position in the tree.
type RegionID struct {
	Kind  string
	Index int
}

// DragEvent is delivered on every pointer movement while a drag is active.
type DragEvent struct {
	Position geometry.Vector
	Start    geometry.Vector
}

// ClickEvent is delivered when a press is released without movement.
type ClickEvent struct {
	Position geometry.Vector
}

type (
	DragHandler  func(DragEvent, *EventContext)
	ClickHandler func(ClickEvent, *EventContext)
)

// MouseRegion routes pointer events over an area to handlers.
type MouseRegion struct {
	ID      RegionID
	Bounds  geometry.Rect
	OnDrag  DragHandler
	OnClick ClickHandler
}

// Scene collects the output of one paint pass.
type Scene struct {
	bounds        geometry.Rect
	layers        []geometry.Rect
	primitives    []Primitive
	cursorRegions []CursorRegion
	mouseRegions  []MouseRegion
}

// NewScene returns an empty scene clipped to bounds.
func NewScene(bounds geometry.Rect) *Scene {
	return &Scene{bounds: bounds, layers: []geometry.Rect{bounds}}
}

// Bounds returns the area the scene was created for.
func (s *Scene) Bounds() geometry.Rect {
	return s.bounds
}

func (s *Scene) clip() geometry.Rect {
	return s.layers[len(s.layers)-1]
}

// PushLayer narrows the clip area until the matching PopLayer.
func (s *Scene) PushLayer(clip geometry.Rect) {
	next, ok := s.clip().Intersect(clip)
	if !ok {
		next = geometry.Rect{Origin: clip.Origin}
	}
	s.layers = append(s.layers, next)
}

// PopLayer restores the previous clip area.
func (s *Scene) PopLayer() {
	if len(s.layers) == 1 {
		panic("flex: PopLayer without matching PushLayer")
	}
	s.layers = s.layers[:len(s.layers)-1]
}

// PushContent records a box whose content is produced at rasterization time.
func (s *Scene) PushContent(bounds geometry.Rect, render RenderFunc) {
	s.primitives = append(s.primitives, Primitive{
		kind:   primitiveContent,
		Bounds: bounds,
		Clip:   s.clip(),
		render: render,
	})
}

// PushBorder records a border around bounds.
func (s *Scene) PushBorder(bounds geometry.Rect, border Border) {
	if border.IsZero() {
		return
	}
	s.primitives = append(s.primitives, Primitive{
		kind:   primitiveBorder,
		Bounds: bounds,
		Clip:   s.clip(),
		border: border,
	})
}

// PushCursorRegion records a cursor affordance, clipped to the current layer.
func (s *Scene) PushCursorRegion(r CursorRegion) {
	bounds, ok := r.Bounds.Intersect(s.clip())
	if !ok {
		return
	}
	r.Bounds = bounds
	s.cursorRegions = append(s.cursorRegions, r)
}

// PushMouseRegion records a mouse region, clipped to the current layer.
// Later regions are on top of earlier ones.
func (s *Scene) PushMouseRegion(r MouseRegion) {
	bounds, ok := r.Bounds.Intersect(s.clip())
	if !ok {
		return
	}
	r.Bounds = bounds
	s.mouseRegions = append(s.mouseRegions, r)
}

func (s *Scene) Primitives() []Primitive       { return s.primitives }
func (s *Scene) CursorRegions() []CursorRegion { return s.cursorRegions }
func (s *Scene) MouseRegions() []MouseRegion   { return s.mouseRegions }

// RegionAt returns the topmost mouse region containing p.
func (s *Scene) RegionAt(p geometry.Vector) (MouseRegion, bool) {
	for i := len(s.mouseRegions) - 1; i >= 0; i-- {
		if s.mouseRegions[i].Bounds.Contains(p) {
			return s.mouseRegions[i], true
		}
	}
	return MouseRegion{}, false
}

// Region returns the region with the given id.
func (s *Scene) Region(id RegionID) (MouseRegion, bool) {
	for i := len(s.mouseRegions) - 1; i >= 0; i-- {
		if s.mouseRegions[i].ID == id {
			return s.mouseRegions[i], true
		}
	}
	return MouseRegion{}, false
}

// CursorAt returns the cursor style of the topmost cursor region containing p.
func (s *Scene) CursorAt(p geometry.Vector) CursorStyle {
	for i := len(s.cursorRegions) - 1; i >= 0; i-- {
		if s.cursorRegions[i].Bounds.Contains(p) {
			return s.cursorRegions[i].Style
		}
	}
	return CursorArrow
}
