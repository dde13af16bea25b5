package flex

import (
	"math"

	"panegrid/internal/geometry"

	"github.com/charmbracelet/lipgloss"
)

// Element is a node of the layout tree. Layout must be called before Paint;
// Size returns the size chosen by the last Layout.
type Element interface {
	Layout(c geometry.SizeConstraint) geometry.Vector
	Paint(s *Scene, origin geometry.Vector, visible geometry.Rect)
	Size() geometry.Vector
}

// fill returns the largest finite size admitted by c, never negative.
func fill(c geometry.SizeConstraint) geometry.Vector {
	size := c.Min
	if !math.IsInf(c.Max.X, 0) {
		size.X = c.Max.X
	}
	if !math.IsInf(c.Max.Y, 0) {
		size.Y = c.Max.Y
	}
	size.X = math.Max(size.X, 0)
	size.Y = math.Max(size.Y, 0)
	return size
}

// Box is a leaf that fills its constraint and renders opaque content.
type Box struct {
	render  RenderFunc
	clickID RegionID
	onClick ClickHandler
	size    geometry.Vector
}

// NewBox returns a box drawing the output of render.
func NewBox(render RenderFunc) *Box {
	return &Box{render: render}
}

// OnClick registers a click handler over the whole box.
func (b *Box) OnClick(id RegionID, h ClickHandler) *Box {
	b.clickID = id
	b.onClick = h
	return b
}

func (b *Box) Layout(c geometry.SizeConstraint) geometry.Vector {
	b.size = fill(c)
	return b.size
}

func (b *Box) Paint(s *Scene, origin geometry.Vector, _ geometry.Rect) {
	bounds := geometry.Rect{Origin: origin, Size: b.size}
	if b.render != nil {
		s.PushContent(bounds, b.render)
	}
	if b.onClick != nil {
		s.PushMouseRegion(MouseRegion{ID: b.clickID, Bounds: bounds, OnClick: b.onClick})
	}
}

func (b *Box) Size() geometry.Vector { return b.size }

// Empty fills its constraint and draws nothing.
type Empty struct {
	size geometry.Vector
}

func NewEmpty() *Empty { return &Empty{} }

func (e *Empty) Layout(c geometry.SizeConstraint) geometry.Vector {
	e.size = fill(c)
	return e.size
}

func (e *Empty) Paint(*Scene, geometry.Vector, geometry.Rect) {}

func (e *Empty) Size() geometry.Vector { return e.size }

// Label is a single block of styled text sized to its content.
type Label struct {
	text    string
	style   lipgloss.Style
	clickID RegionID
	onClick ClickHandler
	size    geometry.Vector
}

// NewLabel returns a label rendering text with style.
func NewLabel(text string, style lipgloss.Style) *Label {
	return &Label{text: text, style: style}
}

// OnClick makes the label clickable.
func (l *Label) OnClick(id RegionID, h ClickHandler) *Label {
	l.clickID = id
	l.onClick = h
	return l
}

// Text returns the unstyled label text.
func (l *Label) Text() string { return l.text }

func (l *Label) Layout(c geometry.SizeConstraint) geometry.Vector {
	rendered := l.style.Render(l.text)
	natural := geometry.Vec(float64(lipgloss.Width(rendered)), float64(lipgloss.Height(rendered)))
	l.size = c.Constrain(natural)
	return l.size
}

func (l *Label) Paint(s *Scene, origin geometry.Vector, _ geometry.Rect) {
	bounds := geometry.Rect{Origin: origin, Size: l.size}
	text, style := l.text, l.style
	s.PushContent(bounds, func(width, _ int) string {
		return style.MaxWidth(width).Render(text)
	})
	if l.onClick != nil {
		s.PushMouseRegion(MouseRegion{ID: l.clickID, Bounds: bounds, OnClick: l.onClick})
	}
}

func (l *Label) Size() geometry.Vector { return l.size }

// Alignment positions a child inside a larger area. -1 is the start edge,
// 0 the centre and 1 the end edge on each axis.
type Alignment struct {
	X, Y float64
}

var (
	AlignTopLeft     = Alignment{X: -1, Y: -1}
	AlignCenter      = Alignment{}
	AlignBottomRight = Alignment{X: 1, Y: 1}
)

// Aligned fills its constraint and positions its child within it.
type Aligned struct {
	child     Element
	alignment Alignment
	size      geometry.Vector
}

// NewAligned wraps child with an alignment.
func NewAligned(child Element, alignment Alignment) *Aligned {
	return &Aligned{child: child, alignment: alignment}
}

func (a *Aligned) Layout(c geometry.SizeConstraint) geometry.Vector {
	childSize := a.child.Layout(geometry.NewConstraint(geometry.Vector{}, c.Max))
	size := fill(c)
	if math.IsInf(c.Max.X, 0) {
		size.X = math.Max(size.X, childSize.X)
	}
	if math.IsInf(c.Max.Y, 0) {
		size.Y = math.Max(size.Y, childSize.Y)
	}
	a.size = size
	return size
}

func (a *Aligned) Paint(s *Scene, origin geometry.Vector, visible geometry.Rect) {
	free := a.size.Sub(a.child.Size())
	offset := geometry.Vec(
		free.X*(a.alignment.X+1)/2,
		free.Y*(a.alignment.Y+1)/2,
	)
	a.child.Paint(s, origin.Add(offset), visible)
}

func (a *Aligned) Size() geometry.Vector { return a.size }

// Stack lays its children over each other; later children paint on top.
type Stack struct {
	children []Element
	size     geometry.Vector
}

// NewStack returns a stack of children.
func NewStack(children ...Element) *Stack {
	return &Stack{children: children}
}

// WithChild appends a child when it is non-nil.
func (st *Stack) WithChild(child Element) *Stack {
	if child != nil {
		st.children = append(st.children, child)
	}
	return st
}

func (st *Stack) Layout(c geometry.SizeConstraint) geometry.Vector {
	var size geometry.Vector
	for _, child := range st.children {
		childSize := child.Layout(c)
		size.X = math.Max(size.X, childSize.X)
		size.Y = math.Max(size.Y, childSize.Y)
	}
	st.size = size
	return size
}

func (st *Stack) Paint(s *Scene, origin geometry.Vector, visible geometry.Rect) {
	for _, child := range st.children {
		child.Paint(s, origin, visible)
	}
}

func (st *Stack) Size() geometry.Vector { return st.size }

// Container draws a border around its child. Non-overlay borders take their
// width from the space offered to the child.
type Container struct {
	child  Element
	border Border
	size   geometry.Vector
}

// NewContainer wraps child with border.
func NewContainer(child Element, border Border) *Container {
	return &Container{child: child, border: border}
}

// Border returns the container's border.
func (ct *Container) Border() Border { return ct.border }

func (ct *Container) Layout(c geometry.SizeConstraint) geometry.Vector {
	top, right, bottom, left := ct.border.insets()
	inset := geometry.Vec(left+right, top+bottom)
	childMin := c.Min.Sub(inset)
	childMin.X = math.Max(childMin.X, 0)
	childMin.Y = math.Max(childMin.Y, 0)
	childMax := c.Max.Sub(inset)
	childMax.X = math.Max(childMax.X, 0)
	childMax.Y = math.Max(childMax.Y, 0)

	childSize := ct.child.Layout(geometry.NewConstraint(childMin, childMax))
	ct.size = c.Constrain(childSize.Add(inset))
	return ct.size
}

func (ct *Container) Paint(s *Scene, origin geometry.Vector, visible geometry.Rect) {
	top, _, _, left := ct.border.insets()
	ct.child.Paint(s, origin.Add(geometry.Vec(left, top)), visible)
	s.PushBorder(geometry.Rect{Origin: origin, Size: ct.size}, ct.border)
}

func (ct *Container) Size() geometry.Vector { return ct.size }
