package panegroup

import (
	"strings"

	"panegrid/internal/flex"
	"panegrid/internal/geometry"
)

// Member is a node of the tree: a Leaf or a *PaneAxis.
type Member interface {
	// Contains reports whether pane is this member or one of its descendants.
	Contains(pane Pane) bool

	collectPanes(acc []Pane) []Pane
	render(cx *RenderContext) flex.Element
	writeTo(b *strings.Builder)
}

var (
	_ Member = Leaf{}
	_ Member = (*PaneAxis)(nil)
)

// Leaf is a member holding a single pane.
type Leaf struct {
	Pane Pane
}

func (l Leaf) Contains(pane Pane) bool {
	return l.Pane == pane
}

func (l Leaf) collectPanes(acc []Pane) []Pane {
	return append(acc, l.Pane)
}

func (l Leaf) writeTo(b *strings.Builder) {
	b.WriteString(paneName(l.Pane))
}

// NewAxis returns the two-member axis that replaces old when it is split in
// direction. Up and Left put the new pane first.
func NewAxis(old, new Pane, direction geometry.SplitDirection) *PaneAxis {
	members := []Member{Leaf{Pane: old}, Leaf{Pane: new}}
	if !direction.Increasing() {
		members[0], members[1] = members[1], members[0]
	}
	return NewPaneAxis(direction.Axis(), members...)
}
