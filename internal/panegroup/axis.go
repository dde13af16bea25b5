package panegroup

import (
	"fmt"
	"slices"
	"strings"

	"panegrid/internal/flex"
	"panegrid/internal/geometry"
)

// PaneAxis is an ordered run of members sharing one axis. Its weights always
// have one entry per member and go back to uniform on every structural edit.
type PaneAxis struct {
	axis    geometry.Axis
	members []Member
	weights *flex.Weights
}

// NewPaneAxis returns an axis over members with uniform weights.
func NewPaneAxis(axis geometry.Axis, members ...Member) *PaneAxis {
	return &PaneAxis{
		axis:    axis,
		members: members,
		weights: flex.NewWeights(len(members)),
	}
}

// Axis returns the orientation members are laid out along.
func (a *PaneAxis) Axis() geometry.Axis { return a.axis }

// Members returns the children in render order.
func (a *PaneAxis) Members() []Member { return a.members }

// Weights returns the shared flex vector.
func (a *PaneAxis) Weights() *flex.Weights { return a.weights }

// Flexes returns a copy of the current weights.
func (a *PaneAxis) Flexes() []float64 { return a.weights.Values() }

func (a *PaneAxis) Contains(pane Pane) bool {
	for _, m := range a.members {
		if m.Contains(pane) {
			return true
		}
	}
	return false
}

func (a *PaneAxis) collectPanes(acc []Pane) []Pane {
	for _, m := range a.members {
		acc = m.collectPanes(acc)
	}
	return acc
}

func (a *PaneAxis) split(old, new Pane, direction geometry.SplitDirection) error {
	for ix, m := range a.members {
		switch m := m.(type) {
		case *PaneAxis:
			if err := m.split(old, new, direction); err == nil {
				return nil
			}
		case Leaf:
			if m.Pane != old {
				continue
			}
			if direction.Axis() != a.axis {
				a.members[ix] = NewAxis(old, new, direction)
				return nil
			}
			if direction.Increasing() {
				ix++
			}
			a.members = slices.Insert(a.members, ix, Member(Leaf{Pane: new}))
			a.weights.Reset(len(a.members))
			return nil
		}
	}
	return ErrNotFound
}

// remove deletes pane from the subtree. When the axis is left with a single
// member, that member is returned so the caller can put it in the axis's place.
func (a *PaneAxis) remove(pane Pane) (Member, error) {
	found := false
	removeIx := -1
	for ix, m := range a.members {
		switch m := m.(type) {
		case *PaneAxis:
			survivor, err := m.remove(pane)
			if err != nil {
				continue
			}
			if survivor != nil {
				a.members[ix] = survivor
			}
			found = true
		case Leaf:
			if m.Pane == pane {
				found = true
				removeIx = ix
			}
		}
		if found {
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	if removeIx >= 0 {
		a.members = slices.Delete(a.members, removeIx, removeIx+1)
		a.weights.Reset(len(a.members))
	}
	if len(a.members) == 1 {
		return a.members[0], nil
	}
	return nil, nil
}

// render numbers the axis's drag handles from the pass counter before
// descending, so handle IDs are unique across the tree in pre-order.
func (a *PaneAxis) render(cx *RenderContext) flex.Element {
	if len(a.members) != a.weights.Len() {
		panic(fmt.Sprintf("panegroup: %d members but %d weights", len(a.members), a.weights.Len()))
	}

	first := cx.nextHandle + 1
	cx.nextHandle += len(a.members) - 1
	el := flex.NewAxisElement(a.axis, first, a.weights).
		WithMinSizes(cx.Theme.MinSizes).
		WithHandleSize(cx.Theme.HandleSize)
	for ix, m := range a.members {
		child := m.render(cx)
		if ix < len(a.members)-1 {
			child = flex.NewContainer(child, cx.Theme.dividerBorder(a.axis))
		}
		el.WithChild(child)
	}
	return el
}

func (a *PaneAxis) writeTo(b *strings.Builder) {
	if a.axis == geometry.Horizontal {
		b.WriteString("H[")
	} else {
		b.WriteString("V[")
	}
	for ix, m := range a.members {
		if ix > 0 {
			b.WriteString(", ")
		}
		m.writeTo(b)
	}
	b.WriteString("]")
}
