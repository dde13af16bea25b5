package panegroup

import (
	"fmt"
	"strings"

	"panegrid/internal/flex"
	"panegrid/internal/geometry"
)

// PaneGroup owns the root of a split tree. It always holds at least one pane.
type PaneGroup struct {
	root Member
}

// New returns a group holding a single pane.
func New(pane Pane) *PaneGroup {
	return &PaneGroup{root: Leaf{Pane: pane}}
}

// WithRoot returns a group over an existing tree.
func WithRoot(root Member) *PaneGroup {
	return &PaneGroup{root: root}
}

// Root returns the root member.
func (g *PaneGroup) Root() Member {
	return g.root
}

// Split puts new next to old in direction.
func (g *PaneGroup) Split(old, new Pane, direction geometry.SplitDirection) error {
	switch root := g.root.(type) {
	case Leaf:
		if root.Pane != old {
			return fmt.Errorf("split %s: %w", paneName(old), ErrNotFound)
		}
		g.root = NewAxis(old, new, direction)
		return nil
	case *PaneAxis:
		if err := root.split(old, new, direction); err != nil {
			return fmt.Errorf("split %s: %w", paneName(old), err)
		}
		return nil
	default:
		panic(fmt.Sprintf("panegroup: unknown member %T", root))
	}
}

// Remove takes pane out of the tree. It reports false without error when the
// root is a lone pane: closing the last pane is up to the caller.
func (g *PaneGroup) Remove(pane Pane) (bool, error) {
	switch root := g.root.(type) {
	case Leaf:
		return false, nil
	case *PaneAxis:
		survivor, err := root.remove(pane)
		if err != nil {
			return false, fmt.Errorf("remove %s: %w", paneName(pane), err)
		}
		if survivor != nil {
			g.root = survivor
		}
		return true, nil
	default:
		panic(fmt.Sprintf("panegroup: unknown member %T", root))
	}
}

// Panes returns every pane in pre-order.
func (g *PaneGroup) Panes() []Pane {
	return g.root.collectPanes(nil)
}

// Contains reports whether pane is in the tree.
func (g *PaneGroup) Contains(pane Pane) bool {
	return g.root.Contains(pane)
}

// Render builds the element tree for the current arrangement and weights.
func (g *PaneGroup) Render(cx *RenderContext) flex.Element {
	var rc RenderContext
	if cx != nil {
		rc = *cx
	}
	rc.Theme = rc.Theme.withDefaults()
	if rc.AppName == "" {
		rc.AppName = DefaultAppName
	}
	return g.root.render(&rc)
}

// String dumps the tree, e.g. H[A, V[B, C]].
func (g *PaneGroup) String() string {
	var b strings.Builder
	g.root.writeTo(&b)
	return b.String()
}
