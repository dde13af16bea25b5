package panegroup

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a split or remove names a pane that is not in
// the tree.
var ErrNotFound = errors.New("pane not found")

// Pane is a unit of content owned outside the tree. Panes are compared by
// identity, so implementations must be comparable; pointer types are.
type Pane interface {
	// Render draws the pane into a block of exactly width x height cells.
	Render(width, height int) string
}

func paneName(p Pane) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T(%p)", p, p)
}
