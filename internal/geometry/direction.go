package geometry

import (
	"fmt"
	"strings"
)

// SplitDirection is the side of an existing pane on which a new pane appears.
type SplitDirection int

const (
	Up SplitDirection = iota
	Down
	Left
	Right
)

// All returns the four directions in declaration order.
func All() [4]SplitDirection {
	return [4]SplitDirection{Up, Down, Left, Right}
}

// Axis maps Up/Down to Vertical and Left/Right to Horizontal.
func (d SplitDirection) Axis() Axis {
	switch d {
	case Up, Down:
		return Vertical
	default:
		return Horizontal
	}
}

// Increasing reports whether the new pane is ordered after the existing one.
func (d SplitDirection) Increasing() bool {
	return d == Down || d == Right
}

// Edge returns the coordinate of r's boundary on this side.
func (d SplitDirection) Edge(r Rect) float64 {
	switch d {
	case Up:
		return r.MinY()
	case Down:
		return r.MaxY()
	case Left:
		return r.MinX()
	default:
		return r.MaxX()
	}
}

// AlongEdge returns the sub-rectangle of r that is size thick and flush against
// this side. Used for drop-target previews.
func (d SplitDirection) AlongEdge(r Rect, size float64) Rect {
	switch d {
	case Up:
		return Rect{Origin: r.Origin, Size: Vec(r.Width(), size)}
	case Down:
		return Rect{Origin: r.LowerLeft().Sub(Vec(0, size)), Size: Vec(r.Width(), size)}
	case Left:
		return Rect{Origin: r.Origin, Size: Vec(size, r.Height())}
	default:
		return Rect{Origin: r.UpperRight().Sub(Vec(size, 0)), Size: Vec(size, r.Height())}
	}
}

func (d SplitDirection) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("SplitDirection(%d)", int(d))
	}
}

// ParseSplitDirection accepts the lowercase names produced by String, plus the
// vim-style h/j/k/l.
func ParseSplitDirection(s string) (SplitDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "k":
		return Up, nil
	case "down", "j":
		return Down, nil
	case "left", "h":
		return Left, nil
	case "right", "l":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown split direction %q", s)
}
