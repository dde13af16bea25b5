package flex

import (
	"math"

	"panegrid/internal/geometry"
)

// MinSizes is the smallest size a child may be dragged to, per axis.
type MinSizes struct {
	Horizontal float64
	Vertical   float64
}

// DefaultMinSizes are measured in terminal cells. Columns are narrower than
// rows are tall, so the horizontal floor is the larger of the two.
var DefaultMinSizes = MinSizes{Horizontal: 12, Vertical: 4}

// Along returns the floor for axis.
func (m MinSizes) Along(axis geometry.Axis) float64 {
	if axis == geometry.Horizontal {
		return m.Horizontal
	}
	return m.Vertical
}

// ResizeGesture holds the state captured when a divider is painted: where the
// child before the divider starts, the sizes and weights of the two children
// either side of it, and the length of the container along the axis.
type ResizeGesture struct {
	Axis            geometry.Axis
	Index           int
	ChildStart      geometry.Vector
	ChildSize       float64
	NextSize        float64
	CurrentFlex     float64
	NextFlex        float64
	ContainerLength float64
	MinSize         float64
	Weights         FlexHandle
}

// Drag moves the divider towards position. It reports whether the weights
// changed. Neither child is pushed below MinSize; when either is already
// smaller than that the drag is ignored, as is a non-finite position.
func (g ResizeGesture) Drag(position geometry.Vector) bool {
	if g.Weights == nil || g.ContainerLength <= 0 || !position.IsFinite() {
		return false
	}
	if g.MinSize-1 > g.ChildSize || g.MinSize-1 > g.NextSize {
		return false
	}

	target := position.Sub(g.ChildStart).Along(g.Axis)
	proposed := target - g.ChildSize
	switch {
	case proposed < 0:
		target = math.Max(target, g.MinSize)
	case proposed > 0:
		nextTarget := math.Max(g.NextSize-proposed, g.MinSize)
		target = math.Min(target, g.ChildSize+g.NextSize-nextTarget)
	}

	change := target - g.ChildSize
	if change == 0 {
		return false
	}
	delta := change / g.ContainerLength
	g.Weights.Resize(g.Index, g.CurrentFlex+delta, g.NextFlex-delta)
	return true
}
