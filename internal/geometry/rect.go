package geometry

import "math"

// Rect is an axis-aligned rectangle. Size components are never negative for
// rectangles produced by this package.
type Rect struct {
	Origin Vector
	Size   Vector
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{Origin: Vec(x, y), Size: Vec(width, height)}
}

func (r Rect) MinX() float64   { return r.Origin.X }
func (r Rect) MinY() float64   { return r.Origin.Y }
func (r Rect) MaxX() float64   { return r.Origin.X + r.Size.X }
func (r Rect) MaxY() float64   { return r.Origin.Y + r.Size.Y }
func (r Rect) Width() float64  { return r.Size.X }
func (r Rect) Height() float64 { return r.Size.Y }

// LowerLeft returns the bottom-left corner.
func (r Rect) LowerLeft() Vector {
	return Vec(r.MinX(), r.MaxY())
}

// UpperRight returns the top-right corner.
func (r Rect) UpperRight() Vector {
	return Vec(r.MaxX(), r.MinY())
}

// LengthAlong returns the rectangle's extent along axis.
func (r Rect) LengthAlong(axis Axis) float64 {
	return r.Size.Along(axis)
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Intersect returns the overlap of r and other, and false when they are disjoint.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	x0 := math.Max(r.MinX(), other.MinX())
	y0 := math.Max(r.MinY(), other.MinY())
	x1 := math.Min(r.MaxX(), other.MaxX())
	y1 := math.Min(r.MaxY(), other.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}, false
	}
	return NewRect(x0, y0, x1-x0, y1-y0), true
}
