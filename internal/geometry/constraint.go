package geometry

import "math"

// SizeConstraint bounds the size an element may take during layout.
type SizeConstraint struct {
	Min Vector
	Max Vector
}

// NewConstraint builds a constraint from its bounds.
func NewConstraint(min, max Vector) SizeConstraint {
	return SizeConstraint{Min: min, Max: max}
}

// Strict returns a constraint that only admits size.
func Strict(size Vector) SizeConstraint {
	return SizeConstraint{Min: size, Max: size}
}

// MaxAlong returns the maximum along axis.
func (c SizeConstraint) MaxAlong(axis Axis) float64 {
	return c.Max.Along(axis)
}

// Constrain clamps size into [Min, Max]. Infinite minimums are ignored.
func (c SizeConstraint) Constrain(size Vector) Vector {
	if !math.IsInf(c.Min.X, 0) {
		size.X = math.Max(size.X, c.Min.X)
	}
	if !math.IsInf(c.Min.Y, 0) {
		size.Y = math.Max(size.Y, c.Min.Y)
	}
	size.X = math.Min(size.X, c.Max.X)
	size.Y = math.Min(size.Y, c.Max.Y)
	return size
}
