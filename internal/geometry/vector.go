package geometry

import "math"

// Vector is a point or a size, depending on context.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Along returns the component along axis.
func (v Vector) Along(axis Axis) float64 {
	if axis == Horizontal {
		return v.X
	}
	return v.Y
}

// WithAlong returns a copy of v with the component along axis replaced.
func (v Vector) WithAlong(axis Axis, value float64) Vector {
	if axis == Horizontal {
		v.X = value
	} else {
		v.Y = value
	}
	return v
}

// Add returns v + other.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

// IsFinite reports whether both components are finite.
func (v Vector) IsFinite() bool {
	return !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.X) && !math.IsNaN(v.Y)
}
