package geometry

// Axis is the direction along which an axis group arranges its children.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Invert returns the cross axis.
func (a Axis) Invert() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}
