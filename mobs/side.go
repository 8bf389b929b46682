package mobs

// Side names one face of a bounding box.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

var sideNames = [...]string{"top", "bottom", "left", "right"}

func (s Side) String() string {
	if s < SideTop || s > SideRight {
		return "unknown"
	}
	return sideNames[s]
}

// Reflect returns the opposite face. Reflecting twice yields the original side.
func (s Side) Reflect() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return s
}

// Intercept describes where a mob's path met an obstacle: the side of the
// mob that made contact and the anchor point to snap to.
type Intercept struct {
	Side Side
	X, Y float64
}
