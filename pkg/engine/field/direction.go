package field

// Direction is one of the eight compass directions around a square
type Direction int

// Direction constants, in the order neighbors are probed
const (
	TopLeft Direction = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left
)

// AllDirections returns the directions in probe order.
// Neighbor lists, and therefore flood fill order, follow this order.
func AllDirections() []Direction {
	return []Direction{TopLeft, Top, TopRight, Right, BottomRight, Bottom, BottomLeft, Left}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case TopLeft:
		return "TopLeft"
	case Top:
		return "Top"
	case TopRight:
		return "TopRight"
	case Right:
		return "Right"
	case BottomRight:
		return "BottomRight"
	case Bottom:
		return "Bottom"
	case BottomLeft:
		return "BottomLeft"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= TopLeft && d <= Left
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case TopLeft:
		return -1, -1
	case Top:
		return -1, 0
	case TopRight:
		return -1, 1
	case Right:
		return 0, 1
	case BottomRight:
		return 1, 1
	case Bottom:
		return 1, 0
	case BottomLeft:
		return 1, -1
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}
