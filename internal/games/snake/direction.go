package snake

// Direction represents the snake's heading.
type Direction int

const (
	DirTop Direction = iota
	DirRight
	DirBottom
	DirLeft
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{DirTop, DirRight, DirBottom, DirLeft}

// Valid reports whether d is one of the four cardinal headings.
func (d Direction) Valid() bool {
	return d >= DirTop && d <= DirLeft
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirTop:
		return DirBottom
	case DirRight:
		return DirLeft
	case DirBottom:
		return DirTop
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Delta returns the unit offset for one step in this direction.
// Y grows downward, so Top decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirTop:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirBottom:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirTop:
		return "top"
	case DirRight:
		return "right"
	case DirBottom:
		return "bottom"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
