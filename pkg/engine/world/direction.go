package world

// Direction represents one of the eight compass directions
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case NorthWest:
		return "NorthWest"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	default:
		return "Unknown"
	}
}

// Delta returns the step taken when moving one tile in this direction
func (d Direction) Delta() Vec {
	switch d {
	case North:
		return V(0, -1)
	case East:
		return V(1, 0)
	case South:
		return V(0, 1)
	case West:
		return V(-1, 0)
	case NorthEast:
		return V(1, -1)
	case NorthWest:
		return V(-1, -1)
	case SouthEast:
		return V(1, 1)
	case SouthWest:
		return V(-1, 1)
	default:
		return Vec{}
	}
}
