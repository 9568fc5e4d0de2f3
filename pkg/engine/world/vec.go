package world

import "fmt"

// Vec is a tile coordinate or extent. X grows to the right (columns), Y grows
// downwards (rows).
type Vec struct {
	X int
	Y int
}

// V is shorthand for Vec{X: x, Y: y}
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Div divides both components by n, rounding towards negative infinity
func (v Vec) Div(n int) Vec {
	return Vec{floorDiv(v.X, n), floorDiv(v.Y, n)}
}

// In reports whether v lies inside [0, size)
func (v Vec) In(size Vec) bool {
	return v.X >= 0 && v.Y >= 0 && v.X < size.X && v.Y < size.Y
}

// Area returns X*Y
func (v Vec) Area() int {
	return v.X * v.Y
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
