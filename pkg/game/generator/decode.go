package generator

import (
	"quadrogue/pkg/engine/quadtree"
	"quadrogue/pkg/engine/world"
)

// Quadrant layout shared by generation and decoding: the high bit of a
// quadrant index picks the right half, the low bit picks the bottom half.
//
//	0 | 2
//	--+--
//	1 | 3

// RoomSize returns the side length of a room of the given size class
func RoomSize(class int) int {
	return 2 << class
}

// Decode turns a flattened path into the top-left corner of its cell inside
// a macro-cell of a depth-level tree. Level 0 sits in the lowest bits and
// moves by half the macro-cell; every deeper level moves by half as much.
func Decode(path quadtree.Path, depth int) world.Vec {
	base := 1 << depth

	var pos world.Vec
	for i := 0; i < depth; i++ {
		q := path.Quadrant(i)
		step := base >> i
		pos.X += (q >> 1) * step
		pos.Y += (q & 1) * step
	}
	return pos
}

// Encode is the inverse of Decode for corners that lie on the finest grid
func Encode(pos world.Vec, depth int) quadtree.Path {
	var path quadtree.Path
	for i := 0; i < depth; i++ {
		shift := depth - i
		x := (pos.X >> shift) & 1
		y := (pos.Y >> shift) & 1
		path = path.With(i, x<<1|y)
	}
	return path
}
