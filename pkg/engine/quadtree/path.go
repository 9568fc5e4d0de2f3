package quadtree

import "fmt"

// MaxLevels is the deepest level a Path can encode
const MaxLevels = 32

// Path packs the quadrant taken at each level of a root-to-leaf walk, two bits
// per level. Level 0 (the root's children) sits in the lowest bits.
type Path uint64

// With returns a copy of the path with quadrant q recorded at level. It
// panics when level is outside 0..MaxLevels-1.
func (p Path) With(level, q int) Path {
	if level < 0 || level >= MaxLevels {
		panic(fmt.Sprintf("quadtree: level %d outside a %d-level path", level, MaxLevels))
	}
	return p | Path(q&0b11)<<(2*level)
}

// Quadrant returns the quadrant recorded at level
func (p Path) Quadrant(level int) int {
	return int(p>>(2*level)) & 0b11
}
