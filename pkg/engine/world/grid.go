// Package world provides the tile grid and coordinate primitives the dungeon
// is carved into. These are engine-level constructs with no game rules.
package world

import (
	"fmt"
)

// GridBoundsError reports an access outside the level grid
type GridBoundsError struct {
	Pos  Vec
	Size Vec
}

func (e *GridBoundsError) Error() string {
	return fmt.Sprintf("position %v outside level of size %dx%d", e.Pos, e.Size.X, e.Size.Y)
}

// Level is a rectangular grid of tile palette indices, stored row by row
type Level struct {
	Size Vec
	Data [][]int
}

// NewLevel creates a level of the given size with every cell set to fill
func NewLevel(size Vec, fill int) *Level {
	if size.X <= 0 || size.Y <= 0 {
		panic("Level dimensions must be positive")
	}

	l := &Level{Size: size, Data: make([][]int, size.Y)}
	for row := range l.Data {
		l.Data[row] = make([]int, size.X)
	}
	l.Fill(fill)
	return l
}

// Rows returns the number of rows in the level
func (l *Level) Rows() int {
	return l.Size.Y
}

// Cols returns the number of columns in the level
func (l *Level) Cols() int {
	return l.Size.X
}

// IsValidPosition checks if a position is within level bounds
func (l *Level) IsValidPosition(p Vec) bool {
	return p.In(l.Size)
}

// Get returns the tile index at p
func (l *Level) Get(p Vec) (int, error) {
	if !l.IsValidPosition(p) {
		return 0, &GridBoundsError{Pos: p, Size: l.Size}
	}
	return l.Data[p.Y][p.X], nil
}

// Set writes a tile index at p
func (l *Level) Set(p Vec, tile int) error {
	if !l.IsValidPosition(p) {
		return &GridBoundsError{Pos: p, Size: l.Size}
	}
	l.Data[p.Y][p.X] = tile
	return nil
}

// Fill sets every cell to tile
func (l *Level) Fill(tile int) {
	for _, row := range l.Data {
		for col := range row {
			row[col] = tile
		}
	}
}

// MakeRoom stamps the hollow outline of the rectangle [pos, pos+size]
// (inclusive on both ends) with tile. Interior cells are left alone. Nothing
// is written when any part of the outline falls outside the level.
func (l *Level) MakeRoom(pos, size Vec, tile int) error {
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("negative room size %v", size)
	}
	if !l.IsValidPosition(pos) {
		return &GridBoundsError{Pos: pos, Size: l.Size}
	}
	if far := pos.Add(size); !l.IsValidPosition(far) {
		return &GridBoundsError{Pos: far, Size: l.Size}
	}

	top, bottom := l.Data[pos.Y], l.Data[pos.Y+size.Y]
	for col := pos.X; col <= pos.X+size.X; col++ {
		top[col] = tile
		bottom[col] = tile
	}
	for row := pos.Y; row <= pos.Y+size.Y; row++ {
		l.Data[row][pos.X] = tile
		l.Data[row][pos.X+size.X] = tile
	}

	return nil
}

// Region copies the size.X by size.Y block starting at pos into a new level
func (l *Level) Region(pos, size Vec) (*Level, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("empty region size %v", size)
	}
	if !l.IsValidPosition(pos) {
		return nil, &GridBoundsError{Pos: pos, Size: l.Size}
	}
	if far := pos.Add(size).Sub(V(1, 1)); !l.IsValidPosition(far) {
		return nil, &GridBoundsError{Pos: far, Size: l.Size}
	}

	region := NewLevel(size, 0)
	for row := 0; row < size.Y; row++ {
		copy(region.Data[row], l.Data[pos.Y+row][pos.X:pos.X+size.X])
	}
	return region, nil
}

// ForEachCell iterates over all cells in row-major order
func (l *Level) ForEachCell(fn func(p Vec, tile int)) {
	for row := 0; row < l.Size.Y; row++ {
		for col := 0; col < l.Size.X; col++ {
			fn(V(col, row), l.Data[row][col])
		}
	}
}

// Validate checks that every cell is below paletteSize and that Data matches Size
func (l *Level) Validate(paletteSize int) error {
	if len(l.Data) != l.Size.Y {
		return fmt.Errorf("level has %d rows, want %d", len(l.Data), l.Size.Y)
	}
	for row, cols := range l.Data {
		if len(cols) != l.Size.X {
			return fmt.Errorf("level row %d has %d columns, want %d", row, len(cols), l.Size.X)
		}
		for col, tile := range cols {
			if tile < 0 || tile >= paletteSize {
				return fmt.Errorf("tile %d at %v is not in a palette of %d tiles", tile, V(col, row), paletteSize)
			}
		}
	}
	return nil
}
