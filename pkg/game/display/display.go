// Package display holds the screen-sized buffer of resolved tiles that the
// viewport and overlays write into and renderers draw verbatim.
package display

import (
	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/tile"
)

// Display is a grid of resolved tiles, Size.Y rows of Size.X columns
type Display struct {
	Size world.Vec
	Data [][]tile.Tile
}

// New creates a display of the given size filled with tile.Void.
// Non-positive sizes give an empty display.
func New(size world.Vec) *Display {
	d := &Display{}
	d.Resize(size)
	return d
}

// Resize reallocates the buffer when the size changes
func (d *Display) Resize(size world.Vec) {
	size = world.V(max(size.X, 0), max(size.Y, 0))
	if size == d.Size && d.Data != nil {
		return
	}

	d.Size = size
	d.Data = make([][]tile.Tile, size.Y)
	for row := range d.Data {
		d.Data[row] = make([]tile.Tile, size.X)
	}
	d.Clear()
}

// Clear sets every cell to tile.Void
func (d *Display) Clear() {
	for _, row := range d.Data {
		for col := range row {
			row[col] = tile.Void
		}
	}
}

// At returns the tile at p
func (d *Display) At(p world.Vec) (tile.Tile, bool) {
	if !p.In(d.Size) {
		return tile.Tile{}, false
	}
	return d.Data[p.Y][p.X], true
}

// Set writes t at p; writes outside the display are dropped
func (d *Display) Set(p world.Vec, t tile.Tile) {
	if p.In(d.Size) {
		d.Data[p.Y][p.X] = t
	}
}

// WriteTiles copies a row of tiles starting at p, clipped to the display
func (d *Display) WriteTiles(p world.Vec, tiles []tile.Tile) {
	for i, t := range tiles {
		d.Set(p.Add(world.V(i, 0)), t)
	}
}

// WriteString draws text starting at p, clipped to the display
func (d *Display) WriteString(p world.Vec, s string, fore, back uint8) {
	d.WriteTiles(p, tile.FromString(s, fore, back))
}

// Row returns the glyphs of one row as a string, mostly for tests and dumps
func (d *Display) Row(row int) string {
	if row < 0 || row >= d.Size.Y {
		return ""
	}
	runes := make([]rune, d.Size.X)
	for col, t := range d.Data[row] {
		runes[col] = rune(t.Char)
	}
	return string(runes)
}
