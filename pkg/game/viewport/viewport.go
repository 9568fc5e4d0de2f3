// Package viewport projects the part of a level around a focus point onto a
// fixed-size display.
package viewport

import (
	"fmt"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/display"
	"quadrogue/pkg/game/tile"
)

// Window returns the level-space rectangle [start, end) of a size-sized view
// centred on focus
func Window(focus, size world.Vec) (start, end world.Vec) {
	start = focus.Sub(size.Div(2))
	return start, start.Add(size)
}

// Project overwrites every cell of d with the level window centred on focus.
// Cells outside the level become tile.Void. The focus cell shows marker over
// the terrain's background. Cost depends only on the display size.
func Project(level *world.Level, palette *tile.Palette, focus world.Vec, marker tile.Entity, d *display.Display) error {
	start, _ := Window(focus, d.Size)

	for di := 0; di < d.Size.Y; di++ {
		row := d.Data[di]
		for dj := 0; dj < d.Size.X; dj++ {
			p := start.Add(world.V(dj, di))
			if !level.IsValidPosition(p) {
				row[dj] = tile.Void
				continue
			}

			index := level.Data[p.Y][p.X]
			t, ok := palette.At(index)
			if !ok {
				return fmt.Errorf("tile index %d at %v is not in the palette", index, p)
			}
			if p == focus {
				t = marker.Over(t)
			}
			row[dj] = t
		}
	}
	return nil
}
