package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/display"
	"quadrogue/pkg/game/tile"
)

var player = tile.Entity{Char: '@', Fore: 15}

func testPalette() *tile.Palette {
	palette := tile.NewTable[tile.Tile]()
	palette.Add("tile", tile.New('.', 8, 234, true))
	palette.Add("water", tile.New('~', 33, 17, true))
	return palette
}

func TestWindowCentred(t *testing.T) {
	start, end := Window(world.V(10, 10), world.V(5, 5))
	assert.Equal(t, world.V(8, 8), start)
	assert.Equal(t, world.V(13, 13), end)

	start, end = Window(world.V(10, 10), world.V(4, 6))
	assert.Equal(t, world.V(8, 7), start)
	assert.Equal(t, world.V(12, 13), end)
}

func TestProjectInsideLevel(t *testing.T) {
	level := world.NewLevel(world.V(20, 20), 0)
	require.NoError(t, level.Set(world.V(8, 8), 1))

	d := display.New(world.V(5, 5))
	require.NoError(t, Project(level, testPalette(), world.V(10, 10), player, d))

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			got, _ := d.At(world.V(col, row))
			assert.NotEqual(t, tile.Void, got, "cell (%d,%d) blanked", col, row)
		}
	}

	corner, _ := d.At(world.V(0, 0))
	assert.Equal(t, tile.Glyph('~'), corner.Char, "display (0,0) shows level (8,8)")

	centre, _ := d.At(world.V(2, 2))
	assert.Equal(t, tile.New('@', 15, 234, true), centre)
}

func TestProjectBlanksOutsideLevel(t *testing.T) {
	level := world.NewLevel(world.V(20, 20), 0)
	d := display.New(world.V(5, 5))
	require.NoError(t, Project(level, testPalette(), world.V(0, 0), player, d))

	start, _ := Window(world.V(0, 0), d.Size)
	require.Equal(t, world.V(-2, -2), start)

	for di := 0; di < 5; di++ {
		for dj := 0; dj < 5; dj++ {
			got, _ := d.At(world.V(dj, di))
			outside := start.Y+di < 0 || start.X+dj < 0
			if outside {
				assert.Equal(t, tile.Void, got, "cell (%d,%d)", dj, di)
			} else {
				assert.NotEqual(t, tile.Void, got, "cell (%d,%d)", dj, di)
			}
		}
	}
}

func TestProjectMarkerKeepsBackground(t *testing.T) {
	level := world.NewLevel(world.V(3, 3), 1)
	d := display.New(world.V(3, 3))
	require.NoError(t, Project(level, testPalette(), world.V(1, 1), player, d))

	got, _ := d.At(world.V(1, 1))
	assert.Equal(t, tile.Glyph('@'), got.Char)
	assert.Equal(t, uint8(15), got.Fore)
	assert.Equal(t, uint8(17), got.Back)
}

func TestProjectFarCornerBlanks(t *testing.T) {
	level := world.NewLevel(world.V(4, 4), 0)
	d := display.New(world.V(6, 6))
	require.NoError(t, Project(level, testPalette(), world.V(3, 3), player, d))

	// window starts at (0,0); columns and rows 4 and 5 fall past the level
	got, _ := d.At(world.V(5, 0))
	assert.Equal(t, tile.Void, got)
	got, _ = d.At(world.V(0, 4))
	assert.Equal(t, tile.Void, got)
	got, _ = d.At(world.V(3, 3))
	assert.Equal(t, tile.Glyph('@'), got.Char)
}

func TestProjectUnknownTileIndex(t *testing.T) {
	level := world.NewLevel(world.V(3, 3), 7)
	d := display.New(world.V(3, 3))
	assert.Error(t, Project(level, testPalette(), world.V(1, 1), player, d))
}

func TestProjectEmptyDisplay(t *testing.T) {
	level := world.NewLevel(world.V(3, 3), 0)
	d := display.New(world.V(0, 0))
	assert.NoError(t, Project(level, testPalette(), world.V(1, 1), player, d))
}
