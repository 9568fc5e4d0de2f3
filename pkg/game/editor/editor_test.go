package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/tile"
)

func testPalette() *tile.Palette {
	palette := tile.NewTable[tile.Tile]()
	palette.Add("void", tile.Void)
	palette.Add("tile", tile.New('.', 8, 234, true))
	palette.Add("brick_wall", tile.New('#', 130, 52, false))
	palette.Add("water", tile.New('~', 33, 17, true))
	return palette
}

func carvedRoom(t *testing.T) *world.Level {
	t.Helper()
	level := world.NewLevel(RoomSize(1), 1)
	require.NoError(t, level.MakeRoom(world.V(0, 0), world.V(4, 4), 2))
	require.NoError(t, level.Set(world.V(2, 2), 3))
	return level
}

func TestSizeClass(t *testing.T) {
	for n := 0; n <= 5; n++ {
		got, err := SizeClass(RoomSize(n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
	for _, size := range []world.Vec{world.V(4, 4), world.V(5, 9), world.V(2, 2), world.V(1, 1)} {
		_, err := SizeClass(size)
		assert.Error(t, err, "size %v", size)
	}
}

func TestRecordRemapsTiles(t *testing.T) {
	rec, err := Record(carvedRoom(t), testPalette())
	require.NoError(t, err)

	assert.Equal(t, 1, rec.Size)
	assert.Equal(t, []string{"tile", "brick_wall", "water"}, rec.Tiles)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, rec.Data[0])
	assert.Equal(t, []int{1, 0, 2, 0, 1}, rec.Data[2])
}

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	palette := testPalette()
	level := carvedRoom(t)

	path, err := Export(dir, "pool", level, palette)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "room_size_1.toml"), path)

	got, err := Import(dir, "pool", 1, palette)
	require.NoError(t, err)
	assert.Equal(t, level.Size, got.Size)
	assert.Equal(t, level.Data, got.Data)
}

func TestExportMergesByName(t *testing.T) {
	dir := t.TempDir()
	palette := testPalette()

	first := carvedRoom(t)
	_, err := Export(dir, "a", first, palette)
	require.NoError(t, err)

	plain := world.NewLevel(RoomSize(1), 1)
	_, err = Export(dir, "b", plain, palette)
	require.NoError(t, err)

	// Overwrite "a" in place
	_, err = Export(dir, "a", plain, palette)
	require.NoError(t, err)

	rooms, err := load(dir, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, rooms.Names())

	got, err := Import(dir, "a", 1, palette)
	require.NoError(t, err)
	assert.Equal(t, plain.Data, got.Data)
}

func TestImportMissingRoom(t *testing.T) {
	dir := t.TempDir()
	_, err := Export(dir, "a", carvedRoom(t), testPalette())
	require.NoError(t, err)

	_, err = Import(dir, "nope", 1, testPalette())
	var lookupErr *tile.PaletteLookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "nope", lookupErr.Name)
}

func TestImportUnknownTileName(t *testing.T) {
	dir := t.TempDir()
	_, err := Export(dir, "a", carvedRoom(t), testPalette())
	require.NoError(t, err)

	smaller := tile.NewTable[tile.Tile]()
	smaller.Add("tile", tile.New('.', 8, 234, true))
	smaller.Add("brick_wall", tile.New('#', 130, 52, false))

	_, err = Import(dir, "a", 1, smaller)
	var lookupErr *tile.PaletteLookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "water", lookupErr.Name)
}

func TestExportRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	_, err := Export(dir, "", carvedRoom(t), testPalette())
	assert.Error(t, err)

	_, err = Export(dir, "wide", world.NewLevel(world.V(9, 5), 1), testPalette())
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordUnknownTileIndex(t *testing.T) {
	_, err := Record(world.NewLevel(RoomSize(0), 9), testPalette())
	var lookupErr *tile.PaletteLookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, 9, lookupErr.Index)
	assert.Contains(t, err.Error(), "index 9")
}
