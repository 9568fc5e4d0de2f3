// Package editor exports carved rooms as reusable room records and loads them
// back. Records are grouped by size class in room_size_<n>.toml files.
package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math/bits"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/zyedidia/generic/mapset"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/tile"
)

// RoomRecord is a room stored with its own compact tile list. Data indexes
// Tiles, not the session palette.
type RoomRecord struct {
	Size  int      `toml:"size"`
	Tiles []string `toml:"tiles"`
	Data  [][]int  `toml:"data"`
}

// RoomSize returns the extent of a room of size class n: (2<<n)+1 square
func RoomSize(n int) world.Vec {
	side := (2 << n) + 1
	return world.V(side, side)
}

// SizeClass is the inverse of RoomSize
func SizeClass(size world.Vec) (int, error) {
	span := size.X - 1
	if size.X != size.Y || span < 2 || bits.OnesCount(uint(span)) != 1 {
		return 0, fmt.Errorf("room size %v is not a (2<<n)+1 square", size)
	}
	return bits.TrailingZeros(uint(span)) - 1, nil
}

// FileName returns the record file for size class n
func FileName(n int) string {
	return fmt.Sprintf("room_size_%d.toml", n)
}

// Record turns level into a room record. The distinct tile indices are
// sorted and renumbered from 0 in that order.
func Record(level *world.Level, palette *tile.Palette) (RoomRecord, error) {
	n, err := SizeClass(level.Size)
	if err != nil {
		return RoomRecord{}, err
	}

	used := mapset.New[int]()
	level.ForEachCell(func(_ world.Vec, index int) {
		used.Put(index)
	})
	indices := make([]int, 0, used.Size())
	used.Each(func(index int) {
		indices = append(indices, index)
	})
	slices.Sort(indices)

	rec := RoomRecord{Size: n, Tiles: make([]string, len(indices))}
	for i, index := range indices {
		name, ok := palette.Name(index)
		if !ok {
			return RoomRecord{}, &tile.PaletteLookupError{Index: index}
		}
		rec.Tiles[i] = name
	}

	rec.Data = make([][]int, level.Size.Y)
	for row, cols := range level.Data {
		rec.Data[row] = make([]int, len(cols))
		for col, index := range cols {
			local, _ := slices.BinarySearch(indices, index)
			rec.Data[row][col] = local
		}
	}
	return rec, nil
}

// Level resolves a record against the session palette
func (r RoomRecord) Level(palette *tile.Palette) (*world.Level, error) {
	size := RoomSize(r.Size)
	if len(r.Data) != size.Y {
		return nil, fmt.Errorf("room has %d rows, want %d", len(r.Data), size.Y)
	}

	lookup := make([]int, len(r.Tiles))
	for i, name := range r.Tiles {
		index, err := palette.Index(name)
		if err != nil {
			return nil, err
		}
		lookup[i] = index
	}

	level := world.NewLevel(size, 0)
	for row, cols := range r.Data {
		if len(cols) != size.X {
			return nil, fmt.Errorf("room row %d has %d columns, want %d", row, len(cols), size.X)
		}
		for col, local := range cols {
			if local < 0 || local >= len(lookup) {
				return nil, fmt.Errorf("room cell (%d,%d) uses tile %d of %d", col, row, local, len(lookup))
			}
			level.Data[row][col] = lookup[local]
		}
	}
	return level, nil
}

// Export writes level into dir under name, replacing an existing record of
// the same name and keeping the others in file order. It returns the path
// written.
func Export(dir, name string, level *world.Level, palette *tile.Palette) (string, error) {
	if name == "" {
		return "", errors.New("room needs a name before it can be exported")
	}
	rec, err := Record(level, palette)
	if err != nil {
		return "", err
	}

	rooms, err := load(dir, rec.Size)
	if err != nil {
		return "", err
	}
	rooms.Add(name, rec)

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	for _, key := range rooms.Names() {
		value, _ := rooms.Get(key)
		if err := enc.Encode(map[string]RoomRecord{key: value}); err != nil {
			return "", fmt.Errorf("encoding room %q: %w", key, err)
		}
	}

	path := filepath.Join(dir, FileName(rec.Size))
	if err := writeFile(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}

// Import loads the record called name from the size class n file
func Import(dir, name string, n int, palette *tile.Palette) (*world.Level, error) {
	rooms, err := load(dir, n)
	if err != nil {
		return nil, err
	}
	rec, err := rooms.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FileName(n), err)
	}
	if rec.Size != n {
		return nil, fmt.Errorf("room %q has size %d in %s", name, rec.Size, FileName(n))
	}
	return rec.Level(palette)
}

// load reads the records of size class n; a missing file is an empty table
func load(dir string, n int) (*tile.Table[RoomRecord], error) {
	rooms, err := tile.Load[RoomRecord](os.DirFS(dir), FileName(n))
	if errors.Is(err, fs.ErrNotExist) {
		return tile.NewTable[RoomRecord](), nil
	}
	return rooms, err
}

// writeFile replaces path through a temporary file in the same directory
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".room-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
