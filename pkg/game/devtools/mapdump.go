// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/state"
)

// DumpLevel writes a debug dump of the level: metadata, a legend of the
// tiles in use and the map with one glyph per tile and the player as its
// marker glyph. Format is human-readable (sections, key: value).
func DumpLevel(w io.Writer, g *state.Game) error {
	bw := bufio.NewWriter(w)

	counts := make([]int, g.Palette.Len())
	g.Level.ForEachCell(func(_ world.Vec, index int) {
		if index >= 0 && index < len(counts) {
			counts[index]++
		}
	})

	// --- Metadata ---
	fmt.Fprintln(bw, "=== LEVEL DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", g.Seed)
	fmt.Fprintf(bw, "width: %d\n", g.Level.Cols())
	fmt.Fprintf(bw, "height: %d\n", g.Level.Rows())
	fmt.Fprintf(bw, "rooms: %d\n", g.Rooms)
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(bw, "player: %d,%d\n", g.Position.X, g.Position.Y)
	if g.Mode == state.ModeEdit {
		fmt.Fprintf(bw, "editing: %q size class %d\n", g.Name, g.EditClass)
	}
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (tiles in use) ---")
	for index, count := range counts {
		if count == 0 {
			continue
		}
		name, _ := g.Palette.Name(index)
		t, _ := g.Palette.At(index)
		fmt.Fprintf(bw, "%c = %s (index %d, %d cells, passable %v)\n", rune(t.Char), name, index, count, t.Move)
	}
	fmt.Fprintf(bw, "%c = player\n", rune(g.Marker.Char))
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	for y, row := range g.Level.Data {
		for x, index := range row {
			if g.Position == world.V(x, y) {
				bw.WriteRune(rune(g.Marker.Char))
				continue
			}
			t, ok := g.Palette.At(index)
			if !ok {
				bw.WriteRune('?')
				continue
			}
			bw.WriteRune(rune(t.Char))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// DumpLevelToFile writes DumpLevel to path and returns its absolute form
func DumpLevelToFile(g *state.Game, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	if err := DumpLevel(f, g); err != nil {
		f.Close()
		return "", err
	}
	return absPath, f.Close()
}
