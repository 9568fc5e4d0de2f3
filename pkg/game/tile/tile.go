// Package tile holds the visual tile and entity definitions and the ordered
// palettes that level grids index into.
package tile

import (
	"fmt"
	"unicode/utf8"
)

// Glyph is a single character drawn for a tile. In TOML it is written as a
// one-character string.
type Glyph rune

// UnmarshalText implements encoding.TextUnmarshaler
func (g *Glyph) UnmarshalText(text []byte) error {
	r, size := utf8.DecodeRune(text)
	if r == utf8.RuneError || size != len(text) {
		return fmt.Errorf("glyph %q must be exactly one character", text)
	}
	*g = Glyph(r)
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (g Glyph) MarshalText() ([]byte, error) {
	return []byte(string(rune(g))), nil
}

// Tile is a resolved visual cell: glyph, xterm-256 colours and whether it can
// be walked onto
type Tile struct {
	Char Glyph `toml:"char"`
	Fore uint8 `toml:"fore"`
	Back uint8 `toml:"back"`
	Move bool  `toml:"move"`
}

// Void is drawn for display cells that fall outside the level
var Void = Tile{Char: ' ', Fore: 0, Back: 0, Move: true}

// New builds a tile
func New(char rune, fore, back uint8, move bool) Tile {
	return Tile{Char: Glyph(char), Fore: fore, Back: back, Move: move}
}

// FromString turns text into a row of impassable tiles
func FromString(s string, fore, back uint8) []Tile {
	tiles := make([]Tile, 0, len(s))
	for _, r := range s {
		tiles = append(tiles, New(r, fore, back, false))
	}
	return tiles
}

// Entity is something drawn on top of a tile; it keeps the tile's background
type Entity struct {
	Char Glyph `toml:"char"`
	Fore uint8 `toml:"fore"`
}

// Over returns t with the entity drawn on it
func (e Entity) Over(t Tile) Tile {
	return Tile{Char: e.Char, Fore: e.Fore, Back: t.Back, Move: t.Move}
}

// PaletteLookupError reports a name or index that is not in a palette
type PaletteLookupError struct {
	Name string
	// Index is set instead of Name when an index had no entry
	Index int
}

func (e *PaletteLookupError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("palette has no entry at index %d", e.Index)
	}
	return fmt.Sprintf("palette has no entry named %q", e.Name)
}
