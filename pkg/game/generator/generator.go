package generator

import (
	"fmt"
	"log/slog"
	"math/rand"

	"quadrogue/pkg/engine/world"
)

// MaxLevelCells bounds the area of a generated level, about 128 MiB of grid
const MaxLevelCells = 1 << 24

// LevelGenerator is an interface for dungeon generation algorithms
type LevelGenerator interface {
	Generate(cfg Config) (*Dungeon, error)
	Name() string
}

// Available generators
var (
	Quadtree = &QuadtreeGenerator{}
	BSP      = &BSPGenerator{}
)

// DefaultGenerator is the default dungeon generator
var DefaultGenerator LevelGenerator = Quadtree

// ByName returns the generator registered under name ("quadtree" or "bsp")
func ByName(name string) (LevelGenerator, error) {
	switch name {
	case "", "quadtree":
		return Quadtree, nil
	case "bsp":
		return BSP, nil
	default:
		return nil, &ConfigurationError{Field: "generator", Reason: fmt.Sprintf("unknown generator %q", name)}
	}
}

// Room is one carved rectangle. Pos and Size describe the inclusive outline
// [Pos, Pos+Size].
type Room struct {
	Pos   world.Vec
	Size  world.Vec
	Class int
}

// Dungeon is the result of a generation pass
type Dungeon struct {
	Level *world.Level
	Rooms []Room
	Start world.Vec
}

// ConfigurationError reports a generation parameter that can never produce a
// valid level
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Config holds everything a generator needs. Tile fields are palette indices;
// DoorTile may be negative to disable doorways.
type Config struct {
	Depth      int
	MacroCells int
	Weights    []float64

	FillTile  int
	WallTile  int
	DoorTile  int
	FloorTile int

	Rand   *rand.Rand
	Logger *slog.Logger
}

// DefaultConfig returns the two macro-cell, depth 5 layout
func DefaultConfig() Config {
	return Config{
		Depth:      5,
		MacroCells: 2,
		Weights:    DefaultWeights(),
		DoorTile:   -1,
	}
}

// MacroSize returns the side of one macro-cell in tiles
func (c Config) MacroSize() int {
	return RoomSize(c.Depth)
}

// LevelSize returns the extent of the level the macro-cells are carved into.
// The extra row and column hold the far outline of the last rooms.
func (c Config) LevelSize() world.Vec {
	side := c.MacroSize()
	return world.V(c.MacroCells*side+1, side+1)
}

// Validate rejects parameters that would fail mid-carve
func (c Config) Validate() error {
	if c.Depth < 1 {
		return &ConfigurationError{Field: "depth", Reason: fmt.Sprintf("must be at least 1, got %d", c.Depth)}
	}
	if c.Depth >= len(c.Weights) {
		return &ConfigurationError{
			Field:  "depth",
			Reason: fmt.Sprintf("%d needs a weight table of at least %d entries, got %d", c.Depth, c.Depth+1, len(c.Weights)),
		}
	}
	// 2 bits per level, and room sizes must fit in an int
	if c.Depth > 16 {
		return &ConfigurationError{Field: "depth", Reason: fmt.Sprintf("%d exceeds the maximum of 16", c.Depth)}
	}
	for i, w := range c.Weights {
		if w < 0 || w > 1 {
			return &ConfigurationError{Field: "weights", Reason: fmt.Sprintf("weight %d is %v, want a probability in [0,1]", i, w)}
		}
	}
	if c.MacroCells < 1 {
		return &ConfigurationError{Field: "macro_cells", Reason: fmt.Sprintf("must be at least 1, got %d", c.MacroCells)}
	}
	// MacroCells is bounded first so the area product cannot overflow
	if c.MacroCells > MaxLevelCells {
		return &ConfigurationError{Field: "macro_cells", Reason: fmt.Sprintf("%d exceeds the maximum of %d", c.MacroCells, MaxLevelCells)}
	}
	if size := c.LevelSize(); size.X*size.Y > MaxLevelCells {
		return &ConfigurationError{Field: "macro_cells", Reason: fmt.Sprintf("level %v has more than %d cells", size, MaxLevelCells)}
	}
	for field, tile := range map[string]int{"fill_tile": c.FillTile, "wall_tile": c.WallTile, "floor_tile": c.FloorTile} {
		if tile < 0 {
			return &ConfigurationError{Field: field, Reason: fmt.Sprintf("negative tile index %d", tile)}
		}
	}
	return nil
}

func (c Config) rng() *rand.Rand {
	if c.Rand == nil {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return c.Rand
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
