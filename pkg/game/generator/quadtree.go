package generator

import (
	"fmt"
	"math/rand"

	"quadrogue/pkg/engine/quadtree"
	"quadrogue/pkg/engine/world"
)

// defaultWeights is the chance of cutting a quadrant again, indexed by the
// remaining depth. Shallow cuts rarely continue so the top levels leave big
// rooms, deep cuts usually do.
var defaultWeights = [...]float64{0.0, 0.1, 0.2, 0.7, 0.9, 1.0}

// DefaultWeights returns a copy of the built-in subdivision weight table
func DefaultWeights() []float64 {
	w := defaultWeights
	return w[:]
}

// QuadtreeGenerator splits each macro-cell with a randomized quadtree and
// outlines one room per leaf
type QuadtreeGenerator struct{}

// Name returns the name of this generator
func (g *QuadtreeGenerator) Name() string {
	return "Quadtree"
}

// Grow subdivides tree once and then, for every child, draws one number and
// either recurses with n-1 (with probability weights[n], only while n > 1) or
// closes the child as a leaf holding n-1. Leaves end up at depth <= n holding
// classes 0..n-1.
func Grow(tree *quadtree.Tree[int], n int, weights []float64, rng *rand.Rand) error {
	if n > quadtree.MaxLevels {
		return fmt.Errorf("%w: depth %d", quadtree.ErrTooDeep, n)
	}
	tree.Subdivide()

	for q := 0; q < quadtree.Quadrants; q++ {
		child, err := tree.Child(q)
		if err != nil {
			return err
		}
		u := rng.Float64()
		if u < weights[n] && n > 1 {
			if err := Grow(child, n-1, weights, rng); err != nil {
				return err
			}
			continue
		}
		child.SetValue(n - 1)
	}
	return nil
}

// Generate builds a level of cfg.MacroCells side-by-side macro-cells
func (g *QuadtreeGenerator) Generate(cfg Config) (*Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := cfg.rng()
	log := cfg.logger().With("generator", "quadtree")

	level := world.NewLevel(cfg.LevelSize(), cfg.FillTile)
	dungeon := &Dungeon{Level: level, Start: world.V(1, 1)}
	side := cfg.MacroSize()

	for cell := 0; cell < cfg.MacroCells; cell++ {
		tree := quadtree.New(cfg.Depth)
		if err := Grow(tree, cfg.Depth, cfg.Weights, rng); err != nil {
			return nil, fmt.Errorf("growing macro-cell %d: %w", cell, err)
		}

		offset := world.V(cell*side, 0)
		rooms, err := Carve(level, tree, cfg.Depth, offset, cfg.WallTile)
		if err != nil {
			return nil, fmt.Errorf("carving macro-cell %d: %w", cell, err)
		}
		log.Debug("carved macro-cell", "cell", cell, "rooms", len(rooms), "depth", tree.Depth())
		dungeon.Rooms = append(dungeon.Rooms, rooms...)
	}

	if cfg.DoorTile >= 0 {
		for _, room := range dungeon.Rooms {
			if err := punchDoors(level, room, cfg.DoorTile); err != nil {
				return nil, fmt.Errorf("punching doors: %w", err)
			}
		}
	}

	log.Info("generated level", "size", level.Size, "rooms", len(dungeon.Rooms))
	return dungeon, nil
}

// Carve flattens tree and outlines one room per leaf, offset into the level.
// The first failing room aborts the pass.
func Carve(level *world.Level, tree *quadtree.Tree[int], depth int, offset world.Vec, wall int) ([]Room, error) {
	var rooms []Room
	for e := range tree.Entries() {
		side := RoomSize(e.Value)
		room := Room{
			Pos:   offset.Add(Decode(e.Path, depth)),
			Size:  world.V(side, side),
			Class: e.Value,
		}
		if err := level.MakeRoom(room.Pos, room.Size, wall); err != nil {
			return rooms, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

// punchDoors opens the top and left walls of a room one tile in from its
// corner. Room corners sit on even coordinates, so the tile beyond each
// doorway is always inside the neighbouring room rather than on its wall.
func punchDoors(level *world.Level, room Room, door int) error {
	if room.Pos.Y > 0 {
		if err := level.Set(room.Pos.Add(world.V(1, 0)), door); err != nil {
			return err
		}
	}
	if room.Pos.X > 0 {
		if err := level.Set(room.Pos.Add(world.V(0, 1)), door); err != nil {
			return err
		}
	}
	return nil
}
