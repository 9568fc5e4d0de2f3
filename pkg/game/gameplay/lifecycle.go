package gameplay

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/config"
	"quadrogue/pkg/game/editor"
	"quadrogue/pkg/game/generator"
	"quadrogue/pkg/game/menu"
	"quadrogue/pkg/game/state"
	"quadrogue/pkg/game/tile"
)

// maxEditClass bounds the editor room size, (2<<10)+1 tiles a side. The
// room must stay within generator.MaxLevelCells.
const maxEditClass = 10

// Options describes the game BuildGame creates
type Options struct {
	Config   *config.Config
	Palette  *tile.Palette
	Entities *tile.Entities
	Logger   *slog.Logger

	// EditClass opens the room editor on a room of this size class.
	// Negative values generate a dungeon instead.
	EditClass int
	// Room names a stored room to load into the editor
	Room string
}

// BuildGame creates a new game, either on a freshly generated dungeon or in
// the room editor
func BuildGame(opts Options) (*state.Game, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	marker, err := opts.Entities.Get(cfg.Tiles.Marker)
	if err != nil {
		return nil, fmt.Errorf("entities: %w", err)
	}

	var g *state.Game
	if opts.EditClass >= 0 {
		g, err = buildEditor(opts, marker)
	} else {
		g, err = buildDungeon(opts, marker, logger)
	}
	if err != nil {
		return nil, err
	}
	if err := g.Level.Validate(opts.Palette.Len()); err != nil {
		return nil, err
	}

	g.Logger = logger
	g.RoomsDir = cfg.Paths.Rooms
	g.SetStats(cfg.Player.Health, cfg.Player.Hunger)
	g.Menu = NewTileMenu(opts.Palette)

	g.ClearMessages()
	if g.Mode == state.ModeEdit {
		g.AddMessage(fmt.Sprintf(gotext.Get("EDITOR_WELCOME"), editor.FileName(g.EditClass)))
	} else {
		g.AddMessage(gotext.Get("WELCOME"))
	}
	return g, nil
}

// Seed returns the configured seed, or a time-based one when it is zero
func Seed(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

func buildDungeon(opts Options, marker tile.Entity, logger *slog.Logger) (*state.Game, error) {
	cfg := opts.Config
	seed := Seed(cfg)

	gen, err := generator.ByName(cfg.Generator)
	if err != nil {
		return nil, err
	}
	genCfg, err := cfg.GeneratorConfig(opts.Palette, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return nil, err
	}

	dungeon, err := gen.Generate(genCfg)
	if err != nil {
		return nil, fmt.Errorf("generating with %s: %w", gen.Name(), err)
	}
	logger.Info("dungeon ready", "generator", gen.Name(), "seed", seed, "rooms", len(dungeon.Rooms))

	g := state.NewGame(dungeon.Level, opts.Palette, marker, dungeon.Start)
	g.Seed = seed
	g.Rooms = len(dungeon.Rooms)
	return g, nil
}

func buildEditor(opts Options, marker tile.Entity) (*state.Game, error) {
	cfg := opts.Config
	class := opts.EditClass
	if class > maxEditClass {
		return nil, &generator.ConfigurationError{Field: "edit", Reason: fmt.Sprintf("room size class must be at most %d", maxEditClass)}
	}

	var level *world.Level
	if opts.Room != "" {
		imported, err := editor.Import(cfg.Paths.Rooms, opts.Room, class, opts.Palette)
		if err != nil {
			return nil, err
		}
		level = imported
	} else {
		floor, err := opts.Palette.Index(cfg.Tiles.Floor)
		if err != nil {
			return nil, fmt.Errorf("tiles: %w", err)
		}
		wall, err := opts.Palette.Index(cfg.Tiles.Wall)
		if err != nil {
			return nil, fmt.Errorf("tiles: %w", err)
		}

		size := editor.RoomSize(class)
		level = world.NewLevel(size, floor)
		if err := level.MakeRoom(world.V(0, 0), size.Sub(world.V(1, 1)), wall); err != nil {
			return nil, err
		}
	}

	g := state.NewGame(level, opts.Palette, marker, world.V(1, 1))
	g.Mode = state.ModeEdit
	g.EditClass = class
	g.Name = opts.Room
	return g, nil
}

// NewTileMenu lists the palette names in palette order
func NewTileMenu(palette *tile.Palette) *menu.Menu {
	names := palette.Names()
	items := make([]menu.MenuItem, 0, len(names))
	width := 8
	for _, name := range names {
		items = append(items, menu.TextItem(name))
		width = max(width, len([]rune(name))+4)
	}
	width = min(width, 24)
	height := min(len(items)+1, 12)

	return menu.New(gotext.Get("TILES"), world.V(1, 1), world.V(width, height), items)
}
