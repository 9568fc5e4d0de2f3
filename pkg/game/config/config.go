// Package config loads game settings from an optional YAML file and lets
// command-line flags override them.
//
// Every field has a default, so running without a file gives the standard
// two macro-cell quadtree dungeon in the terminal.
package config

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"quadrogue/pkg/engine/input"
	"quadrogue/pkg/game/generator"
	"quadrogue/pkg/game/tile"
)

// Backends
const (
	BackendTUI    = "tui"
	BackendEbiten = "ebiten"
)

// Config is the full game configuration.
type Config struct {
	// Seed for the dungeon generator. 0 picks a random seed.
	Seed int64 `yaml:"seed"`

	// Generator is "quadtree" or "bsp".
	Generator string `yaml:"generator"`

	// Backend is "tui" or "ebiten".
	Backend string `yaml:"backend"`

	// Depth is the quadtree depth; each macro-cell is 2<<Depth tiles wide.
	Depth int `yaml:"depth"`

	// MacroCells is the number of macro-cells laid side by side.
	MacroCells int `yaml:"macro_cells"`

	// Weights is the chance to keep subdividing, indexed by remaining depth.
	Weights []float64 `yaml:"weights"`

	// HeaderRows is the number of terminal rows reserved for the status header.
	HeaderRows int `yaml:"header_rows"`

	Tiles  TilesConfig  `yaml:"tiles"`
	Player PlayerConfig `yaml:"player"`
	Paths  PathsConfig  `yaml:"paths"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Locale selects the translation under Paths.Locales.
	Locale string `yaml:"locale"`

	// Keys rebinds actions by name, e.g. export_room: e. Arrow keys and
	// digits cannot be rebound.
	Keys map[string]string `yaml:"keys"`
}

// TilesConfig names the palette entries the generator carves with.
type TilesConfig struct {
	Fill  string `yaml:"fill"`
	Wall  string `yaml:"wall"`
	Floor string `yaml:"floor"`
	// Door may be empty to leave rooms closed.
	Door string `yaml:"door"`
	// Marker is the entity drawn at the player's position.
	Marker string `yaml:"marker"`
}

// PlayerConfig holds the starting stats.
type PlayerConfig struct {
	Health int `yaml:"health"`
	Hunger int `yaml:"hunger"`
}

// PathsConfig configures file locations.
type PathsConfig struct {
	Tiles    string `yaml:"tiles"`
	Entities string `yaml:"entities"`
	Rooms    string `yaml:"rooms"`
	Locales  string `yaml:"locales"`
	Log      string `yaml:"log"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Generator:  "quadtree",
		Backend:    BackendTUI,
		Depth:      5,
		MacroCells: 2,
		Weights:    generator.DefaultWeights(),
		HeaderRows: 3,
		Tiles: TilesConfig{
			Fill:   "tile",
			Wall:   "brick_wall",
			Floor:  "tile",
			Door:   "door",
			Marker: "player",
		},
		Player: PlayerConfig{
			Health: 160,
			Hunger: 255,
		},
		Paths: PathsConfig{
			Tiles:    "res/tiles.toml",
			Entities: "res/entity.toml",
			Rooms:    "res",
			Locales:  "locales",
			Log:      "log.txt",
		},
		LogLevel: "info",
		Locale:   "en_GB",
	}
}

// LoadFile reads path over the defaults. Fields missing from the file keep
// their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that can never produce a playable game. Errors are
// *generator.ConfigurationError.
func (c *Config) Validate() error {
	if _, err := generator.ByName(c.Generator); err != nil {
		return err
	}
	if c.Backend != BackendTUI && c.Backend != BackendEbiten {
		return &generator.ConfigurationError{Field: "backend", Reason: fmt.Sprintf("unknown backend %q", c.Backend)}
	}
	if c.HeaderRows < 0 {
		return &generator.ConfigurationError{Field: "header_rows", Reason: "must not be negative"}
	}
	if c.Player.Health < 0 || c.Player.Hunger < 0 {
		return &generator.ConfigurationError{Field: "player", Reason: "stats must not be negative"}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for name := range c.Keys {
		if _, ok := input.ActionByName(name); !ok {
			return &generator.ConfigurationError{Field: "keys", Reason: fmt.Sprintf("unknown action %q", name)}
		}
	}

	gen := generator.Config{Depth: c.Depth, MacroCells: c.MacroCells, Weights: c.Weights}
	return gen.Validate()
}

// ApplyKeys installs the Keys bindings. Call it after Validate.
func (c *Config) ApplyKeys() {
	for name, code := range c.Keys {
		if action, ok := input.ActionByName(name); ok {
			input.SetSingleBinding(action, code)
		}
	}
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, &generator.ConfigurationError{Field: "log_level", Reason: err.Error()}
	}
	return level, nil
}

// GeneratorConfig resolves the tile names against palette
func (c *Config) GeneratorConfig(palette *tile.Palette, rng *rand.Rand, logger *slog.Logger) (generator.Config, error) {
	gen := generator.Config{
		Depth:      c.Depth,
		MacroCells: c.MacroCells,
		Weights:    c.Weights,
		DoorTile:   -1,
		Rand:       rng,
		Logger:     logger,
	}

	for _, t := range []struct {
		name     string
		dst      *int
		optional bool
	}{
		{c.Tiles.Fill, &gen.FillTile, false},
		{c.Tiles.Wall, &gen.WallTile, false},
		{c.Tiles.Floor, &gen.FloorTile, false},
		{c.Tiles.Door, &gen.DoorTile, true},
	} {
		if t.name == "" && t.optional {
			continue
		}
		index, err := palette.Index(t.name)
		if err != nil {
			return generator.Config{}, fmt.Errorf("tiles: %w", err)
		}
		*t.dst = index
	}
	return gen, nil
}
