package config

import (
	"github.com/spf13/pflag"
)

// Flags are the command-line overrides for a Config plus the run modes that
// only make sense on the command line.
type Flags struct {
	ConfigFile string
	Seed       int64
	Depth      int
	Generator  string
	Backend    string
	LogFile    string
	LogLevel   string

	// Edit opens the room editor on an empty room of this size class; -1
	// plays the generated dungeon.
	Edit int
	// Room loads an existing room record into the editor.
	Room string
	// Dump writes the generated level to this path and exits.
	Dump string
	// Keys prints the key bindings and exits.
	Keys bool
}

// AddFlags registers the flags on flagSet
func (f *Flags) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&f.ConfigFile, "config", "c", "", "path to a YAML config file")
	flagSet.Int64Var(&f.Seed, "seed", 0, "dungeon seed (0 picks one at random)")
	flagSet.IntVar(&f.Depth, "depth", 0, "quadtree depth")
	flagSet.StringVar(&f.Generator, "generator", "", "dungeon generator: quadtree or bsp")
	flagSet.StringVar(&f.Backend, "backend", "", "renderer: tui or ebiten")
	flagSet.StringVar(&f.LogFile, "log-file", "", "write logs to this file")
	flagSet.StringVar(&f.LogLevel, "log-level", "", "debug, info, warn or error")
	flagSet.IntVar(&f.Edit, "edit", -1, "edit a room of size class N instead of playing")
	flagSet.StringVar(&f.Room, "room", "", "load this room record into the editor")
	flagSet.StringVar(&f.Dump, "dump", "", "write the generated level to a file and exit")
	flagSet.BoolVar(&f.Keys, "keys", false, "print the key bindings and exit")
}

// Apply copies every flag that was set on the command line into cfg
func (f *Flags) Apply(cfg *Config, flagSet *pflag.FlagSet) {
	if flagSet.Changed("seed") {
		cfg.Seed = f.Seed
	}
	if flagSet.Changed("depth") {
		cfg.Depth = f.Depth
	}
	if flagSet.Changed("generator") {
		cfg.Generator = f.Generator
	}
	if flagSet.Changed("backend") {
		cfg.Backend = f.Backend
	}
	if flagSet.Changed("log-file") {
		cfg.Paths.Log = f.LogFile
	}
	if flagSet.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
}

// Load builds the effective configuration: defaults, then the config file
// if one was given, then the flags
func (f *Flags) Load(flagSet *pflag.FlagSet) (*Config, error) {
	cfg := Default()
	if f.ConfigFile != "" {
		var err error
		if cfg, err = LoadFile(f.ConfigFile); err != nil {
			return nil, err
		}
	}
	f.Apply(cfg, flagSet)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
