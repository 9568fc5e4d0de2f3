package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/pflag"

	"quadrogue/pkg/engine/input"
	"quadrogue/pkg/engine/terminal"
	"quadrogue/pkg/game/config"
	"quadrogue/pkg/game/devtools"
	"quadrogue/pkg/game/gameplay"
	"quadrogue/pkg/game/renderer"
	ebitenrenderer "quadrogue/pkg/game/renderer/ebiten"
	"quadrogue/pkg/game/renderer/tui"
	"quadrogue/pkg/game/tile"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags config.Flags
	flagSet := pflag.NewFlagSet("quadrogue", pflag.ContinueOnError)
	flags.AddFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := flags.Load(flagSet)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.ApplyKeys()

	if flags.Keys {
		fmt.Print(input.FormatBindings())
		return nil
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	gotext.Configure(cfg.Paths.Locales, cfg.Locale, "default")

	palette, err := tile.Load[tile.Tile](os.DirFS("."), cfg.Paths.Tiles)
	if err != nil {
		return err
	}
	entities, err := tile.Load[tile.Entity](os.DirFS("."), cfg.Paths.Entities)
	if err != nil {
		return err
	}

	g, err := gameplay.BuildGame(gameplay.Options{
		Config:    cfg,
		Palette:   palette,
		Entities:  entities,
		Logger:    logger,
		EditClass: flags.Edit,
		Room:      flags.Room,
	})
	if err != nil {
		return err
	}

	if flags.Dump != "" {
		path, err := devtools.DumpLevelToFile(g, flags.Dump)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		fmt.Println(path)
		return nil
	}

	var r renderer.Renderer
	switch cfg.Backend {
	case config.BackendEbiten:
		r = ebitenrenderer.New()
	default:
		if !terminal.IsTerminal() {
			return errors.New("the tui backend needs a terminal, try --backend ebiten")
		}
		r = tui.New()
	}

	logger.Info("starting", "backend", cfg.Backend, "seed", g.Seed, "size", g.Level.Size.String())
	if err := renderer.Run(r, g, cfg.HeaderRows); err != nil {
		return err
	}

	fmt.Println(gotext.Get("GOODBYE"))
	return nil
}

// newLogger writes text logs to the configured file. An empty path discards
// them; the terminal belongs to the game.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeLog := func() {}
	if cfg.Paths.Log != "" {
		f, err := os.OpenFile(cfg.Paths.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeLog, nil
}
