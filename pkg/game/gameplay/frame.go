package gameplay

import (
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"

	engineinput "quadrogue/pkg/engine/input"
	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/editor"
	"quadrogue/pkg/game/menu"
	"quadrogue/pkg/game/state"
	"quadrogue/pkg/game/viewport"
)

// Header colours
const (
	colorHealth uint8 = 1
	colorHunger uint8 = 9
)

// PollTimeout is how long a tick waits for input before redrawing
const PollTimeout = 50 * time.Millisecond

// Update runs one tick: it waits up to timeout for an event from src, applies
// it and redraws the header and display. A starved player quits instead.
func Update(g *state.Game, src engineinput.Source, timeout time.Duration) error {
	if g.Hunger <= 0 {
		g.Logger.Info("starved", "pos", g.Position.String())
		g.Quit = true
		return nil
	}

	if raw, ok := src.Poll(timeout); ok {
		HandleInput(g, raw)
	}
	return Compose(g)
}

// Compose draws the level window, the menu overlay and the room name into
// the display and the status rows into the header
func Compose(g *state.Game) error {
	if err := viewport.Project(g.Level, g.Palette, g.Position, g.Marker, g.Display); err != nil {
		return err
	}
	if g.Menu != nil {
		g.Menu.RenderTo(g.Display)
	}
	g.Display.WriteString(world.V(0, 0), g.Name, menu.ColorText, menu.ColorBack)

	drawHeader(g)
	return nil
}

func drawHeader(g *state.Game) {
	h := g.Header
	h.Clear()

	health := fmt.Sprintf("%s: %s ", gotext.Get("HEALTH"), menu.TextBar(g.Health, g.MaxHealth))
	hunger := fmt.Sprintf("%s: %s ", gotext.Get("HUNGER"), menu.TextBar(g.Hunger/2, g.MaxHunger/2))
	h.WriteString(world.V(0, 0), health, colorHealth, menu.ColorBack)
	h.WriteString(world.V(len([]rune(health)), 0), hunger, colorHunger, menu.ColorBack)

	start, end := viewport.Window(g.Position, g.Display.Size)
	status := fmt.Sprintf("%v %v %v", g.Position, start, end)
	if g.Count != "" {
		status += " " + g.Count
	}
	if g.Mode == state.ModeEdit {
		status += " " + fmt.Sprintf(gotext.Get("EDITING"), editor.FileName(g.EditClass))
	} else {
		status += " " + fmt.Sprintf(gotext.Get("SEED"), g.Seed)
	}
	if g.TextInput {
		status += " " + gotext.Get("TEXT_INPUT")
	}
	h.WriteString(world.V(0, 1), status, menu.ColorSubtle, menu.ColorBack)

	h.WriteString(world.V(0, 2), g.LastMessage(), menu.ColorText, menu.ColorBack)
}
