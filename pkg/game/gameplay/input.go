package gameplay

import (
	"fmt"
	"strconv"

	"github.com/leonelquinteros/gotext"

	engineinput "quadrogue/pkg/engine/input"
	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/devtools"
	"quadrogue/pkg/game/editor"
	"quadrogue/pkg/game/state"
)

// moves maps movement actions to directions
var moves = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveNorth:     world.North,
	engineinput.ActionMoveSouth:     world.South,
	engineinput.ActionMoveWest:      world.West,
	engineinput.ActionMoveEast:      world.East,
	engineinput.ActionMoveNorthWest: world.NorthWest,
	engineinput.ActionMoveNorthEast: world.NorthEast,
	engineinput.ActionMoveSouthWest: world.SouthWest,
	engineinput.ActionMoveSouthEast: world.SouthEast,
}

// HandleInput routes a raw event to the text field while it has focus and
// to the key bindings otherwise
func HandleInput(g *state.Game, raw engineinput.RawInput) {
	ev := engineinput.NewDebouncedInput(raw)
	if g.TextInput {
		ProcessText(g, engineinput.MapToText(ev))
		return
	}
	ProcessIntent(g, engineinput.MapToIntent(ev))
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if dir, ok := moves[intent.Action]; ok {
		steps := TryMove(g, dir)
		g.Logger.Debug("move", "dir", dir.String(), "steps", steps, "pos", g.Position.String(), "hunger", g.Hunger)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionDigit:
		if len(g.Count) < len(strconv.Itoa(maxCount)) {
			g.Count += strconv.Itoa(intent.Digit)
		}

	case engineinput.ActionQuit:
		g.Quit = true

	case engineinput.ActionMenuPrev:
		if g.Menu != nil {
			g.Menu.Prev()
		}

	case engineinput.ActionMenuNext:
		if g.Menu != nil {
			g.Menu.Next()
		}

	case engineinput.ActionSelect:
		paint(g)

	case engineinput.ActionEnterText:
		g.TextInput = true

	case engineinput.ActionExport:
		export(g)

	case engineinput.ActionScreenshot:
		path, err := devtools.SaveScreenshotHTML(g, ".")
		if err != nil {
			g.Logger.Error("screenshot failed", "err", err)
			g.AddMessage(fmt.Sprintf(gotext.Get("SCREENSHOT_FAILED"), err))
			return
		}
		g.AddMessage(fmt.Sprintf(gotext.Get("SCREENSHOT_SAVED"), path))
	}
}

// ProcessText edits the room name
func ProcessText(g *state.Game, edit engineinput.TextEdit) {
	switch edit.Kind {
	case engineinput.TextChar:
		g.Name += string(edit.Char)
	case engineinput.TextBackspace:
		if r := []rune(g.Name); len(r) > 0 {
			g.Name = string(r[:len(r)-1])
		}
	case engineinput.TextExit:
		g.TextInput = false
	}
}

// paint sets the tile under the player to the palette entry named by the
// menu selection
func paint(g *state.Game) {
	if g.Menu == nil {
		return
	}
	item := g.Menu.Current()
	if item == nil {
		return
	}
	index, err := g.Palette.Index(item.GetLabel())
	if err != nil {
		g.Logger.Warn("paint failed", "err", err)
		return
	}
	if err := g.Level.Set(g.Position, index); err != nil {
		g.Logger.Warn("paint failed", "err", err)
	}
}

// defaultExportClass is the room size class exported from play mode when no
// count is given
const defaultExportClass = 2

func export(g *state.Game) {
	level, err := exportRegion(g)
	if err == nil {
		var path string
		if path, err = editor.Export(g.RoomsDir, g.Name, level, g.Palette); err == nil {
			g.Logger.Info("room exported", "name", g.Name, "path", path)
			g.AddMessage(fmt.Sprintf(gotext.Get("EXPORT_DONE"), g.Name, path))
			return
		}
	}
	g.Logger.Error("room export failed", "name", g.Name, "err", err)
	g.AddMessage(fmt.Sprintf(gotext.Get("EXPORT_FAILED"), err))
}

// exportRegion returns the level being edited, or in play mode the
// (2<<n)+1 square around the player, moved inside the level. n is the count
// prefix.
func exportRegion(g *state.Game) (*world.Level, error) {
	digits := g.Count
	g.Count = ""
	if g.Mode == state.ModeEdit {
		return g.Level, nil
	}

	class := defaultExportClass
	if n, err := strconv.Atoi(digits); err == nil {
		class = n
	}
	if class > maxEditClass {
		return nil, fmt.Errorf("room size class %d is above %d", class, maxEditClass)
	}

	size := editor.RoomSize(class)
	start := g.Position.Sub(size.Div(2))
	start = world.V(
		min(max(start.X, 0), g.Level.Size.X-size.X),
		min(max(start.Y, 0), g.Level.Size.Y-size.Y),
	)
	return g.Level.Region(start, size)
}
