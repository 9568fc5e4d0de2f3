// Package tui draws the game into a terminal with xterm-256 colours.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/muesli/termenv"

	"quadrogue/pkg/engine/input"
	"quadrogue/pkg/engine/terminal"
	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/state"
	"quadrogue/pkg/game/tile"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     *termenv.Output
	in      io.Reader
	source  *input.TerminalSource
	restore func() error
	open    bool
}

// New creates a TUI renderer on stdin and stdout
func New() *TUIRenderer {
	return &TUIRenderer{
		out: termenv.NewOutput(os.Stdout),
		in:  os.Stdin,
	}
}

// Init switches the terminal to raw mode on the alternate screen
func (t *TUIRenderer) Init() error {
	restore, err := terminal.EnableRaw()
	if err != nil {
		return err
	}
	t.restore = restore
	t.open = true

	t.out.AltScreen()
	t.out.ClearScreen()
	t.out.HideCursor()
	t.source = input.NewTerminalSource(t.in)
	return nil
}

// Close restores the terminal
func (t *TUIRenderer) Close() error {
	if !t.open {
		return nil
	}
	t.open = false

	t.out.Reset()
	t.out.ShowCursor()
	t.out.ExitAltScreen()
	return t.restore()
}

// Size returns the terminal size
func (t *TUIRenderer) Size() world.Vec {
	return terminal.Size()
}

// Input returns the terminal key reader
func (t *TUIRenderer) Input() input.Source {
	return t.source
}

// RenderFrame draws the header rows then the display rows
func (t *TUIRenderer) RenderFrame(g *state.Game) error {
	var b strings.Builder
	row := 0
	for _, tiles := range g.Header.Data {
		writeRow(&b, row, tiles)
		row++
	}
	for _, tiles := range g.Display.Data {
		writeRow(&b, row, tiles)
		row++
	}

	_, err := t.out.WriteString(b.String())
	return err
}

func writeRow(b *strings.Builder, row int, tiles []tile.Tile) {
	fmt.Fprintf(b, termenv.CSI+termenv.CursorPositionSeq, row+1, 1)
	b.WriteString(Line(tiles))
}

// Line renders a row of tiles, one style change per run of equal colours
func Line(tiles []tile.Tile) string {
	var b strings.Builder
	for start := 0; start < len(tiles); {
		fore, back := tiles[start].Fore, tiles[start].Back
		end := start
		var run strings.Builder
		for end < len(tiles) && tiles[end].Fore == fore && tiles[end].Back == back {
			run.WriteRune(rune(tiles[end].Char))
			end++
		}
		b.WriteString(color.S256(fore, back).Sprint(run.String()))
		start = end
	}
	return b.String()
}
