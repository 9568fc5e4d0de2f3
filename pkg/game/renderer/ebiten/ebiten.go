// Package ebiten provides an Ebiten-based 2D graphical renderer. It draws the
// same tile buffers as the terminal renderer, one monospace glyph per cell.
package ebiten

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "quadrogue/pkg/engine/input"
	"quadrogue/pkg/engine/world"
	"quadrogue/pkg/game/state"
	"quadrogue/pkg/game/tile"
)

// Initial window size in cells
const (
	initialCols = 100
	initialRows = 40
)

// frame is a copy of the game's buffers taken by RenderFrame
type frame struct {
	rows [][]tile.Tile
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Font and the cell size derived from it
	fontSource *text.GoTextFaceSource
	fontSize   float64
	face       *text.GoTextFace
	cell       world.Vec

	// Input channel for communication between Ebiten and game loop
	events chan engineinput.RawInput
	source *engineinput.ChannelSource
	keys   []ebiten.Key
	chars  []rune

	// Screen size in cells, set by Layout
	size world.Vec

	current   frame
	frameLock sync.RWMutex

	closed atomic.Bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	events := make(chan engineinput.RawInput, 64)
	return &EbitenRenderer{
		fontSize: baseFontSize,
		events:   events,
		source:   engineinput.NewChannelSource(events),
		size:     world.V(initialCols, initialRows),
	}
}

// Init loads the font and configures the window
func (e *EbitenRenderer) Init() error {
	if err := e.loadFont(); err != nil {
		return err
	}

	ebiten.SetWindowSize(initialCols*e.cell.X, initialRows*e.cell.Y)
	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Close ends the Ebiten loop on its next update
func (e *EbitenRenderer) Close() error {
	e.closed.Store(true)
	return nil
}

// RunMain runs the Ebiten loop on the calling goroutine until the window
// closes or the game loop calls Close
func (e *EbitenRenderer) RunMain() error {
	defer close(e.events)
	return ebiten.RunGame(e)
}

// Size returns the window size in cells
func (e *EbitenRenderer) Size() world.Vec {
	e.frameLock.RLock()
	defer e.frameLock.RUnlock()
	return e.size
}

// Input returns the key events collected by Update
func (e *EbitenRenderer) Input() engineinput.Source {
	return e.source
}

// RenderFrame copies the header and display for the next Draw
func (e *EbitenRenderer) RenderFrame(g *state.Game) error {
	rows := make([][]tile.Tile, 0, len(g.Header.Data)+len(g.Display.Data))
	for _, row := range g.Header.Data {
		rows = append(rows, append([]tile.Tile(nil), row...))
	}
	for _, row := range g.Display.Data {
		rows = append(rows, append([]tile.Tile(nil), row...))
	}

	e.frameLock.Lock()
	e.current = frame{rows: rows}
	e.frameLock.Unlock()
	return nil
}

// Layout reports the window size unchanged and records it in cells (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.frameLock.Lock()
	defer e.frameLock.Unlock()
	if e.cell.X > 0 && e.cell.Y > 0 {
		e.size = world.V(outsideWidth/e.cell.X, outsideHeight/e.cell.Y)
	}
	return outsideWidth, outsideHeight
}
