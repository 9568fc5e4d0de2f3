package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"quadrogue/pkg/game/tile"
)

// Draw renders the last frame to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(tile.Xterm(0))

	e.frameLock.RLock()
	rows := e.current.rows
	face := e.face
	cw, ch := e.cell.X, e.cell.Y
	e.frameLock.RUnlock()

	for y, row := range rows {
		for x, t := range row {
			e.drawTile(screen, face, t, float32(x*cw), float32(y*ch), float32(cw), float32(ch))
		}
	}
}

// drawTile fills the cell background and draws the glyph over it
func (e *EbitenRenderer) drawTile(screen *ebiten.Image, face *text.GoTextFace, t tile.Tile, x, y, w, h float32) {
	if t.Back != 0 {
		vector.DrawFilledRect(screen, x, y, w, h, tile.Xterm(t.Back), false)
	}
	if t.Char == ' ' || t.Char == 0 {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(tile.Xterm(t.Fore))
	text.Draw(screen, string(rune(t.Char)), face, op)
}
