package ebiten

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"quadrogue/pkg/engine/world"
)

// Font sizes in points
const (
	baseFontSize = 16.0
	minFontSize  = 8.0
	maxFontSize  = 48.0
	fontSizeStep = 2.0
)

// loadFont parses the embedded Go Mono font
func (e *EbitenRenderer) loadFont() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	e.fontSource = src
	e.setFontSize(e.fontSize)
	return nil
}

// setFontSize rebuilds the face and the cell size. Callers hold frameLock
// once the loop runs.
func (e *EbitenRenderer) setFontSize(size float64) {
	e.fontSize = min(max(size, minFontSize), maxFontSize)
	e.face = &text.GoTextFace{Source: e.fontSource, Size: e.fontSize}

	m := e.face.Metrics()
	width := math.Ceil(text.Advance("M", e.face))
	height := math.Ceil(m.HAscent + m.HDescent + m.HLineGap)
	e.cell = world.V(max(int(width), 1), max(int(height), 1))
}
