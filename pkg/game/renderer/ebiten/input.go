package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "quadrogue/pkg/engine/input"
)

// specialKeys maps keys that produce no text to input codes. Printable keys
// arrive through ebiten.AppendInputChars instead.
var specialKeys = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeyEscape:      "escape",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyBackspace:   "backspace",
}

// Update collects input for the game loop (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.closed.Load() {
		return ebiten.Termination
	}

	// Ctrl+= and Ctrl+- change the font size; the characters are swallowed
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		e.handleZoom()
		return nil
	}

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		if code, ok := specialKeys[k]; ok {
			e.push(code)
		}
	}

	e.chars = ebiten.AppendInputChars(e.chars[:0])
	for _, r := range e.chars {
		e.push(string(r))
	}
	return nil
}

// handleZoom handles Ctrl+= and Ctrl+- for font size adjustment
func (e *EbitenRenderer) handleZoom() {
	step := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		step = fontSizeStep
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		step = -fontSizeStep
	}
	if step == 0 {
		return
	}

	e.frameLock.Lock()
	e.setFontSize(e.fontSize + step)
	e.frameLock.Unlock()
}

// push hands a key to the game loop without blocking the Ebiten loop
func (e *EbitenRenderer) push(code string) {
	select {
	case e.events <- engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: time.Now()}:
	default:
		// Channel full, drop input
	}
}
